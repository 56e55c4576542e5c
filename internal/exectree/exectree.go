// internal/exectree/exectree.go
// Package exectree annotates query execution trees for display.
package exectree

import (
	"regexp"
	"strings"
)

// Display sizing: node text shrinks by one point per level once the tree is
// deeper than the threshold, down to a readable minimum.
const (
	baseFontSize       = 16
	fontSizeStep       = 1
	fontDepthThreshold = 3
	minFontSize        = 10
)

// Node is one operation in a query execution tree.
type Node struct {
	Description   string   `yaml:"description" json:"description"`
	ResultRows    int64    `yaml:"result_rows" json:"result_rows"`
	ResultCols    int64    `yaml:"result_cols" json:"result_cols"`
	ColumnNames   []string `yaml:"column_names,omitempty" json:"column_names,omitempty"`
	TotalTime     float64  `yaml:"total_time" json:"total_time"`
	OperationTime float64  `yaml:"operation_time" json:"operation_time"`
	Cached        bool     `yaml:"was_cached" json:"was_cached"`
	Children      []*Node  `yaml:"children,omitempty" json:"children,omitempty"`

	// Display fields filled in by Annotate.
	FontSize int `yaml:"-" json:"font_size,omitempty"`
}

var (
	internalVarPattern = regexp.MustCompile(`(?i)_{1,2}qlever_internal_variable_(?:qp_)?`)
	iriPattern         = regexp.MustCompile(`<[^<>]*[/#]([^/#<>]+)>`)
	upperWordPattern   = regexp.MustCompile(`\b[A-Z][A-Z-]{2,}\b`)
)

// Annotate rewrites the tree in place into its display form: internal
// variable prefixes are stripped, IRIs are abbreviated to their trailing
// path segment, shouting operation names are re-cased, the cached flag is
// propagated to all descendants of a cached node, and per-level font sizes
// are assigned.
func Annotate(root *Node) {
	if root == nil {
		return
	}
	annotate(root, false, 1)
}

func annotate(node *Node, ancestorCached bool, level int) {
	if ancestorCached {
		node.Cached = true
	}

	node.Description = cleanText(node.Description)
	for i, name := range node.ColumnNames {
		node.ColumnNames[i] = internalVarPattern.ReplaceAllString(name, "")
	}
	node.FontSize = fontSizeForLevel(level)

	for _, child := range node.Children {
		annotate(child, node.Cached, level+1)
	}
}

// cleanText applies the display rewrites to a node description.
func cleanText(text string) string {
	text = internalVarPattern.ReplaceAllString(text, "")
	text = iriPattern.ReplaceAllString(text, "<$1>")
	text = upperWordPattern.ReplaceAllStringFunc(text, titleCase)
	return strings.Join(strings.Fields(text), " ")
}

// titleCase converts a fully-uppercase word like "INDEX-SCAN" to "Index-Scan".
func titleCase(word string) string {
	parts := strings.Split(strings.ToLower(word), "-")
	for i, part := range parts {
		if part == "" {
			continue
		}
		parts[i] = strings.ToUpper(part[:1]) + part[1:]
	}
	return strings.Join(parts, "-")
}

// Clone returns a deep copy of the tree, so display annotation does not
// touch the loaded document.
func Clone(node *Node) *Node {
	if node == nil {
		return nil
	}
	copied := *node
	copied.ColumnNames = append([]string(nil), node.ColumnNames...)
	copied.Children = make([]*Node, len(node.Children))
	for i, child := range node.Children {
		copied.Children[i] = Clone(child)
	}
	return &copied
}

// Depth returns the number of levels on the longest root-to-leaf path.
// A nil tree has depth 0, a single node depth 1.
func Depth(node *Node) int {
	if node == nil {
		return 0
	}
	deepest := 0
	for _, child := range node.Children {
		if d := Depth(child); d > deepest {
			deepest = d
		}
	}
	return deepest + 1
}

// fontSizeForLevel shrinks the base size by one step per level beyond the
// threshold, clamped to the minimum.
func fontSizeForLevel(level int) int {
	size := baseFontSize
	if level > fontDepthThreshold {
		size -= fontSizeStep * (level - fontDepthThreshold)
	}
	if size < minFontSize {
		size = minFontSize
	}
	return size
}
