// internal/perfdata/load.go
package perfdata

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/qeval/qeval/internal/logging"
	"github.com/qeval/qeval/internal/sparqlfmt"
)

const resultsSuffix = ".results.yaml"

// LoadDocument scans dir for files named <kb>.<engine>.results.yaml and
// aggregates them into the performance-data document. Files whose name does
// not match the pattern are skipped silently, matching the behavior of the
// original evaluation server; files that fail to parse abort the load.
func LoadDocument(dir, title string) (*Document, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("results directory %q: %w", dir, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("results path %q is not a directory", dir)
	}

	doc := &Document{
		PerformanceData: make(map[string]map[string]*EngineStats),
		AdditionalData: AdditionalData{
			Title: title,
			KBs:   make(map[string]KBInfo),
		},
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading results directory %q: %w", dir, err)
	}

	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), resultsSuffix) {
			continue
		}
		kb, engine, ok := splitResultsName(entry.Name())
		if !ok {
			continue
		}

		path := filepath.Join(dir, entry.Name())
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading results file %q: %w", path, err)
		}

		var res resultsFile
		if err := yaml.Unmarshal(data, &res); err != nil {
			return nil, fmt.Errorf("parsing results file %q: %w", path, err)
		}

		prettyPrintQueries(res.Queries)

		doc.AdditionalData.KBs[kb] = KBInfo{
			Name:        res.Name,
			Description: res.Description,
			Scale:       res.Scale,
		}
		if doc.PerformanceData[kb] == nil {
			doc.PerformanceData[kb] = make(map[string]*EngineStats)
		}
		doc.PerformanceData[kb][engine] = computeEngineStats(res)
	}

	return doc, nil
}

// splitResultsName decomposes "<kb>.<engine>.results.yaml" and reports
// whether the file name has exactly that shape.
func splitResultsName(name string) (kb, engine string, ok bool) {
	stem := strings.TrimSuffix(name, ".yaml")
	parts := strings.Split(stem, ".")
	if len(parts) != 3 || parts[2] != "results" {
		return "", "", false
	}
	return parts[0], parts[1], true
}

// prettyPrintQueries reformats the SPARQL text of each query for display.
// A query that cannot be formatted keeps its original text.
func prettyPrintQueries(queries []QueryRecord) {
	for i := range queries {
		formatted, err := sparqlfmt.Format(queries[i].SPARQL)
		if err != nil {
			logging.LogEvent("could not pretty-print query %q: %v", queries[i].Name, err)
			continue
		}
		queries[i].SPARQL = formatted
	}
}

// SortedKBs returns the knowledge-base keys ordered ascending by their
// declared scale, ties broken alphabetically by display name.
func (d *Document) SortedKBs() []string {
	kbs := make([]string, 0, len(d.PerformanceData))
	for kb := range d.PerformanceData {
		kbs = append(kbs, kb)
	}
	sort.Slice(kbs, func(i, j int) bool {
		a, b := d.AdditionalData.KBs[kbs[i]], d.AdditionalData.KBs[kbs[j]]
		if a.Scale != b.Scale {
			return a.Scale < b.Scale
		}
		return a.Name < b.Name
	})
	return kbs
}

// SortedEngines returns the engine names for one knowledge base in
// alphabetical order.
func (d *Document) SortedEngines(kb string) []string {
	engines := make([]string, 0, len(d.PerformanceData[kb]))
	for engine := range d.PerformanceData[kb] {
		engines = append(engines, engine)
	}
	sort.Strings(engines)
	return engines
}
