// internal/webapp/views.go
package webapp

import (
	"fmt"

	"github.com/qeval/qeval/internal/compare"
	"github.com/qeval/qeval/internal/exectree"
	"github.com/qeval/qeval/internal/export"
	"github.com/qeval/qeval/internal/perfdata"
)

// indexView backs the main page: one aggregate table per knowledge base,
// ordered by scale.
type indexView struct {
	Title string
	KBs   []kbSection
}

type kbSection struct {
	Key         string
	Name        string
	Description string
	Table       export.Table
	Engines     []string
}

func (s *Server) buildIndexView() (indexView, error) {
	view := indexView{Title: s.doc.AdditionalData.Title}
	for _, kb := range s.doc.SortedKBs() {
		info := s.doc.AdditionalData.KBs[kb]
		table, err := export.OverviewTable(s.doc, kb)
		if err != nil {
			return indexView{}, err
		}
		view.KBs = append(view.KBs, kbSection{
			Key:         kb,
			Name:        info.Name,
			Description: info.Description,
			Table:       table,
			Engines:     s.doc.SortedEngines(kb),
		})
	}
	return view, nil
}

// detailsView backs the per-engine page.
type detailsView struct {
	Title   string
	KBKey   string
	KBName  string
	Engine  string
	Queries []queryDetail
}

type queryDetail struct {
	Name       string
	SPARQL     string
	Runtime    string
	ResultSize string
	Failed     bool
	Error      string
	HasTree    bool
}

func (s *Server) buildDetailsView(kb, engine string) (detailsView, error) {
	engines := s.doc.PerformanceData[kb]
	if engines == nil {
		return detailsView{}, fmt.Errorf("knowledge base %q", kb)
	}
	stats := engines[engine]
	if stats == nil {
		return detailsView{}, fmt.Errorf("engine %q for knowledge base %q", engine, kb)
	}

	view := detailsView{
		Title:  s.doc.AdditionalData.Title,
		KBKey:  kb,
		KBName: s.doc.AdditionalData.KBs[kb].Name,
		Engine: engine,
	}
	for _, query := range stats.Queries {
		detail := queryDetail{
			Name:    query.Name,
			SPARQL:  query.SPARQL,
			Runtime: fmt.Sprintf("%.3f s", query.RuntimeInfo.ClientTime),
			HasTree: query.RuntimeInfo.ExecutionTree != nil,
		}
		if query.Failed() {
			detail.Failed = true
			detail.Error = query.Results.Error
		} else if query.ResultSize != nil {
			detail.ResultSize = perfdata.FormatCount(*query.ResultSize)
		} else {
			detail.ResultSize = perfdata.FormatCount(int64(len(query.Results.Rows)))
		}
		view.Queries = append(view.Queries, detail)
	}
	return view, nil
}

// comparisonView backs the cross-engine page: per query, one runtime cell
// per engine with the best runtime flagged, plus the majority result size.
type comparisonView struct {
	Title   string
	KBKey   string
	KBName  string
	Engines []string
	Rows    []comparisonRow
}

type comparisonRow struct {
	Query        string
	Cells        []runtimeCell
	MajoritySize string
	NoConsensus  bool
}

type runtimeCell struct {
	Text    string
	Best    bool
	Failed  bool
	Missing bool
}

func (s *Server) buildComparisonView(kb string) (comparisonView, error) {
	engines := s.doc.PerformanceData[kb]
	if engines == nil {
		return comparisonView{}, fmt.Errorf("knowledge base %q", kb)
	}
	order := s.doc.SortedEngines(kb)
	queryMap := compare.Flatten(engines)

	view := comparisonView{
		Title:   s.doc.AdditionalData.Title,
		KBKey:   kb,
		KBName:  s.doc.AdditionalData.KBs[kb].Name,
		Engines: order,
	}
	for _, name := range queryMap.QueryNames() {
		perEngine := queryMap[name]
		bestEngine, _, hasBest := compare.BestRuntime(perEngine, order)
		majority := compare.MajorityResultSize(perEngine)

		row := comparisonRow{
			Query:        name,
			MajoritySize: majority,
			NoConsensus:  majority == compare.NoConsensus,
		}
		for _, engine := range order {
			record := perEngine[engine]
			switch {
			case record == nil:
				row.Cells = append(row.Cells, runtimeCell{Text: "—", Missing: true})
			case record.Failed():
				row.Cells = append(row.Cells, runtimeCell{Text: "failed", Failed: true})
			default:
				row.Cells = append(row.Cells, runtimeCell{
					Text: fmt.Sprintf("%.3f s", record.RuntimeInfo.ClientTime),
					Best: hasBest && engine == bestEngine,
				})
			}
		}
		view.Rows = append(view.Rows, row)
	}
	return view, nil
}

// execTreesView backs the execution-tree comparison page for one query.
type execTreesView struct {
	Title  string
	KBKey  string
	KBName string
	Query  string
	Trees  []engineTree
}

type engineTree struct {
	Engine  string
	Root    *exectree.Node
	Depth   int
	HasTree bool
}

func (s *Server) buildExecTreesView(kb, queryName string) (execTreesView, error) {
	engines := s.doc.PerformanceData[kb]
	if engines == nil {
		return execTreesView{}, fmt.Errorf("knowledge base %q", kb)
	}
	queryMap := compare.Flatten(engines)
	perEngine := queryMap[queryName]
	if perEngine == nil {
		return execTreesView{}, fmt.Errorf("query %q for knowledge base %q", queryName, kb)
	}

	view := execTreesView{
		Title:  s.doc.AdditionalData.Title,
		KBKey:  kb,
		KBName: s.doc.AdditionalData.KBs[kb].Name,
		Query:  queryName,
	}
	for _, engine := range s.doc.SortedEngines(kb) {
		record := perEngine[engine]
		tree := engineTree{Engine: engine}
		if record != nil && record.RuntimeInfo.ExecutionTree != nil {
			root := exectree.Clone(record.RuntimeInfo.ExecutionTree)
			exectree.Annotate(root)
			tree.Root = root
			tree.Depth = exectree.Depth(root)
			tree.HasTree = true
		}
		view.Trees = append(view.Trees, tree)
	}
	return view, nil
}
