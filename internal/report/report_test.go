// internal/report/report_test.go
package report

import (
	"strings"
	"testing"

	"github.com/qeval/qeval/internal/perfdata"
)

func f(v float64) *float64 { return &v }

func TestGenerate(t *testing.T) {
	doc := &perfdata.Document{
		PerformanceData: map[string]map[string]*perfdata.EngineStats{
			"olympics": {
				"qlever": {
					GmeanTime2: f(0.4), GmeanTime10: f(0.9), MedianTime: f(0.3), AmeanTime: f(0.6),
					Queries: []perfdata.QueryRecord{
						{
							Name:        "q1",
							Headers:     []string{"?x"},
							Results:     perfdata.QueryResults{Rows: [][]any{{"a"}}},
							RuntimeInfo: perfdata.RuntimeInfo{ClientTime: 0.35},
						},
					},
				},
			},
		},
		AdditionalData: perfdata.AdditionalData{
			Title: "Eval Report",
			KBs:   map[string]perfdata.KBInfo{"olympics": {Name: "Olympics", Scale: 1}},
		},
	}

	html, err := Generate(doc)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	for _, want := range []string{
		"<title>Eval Report</title>",
		"<h2>Olympics</h2>",
		"Aggregate metrics",
		"Per-query comparison",
		`id="performance-data"`,
		`"performance_data"`,
	} {
		if !strings.Contains(html, want) {
			t.Errorf("report missing %q", want)
		}
	}
}

func TestGenerateEmptyDocument(t *testing.T) {
	doc := &perfdata.Document{
		PerformanceData: map[string]map[string]*perfdata.EngineStats{},
		AdditionalData:  perfdata.AdditionalData{Title: "Empty"},
	}

	html, err := Generate(doc)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if !strings.Contains(html, "<h1>Empty</h1>") {
		t.Error("empty document should still render the title")
	}
}
