// internal/webapp/server_test.go
package webapp

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/qeval/qeval/internal/appconfig"
	"github.com/qeval/qeval/internal/exectree"
	"github.com/qeval/qeval/internal/perfdata"
)

func f(v float64) *float64 { return &v }
func i(v int64) *int64     { return &v }

func testDocument() *perfdata.Document {
	sharedTree := &exectree.Node{
		Description: "JOIN",
		TotalTime:   12.5,
		ResultRows:  100,
		Cached:      true,
		Children: []*exectree.Node{
			{Description: "INDEX SCAN", TotalTime: 4.2, ResultRows: 100},
		},
	}
	return &perfdata.Document{
		PerformanceData: map[string]map[string]*perfdata.EngineStats{
			"olympics": {
				"qlever": {
					GmeanTime2: f(0.4), GmeanTime10: f(0.9), MedianTime: f(0.3), AmeanTime: f(0.6),
					IndexTime: f(95), IndexSize: f(3.5e8),
					Queries: []perfdata.QueryRecord{
						{
							Name:       "medals",
							SPARQL:     "SELECT ?x WHERE { ?x ?y ?z . }",
							Headers:    []string{"?x"},
							Results:    perfdata.QueryResults{Rows: [][]any{{"a"}}},
							ResultSize: i(1000),
							RuntimeInfo: perfdata.RuntimeInfo{
								ClientTime:    0.35,
								ExecutionTree: sharedTree,
							},
						},
					},
				},
				"virtuoso": {
					GmeanTime2: f(1.4), GmeanTime10: f(2.9), MedianTime: f(1.3), AmeanTime: f(1.6),
					IndexTime: f(7200), IndexSize: f(5.0e8),
					Queries: []perfdata.QueryRecord{
						{
							Name:        "medals",
							Results:     perfdata.QueryResults{IsError: true, Error: "timeout"},
							RuntimeInfo: perfdata.RuntimeInfo{ClientTime: 30},
						},
					},
				},
			},
		},
		AdditionalData: perfdata.AdditionalData{
			Title: "Test Evaluation",
			KBs: map[string]perfdata.KBInfo{
				"olympics": {Name: "Olympics", Description: "120 years", Scale: 1},
			},
		},
	}
}

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(New(appconfig.Config{}, testDocument()).Handler())
	t.Cleanup(srv.Close)
	return srv
}

func get(t *testing.T, srv *httptest.Server, path string) (int, string) {
	t.Helper()
	resp, err := http.Get(srv.URL + path)
	if err != nil {
		t.Fatalf("GET %s: %v", path, err)
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatal(err)
	}
	return resp.StatusCode, string(body)
}

func TestIndexPage(t *testing.T) {
	srv := newTestServer(t)

	status, body := get(t, srv, "/")
	if status != http.StatusOK {
		t.Fatalf("status = %d", status)
	}
	for _, want := range []string{"Test Evaluation", "Olympics", "qlever", "virtuoso", "Gmean (2x penalty)"} {
		if !strings.Contains(body, want) {
			t.Errorf("index page missing %q", want)
		}
	}
	// Shared units: the minimum index time (95 s) selects minutes for both engines.
	if !strings.Contains(body, "1.6 min") || !strings.Contains(body, "120.0 min") {
		t.Error("index times must share one unit")
	}
}

func TestYAMLDataEndpoint(t *testing.T) {
	srv := newTestServer(t)

	status, body := get(t, srv, "/yaml_data")
	if status != http.StatusOK {
		t.Fatalf("status = %d", status)
	}
	var doc perfdata.Document
	if err := json.Unmarshal([]byte(body), &doc); err != nil {
		t.Fatalf("yaml_data is not valid JSON: %v", err)
	}
	if doc.AdditionalData.Title != "Test Evaluation" {
		t.Errorf("Title = %q", doc.AdditionalData.Title)
	}
	if len(doc.PerformanceData["olympics"]) != 2 {
		t.Errorf("expected 2 engines in payload")
	}
}

func TestDetailsPage(t *testing.T) {
	srv := newTestServer(t)

	status, body := get(t, srv, "/details?kb=olympics&engine=qlever")
	if status != http.StatusOK {
		t.Fatalf("status = %d", status)
	}
	for _, want := range []string{"medals", "0.350 s", "1,000", "SELECT ?x"} {
		if !strings.Contains(body, want) {
			t.Errorf("details page missing %q", want)
		}
	}

	status, body = get(t, srv, "/details?kb=olympics&engine=nope")
	if status != http.StatusNotFound {
		t.Fatalf("unknown engine status = %d", status)
	}
	if !strings.Contains(body, "nope") {
		t.Error("not-found page must name the missing resource")
	}
}

func TestComparisonPage(t *testing.T) {
	srv := newTestServer(t)

	status, body := get(t, srv, "/comparison?kb=olympics")
	if status != http.StatusOK {
		t.Fatalf("status = %d", status)
	}
	if !strings.Contains(body, `class="best"`) {
		t.Error("best runtime must be highlighted")
	}
	if !strings.Contains(body, `class="failed"`) {
		t.Error("failed run must be highlighted")
	}
	if !strings.Contains(body, "1,000") {
		t.Error("majority result size missing")
	}
}

func TestCompareExecTreesPage(t *testing.T) {
	doc := testDocument()
	srv := httptest.NewServer(New(appconfig.Config{}, doc).Handler())
	t.Cleanup(srv.Close)

	status, body := get(t, srv, "/compareExecTrees?kb=olympics&q=medals")
	if status != http.StatusOK {
		t.Fatalf("status = %d", status)
	}
	// Annotation re-cases operation names and propagates the cached flag.
	if !strings.Contains(body, "Join") || !strings.Contains(body, "Index Scan") {
		t.Errorf("tree not annotated:\n%s", body)
	}
	if strings.Count(body, "cached") < 2 {
		t.Error("cached flag must propagate to the child node")
	}
	if !strings.Contains(body, "No execution tree reported") {
		t.Error("engine without a tree must say so")
	}

	// The loaded document must stay untouched by display annotation.
	tree := doc.PerformanceData["olympics"]["qlever"].Queries[0].RuntimeInfo.ExecutionTree
	if tree.Description != "JOIN" || tree.Children[0].Cached {
		t.Error("display annotation leaked into the loaded document")
	}

	status, _ = get(t, srv, "/compareExecTrees?kb=olympics&q=unknown")
	if status != http.StatusNotFound {
		t.Errorf("unknown query status = %d", status)
	}
}

func TestExportTSV(t *testing.T) {
	srv := newTestServer(t)

	resp, err := http.Get(srv.URL + "/export?page=overview&kb=olympics")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	if ct := resp.Header.Get("Content-Type"); !strings.HasPrefix(ct, "text/tab-separated-values") {
		t.Errorf("Content-Type = %q", ct)
	}
	if cd := resp.Header.Get("Content-Disposition"); !strings.Contains(cd, "olympics.overview.tsv") {
		t.Errorf("Content-Disposition = %q", cd)
	}

	status, _ := get(t, srv, "/export?page=bogus")
	if status != http.StatusNotFound {
		t.Errorf("bogus export page status = %d", status)
	}
}

func TestUnknownRoute(t *testing.T) {
	srv := newTestServer(t)

	status, body := get(t, srv, "/no/such/page")
	if status != http.StatusNotFound {
		t.Fatalf("status = %d", status)
	}
	if !strings.Contains(body, "/no/such/page") {
		t.Error("not-found page must name the missing path")
	}
}
