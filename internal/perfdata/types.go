// internal/perfdata/types.go
// Package perfdata loads SPARQL benchmark results and aggregates them into
// the performance-data document consumed by the evaluation webapp.
package perfdata

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/qeval/qeval/internal/exectree"
)

// Document is the top-level payload served on /yaml_data: per knowledge base,
// per engine aggregated statistics, plus display metadata.
type Document struct {
	PerformanceData map[string]map[string]*EngineStats `json:"performance_data"`
	AdditionalData  AdditionalData                     `json:"additional_data"`
}

// AdditionalData carries the page title and per-knowledge-base display info.
type AdditionalData struct {
	Title string            `json:"title"`
	KBs   map[string]KBInfo `json:"kbs"`
}

// KBInfo describes one knowledge base for display purposes.
type KBInfo struct {
	Name        string  `yaml:"name" json:"name"`
	Description string  `yaml:"description" json:"description"`
	Scale       float64 `yaml:"scale" json:"scale"`
}

// EngineStats holds the aggregate metrics and per-query records for one
// engine evaluated against one knowledge base.
type EngineStats struct {
	AmeanTime    *float64      `json:"ameanTime"`
	GmeanTime2   *float64      `json:"gmeanTime2"`
	GmeanTime10  *float64      `json:"gmeanTime10"`
	MedianTime   *float64      `json:"medianTime"`
	Under1s      float64       `json:"under1s"`
	Between1to5s float64       `json:"between1to5s"`
	Over5s       float64       `json:"over5s"`
	Failed       float64       `json:"failed"`
	Timeout      *float64      `json:"timeout,omitempty"`
	IndexTime    *float64      `json:"indexTime"`
	IndexSize    *float64      `json:"indexSize"`
	Queries      []QueryRecord `json:"queries"`
}

// QueryRecord is one benchmarked query. The YAML field names follow the
// results files written by the benchmark runner; the JSON names follow what
// the webapp historically expected (the query text moves to "sparql" and the
// query name takes over the "query" key).
type QueryRecord struct {
	Name            string       `yaml:"name" json:"query"`
	Description     string       `yaml:"description,omitempty" json:"description,omitempty"`
	SPARQL          string       `yaml:"query" json:"sparql"`
	RuntimeInfo     RuntimeInfo  `yaml:"runtime_info" json:"runtime_info"`
	Headers         []string     `yaml:"headers" json:"headers"`
	Results         QueryResults `yaml:"results" json:"results"`
	ResultSize      *int64       `yaml:"result_size" json:"result_size"`
	ServerRestarted bool         `yaml:"server_restarted" json:"serverRestarted"`
}

// Failed reports whether the query run is considered failed: no result
// headers and an error string in place of result rows.
func (q QueryRecord) Failed() bool {
	return len(q.Headers) == 0 && q.Results.IsError
}

// RuntimeInfo holds the measured client time, the server-side timing
// breakdown, and the optional execution tree for one query run.
type RuntimeInfo struct {
	ClientTime    float64            `yaml:"client_time" json:"client_time"`
	ServerTimes   map[string]float64 `yaml:"server,omitempty" json:"server,omitempty"`
	ExecutionTree *exectree.Node     `yaml:"execution_tree,omitempty" json:"execution_tree,omitempty"`
}

// QueryResults is either a list of result rows or, for a failed query, the
// error string returned by the engine.
type QueryResults struct {
	Rows    [][]any
	Error   string
	IsError bool
}

// UnmarshalYAML accepts either a sequence of rows or a scalar error string.
func (r *QueryResults) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.ScalarNode:
		r.IsError = true
		return value.Decode(&r.Error)
	case yaml.SequenceNode:
		r.IsError = false
		return value.Decode(&r.Rows)
	default:
		return fmt.Errorf("results must be a list of rows or an error string, got yaml kind %d", value.Kind)
	}
}

// MarshalJSON preserves the dual shape on the wire.
func (r QueryResults) MarshalJSON() ([]byte, error) {
	if r.IsError {
		return json.Marshal(r.Error)
	}
	if r.Rows == nil {
		return json.Marshal([][]any{})
	}
	return json.Marshal(r.Rows)
}

// UnmarshalJSON mirrors MarshalJSON.
func (r *QueryResults) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		r.IsError = true
		r.Error = s
		r.Rows = nil
		return nil
	}
	r.IsError = false
	r.Error = ""
	return json.Unmarshal(data, &r.Rows)
}

// resultsFile is the on-disk shape of one <kb>.<engine>.results.yaml file.
type resultsFile struct {
	Name        string        `yaml:"name"`
	Description string        `yaml:"description"`
	Scale       float64       `yaml:"scale"`
	Timeout     *float64      `yaml:"timeout"`
	IndexTime   *float64      `yaml:"index_time"`
	IndexSize   *float64      `yaml:"index_size"`
	Queries     []QueryRecord `yaml:"queries"`
}
