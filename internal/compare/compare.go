// internal/compare/compare.go
// Package compare builds the per-query cross-engine comparison.
package compare

import (
	"sort"

	"github.com/qeval/qeval/internal/perfdata"
)

// NoConsensus is the distinguished result-size label reported when the most
// frequent size is tied between two or more values.
const NoConsensus = "no consensus"

// QueryMap maps query name → engine name → that engine's record for the query.
type QueryMap map[string]map[string]*perfdata.QueryRecord

// Flatten turns the per-engine query lists of one knowledge base into a
// QueryMap keyed by query name.
func Flatten(engines map[string]*perfdata.EngineStats) QueryMap {
	qm := make(QueryMap)
	for engine, stats := range engines {
		if stats == nil {
			continue
		}
		for i := range stats.Queries {
			query := &stats.Queries[i]
			if qm[query.Name] == nil {
				qm[query.Name] = make(map[string]*perfdata.QueryRecord)
			}
			qm[query.Name][engine] = query
		}
	}
	return qm
}

// QueryNames returns the query names of a QueryMap in alphabetical order.
func (qm QueryMap) QueryNames() []string {
	names := make([]string, 0, len(qm))
	for name := range qm {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// BestRuntime returns the engine with the minimum successful runtime for one
// query, walking engines in the given order so that the first minimum wins a
// tie. ok is false when every engine failed the query.
func BestRuntime(perEngine map[string]*perfdata.QueryRecord, engineOrder []string) (engine string, runtime float64, ok bool) {
	for _, name := range engineOrder {
		record, present := perEngine[name]
		if !present || record.Failed() {
			continue
		}
		t := record.RuntimeInfo.ClientTime
		if !ok || t < runtime {
			engine, runtime, ok = name, t, true
		}
	}
	return engine, runtime, ok
}

// MajorityResultSize returns the most frequent result-size label across
// engines for one query. Failed runs carry no size and are skipped. An exact
// tie for the top count yields NoConsensus rather than an arbitrary winner,
// so the outcome is independent of engine order.
func MajorityResultSize(perEngine map[string]*perfdata.QueryRecord) string {
	counts := make(map[string]int)
	for _, record := range perEngine {
		if record == nil || record.Failed() {
			continue
		}
		counts[resultSizeLabel(record)]++
	}
	if len(counts) == 0 {
		return ""
	}

	best, bestCount, tied := "", 0, false
	for label, count := range counts {
		switch {
		case count > bestCount:
			best, bestCount, tied = label, count, false
		case count == bestCount:
			tied = true
		}
	}
	if tied {
		return NoConsensus
	}
	return best
}

// resultSizeLabel normalizes a record's result size for counting: the
// declared result_size if present, otherwise the number of result rows.
func resultSizeLabel(record *perfdata.QueryRecord) string {
	if record.ResultSize != nil {
		return perfdata.FormatCount(*record.ResultSize)
	}
	return perfdata.FormatCount(int64(len(record.Results.Rows)))
}
