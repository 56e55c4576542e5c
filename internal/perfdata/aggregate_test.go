// internal/perfdata/aggregate_test.go
package perfdata

import (
	"math"
	"testing"
)

func successfulQuery(name string, runtime float64) QueryRecord {
	return QueryRecord{
		Name:        name,
		Headers:     []string{"?x"},
		Results:     QueryResults{Rows: [][]any{{"a"}}},
		RuntimeInfo: RuntimeInfo{ClientTime: runtime},
	}
}

func failedQuery(name string, runtime float64) QueryRecord {
	return QueryRecord{
		Name:        name,
		Results:     QueryResults{IsError: true, Error: "HTTP 500"},
		RuntimeInfo: RuntimeInfo{ClientTime: runtime},
	}
}

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestComputeEngineStatsAllSuccessful(t *testing.T) {
	timeout := 30.0
	res := resultsFile{
		Timeout: &timeout,
		Queries: []QueryRecord{
			successfulQuery("q1", 0.5),
			successfulQuery("q2", 2.0),
			successfulQuery("q3", 8.0),
		},
	}

	stats := computeEngineStats(res)

	if !almostEqual(*stats.AmeanTime, (0.5+2.0+8.0)/3) {
		t.Errorf("AmeanTime = %v", *stats.AmeanTime)
	}
	if !almostEqual(*stats.MedianTime, 2.0) {
		t.Errorf("MedianTime = %v", *stats.MedianTime)
	}
	wantGmean := math.Exp((math.Log(0.5) + math.Log(2.0) + math.Log(8.0)) / 3)
	if !almostEqual(*stats.GmeanTime2, wantGmean) {
		t.Errorf("GmeanTime2 = %v, want %v", *stats.GmeanTime2, wantGmean)
	}
	// Without failures both penalty variants agree.
	if !almostEqual(*stats.GmeanTime2, *stats.GmeanTime10) {
		t.Errorf("penalty variants should agree without failures: %v vs %v", *stats.GmeanTime2, *stats.GmeanTime10)
	}
	if !almostEqual(stats.Under1s, 100.0/3) || !almostEqual(stats.Between1to5s, 100.0/3) || !almostEqual(stats.Over5s, 100.0/3) {
		t.Errorf("buckets = %v/%v/%v, want one third each", stats.Under1s, stats.Between1to5s, stats.Over5s)
	}
	if stats.Failed != 0 {
		t.Errorf("Failed = %v, want 0", stats.Failed)
	}
}

func TestComputeEngineStatsFailurePenalties(t *testing.T) {
	timeout := 30.0
	res := resultsFile{
		Timeout: &timeout,
		Queries: []QueryRecord{
			successfulQuery("q1", 1.0),
			failedQuery("q2", 12.0),
		},
	}

	stats := computeEngineStats(res)

	// Failed query contributes timeout*2 to the low-penalty list and
	// timeout*10 to the high-penalty one.
	if !almostEqual(*stats.AmeanTime, (1.0+60.0)/2) {
		t.Errorf("AmeanTime = %v, want 30.5", *stats.AmeanTime)
	}
	wantG2 := math.Exp((math.Log(1.0) + math.Log(60.0)) / 2)
	wantG10 := math.Exp((math.Log(1.0) + math.Log(300.0)) / 2)
	if !almostEqual(*stats.GmeanTime2, wantG2) {
		t.Errorf("GmeanTime2 = %v, want %v", *stats.GmeanTime2, wantG2)
	}
	if !almostEqual(*stats.GmeanTime10, wantG10) {
		t.Errorf("GmeanTime10 = %v, want %v", *stats.GmeanTime10, wantG10)
	}
	if !almostEqual(stats.Failed, 50) {
		t.Errorf("Failed = %v, want 50", stats.Failed)
	}
	if !almostEqual(stats.Under1s, 50) {
		t.Errorf("Under1s = %v, want 50", stats.Under1s)
	}
}

func TestComputeEngineStatsNoTimeoutUsesOwnRuntime(t *testing.T) {
	res := resultsFile{
		Queries: []QueryRecord{failedQuery("q1", 4.0)},
	}

	stats := computeEngineStats(res)

	if !almostEqual(*stats.AmeanTime, 8.0) {
		t.Errorf("AmeanTime = %v, want runtime*2 = 8", *stats.AmeanTime)
	}
	if !almostEqual(*stats.GmeanTime10, 40.0) {
		t.Errorf("GmeanTime10 = %v, want runtime*10 = 40", *stats.GmeanTime10)
	}
}

func TestComputeEngineStatsEmpty(t *testing.T) {
	stats := computeEngineStats(resultsFile{})

	if stats.AmeanTime != nil || stats.GmeanTime2 != nil || stats.MedianTime != nil {
		t.Error("aggregates must stay nil without queries")
	}
	if stats.Under1s != 0 || stats.Failed != 0 {
		t.Error("bucket percentages must stay zero without queries")
	}
}

// TestComputeEngineStatsOrderIndependent verifies that shuffling the query
// list does not change any aggregate.
func TestComputeEngineStatsOrderIndependent(t *testing.T) {
	timeout := 10.0
	queries := []QueryRecord{
		successfulQuery("a", 0.3),
		successfulQuery("b", 3.3),
		failedQuery("c", 2.0),
		successfulQuery("d", 7.7),
	}
	reversed := make([]QueryRecord, len(queries))
	for i, q := range queries {
		reversed[len(queries)-1-i] = q
	}

	s1 := computeEngineStats(resultsFile{Timeout: &timeout, Queries: queries})
	s2 := computeEngineStats(resultsFile{Timeout: &timeout, Queries: reversed})

	if !almostEqual(*s1.AmeanTime, *s2.AmeanTime) ||
		!almostEqual(*s1.GmeanTime2, *s2.GmeanTime2) ||
		!almostEqual(*s1.GmeanTime10, *s2.GmeanTime10) ||
		!almostEqual(*s1.MedianTime, *s2.MedianTime) {
		t.Error("aggregates must be independent of query order")
	}
}

func TestMedian(t *testing.T) {
	if got := median([]float64{3, 1, 2}); got != 2 {
		t.Errorf("odd median = %v, want 2", got)
	}
	if got := median([]float64{4, 1, 2, 3}); got != 2.5 {
		t.Errorf("even median = %v, want 2.5", got)
	}
}
