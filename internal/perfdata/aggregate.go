// internal/perfdata/aggregate.go
package perfdata

import (
	"math"
	"sort"
)

// Penalty factors applied to the runtime of failed queries. Two geometric
// means are published, one per factor, so the dashboard can show how
// sensitive the ranking is to the chosen penalty.
const (
	penaltyLow  = 2
	penaltyHigh = 10
)

// minRuntime guards the geometric mean against zero runtimes that would
// otherwise collapse the product.
const minRuntime = 1e-6

// computeEngineStats turns the raw per-query records of one results file into
// the aggregate statistics displayed by the webapp. A failed query
// contributes the timeout (or, without a configured timeout, its own
// runtime) multiplied by the penalty factor. The computation is a single
// pass and independent of query order for every published metric.
func computeEngineStats(res resultsFile) *EngineStats {
	stats := &EngineStats{
		Timeout:   res.Timeout,
		IndexTime: res.IndexTime,
		IndexSize: res.IndexSize,
		Queries:   res.Queries,
	}
	if len(res.Queries) == 0 {
		return stats
	}

	var failed, under1, between1to5, over5 int
	runtimesLow := make([]float64, 0, len(res.Queries))
	runtimesHigh := make([]float64, 0, len(res.Queries))

	for _, query := range res.Queries {
		runtime := query.RuntimeInfo.ClientTime
		if query.Failed() {
			failed++
			penaltyBase := runtime
			if res.Timeout != nil {
				penaltyBase = *res.Timeout
			}
			runtimesLow = append(runtimesLow, penaltyBase*penaltyLow)
			runtimesHigh = append(runtimesHigh, penaltyBase*penaltyHigh)
			continue
		}
		switch {
		case runtime <= 1:
			under1++
		case runtime > 5:
			over5++
		default:
			between1to5++
		}
		runtimesLow = append(runtimesLow, runtime)
		runtimesHigh = append(runtimesHigh, runtime)
	}

	n := float64(len(res.Queries))
	stats.AmeanTime = ptr(arithmeticMean(runtimesLow))
	stats.GmeanTime2 = ptr(geometricMean(runtimesLow))
	stats.GmeanTime10 = ptr(geometricMean(runtimesHigh))
	stats.MedianTime = ptr(median(runtimesLow))
	stats.Failed = float64(failed) / n * 100
	stats.Under1s = float64(under1) / n * 100
	stats.Between1to5s = float64(between1to5) / n * 100
	stats.Over5s = float64(over5) / n * 100
	return stats
}

func ptr(v float64) *float64 { return &v }

func arithmeticMean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

func geometricMean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	var logSum float64
	for _, v := range values {
		if v < minRuntime {
			v = minRuntime
		}
		logSum += math.Log(v)
	}
	return math.Exp(logSum / float64(len(values)))
}

func median(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)
	mid := len(sorted) / 2
	if len(sorted)%2 == 0 {
		return (sorted[mid-1] + sorted[mid]) / 2
	}
	return sorted[mid]
}
