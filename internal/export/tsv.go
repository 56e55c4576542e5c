// internal/export/tsv.go
// Package export renders dashboard tables as tab-separated values.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/qeval/qeval/internal/compare"
	"github.com/qeval/qeval/internal/perfdata"
)

// Table is one exportable dashboard table.
type Table struct {
	Header []string
	Rows   [][]string
}

// WriteTSV writes the table with tab separators, flushing after every row so
// partial output survives an interrupted write.
func WriteTSV(w io.Writer, table Table) error {
	tsv := csv.NewWriter(w)
	tsv.Comma = '\t'

	if err := tsv.Write(table.Header); err != nil {
		return err
	}
	tsv.Flush()

	for _, row := range table.Rows {
		if err := tsv.Write(row); err != nil {
			return err
		}
		tsv.Flush()
	}
	return tsv.Error()
}

// WriteTSVFile writes the table to path, creating parent directories.
func WriteTSVFile(path string, table Table) error {
	if dir := filepath.Dir(path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("unable to create directory for %s: %w", path, err)
		}
	}
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("unable to create %s: %w", path, err)
	}
	defer file.Close()
	return WriteTSV(file, table)
}

// OverviewTable builds the aggregate-metrics table for one knowledge base:
// one row per engine, the index time and size formatted with the shared
// units chosen across all engines.
func OverviewTable(doc *perfdata.Document, kb string) (Table, error) {
	engines := doc.PerformanceData[kb]
	if engines == nil {
		return Table{}, fmt.Errorf("unknown knowledge base %q", kb)
	}

	var indexTimes, indexSizes []float64
	for _, stats := range engines {
		if stats.IndexTime != nil {
			indexTimes = append(indexTimes, *stats.IndexTime)
		}
		if stats.IndexSize != nil {
			indexSizes = append(indexSizes, *stats.IndexSize)
		}
	}
	timeUnit := perfdata.SelectTimeUnit(indexTimes)
	sizeUnit := perfdata.SelectSizeUnit(indexSizes)

	table := Table{Header: []string{
		"Engine", "Gmean (2x penalty)", "Gmean (10x penalty)", "Median", "Mean",
		"Index time", "Index size", "< 1 s", "1 s - 5 s", "> 5 s", "Failed",
	}}
	for _, engine := range doc.SortedEngines(kb) {
		stats := engines[engine]
		table.Rows = append(table.Rows, []string{
			engine,
			formatSeconds(stats.GmeanTime2),
			formatSeconds(stats.GmeanTime10),
			formatSeconds(stats.MedianTime),
			formatSeconds(stats.AmeanTime),
			formatWithUnit(stats.IndexTime, timeUnit),
			formatWithUnit(stats.IndexSize, sizeUnit),
			formatPercent(stats.Under1s),
			formatPercent(stats.Between1to5s),
			formatPercent(stats.Over5s),
			formatPercent(stats.Failed),
		})
	}
	return table, nil
}

// DetailsTable builds the per-query table for one engine on one knowledge base.
func DetailsTable(doc *perfdata.Document, kb, engine string) (Table, error) {
	engines := doc.PerformanceData[kb]
	if engines == nil {
		return Table{}, fmt.Errorf("unknown knowledge base %q", kb)
	}
	stats := engines[engine]
	if stats == nil {
		return Table{}, fmt.Errorf("unknown engine %q for knowledge base %q", engine, kb)
	}

	table := Table{Header: []string{"Query", "Runtime", "Result size", "Status"}}
	for _, query := range stats.Queries {
		status := "ok"
		size := ""
		if query.Failed() {
			status = "failed: " + query.Results.Error
		} else if query.ResultSize != nil {
			size = perfdata.FormatCount(*query.ResultSize)
		} else {
			size = perfdata.FormatCount(int64(len(query.Results.Rows)))
		}
		table.Rows = append(table.Rows, []string{
			query.Name,
			fmt.Sprintf("%.3f", query.RuntimeInfo.ClientTime),
			size,
			status,
		})
	}
	return table, nil
}

// ComparisonTable builds the cross-engine comparison for one knowledge base:
// one row per query, one runtime column per engine, and the majority result
// size in the last column.
func ComparisonTable(doc *perfdata.Document, kb string) (Table, error) {
	engines := doc.PerformanceData[kb]
	if engines == nil {
		return Table{}, fmt.Errorf("unknown knowledge base %q", kb)
	}
	order := doc.SortedEngines(kb)
	queryMap := compare.Flatten(engines)

	table := Table{Header: append(append([]string{"Query"}, order...), "Result size")}
	for _, name := range queryMap.QueryNames() {
		perEngine := queryMap[name]
		row := []string{name}
		for _, engine := range order {
			record := perEngine[engine]
			switch {
			case record == nil:
				row = append(row, "")
			case record.Failed():
				row = append(row, "failed")
			default:
				row = append(row, fmt.Sprintf("%.3f", record.RuntimeInfo.ClientTime))
			}
		}
		row = append(row, compare.MajorityResultSize(perEngine))
		table.Rows = append(table.Rows, row)
	}
	return table, nil
}

func formatSeconds(v *float64) string {
	if v == nil {
		return "N/A"
	}
	return fmt.Sprintf("%.2f s", *v)
}

func formatWithUnit(v *float64, unit perfdata.Unit) string {
	if v == nil {
		return "N/A"
	}
	return unit.Format(*v)
}

func formatPercent(v float64) string {
	return fmt.Sprintf("%.1f %%", v)
}
