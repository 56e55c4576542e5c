// internal/cli/report_entry_test.go
package qeval

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/qeval/qeval/internal/appconfig"
	"github.com/spf13/cobra"
)

const olympicsYAML = `name: Olympics
description: 120 years of Olympics data
scale: 1
timeout: 30
index_time: 95
index_size: 350000000
queries:
  - name: all-gold-medals
    query: "select ?x where { ?x ?y ?z . }"
    runtime_info:
      client_time: 0.35
    headers: ["?x"]
    results:
      - ["a"]
    result_size: 1
`

func writeOlympicsResults(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "olympics.qlever.results.yaml")
	if err := os.WriteFile(path, []byte(olympicsYAML), 0o644); err != nil {
		t.Fatal(err)
	}
	return dir
}

func newTestCommand() (*cobra.Command, *bytes.Buffer) {
	cmd := &cobra.Command{}
	buf := &bytes.Buffer{}
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	return cmd, buf
}

func TestRunReport(t *testing.T) {
	dir := writeOlympicsResults(t)
	cfg := &appconfig.Config{ResultsDir: dir, Title: "CLI Test"}
	outDir := t.TempDir()
	opts := reportOptions{
		outputPath: filepath.Join(outDir, "report.html"),
		dataPath:   filepath.Join(outDir, "data.json"),
	}

	cmd, buf := newTestCommand()
	if err := runReport(cmd, cfg, opts); err != nil {
		t.Fatalf("runReport: %v", err)
	}

	html, err := os.ReadFile(opts.outputPath)
	if err != nil {
		t.Fatalf("report not written: %v", err)
	}
	if !strings.Contains(string(html), "CLI Test") {
		t.Error("report missing the configured title")
	}
	if _, err := os.Stat(opts.dataPath); err != nil {
		t.Errorf("data JSON not written: %v", err)
	}
	if !strings.Contains(buf.String(), "Report written to") {
		t.Errorf("missing confirmation output, got %q", buf.String())
	}
}

func TestRunReportMissingResultsDir(t *testing.T) {
	cfg := &appconfig.Config{ResultsDir: filepath.Join(t.TempDir(), "nope")}
	cmd, _ := newTestCommand()

	if err := runReport(cmd, cfg, reportOptions{outputPath: filepath.Join(t.TempDir(), "r.html")}); err == nil {
		t.Fatal("expected an error for a missing results directory")
	}
}

func TestRunReportNilConfig(t *testing.T) {
	cmd, _ := newTestCommand()
	if err := runReport(cmd, nil, reportOptions{}); err == nil {
		t.Fatal("expected an error when the configuration is not loaded")
	}
}
