// internal/report/report.go
// Package report renders a standalone HTML report of the evaluation results.
package report

import (
	"bytes"
	"encoding/json"
	"html/template"
	"time"

	"github.com/qeval/qeval/internal/export"
	"github.com/qeval/qeval/internal/perfdata"
)

type reportData struct {
	Title     string
	Generated string
	KBs       []reportKB
	DataJSON  template.JS
}

type reportKB struct {
	Name        string
	Description string
	Overview    export.Table
	Comparison  export.Table
}

// Generate renders the full dashboard into one self-contained HTML file:
// every knowledge base's aggregate table and cross-engine comparison, with
// the raw document inlined as JSON for downstream tooling.
func Generate(doc *perfdata.Document) (string, error) {
	payload, err := json.Marshal(doc)
	if err != nil {
		return "", err
	}

	data := reportData{
		Title:     doc.AdditionalData.Title,
		Generated: time.Now().UTC().Format(time.RFC3339),
		DataJSON:  template.JS(payload),
	}
	for _, kb := range doc.SortedKBs() {
		info := doc.AdditionalData.KBs[kb]
		overview, err := export.OverviewTable(doc, kb)
		if err != nil {
			return "", err
		}
		comparison, err := export.ComparisonTable(doc, kb)
		if err != nil {
			return "", err
		}
		data.KBs = append(data.KBs, reportKB{
			Name:        info.Name,
			Description: info.Description,
			Overview:    overview,
			Comparison:  comparison,
		})
	}

	var buf bytes.Buffer
	if err := reportTemplate.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}

var reportTemplate = template.Must(template.New("evaluation-report").Parse(reportTemplateHTML))

const reportTemplateHTML = `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1">
  <title>{{ .Title }}</title>
  <style>
    body { font-family: system-ui, sans-serif; margin: 0 auto; max-width: 70rem; padding: 1rem; color: #0f172a; }
    table { border-collapse: collapse; margin: 0.5rem 0 1.5rem; }
    th, td { border: 1px solid #e2e8f0; padding: 0.35rem 0.7rem; text-align: left; }
    th { background: #f1f5f9; }
    footer { color: #64748b; font-size: 0.85rem; margin-top: 2rem; }
  </style>
</head>
<body>
<h1>{{ .Title }}</h1>
{{ range .KBs }}
<h2>{{ .Name }}</h2>
<p>{{ .Description }}</p>
<h3>Aggregate metrics</h3>
<table>
  <thead><tr>{{ range .Overview.Header }}<th>{{ . }}</th>{{ end }}</tr></thead>
  <tbody>{{ range .Overview.Rows }}<tr>{{ range . }}<td>{{ . }}</td>{{ end }}</tr>{{ end }}</tbody>
</table>
<h3>Per-query comparison</h3>
<table>
  <thead><tr>{{ range .Comparison.Header }}<th>{{ . }}</th>{{ end }}</tr></thead>
  <tbody>{{ range .Comparison.Rows }}<tr>{{ range . }}<td>{{ . }}</td>{{ end }}</tr>{{ end }}</tbody>
</table>
{{ end }}
<footer>Generated {{ .Generated }}</footer>
<script type="application/json" id="performance-data">{{ .DataJSON }}</script>
</body>
</html>`
