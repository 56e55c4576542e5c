// internal/webapp/templates.go
package webapp

import "html/template"

var (
	indexTemplate      = mustPage("index", indexHTML)
	detailsTemplate    = mustPage("details", detailsHTML)
	comparisonTemplate = mustPage("comparison", comparisonHTML)
	execTreesTemplate  = mustPage("exec-trees", execTreesHTML)
	notFoundTemplate   = mustPage("not-found", notFoundHTML)
	errorTemplate      = mustPage("error", errorHTML)
)

func mustPage(name, content string) *template.Template {
	return template.Must(template.New(name).Parse(layoutHead + content + layoutFoot))
}

const layoutHead = `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1">
  <title>{{ .Title }}</title>
  <style>
    body { font-family: system-ui, sans-serif; margin: 0; background: #f8fafc; color: #0f172a; }
    header { background: #334155; color: #f1f5f9; padding: 0.8rem 1.5rem; }
    header a { color: #f1f5f9; text-decoration: none; margin-right: 1rem; }
    main { padding: 1rem 1.5rem; }
    h2 { margin-top: 2rem; }
    table { border-collapse: collapse; background: #fff; margin: 0.5rem 0 1rem; }
    th, td { border: 1px solid #e2e8f0; padding: 0.35rem 0.7rem; text-align: left; }
    th { background: #f1f5f9; }
    td.best { background: #dcfce7; font-weight: 600; }
    td.failed { background: #fee2e2; }
    td.missing { color: #94a3b8; }
    td.no-consensus { color: #b45309; font-style: italic; }
    .links a { margin-right: 0.8rem; }
    .export { font-size: 0.85rem; }
    pre.sparql { background: #f1f5f9; padding: 0.5rem; overflow-x: auto; }
    ul.tree, ul.tree ul { list-style: none; padding-left: 1.2rem; }
    ul.tree span.cached { background: #fef9c3; }
    ul.tree small { color: #64748b; }
    .error-box { background: #fee2e2; border: 1px solid #fca5a5; padding: 0.8rem; }
  </style>
</head>
<body>
<header><a href="/">{{ .Title }}</a></header>
<main>
`

const layoutFoot = `
</main>
</body>
</html>`

const indexHTML = `{{ range .KBs }}
<h2>{{ .Name }}</h2>
<p>{{ .Description }}</p>
<table>
  <thead><tr>{{ range .Table.Header }}<th>{{ . }}</th>{{ end }}</tr></thead>
  <tbody>
  {{ range .Table.Rows }}<tr>{{ range . }}<td>{{ . }}</td>{{ end }}</tr>
  {{ end }}</tbody>
</table>
<p class="links">
  {{ $kb := .Key }}
  {{ range .Engines }}<a href="/details?kb={{ $kb }}&engine={{ . }}">{{ . }} details</a>{{ end }}
  <a href="/comparison?kb={{ .Key }}">comparison</a>
  <a class="export" href="/export?page=overview&kb={{ .Key }}">TSV</a>
</p>
{{ end }}`

const detailsHTML = `<h2>{{ .KBName }} — {{ .Engine }}</h2>
<p class="links">
  <a href="/comparison?kb={{ .KBKey }}">comparison</a>
  <a class="export" href="/export?page=details&kb={{ .KBKey }}&engine={{ .Engine }}">TSV</a>
</p>
<table>
  <thead><tr><th>Query</th><th>Runtime</th><th>Result size</th><th>Status</th><th>Execution tree</th></tr></thead>
  <tbody>
  {{ $view := . }}
  {{ range .Queries }}<tr>
    <td>{{ .Name }}</td>
    <td>{{ .Runtime }}</td>
    <td>{{ .ResultSize }}</td>
    {{ if .Failed }}<td class="failed">{{ .Error }}</td>{{ else }}<td>ok</td>{{ end }}
    <td>{{ if .HasTree }}<a href="/compareExecTrees?kb={{ $view.KBKey }}&q={{ .Name }}">show</a>{{ end }}</td>
  </tr>
  <tr><td colspan="5"><pre class="sparql">{{ .SPARQL }}</pre></td></tr>
  {{ end }}</tbody>
</table>`

const comparisonHTML = `<h2>{{ .KBName }} — engine comparison</h2>
<p class="links"><a class="export" href="/export?page=comparison&kb={{ .KBKey }}">TSV</a></p>
<table>
  <thead><tr><th>Query</th>{{ range .Engines }}<th>{{ . }}</th>{{ end }}<th>Result size</th></tr></thead>
  <tbody>
  {{ $view := . }}
  {{ range .Rows }}<tr>
    <td><a href="/compareExecTrees?kb={{ $view.KBKey }}&q={{ .Query }}">{{ .Query }}</a></td>
    {{ range .Cells }}<td class="{{ if .Best }}best{{ else if .Failed }}failed{{ else if .Missing }}missing{{ end }}">{{ .Text }}</td>{{ end }}
    {{ if .NoConsensus }}<td class="no-consensus">{{ .MajoritySize }}</td>{{ else }}<td>{{ .MajoritySize }}</td>{{ end }}
  </tr>
  {{ end }}</tbody>
</table>`

const execTreesHTML = `{{ define "node" }}<li>
  <span class="node{{ if .Cached }} cached{{ end }}" style="font-size: {{ .FontSize }}px">
    {{ .Description }}
    <small>{{ printf "%.1f" .TotalTime }} ms &middot; {{ .ResultRows }} rows{{ if .Cached }} &middot; cached{{ end }}</small>
  </span>
  {{ if .Children }}<ul>{{ range .Children }}{{ template "node" . }}{{ end }}</ul>{{ end }}
</li>{{ end }}<h2>{{ .KBName }} — execution trees for {{ .Query }}</h2>
<p class="links"><a href="/comparison?kb={{ .KBKey }}">back to comparison</a></p>
{{ range .Trees }}
<h3>{{ .Engine }}{{ if .HasTree }} (depth {{ .Depth }}){{ end }}</h3>
{{ if .HasTree }}<ul class="tree">{{ template "node" .Root }}</ul>
{{ else }}<p>No execution tree reported.</p>{{ end }}
{{ end }}`

const notFoundHTML = `<div class="error-box">
<h2>Not found</h2>
<p>There is no {{ .Resource }} in the loaded results.</p>
<p><a href="/">Back to the overview</a></p>
</div>`

const errorHTML = `<div class="error-box">
<h2>Error</h2>
<p>{{ .Message }}</p>
<p><a href="/">Back to the overview</a></p>
</div>`
