// internal/webapp/handlers.go
package webapp

import (
	"encoding/json"
	"fmt"
	"html/template"
	"net/http"

	"github.com/qeval/qeval/internal/export"
	"github.com/qeval/qeval/internal/logging"
)

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		s.renderNotFound(w, fmt.Sprintf("page %q", r.URL.Path))
		return
	}
	view, err := s.buildIndexView()
	if err != nil {
		s.renderError(w, err)
		return
	}
	s.render(w, indexTemplate, view)
}

func (s *Server) handleYAMLData(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(s.doc); err != nil {
		logging.LogEvent("encoding performance data: %v", err)
	}
}

func (s *Server) handleDetails(w http.ResponseWriter, r *http.Request) {
	kb := r.URL.Query().Get("kb")
	engine := r.URL.Query().Get("engine")
	view, err := s.buildDetailsView(kb, engine)
	if err != nil {
		s.renderNotFound(w, err.Error())
		return
	}
	s.render(w, detailsTemplate, view)
}

func (s *Server) handleComparison(w http.ResponseWriter, r *http.Request) {
	view, err := s.buildComparisonView(r.URL.Query().Get("kb"))
	if err != nil {
		s.renderNotFound(w, err.Error())
		return
	}
	s.render(w, comparisonTemplate, view)
}

func (s *Server) handleCompareExecTrees(w http.ResponseWriter, r *http.Request) {
	kb := r.URL.Query().Get("kb")
	queryName := r.URL.Query().Get("q")
	view, err := s.buildExecTreesView(kb, queryName)
	if err != nil {
		s.renderNotFound(w, err.Error())
		return
	}
	s.render(w, execTreesTemplate, view)
}

// handleExport streams one dashboard table as a TSV download.
func (s *Server) handleExport(w http.ResponseWriter, r *http.Request) {
	page := r.URL.Query().Get("page")
	kb := r.URL.Query().Get("kb")
	engine := r.URL.Query().Get("engine")

	var (
		table    export.Table
		filename string
		err      error
	)
	switch page {
	case "overview":
		table, err = export.OverviewTable(s.doc, kb)
		filename = fmt.Sprintf("%s.overview.tsv", kb)
	case "details":
		table, err = export.DetailsTable(s.doc, kb, engine)
		filename = fmt.Sprintf("%s.%s.details.tsv", kb, engine)
	case "comparison":
		table, err = export.ComparisonTable(s.doc, kb)
		filename = fmt.Sprintf("%s.comparison.tsv", kb)
	default:
		s.renderNotFound(w, fmt.Sprintf("export page %q", page))
		return
	}
	if err != nil {
		s.renderNotFound(w, err.Error())
		return
	}

	w.Header().Set("Content-Type", "text/tab-separated-values; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	if err := export.WriteTSV(w, table); err != nil {
		logging.LogEvent("writing TSV export: %v", err)
	}
}

func (s *Server) render(w http.ResponseWriter, tmpl *template.Template, view any) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := tmpl.Execute(w, view); err != nil {
		logging.LogEvent("rendering %s: %v", tmpl.Name(), err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
	}
}

func (s *Server) renderNotFound(w http.ResponseWriter, resource string) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusNotFound)
	view := struct {
		Title    string
		Resource string
	}{s.doc.AdditionalData.Title, resource}
	if err := notFoundTemplate.Execute(w, view); err != nil {
		logging.LogEvent("rendering not-found page: %v", err)
	}
}

func (s *Server) renderError(w http.ResponseWriter, err error) {
	logging.LogEvent("building page: %v", err)
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusInternalServerError)
	view := struct {
		Title   string
		Message string
	}{s.doc.AdditionalData.Title, "Something went wrong while preparing the page."}
	if tmplErr := errorTemplate.Execute(w, view); tmplErr != nil {
		logging.LogEvent("rendering error page: %v", tmplErr)
	}
}
