// internal/webapp/server.go
// Package webapp serves the evaluation dashboard over HTTP.
package webapp

import (
	"context"
	"net/http"
	"time"

	"github.com/qeval/qeval/internal/appconfig"
	"github.com/qeval/qeval/internal/logging"
	"github.com/qeval/qeval/internal/perfdata"
)

// Server renders the evaluation webapp for one loaded performance-data
// document. The document is read-mostly: loaded once at startup and never
// mutated by request handling.
type Server struct {
	cfg appconfig.Config
	doc *perfdata.Document
	mux *http.ServeMux
}

// New creates a Server and registers all routes.
func New(cfg appconfig.Config, doc *perfdata.Document) *Server {
	s := &Server{cfg: cfg, doc: doc, mux: http.NewServeMux()}

	s.mux.HandleFunc("GET /", s.handleIndex)
	s.mux.HandleFunc("GET /yaml_data", s.handleYAMLData)
	s.mux.HandleFunc("GET /details", s.handleDetails)
	s.mux.HandleFunc("GET /comparison", s.handleComparison)
	s.mux.HandleFunc("GET /compareExecTrees", s.handleCompareExecTrees)
	s.mux.HandleFunc("GET /export", s.handleExport)

	return s
}

// Handler returns the routing handler wrapped with request logging.
func (s *Server) Handler() http.Handler {
	return logRequests(s.mux)
}

// ListenAndServe runs the HTTP server until ctx is canceled, then shuts it
// down gracefully within the configured grace period.
func (s *Server) ListenAndServe(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.cfg.ListenAddr(),
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()
	logging.LogEvent("evaluation webapp listening on http://%s", srv.Addr)

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.ShutdownTimeout())
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}

// statusRecorder captures the response status for logging.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

func logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		logging.LogHTTPRequest(r, rec.status, time.Since(start))
	})
}
