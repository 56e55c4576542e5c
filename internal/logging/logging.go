package logging

import (
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"
)

var (
	mu      sync.Mutex
	logFile *os.File
)

// Init routes the standard logger to stdout and, when logPath is non-empty,
// additionally to a log file. Parent directories are created as needed.
func Init(logPath string) error {
	mu.Lock()
	defer mu.Unlock()

	if logFile != nil {
		_ = logFile.Close()
		logFile = nil
	}

	var writers []io.Writer
	writers = append(writers, os.Stdout)

	if logPath != "" {
		if dir := filepath.Dir(logPath); dir != "" && dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return err
			}
		}
		file, err := os.OpenFile(logPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return err
		}
		logFile = file
		writers = append(writers, logFile)
	}

	log.SetOutput(io.MultiWriter(writers...))
	return nil
}

// Close detaches the log file and restores logging to stderr.
func Close() error {
	mu.Lock()
	defer mu.Unlock()
	if logFile == nil {
		return nil
	}
	log.SetOutput(os.Stderr)
	err := logFile.Close()
	logFile = nil
	return err
}

// LogEvent writes a formatted application event to the log.
func LogEvent(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	log.Println(msg)
}

// LogHTTPRequest records one served HTTP request.
func LogHTTPRequest(r *http.Request, status int, elapsed time.Duration) {
	log.Println(buildHTTPMessage(r, status, elapsed))
}

func buildHTTPMessage(r *http.Request, status int, elapsed time.Duration) string {
	method := strings.ToUpper(strings.TrimSpace(r.Method))
	if method == "" {
		method = "GET"
	}
	path := r.URL.Path
	if path == "" {
		path = "/"
	}
	parts := []string{fmt.Sprintf("[HTTP] %s %s", method, path)}
	if q := r.URL.RawQuery; q != "" {
		parts = append(parts, fmt.Sprintf("query=%s", q))
	}
	parts = append(parts, fmt.Sprintf("status=%d", status))
	parts = append(parts, fmt.Sprintf("elapsed=%s", elapsed.Round(time.Millisecond)))
	if remote := strings.TrimSpace(r.RemoteAddr); remote != "" {
		parts = append(parts, fmt.Sprintf("remote=%s", remote))
	}
	return strings.Join(parts, " ")
}
