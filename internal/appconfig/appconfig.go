// internal/appconfig/appconfig.go
// Package appconfig manages loading and interpreting application configuration.
package appconfig

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"
)

const (
	// DefaultConfigPath is the default path to the application's configuration file.
	DefaultConfigPath = "config/config.json"
	// legacyConfigPath is the path to the configuration file used in previous versions.
	legacyConfigPath = "config.json"
	// defaultHost is the interface the evaluation webapp binds to.
	defaultHost = "localhost"
	// defaultPort is the port the evaluation webapp is served on.
	defaultPort = 8000
	// defaultTitle is the page title shown by the evaluation webapp.
	defaultTitle = "RDF Graph Database Performance Evaluation"
	// defaultShutdownTimeout bounds graceful HTTP server shutdown.
	defaultShutdownTimeout = 10 * time.Second
)

// Config represents the top-level application configuration.
type Config struct {
	Host            string `json:"host,omitempty"`
	Port            int    `json:"port,omitempty"`
	ResultsDir      string `json:"resultsDir,omitempty"`
	Title           string `json:"title,omitempty"`
	ReportPath      string `json:"report,omitempty"`
	ExportPath      string `json:"export,omitempty"`
	LogFile         string `json:"logFile,omitempty"`
	Debug           bool   `json:"debug"`
	ShutdownSeconds int    `json:"shutdownTimeout,omitempty"`
	ConfigPath      string `json:"-"`
}

// ListenAddr returns the host:port pair the webapp server binds to,
// applying defaults for unset fields.
func (c Config) ListenAddr() string {
	host := strings.TrimSpace(c.Host)
	if host == "" {
		host = defaultHost
	}
	port := c.Port
	if port <= 0 {
		port = defaultPort
	}
	return fmt.Sprintf("%s:%d", host, port)
}

// PageTitle returns the configured webapp title, falling back to the default.
func (c Config) PageTitle() string {
	if t := strings.TrimSpace(c.Title); t != "" {
		return t
	}
	return defaultTitle
}

// ResultsDirectory returns the directory scanned for results files,
// defaulting to the current working directory.
func (c Config) ResultsDirectory() string {
	if d := strings.TrimSpace(c.ResultsDir); d != "" {
		return d
	}
	return "."
}

// ShutdownTimeout returns the graceful-shutdown grace period for the server.
func (c Config) ShutdownTimeout() time.Duration {
	if c.ShutdownSeconds <= 0 {
		return defaultShutdownTimeout
	}
	return time.Duration(c.ShutdownSeconds) * time.Second
}

// LogFilePath returns the path to the application log file, applying a default if not set.
func (c Config) LogFilePath() string {
	if path := c.LogFile; strings.TrimSpace(path) != "" {
		return path
	}
	return "qeval.log"
}

// Load reads the application configuration from the specified path, with fallback to a legacy path.
func Load(path string) (Config, error) {
	if path == "" {
		path = DefaultConfigPath
	}

	config, err := loadFromPath(path)
	if err == nil {
		config.ConfigPath = path
		return config, nil
	}

	if errors.Is(err, os.ErrNotExist) {
		if path == DefaultConfigPath {
			config, legacyErr := loadFromPath(legacyConfigPath)
			if legacyErr == nil {
				config.ConfigPath = legacyConfigPath
				return config, nil
			}
			if errors.Is(legacyErr, os.ErrNotExist) {
				return Config{}, fmt.Errorf("no configuration file found (searched %q and %q)", DefaultConfigPath, legacyConfigPath)
			}
			return Config{}, fmt.Errorf("could not read config file %q: %w", legacyConfigPath, legacyErr)
		}
		return Config{}, fmt.Errorf("no configuration file found at %q", path)
	}

	return Config{}, fmt.Errorf("could not read config file %q: %w", path, err)
}

// loadFromPath is a helper function that loads the configuration from a specific file path.
func loadFromPath(path string) (Config, error) {
	file, err := os.Open(path)
	if err != nil {
		return Config{}, err
	}
	defer file.Close()

	var config Config
	if err := json.NewDecoder(file).Decode(&config); err != nil {
		return Config{}, err
	}

	return config, nil
}
