// Package config loads the service configuration from the environment.
// Every setting has a default, so the service starts with no environment at all.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"
)

// Audit backends
const (
	AuditBackendCSV    = "csv"
	AuditBackendSQLite = "sqlite"
)

// Config holds everything the service needs. It is passed explicitly to the
// components that use it.
type Config struct {
	// TablePath is the grade table file (default: <service dir>/notas.csv)
	TablePath string

	// LogPath is the audit log file (default: <service dir>/consultas.csv)
	LogPath string

	// Delimiter separates fields in both the table and the audit log (default: ',')
	Delimiter rune

	// Port is the HTTP port (default: 8080)
	Port string

	// AuditBackend selects where audit entries go: "csv" or "sqlite" (default: csv)
	AuditBackend string

	// AuditDBPath is the SQLite file used by the sqlite backend (default: <service dir>/consultas.db)
	AuditDBPath string

	// TrustProxyHeaders takes the client IP from X-Forwarded-For / X-Real-IP
	TrustProxyHeaders bool

	LogLevel        string
	ShutdownTimeout time.Duration
}

// Load builds a Config from environment variables, falling back to defaults
// rooted at the directory of the running executable.
func Load() (*Config, error) {
	baseDir, err := serviceDir()
	if err != nil {
		return nil, err
	}
	return LoadFrom(baseDir, os.Getenv)
}

// LoadFrom builds a Config using baseDir for default file locations and getenv
// for lookups.
func LoadFrom(baseDir string, getenv func(string) string) (*Config, error) {
	cfg := &Config{
		TablePath:       envOr(getenv, "NOTAS_FILE", filepath.Join(baseDir, "notas.csv")),
		LogPath:         envOr(getenv, "CONSULTAS_FILE", filepath.Join(baseDir, "consultas.csv")),
		Port:            envOr(getenv, "PORT", "8080"),
		AuditBackend:    strings.ToLower(envOr(getenv, "AUDIT_BACKEND", AuditBackendCSV)),
		AuditDBPath:     envOr(getenv, "AUDIT_DB_FILE", filepath.Join(baseDir, "consultas.db")),
		LogLevel:        envOr(getenv, "LOG_LEVEL", "info"),
		ShutdownTimeout: 10 * time.Second,
		Delimiter:       ',',
	}

	if d := getenv("CSV_DELIMITER"); d != "" {
		if utf8.RuneCountInString(d) != 1 {
			return nil, fmt.Errorf("CSV_DELIMITER must be a single character, got %q", d)
		}
		cfg.Delimiter, _ = utf8.DecodeRuneInString(d)
	}

	if v := getenv("TRUST_PROXY_HEADERS"); v != "" {
		trust, err := strconv.ParseBool(v)
		if err != nil {
			return nil, fmt.Errorf("invalid TRUST_PROXY_HEADERS %q: %w", v, err)
		}
		cfg.TrustProxyHeaders = trust
	}

	if v := getenv("SHUTDOWN_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return nil, fmt.Errorf("invalid SHUTDOWN_TIMEOUT %q: %w", v, err)
		}
		cfg.ShutdownTimeout = d
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the settings that cannot be defaulted away.
func (c *Config) Validate() error {
	if _, err := strconv.ParseUint(c.Port, 10, 16); err != nil {
		return fmt.Errorf("invalid PORT %q", c.Port)
	}

	switch c.AuditBackend {
	case AuditBackendCSV, AuditBackendSQLite:
	default:
		return fmt.Errorf("unknown AUDIT_BACKEND %q (want %q or %q)", c.AuditBackend, AuditBackendCSV, AuditBackendSQLite)
	}

	switch c.Delimiter {
	case '"', '\r', '\n', utf8.RuneError:
		return fmt.Errorf("invalid CSV_DELIMITER %q", c.Delimiter)
	}

	if c.TablePath == "" || c.LogPath == "" {
		return fmt.Errorf("table and log paths must not be empty")
	}

	return nil
}

// Addr returns the listen address.
func (c *Config) Addr() string {
	return ":" + c.Port
}

// serviceDir returns the directory holding the running executable.
func serviceDir() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", fmt.Errorf("failed to locate executable: %w", err)
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}
	return filepath.Dir(exe), nil
}

func envOr(getenv func(string) string, key, fallback string) string {
	if v := strings.TrimSpace(getenv(key)); v != "" {
		return v
	}
	return fallback
}
