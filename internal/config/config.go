// Package config reads the server settings from a .env file and the
// environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type SMTPConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	To       string
}

// Configured reports whether credentials are present.
func (s SMTPConfig) Configured() bool {
	return s.User != "" && s.Password != ""
}

type TrackingConfig struct {
	Enabled   bool
	Retention time.Duration
	Exclude   []string
}

type AdminConfig struct {
	Username string
	Password string
}

type Config struct {
	Port            int
	BasePath        string
	GinMode         string
	DatabasePath    string
	ExplorerBaseURL string
	ExplorerTimeout time.Duration
	LogLevel        string
	LogFormat       string
	MinifyHTML      bool
	ShutdownTimeout time.Duration

	SMTP     SMTPConfig
	Admin    AdminConfig
	Tracking TrackingConfig
}

func Default() *Config {
	return &Config{
		Port:            8080,
		GinMode:         "release",
		DatabasePath:    "data/folio.db",
		ExplorerBaseURL: "https://jsonplaceholder.typicode.com",
		ExplorerTimeout: 10 * time.Second,
		LogLevel:        "info",
		LogFormat:       "text",
		MinifyHTML:      true,
		ShutdownTimeout: 15 * time.Second,
		SMTP: SMTPConfig{
			Host: "smtp.gmail.com",
			Port: "587",
		},
		Admin: AdminConfig{
			Username: "admin",
			Password: "admin123",
		},
		Tracking: TrackingConfig{
			Enabled:   true,
			Retention: 365 * 24 * time.Hour,
			Exclude: []string{
				"/static/**",
				"/images/**",
				"/admin",
				"/admin/**",
				"/favicon*",
				"/privacy",
				"/metrics",
				"/healthz",
			},
		},
	}
}

// Load reads the .env files (missing files are skipped) and then the
// process environment on top of the defaults.
func Load(envFiles ...string) (*Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, f := range envFiles {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("load %s: %w", f, err)
		}
	}
	return FromEnv(os.LookupEnv)
}

// FromEnv builds a Config from lookup, which has the signature of
// os.LookupEnv.
func FromEnv(lookup func(string) (string, bool)) (*Config, error) {
	cfg := Default()
	e := env{lookup: lookup}

	cfg.Port = e.int("PORT", cfg.Port)
	cfg.BasePath = e.string("BASE_PATH", cfg.BasePath)
	cfg.GinMode = e.string("GIN_MODE", cfg.GinMode)
	cfg.DatabasePath = e.string("DATABASE_PATH", cfg.DatabasePath)
	cfg.ExplorerBaseURL = e.string("EXPLORER_BASE_URL", cfg.ExplorerBaseURL)
	cfg.ExplorerTimeout = e.duration("EXPLORER_TIMEOUT", cfg.ExplorerTimeout)
	cfg.LogLevel = e.string("LOG_LEVEL", cfg.LogLevel)
	cfg.LogFormat = e.string("LOG_FORMAT", cfg.LogFormat)
	cfg.MinifyHTML = e.bool("MINIFY_HTML", cfg.MinifyHTML)
	cfg.ShutdownTimeout = e.duration("SHUTDOWN_TIMEOUT", cfg.ShutdownTimeout)

	cfg.SMTP.Host = e.string("SMTP_HOST", cfg.SMTP.Host)
	cfg.SMTP.Port = e.string("SMTP_PORT", cfg.SMTP.Port)
	cfg.SMTP.User = e.string("SMTP_USER", "")
	cfg.SMTP.Password = e.string("SMTP_PASS", "")
	cfg.SMTP.To = e.string("TO_EMAIL", cfg.SMTP.To)

	cfg.Admin.Username = e.string("ADMIN_USERNAME", cfg.Admin.Username)
	cfg.Admin.Password = e.string("ADMIN_PASSWORD", cfg.Admin.Password)

	cfg.Tracking.Enabled = e.bool("TRACKING_ENABLED", cfg.Tracking.Enabled)
	cfg.Tracking.Retention = e.duration("TRACKING_RETENTION", cfg.Tracking.Retention)

	if err := errors.Join(e.errs...); err != nil {
		return nil, err
	}
	cfg.BasePath = NormalizeBasePath(cfg.BasePath)
	return cfg, nil
}

// Validate checks values that parse but cannot be served.
func (c *Config) Validate() error {
	var errs []error
	if c.Port < 1 || c.Port > 65535 {
		errs = append(errs, fmt.Errorf("PORT %d out of range", c.Port))
	}
	if c.BasePath != "" && !strings.HasPrefix(c.BasePath, "/") {
		errs = append(errs, fmt.Errorf("BASE_PATH %q must start with /", c.BasePath))
	}
	if strings.ContainsAny(c.BasePath, ":*?#") {
		errs = append(errs, fmt.Errorf("BASE_PATH %q must be a plain path", c.BasePath))
	}
	switch c.GinMode {
	case "debug", "release", "test":
	default:
		errs = append(errs, fmt.Errorf("GIN_MODE %q is not debug, release or test", c.GinMode))
	}
	switch c.LogFormat {
	case "text", "json":
	default:
		errs = append(errs, fmt.Errorf("LOG_FORMAT %q is not text or json", c.LogFormat))
	}
	if c.ExplorerTimeout <= 0 {
		errs = append(errs, errors.New("EXPLORER_TIMEOUT must be positive"))
	}
	if c.Tracking.Enabled && c.DatabasePath == "" {
		errs = append(errs, errors.New("DATABASE_PATH is required when tracking is enabled"))
	}
	return errors.Join(errs...)
}

// Addr is the listen address.
func (c *Config) Addr() string {
	return ":" + strconv.Itoa(c.Port)
}

// NormalizeBasePath strips trailing slashes; "/" becomes "".
func NormalizeBasePath(p string) string {
	p = strings.TrimSpace(p)
	p = strings.TrimRight(p, "/")
	if p != "" && !strings.HasPrefix(p, "/") {
		p = "/" + p
	}
	return p
}

type env struct {
	lookup func(string) (string, bool)
	errs   []error
}

func (e *env) string(key, def string) string {
	if v, ok := e.lookup(key); ok && v != "" {
		return v
	}
	return def
}

func (e *env) int(key string, def int) int {
	v, ok := e.lookup(key)
	if !ok || v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		e.errs = append(e.errs, fmt.Errorf("%s: %w", key, err))
		return def
	}
	return n
}

func (e *env) bool(key string, def bool) bool {
	v, ok := e.lookup(key)
	if !ok || v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		e.errs = append(e.errs, fmt.Errorf("%s: %w", key, err))
		return def
	}
	return b
}

func (e *env) duration(key string, def time.Duration) time.Duration {
	v, ok := e.lookup(key)
	if !ok || v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		e.errs = append(e.errs, fmt.Errorf("%s: %w", key, err))
		return def
	}
	return d
}
