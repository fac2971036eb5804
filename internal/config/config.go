// Package config loads and validates application configuration from environment variables.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"time"
	_ "time/tzdata" // TIMEZONE must resolve on hosts without a zoneinfo database

	"github.com/kelseyhightower/envconfig"

	"github.com/pkordes/tourdesk/internal/domain"
)

// Config holds all configuration values for the API server.
// Values are populated by Load from environment variables.
type Config struct {
	// Port is the TCP port the HTTP server listens on.
	Port string `envconfig:"PORT" default:"8080"`

	// DatabaseURL is the Postgres connection string. Required.
	DatabaseURL string `envconfig:"DATABASE_URL" required:"true"`

	// LogLevel controls the minimum log level: debug, info, warn or error.
	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`

	// CORSOrigins is the comma-separated list of allowed cross-origin
	// request origins. Defaults to the Vite dev server.
	CORSOrigins []string `envconfig:"CORS_ORIGINS" default:"http://localhost:5173"`

	// SheetName is the sheet bookings are appended to. The first sheet is
	// used when no sheet has this name.
	SheetName string `envconfig:"SHEET_NAME" default:"Sheet1"`

	// Timezone is the IANA zone the "Time Submitted" cell is rendered in.
	Timezone string `envconfig:"TIMEZONE" default:"Africa/Cairo"`

	// NATSURL enables booking.created events when set.
	NATSURL string `envconfig:"NATS_URL"`

	// MaxBodyBytes caps request bodies.
	MaxBodyBytes int64 `envconfig:"MAX_BODY_BYTES" default:"65536"`

	// AutoMigrate applies pending goose migrations at start.
	AutoMigrate bool `envconfig:"AUTO_MIGRATE" default:"true"`

	// ExportEnabled mounts GET /bookings/export.
	ExportEnabled bool `envconfig:"EXPORT_ENABLED" default:"false"`

	// AgencyWhatsApp is the agency number, digits only with country code,
	// behind the tours' contact_url links. Links are omitted when unset.
	AgencyWhatsApp string `envconfig:"AGENCY_WHATSAPP"`
}

// defaultCORSOrigins applies when CORS_ORIGINS is set but lists no origin.
// An empty list would make rs/cors allow every origin.
var defaultCORSOrigins = []string{"http://localhost:5173"}

// Load reads configuration from environment variables and returns a Config.
// Returns an error naming every variable that is missing or invalid.
func Load() (Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return Config{}, fmt.Errorf("config.Load: %w", err)
	}
	cfg.CORSOrigins = trimAll(cfg.CORSOrigins)
	if len(cfg.CORSOrigins) == 0 {
		cfg.CORSOrigins = slices.Clone(defaultCORSOrigins)
	}
	cfg.AgencyWhatsApp = strings.TrimSpace(cfg.AgencyWhatsApp)

	if err := cfg.validate(); err != nil {
		return Config{}, fmt.Errorf("config.Load: %w", err)
	}
	return cfg, nil
}

// validate catches values envconfig accepts but the server cannot use.
// An exported-but-empty variable counts as set for envconfig, so required
// strings are re-checked here.
func (c Config) validate() error {
	var missing []string
	for _, f := range []struct {
		key   string
		value string
	}{
		{"DATABASE_URL", c.DatabaseURL},
		{"PORT", c.Port},
		{"SHEET_NAME", c.SheetName},
	} {
		if strings.TrimSpace(f.value) == "" {
			missing = append(missing, f.key)
		}
	}

	var errs []error
	if len(missing) > 0 {
		errs = append(errs, fmt.Errorf("required environment variables not set: %s", strings.Join(missing, ", ")))
	}
	if _, err := c.Location(); err != nil {
		errs = append(errs, err)
	}
	if _, err := c.Level(); err != nil {
		errs = append(errs, err)
	}
	if c.MaxBodyBytes <= 0 {
		errs = append(errs, fmt.Errorf("MAX_BODY_BYTES must be positive, got %d", c.MaxBodyBytes))
	}
	if c.AgencyWhatsApp != "" && !domain.IsWhatsAppNumber(c.AgencyWhatsApp) {
		errs = append(errs, fmt.Errorf("AGENCY_WHATSAPP %q must be an international number in digits only", c.AgencyWhatsApp))
	}
	return errors.Join(errs...)
}

// Location resolves Timezone.
func (c Config) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("TIMEZONE %q: %w", c.Timezone, err)
	}
	return loc, nil
}

// Level parses LogLevel into a slog.Level.
func (c Config) Level() (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo, fmt.Errorf("LOG_LEVEL %q: %w", c.LogLevel, err)
	}
	return l, nil
}

// trimAll trims each entry and drops empty ones.
func trimAll(in []string) []string {
	var out []string
	for _, s := range in {
		if t := strings.TrimSpace(s); t != "" {
			out = append(out, t)
		}
	}
	return out
}
