// Package config loads and validates application configuration from environment variables.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
)

// Notifier backends selectable with NOTIFIER.
const (
	NotifierLog  = "log"
	NotifierSMTP = "smtp"
)

// Config holds all configuration values for the API server.
// Values are populated by Load from environment variables.
type Config struct {
	// Port is the TCP port the HTTP server listens on.
	Port string `env:"PORT" envDefault:"8080"`

	// DatabaseURL is the Postgres connection string. Required.
	DatabaseURL string `env:"DATABASE_URL,required,notEmpty"`

	// LogLevel controls the minimum log level.
	// Valid values: debug, info, warn, error.
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	// CORSOrigins is the list of allowed cross-origin request origins.
	// Set CORS_ORIGINS to a comma-separated list to override.
	CORSOrigins []string `env:"CORS_ORIGINS" envDefault:"http://localhost:5173" envSeparator:","`

	// APIBaseURL prefixes the confirmation links sent in invitations.
	APIBaseURL string `env:"API_BASE_URL" envDefault:"http://localhost:8080"`

	// CalendarTimezone is the IANA zone in which trip days are counted.
	CalendarTimezone string `env:"CALENDAR_TIMEZONE" envDefault:"UTC"`

	// MaxBodyBytes caps request bodies; larger requests get 413.
	MaxBodyBytes int64 `env:"MAX_BODY_BYTES" envDefault:"1048576"`

	Notifier string `env:"NOTIFIER" envDefault:"log"`
	SMTP     SMTP
	Invite   Invite
	Otel     Otel

	loc *time.Location
}

// SMTP configures the smtp notifier. Host and FromAddress are required
// when NOTIFIER=smtp.
type SMTP struct {
	Host        string `env:"SMTP_HOST"`
	Port        int    `env:"SMTP_PORT" envDefault:"587"`
	Username    string `env:"SMTP_USERNAME"`
	Password    string `env:"SMTP_PASSWORD"`
	FromName    string `env:"MAIL_FROM_NAME" envDefault:"Trip Planner"`
	FromAddress string `env:"MAIL_FROM_ADDRESS"`
}

// Invite tunes invitation rendering and dispatch.
type Invite struct {
	Locale       string        `env:"INVITE_LOCALE" envDefault:"en-US"`
	Concurrency  int           `env:"INVITE_CONCURRENCY" envDefault:"8"`
	SendTimeout  time.Duration `env:"INVITE_SEND_TIMEOUT" envDefault:"10s"`
	SendAttempts int           `env:"INVITE_SEND_ATTEMPTS" envDefault:"3"`

	// DispatchTimeout bounds one whole invite batch; the HTTP write timeout
	// is derived from it.
	DispatchTimeout time.Duration `env:"INVITE_DISPATCH_TIMEOUT" envDefault:"30s"`
}

// Otel configures trace export. An empty Endpoint disables export.
type Otel struct {
	Endpoint    string `env:"OTEL_ENDPOINT"`
	ServiceName string `env:"OTEL_SERVICE_NAME" envDefault:"trip-planner"`
}

// Load reads configuration from environment variables and returns a Config.
// Errors name the offending variables.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("config.Load: %w", err)
	}
	cfg.CORSOrigins = trimAll(cfg.CORSOrigins)

	loc, err := time.LoadLocation(cfg.CalendarTimezone)
	if err != nil {
		return Config{}, fmt.Errorf("config.Load: CALENDAR_TIMEZONE: %w", err)
	}
	cfg.loc = loc

	if err := cfg.validate(); err != nil {
		return Config{}, fmt.Errorf("config.Load: %w", err)
	}
	return cfg, nil
}

// Location returns the resolved CALENDAR_TIMEZONE, UTC for a Config not
// built by Load.
func (c Config) Location() *time.Location {
	if c.loc == nil {
		return time.UTC
	}
	return c.loc
}

// SlogLevel returns LogLevel as a slog.Level. Load has already rejected
// unknown names.
func (c Config) SlogLevel() slog.Level {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo
	}
	return lvl
}

func (c Config) validate() error {
	var errs []error

	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(c.LogLevel)); err != nil {
		errs = append(errs, fmt.Errorf("LOG_LEVEL: unknown level %q", c.LogLevel))
	}
	if c.MaxBodyBytes <= 0 {
		errs = append(errs, errors.New("MAX_BODY_BYTES: must be positive"))
	}
	if c.Invite.Concurrency <= 0 {
		errs = append(errs, errors.New("INVITE_CONCURRENCY: must be positive"))
	}
	if c.Invite.SendTimeout <= 0 {
		errs = append(errs, errors.New("INVITE_SEND_TIMEOUT: must be positive"))
	}
	if c.Invite.DispatchTimeout < c.Invite.SendTimeout {
		errs = append(errs, errors.New("INVITE_DISPATCH_TIMEOUT: must not be shorter than INVITE_SEND_TIMEOUT"))
	}
	if c.Invite.SendAttempts <= 0 {
		errs = append(errs, errors.New("INVITE_SEND_ATTEMPTS: must be positive"))
	}

	switch c.Notifier {
	case NotifierLog:
	case NotifierSMTP:
		var missing []string
		if c.SMTP.Host == "" {
			missing = append(missing, "SMTP_HOST")
		}
		if c.SMTP.FromAddress == "" {
			missing = append(missing, "MAIL_FROM_ADDRESS")
		}
		if len(missing) > 0 {
			errs = append(errs, fmt.Errorf("required for NOTIFIER=smtp: %s", strings.Join(missing, ", ")))
		}
	default:
		errs = append(errs, fmt.Errorf("NOTIFIER: must be %q or %q, got %q", NotifierLog, NotifierSMTP, c.Notifier))
	}

	return errors.Join(errs...)
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
