// Package config handles loading and validating the application configuration
// from YAML files with environment variable substitution.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/mpoirier/dealflow/pkg/stagetimer"
)

// Config is the top-level application configuration.
type Config struct {
	Server        ServerConfig        `yaml:"server"`
	Database      DatabaseConfig      `yaml:"database"`
	Timers        TimersConfig        `yaml:"timers"`
	Matching      MatchingConfig      `yaml:"matching"`
	Schedule      ScheduleConfig      `yaml:"schedule"`
	Notifications NotificationsConfig `yaml:"notifications"`
	Telemetry     TelemetryConfig     `yaml:"telemetry"`
	Logging       LoggingConfig       `yaml:"logging"`
}

// ServerConfig defines the Echo HTTP server settings.
type ServerConfig struct {
	Host         string        `yaml:"host"`
	Port         int           `yaml:"port"`
	ReadTimeout  time.Duration `yaml:"read_timeout"`
	WriteTimeout time.Duration `yaml:"write_timeout"`
}

// DatabaseConfig defines PostgreSQL connection settings.
type DatabaseConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	Name     string `yaml:"name"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	SSLMode  string `yaml:"sslmode"`
	PoolSize int    `yaml:"pool_size"`
}

// DSN returns a PostgreSQL connection string.
func (d *DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d dbname=%s user=%s password=%s sslmode=%s",
		d.Host, d.Port, d.Name, d.User, d.Password, d.SSLMode,
	)
}

// TimersConfig defines the per-stage reservation day counts.
type TimersConfig struct {
	ToContactDays    int `yaml:"to_contact_days"`
	InfoAnalysisDays int `yaml:"info_analysis_days"`
	NegotiationDays  int `yaml:"negotiation_days"`
}

// Timers converts the config section into stagetimer day counts.
func (t *TimersConfig) Timers() stagetimer.Timers {
	return stagetimer.Timers{
		ToContactDays:    t.ToContactDays,
		InfoAnalysisDays: t.InfoAnalysisDays,
		NegotiationDays:  t.NegotiationDays,
	}
}

// MatchingConfig defines match alerting behavior.
type MatchingConfig struct {
	// AlertThreshold is the minimum score that creates a match alert.
	AlertThreshold int `yaml:"alert_threshold"`
	// RefreshLimit caps how many matches one refresh produces per buyer.
	RefreshLimit int `yaml:"refresh_limit"`
	// AlertCooldown suppresses repeat alerts for the same buyer/listing pair.
	AlertCooldown time.Duration `yaml:"alert_cooldown"`
}

// ScheduleConfig defines cron intervals for the background jobs.
type ScheduleConfig struct {
	ExpirySweepInterval  time.Duration `yaml:"expiry_sweep_interval"`
	MatchRefreshInterval time.Duration `yaml:"match_refresh_interval"`
}

// NotificationsConfig defines notification targets.
type NotificationsConfig struct {
	Discord   DiscordConfig   `yaml:"discord"`
	RateLimit RateLimitConfig `yaml:"rate_limit"`
}

// DiscordConfig defines Discord webhook settings.
type DiscordConfig struct {
	Enabled    bool   `yaml:"enabled"`
	WebhookURL string `yaml:"webhook_url"`
}

// RateLimitConfig bounds outbound webhook traffic.
type RateLimitConfig struct {
	PerSecond  float64 `yaml:"per_second"`
	Burst      int     `yaml:"burst"`
	DailyLimit int64   `yaml:"daily_limit"`
}

// TelemetryConfig defines OpenTelemetry trace export settings.
type TelemetryConfig struct {
	Enabled      bool   `yaml:"enabled"`
	OTLPEndpoint string `yaml:"otlp_endpoint"`
	ServiceName  string `yaml:"service_name"`
}

// LoggingConfig defines logging settings.
type LoggingConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // text, json
}

// Load reads and parses a YAML config file, performing environment variable
// substitution and validation.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // config path from trusted CLI flag
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	// Expand environment variables in the YAML content.
	expanded := os.ExpandEnv(string(data))

	cfg := &Config{}
	if err := yaml.Unmarshal([]byte(expanded), cfg); err != nil {
		return nil, fmt.Errorf("parsing config YAML: %w", err)
	}

	applyDefaults(cfg)

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

func applyDefaults(cfg *Config) {
	applyServerDefaults(&cfg.Server)
	applyDatabaseDefaults(&cfg.Database)
	applyTimerDefaults(&cfg.Timers)
	applyMatchingDefaults(&cfg.Matching)
	applyScheduleDefaults(&cfg.Schedule)
	applyNotificationDefaults(&cfg.Notifications)
	applyTelemetryDefaults(&cfg.Telemetry)
	applyLoggingDefaults(&cfg.Logging)
}

func applyServerDefaults(s *ServerConfig) {
	if s.Host == "" {
		s.Host = "0.0.0.0"
	}
	if s.Port == 0 {
		s.Port = 8080
	}
	if s.ReadTimeout == 0 {
		s.ReadTimeout = 30 * time.Second
	}
	if s.WriteTimeout == 0 {
		s.WriteTimeout = 30 * time.Second
	}
}

func applyDatabaseDefaults(d *DatabaseConfig) {
	if d.Port == 0 {
		d.Port = 5432
	}
	if d.SSLMode == "" {
		d.SSLMode = "disable"
	}
	if d.PoolSize == 0 {
		d.PoolSize = 10
	}
}

func applyTimerDefaults(t *TimersConfig) {
	if t.ToContactDays == 0 {
		t.ToContactDays = stagetimer.DefaultToContactDays
	}
	if t.InfoAnalysisDays == 0 {
		t.InfoAnalysisDays = stagetimer.DefaultInfoAnalysisDays
	}
	if t.NegotiationDays == 0 {
		t.NegotiationDays = stagetimer.DefaultNegotiationDays
	}
}

func applyMatchingDefaults(m *MatchingConfig) {
	if m.AlertThreshold == 0 {
		m.AlertThreshold = 70
	}
	if m.RefreshLimit == 0 {
		m.RefreshLimit = 20
	}
	if m.AlertCooldown == 0 {
		m.AlertCooldown = 24 * time.Hour
	}
}

func applyScheduleDefaults(s *ScheduleConfig) {
	if s.ExpirySweepInterval == 0 {
		s.ExpirySweepInterval = time.Hour
	}
	if s.MatchRefreshInterval == 0 {
		s.MatchRefreshInterval = 6 * time.Hour
	}
}

func applyNotificationDefaults(n *NotificationsConfig) {
	if n.RateLimit.PerSecond == 0 {
		n.RateLimit.PerSecond = 1.0
	}
	if n.RateLimit.Burst == 0 {
		n.RateLimit.Burst = 5
	}
	if n.RateLimit.DailyLimit == 0 {
		n.RateLimit.DailyLimit = 1000
	}
}

func applyTelemetryDefaults(t *TelemetryConfig) {
	if t.OTLPEndpoint == "" {
		t.OTLPEndpoint = "localhost:4317"
	}
	if t.ServiceName == "" {
		t.ServiceName = "dealflow"
	}
}

func applyLoggingDefaults(l *LoggingConfig) {
	if l.Level == "" {
		l.Level = "info"
	}
	if l.Format == "" {
		l.Format = "text"
	}
}

func validate(cfg *Config) error {
	var errs []error

	if cfg.Database.Host == "" {
		errs = append(errs, fmt.Errorf("database.host is required"))
	}
	if cfg.Database.Name == "" {
		errs = append(errs, fmt.Errorf("database.name is required"))
	}
	if cfg.Database.User == "" {
		errs = append(errs, fmt.Errorf("database.user is required"))
	}

	if cfg.Timers.ToContactDays < 0 || cfg.Timers.InfoAnalysisDays < 0 || cfg.Timers.NegotiationDays < 0 {
		errs = append(errs, fmt.Errorf("timers day counts must not be negative"))
	}

	if cfg.Matching.AlertThreshold < 0 || cfg.Matching.AlertThreshold > 100 {
		errs = append(errs, fmt.Errorf(
			"matching.alert_threshold must be between 0 and 100 (got %d)",
			cfg.Matching.AlertThreshold,
		))
	}

	if cfg.Notifications.Discord.Enabled && cfg.Notifications.Discord.WebhookURL == "" {
		errs = append(errs, fmt.Errorf(
			"notifications.discord.webhook_url is required when discord is enabled",
		))
	}

	return errors.Join(errs...)
}
