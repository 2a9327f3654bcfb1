// Package config loads the planreport YAML configuration.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"
	_ "time/tzdata" // hosts without a zoneinfo database

	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

// DefaultPath is the configuration file read when no --config flag is given.
const DefaultPath = "config.yaml"

// ---------------------------------------------------------------------------
// Configuration
// ---------------------------------------------------------------------------

type ServerConfig struct {
	Addr           string        `yaml:"addr"`
	MaxConnections int           `yaml:"max_connections"`
	ReadTimeout    time.Duration `yaml:"read_timeout"`
	WriteTimeout   time.Duration `yaml:"write_timeout"`
}

type DatabaseConfig struct {
	Path string `yaml:"path"`
}

type ReportConfig struct {
	LogoPath string `yaml:"logo_path"`
	Locale   string `yaml:"locale"`
	Currency string `yaml:"currency"`
	Timezone string `yaml:"timezone"`
	Holidays string `yaml:"holidays"` // region code, e.g. "EC"
}

type LoggingConfig struct {
	Level       string `yaml:"level"`
	Development bool   `yaml:"development"`
}

type SMTPConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	Username string `yaml:"username"`
	Password string `yaml:"password"`
}

type EmailConfig struct {
	From string `yaml:"from"`
	To   string `yaml:"to"`
}

type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Database DatabaseConfig `yaml:"database"`
	Report   ReportConfig   `yaml:"report"`
	Logging  LoggingConfig  `yaml:"logging"`
	SMTP     SMTPConfig     `yaml:"smtp"`
	Email    EmailConfig    `yaml:"email"`
}

// Default returns the configuration used for every key missing from the file.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Addr:           ":8080",
			MaxConnections: 64,
			ReadTimeout:    10 * time.Second,
			WriteTimeout:   30 * time.Second,
		},
		Database: DatabaseConfig{Path: "planning.db"},
		Report: ReportConfig{
			LogoPath: "assets/logo.png",
			Locale:   "es-EC",
			Currency: "USD",
			Timezone: "America/Guayaquil",
			Holidays: "EC",
		},
		Logging: LoggingConfig{Level: "info"},
		SMTP:    SMTPConfig{Port: 587},
	}
}

// Load reads and validates the YAML configuration file at path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config file %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks the values that cannot be defaulted.
func (c *Config) Validate() error {
	var errs []error
	if c.Server.Addr == "" {
		errs = append(errs, errors.New("server.addr is empty"))
	}
	if c.Server.MaxConnections < 0 {
		errs = append(errs, fmt.Errorf("server.max_connections %d is negative", c.Server.MaxConnections))
	}
	if c.Database.Path == "" {
		errs = append(errs, errors.New("database.path is empty"))
	}
	if _, err := language.Parse(c.Report.Locale); err != nil {
		errs = append(errs, fmt.Errorf("report.locale: %w", err))
	}
	if _, err := c.Location(); err != nil {
		errs = append(errs, err)
	}
	if c.SMTP.Port < 1 || c.SMTP.Port > 65535 {
		errs = append(errs, fmt.Errorf("smtp.port %d out of range", c.SMTP.Port))
	}
	return errors.Join(errs...)
}

// Location returns the time zone reports are stamped in.
func (c *Config) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.Report.Timezone)
	if err != nil {
		return nil, fmt.Errorf("report.timezone: %w", err)
	}
	return loc, nil
}

// MailConfigured reports whether enough SMTP settings exist to send e-mail.
func (c *Config) MailConfigured() bool {
	return c.SMTP.Host != "" && c.Email.From != "" && c.Email.To != ""
}
