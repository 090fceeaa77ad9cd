package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// ErrMissingMailCredentials is returned when EMAIL or PASS is unset.
var ErrMissingMailCredentials = errors.New("email and password must be set in environment variables")

// Config holds everything the server needs at startup.
type Config struct {
	AppPort     string
	DBDriver    string
	DatabaseDSN string
	CORSOrigin  string
	LogLevel    string
	LogFormat   string
	Mail        MailConfig
}

// MailConfig configures the SMTP transport and the notification template.
type MailConfig struct {
	Username     string
	Password     string
	Host         string
	Port         int
	BusinessName string
	Signature    string
}

// SetDefaults registers the default value of every optional key.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("APP_PORT", ":8000")
	v.SetDefault("DB_DRIVER", "sqlite")
	v.SetDefault("DATABASE_DSN", "database.sqlite3?_foreign_keys=on")
	v.SetDefault("CORS_ORIGIN", "http://localhost:3000")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "json")
	v.SetDefault("SMTP_HOST", "smtp.gmail.com")
	v.SetDefault("SMTP_PORT", 465)
	v.SetDefault("MAIL_BUSINESS_NAME", "John Does Business LTD")
	v.SetDefault("MAIL_SIGNATURE", "John Doe")
}

// Load reads the configuration from v, which is expected to have AutomaticEnv enabled.
// The process must not start without mail credentials.
func Load(v *viper.Viper) (*Config, error) {
	SetDefaults(v)
	// EMAIL and PASS have no default, so AutomaticEnv alone would not surface them to Get.
	if err := v.BindEnv("EMAIL"); err != nil {
		return nil, fmt.Errorf("binding EMAIL: %w", err)
	}
	if err := v.BindEnv("PASS"); err != nil {
		return nil, fmt.Errorf("binding PASS: %w", err)
	}

	cfg := &Config{
		AppPort:     v.GetString("APP_PORT"),
		DBDriver:    strings.ToLower(strings.TrimSpace(v.GetString("DB_DRIVER"))),
		DatabaseDSN: v.GetString("DATABASE_DSN"),
		CORSOrigin:  v.GetString("CORS_ORIGIN"),
		LogLevel:    v.GetString("LOG_LEVEL"),
		LogFormat:   v.GetString("LOG_FORMAT"),
		Mail: MailConfig{
			Username:     strings.TrimSpace(v.GetString("EMAIL")),
			Password:     v.GetString("PASS"),
			Host:         v.GetString("SMTP_HOST"),
			Port:         v.GetInt("SMTP_PORT"),
			BusinessName: v.GetString("MAIL_BUSINESS_NAME"),
			Signature:    v.GetString("MAIL_SIGNATURE"),
		},
	}

	if cfg.Mail.Username == "" || cfg.Mail.Password == "" {
		return nil, ErrMissingMailCredentials
	}
	switch cfg.DBDriver {
	case "sqlite", "postgres":
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER %q", cfg.DBDriver)
	}
	return cfg, nil
}
