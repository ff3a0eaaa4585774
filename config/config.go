package config

import (
	"bytes"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config application configuration
type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	Database  DatabaseConfig  `mapstructure:"database"`
	Log       LogConfig       `mapstructure:"log"`
	Email     EmailConfig     `mapstructure:"email"`
	Metrics   MetricsConfig   `mapstructure:"metrics"`
	RateLimit RateLimitConfig `mapstructure:"rate_limit"`
}

// ServerConfig HTTP server settings
type ServerConfig struct {
	Port string `mapstructure:"port"`
	Mode string `mapstructure:"mode"`
}

// DatabaseConfig database settings. Driver is one of mysql, postgres or sqlite;
// Path is only used by sqlite.
type DatabaseConfig struct {
	Driver       string `mapstructure:"driver"`
	Host         string `mapstructure:"host"`
	Port         string `mapstructure:"port"`
	Username     string `mapstructure:"username"`
	Password     string `mapstructure:"password"`
	DBName       string `mapstructure:"dbname"`
	Charset      string `mapstructure:"charset"`
	SSLMode      string `mapstructure:"sslmode"`
	Path         string `mapstructure:"path"`
	MaxIdleConns int    `mapstructure:"max_idle_conns"`
	MaxOpenConns int    `mapstructure:"max_open_conns"`
	LogLevel     string `mapstructure:"log_level"`
}

// LogConfig logger settings
type LogConfig struct {
	Mode string `mapstructure:"mode"`
}

// EmailConfig SMTP settings for dues reminders
type EmailConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Username string `mapstructure:"username"`
	Password string `mapstructure:"password"`
	From     string `mapstructure:"from"`
	FromName string `mapstructure:"from_name"`
}

// MetricsConfig prometheus exposition
type MetricsConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Path    string `mapstructure:"path"`
}

// RateLimitConfig limits mutating requests per client IP
type RateLimitConfig struct {
	Enabled       bool          `mapstructure:"enabled"`
	MaxRequests   int           `mapstructure:"max_requests"`
	WindowSeconds int           `mapstructure:"window_seconds"`
	Window        time.Duration `mapstructure:"-"`
}

var (
	// GlobalConfig the loaded configuration
	GlobalConfig *Config
)

// LoadConfig loads configuration.
// Priority: environment > external file > embedded defaults.
// configPath is an optional external file path.
func LoadConfig(configPath string) (*Config, error) {
	v := viper.New()
	v.SetConfigType("yaml")

	if err := v.ReadConfig(bytes.NewReader(DefaultConfigYAML)); err != nil {
		return nil, fmt.Errorf("read embedded config: %w", err)
	}

	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.MergeInConfig(); err != nil {
			log.Printf("warning: cannot read config file %s: %v", configPath, err)
		}
	} else {
		externalViper := viper.New()
		externalViper.SetConfigName("config")
		externalViper.SetConfigType("yaml")
		externalViper.AddConfigPath(".")
		externalViper.AddConfigPath("./config")
		externalViper.AddConfigPath("/etc/templo")
		externalViper.AddConfigPath("$HOME/.templo")

		if err := externalViper.ReadInConfig(); err == nil {
			if err := v.MergeConfigMap(externalViper.AllSettings()); err != nil {
				log.Printf("warning: merge external config: %v", err)
			}
		}
	}

	v.SetEnvPrefix("TEMPLO")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	if cfg.Database.Driver == "" {
		cfg.Database.Driver = "mysql"
	}
	if cfg.RateLimit.MaxRequests <= 0 {
		cfg.RateLimit.MaxRequests = 60
	}
	if cfg.RateLimit.WindowSeconds <= 0 {
		cfg.RateLimit.WindowSeconds = 60
	}
	cfg.RateLimit.Window = time.Duration(cfg.RateLimit.WindowSeconds) * time.Second
	if cfg.Metrics.Path == "" {
		cfg.Metrics.Path = "/metrics"
	}

	GlobalConfig = &cfg

	return &cfg, nil
}

// MustLoadConfig loads configuration or panics
func MustLoadConfig(configPath string) *Config {
	cfg, err := LoadConfig(configPath)
	if err != nil {
		panic(fmt.Sprintf("load config: %v", err))
	}
	return cfg
}

// Printer is satisfied by the application logger.
type Printer interface {
	Info(msg string, keysAndValues ...interface{})
}

// PrintConfig logs the effective configuration without secrets
func PrintConfig(p Printer) {
	if GlobalConfig == nil {
		return
	}
	p.Info("configuration loaded",
		"port", GlobalConfig.Server.Port,
		"mode", GlobalConfig.Server.Mode,
		"db_driver", GlobalConfig.Database.Driver,
		"db", describeDatabase(GlobalConfig.Database),
		"email_enabled", GlobalConfig.Email.Enabled,
		"metrics_enabled", GlobalConfig.Metrics.Enabled,
		"rate_limit_enabled", GlobalConfig.RateLimit.Enabled,
	)
}

func describeDatabase(db DatabaseConfig) string {
	if db.Driver == "sqlite" {
		return db.Path
	}
	return fmt.Sprintf("%s@%s:%s/%s", db.Username, db.Host, db.Port, db.DBName)
}
