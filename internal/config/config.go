package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/BurntSushi/toml"
)

// Alert computation modes. Total compares company-wide stock against the
// product threshold behind a sales-recency gate; per-warehouse compares each
// holding individually with no gate and no stockout projection.
const (
	AlertModeTotal        = "total"
	AlertModePerWarehouse = "per_warehouse"
)

// Config is the complete service configuration. Values come from an optional
// TOML file and are overridden by environment variables.
type Config struct {
	Server   ServerConfig   `toml:"server"`
	Database DatabaseConfig `toml:"database"`
	Redis    RedisConfig    `toml:"redis"`
	Minio    MinioConfig    `toml:"minio"`
	Alerts   AlertsConfig   `toml:"alerts"`
}

type ServerConfig struct {
	Port               int `toml:"port"`
	RateLimitPerMinute int `toml:"rate_limit_per_minute"`
}

type DatabaseConfig struct {
	URL string `toml:"url"`
}

type RedisConfig struct {
	Addr     string `toml:"addr"`
	Password string `toml:"password"`
	DB       int    `toml:"db"`
}

type MinioConfig struct {
	Endpoint  string `toml:"endpoint"`
	AccessKey string `toml:"access_key"`
	SecretKey string `toml:"secret_key"`
	UseSSL    bool   `toml:"use_ssl"`
	Bucket    string `toml:"bucket"`
}

type AlertsConfig struct {
	Mode                 string `toml:"mode"`
	WindowDays           int    `toml:"window_days"`
	SweepEnabled         bool   `toml:"sweep_enabled"`
	SweepIntervalMinutes int    `toml:"sweep_interval_minutes"`
}

// Load reads the TOML file at path when it is non-empty, applies environment
// overrides, and fills defaults.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	if path != "" {
		if _, err := toml.DecodeFile(path, cfg); err != nil {
			return nil, fmt.Errorf("decode config file %s: %w", path, err)
		}
	}

	applyEnv(cfg)
	applyDefaults(cfg)

	if cfg.Alerts.Mode != AlertModeTotal && cfg.Alerts.Mode != AlertModePerWarehouse {
		return nil, fmt.Errorf("invalid alerts mode %q: must be %q or %q", cfg.Alerts.Mode, AlertModeTotal, AlertModePerWarehouse)
	}
	return cfg, nil
}

func applyEnv(cfg *Config) {
	if v := os.Getenv("DATABASE_URL"); v != "" {
		cfg.Database.URL = v
	}
	if v := os.Getenv("PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			cfg.Server.Port = port
		}
	}
	if v := os.Getenv("RATE_LIMIT_PER_MINUTE"); v != "" {
		if limit, err := strconv.Atoi(v); err == nil {
			cfg.Server.RateLimitPerMinute = limit
		}
	}
	if v := os.Getenv("REDIS_ADDR"); v != "" {
		cfg.Redis.Addr = v
	}
	if v := os.Getenv("REDIS_PASSWORD"); v != "" {
		cfg.Redis.Password = v
	}
	if v := os.Getenv("REDIS_DB"); v != "" {
		if db, err := strconv.Atoi(v); err == nil {
			cfg.Redis.DB = db
		}
	}
	if v := os.Getenv("MINIO_ENDPOINT"); v != "" {
		cfg.Minio.Endpoint = v
	}
	if v := os.Getenv("MINIO_ACCESS_KEY"); v != "" {
		cfg.Minio.AccessKey = v
	}
	if v := os.Getenv("MINIO_SECRET_KEY"); v != "" {
		cfg.Minio.SecretKey = v
	}
	if v := os.Getenv("MINIO_USE_SSL"); v != "" {
		cfg.Minio.UseSSL = v == "true"
	}
	if v := os.Getenv("MINIO_BUCKET"); v != "" {
		cfg.Minio.Bucket = v
	}
	if v := os.Getenv("ALERT_MODE"); v != "" {
		cfg.Alerts.Mode = v
	}
	if v := os.Getenv("ALERT_WINDOW_DAYS"); v != "" {
		if days, err := strconv.Atoi(v); err == nil {
			cfg.Alerts.WindowDays = days
		}
	}
	if v := os.Getenv("ALERT_SWEEP_ENABLED"); v != "" {
		cfg.Alerts.SweepEnabled = v == "true"
	}
	if v := os.Getenv("ALERT_SWEEP_INTERVAL_MINUTES"); v != "" {
		if minutes, err := strconv.Atoi(v); err == nil {
			cfg.Alerts.SweepIntervalMinutes = minutes
		}
	}
}

func applyDefaults(cfg *Config) {
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 8080
	}
	if cfg.Server.RateLimitPerMinute == 0 {
		cfg.Server.RateLimitPerMinute = 120
	}
	if cfg.Redis.Addr == "" {
		cfg.Redis.Addr = "localhost:6379"
	}
	if cfg.Minio.Bucket == "" {
		cfg.Minio.Bucket = "low-stock-reports"
	}
	if cfg.Alerts.Mode == "" {
		cfg.Alerts.Mode = AlertModeTotal
	}
	if cfg.Alerts.WindowDays == 0 {
		cfg.Alerts.WindowDays = 30
	}
	if cfg.Alerts.SweepIntervalMinutes == 0 {
		cfg.Alerts.SweepIntervalMinutes = 60
	}
}
