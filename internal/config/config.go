package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Config contains all runtime settings.
// Load order: defaults -> YAML (optional) -> env overrides.
type Config struct {
	ListenAddr string `yaml:"listen_addr"`

	AdminKey string `yaml:"admin_key"`

	// Cleanup controls the background eviction sweep over the webhook store.
	Cleanup struct {
		MaxAgeHours      int `yaml:"max_age_hours"`      // entries older than this are evicted
		SweepIntervalMin int `yaml:"sweep_interval_min"` // how often the sweep runs, in minutes
	} `yaml:"cleanup"`

	CORS struct {
		AllowedOrigin string `yaml:"allowed_origin"` // "*" allows any origin
	} `yaml:"cors"`

	// Logging configuration
	Logging struct {
		Level      string `yaml:"level"`        // trace, debug, info, warn, error, fatal, panic
		Format     string `yaml:"format"`       // json, console
		Output     string `yaml:"output"`       // stdout, file, syslog, multi
		FilePath   string `yaml:"file_path"`    // path to log file (if output=file or multi)
		MaxSizeMB  int    `yaml:"max_size_mb"`  // max size before rotation
		MaxBackups int    `yaml:"max_backups"`  // max number of old log files
		MaxAgeDays int    `yaml:"max_age_days"` // max age in days
		Compress   bool   `yaml:"compress"`     // compress rotated files
		SyslogAddr string `yaml:"syslog_addr"`  // syslog server address (if output=syslog or multi)
		SyslogNet  string `yaml:"syslog_net"`   // tcp, udp, or empty for local
	} `yaml:"logging"`

	// OIDC/Keycloak extension point. Off by default; while off (and with no
	// admin key set) the delete endpoint runs open, matching the original
	// wire contract.
	OIDC struct {
		Enabled      bool   `yaml:"enabled"`
		IssuerURL    string `yaml:"issuer_url"`
		ClientID     string `yaml:"client_id"`
		Audience     string `yaml:"audience"`
		AdminRole    string `yaml:"admin_role"`
		JWKSCacheSec int    `yaml:"jwks_cache_sec"`
	} `yaml:"oidc"`
}

// MaxAge returns the eviction threshold as a duration.
func (c Config) MaxAge() time.Duration {
	return time.Duration(c.Cleanup.MaxAgeHours) * time.Hour
}

// SweepInterval returns how often the eviction sweep runs.
func (c Config) SweepInterval() time.Duration {
	return time.Duration(c.Cleanup.SweepIntervalMin) * time.Minute
}

// Load reads YAML if path is non-empty, then applies env overrides.
func Load(path string) (Config, error) {
	cfg := defaults()

	if strings.TrimSpace(path) != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return cfg, err
		}
		if err := yaml.Unmarshal(b, &cfg); err != nil {
			return cfg, err
		}
	}

	applyEnv(&cfg)
	return cfg, nil
}

func defaults() Config {
	var c Config
	c.ListenAddr = ":3001"

	c.Cleanup.MaxAgeHours = 24
	c.Cleanup.SweepIntervalMin = 60

	c.CORS.AllowedOrigin = "*"

	// Logging defaults
	c.Logging.Level = "info"
	c.Logging.Format = "json"
	c.Logging.Output = "stdout"
	c.Logging.FilePath = "/var/log/webhook-cache/app.log"
	c.Logging.MaxSizeMB = 100
	c.Logging.MaxBackups = 3
	c.Logging.MaxAgeDays = 28
	c.Logging.Compress = true
	c.Logging.SyslogAddr = ""
	c.Logging.SyslogNet = "udp"

	c.OIDC.Enabled = false
	c.OIDC.JWKSCacheSec = 300
	return c
}

func applyEnv(cfg *Config) {
	setStr(&cfg.ListenAddr, "WH_LISTEN_ADDR")
	setStr(&cfg.AdminKey, "WH_ADMIN_KEY")

	// PORT alone is enough for platform deployments.
	if v := strings.TrimSpace(os.Getenv("PORT")); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.ListenAddr = fmt.Sprintf(":%d", n)
		}
	}

	if v := os.Getenv("WH_MAX_AGE_HOURS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.Cleanup.MaxAgeHours = n
		}
	}
	if v := os.Getenv("WH_SWEEP_INTERVAL_MIN"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.Cleanup.SweepIntervalMin = n
		}
	}

	setStr(&cfg.CORS.AllowedOrigin, "WH_CORS_ORIGIN")

	if v := os.Getenv("WH_OIDC_ENABLED"); v != "" {
		cfg.OIDC.Enabled = v == "1" || strings.ToLower(v) == "true"
	}
	setStr(&cfg.OIDC.IssuerURL, "WH_OIDC_ISSUER_URL")
	setStr(&cfg.OIDC.ClientID, "WH_OIDC_CLIENT_ID")
	setStr(&cfg.OIDC.Audience, "WH_OIDC_AUDIENCE")
	setStr(&cfg.OIDC.AdminRole, "WH_OIDC_ADMIN_ROLE")

	// Logging configuration
	setStr(&cfg.Logging.Level, "WH_LOG_LEVEL")
	setStr(&cfg.Logging.Format, "WH_LOG_FORMAT")
	setStr(&cfg.Logging.Output, "WH_LOG_OUTPUT")
	setStr(&cfg.Logging.FilePath, "WH_LOG_FILE_PATH")
	setStr(&cfg.Logging.SyslogAddr, "WH_LOG_SYSLOG_ADDR")
	setStr(&cfg.Logging.SyslogNet, "WH_LOG_SYSLOG_NET")

	if v := os.Getenv("WH_LOG_MAX_SIZE_MB"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.Logging.MaxSizeMB = n
		}
	}
	if v := os.Getenv("WH_LOG_MAX_BACKUPS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			cfg.Logging.MaxBackups = n
		}
	}
	if v := os.Getenv("WH_LOG_MAX_AGE_DAYS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			cfg.Logging.MaxAgeDays = n
		}
	}
	if v := os.Getenv("WH_LOG_COMPRESS"); v != "" {
		cfg.Logging.Compress = v == "1" || strings.ToLower(v) == "true"
	}
}

func setStr(dst *string, key string) {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		*dst = v
	}
}
