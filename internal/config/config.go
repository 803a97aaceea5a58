// internal/config/config.go
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Duration is a time.Duration that unmarshals from strings like "2s".
type Duration time.Duration

func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var raw string
	if err := value.Decode(&raw); err != nil {
		return err
	}
	parsed, err := time.ParseDuration(raw)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", raw, err)
	}
	*d = Duration(parsed)
	return nil
}

func (d Duration) Std() time.Duration {
	return time.Duration(d)
}

type Config struct {
	App struct {
		Name            string   `yaml:"name"`
		Environment     string   `yaml:"environment"`
		Port            int      `yaml:"port"`
		StaticDir       string   `yaml:"static_dir"`
		ShutdownTimeout Duration `yaml:"shutdown_timeout"`
	} `yaml:"app"`

	Generation struct {
		MinDelay Duration `yaml:"min_delay"`
		MaxDelay Duration `yaml:"max_delay"`
	} `yaml:"generation"`

	Watchdog struct {
		Enabled  bool     `yaml:"enabled"`
		Interval Duration `yaml:"interval"`
		Timeout  Duration `yaml:"timeout"`
	} `yaml:"watchdog"`

	RateLimit struct {
		Enabled          bool     `yaml:"enabled"`
		SelectCooldown   Duration `yaml:"select_cooldown"`
		SelectMaxPerHour int      `yaml:"select_max_per_hour"`
		TrustProxy       bool     `yaml:"trust_proxy"`
	} `yaml:"rate_limit"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	var cfg Config
	cfg.App.Name = "personafolio"
	cfg.App.Environment = "development"
	cfg.App.Port = 8080
	cfg.App.StaticDir = "build/bin/static"
	cfg.App.ShutdownTimeout = Duration(30 * time.Second)
	cfg.Generation.MinDelay = Duration(2 * time.Second)
	cfg.Generation.MaxDelay = Duration(4 * time.Second)
	cfg.Watchdog.Enabled = true
	cfg.Watchdog.Interval = Duration(5 * time.Second)
	cfg.Watchdog.Timeout = Duration(30 * time.Second)
	cfg.RateLimit.Enabled = true
	cfg.RateLimit.SelectCooldown = Duration(time.Second)
	cfg.RateLimit.SelectMaxPerHour = 120
	return &cfg
}

// Load loads both .env and yaml configuration. A missing yaml file yields
// defaults; environment variables override file values.
func Load(configPath string) (*Config, error) {
	// Load .env file if it exists
	envPath := filepath.Join(filepath.Dir(configPath), ".env")
	if err := godotenv.Load(envPath); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("error loading .env file: %w", err)
	}

	cfg := Default()

	data, err := os.ReadFile(configPath)
	switch {
	case errors.Is(err, os.ErrNotExist):
	case err != nil:
		return nil, fmt.Errorf("error reading config file: %w", err)
	default:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("error parsing config file: %w", err)
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

func (c *Config) applyEnv() error {
	if value, ok := os.LookupEnv("PORT"); ok {
		port, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("invalid PORT %q: %w", value, err)
		}
		c.App.Port = port
	}
	if value, ok := os.LookupEnv("ENVIRONMENT"); ok {
		c.App.Environment = value
	}
	if value, ok := os.LookupEnv("STATIC_DIR"); ok {
		c.App.StaticDir = value
	}
	return nil
}

func (c *Config) Validate() error {
	if c.App.Name == "" {
		return fmt.Errorf("app name is required")
	}
	if c.App.Port <= 0 || c.App.Port > 65535 {
		return fmt.Errorf("app port must be between 1 and 65535")
	}
	switch c.App.Environment {
	case "development", "staging", "production":
	default:
		return fmt.Errorf("unsupported environment: %s", c.App.Environment)
	}
	if c.Generation.MinDelay < 0 {
		return fmt.Errorf("generation min_delay must not be negative")
	}
	if c.Generation.MaxDelay < c.Generation.MinDelay {
		return fmt.Errorf("generation max_delay must be >= min_delay")
	}
	if c.Watchdog.Enabled {
		if c.Watchdog.Interval <= 0 {
			return fmt.Errorf("watchdog interval must be positive")
		}
		if c.Watchdog.Timeout <= c.Generation.MaxDelay {
			return fmt.Errorf("watchdog timeout must exceed generation max_delay")
		}
	}
	if c.RateLimit.Enabled {
		if c.RateLimit.SelectCooldown < 0 {
			return fmt.Errorf("rate_limit select_cooldown must not be negative")
		}
		if c.RateLimit.SelectMaxPerHour < 0 {
			return fmt.Errorf("rate_limit select_max_per_hour must not be negative")
		}
	}

	return nil
}
