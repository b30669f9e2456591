package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/alexanderramin/wellspring/internal/domain"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config holds process-wide settings. Precedence, lowest first: defaults,
// YAML file, .env, process environment.
type Config struct {
	DBPath      string   `yaml:"db_path"`
	HTTPAddr    string   `yaml:"http_addr"`
	CORSOrigins []string `yaml:"cors_origins"`
	LogUseCases bool     `yaml:"log_use_cases"`
	// Now pins the engine clock for reproducible reports. Empty means
	// wall-clock time.
	Now string `yaml:"now"`
}

// DefaultConfig stores data under ~/.wellspring and serves on localhost.
func DefaultConfig() Config {
	dir := ".wellspring"
	if home, err := os.UserHomeDir(); err == nil {
		dir = filepath.Join(home, ".wellspring")
	}
	return Config{
		DBPath:      filepath.Join(dir, "wellspring.db"),
		HTTPAddr:    "127.0.0.1:8080",
		CORSOrigins: []string{"http://localhost:8501", "http://localhost:3000"},
	}
}

// LoadConfig builds the effective configuration.
func LoadConfig() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("loading .env file: %w", err)
	}

	cfg := DefaultConfig()
	path, explicit := configFilePath()
	if path != "" {
		if err := cfg.mergeFile(path); err != nil {
			if explicit || !errors.Is(err, fs.ErrNotExist) {
				return Config{}, err
			}
		}
	}
	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func configFilePath() (path string, explicit bool) {
	if v := os.Getenv("WELLSPRING_CONFIG"); v != "" {
		return v, true
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", false
	}
	return filepath.Join(home, ".wellspring", "config.yaml"), false
}

// mergeFile overlays the keys present in a YAML file onto c.
func (c *Config) mergeFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("parsing %s: %w", path, err)
	}
	return nil
}

func (c *Config) applyEnv() {
	if v := os.Getenv("WELLSPRING_DB"); v != "" {
		c.DBPath = v
	}
	if v := os.Getenv("WELLSPRING_HTTP_ADDR"); v != "" {
		c.HTTPAddr = v
	}
	if v := os.Getenv("WELLSPRING_CORS_ORIGINS"); v != "" {
		c.CORSOrigins = splitList(v)
	}
	if v := os.Getenv("WELLSPRING_LOG_USE_CASES"); v != "" {
		c.LogUseCases, _ = strconv.ParseBool(v)
	}
	if v := os.Getenv("WELLSPRING_NOW"); v != "" {
		c.Now = v
	}
}

func (c Config) Validate() error {
	var errs []error
	if c.DBPath == "" {
		errs = append(errs, errors.New("db_path is required"))
	}
	if c.HTTPAddr == "" {
		errs = append(errs, errors.New("http_addr is required"))
	}
	if c.Now != "" {
		if _, err := ParseNow(c.Now); err != nil {
			errs = append(errs, fmt.Errorf("now: %w", err))
		}
	}
	return errors.Join(errs...)
}

// Clock returns the configured fixed time or time.Now.
func (c Config) Clock() func() time.Time {
	if c.Now != "" {
		if t, err := ParseNow(c.Now); err == nil {
			return func() time.Time { return t }
		}
	}
	return time.Now
}

// ParseNow accepts RFC3339 or a bare YYYY-MM-DD, which means noon UTC.
func ParseNow(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	d, err := time.Parse(domain.DateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid time %q (expected RFC3339 or YYYY-MM-DD)", s)
	}
	return d.Add(12 * time.Hour), nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
