// Package config loads the server settings from a YAML file and the
// environment.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config is the full server configuration. Zero values are replaced by
// Default before validation.
type Config struct {
	ListenAddr  string `yaml:"listen_addr"`
	MetricsAddr string `yaml:"metrics_addr"`
	DatabaseURL string `yaml:"database_url"`

	// DefaultLimit bounds ListUsers when the request carries no limit.
	DefaultLimit uint32 `yaml:"default_limit"`
	// QueueCapacity is the number of users buffered per ListUsers stream.
	QueueCapacity int `yaml:"queue_capacity"`
	MaxPoolSize   int `yaml:"max_pool_size"`

	// StrictMail rejects trailing text after an otherwise valid address.
	StrictMail bool `yaml:"strict_mail"`

	LogLevel  string `yaml:"log_level"`
	LogFormat string `yaml:"log_format"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		ListenAddr:    "0.0.0.0:9090",
		MetricsAddr:   "",
		DatabaseURL:   "memory://",
		DefaultLimit:  1024,
		QueueCapacity: 1024,
		MaxPoolSize:   10,
		LogLevel:      "info",
		LogFormat:     "console",
	}
}

// Load reads path (if non-empty) over the defaults and then applies
// environment overrides.
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("read config %s: %w", path, err)
		}
		if err := decode(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config %s: %w", path, err)
		}
	}
	if err := cfg.applyEnv(os.LookupEnv); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func decode(data []byte, cfg *Config) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

// applyEnv overlays DATABASE_URL and USERSVC_* variables.
func (c *Config) applyEnv(lookup func(string) (string, bool)) error {
	str := func(dst *string, keys ...string) {
		for _, k := range keys {
			if v, ok := lookup(k); ok && v != "" {
				*dst = v
			}
		}
	}
	str(&c.ListenAddr, "USERSVC_LISTEN_ADDR")
	str(&c.MetricsAddr, "USERSVC_METRICS_ADDR")
	str(&c.DatabaseURL, "DATABASE_URL", "USERSVC_DATABASE_URL")
	str(&c.LogLevel, "USERSVC_LOG_LEVEL")
	str(&c.LogFormat, "USERSVC_LOG_FORMAT")

	if v, ok := lookup("USERSVC_DEFAULT_LIMIT"); ok && v != "" {
		n, err := strconv.ParseUint(v, 10, 32)
		if err != nil {
			return fmt.Errorf("USERSVC_DEFAULT_LIMIT: %w", err)
		}
		c.DefaultLimit = uint32(n)
	}
	for key, dst := range map[string]*int{
		"USERSVC_QUEUE_CAPACITY": &c.QueueCapacity,
		"USERSVC_MAX_POOL_SIZE":  &c.MaxPoolSize,
	} {
		if v, ok := lookup(key); ok && v != "" {
			n, err := strconv.Atoi(v)
			if err != nil {
				return fmt.Errorf("%s: %w", key, err)
			}
			*dst = n
		}
	}
	if v, ok := lookup("USERSVC_STRICT_MAIL"); ok && v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("USERSVC_STRICT_MAIL: %w", err)
		}
		c.StrictMail = b
	}
	return nil
}

// Validate reports every invalid setting at once.
func (c Config) Validate() error {
	var errs []error
	if strings.TrimSpace(c.ListenAddr) == "" {
		errs = append(errs, errors.New("listen_addr is required"))
	}
	if strings.TrimSpace(c.DatabaseURL) == "" {
		errs = append(errs, errors.New("database_url is required"))
	}
	if c.DefaultLimit == 0 {
		errs = append(errs, errors.New("default_limit must be positive"))
	}
	if c.QueueCapacity <= 0 {
		errs = append(errs, errors.New("queue_capacity must be positive"))
	}
	if c.MaxPoolSize <= 0 {
		errs = append(errs, errors.New("max_pool_size must be positive"))
	}
	return errors.Join(errs...)
}
