package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	libconfig "gardenmon/libs/config"
)

// Config defines the garden dashboard service configuration. The store DSN
// and key come from the environment (Supabase connection string); redis is
// optional and only backs range-config persistence.
type Config struct {
	HTTP struct {
		Port string `yaml:"port" env:"GARDENMON_HTTP_PORT"`
	} `yaml:"http"`
	Store struct {
		DSN string `yaml:"dsn" env:"GARDENMON_STORE_DSN"`
	} `yaml:"store"`
	Redis struct {
		Addr     string `yaml:"addr" env:"GARDENMON_REDIS_ADDR"`
		Password string `yaml:"password" env:"GARDENMON_REDIS_PASSWORD"`
		DB       int    `yaml:"db" env:"GARDENMON_REDIS_DB"`
	} `yaml:"redis"`
	Cache struct {
		TTLSeconds int `yaml:"ttlSeconds" env:"GARDENMON_CACHE_TTL"`
	} `yaml:"cache"`
	Session struct {
		Name string `yaml:"name" env:"GARDENMON_SESSION_NAME"`
	} `yaml:"session"`
}

// Load reads configuration via shared helper.
func Load() (*Config, error) {
	cfg := &Config{
		HTTP: struct {
			Port string `yaml:"port" env:"GARDENMON_HTTP_PORT"`
		}{
			Port: "8085",
		},
		Cache: struct {
			TTLSeconds int `yaml:"ttlSeconds" env:"GARDENMON_CACHE_TTL"`
		}{
			TTLSeconds: 60,
		},
		Session: struct {
			Name string `yaml:"name" env:"GARDENMON_SESSION_NAME"`
		}{
			Name: "default",
		},
	}

	if err := libconfig.Load(cfg); err != nil {
		return nil, err
	}

	if strings.TrimSpace(cfg.Store.DSN) == "" {
		return nil, errors.New("config: store dsn required")
	}
	if cfg.Cache.TTLSeconds <= 0 {
		return nil, errors.New("config: cache ttl must be positive")
	}
	return cfg, nil
}

// HTTPAddress returns :port style.
func (c *Config) HTTPAddress() string {
	port := strings.TrimSpace(c.HTTP.Port)
	if port == "" {
		port = "8085"
	}
	if strings.HasPrefix(port, ":") {
		return port
	}
	return fmt.Sprintf(":%s", port)
}

// CacheTTL returns the window cache validity as a duration.
func (c *Config) CacheTTL() time.Duration {
	return time.Duration(c.Cache.TTLSeconds) * time.Second
}

// RedisEnabled reports whether range persistence is configured.
func (c *Config) RedisEnabled() bool {
	return strings.TrimSpace(c.Redis.Addr) != ""
}
