// internal/config/config.go
//
// Runtime configuration shared by the console game and the web server.
//
// Sources, later ones winning:
//   1. Built-in defaults.
//   2. An optional YAML file (FORCA_CONFIG, default ./config.yaml).
//   3. Environment variables, including those loaded from ./.env.
//
// Environment variables:
//   PORT, BANK_FILE, LOG_LEVEL, CLIENT_ORIGIN, JWT_SECRET, SESSION_TTL, DAILY_SALT

package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config holds every tunable of the game binaries.
type Config struct {
	Port         string        `yaml:"port"`
	BankFile     string        `yaml:"bank_file"` // empty → embedded bank
	LogLevel     string        `yaml:"log_level"`
	ClientOrigin string        `yaml:"client_origin"`
	JWTSecret    string        `yaml:"jwt_secret"`
	SessionTTL   time.Duration `yaml:"session_ttl"`
	DailySalt    string        `yaml:"daily_salt"`
}

// Defaults returns the configuration used when nothing is set.
func Defaults() Config {
	return Config{
		Port:         "5175",
		LogLevel:     "info",
		ClientOrigin: "http://localhost:5175",
		JWTSecret:    "dev_secret_change_me",
		SessionTTL:   24 * time.Hour,
		DailySalt:    "local_dev_salt",
	}
}

// Load builds the configuration. path overrides FORCA_CONFIG; a missing
// YAML file is not an error.
func Load(path string) (Config, error) {
	_ = godotenv.Load()

	cfg := Defaults()
	if path == "" {
		path = getEnv("FORCA_CONFIG", "config.yaml")
	}
	if err := cfg.readFile(path); err != nil {
		return cfg, err
	}
	if err := cfg.applyEnv(); err != nil {
		return cfg, err
	}
	if cfg.SessionTTL <= 0 {
		return cfg, fmt.Errorf("config: session_ttl must be positive, got %s", cfg.SessionTTL)
	}
	return cfg, nil
}

func (c *Config) readFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("config: parse %s: %w", path, err)
	}
	return nil
}

func (c *Config) applyEnv() error {
	c.Port = getEnv("PORT", c.Port)
	c.BankFile = getEnv("BANK_FILE", c.BankFile)
	c.LogLevel = getEnv("LOG_LEVEL", c.LogLevel)
	c.ClientOrigin = getEnv("CLIENT_ORIGIN", c.ClientOrigin)
	c.JWTSecret = getEnv("JWT_SECRET", c.JWTSecret)
	c.DailySalt = getEnv("DAILY_SALT", c.DailySalt)
	if v := os.Getenv("SESSION_TTL"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("config: SESSION_TTL: %w", err)
		}
		c.SessionTTL = d
	}
	return nil
}

// getEnv returns the value of k or def if unset/empty.
func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
