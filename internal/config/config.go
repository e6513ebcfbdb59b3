package config

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	toml "github.com/pelletier/go-toml/v2"
)

// Config holds the client settings.
type Config struct {
	APIURL         string
	RequestTimeout time.Duration
	MaxInflight    int
	LogFile        string
	LogLevel       slog.Level
	Fluent         Fluent
}

// Fluent configures optional log forwarding to a fluentd agent.
type Fluent struct {
	Enabled bool
	Host    string
	Port    int
	Tag     string
}

const (
	defaultConfigPath     = "~/.config/sixcities/config.toml"
	defaultEnvFile        = ".env"
	defaultAPIURL         = "http://127.0.0.1:8089"
	defaultRequestTimeout = 5 * time.Second
	defaultMaxInflight    = 4
	defaultLogFile        = "~/.local/state/sixcities/sixcities.log"
	defaultFluentHost     = "127.0.0.1"
	defaultFluentPort     = 24224
	defaultFluentTag      = "sixcities"
)

// Environment variables that override the config file.
const (
	EnvAPIURL     = "SIXCITIES_API_URL"
	EnvLogLevel   = "SIXCITIES_LOG_LEVEL"
	EnvLogFile    = "SIXCITIES_LOG_FILE"
	EnvFluentHost = "SIXCITIES_FLUENT_HOST"
	EnvFluentPort = "SIXCITIES_FLUENT_PORT"
)

// Default returns the settings used when no config file exists.
func Default() Config {
	return Config{
		APIURL:         defaultAPIURL,
		RequestTimeout: defaultRequestTimeout,
		MaxInflight:    defaultMaxInflight,
		LogFile:        mustExpand(defaultLogFile),
		LogLevel:       slog.LevelInfo,
		Fluent: Fluent{
			Host: defaultFluentHost,
			Port: defaultFluentPort,
			Tag:  defaultFluentTag,
		},
	}
}

// Load parses the config file at path (the default location when empty),
// then applies overrides from a .env file in the working directory and from
// the process environment. A missing config file is not an error.
func Load(path string) (Config, error) {
	return load(path, defaultEnvFile)
}

func load(path, envFile string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	cfg := Default()
	if err := readFile(resolved, &cfg); err != nil {
		return Config{}, err
	}

	dotenv, err := readEnvFile(envFile)
	if err != nil {
		return Config{}, err
	}
	lookup := func(key string) (string, bool) {
		if v, ok := os.LookupEnv(key); ok {
			return v, true
		}
		v, ok := dotenv[key]
		return v, ok
	}
	if err := applyEnv(&cfg, lookup); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func readFile(path string, cfg *Config) error {
	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}

	var raw struct {
		APIURL         string `toml:"api_url"`
		RequestTimeout string `toml:"request_timeout"`
		MaxInflight    int    `toml:"max_inflight"`
		LogFile        string `toml:"log_file"`
		LogLevel       string `toml:"log_level"`
		Fluent         struct {
			Enabled bool   `toml:"enabled"`
			Host    string `toml:"host"`
			Port    int    `toml:"port"`
			Tag     string `toml:"tag"`
		} `toml:"fluent"`
	}
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return fmt.Errorf("parse config: %w", err)
	}

	if v := strings.TrimSpace(raw.APIURL); v != "" {
		cfg.APIURL = v
	}
	if v := strings.TrimSpace(raw.RequestTimeout); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil || d <= 0 {
			return fmt.Errorf("parse config: request_timeout %q is not a positive duration", v)
		}
		cfg.RequestTimeout = d
	}
	if raw.MaxInflight > 0 {
		cfg.MaxInflight = raw.MaxInflight
	}
	if v := strings.TrimSpace(raw.LogFile); v != "" {
		cfg.LogFile = mustExpand(v)
	}
	if v := strings.TrimSpace(raw.LogLevel); v != "" {
		level, err := parseLevel(v)
		if err != nil {
			return fmt.Errorf("parse config: %w", err)
		}
		cfg.LogLevel = level
	}

	cfg.Fluent.Enabled = raw.Fluent.Enabled
	if v := strings.TrimSpace(raw.Fluent.Host); v != "" {
		cfg.Fluent.Host = v
	}
	if raw.Fluent.Port > 0 {
		cfg.Fluent.Port = raw.Fluent.Port
	}
	if v := strings.TrimSpace(raw.Fluent.Tag); v != "" {
		cfg.Fluent.Tag = v
	}
	return nil
}

func readEnvFile(path string) (map[string]string, error) {
	if strings.TrimSpace(path) == "" {
		return nil, nil
	}
	values, err := godotenv.Read(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("read env file: %w", err)
	}
	return values, nil
}

func applyEnv(cfg *Config, lookup func(string) (string, bool)) error {
	get := func(key string) (string, bool) {
		v, ok := lookup(key)
		v = strings.TrimSpace(v)
		return v, ok && v != ""
	}

	if v, ok := get(EnvAPIURL); ok {
		cfg.APIURL = v
	}
	if v, ok := get(EnvLogFile); ok {
		cfg.LogFile = mustExpand(v)
	}
	if v, ok := get(EnvLogLevel); ok {
		level, err := parseLevel(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvLogLevel, err)
		}
		cfg.LogLevel = level
	}
	// Naming a fluentd host is enough to turn forwarding on.
	if v, ok := get(EnvFluentHost); ok {
		cfg.Fluent.Host = v
		cfg.Fluent.Enabled = true
	}
	if v, ok := get(EnvFluentPort); ok {
		port, err := strconv.Atoi(v)
		if err != nil || port <= 0 || port > 65535 {
			return fmt.Errorf("%s: invalid port %q", EnvFluentPort, v)
		}
		cfg.Fluent.Port = port
	}
	return nil
}

func parseLevel(v string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(v)); err != nil {
		return 0, fmt.Errorf("log level %q: %w", v, err)
	}
	return level, nil
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultConfigPath)
	}
	return expandPath(path)
}

func mustExpand(path string) string {
	expanded, err := expandPath(path)
	if err != nil {
		return path
	}
	return expanded
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
