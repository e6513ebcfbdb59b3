package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{EnvAPIURL, EnvLogLevel, EnvLogFile, EnvFluentHost, EnvFluentPort} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
}

func writeFile(t *testing.T, dir, name, body string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	return path
}

func TestLoad_MissingConfigFallsBackToDefaults(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	clearEnv(t)

	cfg, err := load(filepath.Join(home, "does-not-exist.toml"), "")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.APIURL != defaultAPIURL {
		t.Fatalf("APIURL = %q, want %q", cfg.APIURL, defaultAPIURL)
	}
	if cfg.RequestTimeout != defaultRequestTimeout {
		t.Fatalf("RequestTimeout = %v, want %v", cfg.RequestTimeout, defaultRequestTimeout)
	}
	if cfg.MaxInflight != defaultMaxInflight {
		t.Fatalf("MaxInflight = %d, want %d", cfg.MaxInflight, defaultMaxInflight)
	}
	if cfg.LogLevel != slog.LevelInfo {
		t.Fatalf("LogLevel = %v, want info", cfg.LogLevel)
	}
	wantLog, err := expandPath(defaultLogFile)
	if err != nil {
		t.Fatalf("expandPath(defaultLogFile) returned error: %v", err)
	}
	if cfg.LogFile != wantLog {
		t.Fatalf("LogFile = %q, want %q", cfg.LogFile, wantLog)
	}
	if cfg.Fluent.Enabled || cfg.Fluent.Port != defaultFluentPort || cfg.Fluent.Tag != defaultFluentTag {
		t.Fatalf("Fluent = %+v", cfg.Fluent)
	}
}

func TestLoad_ParsesAndTrimsConfig(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	clearEnv(t)

	path := writeFile(t, t.TempDir(), "config.toml", `
api_url = "  https://rent.example.com/six-cities  "
request_timeout = "12s"
max_inflight = 8
log_file = "  ~/logs/client.log  "
log_level = "debug"

[fluent]
enabled = true
host = "fluentd.local"
port = 24225
tag = "rentals"
`)

	cfg, err := load(path, "")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.APIURL != "https://rent.example.com/six-cities" {
		t.Fatalf("APIURL = %q", cfg.APIURL)
	}
	if cfg.RequestTimeout != 12*time.Second {
		t.Fatalf("RequestTimeout = %v", cfg.RequestTimeout)
	}
	if cfg.MaxInflight != 8 {
		t.Fatalf("MaxInflight = %d", cfg.MaxInflight)
	}
	if cfg.LogFile != filepath.Join(home, "logs", "client.log") {
		t.Fatalf("LogFile = %q, want it under HOME %q", cfg.LogFile, home)
	}
	if cfg.LogLevel != slog.LevelDebug {
		t.Fatalf("LogLevel = %v, want debug", cfg.LogLevel)
	}
	want := Fluent{Enabled: true, Host: "fluentd.local", Port: 24225, Tag: "rentals"}
	if cfg.Fluent != want {
		t.Fatalf("Fluent = %+v, want %+v", cfg.Fluent, want)
	}
}

func TestLoad_EmptyValuesUseDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	clearEnv(t)

	path := writeFile(t, t.TempDir(), "config.toml", `
api_url = "   "
log_file = ""
max_inflight = 0
`)

	cfg, err := load(path, "")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	def := Default()
	if cfg.APIURL != def.APIURL || cfg.LogFile != def.LogFile || cfg.MaxInflight != def.MaxInflight {
		t.Fatalf("cfg = %+v, want defaults %+v", cfg, def)
	}
}

func TestLoad_InvalidValuesFail(t *testing.T) {
	clearEnv(t)
	cases := []struct {
		name string
		body string
	}{
		{"toml", `api_url = [`},
		{"duration", `request_timeout = "soon"`},
		{"negative duration", `request_timeout = "-1s"`},
		{"level", `log_level = "loud"`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			path := writeFile(t, t.TempDir(), "config.toml", tc.body)
			_, err := load(path, "")
			if err == nil {
				t.Fatalf("Load returned nil error, want parse error")
			}
			if !strings.Contains(err.Error(), "parse config") {
				t.Fatalf("Load error = %q, want it to mention parse config", err.Error())
			}
		})
	}
}

func TestLoad_EnvironmentOverridesFile(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	clearEnv(t)

	dir := t.TempDir()
	path := writeFile(t, dir, "config.toml", `
api_url = "http://from-file:1"
log_level = "warn"
`)
	t.Setenv(EnvAPIURL, "http://from-env:2")
	t.Setenv(EnvFluentHost, "collector")
	t.Setenv(EnvFluentPort, "3000")

	cfg, err := load(path, "")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.APIURL != "http://from-env:2" {
		t.Fatalf("APIURL = %q", cfg.APIURL)
	}
	if cfg.LogLevel != slog.LevelWarn {
		t.Fatalf("LogLevel = %v, want warn from file", cfg.LogLevel)
	}
	if !cfg.Fluent.Enabled || cfg.Fluent.Host != "collector" || cfg.Fluent.Port != 3000 {
		t.Fatalf("Fluent = %+v", cfg.Fluent)
	}
}

func TestLoad_DotEnvBelowProcessEnv(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	clearEnv(t)

	dir := t.TempDir()
	envFile := writeFile(t, dir, ".env", "SIXCITIES_API_URL=http://dotenv:1\nSIXCITIES_LOG_LEVEL=error\n")
	t.Setenv(EnvLogLevel, "debug")

	cfg, err := load(filepath.Join(dir, "missing.toml"), envFile)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.APIURL != "http://dotenv:1" {
		t.Fatalf("APIURL = %q, want value from .env", cfg.APIURL)
	}
	if cfg.LogLevel != slog.LevelDebug {
		t.Fatalf("LogLevel = %v, want process env to win", cfg.LogLevel)
	}
}

func TestLoad_InvalidEnvFails(t *testing.T) {
	clearEnv(t)
	t.Setenv(EnvFluentPort, "http")

	_, err := load(filepath.Join(t.TempDir(), "missing.toml"), "")
	if err == nil || !strings.Contains(err.Error(), EnvFluentPort) {
		t.Fatalf("Load error = %v, want it to mention %s", err, EnvFluentPort)
	}
}

func TestExpandPath_ExpandsTildeAndReturnsAbs(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	got, err := expandPath("~/a/b")
	if err != nil {
		t.Fatalf("expandPath returned error: %v", err)
	}
	want := filepath.Join(home, "a/b")
	if got != want {
		t.Fatalf("expandPath = %q, want %q", got, want)
	}
}

func TestExpandPath_EmptyErrors(t *testing.T) {
	if _, err := expandPath("   "); err == nil {
		t.Fatalf("expandPath returned nil error, want error")
	}
}
