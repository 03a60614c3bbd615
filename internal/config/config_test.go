package config

import (
	"log/slog"
	"testing"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("POKER_WS_URL", "")
	t.Setenv("POKER_HTTP_URL", "")
	t.Setenv("POKER_SESSION_FILE", "")
	t.Setenv("POKER_LOG_LEVEL", "")

	cfg := Load()
	if cfg.WSURL == "" || cfg.HTTPURL == "" {
		t.Fatalf("defaults missing: %+v", cfg)
	}
	if cfg.LogLevel != slog.LevelInfo {
		t.Fatalf("default log level = %v, want info", cfg.LogLevel)
	}
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("POKER_WS_URL", "ws://localhost:8080")
	t.Setenv("POKER_HTTP_URL", "http://localhost:8080")
	t.Setenv("POKER_SESSION_FILE", "/tmp/poker-session")
	t.Setenv("POKER_LOG_LEVEL", "debug")

	cfg := Load()
	if cfg.WSURL != "ws://localhost:8080" {
		t.Fatalf("WSURL = %q", cfg.WSURL)
	}
	if cfg.HTTPURL != "http://localhost:8080" {
		t.Fatalf("HTTPURL = %q", cfg.HTTPURL)
	}
	if cfg.SessionFile != "/tmp/poker-session" {
		t.Fatalf("SessionFile = %q", cfg.SessionFile)
	}
	if cfg.LogLevel != slog.LevelDebug {
		t.Fatalf("LogLevel = %v, want debug", cfg.LogLevel)
	}
}

func TestParseLevel(t *testing.T) {
	cases := map[string]slog.Level{
		"debug": slog.LevelDebug,
		"info":  slog.LevelInfo,
		"warn":  slog.LevelWarn,
		"error": slog.LevelError,
		"WARN":  slog.LevelWarn,
		"bogus": slog.LevelInfo,
	}
	for in, want := range cases {
		if got := parseLevel(in); got != want {
			t.Fatalf("parseLevel(%q) = %v, want %v", in, got, want)
		}
	}
}
