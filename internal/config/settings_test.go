package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestDefaultSettings(t *testing.T) {
	s := DefaultSettings()
	if err := s.Validate(); err != nil {
		t.Fatalf("default settings invalid: %v", err)
	}
	if s.Server.RequestTimeout != 5*time.Second {
		t.Errorf("RequestTimeout = %v, want 5s", s.Server.RequestTimeout)
	}
	if s.Sync.RetryDelay != 3*time.Second {
		t.Errorf("RetryDelay = %v, want 3s", s.Sync.RetryDelay)
	}
	if s.Log.Level != "info" {
		t.Errorf("Log.Level = %q", s.Log.Level)
	}
}

func TestLoadCustomPathOverlaysDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "client.yaml")
	data := "server:\n  base_url: http://game.example:9000\nsession:\n  lobby_id: \"42\"\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	s, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if s.Server.BaseURL != "http://game.example:9000" {
		t.Errorf("BaseURL = %q", s.Server.BaseURL)
	}
	if s.Session.LobbyID != "42" {
		t.Errorf("LobbyID = %q", s.Session.LobbyID)
	}
	// Не указанные поля берутся из встроенного файла.
	if s.Server.RequestTimeout != 5*time.Second {
		t.Errorf("RequestTimeout = %v", s.Server.RequestTimeout)
	}
}

func TestLoadMissingCustomPath(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestLoadInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("server: [\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestValidateSession(t *testing.T) {
	s := DefaultSettings()
	if err := s.ValidateSession(); err == nil || !strings.Contains(err.Error(), "lobby_id") {
		t.Errorf("err = %v, want lobby_id error", err)
	}
	s.Session.LobbyID = "42"
	if err := s.ValidateSession(); err != nil {
		t.Errorf("ValidateSession: %v", err)
	}
}

func TestValidate(t *testing.T) {
	s := DefaultSettings()
	s.Server.BaseURL = ""
	s.Server.RatePerSecond = 0
	err := s.Validate()
	if err == nil {
		t.Fatal("expected validation error")
	}
	for _, want := range []string{"base_url", "rate_per_second"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("error %q does not mention %s", err, want)
		}
	}
}
