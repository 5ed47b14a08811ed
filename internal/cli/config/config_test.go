package config

import (
	"os"
	"path/filepath"
	"strconv"
	"testing"
)

func TestLoadFromMissingFileReturnsDefaults(t *testing.T) {
	configFile := filepath.Join(t.TempDir(), "config.json")

	cfg, err := LoadFrom(configFile)
	if err != nil {
		t.Fatalf("LoadFrom() error = %v", err)
	}

	if cfg.Server != DefaultServer {
		t.Errorf("Server = %q, want %q", cfg.Server, DefaultServer)
	}
	if cfg.Mode != ModeConversation {
		t.Errorf("Mode = %q, want %q", cfg.Mode, ModeConversation)
	}
	if cfg.UserID != "" {
		t.Errorf("UserID = %q, want empty", cfg.UserID)
	}
}

func TestEnsureUserIDGeneratesNumericID(t *testing.T) {
	cfg := &Config{}

	if !cfg.EnsureUserID() {
		t.Fatal("EnsureUserID() = false for empty config, want true")
	}
	if cfg.UserID == "" {
		t.Fatal("EnsureUserID() left UserID empty")
	}
	if _, err := strconv.ParseInt(cfg.UserID, 10, 64); err != nil {
		t.Errorf("UserID %q is not a decimal integer: %v", cfg.UserID, err)
	}
}

func TestEnsureUserIDKeepsExistingID(t *testing.T) {
	cfg := &Config{UserID: "1700000000000"}

	if cfg.EnsureUserID() {
		t.Error("EnsureUserID() = true for config with ID, want false")
	}
	if cfg.UserID != "1700000000000" {
		t.Errorf("UserID = %q, want unchanged", cfg.UserID)
	}
}

func TestUserIDSurvivesSaveAndReload(t *testing.T) {
	configFile := filepath.Join(t.TempDir(), "winectl", "config.json")

	cfg, err := LoadFrom(configFile)
	if err != nil {
		t.Fatalf("LoadFrom() error = %v", err)
	}
	cfg.EnsureUserID()
	generated := cfg.UserID

	if err := cfg.SaveTo(configFile); err != nil {
		t.Fatalf("SaveTo() error = %v", err)
	}

	reloaded, err := LoadFrom(configFile)
	if err != nil {
		t.Fatalf("LoadFrom() after save error = %v", err)
	}
	if reloaded.UserID != generated {
		t.Errorf("reloaded UserID = %q, want %q", reloaded.UserID, generated)
	}
	if reloaded.EnsureUserID() {
		t.Error("EnsureUserID() regenerated an ID after reload")
	}
}

func TestSaveUsesRestrictivePermissions(t *testing.T) {
	configFile := filepath.Join(t.TempDir(), "config.json")

	cfg := &Config{Server: DefaultServer, Mode: ModeWizard, UserID: "42"}
	if err := cfg.SaveTo(configFile); err != nil {
		t.Fatalf("SaveTo() error = %v", err)
	}

	info, err := os.Stat(configFile)
	if err != nil {
		t.Fatalf("Stat() error = %v", err)
	}
	if perm := info.Mode().Perm(); perm != 0600 {
		t.Errorf("config file permissions = %o, want 600", perm)
	}
}
