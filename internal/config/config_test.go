package config

import (
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.AdminPassword != DefaultAdminPassword {
		t.Errorf("AdminPassword = %q, want default", cfg.AdminPassword)
	}
	if filepath.Base(cfg.DataDir) != "data" {
		t.Errorf("DataDir = %q", cfg.DataDir)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, err := Load()
	if err != nil {
		t.Fatal(err)
	}
	cfg.AdminPassword = "s3cretpass"
	if err := cfg.Save(); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	reloaded, err := Load()
	if err != nil {
		t.Fatal(err)
	}
	if reloaded.AdminPassword != "s3cretpass" {
		t.Errorf("AdminPassword = %q after reload", reloaded.AdminPassword)
	}
}
