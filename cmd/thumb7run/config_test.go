package main

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfigFileOverridesDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "thumb7.conf")
	contents := "# comment\ncycle_budget=0x10\ninitial_sp=0x20001000\ndebug=true\n"
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg := defaultConfig()
	if err := loadConfigFile(path, &cfg); err != nil {
		t.Fatalf("loadConfigFile: %v", err)
	}
	if cfg.cycleBudget != 0x10 {
		t.Errorf("cycleBudget = %#x, want 0x10", cfg.cycleBudget)
	}
	if cfg.initialSP != 0x20001000 {
		t.Errorf("initialSP = %#x, want 0x20001000", cfg.initialSP)
	}
	if !cfg.debug {
		t.Errorf("debug = false, want true")
	}
}

func TestLoadConfigFileRejectsUnknownSetting(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "thumb7.conf")
	if err := os.WriteFile(path, []byte("bogus=1\n"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg := defaultConfig()
	if err := loadConfigFile(path, &cfg); err == nil {
		t.Errorf("loadConfigFile accepted an unknown setting")
	}
}

func TestApplySettingRejectsMalformedNumber(t *testing.T) {
	cfg := defaultConfig()
	if err := applySetting(&cfg, "cycle_budget", "not-a-number"); err == nil {
		t.Errorf("applySetting accepted a malformed cycle_budget")
	}
}
