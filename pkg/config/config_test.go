package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/bastiangx/shelfserve/internal/utils"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Suggest.MaxSuggestions != 6 {
		t.Errorf("MaxSuggestions = %d, want 6", cfg.Suggest.MaxSuggestions)
	}
	if cfg.Suggest.HistoryWeight != 2.0 {
		t.Errorf("HistoryWeight = %v, want 2.0", cfg.Suggest.HistoryWeight)
	}
	if cfg.Suggest.DefaultLanguage != "en" {
		t.Errorf("DefaultLanguage = %q, want en", cfg.Suggest.DefaultLanguage)
	}
	if cfg.Suggest.FallbackCategory != "other" {
		t.Errorf("FallbackCategory = %q, want other", cfg.Suggest.FallbackCategory)
	}
	if cfg.Fuzzy.Threshold != 0.4 {
		t.Errorf("Threshold = %v, want 0.4", cfg.Fuzzy.Threshold)
	}
	if cfg.Fuzzy.NameWeight != 0.7 || cfg.Fuzzy.AliasWeight != 0.3 {
		t.Errorf("field weights = %v/%v, want 0.7/0.3", cfg.Fuzzy.NameWeight, cfg.Fuzzy.AliasWeight)
	}
	if cfg.History.MaxAgeDays != 180 || cfg.History.MinCountToKeep != 3 {
		t.Errorf("history thresholds = %d/%d, want 180/3", cfg.History.MaxAgeDays, cfg.History.MinCountToKeep)
	}
	if cfg.Store.Backend != "file" {
		t.Errorf("Backend = %q, want file", cfg.Store.Backend)
	}
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")

	cfg := DefaultConfig()
	cfg.Suggest.MaxSuggestions = 10
	cfg.Fuzzy.Threshold = 0.25
	cfg.Store.Backend = "sqlite"

	if err := SaveConfig(cfg, path); err != nil {
		t.Fatalf("SaveConfig: %v", err)
	}
	loaded, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}

	if loaded.Suggest.MaxSuggestions != 10 {
		t.Errorf("MaxSuggestions = %d, want 10", loaded.Suggest.MaxSuggestions)
	}
	if loaded.Fuzzy.Threshold != 0.25 {
		t.Errorf("Threshold = %v, want 0.25", loaded.Fuzzy.Threshold)
	}
	if loaded.Store.Backend != "sqlite" {
		t.Errorf("Backend = %q, want sqlite", loaded.Store.Backend)
	}
}

// Keys absent from the file keep their defaults.
func TestLoadConfigPartialFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `[suggest]
max_suggestions = 3
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Suggest.MaxSuggestions != 3 {
		t.Errorf("MaxSuggestions = %d, want 3", cfg.Suggest.MaxSuggestions)
	}
	if cfg.Fuzzy.Threshold != 0.4 {
		t.Errorf("unset Threshold = %v, want the default 0.4", cfg.Fuzzy.Threshold)
	}
	if cfg.Suggest.HistoryWeight != 2.0 {
		t.Errorf("unset HistoryWeight = %v, want the default 2.0", cfg.Suggest.HistoryWeight)
	}
}

// A type mismatch breaks the strict decode but the salvage pass keeps every
// well-typed key and falls back to defaults for the broken one.
func TestPartialParseRecovery(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `[suggest]
max_suggestions = "six"
history_weight = 3.0

[fuzzy]
threshold = 0.5
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig must not fail on recoverable files: %v", err)
	}
	if cfg.Suggest.MaxSuggestions != 6 {
		t.Errorf("mistyped MaxSuggestions = %d, want the default 6", cfg.Suggest.MaxSuggestions)
	}
	if cfg.Suggest.HistoryWeight != 3.0 {
		t.Errorf("HistoryWeight = %v, want the salvaged 3.0", cfg.Suggest.HistoryWeight)
	}
	if cfg.Fuzzy.Threshold != 0.5 {
		t.Errorf("Threshold = %v, want the salvaged 0.5", cfg.Fuzzy.Threshold)
	}
}

// A file that is not TOML at all still yields a usable config.
func TestLoadConfigGarbageFallsBackToDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("{{{ not toml"), 0644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Suggest.MaxSuggestions != 6 || cfg.Fuzzy.Threshold != 0.4 {
		t.Errorf("garbage file must yield defaults, got %+v", cfg)
	}
}

func TestInitConfigCreatesMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")

	cfg, err := InitConfig(path)
	if err != nil {
		t.Fatalf("InitConfig: %v", err)
	}
	if cfg.Suggest.MaxSuggestions != 6 {
		t.Errorf("created config MaxSuggestions = %d, want 6", cfg.Suggest.MaxSuggestions)
	}
	if !utils.FileExists(path) {
		t.Error("InitConfig did not write the default config file")
	}

	// The written file must load back cleanly.
	reloaded, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig on created file: %v", err)
	}
	if reloaded.Fuzzy.Threshold != 0.4 {
		t.Errorf("reloaded Threshold = %v, want 0.4", reloaded.Fuzzy.Threshold)
	}
}

func TestUpdatePersists(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	cfg := DefaultConfig()
	if err := SaveConfig(cfg, path); err != nil {
		t.Fatalf("SaveConfig: %v", err)
	}

	maxSuggestions := 8
	weight := 1.5
	if err := cfg.Update(path, &maxSuggestions, &weight, nil); err != nil {
		t.Fatalf("Update: %v", err)
	}

	loaded, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if loaded.Suggest.MaxSuggestions != 8 {
		t.Errorf("MaxSuggestions = %d, want 8", loaded.Suggest.MaxSuggestions)
	}
	if loaded.Suggest.HistoryWeight != 1.5 {
		t.Errorf("HistoryWeight = %v, want 1.5", loaded.Suggest.HistoryWeight)
	}
	if loaded.Fuzzy.Threshold != 0.4 {
		t.Errorf("untouched Threshold = %v, want 0.4", loaded.Fuzzy.Threshold)
	}
}
