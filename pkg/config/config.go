/*
Package config manages TOML config for ShelfServe services.
*/
package config

import (
	"os"
	"path/filepath"

	"github.com/bastiangx/shelfserve/internal/utils"
	"github.com/charmbracelet/log"
)

// Config holds the entire config structure
type Config struct {
	Suggest SuggestConfig `toml:"suggest"`
	Fuzzy   FuzzyConfig   `toml:"fuzzy"`
	History HistoryConfig `toml:"history"`
	Store   StoreConfig   `toml:"store"`
	CLI     CliConfig     `toml:"cli"`
}

// SuggestConfig has ranking related options.
type SuggestConfig struct {
	MaxSuggestions   int     `toml:"max_suggestions"`
	HistoryWeight    float64 `toml:"history_weight"`
	DefaultLanguage  string  `toml:"default_language"`
	FallbackCategory string  `toml:"fallback_category"`
}

// FuzzyConfig holds approximate matching options.
type FuzzyConfig struct {
	Threshold   float64 `toml:"threshold"`
	NameWeight  float64 `toml:"name_weight"`
	AliasWeight float64 `toml:"alias_weight"`
	MaxQueryLen int     `toml:"max_query_len"`
}

// HistoryConfig holds usage history maintenance options.
type HistoryConfig struct {
	MaxAgeDays     int `toml:"max_age_days"`
	MinCountToKeep int `toml:"min_count_to_keep"`
}

// StoreConfig selects the persistence backend.
type StoreConfig struct {
	Backend string `toml:"backend"` // "file" or "sqlite"
	Dir     string `toml:"dir"`
}

// CliConfig holds cli interface options.
type CliConfig struct {
	DefaultLimit    int  `toml:"default_limit"`
	DefaultMaxLen   int  `toml:"default_max_len"`
	DefaultNoFilter bool `toml:"default_no_filter"`
}

// GetConfigDir returns the config directory with fallback priority:
// 1. ~/.config/
// 2. ~/Library/Application Support/ (macOS)
// 3. Current executable dir
// 4. builtin defaults
func GetConfigDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		log.Errorf("Failed to get home directory: %v", err)
		execDir, execErr := utils.GetExecutableDir()
		if execErr != nil {
			return "", execErr
		}
		return execDir, nil
	}
	primaryPath := filepath.Join(homeDir, ".config", "shelfserve")
	if result := utils.CheckDirStatus(primaryPath); result.Writable {
		return primaryPath, nil
	}
	// Not conventional, fallback from ~/.config if not writable
	macOSPath := filepath.Join(homeDir, "Library", "Application Support", "shelfserve")
	if result := utils.CheckDirStatus(macOSPath); result.Writable {
		return macOSPath, nil
	}
	execDir, err := utils.GetExecutableDir()
	if err != nil {
		log.Errorf("Failed to get executable directory: %v", err)
		return "", err
	}
	return execDir, nil
}

// GetDefaultConfigPath returns the default path for config.toml
func GetDefaultConfigPath() (string, error) {
	configDir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "config.toml"), nil
}

// LoadConfigWithPriority loads config with priority:
// 1. Custom path from --config flag
// 2. Default path: [UserConfigDir]/shelfserve/config.toml
// 3. Builtin defaults
func LoadConfigWithPriority(customConfigPath string) (*Config, string, error) {
	var config *Config
	var err error

	if customConfigPath != "" {
		if _, statErr := os.Stat(customConfigPath); statErr == nil {
			config, err = LoadConfig(customConfigPath)
			if err != nil {
				log.Warnf("Failed to load custom config from %s: %v. Trying default path...", customConfigPath, err)
			} else {
				log.Debugf("Loaded config from custom path: %s", customConfigPath)
				return config, customConfigPath, nil
			}
		} else {
			log.Warnf("Custom config file not found at %s: %v. Trying default path...", customConfigPath, statErr)
		}
	}
	defaultPath, err := GetDefaultConfigPath()
	if err != nil {
		log.Warnf("Failed to determine default config path: %v. Using built-in defaults...", err)
		return DefaultConfig(), "", nil
	}

	config, err = InitConfig(defaultPath)
	if err != nil {
		log.Warnf("Failed to load/create config at default path %s: %v. Using builtin defaults...", defaultPath, err)
		return DefaultConfig(), "", nil
	}
	log.Debugf("Loaded config from default path: %s", defaultPath)
	return config, defaultPath, nil
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() *Config {
	return &Config{
		Suggest: SuggestConfig{
			MaxSuggestions:   6,
			HistoryWeight:    2.0,
			DefaultLanguage:  "en",
			FallbackCategory: "other",
		},
		Fuzzy: FuzzyConfig{
			Threshold:   0.4,
			NameWeight:  0.7,
			AliasWeight: 0.3,
			MaxQueryLen: 64,
		},
		History: HistoryConfig{
			MaxAgeDays:     180,
			MinCountToKeep: 3,
		},
		Store: StoreConfig{
			Backend: "file",
			Dir:     "",
		},
		CLI: CliConfig{
			DefaultLimit:    6,
			DefaultMaxLen:   64,
			DefaultNoFilter: false,
		},
	}
}

// InitConfig loads config from file or creates default if missing
func InitConfig(configPath string) (*Config, error) {
	configDir := filepath.Dir(configPath)

	if err := utils.EnsureDir(configDir); err != nil {
		log.Warnf("Failed to create config directory %s: %v. Using built-in defaults...", configDir, err)
		return DefaultConfig(), nil
	}

	if !utils.FileExists(configPath) {
		config := DefaultConfig()
		if err := SaveConfig(config, configPath); err != nil {
			log.Warnf("Failed to create default config file at %s: %v. Using built-in defaults...", configPath, err)
			return DefaultConfig(), nil
		}
		log.Debugf("Created default config file at: %s", configPath)
		return config, nil
	}

	config, err := LoadConfig(configPath)
	if err != nil {
		log.Warnf("Failed to load config from %s: %v. Using built-in defaults...", configPath, err)
		return DefaultConfig(), nil
	}
	return config, nil
}

// LoadConfig loads from a TOML file
func LoadConfig(configPath string) (*Config, error) {
	config := DefaultConfig()

	if err := utils.LoadTOMLFile(configPath, config); err != nil {
		return tryPartialParse(configPath)
	}
	return config, nil
}

// tryPartialParse attempts to salvage valid sections from a broken TOML file
func tryPartialParse(configPath string) (*Config, error) {
	config := DefaultConfig()

	tempConfig, err := utils.ParseTOMLWithRecovery(configPath)
	if err != nil {
		log.Warnf("Could not parse any valid configuration from %s: %v. Using all defaults.", configPath, err)
		return config, nil
	}

	if suggestSection, ok := utils.ExtractSection(tempConfig, "suggest"); ok {
		extractSuggestConfig(suggestSection, &config.Suggest)
	}
	if fuzzySection, ok := utils.ExtractSection(tempConfig, "fuzzy"); ok {
		extractFuzzyConfig(fuzzySection, &config.Fuzzy)
	}
	if historySection, ok := utils.ExtractSection(tempConfig, "history"); ok {
		extractHistoryConfig(historySection, &config.History)
	}
	if storeSection, ok := utils.ExtractSection(tempConfig, "store"); ok {
		extractStoreConfig(storeSection, &config.Store)
	}
	if cliSection, ok := utils.ExtractSection(tempConfig, "cli"); ok {
		extractCliConfig(cliSection, &config.CLI)
	}
	return config, nil
}

// extractSuggestConfig extracts ranking configuration from a map
func extractSuggestConfig(data map[string]any, suggest *SuggestConfig) {
	if val, ok := utils.ExtractInt64(data, "max_suggestions"); ok {
		suggest.MaxSuggestions = val
	}
	if val, ok := utils.ExtractFloat64(data, "history_weight"); ok {
		suggest.HistoryWeight = val
	}
	if val, ok := utils.ExtractString(data, "default_language"); ok {
		suggest.DefaultLanguage = val
	}
	if val, ok := utils.ExtractString(data, "fallback_category"); ok {
		suggest.FallbackCategory = val
	}
}

// extractFuzzyConfig extracts matcher configuration from a map
func extractFuzzyConfig(data map[string]any, fz *FuzzyConfig) {
	if val, ok := utils.ExtractFloat64(data, "threshold"); ok {
		fz.Threshold = val
	}
	if val, ok := utils.ExtractFloat64(data, "name_weight"); ok {
		fz.NameWeight = val
	}
	if val, ok := utils.ExtractFloat64(data, "alias_weight"); ok {
		fz.AliasWeight = val
	}
	if val, ok := utils.ExtractInt64(data, "max_query_len"); ok {
		fz.MaxQueryLen = val
	}
}

// extractHistoryConfig extracts history maintenance configuration from a map
func extractHistoryConfig(data map[string]any, hist *HistoryConfig) {
	if val, ok := utils.ExtractInt64(data, "max_age_days"); ok {
		hist.MaxAgeDays = val
	}
	if val, ok := utils.ExtractInt64(data, "min_count_to_keep"); ok {
		hist.MinCountToKeep = val
	}
}

// extractStoreConfig extracts persistence configuration from a map
func extractStoreConfig(data map[string]any, store *StoreConfig) {
	if val, ok := utils.ExtractString(data, "backend"); ok {
		store.Backend = val
	}
	if val, ok := utils.ExtractString(data, "dir"); ok {
		store.Dir = val
	}
}

// extractCliConfig extracts CLI config from a map
func extractCliConfig(data map[string]any, cli *CliConfig) {
	if val, ok := utils.ExtractInt64(data, "default_limit"); ok {
		cli.DefaultLimit = val
	}
	if val, ok := utils.ExtractInt64(data, "default_max_len"); ok {
		cli.DefaultMaxLen = val
	}
	if val, ok := utils.ExtractBool(data, "default_no_filter"); ok {
		cli.DefaultNoFilter = val
	}
}

// RebuildConfigFile force creates a new config.toml at default
func RebuildConfigFile() error {
	defaultPath, err := GetDefaultConfigPath()
	if err != nil {
		return err
	}
	configDir := filepath.Dir(defaultPath)
	if err := utils.EnsureDir(configDir); err != nil {
		return err
	}
	config := DefaultConfig()
	return utils.SaveTOMLFile(config, defaultPath)
}

// GetActiveConfigPath returns the absolute path of loaded config file
func GetActiveConfigPath(configPath string) string {
	if configPath == "" {
		if defaultPath, err := GetDefaultConfigPath(); err == nil {
			return defaultPath
		}
		return "unknown"
	}
	return utils.GetAbsolutePath(configPath)
}

// SaveConfig saves into a TOML file
func SaveConfig(config *Config, configPath string) error {
	return utils.SaveTOMLFile(config, configPath)
}

// Update changes the ranking config values and saves to file
func (c *Config) Update(configPath string, maxSuggestions *int, historyWeight, threshold *float64) error {
	if maxSuggestions != nil {
		c.Suggest.MaxSuggestions = *maxSuggestions
	}
	if historyWeight != nil {
		c.Suggest.HistoryWeight = *historyWeight
	}
	if threshold != nil {
		c.Fuzzy.Threshold = *threshold
	}
	return SaveConfig(c, configPath)
}
