package utils

import (
	"os"
	"path/filepath"
	"runtime"

	"github.com/charmbracelet/log"
)

// PathResolver provides robust path resolution for the shelfserve binary
type PathResolver struct {
	executableDir string
	configDir     string
}

// NewPathResolver creates a new path resolver that determines the executable location
func NewPathResolver() (*PathResolver, error) {
	execPath, err := os.Executable()
	if err != nil {
		return nil, err
	}

	// Resolve any symlinks to get the actual binary location
	execPath, err = filepath.EvalSymlinks(execPath)
	if err != nil {
		return nil, err
	}

	execDir := filepath.Dir(execPath)

	homeDir, err := os.UserHomeDir()
	if err != nil {
		log.Warnf("Could not determine home directory: %v", err)
		homeDir = os.TempDir()
	}

	pr := &PathResolver{
		executableDir: execDir,
		configDir:     getConfigDir(homeDir),
	}

	log.Debugf("PathResolver initialized: exec=%s, execDir=%s, configDir=%s",
		execPath, execDir, pr.configDir)

	return pr, nil
}

// getConfigDir returns the appropriate config directory for the platform
func getConfigDir(homeDir string) string {
	switch runtime.GOOS {
	case "darwin":
		return filepath.Join(homeDir, ".config", "shelfserve")
	case "linux":
		if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
			return filepath.Join(configHome, "shelfserve")
		}
		return filepath.Join(homeDir, ".config", "shelfserve")
	case "windows":
		if appData := os.Getenv("APPDATA"); appData != "" {
			return filepath.Join(appData, "shelfserve")
		}
		return filepath.Join(homeDir, "AppData", "Roaming", "shelfserve")
	default:
		return filepath.Join(homeDir, ".shelfserve")
	}
}

// GetStoreDir resolves the directory holding the persisted history and
// learned-product tables. Preference order:
// 1. User-specified path (if given)
// 2. [config dir]/store
// 3. A temp dir as last resort
func (pr *PathResolver) GetStoreDir(userSpecifiedPath string) (string, error) {
	if userSpecifiedPath != "" {
		path := userSpecifiedPath
		if !filepath.IsAbs(path) {
			path = filepath.Join(pr.executableDir, path)
		}
		if err := EnsureDir(path); err != nil {
			return "", err
		}
		return path, nil
	}

	storeDir := filepath.Join(pr.configDir, "store")
	if result := CheckDirStatus(storeDir); result.Writable {
		return storeDir, nil
	}

	fallback := filepath.Join(os.TempDir(), "shelfserve", "store")
	if err := EnsureDir(fallback); err != nil {
		return "", err
	}
	log.Warnf("Using temporary store location: %s", fallback)
	return fallback, nil
}

// GetConfigDir returns the config directory
func (pr *PathResolver) GetConfigDir() string {
	return pr.configDir
}
