// Package paths resolves configuration, session data and mesh library
// directory locations.
package paths

import (
	"os"
	"path/filepath"
	"runtime"
)

// CWD-relative directory names used when nothing else is configured.
const (
	DefaultConfigDirName = ".stemplan"
	DefaultDataDirName   = ".stemplan-db"
	DefaultMeshDirName   = "meshes"
)

// Environment variable names for directory overrides.
const (
	EnvConfigDir = "STEMPLAN_CONFIG_DIR"
	EnvDataDir   = "STEMPLAN_DATA_DIR"
	EnvMeshDir   = "STEMPLAN_MESH_DIR"
)

// platformDir holds platform-detection functions that can be overridden in tests.
var platformDir = struct {
	homeDir       func() (string, error)
	userConfigDir func() (string, error)
}{
	homeDir:       os.UserHomeDir,
	userConfigDir: os.UserConfigDir,
}

// DefaultConfigDir returns the platform-specific default configuration directory.
//
// Linux:   $XDG_CONFIG_HOME/stemplan (fallback ~/.config/stemplan)
// macOS:   ~/Library/Application Support/stemplan
// Windows: %APPDATA%/stemplan
func DefaultConfigDir() (string, error) {
	switch runtime.GOOS {
	case "linux":
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			return filepath.Join(xdg, "stemplan"), nil
		}
		home, err := platformDir.homeDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(home, ".config", "stemplan"), nil
	default:
		// macOS and Windows use os.UserConfigDir which returns
		// ~/Library/Application Support on macOS and %APPDATA% on Windows.
		dir, err := platformDir.userConfigDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(dir, "stemplan"), nil
	}
}

// DefaultDataDir returns the platform-specific default data directory.
//
// Linux:   $XDG_DATA_HOME/stemplan (fallback ~/.local/share/stemplan)
// macOS:   ~/Library/Application Support/stemplan
// Windows: %APPDATA%/stemplan
func DefaultDataDir() (string, error) {
	switch runtime.GOOS {
	case "linux":
		if xdg := os.Getenv("XDG_DATA_HOME"); xdg != "" {
			return filepath.Join(xdg, "stemplan"), nil
		}
		home, err := platformDir.homeDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(home, ".local", "share", "stemplan"), nil
	default:
		// macOS and Windows: same as config dir.
		dir, err := platformDir.userConfigDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(dir, "stemplan"), nil
	}
}

// ResolveConfigDir returns the configuration directory following the precedence
// chain: flag > STEMPLAN_CONFIG_DIR env > DefaultConfigDir().
func ResolveConfigDir(flag string) (string, error) {
	if flag != "" {
		return filepath.Abs(flag)
	}
	if env := os.Getenv(EnvConfigDir); env != "" {
		return filepath.Abs(env)
	}
	return DefaultConfigDir()
}

// ResolveDataDir returns the session database directory following the
// precedence chain: flag > config value > STEMPLAN_DATA_DIR env >
// $(CWD)/.stemplan-db.
//
// The CWD-relative default keeps throwaway planning sessions next to
// the case data being worked on.
func ResolveDataDir(flag, configValue string) (string, error) {
	if flag != "" {
		return filepath.Abs(flag)
	}
	if configValue != "" {
		return filepath.Abs(configValue)
	}
	if env := os.Getenv(EnvDataDir); env != "" {
		return filepath.Abs(env)
	}
	cwd, err := os.Getwd()
	if err != nil {
		return "", err
	}
	return filepath.Join(cwd, DefaultDataDirName), nil
}

// ResolveMeshDir returns the mesh library directory following the
// precedence chain: flag > config value > STEMPLAN_MESH_DIR env >
// DefaultDataDir()/meshes.
func ResolveMeshDir(flag, configValue string) (string, error) {
	if flag != "" {
		return filepath.Abs(flag)
	}
	if configValue != "" {
		return filepath.Abs(configValue)
	}
	if env := os.Getenv(EnvMeshDir); env != "" {
		return filepath.Abs(env)
	}
	data, err := DefaultDataDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(data, DefaultMeshDirName), nil
}
