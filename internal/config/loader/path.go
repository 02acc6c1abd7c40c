package loader

import (
	"os"
	"path/filepath"
)

// EnvSettingsPath names the environment variable that overrides the
// settings file location.
const EnvSettingsPath = "QSYNTH_SETTINGS"

// DefaultFileName is the settings file name inside the config directory.
const DefaultFileName = "qsynth.toml"

// SettingsPath resolves the settings file: $QSYNTH_SETTINGS, then
// $XDG_CONFIG_HOME/qsynth/qsynth.toml, then ~/.config/qsynth/qsynth.toml.
func SettingsPath() string {
	return GetEnvOrDefault(EnvSettingsPath, filepath.Join(UserConfigDir(), DefaultFileName))
}

// UserConfigDir returns the per-user qsynth configuration directory.
func UserConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "qsynth")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "qsynth")
}

// GetEnvOrDefault returns the environment variable value or a default.
func GetEnvOrDefault(key, defaultValue string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultValue
}
