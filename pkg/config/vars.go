package config

import (
	"path/filepath"
)

// AppName is used in generating file system paths.
var AppName = "survtab"

// ConfigDir returns the directory path for configuration files.
// Returns ~/.config/survtab by default.
func ConfigDir(homeDir string) string {
	return filepath.Join(homeDir, ".config", AppName)
}

// LogDir returns the directory path for log files.
// Returns ~/.local/share/survtab/logs by default.
func LogDir(homeDir string) string {
	return filepath.Join(homeDir, ".local", "share", AppName, "logs")
}

// ConfigFilePath returns the full path to the config.yaml file.
// Returns ~/.config/survtab/config.yaml by default.
func ConfigFilePath(homeDir string) string {
	return filepath.Join(ConfigDir(homeDir), "config.yaml")
}

// TranslateFilePath returns the full path to the column translation
// table. Returns ~/.config/survtab/translate.yaml by default.
func TranslateFilePath(homeDir string) string {
	return filepath.Join(ConfigDir(homeDir), "translate.yaml")
}
