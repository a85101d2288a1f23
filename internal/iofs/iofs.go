package iofs

import (
	_ "embed"
	"os"

	"github.com/marinedata/survtab/pkg/config"
)

//go:embed config.yaml
var ConfigYAML string

//go:embed translate.yaml
var TranslateYAML string

func EnsureDirs(homeDir string) error {
	dirs := []string{
		config.ConfigDir(homeDir),
		config.LogDir(homeDir),
	}
	for _, v := range dirs {
		if err := touchDir(v); err != nil {
			return err
		}
	}
	return nil
}

func touchDir(dir string) error {
	info, err := os.Stat(dir)
	if err == nil && info.IsDir() {
		return nil
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return CreateDirError(dir, err)
	}

	return nil
}

func EnsureConfigFile(homeDir string) error {
	configPath := config.ConfigFilePath(homeDir)

	if _, err := os.Stat(configPath); err == nil {
		return nil
	}

	if err := os.WriteFile(configPath, []byte(ConfigYAML), 0644); err != nil {
		return CopyFileError(configPath, err)
	}

	return nil
}

// EnsureTranslateFile writes the default column translation table on
// the first run. An existing file is never touched, so user edits
// survive.
func EnsureTranslateFile(homeDir string) error {
	translatePath := config.TranslateFilePath(homeDir)

	if _, err := os.Stat(translatePath); err == nil {
		return nil
	}

	if err := os.WriteFile(translatePath, []byte(TranslateYAML), 0644); err != nil {
		return CopyFileError(translatePath, err)
	}

	return nil
}
