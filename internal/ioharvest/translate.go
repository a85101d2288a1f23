package ioharvest

import (
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Translation maps workbook column headers to normalized column names,
// one lookup table per sheet. Workbooks mix Thai and English headers;
// the table is user-editable configuration, not code.
type Translation struct {
	Catch  map[string]string `yaml:"catch"`
	Effort map[string]string `yaml:"effort"`
}

// LoadTranslation reads the column translation table from a YAML file.
func LoadTranslation(path string) (*Translation, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, TranslateError(path, err)
	}

	var res Translation
	if err := yaml.Unmarshal(data, &res); err != nil {
		return nil, TranslateError(path, err)
	}
	return &res, nil
}

// normalize translates one header through the lookup table. Headers
// without a translation fall back to a lowercased snake_case form, so
// English headers work without table entries.
func normalize(table map[string]string, header string) string {
	header = strings.TrimSpace(header)
	if name, ok := table[header]; ok {
		return name
	}
	name := strings.ToLower(header)
	name = strings.ReplaceAll(name, " ", "_")
	name = strings.ReplaceAll(name, "-", "_")
	return name
}
