package ioharvest

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadTranslation(t *testing.T) {
	path := filepath.Join(t.TempDir(), "translate.yaml")
	data := `catch:
  ชื่อวิทยาศาสตร์: scientific_name
  น้ำหนัก: catch_weight
effort:
  สถานี: station
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0644))

	trn, err := LoadTranslation(path)
	require.NoError(t, err)

	assert.Equal(t, "scientific_name", trn.Catch["ชื่อวิทยาศาสตร์"])
	assert.Equal(t, "catch_weight", trn.Catch["น้ำหนัก"])
	assert.Equal(t, "station", trn.Effort["สถานี"])
}

func TestLoadTranslationMissingFile(t *testing.T) {
	_, err := LoadTranslation(filepath.Join(t.TempDir(), "no-such.yaml"))
	assert.Error(t, err)
}

func TestLoadTranslationBadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "translate.yaml")
	require.NoError(t, os.WriteFile(path, []byte("catch: [not a map"), 0644))

	_, err := LoadTranslation(path)
	assert.Error(t, err)
}

func TestNormalize(t *testing.T) {
	table := map[string]string{
		"ชื่อวิทยาศาสตร์": "scientific_name",
		"Sci. Name":       "scientific_name",
	}

	tests := []struct {
		msg, header, want string
	}{
		{"translated", "ชื่อวิทยาศาสตร์", "scientific_name"},
		{"translated alias", "Sci. Name", "scientific_name"},
		{"english fallback", "Scientific Name", "scientific_name"},
		{"hyphens", "catch-weight", "catch_weight"},
		{"padded", "  Station ", "station"},
	}

	for _, test := range tests {
		assert.Equal(t, test.want, normalize(table, test.header), test.msg)
	}
}
