package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJSONMapConversion(t *testing.T) {
	jsonData := `{
  "a": "b",
  "c": {
    "d": "e",
    "f": "g",
    "h": {
      "i": "j",
      "k": "l",
      "m": {
        "n": "o"
      }
    }
  },
  "p": "q"
}`

	mapData := map[string]interface{}{
		"a":       "b",
		"p":       "q",
		"c/d":     "e",
		"c/f":     "g",
		"c/h/i":   "j",
		"c/h/k":   "l",
		"c/h/m/n": "o",
	}

	m, err := JSONToMap([]byte(jsonData))
	require.NoError(t, err)
	assert.Equal(t, mapData, m)

	j, err := MapToJSON(mapData)
	require.NoError(t, err)
	assert.JSONEq(t, jsonData, string(j))

	_, err = JSONToMap([]byte(`{"a": `))
	assert.ErrorIs(t, err, ErrInvalidJSON)
	_, err = JSONToMap([]byte(`["a"]`))
	assert.ErrorIs(t, err, ErrInvalidJSON)
}

func TestLoadAndSaveConfig(t *testing.T) {
	registerTestOptions(t)
	dir := t.TempDir()

	path := filepath.Join(dir, "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"zoo": {"monkey": "7", "elephant": 8}}`), 0o0600))
	require.NoError(t, LoadConfig(path))

	assert.Equal(t, "7", GetAsString("zoo/monkey", "")())
	assert.Equal(t, int64(8), GetAsInt("zoo/elephant", 0)())

	savePath := filepath.Join(dir, "saved", "config.json")
	require.NoError(t, SaveConfig(savePath))
	saved, err := os.ReadFile(savePath)
	require.NoError(t, err)
	assert.JSONEq(t, `{"zoo": {"elephant": 8, "monkey": "7"}}`, string(saved))

	assert.Error(t, LoadConfig(filepath.Join(dir, "missing.json")))
}
