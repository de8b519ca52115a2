package config

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"

	"github.com/safing/xerand/log"
	"github.com/safing/xerand/utils"
)

// LoadConfig reads a JSON config file and applies it as the user defined config.
func LoadConfig(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	newValues, err := JSONToMap(data)
	if err != nil {
		return fmt.Errorf("config: failed to parse %s: %w", path, err)
	}

	log.Debugf("config: loaded %d values from %s", len(newValues), path)
	return setConfig(newValues)
}

// SaveConfig writes all values set in the user defined config to a JSON file.
func SaveConfig(path string) error {
	activeValues := make(map[string]interface{})
	optionsLock.RLock()
	for key, option := range options {
		option.Lock()
		if option.activeValue != nil {
			activeValues[key] = option.activeValue.getData(option)
		}
		option.Unlock()
	}
	optionsLock.RUnlock()

	data, err := MapToJSON(activeValues)
	if err != nil {
		log.Errorf("config: failed to save config: %s", err)
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o0700); err != nil {
		return err
	}
	return utils.WriteFileAtomic(path, data, 0o0600)
}

// JSONToMap parses and flattens a hierarchical json object. Nested keys are joined with a slash.
func JSONToMap(jsonData []byte) (map[string]interface{}, error) {
	if !gjson.ValidBytes(jsonData) {
		return nil, ErrInvalidJSON
	}
	parsed := gjson.ParseBytes(jsonData)
	if !parsed.IsObject() {
		return nil, ErrInvalidJSON
	}

	loaded := make(map[string]interface{})
	flatten(loaded, parsed, "")
	return loaded, nil
}

func flatten(rootMap map[string]interface{}, subMap gjson.Result, subKey string) {
	subMap.ForEach(func(key, value gjson.Result) bool {
		// get next level key
		subbedKey := key.String()
		if subKey != "" {
			subbedKey = subKey + "/" + subbedKey
		}

		if value.IsObject() {
			flatten(rootMap, value, subbedKey)
		} else {
			rootMap[subbedKey] = value.Value()
		}
		return true
	})
}

// MapToJSON expands a flattened map and returns it as indented json.
func MapToJSON(values map[string]interface{}) ([]byte, error) {
	keys := make([]string, 0, len(values))
	for key := range values {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	data := []byte("{}")
	for _, key := range keys {
		var err error
		data, err = sjson.SetBytes(data, toPath(key), values[key])
		if err != nil {
			return nil, err
		}
	}

	var out bytes.Buffer
	if err := json.Indent(&out, data, "", "  "); err != nil {
		return nil, err
	}
	return out.Bytes(), nil
}

// toPath converts a slash separated key to a sjson path.
func toPath(key string) string {
	parts := strings.Split(key, "/")
	for i, part := range parts {
		part = strings.ReplaceAll(part, ".", `\.`)
		part = strings.ReplaceAll(part, "*", `\*`)
		parts[i] = strings.ReplaceAll(part, "?", `\?`)
	}
	return strings.Join(parts, ".")
}
