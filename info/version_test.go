package info

import (
	"strings"
	"testing"
)

func TestFullVersion(t *testing.T) {
	Set("xerand", "1.2.3", "GPLv3")

	full := FullVersion()
	if !strings.HasPrefix(full, "xerand 1.2.3") {
		t.Errorf("unexpected version header: %s", full)
	}
	if !strings.Contains(full, "Licensed under the GPLv3 license.") {
		t.Errorf("license missing: %s", full)
	}
	if GetInfo().Commit == "" {
		t.Error("commit must have a placeholder")
	}
}
