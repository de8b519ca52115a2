package utils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteFileAtomic(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "data")

	require.NoError(t, WriteFileAtomic(path, []byte("first"), 0o0600))
	require.NoError(t, WriteFileAtomic(path, []byte("second"), 0o0600))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "second", string(data))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1)

	assert.Error(t, WriteFileAtomic(filepath.Join(dir, "missing", "data"), nil, 0o0600))
}
