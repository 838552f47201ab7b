package examnum

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadCodes(t *testing.T) {
	path := filepath.Join(t.TempDir(), "existing.txt")
	require.NoError(t, os.WriteFile(path, []byte("123456\nAB0042\n99\n"), 0o644))

	codes, err := ReadCodes(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"123456", "AB0042", "99"}, codes)
}

func TestReadCodesMissingFile(t *testing.T) {
	_, err := ReadCodes(filepath.Join(t.TempDir(), "nope.txt"))
	assert.Error(t, err)
}

func TestReadCodesEmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.txt")
	require.NoError(t, os.WriteFile(path, nil, 0o644))

	codes, err := ReadCodes(path)
	require.NoError(t, err)
	assert.Empty(t, codes)
}
