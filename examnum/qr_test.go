package examnum

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteQRCode(t *testing.T) {
	path := filepath.Join(t.TempDir(), "AB0042.png")
	require.NoError(t, WriteQRCode(path, "AB0042"))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}
