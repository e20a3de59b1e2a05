package download_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MacroPower/chartform/pkg/download"
)

func TestDirDownload(t *testing.T) {
	t.Parallel()

	root := filepath.Join(t.TempDir(), "nested", "out")
	d := download.NewDir(root)

	out, err := d.Download("Sales.png", []byte("data"))
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(root, "Sales.png"), out)

	got, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, "data", string(got))
}

func TestDirDownloadStaysInDir(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	d := download.NewDir(root)

	out, err := d.Download("../a/b.jpg", []byte("x"))
	require.NoError(t, err)
	assert.Equal(t, root, filepath.Dir(out))
	assert.Equal(t, ".._a_b.jpg", filepath.Base(out))

	_, err = d.Download("  ", []byte("x"))
	require.ErrorIs(t, err, download.ErrEmptyName)
}

func TestNewDirDefault(t *testing.T) {
	t.Parallel()

	assert.Equal(t, ".", download.NewDir("").Path())
}
