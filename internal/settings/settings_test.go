package settings

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpen_MissingFileIsEmpty(t *testing.T) {
	s, err := Open(filepath.Join(t.TempDir(), "settings.yaml"))
	require.NoError(t, err)
	assert.Empty(t, s.GrantedDir())
}

func TestSetGrantedDir_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "settings.yaml")

	s, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, s.SetGrantedDir("/mnt/share/DriverVans"))

	reopened, err := Open(path)
	require.NoError(t, err)
	assert.Equal(t, "/mnt/share/DriverVans", reopened.GrantedDir())
}

func TestSetGrantedDir_Overwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")

	s, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, s.SetGrantedDir("/old"))
	require.NoError(t, s.SetGrantedDir("/new"))

	reopened, err := Open(path)
	require.NoError(t, err)
	assert.Equal(t, "/new", reopened.GrantedDir())
}

func TestOpen_MalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")
	require.NoError(t, os.WriteFile(path, []byte("import_dir: [unclosed"), 0o644))

	_, err := Open(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse")
}
