package projectconfig_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lumen-lang/lumen/internal/projectconfig"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lumen.toml")
	m, err := projectconfig.Load(path)
	require.NoError(t, err)
	require.Equal(t, "main", m.Entry)
	require.Equal(t, ".", m.SourceRoot)
	require.Empty(t, m.NativeAllow)
}

func TestLoadParsesManifest(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lumen.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
entry = "app"
source_root = "src"
native_allow = ["fs", "json"]
`), 0644))

	m, err := projectconfig.Load(path)
	require.NoError(t, err)
	require.Equal(t, "app", m.Entry)
	require.Equal(t, "src", m.SourceRoot)
	require.Equal(t, []string{"fs", "json"}, m.NativeAllow)
}

func TestLoadFillsMissingFieldsWithDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lumen.toml")
	require.NoError(t, os.WriteFile(path, []byte(`native_allow = ["math"]`), 0644))

	m, err := projectconfig.Load(path)
	require.NoError(t, err)
	require.Equal(t, "main", m.Entry)
	require.Equal(t, ".", m.SourceRoot)
}

func TestLoadRejectsMalformedTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lumen.toml")
	require.NoError(t, os.WriteFile(path, []byte("entry = "), 0644))

	_, err := projectconfig.Load(path)
	require.Error(t, err)
}

func TestManifestAllowsEmptyListPermitsEverything(t *testing.T) {
	m := projectconfig.Manifest{}
	require.True(t, m.Allows("fs"))
	require.True(t, m.Allows("sqlite"))
}

func TestManifestAllowsRestrictsToList(t *testing.T) {
	m := projectconfig.Manifest{NativeAllow: []string{"fs", "json"}}
	require.True(t, m.Allows("fs"))
	require.True(t, m.Allows("json"))
	require.False(t, m.Allows("net.http"))
}
