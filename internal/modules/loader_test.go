package modules_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lumen-lang/lumen/internal/modules"
)

func writeModule(t *testing.T, dir, relPath, src string) {
	t.Helper()
	full := filepath.Join(dir, relPath)
	require.NoError(t, os.MkdirAll(filepath.Dir(full), 0755))
	require.NoError(t, os.WriteFile(full, []byte(src), 0644))
}

func TestLoaderLoadsAndCachesSourceModule(t *testing.T) {
	dir := t.TempDir()
	writeModule(t, dir, "greet.lu", `module greet exposing (hello);
let hello = (n) => n + 1;
let secret = 99;`)

	var out bytes.Buffer
	loader := modules.NewLoader(dir, &out)

	mod, err := loader.Load("greet")
	require.NoError(t, err)
	require.Equal(t, "greet", mod.Name)

	again, err := loader.Load("greet")
	require.NoError(t, err)
	require.Same(t, mod, again, "second Load must return the cached module")
}

func TestLoaderDetectsImportCycles(t *testing.T) {
	dir := t.TempDir()
	writeModule(t, dir, "a.lu", `use b;
let x = 1;`)
	writeModule(t, dir, "b.lu", `use a;
let y = 2;`)

	var out bytes.Buffer
	loader := modules.NewLoader(dir, &out)

	_, err := loader.Load("a")
	require.Error(t, err)
	require.Contains(t, err.Error(), "circular dependency")
}

func TestLoaderExposingGatesUnexportedNames(t *testing.T) {
	dir := t.TempDir()
	writeModule(t, dir, "lib.lu", `module lib exposing (pub);
let pub = 1;
let priv = 2;`)
	writeModule(t, dir, "main.lu", `use lib exposing (priv);`)

	var out bytes.Buffer
	loader := modules.NewLoader(dir, &out)

	_, err := loader.Load("main")
	require.Error(t, err)
	require.Contains(t, err.Error(), "priv")
}

func TestLoaderExposingBindsExportedNames(t *testing.T) {
	dir := t.TempDir()
	writeModule(t, dir, "lib.lu", `module lib exposing (pub);
let pub = 41;`)
	writeModule(t, dir, "main.lu", `use lib exposing (pub);
writeln(pub + 1);`)

	var out bytes.Buffer
	loader := modules.NewLoader(dir, &out)

	_, err := loader.Load("main")
	require.NoError(t, err)
	require.Equal(t, "42\n", out.String())
}

func TestLoaderResolvesNativeModulesWithoutTouchingDisk(t *testing.T) {
	dir := t.TempDir()
	writeModule(t, dir, "main.lu", `use math as m;
writeln(m.sqrt(16.0));`)

	var out bytes.Buffer
	loader := modules.NewLoader(dir, &out)

	_, err := loader.Load("main")
	require.NoError(t, err)
	require.Equal(t, "4\n", out.String())
}

func TestLoaderNativeAllowListRejectsDisallowedModule(t *testing.T) {
	dir := t.TempDir()
	writeModule(t, dir, "main.lu", `use math as m;`)

	var out bytes.Buffer
	loader := modules.NewLoader(dir, &out)
	loader.NativeAllow = func(name string) bool { return name != "math" }

	_, err := loader.Load("main")
	require.Error(t, err)
	require.Contains(t, err.Error(), "native_allow")
}
