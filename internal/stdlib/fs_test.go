package stdlib_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lumen-lang/lumen/internal/evaluator"
	"github.com/lumen-lang/lumen/internal/stdlib"
)

func requireOk(t *testing.T, v evaluator.Value) evaluator.Value {
	t.Helper()
	sum, ok := v.(*evaluator.SumInstance)
	require.True(t, ok, "expected a Result, got %T", v)
	require.Equal(t, "Ok", sum.VariantName, "expected Ok, got Err(%v)", sum.Payload)
	require.Len(t, sum.Payload, 1)
	return sum.Payload[0]
}

func requireErr(t *testing.T, v evaluator.Value) {
	t.Helper()
	sum, ok := v.(*evaluator.SumInstance)
	require.True(t, ok, "expected a Result, got %T", v)
	require.Equal(t, "Err", sum.VariantName)
}

func TestFSWriteThenReadFile(t *testing.T) {
	m := stdlib.FS()
	path := filepath.Join(t.TempDir(), "hello.txt")

	writeResult := callBuiltin(t, m, "writeFile", evaluator.String{Value: path}, evaluator.String{Value: "hi there"})
	requireOk(t, writeResult)

	readResult := callBuiltin(t, m, "readFile", evaluator.String{Value: path})
	content := requireOk(t, readResult)
	require.Equal(t, evaluator.String{Value: "hi there"}, content)
}

func TestFSReadFileMissingReturnsErr(t *testing.T) {
	m := stdlib.FS()
	result := callBuiltin(t, m, "readFile", evaluator.String{Value: filepath.Join(t.TempDir(), "missing.txt")})
	requireErr(t, result)
}

func TestFSExists(t *testing.T) {
	m := stdlib.FS()
	dir := t.TempDir()
	path := filepath.Join(dir, "present.txt")
	require.NoError(t, os.WriteFile(path, []byte("x"), 0644))

	require.Equal(t, evaluator.Boolean{Value: true}, callBuiltin(t, m, "exists", evaluator.String{Value: path}))
	require.Equal(t, evaluator.Boolean{Value: false}, callBuiltin(t, m, "exists", evaluator.String{Value: filepath.Join(dir, "absent.txt")}))
}

func TestFSListDir(t *testing.T) {
	m := stdlib.FS()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.txt"), []byte("a"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "b.txt"), []byte("b"), 0644))

	result := callBuiltin(t, m, "listDir", evaluator.String{Value: dir})
	names := requireOk(t, result)
	arr, ok := names.(*evaluator.Array)
	require.True(t, ok)
	require.Len(t, arr.Elements, 2)
}

func TestFSHumanSize(t *testing.T) {
	m := stdlib.FS()
	result := callBuiltin(t, m, "humanSize", evaluator.Integer{Value: 1024})
	str, ok := result.(evaluator.String)
	require.True(t, ok)
	require.NotEmpty(t, str.Value)
}
