package stdlib_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lumen-lang/lumen/internal/evaluator"
	"github.com/lumen-lang/lumen/internal/stdlib"
)

func openTestDB(t *testing.T, m stdlib.Module) evaluator.Value {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.db")
	result := callBuiltin(t, m, "open", evaluator.String{Value: path})
	return requireOk(t, result)
}

func TestSQLiteOpenExecQueryRoundTrip(t *testing.T) {
	m := stdlib.SQLite()
	handle := openTestDB(t, m)

	createResult := callBuiltin(t, m, "exec", handle, evaluator.String{Value: "CREATE TABLE animals (name TEXT, legs INTEGER)"})
	requireOk(t, createResult)

	insertResult := callBuiltin(t, m, "exec", handle, evaluator.String{Value: "INSERT INTO animals (name, legs) VALUES ('dog', 4)"})
	requireOk(t, insertResult)

	queryResult := callBuiltin(t, m, "query", handle, evaluator.String{Value: "SELECT name, legs FROM animals"})
	rows := requireOk(t, queryResult)
	arr, ok := rows.(*evaluator.Array)
	require.True(t, ok)
	require.Len(t, arr.Elements, 1)

	row, ok := arr.Elements[0].(*evaluator.Hash)
	require.True(t, ok)

	nameKey, ok := evaluator.HashKey(evaluator.String{Value: "name"})
	require.True(t, ok)
	namePair, ok := row.Pairs[nameKey]
	require.True(t, ok)
	require.Equal(t, evaluator.String{Value: "dog"}, namePair.Value)

	legsKey, ok := evaluator.HashKey(evaluator.String{Value: "legs"})
	require.True(t, ok)
	legsPair, ok := row.Pairs[legsKey]
	require.True(t, ok)
	require.Equal(t, evaluator.Integer{Value: 4}, legsPair.Value)
}

func TestSQLiteQueryOnEmptyTableReturnsEmptyArray(t *testing.T) {
	m := stdlib.SQLite()
	handle := openTestDB(t, m)

	requireOk(t, callBuiltin(t, m, "exec", handle, evaluator.String{Value: "CREATE TABLE empty (x INTEGER)"}))

	result := callBuiltin(t, m, "query", handle, evaluator.String{Value: "SELECT * FROM empty"})
	rows := requireOk(t, result)
	arr, ok := rows.(*evaluator.Array)
	require.True(t, ok)
	require.Empty(t, arr.Elements)
}

func TestSQLiteExecInvalidSQLReturnsErr(t *testing.T) {
	m := stdlib.SQLite()
	handle := openTestDB(t, m)

	result := callBuiltin(t, m, "exec", handle, evaluator.String{Value: "NOT VALID SQL"})
	requireErr(t, result)
}

func TestSQLiteExecRequiresHandleFromOpen(t *testing.T) {
	m := stdlib.SQLite()
	result := callBuiltin(t, m, "exec", evaluator.String{Value: "not a handle"}, evaluator.String{Value: "SELECT 1"})
	requireErr(t, result)
}
