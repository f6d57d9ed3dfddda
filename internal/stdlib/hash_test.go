package stdlib_test

import (
	"crypto/md5"
	"crypto/sha256"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lumen-lang/lumen/internal/evaluator"
	"github.com/lumen-lang/lumen/internal/stdlib"
)

func TestHashSha256MatchesStdlib(t *testing.T) {
	m := stdlib.Hash()
	sum := sha256.Sum256([]byte("lumen"))
	want := hex.EncodeToString(sum[:])

	result := callBuiltin(t, m, "sha256", evaluator.String{Value: "lumen"})
	require.Equal(t, evaluator.String{Value: want}, result)
}

func TestHashMd5MatchesStdlib(t *testing.T) {
	m := stdlib.Hash()
	sum := md5.Sum([]byte("lumen"))
	want := hex.EncodeToString(sum[:])

	result := callBuiltin(t, m, "md5", evaluator.String{Value: "lumen"})
	require.Equal(t, evaluator.String{Value: want}, result)
}

func TestHashFnv32Deterministic(t *testing.T) {
	m := stdlib.Hash()
	first := callBuiltin(t, m, "fnv32", evaluator.String{Value: "lumen"})
	second := callBuiltin(t, m, "fnv32", evaluator.String{Value: "lumen"})
	require.Equal(t, first, second)

	_, ok := first.(evaluator.Integer)
	require.True(t, ok)
}

func TestHashUUIDLooksLikeUUID(t *testing.T) {
	m := stdlib.Hash()
	result := callBuiltin(t, m, "uuid")
	s, ok := result.(evaluator.String)
	require.True(t, ok)
	require.Len(t, s.Value, 36)
	require.Equal(t, byte('-'), s.Value[8])
	require.Equal(t, byte('-'), s.Value[13])
	require.Equal(t, byte('-'), s.Value[18])
	require.Equal(t, byte('-'), s.Value[23])
}

func TestHashUUIDIsRandom(t *testing.T) {
	m := stdlib.Hash()
	first := callBuiltin(t, m, "uuid")
	second := callBuiltin(t, m, "uuid")
	require.NotEqual(t, first, second)
}
