package stdlib_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/lumen-lang/lumen/internal/evaluator"
	"github.com/lumen-lang/lumen/internal/stdlib"
)

func TestDatetimeNowIsCurrentUnixTime(t *testing.T) {
	m := stdlib.Datetime()
	before := time.Now().Unix()
	result := callBuiltin(t, m, "now")
	after := time.Now().Unix()

	n, ok := result.(evaluator.Integer)
	require.True(t, ok)
	require.GreaterOrEqual(t, n.Value, before)
	require.LessOrEqual(t, n.Value, after)
}

func TestDatetimeFormat(t *testing.T) {
	m := stdlib.Datetime()
	ts := time.Date(2026, time.August, 6, 12, 0, 0, 0, time.UTC).Unix()

	result := callBuiltin(t, m, "format", evaluator.Integer{Value: ts}, evaluator.String{Value: "2006-01-02"})
	require.Equal(t, evaluator.String{Value: "2026-08-06"}, result)
}

func TestDatetimeHumanDurationNonEmpty(t *testing.T) {
	m := stdlib.Datetime()
	result := callBuiltin(t, m, "humanDuration", evaluator.Integer{Value: 3600})
	s, ok := result.(evaluator.String)
	require.True(t, ok)
	require.NotEmpty(t, s.Value)
}

func TestDatetimeFormatRejectsNonIntegerTimestamp(t *testing.T) {
	m := stdlib.Datetime()
	result := callBuiltin(t, m, "format", evaluator.String{Value: "nope"}, evaluator.String{Value: "2006-01-02"})
	require.True(t, evaluator.IsError(result))
}
