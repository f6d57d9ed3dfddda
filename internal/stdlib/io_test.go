package stdlib_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lumen-lang/lumen/internal/evaluator"
	"github.com/lumen-lang/lumen/internal/stdlib"
)

func TestIOPrintWritesToEvaluatorOutput(t *testing.T) {
	m := stdlib.IO()
	var buf bytes.Buffer
	ev := evaluator.New(&buf)

	printFn := m.Values["print"].(*evaluator.Builtin)
	printFn.Fn(ev, []evaluator.Value{evaluator.String{Value: "hi"}})
	require.Equal(t, "hi", buf.String())
}

func TestIOPrintlnAppendsNewline(t *testing.T) {
	m := stdlib.IO()
	var buf bytes.Buffer
	ev := evaluator.New(&buf)

	printlnFn := m.Values["println"].(*evaluator.Builtin)
	printlnFn.Fn(ev, []evaluator.Value{evaluator.Integer{Value: 42}})
	require.Equal(t, "42\n", buf.String())
}
