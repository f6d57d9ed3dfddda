package repl_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lumen-lang/lumen/internal/repl"
)

func TestREPLPersistsBindingsAcrossLines(t *testing.T) {
	var out bytes.Buffer
	r := repl.New(&out, 0)

	in := strings.NewReader("let mut x = 1;\nx = x + 1;\nwriteln(x);\n")
	var errOut bytes.Buffer
	r.Run(in, &errOut)

	require.Equal(t, "2\n", out.String())
}

func TestREPLReportsParseErrors(t *testing.T) {
	var out bytes.Buffer
	r := repl.New(&out, 0)

	in := strings.NewReader("let = ;\n")
	var errOut bytes.Buffer
	r.Run(in, &errOut)

	require.Contains(t, errOut.String(), "error:")
}

func TestREPLReportsTypeErrors(t *testing.T) {
	var out bytes.Buffer
	r := repl.New(&out, 0)

	in := strings.NewReader(`let x: Integer = "hello";` + "\n")
	var errOut bytes.Buffer
	r.Run(in, &errOut)

	require.Contains(t, errOut.String(), "error")
}

func TestREPLSkipsBlankLinesWithoutEvaluating(t *testing.T) {
	var out bytes.Buffer
	r := repl.New(&out, 0)

	in := strings.NewReader("\n\nwriteln(1);\n")
	var errOut bytes.Buffer
	r.Run(in, &errOut)

	require.Equal(t, "1\n", out.String())
}
