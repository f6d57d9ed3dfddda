package diagnostics_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lumen-lang/lumen/internal/diagnostics"
	"github.com/lumen-lang/lumen/internal/token"
)

func TestErrorIncludesFileWhenSet(t *testing.T) {
	tok := token.Token{Kind: token.IDENT, Literal: "x", Line: 3, Column: 5}
	e := diagnostics.New(diagnostics.Semantic, tok, "undefined name %q", "x")
	e.File = "main.lu"
	require.Equal(t, `main.lu:3:5: error: undefined name "x"`, e.Error())
}

func TestErrorOmitsFileWhenUnset(t *testing.T) {
	tok := token.Token{Kind: token.IDENT, Literal: "x", Line: 1, Column: 1}
	e := diagnostics.New(diagnostics.Lexical, tok, "unexpected character")
	require.Equal(t, "1:1: error: unexpected character", e.Error())
}

func TestRenderOnNonTerminalFdOmitsColor(t *testing.T) {
	tok := token.Token{Kind: token.IDENT, Literal: "bad", Line: 2, Column: 5}
	e := diagnostics.New(diagnostics.Semantic, tok, "type mismatch")
	e.File = "test.lu"

	source := "let x = 1;\nlet y = bad;\n"
	out := diagnostics.Render(e, source, 0)

	require.Contains(t, out, "error: type mismatch")
	require.Contains(t, out, "--> test.lu:2:5")
	require.Contains(t, out, "let y = bad;")
	require.Contains(t, out, "^^^")
	require.NotContains(t, out, "\x1b[")
}

func TestRenderIncludesPrecedingLineForContext(t *testing.T) {
	tok := token.Token{Kind: token.IDENT, Literal: "z", Line: 2, Column: 5}
	e := diagnostics.New(diagnostics.Semantic, tok, "oops")
	source := "first line\nsecond z line\n"
	out := diagnostics.Render(e, source, 0)

	require.Contains(t, out, "first line")
	require.Contains(t, out, "second z line")
}
