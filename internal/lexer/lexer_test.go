package lexer_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lumen-lang/lumen/internal/lexer"
	"github.com/lumen-lang/lumen/internal/token"
)

func TestLexerBasicTokens(t *testing.T) {
	input := `let mut x = 1 + 2.5 * (3 - 4) / 5 % 6;`
	lx := lexer.New(input)

	var kinds []token.Kind
	for {
		tok := lx.NextToken()
		kinds = append(kinds, tok.Kind)
		if tok.Kind == token.EOF {
			break
		}
	}

	require.Contains(t, kinds, token.LET)
	require.Contains(t, kinds, token.IDENT)
	require.Contains(t, kinds, token.INT)
	require.Contains(t, kinds, token.DOUBLE)
	require.Contains(t, kinds, token.PLUS)
	require.Contains(t, kinds, token.ASTERISK)
	require.Contains(t, kinds, token.SLASH)
	require.Contains(t, kinds, token.PERCENT)
	require.Equal(t, token.EOF, kinds[len(kinds)-1])
}

func TestLexerLineColumnMonotonic(t *testing.T) {
	input := "a = 1;\nb = 2;\nc = 3;"
	lx := lexer.New(input)

	lastLine, lastCol := 1, 0
	for {
		tok := lx.NextToken()
		if tok.Kind == token.EOF {
			break
		}
		if tok.Line == lastLine {
			require.GreaterOrEqual(t, tok.Column, lastCol, "column must not decrease within a line")
		} else {
			require.Greater(t, tok.Line, lastLine, "line must increase")
			lastCol = 0
		}
		lastLine, lastCol = tok.Line, tok.Column
	}
}

func TestLexerOperators(t *testing.T) {
	input := "-> => |> == != <= >= && ||"
	lx := lexer.New(input)

	want := []token.Kind{
		token.ARROW, token.FAT_ARROW, token.PIPE,
		token.EQ, token.NOT_EQ, token.LT_EQ, token.GT_EQ,
		token.AND, token.OR,
	}
	for _, k := range want {
		tok := lx.NextToken()
		require.Equal(t, k, tok.Kind, "literal %q", tok.Literal)
	}
}
