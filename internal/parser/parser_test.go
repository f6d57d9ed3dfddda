package parser_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lumen-lang/lumen/internal/lexer"
	"github.com/lumen-lang/lumen/internal/parser"
)

func parse(t *testing.T, src string) (string, []string) {
	t.Helper()
	p := parser.New(lexer.New(src))
	prog := p.ParseProgram()
	return prog.String(), p.Errors()
}

func TestParserRoundTrip(t *testing.T) {
	cases := []string{
		"let x = 1 + 2 * 3;",
		"let mut x = 1; x = x + 1;",
		"let add = (x, y) => x + y;",
		"if x > 0 { writeln(x); } else { writeln(0); }",
		"type Shape = Square(Integer) | Circle(Integer);",
		"record Dog(name: String);",
		"trait Greet { fn hello(self) -> String; }",
		"match (s) { Square(n) => n * n, Circle(r) => r }",
		"match (a, b) { 0, 0 => 1, x, y => x + y }",
		"[1, 2, 3] |> map(double)",
	}

	for _, src := range cases {
		src := src
		t.Run(src, func(t *testing.T) {
			printed, errs := parse(t, src)
			require.Empty(t, errs, "parsing %q", src)
			require.NotEmpty(t, printed)

			_, errs2 := parse(t, printed)
			require.Empty(t, errs2, "reparsing printed form %q", printed)
		})
	}
}

func TestParserReportsSyntaxErrors(t *testing.T) {
	_, errs := parse(t, "let = ;")
	require.NotEmpty(t, errs)
}

func TestParserMatchMultiScrutineeArmPatternCount(t *testing.T) {
	printed, errs := parse(t, "match (a, b) { x, y => x + y }")
	require.Empty(t, errs)
	require.Contains(t, printed, "match (a, b) { x, y => (x + y) }")
}

func TestParserMatchArmMissingPatternForScrutineeIsSyntaxError(t *testing.T) {
	_, errs := parse(t, "match (a, b) { x => x }")
	require.NotEmpty(t, errs, "an arm with fewer patterns than scrutinees should be a parse error")
}
