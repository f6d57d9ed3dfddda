package checker_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lumen-lang/lumen/internal/checker"
	"github.com/lumen-lang/lumen/internal/lexer"
	"github.com/lumen-lang/lumen/internal/parser"
)

func check(t *testing.T, src string) (bool, []string) {
	t.Helper()
	p := parser.New(lexer.New(src))
	prog := p.ParseProgram()
	require.Empty(t, p.Errors(), "parse errors for %q", src)

	env := checker.NewEnv(nil)
	checker.SeedPrelude(env)
	chk := checker.New("<test>")
	ok := chk.CheckProgram(prog, env)
	msgs := make([]string, len(chk.Errors))
	for i, e := range chk.Errors {
		msgs[i] = e.Error()
	}
	return ok, msgs
}

func TestCheckerAcceptsWellTypedProgram(t *testing.T) {
	ok, errs := check(t, "let x: Integer = 1 + 2;")
	require.True(t, ok, errs)
}

func TestCheckerRejectsTypeMismatch(t *testing.T) {
	ok, errs := check(t, `let x: Integer = "hello";`)
	require.False(t, ok)
	require.NotEmpty(t, errs)
}

func TestCheckerExhaustivenessRejectsMissingVariant(t *testing.T) {
	src := `type Shape = Square(Integer) | Circle(Integer);
let f = (s) => match (s) { Square(n) => n };`
	ok, errs := check(t, src)
	require.False(t, ok, "match missing Circle should be a semantic error")
	require.NotEmpty(t, errs)
}

func TestCheckerExhaustivenessAcceptsWildcard(t *testing.T) {
	src := `type Shape = Square(Integer) | Circle(Integer);
let f = (s) => match (s) { Square(n) => n, _ => 0 };`
	ok, errs := check(t, src)
	require.True(t, ok, errs)
}

func TestCheckerRejectsRebindingImmutable(t *testing.T) {
	ok, errs := check(t, "let x = 1; x = 2;")
	require.False(t, ok, "rebinding a non-mut let should be a semantic error")
	require.NotEmpty(t, errs)
}

func TestCheckerAllowsRebindingMutable(t *testing.T) {
	ok, errs := check(t, "let mut x = 1; x = 2;")
	require.True(t, ok, errs)
}

func TestCheckerRejectsUnsatisfiedTraitBound(t *testing.T) {
	src := `trait Show { fn show(self) -> String; }
record Point(x: Integer);
let describe = fn describe<T: Show>(x: T) -> String => x.show();
describe(Point(1));`
	ok, errs := check(t, src)
	require.False(t, ok, "calling a bounded generic with a type lacking the impl should be rejected")
	require.NotEmpty(t, errs)
}

func TestCheckerAcceptsSatisfiedTraitBound(t *testing.T) {
	src := `trait Show { fn show(self) -> String; }
record Point(x: Integer);
impl Show for Point { fn show(self) -> String => "point"; }
let describe = fn describe<T: Show>(x: T) -> String => x.show();
describe(Point(1));`
	ok, errs := check(t, src)
	require.True(t, ok, errs)
}

func TestCheckerRejectsImplMissingTraitMethod(t *testing.T) {
	src := `trait Shape { fn area(self) -> Integer; fn perimeter(self) -> Integer; }
record Square(side: Integer);
impl Shape for Square { fn area(self) -> Integer => self.side * self.side; }`
	ok, errs := check(t, src)
	require.False(t, ok, "an impl missing a trait method should be rejected")
	require.NotEmpty(t, errs)
}

func TestCheckerRejectsImplMethodArityMismatch(t *testing.T) {
	src := `trait Adder { fn add(self, n: Integer) -> Integer; }
record Counter(value: Integer);
impl Adder for Counter { fn add(self, n: Integer, extra: Integer) -> Integer => self.value + n + extra; }`
	ok, errs := check(t, src)
	require.False(t, ok, "an impl method with a different parameter count than its trait signature should be rejected")
	require.NotEmpty(t, errs)
}

func TestCheckerAcceptsMultiScrutineeMatch(t *testing.T) {
	src := `let classify = (a: Integer, b: Integer) => match (a, b) {
  0, 0 => "both zero",
  x, y => "other"
};
classify(0, 0);`
	ok, errs := check(t, src)
	require.True(t, ok, errs)
}

func TestCheckerMultiScrutineeMatchSkipsExhaustivenessAcrossScrutinees(t *testing.T) {
	src := `type Shape = Square(Integer) | Circle(Integer);
let describe = (a: Shape, b: Integer) => match (a, b) {
  Square(n), 0 => n
};
describe(Square(1), 0);`
	ok, errs := check(t, src)
	require.True(t, ok, errs)
}

func TestCheckerDeterministicErrors(t *testing.T) {
	src := `let x: Integer = "hello";`
	_, first := check(t, src)
	_, second := check(t, src)
	require.Equal(t, first, second)
}
