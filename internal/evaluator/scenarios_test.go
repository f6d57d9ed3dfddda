package evaluator_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lumen-lang/lumen/internal/checker"
	"github.com/lumen-lang/lumen/internal/evaluator"
	"github.com/lumen-lang/lumen/internal/lexer"
	"github.com/lumen-lang/lumen/internal/parser"
)

// run lexes, parses, type-checks, and evaluates src against freshly seeded
// environments, returning everything writeln/write sent to its output.
func run(t *testing.T, src string) string {
	t.Helper()

	p := parser.New(lexer.New(src))
	prog := p.ParseProgram()
	require.Empty(t, p.Errors(), "parse errors for %q", src)

	typeEnv := checker.NewEnv(nil)
	checker.SeedPrelude(typeEnv)
	chk := checker.New("<test>")
	ok := chk.CheckProgram(prog, typeEnv)
	if !ok {
		for _, e := range chk.Errors {
			t.Logf("check error: %s", e.Error())
		}
	}
	require.True(t, ok, "type-checking %q", src)

	evalEnv := evaluator.NewEnvironment(nil)
	evaluator.SeedPrelude(evalEnv)
	var buf bytes.Buffer
	ev := evaluator.New(&buf)
	result := ev.EvalProgram(prog, evalEnv)
	require.False(t, evaluator.IsError(result), "evaluating %q: %v", src, result)

	return buf.String()
}

func TestScenarioArithmeticWidening(t *testing.T) {
	require.Equal(t, "3\n", run(t, "writeln(1 + 2.0);"))
}

func TestScenarioHigherOrderClosureCapture(t *testing.T) {
	out := run(t, "let mkAdder = (n) => (x) => x + n; let add3 = mkAdder(3); writeln(add3(4));")
	require.Equal(t, "7\n", out)
}

func TestScenarioSumTypePatternMatch(t *testing.T) {
	src := `type Shape = Square(Integer) | Circle(Integer);
let area = (s) => match (s) { Square(n) => n * n, Circle(r) => 3 * r * r };
writeln(area(Square(4)));`
	require.Equal(t, "16\n", run(t, src))
}

func TestScenarioResultPropagation(t *testing.T) {
	src := `let half = (n: Integer) -> Result<Integer, String> => {
  if n % 2 == 0: Ok(n / 2) else: Err("odd");
};
let twice = (n: Integer) -> Result<Integer, String> => {
  let h = half(n)?;
  Ok(h + h);
};
match (twice(10)) { Ok(v) => writeln(v), Err(m) => writeln(m) };`
	require.Equal(t, "10\n", run(t, src))
}

func TestScenarioTraitMethodDispatch(t *testing.T) {
	src := `trait Greet { fn hello(self) -> String; }
record Dog(name: String);
impl Greet for Dog { fn hello(self) -> String => strFormat("woof, {?}", self.name); }
writeln(Dog("rex").hello());`
	require.Equal(t, "woof, rex\n", run(t, src))
}

func TestScenarioMultiScrutineeMatch(t *testing.T) {
	src := `let classify = (a: Integer, b: Integer) => match (a, b) {
  0, 0 => "both zero",
  0, y => "first zero",
  x, 0 => "second zero",
  x, y => "neither zero"
};
writeln(classify(0, 0));
writeln(classify(0, 5));
writeln(classify(5, 0));
writeln(classify(3, 4));`
	require.Equal(t, "both zero\nfirst zero\nsecond zero\nneither zero\n", run(t, src))
}

func TestScenarioPipeChaining(t *testing.T) {
	src := `let double = (x) => x * 2; writeln([1,2,3] |> map(double) |> reduce(0, (a,b) => a+b));`
	require.Equal(t, "12\n", run(t, src))
}

func TestMutationDiscipline(t *testing.T) {
	out := run(t, "let mut x = 1; x = x + 1; writeln(x);")
	require.Equal(t, "2\n", out)
}

func TestEvaluatorDeterminism(t *testing.T) {
	src := "let f = (n) => n * n + 1; writeln(f(5));"
	first := run(t, src)
	second := run(t, src)
	require.Equal(t, first, second)
}
