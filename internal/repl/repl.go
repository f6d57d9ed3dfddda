// Package repl implements Lumen's interactive read-eval-print loop: a
// persistent type/value environment that accumulates bindings across
// lines, reusing the same lexer/parser/checker/evaluator pipeline a
// loaded module goes through, with diagnostics.Render for pretty
// compile-error output. Grounded on the teacher's pipeline.Run staged
// processing (internal/pipeline) and its main.go's panic-recovery/error
// reporting idiom, adapted to a line-oriented loop since the teacher has
// no REPL of its own.
package repl

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/lumen-lang/lumen/internal/checker"
	"github.com/lumen-lang/lumen/internal/diagnostics"
	"github.com/lumen-lang/lumen/internal/evaluator"
	"github.com/lumen-lang/lumen/internal/lexer"
	"github.com/lumen-lang/lumen/internal/parser"
)

const Prompt = "lumen> "

// REPL holds the state that persists across input lines: one type
// environment and one value environment, both seeded with the prelude
// exactly as a freshly loaded module would be.
type REPL struct {
	typeEnv *checker.Env
	evalEnv *evaluator.Environment
	out     evaluator.Writer
	outFd   uintptr
}

func New(out evaluator.Writer, outFd uintptr) *REPL {
	typeEnv := checker.NewEnv(nil)
	checker.SeedPrelude(typeEnv)
	evalEnv := evaluator.NewEnvironment(nil)
	evaluator.SeedPrelude(evalEnv)
	return &REPL{typeEnv: typeEnv, evalEnv: evalEnv, out: out, outFd: outFd}
}

// Run reads lines from in, evaluating each as a standalone program against
// the REPL's persistent environments, writing results/diagnostics to
// errOut, until in is exhausted.
func (r *REPL) Run(in io.Reader, errOut io.Writer) {
	scanner := bufio.NewScanner(in)
	fmt.Fprint(errOut, Prompt)
	for scanner.Scan() {
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			fmt.Fprint(errOut, Prompt)
			continue
		}
		r.evalLine(line, errOut)
		fmt.Fprint(errOut, Prompt)
	}
}

func (r *REPL) evalLine(line string, errOut io.Writer) {
	lx := lexer.New(line)
	p := parser.New(lx)
	prog := p.ParseProgram()
	if errs := p.Errors(); len(errs) > 0 {
		for _, e := range errs {
			fmt.Fprintf(errOut, "error: %s\n", e)
		}
		return
	}

	chk := checker.New("<repl>")
	if !chk.CheckProgram(prog, r.typeEnv) {
		for _, e := range chk.Errors {
			fmt.Fprint(errOut, diagnostics.Render(e, line, r.outFd))
		}
		return
	}

	ev := evaluator.New(r.out)
	result := ev.EvalProgram(prog, r.evalEnv)
	if evaluator.IsError(result) {
		fmt.Fprintf(errOut, "error: %s\n", result.Inspect())
		return
	}
	if result != nil {
		if _, isNull := result.(evaluator.Null); !isNull {
			fmt.Fprintln(errOut, evaluator.Stringify(result))
		}
	}
}
