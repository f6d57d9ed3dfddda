package modules

import (
	"github.com/lumen-lang/lumen/internal/ast"
	"github.com/lumen-lang/lumen/internal/checker"
	"github.com/lumen-lang/lumen/internal/evaluator"
)

// LoadedModule is the loader's cache entry: the parsed program (nil for
// native modules, which never go through the parser) plus its checked type
// environment and evaluated value environment, per spec.md §4.5 step 10.
type LoadedModule struct {
	Name    string
	Path    string
	Program *ast.Program
	TypeEnv *checker.Env
	EvalEnv *evaluator.Environment
	Native  bool
}
