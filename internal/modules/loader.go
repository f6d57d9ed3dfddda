// Package modules implements Lumen's module loader: dotted-name to file
// resolution, a loaded-module cache, import-cycle detection, and the
// native-module registry bypass, per spec.md §4.5. Grounded on the
// teacher's internal/modules/loader.go (LoadedModules/Processing maps,
// dotted-path -> file resolution, virtual package registry bypassing the
// parser).
package modules

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/pkg/errors"
	"golang.org/x/sync/singleflight"

	"github.com/lumen-lang/lumen/internal/ast"
	"github.com/lumen-lang/lumen/internal/checker"
	"github.com/lumen-lang/lumen/internal/config"
	"github.com/lumen-lang/lumen/internal/evaluator"
	"github.com/lumen-lang/lumen/internal/lexer"
	"github.com/lumen-lang/lumen/internal/parser"
	"github.com/lumen-lang/lumen/internal/stdlib"
	"github.com/lumen-lang/lumen/internal/types"
)

// Loader resolves dotted module names (`a.b` -> `<BaseDir>/a/b.lu`) to
// loaded-and-checked modules, caching every one it loads.
type Loader struct {
	BaseDir string
	Out     evaluator.Writer

	// NativeAllow, if set, gates which native module names Load will
	// resolve via the stdlib registry bypass. The loader never reads
	// lumen.toml itself (projectconfig is a CLI-only concern); the CLI
	// front end sets this from the parsed manifest's Allows method.
	NativeAllow func(name string) bool

	mu      sync.Mutex
	loaded  map[string]*LoadedModule
	loading []string // stack, for naming the chain in a cycle error

	// sf collapses concurrent Load calls for the same name onto one
	// in-flight load (SPEC_FULL.md §4.5) — defensive, since the core
	// itself is single-threaded (spec.md §5) and never observes the
	// difference; only a multi-threaded embedder benefits.
	sf singleflight.Group
}

func NewLoader(baseDir string, out evaluator.Writer) *Loader {
	return &Loader{BaseDir: baseDir, Out: out, loaded: map[string]*LoadedModule{}}
}

func (l *Loader) resolvePath(name string) string {
	parts := strings.Split(name, ".")
	return filepath.Join(append([]string{l.BaseDir}, parts...)...) + config.SourceFileExt
}

// Load resolves and caches name per spec.md §4.5's load algorithm:
// 1. cached -> return; 2. in the loading stack -> cycle error; 3. push/pop
// around the rest; 4. native -> registry bypass; 5-10. else read, parse,
// check, evaluate, cache.
func (l *Loader) Load(name string) (*LoadedModule, error) {
	v, err, _ := l.sf.Do(name, func() (any, error) {
		return l.load(name)
	})
	if err != nil {
		return nil, err
	}
	return v.(*LoadedModule), nil
}

func (l *Loader) load(name string) (*LoadedModule, error) {
	l.mu.Lock()
	if mod, ok := l.loaded[name]; ok {
		l.mu.Unlock()
		return mod, nil
	}
	for _, p := range l.loading {
		if p == name {
			chain := append(append([]string{}, l.loading...), name)
			l.mu.Unlock()
			return nil, fmt.Errorf("circular dependency detected loading module: %s", strings.Join(chain, " -> "))
		}
	}
	l.loading = append(l.loading, name)
	l.mu.Unlock()
	defer func() {
		l.mu.Lock()
		l.loading = l.loading[:len(l.loading)-1]
		l.mu.Unlock()
	}()

	if native, ok := stdlib.Lookup(name); ok {
		if l.NativeAllow != nil && !l.NativeAllow(name) {
			return nil, fmt.Errorf("native module %q is not in lumen.toml's native_allow list", name)
		}
		return l.loadNative(name, native)
	}
	return l.loadSourceAt(name, l.resolvePath(name))
}

// loadNative seeds a fresh type environment with the native module's
// exported types and a fresh value environment with its builtins, marks
// every name exposed, and caches the result — step 4 of spec.md §4.5's
// load algorithm.
func (l *Loader) loadNative(name string, native stdlib.Module) (*LoadedModule, error) {
	typeEnv := checker.NewEnv(nil)
	evalEnv := evaluator.NewEnvironment(nil)
	for n, t := range native.Types {
		typeEnv.Define(n, t, false)
	}
	for n, v := range native.Values {
		evalEnv.Define(n, v, false)
	}
	mod := &LoadedModule{Name: native.Name, Path: "native:" + name, TypeEnv: typeEnv, EvalEnv: evalEnv, Native: true}
	l.mu.Lock()
	l.loaded[name] = mod
	l.mu.Unlock()
	return mod, nil
}

// LoadFile loads and runs a single file directly, bypassing dotted-name
// resolution — used only by the CLI's `run <file>` entry point, which
// names a file rather than a module.
func (l *Loader) LoadFile(path string) (*LoadedModule, error) {
	key := "file:" + path
	v, err, _ := l.sf.Do(key, func() (any, error) {
		return l.loadSourceAt(key, path)
	})
	if err != nil {
		return nil, err
	}
	return v.(*LoadedModule), nil
}

func (l *Loader) loadSourceAt(name, path string) (*LoadedModule, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "loading module %q", name)
	}

	lx := lexer.New(string(content))
	p := parser.New(lx)
	prog := p.ParseProgram()
	prog.File = path
	if errs := p.Errors(); len(errs) > 0 {
		return nil, errors.Wrapf(fmt.Errorf("%s", strings.Join(errs, "; ")), "parsing module %q", name)
	}

	typeEnv := checker.NewEnv(nil)
	checker.SeedPrelude(typeEnv)
	evalEnv := evaluator.NewEnvironment(nil)
	evaluator.SeedPrelude(evalEnv)

	header, uses := splitHeader(prog)
	for _, use := range uses {
		if err := l.applyUse(use, typeEnv, evalEnv); err != nil {
			return nil, errors.Wrapf(err, "loading module %q", name)
		}
	}

	chk := checker.New(path)
	if !chk.CheckProgram(prog, typeEnv) {
		return nil, errors.Wrapf(checkerErr(chk), "type-checking module %q", name)
	}

	ev := evaluator.New(l.Out)
	result := ev.EvalProgram(prog, evalEnv)
	if evaluator.IsError(result) {
		// Runtime failure during module-level evaluation: the module never
		// finished initializing, so it must not be cached as loaded
		// (spec.md §4.5 step 9).
		return nil, errors.Wrapf(fmt.Errorf("%s", result.Inspect()), "evaluating module %q", name)
	}

	if header != nil && header.HasExposing {
		typeEnv.SetExposed(header.Exposing)
		evalEnv.SetExposed(header.Exposing)
	}

	mod := &LoadedModule{Name: moduleLocalName(header, name), Path: path, Program: prog, TypeEnv: typeEnv, EvalEnv: evalEnv}
	l.mu.Lock()
	l.loaded[name] = mod
	l.mu.Unlock()
	return mod, nil
}

func checkerErr(chk *checker.Checker) error {
	msgs := make([]string, len(chk.Errors))
	for i, e := range chk.Errors {
		msgs[i] = e.Error()
	}
	return fmt.Errorf("%s", strings.Join(msgs, "; "))
}

// splitHeader pulls the module header (legal only as the program's first
// statement) and every top-level use-statement out of prog, so they can be
// resolved before CheckProgram/EvalProgram run over the full statement
// list — both treat ast.ModuleHeader/ast.UseStatement as no-ops, trusting
// the loader to have already driven imports (see checker.CheckStatement's
// comment on those cases).
func splitHeader(prog *ast.Program) (*ast.ModuleHeader, []*ast.UseStatement) {
	var header *ast.ModuleHeader
	var uses []*ast.UseStatement
	for i, stmt := range prog.Statements {
		switch s := stmt.(type) {
		case *ast.ModuleHeader:
			if i == 0 {
				header = s
			}
		case *ast.UseStatement:
			uses = append(uses, s)
		}
	}
	return header, uses
}

func moduleLocalName(header *ast.ModuleHeader, fallback string) string {
	if header != nil {
		return header.Name
	}
	parts := strings.Split(fallback, ".")
	return parts[len(parts)-1]
}

// applyUse resolves one `use path [as alias] [exposing (n1, n2)]` against
// its dependency, binding names into typeEnv/evalEnv per spec.md §4.5's
// three binding forms, and unconditionally merges the dependency's own
// trait implementations — "trait implementations are always merged (not
// gated by exposure)".
func (l *Loader) applyUse(use *ast.UseStatement, typeEnv *checker.Env, evalEnv *evaluator.Environment) error {
	depName := strings.Join(use.Path, ".")
	// Calls l.load directly, not l.Load: applyUse always runs on the
	// goroutine that is already inside a load() call for the importing
	// module, so routing a dependency through the singleflight-wrapped
	// Load would self-deadlock on any cycle (the second Do for the same
	// in-flight key blocks waiting for the first, which is this same
	// call stack).
	dep, err := l.load(depName)
	if err != nil {
		return err
	}

	switch {
	case use.HasAlias:
		typeEnv.Define(use.Alias, &types.Module{Name: dep.Name, Env: dep.TypeEnv}, false)
		evalEnv.Define(use.Alias, &evaluator.Module{Name: dep.Name, Env: dep.EvalEnv}, false)
	case use.HasExposing:
		for _, n := range use.Exposing {
			if !dep.TypeEnv.IsExposed(n) {
				return fmt.Errorf("module %q does not expose %q", depName, n)
			}
			t, ok := dep.TypeEnv.Lookup(n)
			if !ok {
				t, ok = dep.TypeEnv.LookupConstructor(n)
			}
			if !ok {
				return fmt.Errorf("module %q has no member %q", depName, n)
			}
			typeEnv.Define(n, t, false)
			if v, ok := dep.EvalEnv.Get(n); ok {
				evalEnv.Define(n, v, false)
			}
		}
	default:
		last := use.Path[len(use.Path)-1]
		typeEnv.Define(last, &types.Module{Name: dep.Name, Env: dep.TypeEnv}, false)
		evalEnv.Define(last, &evaluator.Module{Name: dep.Name, Env: dep.EvalEnv}, false)
	}

	mergeImplementations(dep, typeEnv, evalEnv)
	return nil
}

func mergeImplementations(dep *LoadedModule, typeEnv *checker.Env, evalEnv *evaluator.Environment) {
	for baseName, impls := range dep.TypeEnv.OwnImplementations() {
		for _, impl := range impls {
			typeEnv.AddImplementation(baseName, impl.Node, impl.DefEnv)
		}
	}
	for baseName, impls := range dep.EvalEnv.OwnImplementations() {
		for _, impl := range impls {
			evalEnv.AddImplementation(baseName, impl)
		}
	}
}
