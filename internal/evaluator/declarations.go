package evaluator

import "github.com/lumen-lang/lumen/internal/ast"

// evalTypeDeclaration seeds the variant->sum map and binds each variant's
// unqualified name to a constructor Function, per spec.md §4.1/§4.4.
func (ev *Evaluator) evalTypeDeclaration(s *ast.TypeDeclaration, env *Environment) Value {
	for _, vd := range s.Variants {
		env.DefineVariant(vd.Name, s.Name)
		fields := make([]string, len(vd.Params))
		for i := range vd.Params {
			fields[i] = vd.Name
			_ = i
		}
		env.Define(vd.Name, &Function{
			Name:                vd.Name,
			IsRecordConstructor: false,
			RecordName:          s.Name,
			RecordFields:        variantArgNames(len(vd.Params)),
		}, false)
	}
	return Null{}
}

func variantArgNames(n int) []string {
	names := make([]string, n)
	for i := range names {
		names[i] = "_"
	}
	return names
}

func (ev *Evaluator) evalRecordDeclaration(s *ast.RecordDeclaration, env *Environment) Value {
	names := make([]string, len(s.Fields))
	for i, f := range s.Fields {
		names[i] = f.Name
	}
	env.Define(s.Name, &Function{
		Name:                s.Name,
		IsRecordConstructor: true,
		RecordName:          s.Name,
		RecordFields:        names,
	}, false)
	return Null{}
}

func (ev *Evaluator) evalImplDeclaration(s *ast.ImplDeclaration, env *Environment) Value {
	methods := map[string]*Function{}
	for _, m := range s.Methods {
		methods[m.Name] = &Function{Name: m.Name, Params: m.Params, Body: m.Body, Env: env}
	}
	baseName := implTargetBaseName(s)
	env.AddImplementation(baseName, ImplBinding{Methods: methods})
	return Null{}
}

// implTargetBaseName mirrors types.BaseTypeName but works from the parsed
// (unchecked) type annotation, since the evaluator never builds semantic
// Type values: the checker already validated the target during checking,
// so only the syntactic shape matters here for keying the impl table.
func implTargetBaseName(s *ast.ImplDeclaration) string {
	switch t := s.TargetType.(type) {
	case *ast.IdentType:
		return t.Name
	case *ast.GenericType:
		return t.Name
	case *ast.PathType:
		return t.Parts[len(t.Parts)-1]
	default:
		return t.String()
	}
}

func (ev *Evaluator) evalActivePatternDecl(s *ast.ActivePatternDecl, env *Environment) Value {
	fn := ev.Eval(s.Value, env)
	if IsError(fn) {
		return fn
	}
	env.Define(s.Name, fn, false)
	for _, c := range s.Cases {
		env.DefineActivePatternCase(c, fn)
	}
	return Null{}
}
