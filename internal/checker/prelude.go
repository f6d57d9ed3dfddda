package checker

import "github.com/lumen-lang/lumen/internal/types"

// SeedPrelude registers the prelude's built-in sum types — Result<O, E> and
// Option<T> — and their constructors into env, per spec.md §4.5 step 6. The
// module loader calls this once on the root type environment before
// checking any user module.
func SeedPrelude(env *Env) {
	result := &types.Sum{
		Name:       "Result",
		TypeParams: []string{"O", "E"},
		Variants:   map[string]*types.Variant{},
	}
	oVar := &types.TypeVariable{Name: "O"}
	eVar := &types.TypeVariable{Name: "E"}
	okVariant := &types.Variant{Name: "Ok", Params: []types.Type{oVar}, Parent: result}
	errVariant := &types.Variant{Name: "Err", Params: []types.Type{eVar}, Parent: result}
	result.Variants["Ok"] = okVariant
	result.Variants["Err"] = errVariant
	result.Order = []string{"Ok", "Err"}
	env.DefineType("Result", result)
	env.DefineConstructor("Ok", &types.Function{Params: []types.Type{oVar}, Return: result, TypeParams: []string{"O", "E"}})
	env.DefineConstructor("Err", &types.Function{Params: []types.Type{eVar}, Return: result, TypeParams: []string{"O", "E"}})

	option := &types.Sum{
		Name:       "Option",
		TypeParams: []string{"T"},
		Variants:   map[string]*types.Variant{},
	}
	tVar := &types.TypeVariable{Name: "T"}
	someVariant := &types.Variant{Name: "Some", Params: []types.Type{tVar}, Parent: option}
	noneVariant := &types.Variant{Name: "None", Params: nil, Parent: option}
	option.Variants["Some"] = someVariant
	option.Variants["None"] = noneVariant
	option.Order = []string{"Some", "None"}
	env.DefineType("Option", option)
	env.DefineConstructor("Some", &types.Function{Params: []types.Type{tVar}, Return: option, TypeParams: []string{"T"}})
	env.DefineConstructor("None", &types.Function{Params: nil, Return: option, TypeParams: []string{"T"}})

	SeedBuiltins(env)
}
