package stdlib

import (
	"database/sql"

	_ "modernc.org/sqlite"

	"github.com/lumen-lang/lumen/internal/evaluator"
	"github.com/lumen-lang/lumen/internal/types"
)

// dbHandle wraps an open *sql.DB as a first-class Lumen Value. Lumen's
// Value set is closed at the language level (spec.md §3), but Go
// interfaces are structurally open: any host type implementing
// Kind()/Inspect() satisfies evaluator.Value, which is exactly the escape
// hatch a native module needs to hand an opaque resource back to scripts
// without adding a language-level "handle" type.
type dbHandle struct{ db *sql.DB }

func (*dbHandle) Kind() string    { return "SqliteHandle" }
func (*dbHandle) Inspect() string { return "<sqlite handle>" }

// SQLite builds the `sqlite` native module over modernc.org/sqlite (a
// pure-Go driver, the teacher's own dependency) via database/sql, the way
// spec.md §7 explicitly calls out SQLite as a required native module.
func SQLite() Module {
	openResult := resultOf(types.Any{}, types.String{})
	execResult := resultOf(types.Null{}, types.String{})
	queryResult := resultOf(&types.Array{Elem: &types.Hash{Key: types.String{}, Value: types.Any{}}}, types.String{})

	openT, openV := fn("open", []types.Type{types.String{}}, openResult, sqliteOpen)
	execT, execV := fn("exec", []types.Type{types.Any{}, types.String{}}, execResult, sqliteExec)
	queryT, queryV := fn("query", []types.Type{types.Any{}, types.String{}}, queryResult, sqliteQuery)

	return Module{
		Name: "sqlite",
		Types: map[string]types.Type{
			"open": openT, "exec": execT, "query": queryT,
		},
		Values: map[string]evaluator.Value{
			"open": openV, "exec": execV, "query": queryV,
		},
	}
}

func sqliteOpen(ev *evaluator.Evaluator, args []evaluator.Value) evaluator.Value {
	path, ok := args[0].(evaluator.String)
	if !ok {
		return errResult("open requires a String path")
	}
	db, err := sql.Open("sqlite", path.Value)
	if err != nil {
		return errResult(err.Error())
	}
	if err := db.Ping(); err != nil {
		return errResult(err.Error())
	}
	return okResult(&dbHandle{db: db})
}

func sqliteExec(ev *evaluator.Evaluator, args []evaluator.Value) evaluator.Value {
	handle, ok := args[0].(*dbHandle)
	if !ok {
		return errResult("exec requires a sqlite handle from open()")
	}
	query, ok := args[1].(evaluator.String)
	if !ok {
		return errResult("exec requires a String query")
	}
	if _, err := handle.db.Exec(query.Value); err != nil {
		return errResult(err.Error())
	}
	return okResult(evaluator.Null{})
}

func sqliteQuery(ev *evaluator.Evaluator, args []evaluator.Value) evaluator.Value {
	handle, ok := args[0].(*dbHandle)
	if !ok {
		return errResult("query requires a sqlite handle from open()")
	}
	query, ok := args[1].(evaluator.String)
	if !ok {
		return errResult("query requires a String query")
	}
	rows, err := handle.db.Query(query.Value)
	if err != nil {
		return errResult(err.Error())
	}
	defer rows.Close()
	cols, err := rows.Columns()
	if err != nil {
		return errResult(err.Error())
	}

	var out []evaluator.Value
	for rows.Next() {
		scanned := make([]any, len(cols))
		ptrs := make([]any, len(cols))
		for i := range scanned {
			ptrs[i] = &scanned[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return errResult(err.Error())
		}
		h := evaluator.NewHash()
		for i, col := range cols {
			key := evaluator.String{Value: col}
			hk, _ := evaluator.HashKey(key)
			h.Pairs[hk] = evaluator.HashPair{Key: key, Value: sqlValueToLumen(scanned[i])}
		}
		out = append(out, h)
	}
	if out == nil {
		out = []evaluator.Value{}
	}
	return okResult(&evaluator.Array{Elements: out})
}

func sqlValueToLumen(v any) evaluator.Value {
	switch x := v.(type) {
	case nil:
		return evaluator.Null{}
	case int64:
		return evaluator.Integer{Value: x}
	case float64:
		return evaluator.Double{Value: x}
	case []byte:
		return evaluator.String{Value: string(x)}
	case string:
		return evaluator.String{Value: x}
	case bool:
		return evaluator.Boolean{Value: x}
	default:
		return evaluator.String{Value: ""}
	}
}
