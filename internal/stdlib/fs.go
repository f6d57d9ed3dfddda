package stdlib

import (
	"os"

	"github.com/dustin/go-humanize"

	"github.com/lumen-lang/lumen/internal/evaluator"
	"github.com/lumen-lang/lumen/internal/types"
)

// FS builds the `fs` native module: file read/write/listing plus a
// humanized-size helper. Grounded on the teacher's file-IO builtins
// (internal/evaluator/builtins_io.go), adapted to return Result values
// rather than raising host panics on failure.
func FS() Module {
	strResult := resultOf(types.String{}, types.String{})
	nullResult := resultOf(types.Null{}, types.String{})
	listResult := resultOf(&types.Array{Elem: types.String{}}, types.String{})

	readFileT, readFileV := fn("readFile", []types.Type{types.String{}}, strResult, fsReadFile)
	writeFileT, writeFileV := fn("writeFile", []types.Type{types.String{}, types.String{}}, nullResult, fsWriteFile)
	existsT, existsV := fn("exists", []types.Type{types.String{}}, types.Boolean{}, fsExists)
	listDirT, listDirV := fn("listDir", []types.Type{types.String{}}, listResult, fsListDir)
	humanSizeT, humanSizeV := fn("humanSize", []types.Type{types.Integer{}}, types.String{}, fsHumanSize)

	return Module{
		Name: "fs",
		Types: map[string]types.Type{
			"readFile":  readFileT,
			"writeFile": writeFileT,
			"exists":    existsT,
			"listDir":   listDirT,
			"humanSize": humanSizeT,
		},
		Values: map[string]evaluator.Value{
			"readFile":  readFileV,
			"writeFile": writeFileV,
			"exists":    existsV,
			"listDir":   listDirV,
			"humanSize": humanSizeV,
		},
	}
}

func fsReadFile(ev *evaluator.Evaluator, args []evaluator.Value) evaluator.Value {
	path, ok := args[0].(evaluator.String)
	if !ok {
		return errResult("readFile requires a String path")
	}
	data, err := os.ReadFile(path.Value)
	if err != nil {
		return errResult(err.Error())
	}
	return okResult(evaluator.String{Value: string(data)})
}

func fsWriteFile(ev *evaluator.Evaluator, args []evaluator.Value) evaluator.Value {
	path, ok := args[0].(evaluator.String)
	if !ok {
		return errResult("writeFile requires a String path")
	}
	content, ok := args[1].(evaluator.String)
	if !ok {
		return errResult("writeFile requires a String content argument")
	}
	if err := os.WriteFile(path.Value, []byte(content.Value), 0o644); err != nil {
		return errResult(err.Error())
	}
	return okResult(evaluator.Null{})
}

func fsExists(ev *evaluator.Evaluator, args []evaluator.Value) evaluator.Value {
	path, ok := args[0].(evaluator.String)
	if !ok {
		return evaluator.Boolean{Value: false}
	}
	_, err := os.Stat(path.Value)
	return evaluator.Boolean{Value: err == nil}
}

func fsListDir(ev *evaluator.Evaluator, args []evaluator.Value) evaluator.Value {
	path, ok := args[0].(evaluator.String)
	if !ok {
		return errResult("listDir requires a String path")
	}
	entries, err := os.ReadDir(path.Value)
	if err != nil {
		return errResult(err.Error())
	}
	names := make([]evaluator.Value, len(entries))
	for i, e := range entries {
		names[i] = evaluator.String{Value: e.Name()}
	}
	return okResult(&evaluator.Array{Elements: names})
}

func fsHumanSize(ev *evaluator.Evaluator, args []evaluator.Value) evaluator.Value {
	n, ok := args[0].(evaluator.Integer)
	if !ok {
		return evaluator.NewError("humanSize requires an Integer argument")
	}
	return evaluator.String{Value: humanize.Bytes(uint64(n.Value))}
}
