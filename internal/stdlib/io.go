package stdlib

import (
	"bufio"
	"os"
	"strings"

	"github.com/lumen-lang/lumen/internal/evaluator"
	"github.com/lumen-lang/lumen/internal/types"
)

var stdinReader = bufio.NewReader(os.Stdin)

// IO builds the `io` native module: a line-buffered stdin reader plus
// print/println wrappers over the same Stringify rendering the language's
// top-level writeln/write builtins use. Grounded on the teacher's
// print/read/write builtins.
func IO() Module {
	readLineT, readLineV := fn("readLine", nil, types.String{}, ioReadLine)
	printT, printV := fn("print", []types.Type{types.Any{}}, types.Null{}, ioPrint)
	printlnT, printlnV := fn("println", []types.Type{types.Any{}}, types.Null{}, ioPrintln)

	return Module{
		Name: "io",
		Types: map[string]types.Type{
			"readLine": readLineT, "print": printT, "println": printlnT,
		},
		Values: map[string]evaluator.Value{
			"readLine": readLineV, "print": printV, "println": printlnV,
		},
	}
}

func ioReadLine(ev *evaluator.Evaluator, args []evaluator.Value) evaluator.Value {
	line, err := stdinReader.ReadString('\n')
	if err != nil && line == "" {
		return evaluator.NewError("readLine: %s", err.Error())
	}
	return evaluator.String{Value: strings.TrimRight(line, "\r\n")}
}

func ioPrint(ev *evaluator.Evaluator, args []evaluator.Value) evaluator.Value {
	if ev.Out != nil {
		ev.Out.WriteString(evaluator.Stringify(args[0]))
	}
	return evaluator.Null{}
}

func ioPrintln(ev *evaluator.Evaluator, args []evaluator.Value) evaluator.Value {
	if ev.Out != nil {
		ev.Out.WriteString(evaluator.Stringify(args[0]) + "\n")
	}
	return evaluator.Null{}
}
