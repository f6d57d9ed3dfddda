package stdlib

import (
	"time"

	"github.com/dustin/go-humanize"

	"github.com/lumen-lang/lumen/internal/evaluator"
	"github.com/lumen-lang/lumen/internal/types"
)

// Datetime builds the `datetime` native module. spec.md §4.5 names
// `datetime` among the fixed native modules but specifies no operations;
// these mirror the teacher's own time builtins (see DESIGN.md).
func Datetime() Module {
	nowT, nowV := fn("now", nil, types.Integer{}, datetimeNow)
	formatT, formatV := fn("format", []types.Type{types.Integer{}, types.String{}}, types.String{}, datetimeFormat)
	humanDurationT, humanDurationV := fn("humanDuration", []types.Type{types.Integer{}}, types.String{}, datetimeHumanDuration)

	return Module{
		Name: "datetime",
		Types: map[string]types.Type{
			"now": nowT, "format": formatT, "humanDuration": humanDurationT,
		},
		Values: map[string]evaluator.Value{
			"now": nowV, "format": formatV, "humanDuration": humanDurationV,
		},
	}
}

func datetimeNow(ev *evaluator.Evaluator, args []evaluator.Value) evaluator.Value {
	return evaluator.Integer{Value: time.Now().Unix()}
}

func datetimeFormat(ev *evaluator.Evaluator, args []evaluator.Value) evaluator.Value {
	secs, ok := args[0].(evaluator.Integer)
	if !ok {
		return evaluator.NewError("format requires an Integer unix timestamp")
	}
	layout, ok := args[1].(evaluator.String)
	if !ok {
		return evaluator.NewError("format requires a String layout")
	}
	return evaluator.String{Value: time.Unix(secs.Value, 0).UTC().Format(layout.Value)}
}

func datetimeHumanDuration(ev *evaluator.Evaluator, args []evaluator.Value) evaluator.Value {
	secs, ok := args[0].(evaluator.Integer)
	if !ok {
		return evaluator.NewError("humanDuration requires an Integer seconds argument")
	}
	return evaluator.String{Value: humanize.RelTime(time.Now().Add(-time.Duration(secs.Value)*time.Second), time.Now(), "ago", "from now")}
}
