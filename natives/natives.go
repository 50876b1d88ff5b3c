/*
File    : logo2/natives/natives.go
*/

// Package natives provides the host-side function bindings: the turtle
// primitives, printing and quit. The core interpreter knows nothing of
// these; they arrive through the evaluator's AddNativeFunction hook the
// same way any embedding host would register its own.
package natives

import (
	"fmt"

	"github.com/logo2lang/logo2/eval"
	"github.com/logo2lang/logo2/function"
	"github.com/logo2lang/logo2/turtle"
	"github.com/logo2lang/logo2/values"
)

// RegisterCore installs the non-graphical natives: print, println and
// quit.
func RegisterCore(ev *eval.Evaluator) {
	ev.AddNativeFunction("print", 1, func(interp function.Interp, args []values.Value) (values.Value, error) {
		fmt.Fprint(interp.Output(), args[0].ToString())
		return values.NullValue, nil
	})
	ev.AddNativeFunction("println", 1, func(interp function.Interp, args []values.Value) (values.Value, error) {
		fmt.Fprintln(interp.Output(), args[0].ToString())
		return values.NullValue, nil
	})
	ev.AddNativeFunction("quit", 0, func(interp function.Interp, args []values.Value) (values.Value, error) {
		return nil, &eval.QuitSignal{}
	})
}

// RegisterTurtle binds the turtle primitives of the given turtle onto
// the evaluator. Pose save/restore works as a stack shared by the
// save() / restore() pair.
func RegisterTurtle(ev *eval.Evaluator, t *turtle.Turtle) {
	moves := map[string]func(float64){
		"fd": t.Forward, "forward": t.Forward,
		"bk": t.Back, "back": t.Back,
	}
	for name, move := range moves {
		ev.AddNativeFunction(name, 1, numeric1(move))
	}

	turns := map[string]float64{"rt": 1, "right": 1, "lt": -1, "left": -1}
	for name, sign := range turns {
		ev.AddNativeFunction(name, 1, numeric1(func(angle float64) {
			t.Rotate(sign * angle)
		}))
	}

	pens := map[string]func(){
		"penup": t.Penup, "pu": t.Penup,
		"pendown": t.Pendown, "pd": t.Pendown,
	}
	for name, pen := range pens {
		ev.AddNativeFunction(name, 0, func(interp function.Interp, args []values.Value) (values.Value, error) {
			pen()
			return values.NullValue, nil
		})
	}

	ev.AddNativeFunction("pencolor", 4, func(interp function.Interp, args []values.Value) (values.Value, error) {
		rgba := [4]uint8{}
		for i, arg := range args {
			channel, err := toInteger(arg)
			if err != nil {
				return nil, err
			}
			rgba[i] = uint8(channel)
		}
		t.SetPenColor(rgba[0], rgba[1], rgba[2], rgba[3])
		return values.NullValue, nil
	})
	ev.AddNativeFunction("penwidth", 1, numeric1(func(width float64) {
		t.SetPenWidth(float32(width))
	}))
	ev.AddNativeFunction("setstep", 1, numeric1(t.SetStep))

	var poses []turtle.State
	ev.AddNativeFunction("save", 0, func(interp function.Interp, args []values.Value) (values.Value, error) {
		poses = append(poses, t.Save())
		return values.NullValue, nil
	})
	ev.AddNativeFunction("restore", 0, func(interp function.Interp, args []values.Value) (values.Value, error) {
		if len(poses) > 0 {
			t.Restore(poses[len(poses)-1])
			poses = poses[:len(poses)-1]
		}
		return values.NullValue, nil
	})
}

// numeric1 adapts a single-float turtle operation into a native
// function with numeric coercion.
func numeric1(op func(float64)) function.NativeFunction {
	return func(interp function.Interp, args []values.Value) (values.Value, error) {
		amount, err := toFloat(args[0])
		if err != nil {
			return nil, err
		}
		op(amount)
		return values.NullValue, nil
	}
}

// toFloat coerces an integer or real argument to float64.
func toFloat(v values.Value) (float64, error) {
	switch val := v.(type) {
	case *values.Integer:
		return float64(val.Value), nil
	case *values.Real:
		return val.Value, nil
	}
	return 0, values.NewRuntimeError(values.TypeMismatch)
}

// toInteger coerces an integer argument to int64.
func toInteger(v values.Value) (int64, error) {
	if val, ok := v.(*values.Integer); ok {
		return val.Value, nil
	}
	return 0, values.NewRuntimeError(values.TypeMismatch)
}
