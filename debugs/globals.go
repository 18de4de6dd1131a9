package debugs

import (
	"github.com/reusee/bf/bytecodes"
	"github.com/reusee/bf/gens"
	"github.com/reusee/bf/interps"
	"go.starlark.net/starlark"
)

// VMGlobals exposes the state of a stopped vm and the output it wrote.
//
//	tape      list of cell values, up to the rightmost cell touched
//	cursor    cursor position, -1 if the program ended by moving left of cell 0
//	steps     executed instructions
//	output    bytes written
//	interpret interpret(src, input="") runs another program and returns its output
//	translate translate(src) returns the program as Go source
func VMGlobals(vm *bytecodes.VM, output []byte) map[string]any {
	return map[string]any{
		"tape":        cellsOf(vm.Tape.Cells),
		"cursor":      vm.Tape.Pos,
		"steps":       vm.Steps,
		"output":      output,
		"disassemble": vm.Fn.Disassemble,
		"interpret":   interpretBuiltin,
		"translate":   translateBuiltin,
	}
}

var interpretBuiltin = starlark.NewBuiltin("interpret", func(
	thread *starlark.Thread,
	fn *starlark.Builtin,
	args starlark.Tuple,
	kwargs []starlark.Tuple,
) (starlark.Value, error) {
	var src, input string
	if err := starlark.UnpackArgs(fn.Name(), args, kwargs, "src", &src, "input?", &input); err != nil {
		return nil, err
	}
	output, err := interps.InterpretString(src, input)
	if err != nil {
		return nil, err
	}
	return starlark.Bytes(output), nil
})

var translateBuiltin = starlark.NewBuiltin("translate", func(
	thread *starlark.Thread,
	fn *starlark.Builtin,
	args starlark.Tuple,
	kwargs []starlark.Tuple,
) (starlark.Value, error) {
	var src string
	if err := starlark.UnpackArgs(fn.Name(), args, kwargs, "src", &src); err != nil {
		return nil, err
	}
	code, err := gens.Render(gens.Options{}, gens.Program{
		Name:   "main",
		Source: src,
	})
	if err != nil {
		return nil, err
	}
	return starlark.String(code), nil
})
