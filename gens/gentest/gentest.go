// Package gentest holds generated code for a fixed set of programs, so that
// generated functions can be compared with the interpreter.
package gentest

import (
	"io"
	"os"
	"slices"

	"github.com/reusee/bf/programs"
)

//go:generate go run ../../cmd/bfgen -dir cases -pkg gentest -register -out gentest_gen.go

type Func func(in io.Reader, out io.Writer) error

var funcs = make(map[string]Func)

func register(name string, fn Func, _ string) {
	if _, ok := funcs[name]; ok {
		panic("duplicated program " + name)
	}
	funcs[name] = fn
}

// Lookup returns the generated function of a case.
func Lookup(name string) (Func, bool) {
	fn, ok := funcs[name]
	return fn, ok
}

func Names() []string {
	names := make([]string, 0, len(funcs))
	for name := range funcs {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Cases returns the store of case sources, relative to the package directory.
func Cases() programs.Store {
	return programs.New(os.DirFS("cases"))
}
