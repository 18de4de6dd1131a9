package engines

import (
	"context"
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/reusee/bf/blocks"
	"github.com/reusee/bf/bytecodes"
	"github.com/reusee/bf/interps"
	"github.com/reusee/bf/natives"
	"github.com/reusee/bf/ops"
)

// Engine runs a whole program. All engines produce the same output for the same program and input.
type Engine interface {
	Name() string
	Run(ctx context.Context, src string, in io.Reader, out io.Writer) error
}

var (
	ErrUnknownEngine = errors.New("unknown engine")
	ErrNoNative      = errors.New("no native routine for program")
)

type engineFunc struct {
	name string
	fn   func(ctx context.Context, src string, in io.Reader, out io.Writer) error
}

var _ Engine = engineFunc{}

func (e engineFunc) Name() string {
	return e.name
}

func (e engineFunc) Run(ctx context.Context, src string, in io.Reader, out io.Writer) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return e.fn(ctx, src, in, out)
}

// Interp is the recursive rescanning interpreter.
var Interp Engine = engineFunc{
	name: "interp",
	fn: func(_ context.Context, src string, in io.Reader, out io.Writer) error {
		return interps.Interpret(src, in, out)
	},
}

// Tree translates to a block tree and walks it.
var Tree Engine = engineFunc{
	name: "tree",
	fn: func(_ context.Context, src string, in io.Reader, out io.Writer) error {
		return blocks.Run(src, in, out)
	},
}

// vmYieldEvery is how often the vm engine checks for cancellation, in instructions.
const vmYieldEvery = 1 << 16

// VM compiles to bytecode. It is the only engine that stops when ctx is canceled mid-run.
var VM Engine = engineFunc{
	name: "vm",
	fn: func(ctx context.Context, src string, in io.Reader, out io.Writer) error {
		b, err := blocks.Translate(src)
		if err != nil {
			return err
		}
		vm := bytecodes.NewVM(bytecodes.Compile("main", b), in, out)
		vm.YieldEvery = vmYieldEvery
		for intr, err := range vm.Run {
			if err != nil {
				return err
			}
			if intr == bytecodes.InterruptYield {
				if err := ctx.Err(); err != nil {
					return err
				}
			}
		}
		return nil
	},
}

// Native runs the ahead-of-time compiled routine of a built-in program.
var Native Engine = engineFunc{
	name: "native",
	fn: func(_ context.Context, src string, in io.Reader, out io.Writer) error {
		if err := ops.Validate(src); err != nil {
			return err
		}
		prog, ok := natives.BySource(src)
		if !ok {
			return ErrNoNative
		}
		return prog.Func(in, out)
	},
}

// Engines is sorted by name.
type Engines []Engine

func (e Engines) Get(name string) (Engine, error) {
	for _, engine := range e {
		if engine.Name() == name {
			return engine, nil
		}
	}
	return nil, fmt.Errorf("%w: %s, expecting one of %s", ErrUnknownEngine, name, strings.Join(e.Names(), ", "))
}

func (e Engines) Names() []string {
	ret := make([]string, 0, len(e))
	for _, engine := range e {
		ret = append(ret, engine.Name())
	}
	return ret
}

func sortEngines(engines Engines) Engines {
	slices.SortFunc(engines, func(a, b Engine) int {
		return strings.Compare(a.Name(), b.Name())
	})
	return engines
}
