package main

import (
	"context"
	"fmt"
	"os"

	"github.com/reusee/bf/cmds"
	"github.com/reusee/bf/modes"
	"github.com/reusee/dscope"
	"golang.org/x/term"
)

// action runs after all arguments are parsed, so flags may follow commands.
var action func(ctx context.Context, scope dscope.Scope) error

func setAction(fn func(ctx context.Context, scope dscope.Scope) error) {
	if action != nil {
		fail(2, fmt.Errorf("more than one command given"))
	}
	action = fn
}

func main() {
	if err := cmds.Execute(os.Args[1:]); err != nil {
		fail(2, err)
	}

	if action == nil {
		if term.IsTerminal(int(os.Stdin.Fd())) {
			action = runREPL
		} else {
			action = interpretStdin
		}
	}

	scope := dscope.New(
		new(Module),
		modes.ForProduction(),
	)

	if err := action(context.Background(), scope); err != nil {
		fail(1, err)
	}
}

func fail(code int, err error) {
	fmt.Fprintf(os.Stderr, "bf: %v\n", err)
	os.Exit(code)
}
