package main

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/reusee/bf/bfconfigs"
	"github.com/reusee/bf/blocks"
	"github.com/reusee/bf/bytecodes"
	"github.com/reusee/bf/debugs"
	"github.com/reusee/bf/engines"
	"github.com/reusee/bf/logs"
	"github.com/reusee/bf/sources"
	"github.com/reusee/dscope"
)

func runSource(ctx context.Context, scope dscope.Scope, src sources.Source) error {
	return runSourceIO(ctx, scope, src, os.Stdin, os.Stdout)
}

func runSourceIO(ctx context.Context, scope dscope.Scope, src sources.Source, in io.Reader, out io.Writer) (err error) {
	scope.Call(func(
		logger logs.Logger,
		getEngine engines.GetEngine,
		engineName bfconfigs.EngineName,
		tapEnabled bfconfigs.Tap,
		tap debugs.Tap,
	) {
		if tapEnabled || len(*evalExprs) > 0 {
			// inspection needs the machine state after the run
			if engineName != "" && engineName != "vm" {
				logger.WarnContext(ctx, "engine ignored while inspecting, running on vm", "engine", engineName)
			}
			err = runInspected(ctx, src, in, out, bool(tapEnabled), tap)
			return
		}
		var engine engines.Engine
		engine, err = getEngine()
		if err != nil {
			return
		}
		logger.DebugContext(ctx, "source", "name", src.Name, "engine", engine.Name())
		err = engine.Run(ctx, src.Text, in, out)
	})
	return
}

func runInspected(ctx context.Context, src sources.Source, in io.Reader, out io.Writer, interactive bool, tap debugs.Tap) error {
	b, err := blocks.Translate(src.Text)
	if err != nil {
		return err
	}
	output := new(bytes.Buffer)
	vm := bytecodes.NewVM(bytecodes.Compile(src.Name, b), in, io.MultiWriter(out, output))
	for _, err := range vm.Run {
		if err != nil {
			return err
		}
	}

	globals := debugs.VMGlobals(vm, output.Bytes())
	for _, expr := range *evalExprs {
		value, err := debugs.Eval(expr, globals)
		if err != nil {
			return fmt.Errorf("eval %s: %w", expr, err)
		}
		fmt.Fprintf(os.Stderr, "%s = %s\n", expr, value)
	}
	if interactive {
		tap(ctx, src.Name, globals)
	}
	return nil
}
