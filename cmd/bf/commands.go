package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/reusee/bf/blocks"
	"github.com/reusee/bf/bytecodes"
	"github.com/reusee/bf/cmds"
	"github.com/reusee/bf/gens"
	"github.com/reusee/bf/natives"
	"github.com/reusee/bf/sources"
	"github.com/reusee/dscope"
)

var (
	asmFlag   = cmds.Switch("-asm", "translate to bytecode instead of Go")
	evalExprs = cmds.Collect[string]("-eval", "evaluate a starlark expression over the final tape, may repeat, runs on the vm engine")
)

func init() {
	cmds.Define("run", cmds.Func(func(name string) {
		setAction(func(ctx context.Context, scope dscope.Scope) error {
			return withLoader(scope, func(loader sources.Loader) (sources.Source, error) {
				return loader.Builtin(name)
			}, func(src sources.Source) error {
				return runSource(ctx, scope, src)
			})
		})
	}).Desc("run a built-in program, reading stdin and writing stdout"))

	cmds.Define("interpret", cmds.Func(func(path *string) {
		if path == nil {
			setAction(interpretStdin)
			return
		}
		setAction(func(ctx context.Context, scope dscope.Scope) error {
			return withLoader(scope, func(loader sources.Loader) (sources.Source, error) {
				return loader.FromFile(*path)
			}, func(src sources.Source) error {
				return runSource(ctx, scope, src)
			})
		})
	}).Desc("interpret a program file, or the program on stdin if no file given").Alias("i"))

	cmds.Define("-url", cmds.Func(func(url string) {
		setAction(func(ctx context.Context, scope dscope.Scope) error {
			return withLoader(scope, func(loader sources.Loader) (sources.Source, error) {
				return loader.FromURL(ctx, url)
			}, func(src sources.Source) error {
				return runSource(ctx, scope, src)
			})
		})
	}).Desc("fetch a program and interpret it"))

	cmds.Define("translate", cmds.Func(func(path string) {
		setAction(func(ctx context.Context, scope dscope.Scope) error {
			return withLoader(scope, func(loader sources.Loader) (sources.Source, error) {
				return loader.FromFile(path)
			}, func(src sources.Source) error {
				return translate(src)
			})
		})
	}).Desc("print the program as Go source, or as bytecode with -asm"))

	cmds.Define("list", cmds.Func(func() {
		setAction(list)
	}).Desc("list built-in programs"))

	cmds.Define("repl", cmds.Func(func() {
		setAction(runREPL)
	}).Desc("run one program per line"))
}

func withLoader(
	scope dscope.Scope,
	load func(sources.Loader) (sources.Source, error),
	fn func(sources.Source) error,
) (err error) {
	scope.Call(func(
		loader sources.Loader,
	) {
		var src sources.Source
		src, err = load(loader)
		if err != nil {
			return
		}
		err = fn(src)
	})
	return
}

func interpretStdin(ctx context.Context, scope dscope.Scope) error {
	return withLoader(scope, func(loader sources.Loader) (sources.Source, error) {
		return loader.FromReader("stdin", os.Stdin)
	}, func(src sources.Source) error {
		// stdin carried the program, so the program reads nothing
		return runSourceIO(ctx, scope, src, nil, os.Stdout)
	})
}

func translate(src sources.Source) error {
	name := strings.TrimSuffix(filepath.Base(src.Name), filepath.Ext(src.Name))
	if *asmFlag {
		b, err := blocks.Translate(src.Text)
		if err != nil {
			return err
		}
		_, err = fmt.Print(bytecodes.Compile(name, b).Disassemble())
		return err
	}
	code, err := gens.Render(gens.Options{}, gens.Program{
		Name:   name,
		Source: src.Text,
	})
	if err != nil {
		return err
	}
	_, err = os.Stdout.Write(code)
	return err
}

func list(ctx context.Context, scope dscope.Scope) (err error) {
	scope.Call(func(
		loader sources.Loader,
	) {
		var names []string
		names, err = loader.Names()
		if err != nil {
			return
		}
		for _, name := range names {
			if _, ok := natives.Lookup(name); ok {
				fmt.Printf("%s\tnative\n", name)
			} else {
				fmt.Println(name)
			}
		}
	})
	return
}
