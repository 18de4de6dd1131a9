package main

import (
	"cmp"
	"fmt"
	"os"

	"github.com/reusee/bf/cmds"
	"github.com/reusee/bf/gens"
	"github.com/reusee/bf/programs"
	"github.com/reusee/e5"
)

var (
	dirArg      = cmds.Var[string]("-dir", "directory of .bf files, default .")
	pkgArg      = cmds.Var[string]("-pkg", "package name, default main")
	outArg      = cmds.Var[string]("-out", "output file, default stdout")
	registerArg = cmds.Switch("-register", "register each program with an init function")
)

var wrap = e5.Wrap.With(e5.WrapStacktrace)

func main() {
	if err := cmds.Execute(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "bfgen: %v\n", err)
		os.Exit(2)
	}
	if err := generate(); err != nil {
		fmt.Fprintf(os.Stderr, "bfgen: %v\n", err)
		os.Exit(1)
	}
}

func generate() error {
	store := programs.New(os.DirFS(cmp.Or(*dirArg, ".")))
	names, err := store.Names()
	if err != nil {
		return wrap(err)
	}
	if len(names) == 0 {
		return fmt.Errorf("no .bf files in %s", cmp.Or(*dirArg, "."))
	}

	var progs []gens.Program
	for _, name := range names {
		src, err := store.Get(name)
		if err != nil {
			return wrap(err)
		}
		progs = append(progs, gens.Program{
			Name:   name,
			Source: src,
		})
	}

	content, err := gens.Render(gens.Options{
		Package:  cmp.Or(*pkgArg, "main"),
		Register: *registerArg,
	}, progs...)
	if err != nil {
		return err
	}

	if *outArg == "" {
		_, err = os.Stdout.Write(content)
		return err
	}
	if err := os.WriteFile(*outArg, content, 0644); err != nil {
		return wrap(err)
	}
	return nil
}
