package cmds

import (
	"errors"
	"strings"
	"testing"
)

func TestExecutor(t *testing.T) {
	executor := NewExecutor()

	var engine string
	var size int
	executor.Define("-vm", Func(func() {
		engine = "vm"
	}))
	executor.Define("-engine", Func(func(name string) {
		engine = name
	}))
	executor.Define("-size", Func(func(n int) {
		size = n
	}))

	if err := executor.Execute([]string{"-vm"}); err != nil {
		t.Fatal(err)
	}
	if engine != "vm" {
		t.Fatalf("got %q", engine)
	}

	if err := executor.Execute([]string{"-engine", "tree", "-size", "30000"}); err != nil {
		t.Fatal(err)
	}
	if engine != "tree" {
		t.Fatalf("got %q", engine)
	}
	if size != 30000 {
		t.Fatalf("got %d", size)
	}

	err := executor.Execute([]string{"foo"})
	if !errors.Is(err, ErrUnknownCommand) {
		t.Fatalf("got %v", err)
	}
	if !strings.Contains(err.Error(), "unknown command: foo") {
		t.Fatalf("got %v", err)
	}

	err = executor.Execute([]string{"-size", "x"})
	if err == nil || !strings.Contains(err.Error(), "convert x to int") {
		t.Fatalf("got %v", err)
	}

	err = executor.Execute([]string{"-engine"})
	if err == nil || !strings.Contains(err.Error(), "expecting argument") {
		t.Fatalf("got %v", err)
	}
}

func TestCommandError(t *testing.T) {
	executor := NewExecutor()
	errBad := errors.New("bad")
	executor.Define("fail", Func(func() error {
		return errBad
	}))
	executor.Define("ok", Func(func() error {
		return nil
	}))
	if err := executor.Execute([]string{"ok"}); err != nil {
		t.Fatal(err)
	}
	if err := executor.Execute([]string{"fail"}); !errors.Is(err, errBad) {
		t.Fatalf("got %v", err)
	}
}

func TestSubCommands(t *testing.T) {
	executor := NewExecutor()
	var asm bool
	var file string
	executor.Define("translate", Sub(map[string]*Command{
		"-asm": Func(func() {
			asm = true
		}),
		"-file": Func(func(path string) {
			file = path
		}),
	}))

	if err := executor.Execute([]string{
		"translate",
		"-asm",
		"-file", "hello.bf",
	}); err != nil {
		t.Fatal(err)
	}
	if !asm {
		t.Fatal()
	}
	if file != "hello.bf" {
		t.Fatalf("got %q", file)
	}

	// sub commands are not visible at top level
	if err := NewExecutor().Execute([]string{"-asm"}); !errors.Is(err, ErrUnknownCommand) {
		t.Fatalf("got %v", err)
	}
}

func TestDuplicatedSubCommand(t *testing.T) {
	executor := NewExecutor()
	executor.Define("foo", Sub(map[string]*Command{
		"a": nil,
	}))
	executor.Define("bar", Sub(map[string]*Command{
		"a": nil,
	}))
	err := executor.Execute([]string{"foo", "bar"})
	if err == nil || !strings.Contains(err.Error(), "duplicated sub command: bar a") {
		t.Fatalf("got %v", err)
	}
}

func TestDuplicatedCommand(t *testing.T) {
	executor := NewExecutor()
	executor.Define("run", Func(func() {}).Alias("r"))
	func() {
		defer func() {
			if recover() == nil {
				t.Fatal("should panic")
			}
		}()
		executor.Define("r", Func(func() {}))
	}()
}

func TestOptionalArgument(t *testing.T) {
	executor := NewExecutor()
	var path *string
	executor.Define("interpret", Func(func(arg *string) {
		path = arg
	}))
	verbose := false
	executor.Define("-v", Func(func() {
		verbose = true
	}))

	if err := executor.Execute([]string{"interpret", "prog.bf"}); err != nil {
		t.Fatal(err)
	}
	if path == nil || *path != "prog.bf" {
		t.Fatalf("got %v", path)
	}

	if err := executor.Execute([]string{"interpret"}); err != nil {
		t.Fatal(err)
	}
	if path != nil {
		t.Fatalf("got %q", *path)
	}

	// a command name is not taken as the optional argument
	if err := executor.Execute([]string{"interpret", "-v"}); err != nil {
		t.Fatal(err)
	}
	if path != nil {
		t.Fatalf("got %q", *path)
	}
	if !verbose {
		t.Fatal("-v not executed")
	}
}
