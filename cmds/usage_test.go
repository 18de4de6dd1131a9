package cmds

import (
	"bytes"
	"strings"
	"testing"
)

func TestUsage(t *testing.T) {
	executor := NewExecutor()
	buf := new(bytes.Buffer)
	executor.Usage = buf
	executor.Define("run", Func(func(string) {}).Desc("run a built-in program"))
	executor.Define("translate", Sub(map[string]*Command{
		"-asm": Func(func() {}).Desc("print bytecode"),
	}).Desc("print generated code"))
	executor.PrintUsage()

	out := buf.String()
	for _, want := range []string{
		"--help, -h, -help, help\tprint this usage\n",
		"run\trun a built-in program\n",
		"translate\tprint generated code\n",
		"  -asm\tprint bytecode\n",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("missing %q in\n%s", want, out)
		}
	}
}

func TestUsageAliases(t *testing.T) {
	executor := NewExecutor()
	buf := new(bytes.Buffer)
	executor.Usage = buf
	executor.Define("interpret", Func(func() {}).Alias("i").Desc("interpret a file"))
	executor.PrintUsage()

	out := buf.String()
	if strings.Count(out, "interpret a file") != 1 {
		t.Fatalf("got\n%s", out)
	}
	if !strings.Contains(out, "i, interpret\tinterpret a file\n") {
		t.Fatalf("got\n%s", out)
	}
	if strings.Count(out, "--help") != 1 {
		t.Fatalf("got\n%s", out)
	}
}
