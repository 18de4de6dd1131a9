package gens

import (
	"fmt"
	"go/format"
	"strconv"
	"strings"
	"unicode"

	"github.com/reusee/bf/blocks"
	"github.com/reusee/bf/ops"
)

type Program struct {
	Name   string
	Source string
}

type Options struct {
	Package string
	// Generator is named in the "Code generated" header
	Generator string
	// Register adds an init function calling register(name, fn, source) for each program
	Register bool
}

// Render emits a Go file with one function per program:
//
//	func Name(in io.Reader, out io.Writer) error
//
// Each step becomes one statement and each loop node a for loop testing the current cell.
// A '<' that moves the cursor below zero returns from the function, ending the whole program.
func Render(opts Options, progs ...Program) ([]byte, error) {
	if opts.Package == "" {
		opts.Package = "main"
	}
	if opts.Generator == "" {
		opts.Generator = "bfgen"
	}

	buf := new(strings.Builder)
	fmt.Fprintf(buf, "// Code generated by %s. DO NOT EDIT.\n\n", opts.Generator)
	fmt.Fprintf(buf, "package %s\n\n", opts.Package)
	buf.WriteString("import (\n\t\"io\"\n\n\t\"github.com/reusee/bf/tapes\"\n)\n")

	seen := make(map[string]bool)
	for _, prog := range progs {
		name := FuncName(prog.Name)
		if seen[name] {
			return nil, fmt.Errorf("duplicated function name %s", name)
		}
		seen[name] = true
		b, err := blocks.Translate(prog.Source)
		if err != nil {
			return nil, fmt.Errorf("translate %s: %w", prog.Name, err)
		}
		renderFunc(buf, name, prog.Name, b)
	}

	if opts.Register && len(progs) > 0 {
		buf.WriteString("\nfunc init() {\n")
		for _, prog := range progs {
			fmt.Fprintf(buf, "\tregister(%s, %s, %s)\n",
				strconv.Quote(prog.Name),
				FuncName(prog.Name),
				strconv.Quote(ops.Strip(prog.Source)),
			)
		}
		buf.WriteString("}\n")
	}

	src, err := format.Source([]byte(buf.String()))
	if err != nil {
		return nil, fmt.Errorf("format generated code: %w", err)
	}
	return src, nil
}

func renderFunc(buf *strings.Builder, funcName string, progName string, b *blocks.Block) {
	usesInput := false
	b.Walk(func(step blocks.Step, _ int) bool {
		if step.Op == ops.OpInput {
			usesInput = true
		}
		return true
	})

	fmt.Fprintf(buf, "\n// %s runs the %s program.\n", funcName, progName)
	fmt.Fprintf(buf, "func %s(in io.Reader, out io.Writer) error {\n", funcName)
	if len(b.Steps) > 0 {
		buf.WriteString("\tt := tapes.New()\n")
	}
	buf.WriteString("\to := tapes.NewOutput(out)\n")
	if usesInput {
		buf.WriteString("\ti := o.Input(in)\n")
	}
	renderBlock(buf, b, 1)
	buf.WriteString("\treturn o.Flush()\n")
	buf.WriteString("}\n")
}

func renderBlock(buf *strings.Builder, b *blocks.Block, depth int) {
	indent := strings.Repeat("\t", depth)
	line := func(s string) {
		buf.WriteString(indent)
		buf.WriteString(s)
		buf.WriteByte('\n')
	}

	for seg := range b.Segments() {
		if seg.Loop != nil {
			line("for t.Cell() != 0 {")
			renderBlock(buf, seg.Loop.Body, depth+1)
			line("}")
			continue
		}
		for _, step := range seg.Steps {
			switch step.Op {
			case ops.OpIncrement:
				line("t.Inc()")
			case ops.OpDecrement:
				line("t.Dec()")
			case ops.OpRight:
				line("t.Right()")
			case ops.OpLeft:
				line("if !t.Left() {")
				line("\treturn o.Flush()")
				line("}")
			case ops.OpOutput:
				line("if err := o.WriteCell(t); err != nil {")
				line("\treturn err")
				line("}")
			case ops.OpInput:
				line("if err := i.ReadCell(t); err != nil {")
				line("\treturn err")
				line("}")
			}
		}
	}
}

// FuncName converts a program name like "rot13" or "hello-world" to an exported Go identifier.
func FuncName(name string) string {
	buf := new(strings.Builder)
	upper := true
	for _, r := range name {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			upper = true
			continue
		}
		if upper {
			r = unicode.ToUpper(r)
			upper = false
		}
		buf.WriteRune(r)
	}
	ret := buf.String()
	if ret == "" || !unicode.IsLetter(rune(ret[0])) {
		ret = "P" + ret
	}
	return ret
}
