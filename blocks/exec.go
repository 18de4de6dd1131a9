package blocks

import (
	"fmt"
	"io"
	"strings"

	"github.com/reusee/bf/ops"
	"github.com/reusee/bf/tapes"
)

// Exec evaluates b by walking the tree.
// A negative cursor stops evaluation of every enclosing loop, not just the innermost one.
func Exec(b *Block, tape *tapes.Tape, in *tapes.Input, out *tapes.Output) error {
	_, err := exec(b, tape, in, out)
	return err
}

// exec reports whether the program halted.
func exec(b *Block, tape *tapes.Tape, in *tapes.Input, out *tapes.Output) (bool, error) {
	for _, step := range b.Steps {
		switch step.Op {

		case ops.OpIncrement:
			tape.Inc()

		case ops.OpDecrement:
			tape.Dec()

		case ops.OpRight:
			tape.Right()

		case ops.OpLeft:
			if !tape.Left() {
				return true, nil
			}

		case ops.OpOutput:
			if err := out.WriteByte(tape.Cell()); err != nil {
				return true, fmt.Errorf("write output at offset %d: %w", step.Pos, err)
			}

		case ops.OpInput:
			v, err := in.ReadByte()
			if err != nil {
				return true, fmt.Errorf("read input at offset %d: %w", step.Pos, err)
			}
			tape.Set(v)

		case ops.OpLoopStart:
			for tape.Cell() != 0 {
				halted, err := exec(step.Body, tape, in, out)
				if halted || err != nil {
					return true, err
				}
			}

		}
	}
	return false, nil
}

// Run translates src and evaluates it against a fresh tape.
func Run(src string, in io.Reader, out io.Writer) error {
	b, err := Translate(src)
	if err != nil {
		return err
	}
	o := tapes.NewOutput(out)
	if err := Exec(b, tapes.New(), o.Input(in), o); err != nil {
		return err
	}
	return o.Flush()
}

func RunString(src string, input string) (string, error) {
	buf := new(strings.Builder)
	if err := Run(src, strings.NewReader(input), buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}
