package interps

import (
	"fmt"
	"io"
	"strings"

	"github.com/reusee/bf/ops"
	"github.com/reusee/bf/tapes"
)

// Interpret executes src directly against a fresh tape.
// Loops are evaluated by re-scanning their body text on every iteration; no jump table is built.
// A cursor moving left of cell zero ends the program normally.
func Interpret(src string, in io.Reader, out io.Writer) error {
	if err := ops.Validate(src); err != nil {
		return err
	}
	o := tapes.NewOutput(out)
	m := &machine{
		src:  src,
		tape: tapes.New(),
		in:   o.Input(in),
		out:  o,
	}
	m.run(false)
	if m.err != nil {
		return m.err
	}
	return m.out.Flush()
}

func InterpretString(src string, input string) (string, error) {
	buf := new(strings.Builder)
	if err := Interpret(src, strings.NewReader(input), buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}

type machine struct {
	src  string
	pc   int
	tape *tapes.Tape
	in   *tapes.Input
	out  *tapes.Output
	err  error
}

func (m *machine) running() bool {
	return m.err == nil &&
		!m.tape.Halted() &&
		m.pc < len(m.src)
}

// run scans forward from pc. On ']' it returns whether the enclosing loop should repeat.
// In skip mode instructions have no effect; it is used to pass over a loop entered with a zero cell.
func (m *machine) run(skip bool) bool {
	for m.running() {
		switch ops.Op(m.src[m.pc]) {

		case ops.OpLoopStart:
			m.pc++
			body := m.pc
			for m.run(m.tape.Cell() == 0) {
				m.pc = body
			}

		case ops.OpLoopEnd:
			return m.tape.Cell() != 0

		default:
			if !skip {
				m.exec(ops.Op(m.src[m.pc]))
			}

		}
		m.pc++
	}
	return false
}

func (m *machine) exec(op ops.Op) {
	switch op {
	case ops.OpIncrement:
		m.tape.Inc()
	case ops.OpDecrement:
		m.tape.Dec()
	case ops.OpRight:
		m.tape.Right()
	case ops.OpLeft:
		m.tape.Left()
	case ops.OpOutput:
		if err := m.out.WriteByte(m.tape.Cell()); err != nil {
			m.err = fmt.Errorf("write output at offset %d: %w", m.pc, err)
		}
	case ops.OpInput:
		b, err := m.in.ReadByte()
		if err != nil {
			m.err = fmt.Errorf("read input at offset %d: %w", m.pc, err)
			return
		}
		m.tape.Set(b)
	}
}
