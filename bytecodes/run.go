package bytecodes

import (
	"fmt"
)

// Run executes until the program ends, the cursor goes negative, an I/O error occurs,
// or yield returns false. It is usable as a range-over-func iterator.
func (v *VM) Run(yield func(*Interrupt, error) bool) {
	code := v.Fn.Code
	tape := v.Tape

	for !v.Done() {
		inst := code[v.IP]
		v.IP++
		v.Steps++

		switch inst & 0xff {

		case OpIncrement:
			tape.Inc()

		case OpDecrement:
			tape.Dec()

		case OpRight:
			tape.Right()

		case OpLeft:
			tape.Left()

		case OpOutput:
			if err := v.out.WriteByte(tape.Cell()); err != nil {
				yield(nil, fmt.Errorf("write output at offset %d: %w", v.pos(), err))
				return
			}

		case OpInput:
			b, err := v.in.ReadByte()
			if err != nil {
				yield(nil, fmt.Errorf("read input at offset %d: %w", v.pos(), err))
				return
			}
			tape.Set(b)

		case OpJumpZero:
			if tape.Cell() == 0 {
				v.IP += inst.Arg()
			}

		case OpJumpNonZero:
			if tape.Cell() != 0 {
				v.IP += inst.Arg()
			}

		default:
			yield(nil, fmt.Errorf("bad instruction %v at %d", inst, v.IP-1))
			return

		}

		if v.YieldEvery > 0 && v.Steps%v.YieldEvery == 0 {
			if err := v.out.Flush(); err != nil {
				yield(nil, err)
				return
			}
			if !yield(InterruptYield, nil) {
				return
			}
		}
	}

	if err := v.out.Flush(); err != nil {
		yield(nil, err)
	}
}

// pos returns the source offset of the instruction just executed.
func (v *VM) pos() int {
	if ip := v.IP - 1; ip >= 0 && ip < len(v.Fn.Positions) {
		return v.Fn.Positions[ip]
	}
	return -1
}
