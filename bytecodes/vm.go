package bytecodes

import (
	"encoding/gob"
	"io"

	"github.com/reusee/bf/tapes"
)

type VM struct {
	Fn   *Function
	IP   int
	Tape *tapes.Tape
	// Steps counts executed instructions
	Steps int
	// YieldEvery makes Run yield InterruptYield after that many instructions, if positive
	YieldEvery int

	in  *tapes.Input
	out *tapes.Output
}

func NewVM(fn *Function, in io.Reader, out io.Writer) *VM {
	vm := &VM{
		Fn:   fn,
		Tape: tapes.New(),
	}
	vm.SetIO(in, out)
	return vm
}

// SetIO attaches streams, for example after Restore.
func (v *VM) SetIO(in io.Reader, out io.Writer) {
	v.out = tapes.NewOutput(out)
	v.in = v.out.Input(in)
}

func (v *VM) Done() bool {
	return v.Tape.Halted() ||
		v.IP < 0 ||
		v.IP >= len(v.Fn.Code)
}

// Written returns the number of bytes written since the streams were attached.
func (v *VM) Written() int {
	return v.out.Written()
}

// Snapshot flushes pending output and encodes the function, tape and instruction pointer.
// Streams are not part of a snapshot.
func (v *VM) Snapshot(w io.Writer) error {
	if err := v.out.Flush(); err != nil {
		return err
	}
	return gob.NewEncoder(w).Encode(v)
}

// Restore replaces the state of v with a snapshot. Attached streams are kept.
func (v *VM) Restore(r io.Reader) error {
	var snapshot VM
	if err := gob.NewDecoder(r).Decode(&snapshot); err != nil {
		return err
	}
	v.Fn = snapshot.Fn
	v.IP = snapshot.IP
	v.Tape = snapshot.Tape
	v.Steps = snapshot.Steps
	v.YieldEvery = snapshot.YieldEvery
	if v.Fn == nil {
		v.Fn = new(Function)
	}
	if v.Tape == nil {
		v.Tape = tapes.New()
	}
	if v.out == nil {
		v.SetIO(nil, nil)
	}
	return nil
}
