package bytecodes

import "fmt"

// OpCode packs the operation in the low 8 bits and a signed argument in the rest.
type OpCode uint32

const (
	OpIncrement OpCode = iota + 1
	OpDecrement
	OpRight
	OpLeft
	OpOutput
	OpInput
	// OpJumpZero jumps forward past the loop when the current cell is zero
	OpJumpZero
	// OpJumpNonZero jumps back to the loop body when the current cell is not zero
	OpJumpNonZero
)

func (o OpCode) With(arg int) OpCode {
	return o | (OpCode(arg) << 8)
}

func (o OpCode) Op() OpCode {
	return o & 0xff
}

func (o OpCode) Arg() int {
	return int(int32(o) >> 8)
}

var opNames = map[OpCode]string{
	OpIncrement:   "inc",
	OpDecrement:   "dec",
	OpRight:       "right",
	OpLeft:        "left",
	OpOutput:      "out",
	OpInput:       "in",
	OpJumpZero:    "jz",
	OpJumpNonZero: "jnz",
}

func (o OpCode) String() string {
	name, ok := opNames[o.Op()]
	if !ok {
		return fmt.Sprintf("op(%d)", uint32(o.Op()))
	}
	switch o.Op() {
	case OpJumpZero, OpJumpNonZero:
		return fmt.Sprintf("%s %+d", name, o.Arg())
	}
	return name
}
