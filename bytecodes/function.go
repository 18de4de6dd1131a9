package bytecodes

import (
	"fmt"
	"strings"
)

type Function struct {
	Name string
	Code []OpCode
	// Positions holds the source offset of each instruction
	Positions []int
}

// Disassemble lists one instruction per line with its index, jump target and source offset.
func (f *Function) Disassemble() string {
	buf := new(strings.Builder)
	fmt.Fprintf(buf, "; %s: %d instructions\n", f.Name, len(f.Code))
	for ip, inst := range f.Code {
		fmt.Fprintf(buf, "%04d\t%s", ip, inst)
		switch inst.Op() {
		case OpJumpZero, OpJumpNonZero:
			fmt.Fprintf(buf, "\t-> %04d", ip+1+inst.Arg())
		}
		if ip < len(f.Positions) {
			fmt.Fprintf(buf, "\t@%d", f.Positions[ip])
		}
		buf.WriteByte('\n')
	}
	return buf.String()
}
