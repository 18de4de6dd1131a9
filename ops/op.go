package ops

type Op byte

const (
	OpIncrement Op = '+'
	OpDecrement Op = '-'
	OpRight     Op = '>'
	OpLeft      Op = '<'
	OpOutput    Op = '.'
	OpInput     Op = ','
	OpLoopStart Op = '['
	OpLoopEnd   Op = ']'
)

// Parse reports whether c is one of the eight instructions.
func Parse(c byte) (Op, bool) {
	switch op := Op(c); op {
	case OpIncrement, OpDecrement,
		OpRight, OpLeft,
		OpOutput, OpInput,
		OpLoopStart, OpLoopEnd:
		return op, true
	}
	return 0, false
}

func (o Op) String() string {
	if _, ok := Parse(byte(o)); !ok {
		return "?"
	}
	return string(rune(o))
}

func (o Op) IsBracket() bool {
	return o == OpLoopStart || o == OpLoopEnd
}

// Strip returns src with every non-instruction byte removed.
func Strip(src string) string {
	buf := make([]byte, 0, len(src))
	for i := 0; i < len(src); i++ {
		if _, ok := Parse(src[i]); ok {
			buf = append(buf, src[i])
		}
	}
	return string(buf)
}

// Count returns the number of instructions in src.
func Count(src string) (n int) {
	for i := 0; i < len(src); i++ {
		if _, ok := Parse(src[i]); ok {
			n++
		}
	}
	return
}
