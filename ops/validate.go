package ops

import (
	"errors"
	"fmt"
)

var (
	ErrMalformedProgram = errors.New("malformed program")
	ErrUnmatchedOpen    = fmt.Errorf("%w: unmatched [", ErrMalformedProgram)
	ErrUnmatchedClose   = fmt.Errorf("%w: unmatched ]", ErrMalformedProgram)
)

type MalformedError struct {
	Pos int
	Err error
}

func (m *MalformedError) Error() string {
	return fmt.Sprintf("%v at offset %d", m.Err, m.Pos)
}

func (m *MalformedError) Unwrap() error {
	return m.Err
}

// Validate checks bracket nesting.
// For an unmatched '[' the reported position is the innermost one still open at end of input.
func Validate(src string) error {
	var open []int
	for i := 0; i < len(src); i++ {
		switch Op(src[i]) {
		case OpLoopStart:
			open = append(open, i)
		case OpLoopEnd:
			if len(open) == 0 {
				return &MalformedError{
					Pos: i,
					Err: ErrUnmatchedClose,
				}
			}
			open = open[:len(open)-1]
		}
	}
	if len(open) > 0 {
		return &MalformedError{
			Pos: open[len(open)-1],
			Err: ErrUnmatchedOpen,
		}
	}
	return nil
}
