package bytecodes

import (
	"io"
	"strings"

	"github.com/reusee/bf/blocks"
)

// Exec translates, compiles and runs src to completion.
func Exec(src string, in io.Reader, out io.Writer) error {
	b, err := blocks.Translate(src)
	if err != nil {
		return err
	}
	vm := NewVM(Compile("main", b), in, out)
	for _, err := range vm.Run {
		if err != nil {
			return err
		}
	}
	return nil
}

func ExecString(src string, input string) (string, error) {
	buf := new(strings.Builder)
	if err := Exec(src, strings.NewReader(input), buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}
