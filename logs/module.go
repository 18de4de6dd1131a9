package logs

import (
	"io"
	"os"

	"github.com/reusee/dscope"
)

type Module struct {
	dscope.Module
}

// Writer receives text records. Program output goes to stdout, so logs never do.
type Writer io.Writer

func (Module) Writer() Writer {
	return os.Stderr
}
