package tapes

import (
	"bufio"
	"errors"
	"io"
)

// EOF is the cell value stored by ',' once input is exhausted.
const EOF byte = 255

type Input struct {
	r io.ByteReader
	// buffered is the reader that may block once it runs empty
	buffered *bufio.Reader
	// out is flushed before blocking and on read errors
	out   *Output
	atEOF bool
}

func NewInput(r io.Reader) *Input {
	if r == nil {
		return &Input{
			atEOF: true,
		}
	}
	if br, ok := r.(*bufio.Reader); ok {
		return &Input{
			r:        br,
			buffered: br,
		}
	}
	if br, ok := r.(io.ByteReader); ok {
		// in-memory readers never block
		return &Input{
			r: br,
		}
	}
	br := bufio.NewReader(r)
	return &Input{
		r:        br,
		buffered: br,
	}
}

// ReadByte returns the next input byte, or EOF with a nil error when input is exhausted.
func (i *Input) ReadByte() (byte, error) {
	if i.atEOF {
		return EOF, nil
	}
	if i.out != nil && i.buffered != nil && i.buffered.Buffered() == 0 {
		// an interactive peer sees prompts before it is asked for input
		if err := i.out.Flush(); err != nil {
			return 0, err
		}
	}
	b, err := i.r.ReadByte()
	if errors.Is(err, io.EOF) {
		i.atEOF = true
		return EOF, nil
	}
	if err != nil {
		if i.out != nil {
			// keep what was written before the failure
			i.out.Flush()
		}
		return 0, err
	}
	return b, nil
}

type Output struct {
	w *bufio.Writer
	n int
}

func NewOutput(w io.Writer) *Output {
	if w == nil {
		w = io.Discard
	}
	return &Output{
		w: bufio.NewWriter(w),
	}
}

func (o *Output) WriteByte(b byte) error {
	if err := o.w.WriteByte(b); err != nil {
		return err
	}
	o.n++
	return nil
}

// Input returns an Input over r that flushes o before waiting on r and when reading r fails.
func (o *Output) Input(r io.Reader) *Input {
	i := NewInput(r)
	i.out = o
	return i
}

func (o *Output) Flush() error {
	return o.w.Flush()
}

// Written returns the number of bytes written so far.
func (o *Output) Written() int {
	return o.n
}

// ReadCell stores the next input byte in the current cell.
func (i *Input) ReadCell(t *Tape) error {
	b, err := i.ReadByte()
	if err != nil {
		return err
	}
	t.Set(b)
	return nil
}

// WriteCell writes the current cell.
func (o *Output) WriteCell(t *Tape) error {
	return o.WriteByte(t.Cell())
}
