package tapes

// Tape is a zero-initialized byte tape that grows to the right on demand.
// Each engine invocation owns its own Tape.
type Tape struct {
	Cells []byte
	Pos   int
}

const initialSize = 64

func New() *Tape {
	return &Tape{
		Cells: make([]byte, 0, initialSize),
	}
}

func (t *Tape) grow(pos int) {
	if pos < len(t.Cells) {
		return
	}
	t.Cells = append(t.Cells, make([]byte, pos+1-len(t.Cells))...)
}

// Read returns the cell at pos, zero beyond the current extent.
func (t *Tape) Read(pos int) byte {
	if pos < 0 || pos >= len(t.Cells) {
		return 0
	}
	return t.Cells[pos]
}

func (t *Tape) Write(pos int, v byte) {
	t.grow(pos)
	t.Cells[pos] = v
}

// Increment adds one to the cell at pos, wrapping 255 to 0.
func (t *Tape) Increment(pos int) {
	t.grow(pos)
	t.Cells[pos]++
}

// Decrement subtracts one from the cell at pos, wrapping 0 to 255.
func (t *Tape) Decrement(pos int) {
	t.grow(pos)
	t.Cells[pos]--
}

func (t *Tape) Cell() byte {
	return t.Read(t.Pos)
}

func (t *Tape) Set(v byte) {
	t.Write(t.Pos, v)
}

func (t *Tape) Inc() {
	t.Increment(t.Pos)
}

func (t *Tape) Dec() {
	t.Decrement(t.Pos)
}

func (t *Tape) Right() {
	t.Pos++
	t.grow(t.Pos)
}

// Left moves the cursor one cell to the left.
// It returns false once the cursor is negative, which ends the whole program.
func (t *Tape) Left() bool {
	t.Pos--
	return t.Pos >= 0
}

func (t *Tape) Halted() bool {
	return t.Pos < 0
}

// Len returns the current extent.
func (t *Tape) Len() int {
	return len(t.Cells)
}
