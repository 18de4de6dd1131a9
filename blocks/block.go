package blocks

import (
	"iter"
	"strings"

	"github.com/reusee/bf/ops"
)

// Step is one instruction, or a loop node when Op is ops.OpLoopStart.
type Step struct {
	Op ops.Op
	// Pos is the byte offset in the source; for loop nodes, the offset of '['
	Pos int
	// Body is set for loop nodes only
	Body *Block
}

func (s Step) IsLoop() bool {
	return s.Op == ops.OpLoopStart
}

// Block is a sequence of steps. A loop node repeats its body while the current cell is non-zero,
// testing before every iteration including the first.
type Block struct {
	Steps []Step
}

func (b *Block) add(step Step) {
	b.Steps = append(b.Steps, step)
}

// Len returns the number of steps in b and all nested blocks. A loop node counts as two, for its brackets.
func (b *Block) Len() (n int) {
	for _, step := range b.Steps {
		if step.IsLoop() {
			n += 2 + step.Body.Len()
		} else {
			n++
		}
	}
	return
}

// Depth returns the maximum loop nesting.
func (b *Block) Depth() (depth int) {
	for _, step := range b.Steps {
		if step.IsLoop() {
			depth = max(depth, 1+step.Body.Depth())
		}
	}
	return
}

// String renders b back into instruction text.
func (b *Block) String() string {
	buf := new(strings.Builder)
	b.writeTo(buf)
	return buf.String()
}

func (b *Block) writeTo(buf *strings.Builder) {
	for _, step := range b.Steps {
		if step.IsLoop() {
			buf.WriteByte(byte(ops.OpLoopStart))
			step.Body.writeTo(buf)
			buf.WriteByte(byte(ops.OpLoopEnd))
		} else {
			buf.WriteByte(byte(step.Op))
		}
	}
}

// Walk calls fn for every step in pre-order, with the loop depth of the step.
// Returning false from fn skips the body of a loop node.
func (b *Block) Walk(fn func(step Step, depth int) bool) {
	b.walk(fn, 0)
}

func (b *Block) walk(fn func(Step, int) bool, depth int) {
	for _, step := range b.Steps {
		if !fn(step, depth) {
			continue
		}
		if step.IsLoop() {
			step.Body.walk(fn, depth+1)
		}
	}
}

// Segment is a maximal straight-line sequence of instructions, or a single loop node.
type Segment struct {
	Steps []Step
	Loop  *Step
}

// Segments yields b as alternating straight-line sequences and loop nodes.
func (b *Block) Segments() iter.Seq[Segment] {
	return func(yield func(Segment) bool) {
		start := 0
		for i, step := range b.Steps {
			if !step.IsLoop() {
				continue
			}
			if i > start {
				if !yield(Segment{Steps: b.Steps[start:i]}) {
					return
				}
			}
			if !yield(Segment{Loop: &b.Steps[i]}) {
				return
			}
			start = i + 1
		}
		if start < len(b.Steps) {
			yield(Segment{Steps: b.Steps[start:]})
		}
	}
}
