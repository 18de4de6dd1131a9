package blocks

import (
	"github.com/reusee/bf/ops"
)

// Translate groups src into a tree of blocks in one left-to-right scan.
// Every instruction becomes exactly one step; nothing is merged or removed.
func Translate(src string) (*Block, error) {
	type frame struct {
		block *Block
		pos   int
	}
	stack := []frame{
		{block: new(Block)},
	}

	for pos := 0; pos < len(src); pos++ {
		op, ok := ops.Parse(src[pos])
		if !ok {
			continue
		}
		top := stack[len(stack)-1]

		switch op {

		case ops.OpLoopStart:
			stack = append(stack, frame{
				block: new(Block),
				pos:   pos,
			})

		case ops.OpLoopEnd:
			if len(stack) == 1 {
				return nil, &ops.MalformedError{
					Pos: pos,
					Err: ops.ErrUnmatchedClose,
				}
			}
			stack = stack[:len(stack)-1]
			stack[len(stack)-1].block.add(Step{
				Op:   ops.OpLoopStart,
				Pos:  top.pos,
				Body: top.block,
			})

		default:
			top.block.add(Step{
				Op:  op,
				Pos: pos,
			})

		}
	}

	if len(stack) > 1 {
		return nil, &ops.MalformedError{
			Pos: stack[len(stack)-1].pos,
			Err: ops.ErrUnmatchedOpen,
		}
	}
	return stack[0].block, nil
}
