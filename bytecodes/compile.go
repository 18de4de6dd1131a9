package bytecodes

import (
	"github.com/reusee/bf/blocks"
	"github.com/reusee/bf/ops"
)

type compiler struct {
	code      []OpCode
	positions []int
}

var simpleOps = map[ops.Op]OpCode{
	ops.OpIncrement: OpIncrement,
	ops.OpDecrement: OpDecrement,
	ops.OpRight:     OpRight,
	ops.OpLeft:      OpLeft,
	ops.OpOutput:    OpOutput,
	ops.OpInput:     OpInput,
}

// Compile lowers a translated program to bytecode, one instruction per step.
// A loop node becomes a forward jz before its body and a backward jnz after it.
func Compile(name string, b *blocks.Block) *Function {
	c := new(compiler)
	c.compileBlock(b)
	return &Function{
		Name:      name,
		Code:      c.code,
		Positions: c.positions,
	}
}

func (c *compiler) emit(op OpCode, pos int) int {
	c.code = append(c.code, op)
	c.positions = append(c.positions, pos)
	return len(c.code) - 1
}

func (c *compiler) currentIP() int {
	return len(c.code)
}

func (c *compiler) patchJump(ip int, target int) {
	offset := target - ip - 1
	op := c.code[ip].Op()
	c.code[ip] = op.With(offset)
}

func (c *compiler) compileBlock(b *blocks.Block) {
	for _, step := range b.Steps {
		if !step.IsLoop() {
			c.emit(simpleOps[step.Op], step.Pos)
			continue
		}
		enter := c.emit(OpJumpZero, step.Pos)
		c.compileBlock(step.Body)
		leave := c.emit(OpJumpNonZero, step.Pos)
		c.patchJump(enter, c.currentIP())
		c.patchJump(leave, enter+1)
	}
}
