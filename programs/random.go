package programs

import (
	"math/rand/v2"
	"strings"
)

// Random generates a well-formed program that always terminates.
// Every loop decrements its own cell once per iteration and only touches cells to its right,
// so it runs at most 255 times. The cursor never moves left of where the program starts.
func Random(rnd *rand.Rand, maxDepth int) string {
	buf := new(strings.Builder)
	randomBlock(buf, rnd, 0, maxDepth)
	return buf.String()
}

func randomBlock(buf *strings.Builder, rnd *rand.Rand, depth, maxDepth int) {
	for range rnd.IntN(8) {
		switch n := rnd.IntN(10); {
		case n < 3:
			buf.WriteByte('+')
		case n < 5:
			buf.WriteByte('-')
		case n < 6:
			buf.WriteByte('.')
		case n < 7:
			buf.WriteByte(',')
		case depth >= maxDepth:
			buf.WriteByte('+')
		case n < 8:
			buf.WriteByte('>')
			randomBlock(buf, rnd, depth+1, maxDepth)
			buf.WriteByte('<')
		default:
			buf.WriteString("[->")
			randomBlock(buf, rnd, depth+1, maxDepth)
			buf.WriteString("<]")
		}
	}
}
