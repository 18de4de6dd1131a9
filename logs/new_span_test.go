package logs

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"

	"github.com/reusee/dscope"
)

func TestNewSpan(t *testing.T) {
	withLevel(t, slog.LevelDebug)
	buf := new(bytes.Buffer)
	dscope.New(new(Module)).Fork(
		func() Writer {
			return buf
		},
	).Call(func(
		newSpan NewSpan,
	) {
		ctx := context.Background()
		ctx1, span1 := newSpan(ctx, "run")
		_, span2 := newSpan(ctx1, "fetch")
		if span1 == span2 || len(span1) != 12 {
			t.Fatalf("got %s %s", span1, span2)
		}

		var lines []string
		for line := range strings.Lines(buf.String()) {
			if strings.Contains(line, "new span") {
				lines = append(lines, line)
			}
		}
		if len(lines) != 2 {
			t.Fatalf("got %q", buf.String())
		}
		if !strings.Contains(lines[0], "name=run") ||
			!strings.Contains(lines[0], "logs.span="+string(span1)) ||
			strings.Contains(lines[0], "parent=") {
			t.Fatalf("got %v", lines[0])
		}
		if !strings.Contains(lines[1], "name=fetch") ||
			!strings.Contains(lines[1], "parent="+string(span1)) ||
			!strings.Contains(lines[1], "logs.span="+string(span2)) {
			t.Fatalf("got %v", lines[1])
		}
	})
}
