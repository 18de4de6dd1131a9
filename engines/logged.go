package engines

import (
	"context"
	"io"
	"time"

	"github.com/reusee/bf/logs"
	"github.com/reusee/bf/ops"
)

type loggedEngine struct {
	Engine
	logger  logs.Logger
	newSpan logs.NewSpan
}

func (l loggedEngine) Run(ctx context.Context, src string, in io.Reader, out io.Writer) error {
	ctx, _ = l.newSpan(ctx, "engine "+l.Name())
	l.logger.InfoContext(ctx, "run",
		"engine", l.Name(),
		"instructions", ops.Count(src),
	)

	counter := &countingWriter{w: out}
	start := time.Now()
	err := l.Engine.Run(ctx, src, in, counter)
	if err != nil {
		l.logger.ErrorContext(ctx, "run",
			"engine", l.Name(),
			"error", err,
		)
		return logs.WrapSpan(ctx, err)
	}

	l.logger.InfoContext(ctx, "done",
		"engine", l.Name(),
		"written", counter.n,
		"duration", time.Since(start),
	)
	return nil
}

type countingWriter struct {
	w io.Writer
	n int
}

func (c *countingWriter) Write(p []byte) (int, error) {
	if c.w == nil {
		c.n += len(p)
		return len(p), nil
	}
	n, err := c.w.Write(p)
	c.n += n
	return n, err
}
