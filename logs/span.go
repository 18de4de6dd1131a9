package logs

import (
	"context"
	"crypto/rand"
	"fmt"
)

// Span identifies one engine run, or any other unit of work, in log records.
type Span string

type spanKey struct{}

var SpanKey spanKey

func SpanFrom(ctx context.Context) (Span, bool) {
	span, ok := ctx.Value(SpanKey).(Span)
	return span, ok
}

// NewSpan starts a named unit of work. The span in ctx, if any, becomes the parent.
type NewSpan func(ctx context.Context, name string) (context.Context, Span)

func (Module) NewSpan(
	logger Logger,
) NewSpan {
	return func(ctx context.Context, name string) (context.Context, Span) {
		args := []any{"name", name}
		if parent, ok := SpanFrom(ctx); ok {
			args = append(args, "parent", parent)
		}
		span := Span(rand.Text()[:12])
		ctx = context.WithValue(ctx, SpanKey, span)
		logger.DebugContext(ctx, "new span", args...)
		return ctx, span
	}
}

// spanError annotates an error with the span it occurred in.
type spanError struct {
	err  error
	span Span
}

func (s *spanError) Error() string {
	return fmt.Sprintf("%v (span %s)", s.err, s.span)
}

func (s *spanError) Unwrap() error {
	return s.err
}

// WrapSpan annotates err with the span in ctx, if any.
func WrapSpan(ctx context.Context, err error) error {
	if err == nil {
		return nil
	}
	span, ok := SpanFrom(ctx)
	if !ok {
		return err
	}
	return &spanError{
		err:  err,
		span: span,
	}
}
