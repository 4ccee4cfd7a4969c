package stream

import "context"

type optionKey string

const linesOptionKey optionKey = "dispatch_lines"

const defaultLines = 1

type LinesOption struct {
	Value int
}

// WithLines carries a worker count on the context for DispatchWith calls
// that pass lines <= 0.
func WithLines(ctx context.Context, lines int) context.Context {
	return context.WithValue(ctx, linesOptionKey, LinesOption{Value: lines})
}

// LinesFromContext reads the context-carried worker count, falling back to
// defaultValue when unset or non-positive.
func LinesFromContext(ctx context.Context, defaultValue int) int {
	option, ok := ctx.Value(linesOptionKey).(LinesOption)
	if ok && option.Value > 0 {
		return option.Value
	}
	return defaultValue
}
