package ledger

import (
	"context"
	"io"
	"log/slog"
	"time"
)

// MutationEvent captures lightweight telemetry for one store mutation.
type MutationEvent struct {
	Op        string
	Duration  time.Duration
	Success   bool
	Err       error
	Fields    map[string]any
	StartedAt time.Time
}

// MutationObserver receives an event after every store mutation, successful
// or not. Implementations must not block; they run on the mutating goroutine.
type MutationObserver interface {
	ObserveMutation(ctx context.Context, event MutationEvent)
}

// NoopMutationObserver ignores all events.
type NoopMutationObserver struct{}

func (NoopMutationObserver) ObserveMutation(context.Context, MutationEvent) {}

// NewLogMutationObserver returns an observer that writes one slog line per
// mutation to w. Failed mutations log at warn level.
func NewLogMutationObserver(w io.Writer) MutationObserver {
	if w == nil {
		return NoopMutationObserver{}
	}
	return &logMutationObserver{
		logger: slog.New(slog.NewTextHandler(w, nil)),
	}
}

type logMutationObserver struct {
	logger *slog.Logger
}

func (o *logMutationObserver) ObserveMutation(ctx context.Context, event MutationEvent) {
	attrs := []slog.Attr{
		slog.String("op", event.Op),
		slog.Int64("duration_ms", event.Duration.Milliseconds()),
	}
	for k, v := range event.Fields {
		attrs = append(attrs, slog.Any(k, v))
	}

	level := slog.LevelInfo
	if !event.Success {
		level = slog.LevelWarn
		attrs = append(attrs, slog.String("error", event.Err.Error()))
	}

	o.logger.LogAttrs(ctx, level, "mutation", attrs...)
}
