package postpilot

import (
	"context"
	"log/slog"
)

// ContentGate decides whether caption text is appropriate to publish. A real
// moderation backend can be substituted without touching the schedule.
type ContentGate interface {
	// IsAppropriate reports whether the text may be published.
	IsAppropriate(ctx context.Context, text string) (bool, error)
}

// ApproveAllGate is a placeholder ContentGate that approves everything,
// standing in for a moderation integration that is currently disabled.
type ApproveAllGate struct {
	logger *slog.Logger
}

func NewApproveAllGate(logger *slog.Logger) *ApproveAllGate {
	if logger == nil {
		logger = slog.Default()
	}
	return &ApproveAllGate{logger: logger}
}

func (g *ApproveAllGate) IsAppropriate(ctx context.Context, text string) (bool, error) {
	g.logger.Warn("skipping content check (moderation backend disabled)")
	return true, nil
}

// GateFunc adapts a function to the ContentGate interface.
type GateFunc func(ctx context.Context, text string) (bool, error)

func (f GateFunc) IsAppropriate(ctx context.Context, text string) (bool, error) {
	return f(ctx, text)
}
