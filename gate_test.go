package postpilot

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestApproveAllGate(t *testing.T) {
	gate := NewApproveAllGate(slog.New(slog.NewTextHandler(io.Discard, nil)))
	for _, text := range []string{"", "hello", "anything at all, really"} {
		ok, err := gate.IsAppropriate(context.Background(), text)
		require.NoError(t, err)
		require.True(t, ok)
	}
}

func TestGateFunc(t *testing.T) {
	gate := GateFunc(func(ctx context.Context, text string) (bool, error) {
		return text != "spam", nil
	})
	ok, err := gate.IsAppropriate(context.Background(), "spam")
	require.NoError(t, err)
	require.False(t, ok)
}
