package postpilot

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestExtractHighlights(t *testing.T) {
	t.Run("case insensitive with vocabulary casing", func(t *testing.T) {
		highlights := ExtractHighlights("Our AI drives Growth")
		require.Equal(t, []string{"AI", "growth"}, highlights)
	})

	t.Run("no matches", func(t *testing.T) {
		require.Empty(t, ExtractHighlights("a quiet day at the office"))
		require.Empty(t, ExtractHighlights(""))
	})

	t.Run("duplicates collapsed", func(t *testing.T) {
		highlights := ExtractHighlights("growth growth GROWTH")
		require.Equal(t, []string{"growth"}, highlights)
	})

	t.Run("substring matches count", func(t *testing.T) {
		// "technology" contains no other term, but "customer-centric"
		// contains "customer".
		highlights := ExtractHighlights("customer-centric automation technology")
		require.Equal(t, []string{"automation", "customer", "technology"}, highlights)
	})

	t.Run("idempotent", func(t *testing.T) {
		text := "Innovation, efficiency and automation for every customer"
		require.Equal(t, ExtractHighlights(text), ExtractHighlights(text))
	})
}
