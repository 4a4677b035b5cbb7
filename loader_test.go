package postpilot

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadPostString(t *testing.T) {
	t.Run("complete definition", func(t *testing.T) {
		post, err := LoadPostString(`
caption: Our AI drives growth
media: demo.png
platform: linkedin
`)
		require.NoError(t, err)
		require.Equal(t, "Our AI drives growth", post.Caption)
		require.Equal(t, "demo.png", post.MediaPath)
		require.Equal(t, PlatformLinkedIn, post.Platform)
	})

	t.Run("platform defaults", func(t *testing.T) {
		post, err := LoadPostString(`
caption: hello
media: demo.png
`)
		require.NoError(t, err)
		require.Equal(t, DefaultPlatform, post.Platform)
	})

	t.Run("missing required field", func(t *testing.T) {
		_, err := LoadPostString(`caption: hello`)
		require.Error(t, err)
		require.True(t, IsKind(err, KindValidation))
	})

	t.Run("invalid yaml", func(t *testing.T) {
		_, err := LoadPostString(`caption: [`)
		require.Error(t, err)
	})
}

func TestLoadPostFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "post.yaml")
	require.NoError(t, os.WriteFile(path, []byte("caption: hi\nmedia: a.png\nplatform: twitter\n"), 0644))

	post, err := LoadPostFile(path)
	require.NoError(t, err)
	require.Equal(t, PlatformTwitter, post.Platform)

	_, err = LoadPostFile(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}
