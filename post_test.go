package postpilot

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParsePlatform(t *testing.T) {
	for _, p := range Platforms() {
		parsed, err := ParsePlatform(p.String())
		require.NoError(t, err)
		require.Equal(t, p, parsed)
	}

	_, err := ParsePlatform("myspace")
	require.Error(t, err)
	_, err = ParsePlatform("Facebook")
	require.Error(t, err, "platforms are lowercase")
}

func TestPostMediaName(t *testing.T) {
	require.Equal(t, "demo.png", Post{MediaPath: "/tmp/uploads/demo.png"}.MediaName())
	require.Equal(t, "demo.png", Post{MediaPath: "demo.png"}.MediaName())
}

func TestPostIsVideo(t *testing.T) {
	require.True(t, Post{MediaPath: "clip.mp4", Platform: PlatformFacebook}.IsVideo())
	require.True(t, Post{MediaPath: "still.png", Platform: PlatformYouTube}.IsVideo())
	require.False(t, Post{MediaPath: "still.png", Platform: PlatformFacebook}.IsVideo())
}

func TestPostValidate(t *testing.T) {
	valid := Post{Caption: "hi", MediaPath: "a.png", Platform: PlatformTwitter}
	require.NoError(t, valid.Validate())

	err := Post{MediaPath: "a.png", Platform: PlatformTwitter}.Validate()
	require.True(t, IsKind(err, KindValidation))
}
