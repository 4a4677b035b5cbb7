package postpilot

import (
	"fmt"
	"path/filepath"
)

// Platform identifies a social platform a post can target.
type Platform string

const (
	PlatformFacebook  Platform = "facebook"
	PlatformInstagram Platform = "instagram"
	PlatformLinkedIn  Platform = "linkedin"
	PlatformYouTube   Platform = "youtube"
	PlatformTwitter   Platform = "twitter"
)

// DefaultPlatform is used when the user does not pick a platform explicitly.
const DefaultPlatform = PlatformFacebook

// Platforms returns all supported platforms in display order.
func Platforms() []Platform {
	return []Platform{
		PlatformFacebook,
		PlatformInstagram,
		PlatformLinkedIn,
		PlatformYouTube,
		PlatformTwitter,
	}
}

// ParsePlatform converts a string to a Platform.
func ParsePlatform(s string) (Platform, error) {
	for _, p := range Platforms() {
		if string(p) == s {
			return p, nil
		}
	}
	return "", fmt.Errorf("unknown platform %q", s)
}

func (p Platform) String() string {
	return string(p)
}

// Post is a request to publish one piece of media with a caption. It is
// immutable once a schedule starts running.
type Post struct {
	Caption   string   `json:"caption" yaml:"caption"`
	MediaPath string   `json:"media" yaml:"media"`
	Platform  Platform `json:"platform" yaml:"platform"`
}

// MediaName returns the media filename without its directory.
func (p Post) MediaName() string {
	return filepath.Base(p.MediaPath)
}

// IsVideo reports whether the post's media should be treated as video when
// previewing. YouTube posts are always handled as video.
func (p Post) IsVideo() bool {
	if p.Platform == PlatformYouTube {
		return true
	}
	switch filepath.Ext(p.MediaPath) {
	case ".mp4", ".mov", ".webm":
		return true
	}
	return false
}

// Validate checks that all required fields are present. It returns a
// ScheduleError of kind KindValidation on the first missing field.
func (p Post) Validate() error {
	if p.Caption == "" {
		return NewScheduleError(KindValidation, "caption is required")
	}
	if p.MediaPath == "" {
		return NewScheduleError(KindValidation, "media path is required")
	}
	if p.Platform == "" {
		return NewScheduleError(KindValidation, "platform is required")
	}
	if _, err := ParsePlatform(string(p.Platform)); err != nil {
		return NewScheduleError(KindValidation, err.Error())
	}
	return nil
}
