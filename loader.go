package postpilot

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadPostFile loads a post request from a YAML file. Missing platform
// defaults to DefaultPlatform; the post is validated before being returned.
func LoadPostFile(path string) (*Post, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read post file: %w", err)
	}
	return LoadPostString(string(data))
}

// LoadPostString loads a post request from a YAML string.
func LoadPostString(data string) (*Post, error) {
	var post Post
	if err := yaml.Unmarshal([]byte(data), &post); err != nil {
		return nil, fmt.Errorf("failed to unmarshal post file: %w", err)
	}
	if post.Platform == "" {
		post.Platform = DefaultPlatform
	}
	if err := post.Validate(); err != nil {
		return nil, err
	}
	return &post, nil
}
