package postpilot

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/fatih/color"
)

// Publisher performs the actual publish for a platform. The real integration
// would call the platform API; in current scope a console simulation is
// substituted.
type Publisher interface {
	Publish(ctx context.Context, post Post, at time.Time) error
}

// ConsolePublisher simulates publishing by printing a notice.
type ConsolePublisher struct {
	out io.Writer
}

func NewConsolePublisher(out io.Writer) *ConsolePublisher {
	return &ConsolePublisher{out: out}
}

func (p *ConsolePublisher) Publish(ctx context.Context, post Post, at time.Time) error {
	color.New(color.FgGreen, color.Bold).Fprintf(p.out, "Posting to %s at %s\n",
		strings.ToUpper(post.Platform.String()), at.Format(TimestampLayout))
	fmt.Fprintf(p.out, "File used: %s\n", post.MediaPath)
	return nil
}

// PublisherFunc adapts a function to the Publisher interface.
type PublisherFunc func(ctx context.Context, post Post, at time.Time) error

func (f PublisherFunc) Publish(ctx context.Context, post Post, at time.Time) error {
	return f(ctx, post, at)
}
