package postpilot

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"runtime"

	"github.com/fatih/color"
)

// MediaViewer opens a media file with the host's default associated
// application. Failures are non-fatal to the schedule.
type MediaViewer interface {
	Open(ctx context.Context, path string) error
}

// HostMediaViewer shells out to the platform opener (xdg-open, open, or
// "cmd /c start").
type HostMediaViewer struct{}

func NewHostMediaViewer() *HostMediaViewer {
	return &HostMediaViewer{}
}

func (v *HostMediaViewer) Open(ctx context.Context, path string) error {
	if _, err := os.Stat(path); err != nil {
		return fmt.Errorf("cannot preview media: %w", err)
	}
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "darwin":
		cmd = exec.CommandContext(ctx, "open", path)
	case "windows":
		cmd = exec.CommandContext(ctx, "cmd", "/c", "start", "", path)
	default:
		cmd = exec.CommandContext(ctx, "xdg-open", path)
	}
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("cannot preview media: %w", err)
	}
	// Don't hold the schedule on the viewer process.
	go cmd.Wait()
	return nil
}

// NullMediaViewer never opens anything. Used in tests and headless runs.
type NullMediaViewer struct{}

func NewNullMediaViewer() *NullMediaViewer {
	return &NullMediaViewer{}
}

func (v *NullMediaViewer) Open(ctx context.Context, path string) error {
	return nil
}

// RenderPreview writes the scheduling preview for a post to w.
func RenderPreview(w io.Writer, post Post, slot Slot) {
	rule := "══════════════════════════════════════"
	fmt.Fprintln(w)
	color.New(color.Bold).Fprintln(w, "POST SCHEDULER PREVIEW")
	fmt.Fprintln(w, rule)
	fmt.Fprintf(w, "Platform     : %s\n", color.GreenString(post.Platform.String()))
	fmt.Fprintf(w, "Scheduled    : %s\n", slot.ScheduledAt.Format(TimestampLayout))
	fmt.Fprintf(w, "Reminder Set : %s\n", slot.ReminderAt.Format(TimestampLayout))
	fmt.Fprintf(w, "Caption      : %s\n", post.Caption)
	if post.IsVideo() {
		fmt.Fprintln(w, "Video Preview: opening externally...")
	} else {
		fmt.Fprintln(w, "Image Preview: opening...")
	}
	fmt.Fprintln(w, rule)
	fmt.Fprintln(w)
}
