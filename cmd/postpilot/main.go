package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/fatih/color"

	"github.com/postpilot-io/postpilot"
	"github.com/postpilot-io/postpilot/config"
)

type cliOptions struct {
	PostFile    string
	Caption     string
	Media       string
	Platform    string
	ShowHistory bool
	Suggest     string
	Timeout     time.Duration
	Verbose     bool
	JSON        bool
}

func main() {
	opts := parseFlags()

	cfg, err := config.Load()
	if err != nil {
		color.Red("Error: %v", err)
		os.Exit(1)
	}
	if opts.Verbose {
		cfg.Verbose = true
	}

	logger := setupLogger(cfg.Verbose, opts.JSON)

	history, closeHistory, err := openHistory(cfg)
	if err != nil {
		color.Red("Error: %v", err)
		os.Exit(1)
	}
	defer closeHistory()

	if opts.ShowHistory {
		showHistory(history)
		return
	}

	if opts.Suggest != "" {
		for _, s := range postpilot.SuggestCaptions(opts.Suggest) {
			fmt.Println(s)
		}
		return
	}

	post, err := collectPost(opts, cfg)
	if err != nil {
		color.Red("Error: %v", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if opts.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, opts.Timeout)
		defer cancel()
	}

	schedule, err := postpilot.NewSchedule(postpilot.ScheduleOptions{
		Post:      *post,
		History:   history,
		Logger:    logger,
		SlotHours: cfg.SlotHours,
		Callbacks: statusPrinter(cfg.Verbose),
	})
	if err != nil {
		color.Red("Error: %v", err)
		os.Exit(1)
	}

	results := make(chan *postpilot.Result, 1)
	scheduler := postpilot.NewScheduler(postpilot.SchedulerOptions{
		Capacity: cfg.MaxConcurrent,
		OnDone: func(_ *postpilot.Schedule, result *postpilot.Result, _ error) {
			results <- result
		},
	})
	if err := scheduler.Submit(ctx, schedule); err != nil {
		color.Red("Error: %v", err)
		os.Exit(1)
	}
	color.Blue("Schedule started (ID: %s)", schedule.ID())

	result := <-results
	scheduler.Wait()
	os.Exit(reportResult(result))
}

func parseFlags() *cliOptions {
	opts := &cliOptions{}

	flag.StringVar(&opts.PostFile, "file", "", "Path to a YAML post definition")
	flag.StringVar(&opts.PostFile, "f", "", "Path to a YAML post definition (shorthand)")
	flag.StringVar(&opts.Caption, "caption", "", "Caption text for the post")
	flag.StringVar(&opts.Media, "media", "", "Path to the image or video to post")
	flag.StringVar(&opts.Platform, "platform", "", "Target platform (facebook, instagram, linkedin, youtube, twitter)")
	flag.BoolVar(&opts.ShowHistory, "show-history", false, "Print the post history and exit")
	flag.StringVar(&opts.Suggest, "suggest", "", "Print caption suggestions for a media file and exit")
	flag.DurationVar(&opts.Timeout, "timeout", 0, "Abort the schedule after this duration (e.g. 30m)")
	flag.BoolVar(&opts.Verbose, "verbose", false, "Enable verbose logging")
	flag.BoolVar(&opts.Verbose, "v", false, "Enable verbose logging (shorthand)")
	flag.BoolVar(&opts.JSON, "json", false, "Log in JSON format")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, `postpilot - schedule a social media post for the next best slot

Usage: %s [options]

With no -file/-caption/-media flags, an interactive form collects the post.

Examples:
  # Interactive form
  %s

  # One-shot
  %s -caption "Our AI drives growth" -media demo.png -platform facebook

  # From a YAML definition
  %s -file post.yaml

Options:
`, os.Args[0], os.Args[0], os.Args[0], os.Args[0])
		flag.PrintDefaults()
	}

	flag.Parse()
	return opts
}

func setupLogger(verbose, json bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelInfo
	}
	if json {
		return postpilot.NewJSONLogger(level)
	}
	return postpilot.NewLogger(level)
}

func openHistory(cfg *config.Config) (postpilot.PostLog, func(), error) {
	switch cfg.HistoryBackend {
	case "sqlite":
		log, err := postpilot.NewSQLitePostLog(cfg.HistoryPath)
		if err != nil {
			return nil, nil, err
		}
		return log, func() { log.Close() }, nil
	case "postgres":
		log, err := postpilot.NewPostgresPostLog(cfg.PostgresURL)
		if err != nil {
			return nil, nil, err
		}
		return log, func() { log.Close() }, nil
	case "memory":
		return postpilot.NewMemoryPostLog(), func() {}, nil
	default:
		return postpilot.NewCSVPostLog(cfg.HistoryPath), func() {}, nil
	}
}

// collectPost builds the post from a YAML file, flags, or the interactive
// form, in that order of preference.
func collectPost(opts *cliOptions, cfg *config.Config) (*postpilot.Post, error) {
	if opts.PostFile != "" {
		return postpilot.LoadPostFile(opts.PostFile)
	}
	if opts.Caption != "" || opts.Media != "" {
		platform := opts.Platform
		if platform == "" {
			platform = cfg.DefaultPlatform
		}
		post := postpilot.Post{
			Caption:   opts.Caption,
			MediaPath: opts.Media,
			Platform:  postpilot.Platform(platform),
		}
		if err := post.Validate(); err != nil {
			return nil, err
		}
		return &post, nil
	}
	return promptPost(cfg)
}

// promptPost is the interactive form: media path first (so suggestions can
// be derived from the filename), then caption, then platform.
func promptPost(cfg *config.Config) (*postpilot.Post, error) {
	reader := bufio.NewReader(os.Stdin)

	media, err := prompt(reader, "Image/video path: ")
	if err != nil {
		return nil, err
	}

	var caption string
	if media != "" {
		suggestions := postpilot.SuggestCaptions(media)
		color.Cyan("Suggested captions:")
		for i, s := range suggestions {
			fmt.Printf("  %d. %s\n", i+1, s)
		}
		choice, err := prompt(reader, "Caption (text, or 1-5 to use a suggestion): ")
		if err != nil {
			return nil, err
		}
		if n, convErr := strconv.Atoi(choice); convErr == nil && n >= 1 && n <= len(suggestions) {
			caption = suggestions[n-1]
		} else {
			caption = choice
		}
	} else {
		caption, err = prompt(reader, "Caption: ")
		if err != nil {
			return nil, err
		}
	}

	platforms := make([]string, 0, len(postpilot.Platforms()))
	for _, p := range postpilot.Platforms() {
		platforms = append(platforms, p.String())
	}
	platform, err := prompt(reader, fmt.Sprintf("Platform [%s] (default %s): ",
		strings.Join(platforms, ", "), cfg.DefaultPlatform))
	if err != nil {
		return nil, err
	}
	if platform == "" {
		platform = cfg.DefaultPlatform
	}

	post := postpilot.Post{
		Caption:   caption,
		MediaPath: media,
		Platform:  postpilot.Platform(platform),
	}
	if err := post.Validate(); err != nil {
		return nil, fmt.Errorf("all fields are required: %w", err)
	}
	return &post, nil
}

func prompt(reader *bufio.Reader, label string) (string, error) {
	fmt.Print(label)
	line, err := reader.ReadString('\n')
	if err != nil {
		return "", fmt.Errorf("failed to read input: %w", err)
	}
	return strings.TrimSpace(line), nil
}

func statusPrinter(verbose bool) postpilot.ScheduleCallbacks {
	if !verbose {
		return postpilot.BaseScheduleCallbacks{}
	}
	return postpilot.CallbacksFunc(func(_ context.Context, event *postpilot.StatusEvent) {
		color.White("[%s] %s", event.At.Format("15:04:05"), event.Status)
	})
}

func reportResult(result *postpilot.Result) int {
	switch result.Status {
	case postpilot.StatusLogged:
		color.Green("Post published and logged.")
		return 0
	case postpilot.StatusRejected:
		color.Yellow("Post rejected: inappropriate content flagged.")
		return 0
	default:
		if result.Err != nil {
			if result.Published {
				color.Yellow("Post published, but logging failed: %s", result.Err.Cause)
			} else {
				color.Red("Schedule failed (%s): %s", result.Err.Kind, result.Err.Cause)
			}
		} else {
			color.Red("Schedule failed.")
		}
		return 1
	}
}

func showHistory(history postpilot.PostLog) {
	records, err := history.Records(context.Background())
	if err != nil {
		color.Red("Error: %v", err)
		os.Exit(1)
	}
	if len(records) == 0 {
		color.Blue("No posts logged yet.")
		return
	}
	color.Cyan("%-20s %-10s %-12s %s", "Timestamp", "Platform", "File", "Caption")
	for _, r := range records {
		fmt.Printf("%-20s %-10s %-12s %s\n",
			r.Timestamp.Format(postpilot.TimestampLayout), r.Platform, r.File, r.Caption)
	}
}
