// Package main implements the gitrewind CLI: fetch a GitHub user's year of
// public activity and render it as a terminal poster.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/joho/godotenv"

	"github.com/gitrewind-dev/gitrewind/pkg/github"
	"github.com/gitrewind-dev/gitrewind/pkg/histogram"
	"github.com/gitrewind-dev/gitrewind/pkg/poster"
	"github.com/gitrewind-dev/gitrewind/pkg/stats"
)

var (
	token    = flag.String("token", "", "GitHub token for API access (or set GITHUB_TOKEN)")
	year     = flag.Int("year", 0, "Target year (defaults to the current year)")
	timezone = flag.String("timezone", "", "IANA timezone for hourly stats (defaults to local time)")
	jsonOut  = flag.Bool("json", false, "Print the processed model as JSON instead of rendering")
	noColor  = flag.Bool("no-color", false, "Disable colored output")
	verbose  = flag.Bool("verbose", false, "Enable verbose logging")
	version  = flag.Bool("version", false, "Show version")
)

func main() {
	flag.Parse()

	if *version {
		fmt.Println("gitrewind v1.0.0")
		return
	}

	args := flag.Args()
	if len(args) != 1 {
		fmt.Fprintf(os.Stderr, "Usage: %s [flags] <github-username>\n", os.Args[0])
		flag.PrintDefaults()
		os.Exit(1)
	}
	username := args[0]

	if *noColor {
		color.NoColor = true
	}

	level := slog.LevelError
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))

	// .env is optional; an explicit flag or environment variable wins.
	if err := godotenv.Load(); err != nil {
		logger.Debug("no .env file loaded", "error", err)
	}
	if *token == "" {
		*token = os.Getenv("GITHUB_TOKEN")
	}

	now := time.Now()
	if *year == 0 {
		*year = now.Year()
	}

	loc := time.Local
	if *timezone != "" {
		parsed, err := time.LoadLocation(*timezone)
		if err != nil {
			logger.Error("invalid timezone", "timezone", *timezone, "error", err)
			os.Exit(1)
		}
		loc = parsed
	}

	client := github.NewClient(
		github.WithToken(*token),
		github.WithLogger(logger),
	)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	progress := func(stage string) {
		if !*jsonOut {
			fmt.Fprintf(os.Stderr, "› fetching %s...\n", stage)
		}
	}

	bundle, err := client.FetchAll(ctx, username, *year, progress)
	if err != nil {
		var apiErr *github.Error
		if errors.As(err, &apiErr) {
			fmt.Fprintln(os.Stderr, apiErr.Remediation())
		}
		logger.Error("fetch failed", "username", username, "error", err)
		os.Exit(1)
	}

	if *verbose {
		if limit, err := client.FetchRateLimit(ctx); err == nil {
			logger.Debug("rate limit", "remaining", limit.Remaining, "limit", limit.Limit)
		}
	}

	model := stats.Process(bundle, *year, now, loc)

	if *jsonOut {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(model); err != nil {
			logger.Error("encoding model", "error", err)
			os.Exit(1)
		}
		return
	}

	fmt.Print(poster.Render(bundle.User, model))
	fmt.Println()
	fmt.Print(histogram.RenderHours(model.Hourly))
	fmt.Println()
	fmt.Print(histogram.RenderWeekdays(model.Hourly))
}
