package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"

	"github.com/handiism/musicorg/internal/library"
)

var (
	colorInfo    = color.New(color.FgCyan)
	colorSuccess = color.New(color.FgGreen)
	colorWarning = color.New(color.FgYellow)
	colorError   = color.New(color.FgRed)
	colorDim     = color.New(color.Faint)
	colorTitle   = color.New(color.FgMagenta, color.Bold)
)

const rule = "━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━"

func init() {
	color.NoColor = color.NoColor || !isTTY()
}

func isTTY() bool {
	fd := os.Stdout.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// printEvent prints one manager event. quiet keeps only warnings and
// errors, for when a progress bar owns the terminal.
func printEvent(event library.ProgressEvent, verbose, quiet bool) {
	switch event.Level {
	case library.LevelError:
		colorError.Fprintln(os.Stderr, "❌ "+event.Message)
	case library.LevelWarning:
		colorWarning.Fprintln(os.Stderr, "⚠️  "+event.Message)
	case library.LevelSuccess:
		if !quiet {
			colorSuccess.Println("✅ " + event.Message)
		}
	case library.LevelInfo:
		if !quiet {
			colorInfo.Println("ℹ️  " + event.Message)
		}
	default:
		if verbose && !quiet {
			colorDim.Println("   " + event.Message)
		}
	}
}

func printHeader() {
	colorTitle.Println("🎵 Music Organizer")
	fmt.Println(rule)
	fmt.Println()
}

func printSummary(s *library.Summary, dryRun bool) {
	fmt.Println()
	fmt.Println(rule)
	if dryRun {
		colorWarning.Println("[Dry run - nothing was written]")
	}
	colorSuccess.Printf("✨ Complete! Organized %d files", s.Processed)
	if s.Failed > 0 {
		colorError.Printf(" (%d failed)", s.Failed)
	}
	fmt.Println()

	fmt.Printf("   With lyrics: %d, without lyrics: %d\n", s.WithLyrics, s.WithoutLyrics)
	if sources := s.SortedSources(); len(sources) > 0 {
		parts := make([]string, len(sources))
		for i, sc := range sources {
			parts[i] = fmt.Sprintf("%s=%d", sc.Source, sc.Count)
		}
		fmt.Printf("   Artist sources: %s\n", strings.Join(parts, ", "))
	}
	if len(s.Samples) > 0 {
		fmt.Println()
		colorInfo.Println("Samples:")
		for _, sample := range s.Samples {
			fmt.Printf("   ♪ %s - %s ", sample.Artist, sample.Name)
			colorDim.Printf("(%s)\n", sample.OriginalFileName)
		}
	}
	if s.ManifestPath != "" {
		fmt.Println()
		fmt.Printf("📄 Manifest: %s\n", s.ManifestPath)
	}
}
