package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/cheggaaa/pb/v3"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/handiism/musicorg/internal/config"
	"github.com/handiism/musicorg/internal/library"
	"github.com/handiism/musicorg/internal/model"
)

const barTemplate = `{{ string . "prefix" }} {{ counters . }} {{ bar . }} {{ percent . }} | ETA {{ rtime . "%s" }}`

type organizeOptions struct {
	musicDir       string
	output         string
	playlistFormat string
	noLyrics       bool
	noCovers       bool
	noSidecar      bool
	saveCovers     bool
	dryRun         bool
}

func newOrganizeCommand() *cobra.Command {
	var o organizeOptions

	cmd := &cobra.Command{
		Use:   "organize",
		Short: "Copy a music directory into a library with lyrics and playlist.json.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			settings, err := loadSettings()
			if err != nil {
				return fmt.Errorf("loading config: %w", err)
			}
			if err := o.apply(cmd, settings); err != nil {
				return err
			}
			return runOrganize(cmd.Context(), settings)
		},
	}

	cmd.Flags().StringVarP(&o.musicDir, "music-dir", "m", "", "Music directory to scan (overrides config)")
	cmd.Flags().StringVarP(&o.output, "output", "o", "", "Library output directory (default: <music-dir>/music_repo)")
	cmd.Flags().StringVar(&o.playlistFormat, "playlist-format", "", "Extra playlist format: m3u, pls, wpl, zpl or none")
	cmd.Flags().BoolVar(&o.noLyrics, "no-lyrics", false, "Do not fetch lyrics online")
	cmd.Flags().BoolVar(&o.noCovers, "no-covers", false, "Do not look up cover art")
	cmd.Flags().BoolVar(&o.noSidecar, "no-sidecar", false, "Ignore .lrc files next to the audio files")
	cmd.Flags().BoolVar(&o.saveCovers, "save-covers", false, "Download found covers into the library")
	cmd.Flags().BoolVar(&o.dryRun, "dry-run", false, "Resolve metadata without writing anything")

	return cmd
}

// apply overrides settings with the flags the user set.
func (o *organizeOptions) apply(cmd *cobra.Command, settings *config.Settings) error {
	if o.musicDir != "" {
		settings.SetMusicDir(o.musicDir)
	}
	if o.output != "" {
		settings.OutputDir = o.output
	}
	if cmd.Flags().Changed("playlist-format") {
		if _, ok := model.ParsePlaylistFormat(o.playlistFormat); !ok {
			return fmt.Errorf("unknown playlist format %q", o.playlistFormat)
		}
		settings.ExtraPlaylistFormat = o.playlistFormat
	}
	if o.noLyrics {
		settings.FetchLyrics = false
	}
	if o.noCovers {
		settings.FetchCovers = false
	}
	if o.noSidecar {
		settings.PreferSidecarLyrics = false
	}
	if o.saveCovers {
		settings.SaveCoverArt = true
	}
	settings.DryRun = o.dryRun
	return nil
}

func runOrganize(ctx context.Context, settings *config.Settings) error {
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	vocab, err := settings.Vocabulary()
	if err != nil {
		return fmt.Errorf("loading vocabulary: %w", err)
	}

	showBar := !opts.verbose && isTTY()
	var bar *pb.ProgressBar

	manager := library.NewManager(settings, vocab, newLogger(), func(event library.ProgressEvent) {
		printEvent(event, opts.verbose, bar != nil)
	})

	printHeader()
	if err := manager.Initialize(ctx); err != nil {
		return fmt.Errorf("initializing: %w", err)
	}

	if showBar {
		_, _, total := manager.GetProgress()
		bar = pb.New(int(total))
		bar.SetWriter(os.Stdout)
		bar.SetTemplateString(barTemplate)
		bar.Set("prefix", "Organizing")
		bar.Start()
	}

	var summary *library.Summary
	done := make(chan struct{})

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		defer close(done)
		s, err := manager.Organize(gctx)
		summary = s
		return err
	})
	if bar != nil {
		g.Go(func() error {
			ticker := time.NewTicker(200 * time.Millisecond)
			defer ticker.Stop()
			for {
				select {
				case <-done:
					processed, _, _ := manager.GetProgress()
					bar.SetCurrent(int64(processed))
					bar.Finish()
					return nil
				case <-ticker.C:
					processed, _, _ := manager.GetProgress()
					bar.SetCurrent(int64(processed))
				}
			}
		})
	}
	err = g.Wait()

	if summary != nil {
		printSummary(summary, settings.DryRun)
	}
	if ctx.Err() != nil {
		colorWarning.Println("\nInterrupted, the manifest lists the files organized so far.")
		return context.Canceled
	}
	return err
}
