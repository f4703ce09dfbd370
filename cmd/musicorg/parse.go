package main

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/handiism/musicorg/internal/audio"
	ioutils "github.com/handiism/musicorg/internal/io"
	"github.com/handiism/musicorg/internal/library"
	"github.com/handiism/musicorg/internal/naming"
	"github.com/handiism/musicorg/internal/resolve"
)

func newParseCommand() *cobra.Command {
	var musicDir string

	cmd := &cobra.Command{
		Use:   "parse [name...]",
		Short: "Show the artist and title inferred from file names.",
		Long: `parse runs the file name heuristics on each argument and prints the
inferred artist and title. Arguments that are existing audio files are also
resolved against their tags.

With --music-dir, token frequencies are counted over that directory as well,
the way organize does.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			settings, err := loadSettings()
			if err != nil {
				return fmt.Errorf("loading config: %w", err)
			}
			vocab, err := settings.Vocabulary()
			if err != nil {
				return fmt.Errorf("loading vocabulary: %w", err)
			}

			var corpus []string
			if musicDir != "" {
				corpus, err = library.Scan(musicDir, settings.Extensions)
				if err != nil {
					return fmt.Errorf("scan %s: %w", musicDir, err)
				}
			}
			return runParse(cmd.OutOrStdout(), vocab, corpus, args)
		},
	}

	cmd.Flags().StringVarP(&musicDir, "music-dir", "m", "", "Count token frequencies over this directory")
	return cmd
}

func runParse(w io.Writer, vocab *naming.Vocabulary, corpus, args []string) error {
	stems := make([]string, 0, len(corpus)+len(args))
	for _, path := range corpus {
		stems = append(stems, resolve.Stem(path))
	}
	for _, arg := range args {
		stems = append(stems, argStem(arg))
	}

	parser := naming.NewParser(naming.NewClassifier(vocab, naming.BuildIndex(stems)))
	resolver := resolve.NewResolver(audio.NewReader(), parser, newLogger())

	for _, arg := range args {
		stem := argStem(arg)
		res := parser.Parse(stem)
		fmt.Fprintf(w, "%s\n", arg)
		fmt.Fprintf(w, "  tokens: %s\n", strings.Join(naming.Tokenize(stem), " | "))
		fmt.Fprintf(w, "  artist: %s\n", orNone(res.Artist))
		fmt.Fprintf(w, "  title:  %s\n", res.Title)

		if isAudioFile(arg) {
			meta := resolver.Resolve(arg)
			fmt.Fprintf(w, "  resolved: %s - %s (artist from %s, title from %s)\n",
				meta.Artist, meta.Title, meta.ArtistSource, meta.TitleSource)
		}
	}
	return nil
}

// argStem strips a known audio extension. Other dots are part of the name.
func argStem(arg string) string {
	base := filepath.Base(arg)
	if isAudioExt(base) {
		return strings.TrimSuffix(base, filepath.Ext(base))
	}
	return base
}

func isAudioFile(path string) bool {
	return isAudioExt(path) && ioutils.Exists(path)
}

func isAudioExt(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, known := range audio.Extensions {
		if ext == known {
			return true
		}
	}
	return false
}

func orNone(s string) string {
	if s == "" {
		return "(none)"
	}
	return s
}
