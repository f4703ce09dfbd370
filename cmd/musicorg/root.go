package main

import (
	"os"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"

	"github.com/handiism/musicorg/internal/config"
)

const version = "1.0.0"

// globalOptions are the persistent flags shared by every command.
type globalOptions struct {
	configPath     string
	vocabularyPath string
	verbose        bool
}

var opts globalOptions

func newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:     "musicorg",
		Version: version,
		Short:   "Organize a music folder into a web player library.",
		Long: `musicorg scans a music directory, works out the artist and title of every
audio file from its tags and its file name, and copies the files into a
library with lyrics and a playlist.json manifest for web players.

For interactive mode, use: musicorg-tui`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().StringVar(&opts.configPath, "config", "", "Path to config file (default: XDG config home)")
	root.PersistentFlags().StringVar(&opts.vocabularyPath, "vocabulary", "", "YAML file extending the built-in artist vocabulary")
	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "Show verbose output")

	root.AddCommand(newOrganizeCommand())
	root.AddCommand(newParseCommand())
	root.AddCommand(newConfigCommand())

	return root
}

// settingsPath returns the config file used by this invocation.
func settingsPath() (string, error) {
	if opts.configPath != "" {
		return opts.configPath, nil
	}
	return config.DefaultPath()
}

// loadSettings reads the config file and applies the persistent flags.
func loadSettings() (*config.Settings, error) {
	path, err := settingsPath()
	if err != nil {
		return nil, err
	}
	settings, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	if opts.vocabularyPath != "" {
		settings.VocabularyPath = opts.vocabularyPath
	}
	return settings, nil
}

func newLogger() hclog.Logger {
	level := hclog.Warn
	if opts.verbose {
		level = hclog.Debug
	}
	return hclog.New(&hclog.LoggerOptions{
		Name:   "musicorg",
		Level:  level,
		Output: os.Stderr,
		Color:  hclog.AutoColor,
	})
}
