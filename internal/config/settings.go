package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/adrg/xdg"
	jsoniter "github.com/json-iterator/go"

	"github.com/handiism/musicorg/internal/lookup"
	"github.com/handiism/musicorg/internal/model"
	"github.com/handiism/musicorg/internal/naming"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// configRelPath is the settings file location below the XDG config home.
const configRelPath = "musicorg/config.json"

// outputDirName is the default output directory inside the music directory.
const outputDirName = "music_repo"

// Settings holds all configuration options.
type Settings struct {
	// Input and output
	MusicDir   string   `json:"music_dir"`
	OutputDir  string   `json:"output_dir"`
	Extensions []string `json:"extensions"`

	// External services
	LyricsAPIBase       string `json:"lyrics_api_base"`
	CoverSearchURL      string `json:"cover_search_url"`
	CoverImageURLFormat string `json:"cover_image_url_format"`
	DefaultCover        string `json:"default_cover"`
	RequestTimeout      int    `json:"request_timeout"` // seconds
	UserAgent           string `json:"user_agent"`

	// Lyrics settings
	FetchLyrics         bool `json:"fetch_lyrics"`
	PreferSidecarLyrics bool `json:"prefer_sidecar_lyrics"`

	// Cover art settings
	FetchCovers          bool `json:"fetch_covers"`
	SaveCoverArt         bool `json:"save_cover_art"`
	CoverArtMaxSize      int  `json:"cover_art_max_size"` // 0 keeps the original size
	ConvertCoverArtToJPG bool `json:"convert_cover_art_to_jpg"`

	// Playlist settings
	ExtraPlaylistFormat string `json:"extra_playlist_format"` // "", m3u, pls, wpl, zpl
	M3UExtended         bool   `json:"m3u_extended"`

	// Heuristics
	VocabularyPath string `json:"vocabulary_path"`

	// DryRun resolves metadata without writing anything. Never persisted.
	DryRun bool `json:"-"`
}

// DefaultSettings returns settings with default values.
func DefaultSettings() *Settings {
	musicDir := xdg.UserDirs.Music
	if musicDir == "" {
		musicDir = "."
	}
	return &Settings{
		MusicDir:   musicDir,
		OutputDir:  filepath.Join(musicDir, outputDirName),
		Extensions: []string{".mp3", ".flac", ".wav", ".m4a"},

		LyricsAPIBase:       lookup.DefaultLyricsAPIBase,
		CoverSearchURL:      lookup.DefaultCoverSearchURL,
		CoverImageURLFormat: lookup.DefaultCoverImageFormat,
		DefaultCover:        lookup.DefaultCover,
		RequestTimeout:      5,
		UserAgent:           "Mozilla/5.0 (compatible; musicorg)",

		FetchLyrics:         true,
		PreferSidecarLyrics: true,

		FetchCovers:          true,
		SaveCoverArt:         false,
		CoverArtMaxSize:      300,
		ConvertCoverArtToJPG: true,

		ExtraPlaylistFormat: "",
		M3UExtended:         true,
	}
}

// DefaultPath returns the settings file location under the XDG config
// home, creating parent directories as needed.
func DefaultPath() (string, error) {
	return xdg.ConfigFile(configRelPath)
}

// Load reads settings from a JSON file. A missing file yields defaults;
// keys missing from the file keep their default values.
func Load(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultSettings(), nil
		}
		return nil, err
	}

	settings := DefaultSettings()
	if err := json.Unmarshal(data, settings); err != nil {
		return nil, err
	}

	return settings, nil
}

// Save writes settings to a JSON file.
func (s *Settings) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// Timeout returns the per-request timeout of lookups.
func (s *Settings) Timeout() time.Duration {
	if s.RequestTimeout <= 0 {
		return 5 * time.Second
	}
	return time.Duration(s.RequestTimeout) * time.Second
}

// PlaylistFormat converts ExtraPlaylistFormat to a model.PlaylistFormat.
// Unknown values mean no extra playlist.
func (s *Settings) PlaylistFormat() model.PlaylistFormat {
	pf, _ := model.ParsePlaylistFormat(s.ExtraPlaylistFormat)
	return pf
}

// CoverFallback returns the manifest cover for tracks without a found
// cover.
func (s *Settings) CoverFallback() string {
	if s.DefaultCover == "" {
		return lookup.DefaultCover
	}
	return s.DefaultCover
}

// SetMusicDir changes the music directory. An output directory still at
// its default location follows it.
func (s *Settings) SetMusicDir(dir string) {
	if s.OutputDir == "" || s.OutputDir == filepath.Join(s.MusicDir, outputDirName) {
		s.OutputDir = filepath.Join(dir, outputDirName)
	}
	s.MusicDir = dir
}

// Vocabulary returns the heuristics vocabulary: the built-in one, or the
// built-in one overlaid with the file at VocabularyPath.
func (s *Settings) Vocabulary() (*naming.Vocabulary, error) {
	return naming.LoadVocabulary(s.VocabularyPath)
}
