package library

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/gosimple/slug"
	"github.com/hashicorp/go-hclog"

	"github.com/handiism/musicorg/internal/audio"
	"github.com/handiism/musicorg/internal/config"
	"github.com/handiism/musicorg/internal/http"
	ioutils "github.com/handiism/musicorg/internal/io"
	"github.com/handiism/musicorg/internal/lookup"
	"github.com/handiism/musicorg/internal/model"
	"github.com/handiism/musicorg/internal/naming"
	"github.com/handiism/musicorg/internal/resolve"
)

// ProgressLevel indicates the severity/type of a progress message.
type ProgressLevel int

const (
	LevelInfo ProgressLevel = iota
	LevelVerbose
	LevelWarning
	LevelError
	LevelSuccess
)

// ProgressEvent represents a progress update of a run.
type ProgressEvent struct {
	Message string
	Level   ProgressLevel
}

// Manager organizes a music directory into a library.
type Manager struct {
	settings     *config.Settings
	vocab        *naming.Vocabulary
	logger       hclog.Logger
	httpClient   *http.Client
	reader       *audio.Reader
	lyrics       *lookup.LyricsSearcher
	covers       *lookup.CoverSearcher
	playlist     *audio.PlaylistCreator
	imageService *ioutils.ImageService

	files      []string
	index      *naming.Index
	parser     *naming.Parser
	resolver   *resolve.Resolver
	library    *model.Library
	audioNames *ioutils.NameAllocator
	coverNames *ioutils.NameAllocator

	totalFiles     int32
	processedFiles int32
	failedFiles    int32

	onProgress func(ProgressEvent)
	mu         sync.RWMutex
}

// NewManager creates a new Manager. A nil vocab means the built-in
// vocabulary; a nil logger discards diagnostics.
func NewManager(settings *config.Settings, vocab *naming.Vocabulary, logger hclog.Logger, onProgress func(ProgressEvent)) *Manager {
	if vocab == nil {
		vocab = naming.DefaultVocabulary()
	}
	if logger == nil {
		logger = hclog.NewNullLogger()
	}

	client := http.NewClient(settings.Timeout(), settings.UserAgent)
	return &Manager{
		settings:     settings,
		vocab:        vocab,
		logger:       logger,
		httpClient:   client,
		reader:       audio.NewReader(),
		lyrics:       lookup.NewLyricsSearcher(client, settings.LyricsAPIBase),
		covers:       lookup.NewCoverSearcher(client, settings.CoverSearchURL, settings.CoverImageURLFormat),
		playlist:     audio.NewPlaylistCreator(settings.PlaylistFormat(), settings.M3UExtended),
		imageService: ioutils.NewImageService(),
		library:      model.NewLibrary(settings.OutputDir),
		onProgress:   onProgress,
	}
}

// Initialize prepares a run: it creates the output layout, scans the music
// directory and builds the corpus index over every file name found. Errors
// here are fatal for the run.
func (m *Manager) Initialize(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	info, err := os.Stat(m.settings.MusicDir)
	if err != nil {
		return fmt.Errorf("music directory: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("music directory %s is not a directory", m.settings.MusicDir)
	}

	if !m.settings.DryRun {
		for _, dir := range m.library.Dirs() {
			if err := ioutils.EnsureDir(dir); err != nil {
				return fmt.Errorf("create output directory: %w", err)
			}
		}
	}

	files, err := Scan(m.settings.MusicDir, m.extensions(), m.settings.OutputDir)
	if err != nil {
		return fmt.Errorf("scan %s: %w", m.settings.MusicDir, err)
	}

	stems := make([]string, len(files))
	for i, f := range files {
		stems[i] = resolve.Stem(f)
	}
	index := naming.BuildIndex(stems)
	parser := naming.NewParser(naming.NewClassifier(m.vocab, index))

	m.mu.Lock()
	m.files = files
	m.index = index
	m.parser = parser
	m.resolver = resolve.NewResolver(m.reader, parser, m.logger)
	m.audioNames = ioutils.NewNameAllocator(m.library.AudioDir())
	m.coverNames = ioutils.NewNameAllocator(m.library.CoversDir())
	m.mu.Unlock()
	atomic.StoreInt32(&m.totalFiles, int32(len(files)))

	m.logger.Debug("corpus indexed", "files", len(files), "tokens", index.Len())
	m.progress(ProgressEvent{Message: fmt.Sprintf("Found %d audio files in %s", len(files), m.settings.MusicDir), Level: LevelInfo})
	return nil
}

// Organize processes every scanned file in order, one at a time, then
// writes playlist.json and the optional extra playlist.
//
// A file that fails is reported and skipped; the run goes on. Cancelling
// ctx stops before the next file, the manifest is still written for the
// files already processed, and ctx's error is returned.
func (m *Manager) Organize(ctx context.Context) (*Summary, error) {
	m.mu.RLock()
	files := m.files
	ready := m.resolver != nil
	m.mu.RUnlock()
	if !ready {
		return nil, errors.New("manager is not initialized")
	}

	var runErr error
	for _, path := range files {
		if err := ctx.Err(); err != nil {
			runErr = err
			break
		}

		m.progress(ProgressEvent{Message: fmt.Sprintf("Processing: %s", filepath.Base(path)), Level: LevelVerbose})
		track, err := m.processFile(ctx, path)
		if err != nil {
			atomic.AddInt32(&m.failedFiles, 1)
			m.logger.Error("processing failed", "file", path, "error", err)
			m.progress(ProgressEvent{Message: fmt.Sprintf("Error processing %s: %v", filepath.Base(path), err), Level: LevelError})
		} else {
			m.library.Add(track)
			m.progress(ProgressEvent{Message: fmt.Sprintf("Saved as: %s", track.FileName), Level: LevelSuccess})
		}
		atomic.AddInt32(&m.processedFiles, 1)
	}

	summary := NewSummary(m.library, int(atomic.LoadInt32(&m.failedFiles)))
	if m.settings.DryRun {
		return summary, runErr
	}

	if err := m.writeManifest(); err != nil {
		return summary, err
	}
	summary.ManifestPath = m.library.ManifestPath()
	m.writeExtraPlaylist()

	return summary, runErr
}

// GetProgress returns the number of files handled so far (including
// failures), how many of them failed, and the total found by the scan.
func (m *Manager) GetProgress() (processed, failed, total int32) {
	return atomic.LoadInt32(&m.processedFiles), atomic.LoadInt32(&m.failedFiles), atomic.LoadInt32(&m.totalFiles)
}

// Files returns the scanned audio files in processing order.
func (m *Manager) Files() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return append([]string(nil), m.files...)
}

// Parser returns the file name parser built over the scanned corpus, or
// nil before Initialize.
func (m *Manager) Parser() *naming.Parser {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.parser
}

// Library returns the library being built.
func (m *Manager) Library() *model.Library {
	return m.library
}

func (m *Manager) processFile(ctx context.Context, path string) (*model.Track, error) {
	meta := m.resolver.Resolve(path)
	m.progress(ProgressEvent{
		Message: fmt.Sprintf("Resolved: artist=%s, title=%s (%s)", meta.Artist, meta.Title, meta.ArtistSource),
		Level:   LevelVerbose,
	})

	base := model.BaseFileName(meta.Artist, meta.Title, m.vocab.VariousArtists)
	name := m.audioNames.Allocate(base, strings.ToLower(filepath.Ext(path)))
	track := &model.Track{
		Source:   path,
		Metadata: meta,
		FileName: name,
		CoverURL: m.settings.CoverFallback(),
	}
	if m.settings.DryRun {
		return track, nil
	}

	if err := ioutils.CopyFile(ctx, path, m.audioNames.Path(name)); err != nil {
		return nil, fmt.Errorf("copy audio: %w", err)
	}

	if lrc := m.findLyrics(ctx, path, meta); lrc != "" {
		lrcName := track.Stem() + ".lrc"
		if err := ioutils.WriteFile(ctx, filepath.Join(m.library.LyricsDir(), lrcName), []byte(lrc)); err != nil {
			m.removeCopy(name)
			return nil, fmt.Errorf("write lyrics: %w", err)
		}
		track.LyricsFileName = lrcName
	}

	if m.settings.FetchCovers {
		m.findCover(ctx, track)
	}
	return track, nil
}

// removeCopy deletes an audio file copied for a track that then failed,
// so the library holds no file the manifest does not list.
func (m *Manager) removeCopy(name string) {
	if err := os.Remove(m.audioNames.Path(name)); err != nil && !os.IsNotExist(err) {
		m.logger.Warn("cannot remove partial copy", "file", name, "error", err)
		return
	}
	m.audioNames.Release(name)
}

// findLyrics returns the sidecar lyrics of path when present, otherwise
// the fetched lyrics, otherwise "".
func (m *Manager) findLyrics(ctx context.Context, path string, meta model.Metadata) string {
	if m.settings.PreferSidecarLyrics {
		sidecar := sidecarPath(path)
		if ioutils.Exists(sidecar) {
			text, err := ioutils.ReadTextLossy(sidecar)
			if err == nil {
				m.logger.Debug("using sidecar lyrics", "file", sidecar)
				return text
			}
			m.progress(ProgressEvent{Message: fmt.Sprintf("Cannot read %s: %v", filepath.Base(sidecar), err), Level: LevelWarning})
		}
	}
	if !m.settings.FetchLyrics {
		return ""
	}

	res := m.lyrics.Search(ctx, meta.Title, meta.Artist)
	switch res.Status {
	case lookup.StatusFound:
		return res.Value
	case lookup.StatusFailed:
		m.logger.Debug("lyrics lookup failed", "title", meta.Title, "artist", meta.Artist, "error", res.Err)
	default:
		m.logger.Debug("no lyrics found", "title", meta.Title, "artist", meta.Artist)
	}
	return ""
}

func (m *Manager) findCover(ctx context.Context, track *model.Track) {
	meta := track.Metadata
	res := m.covers.Search(ctx, meta.Title, meta.Artist)
	switch res.Status {
	case lookup.StatusFound:
		track.CoverURL = res.Value
	case lookup.StatusFailed:
		m.logger.Debug("cover lookup failed", "title", meta.Title, "artist", meta.Artist, "error", res.Err)
		return
	default:
		return
	}

	if !m.settings.SaveCoverArt {
		return
	}
	if err := m.saveCover(ctx, track); err != nil {
		m.progress(ProgressEvent{Message: fmt.Sprintf("Error saving cover for %s: %v", meta.Title, err), Level: LevelWarning})
	}
}

func (m *Manager) saveCover(ctx context.Context, track *model.Track) error {
	data, err := m.httpClient.DownloadBytes(ctx, track.CoverURL)
	if err != nil {
		return err
	}

	data, err = m.imageService.PrepareCover(ctx, data, m.settings.CoverArtMaxSize, m.settings.ConvertCoverArtToJPG)
	if err != nil {
		return err
	}

	base := slug.Make(track.Metadata.Artist + " " + track.Metadata.Title)
	if base == "" {
		base = model.UntitledFileName
	}
	name := m.coverNames.Allocate(base, ".jpg")
	if err := ioutils.WriteFile(ctx, m.coverNames.Path(name), data); err != nil {
		return err
	}
	track.CoverFileName = name
	return nil
}

func (m *Manager) writeManifest() error {
	data, err := audio.CreateManifest(m.library)
	if err != nil {
		return err
	}
	if err := os.WriteFile(m.library.ManifestPath(), data, 0644); err != nil {
		return fmt.Errorf("write manifest: %w", err)
	}
	m.progress(ProgressEvent{Message: fmt.Sprintf("Wrote %s (%d tracks)", m.library.ManifestPath(), len(m.library.Tracks)), Level: LevelSuccess})
	return nil
}

func (m *Manager) writeExtraPlaylist() {
	format := m.settings.PlaylistFormat()
	if format == model.PlaylistFormatNone {
		return
	}

	path := m.library.PlaylistPath(format)
	content := m.playlist.CreatePlaylist(m.library)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		m.progress(ProgressEvent{Message: fmt.Sprintf("Error creating playlist: %v", err), Level: LevelWarning})
		return
	}
	m.progress(ProgressEvent{Message: fmt.Sprintf("Created playlist %s", filepath.Base(path)), Level: LevelSuccess})
}

func (m *Manager) extensions() []string {
	if len(m.settings.Extensions) > 0 {
		return m.settings.Extensions
	}
	return audio.Extensions
}

func (m *Manager) progress(event ProgressEvent) {
	if m.onProgress != nil {
		m.onProgress(event)
	}
}
