// Package tui provides a Bubble Tea terminal user interface for musicorg.
package tui

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/hashicorp/go-hclog"

	"github.com/handiism/musicorg/internal/config"
	"github.com/handiism/musicorg/internal/library"
	"github.com/handiism/musicorg/internal/model"
)

// Styles for the TUI
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FF6B6B")).
			MarginBottom(1)

	subtitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#4ECDC4"))

	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#95E1A3"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	warningStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFE66D"))

	infoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#A8DADC"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6C757D"))

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#4ECDC4")).
			Padding(1, 2)

	trackStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#F8B500"))
)

// maxLogs is how many log lines stay on screen.
const maxLogs = 10

// State represents the current UI state.
type State int

const (
	StateInput State = iota
	StateInitializing
	StateOrganizing
	StateComplete
	StateError
)

// LogEntry represents a log message in the UI.
type LogEntry struct {
	Message string
	Level   library.ProgressLevel
}

// Model is the Bubble Tea model for the TUI.
type Model struct {
	state     State
	textInput textinput.Model
	spinner   spinner.Model
	progress  progress.Model
	settings  *config.Settings
	logs      []LogEntry
	err       error

	// Run context
	ctx    context.Context
	cancel context.CancelFunc

	manager *library.Manager
	events  chan library.ProgressEvent
	summary *library.Summary

	// Run progress
	totalFiles     int32
	processedFiles int32
	failedFiles    int32

	// Options
	lyrics   bool
	covers   bool
	playlist bool
	verbose  bool

	width  int
	height int
}

// NewModel creates a new TUI model starting from settings.
func NewModel(settings *config.Settings) Model {
	if settings == nil {
		settings = config.DefaultSettings()
	}

	ti := textinput.New()
	ti.Placeholder = "/path/to/music"
	ti.SetValue(settings.MusicDir)
	ti.Focus()
	ti.CharLimit = 500
	ti.Width = 60

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF6B6B"))

	prog := progress.New(progress.WithDefaultGradient())
	prog.Width = 50

	ctx, cancel := context.WithCancel(context.Background())

	return Model{
		state:     StateInput,
		textInput: ti,
		spinner:   sp,
		progress:  prog,
		settings:  settings,
		logs:      make([]LogEntry, 0),
		ctx:       ctx,
		cancel:    cancel,
		lyrics:    settings.FetchLyrics,
		covers:    settings.FetchCovers,
		playlist:  settings.PlaylistFormat() != model.PlaylistFormatNone,
	}
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.spinner.Tick)
}

// Message types
type (
	// ProgressMsg carries one event emitted by the manager.
	ProgressMsg struct {
		Event library.ProgressEvent
	}

	// InitDoneMsg is sent when scanning and indexing complete.
	InitDoneMsg struct {
		Manager *library.Manager
		Err     error

		events chan library.ProgressEvent
	}

	// OrganizeDoneMsg is sent when the run completes.
	OrganizeDoneMsg struct {
		Summary   *library.Summary
		Processed int32
		Failed    int32
		Total     int32
		Err       error

		manager *library.Manager
	}

	// TickMsg is for periodic progress updates.
	TickMsg struct{}
)

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.progress.Width = msg.Width - 20
		if m.progress.Width > 80 {
			m.progress.Width = 80
		}
		if m.progress.Width < 20 {
			m.progress.Width = 20
		}
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			m.cancel()
			return m, tea.Quit

		case "esc":
			if m.state == StateInput {
				return m, tea.Quit
			}
			if m.state == StateOrganizing || m.state == StateInitializing {
				m.cancel()
				m.state = StateError
				m.err = fmt.Errorf("cancelled by user")
			}

		case "enter":
			if m.state == StateInput && strings.TrimSpace(m.textInput.Value()) != "" {
				m.state = StateInitializing
				m.events = make(chan library.ProgressEvent, 64)
				return m, tea.Batch(m.initialize(), m.waitForEvent(), m.spinner.Tick)
			}

		case "ctrl+l":
			if m.state == StateInput {
				m.lyrics = !m.lyrics
			}

		case "ctrl+o":
			if m.state == StateInput {
				m.covers = !m.covers
			}

		case "ctrl+t":
			if m.state == StateInput {
				m.playlist = !m.playlist
			}

		case "ctrl+g":
			if m.state == StateInput {
				m.verbose = !m.verbose
			}

		case "q":
			if m.state == StateComplete || m.state == StateError {
				return m, tea.Quit
			}

		case "r":
			if m.state == StateComplete || m.state == StateError {
				m.reset()
			}
		}

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		cmds = append(cmds, cmd)

	case ProgressMsg:
		cmds = append(cmds, m.waitForEvent())
		if msg.Event.Level == library.LevelVerbose && !m.verbose {
			break
		}
		m.logs = append(m.logs, LogEntry{
			Message: msg.Event.Message,
			Level:   msg.Event.Level,
		})
		if len(m.logs) > maxLogs {
			m.logs = m.logs[len(m.logs)-maxLogs:]
		}

	case InitDoneMsg:
		if m.state != StateInitializing || msg.events != m.events {
			// Stale run, cancelled while scanning. Nothing will send anymore.
			if msg.Err == nil {
				close(msg.events)
			}
			break
		}
		if msg.Err != nil {
			m.state = StateError
			m.err = msg.Err
		} else {
			m.manager = msg.Manager
			m.state = StateOrganizing
			cmds = append(cmds, m.startOrganize(), m.tickProgress())
		}

	case OrganizeDoneMsg:
		if msg.manager != m.manager {
			break
		}
		m.processedFiles = msg.Processed
		m.failedFiles = msg.Failed
		m.totalFiles = msg.Total
		m.summary = msg.Summary
		if m.ctx.Err() != nil {
			m.state = StateError
			m.err = fmt.Errorf("cancelled by user")
		} else if msg.Err != nil {
			m.state = StateError
			m.err = msg.Err
		} else {
			m.state = StateComplete
		}

	case TickMsg:
		if m.manager != nil && m.state == StateOrganizing {
			processed, failed, total := m.manager.GetProgress()
			m.processedFiles = processed
			m.failedFiles = failed
			m.totalFiles = total

			var percent float64
			if total > 0 {
				percent = float64(processed) / float64(total)
			}
			cmds = append(cmds, m.progress.SetPercent(percent), m.tickProgress())
		}

	case progress.FrameMsg:
		progressModel, cmd := m.progress.Update(msg)
		m.progress = progressModel.(progress.Model)
		cmds = append(cmds, cmd)
	}

	if m.state == StateInput {
		var cmd tea.Cmd
		m.textInput, cmd = m.textInput.Update(msg)
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

// reset prepares the model for a new run.
func (m *Model) reset() {
	m.state = StateInput
	m.logs = nil
	m.err = nil
	m.summary = nil
	m.processedFiles = 0
	m.failedFiles = 0
	m.totalFiles = 0
	m.manager = nil
	m.events = nil
	m.ctx, m.cancel = context.WithCancel(context.Background())
	m.textInput.Focus()
}

// tickProgress returns a command to tick progress updates.
func (m Model) tickProgress() tea.Cmd {
	return tea.Tick(200*time.Millisecond, func(_ time.Time) tea.Msg {
		return TickMsg{}
	})
}

// waitForEvent forwards the next manager event as a ProgressMsg. It yields
// nothing once the run has closed the channel.
func (m Model) waitForEvent() tea.Cmd {
	events := m.events
	return func() tea.Msg {
		if events == nil {
			return nil
		}
		event, ok := <-events
		if !ok {
			return nil
		}
		return ProgressMsg{Event: event}
	}
}

// View renders the UI.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("🎵 Music Organizer"))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render("Turn a messy music folder into a web player library"))
	b.WriteString("\n\n")

	switch m.state {
	case StateInput:
		b.WriteString(m.viewInput())
	case StateInitializing:
		b.WriteString(m.viewInitializing())
	case StateOrganizing:
		b.WriteString(m.viewOrganizing())
	case StateComplete:
		b.WriteString(m.viewComplete())
	case StateError:
		b.WriteString(m.viewError())
	}

	b.WriteString("\n")
	b.WriteString(dimStyle.Render(m.getHelpText()))

	return b.String()
}

func checkbox(on bool) string {
	if on {
		return "[×]"
	}
	return "[ ]"
}

func (m Model) viewInput() string {
	var b strings.Builder

	b.WriteString(subtitleStyle.Render("Music directory:"))
	b.WriteString("\n\n")
	b.WriteString(m.textInput.View())
	b.WriteString("\n\n")

	b.WriteString(infoStyle.Render("Options:"))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("  %s Fetch lyrics (ctrl+l)\n", checkbox(m.lyrics)))
	b.WriteString(fmt.Sprintf("  %s Fetch covers (ctrl+o)\n", checkbox(m.covers)))
	b.WriteString(fmt.Sprintf("  %s Extra playlist %s (ctrl+t)\n", checkbox(m.playlist), m.playlistFormat().Extension()))
	b.WriteString(fmt.Sprintf("  %s Verbose/debug output (ctrl+g)\n", checkbox(m.verbose)))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render(fmt.Sprintf("Output: %s", m.outputDir())))
	b.WriteString("\n")

	return b.String()
}

func (m Model) viewInitializing() string {
	var b strings.Builder

	b.WriteString(m.spinner.View())
	b.WriteString(" ")
	b.WriteString(subtitleStyle.Render("Scanning music directory..."))
	b.WriteString("\n\n")
	b.WriteString(m.renderLogs())

	return b.String()
}

func (m Model) viewOrganizing() string {
	var b strings.Builder

	var percent float64
	if m.totalFiles > 0 {
		percent = float64(m.processedFiles) / float64(m.totalFiles)
	}
	b.WriteString(m.progress.ViewAs(percent))
	b.WriteString("\n")

	b.WriteString(infoStyle.Render(fmt.Sprintf(
		"Files: %d/%d | Failed: %d",
		m.processedFiles,
		m.totalFiles,
		m.failedFiles,
	)))
	b.WriteString("\n\n")
	b.WriteString(m.renderLogs())

	return b.String()
}

func (m Model) viewComplete() string {
	var b strings.Builder

	s := m.summary
	if s == nil {
		s = &library.Summary{}
	}

	var body strings.Builder
	body.WriteString("✨ Library Ready!\n\n")
	body.WriteString(fmt.Sprintf("Tracks: %d\n", s.Processed))
	body.WriteString(fmt.Sprintf("Failed: %d\n", s.Failed))
	body.WriteString(fmt.Sprintf("With lyrics: %d\n", s.WithLyrics))
	body.WriteString(fmt.Sprintf("Without lyrics: %d", s.WithoutLyrics))
	for _, sc := range s.SortedSources() {
		body.WriteString(fmt.Sprintf("\n  %s: %d", sc.Source, sc.Count))
	}
	if s.ManifestPath != "" {
		body.WriteString(fmt.Sprintf("\n\nManifest: %s", s.ManifestPath))
	}
	b.WriteString(boxStyle.Render(body.String()))
	b.WriteString("\n")

	for _, sample := range s.Samples {
		b.WriteString(trackStyle.Render(fmt.Sprintf("  ♪ %s - %s", sample.Artist, sample.Name)))
		b.WriteString(dimStyle.Render(fmt.Sprintf("  (%s)", sample.OriginalFileName)))
		b.WriteString("\n")
	}

	return b.String()
}

func (m Model) viewError() string {
	var b strings.Builder

	b.WriteString(errorStyle.Render("❌ Error occurred:"))
	b.WriteString("\n\n")
	if m.err != nil {
		b.WriteString(fmt.Sprintf("  %s", m.err.Error()))
	}

	return b.String()
}

func (m Model) renderLogs() string {
	var b strings.Builder

	for _, log := range m.logs {
		var style lipgloss.Style
		prefix := "•"
		switch log.Level {
		case library.LevelError:
			style = errorStyle
			prefix = "✗"
		case library.LevelWarning:
			style = warningStyle
			prefix = "!"
		case library.LevelSuccess:
			style = successStyle
			prefix = "✓"
		case library.LevelInfo:
			style = infoStyle
			prefix = "›"
		default:
			style = dimStyle
		}
		b.WriteString(style.Render(prefix + " " + log.Message))
		b.WriteString("\n")
	}

	return b.String()
}

func (m Model) getHelpText() string {
	switch m.state {
	case StateInput:
		return "enter: start • ctrl+l: lyrics • ctrl+o: covers • ctrl+t: playlist • ctrl+g: verbose • esc: quit"
	case StateInitializing, StateOrganizing:
		return "esc: cancel"
	case StateComplete, StateError:
		return "r: new run • q: quit"
	}
	return ""
}

// playlistFormat is the extra playlist format used when the playlist
// option is on.
func (m Model) playlistFormat() model.PlaylistFormat {
	if f := m.settings.PlaylistFormat(); f != model.PlaylistFormatNone {
		return f
	}
	return model.PlaylistFormatM3U
}

func (m Model) outputDir() string {
	s := *m.settings
	s.SetMusicDir(filepath.Clean(strings.TrimSpace(m.textInput.Value())))
	return s.OutputDir
}

// runSettings returns a copy of the settings with the UI options applied.
func (m Model) runSettings() *config.Settings {
	s := *m.settings
	s.SetMusicDir(filepath.Clean(strings.TrimSpace(m.textInput.Value())))
	s.FetchLyrics = m.lyrics
	s.FetchCovers = m.covers
	s.ExtraPlaylistFormat = ""
	if m.playlist {
		s.ExtraPlaylistFormat = m.playlistFormat().String()
	}
	return &s
}

// initialize scans the music directory and builds the manager.
func (m Model) initialize() tea.Cmd {
	settings := m.runSettings()
	ctx := m.ctx
	events := m.events
	return func() tea.Msg {
		vocab, err := settings.Vocabulary()
		if err != nil {
			close(events)
			return InitDoneMsg{Err: fmt.Errorf("load vocabulary: %w", err), events: events}
		}

		// Diagnostics would corrupt the alternate screen.
		manager := library.NewManager(settings, vocab, hclog.NewNullLogger(), func(event library.ProgressEvent) {
			select {
			case events <- event:
			case <-ctx.Done():
			}
		})

		if err := manager.Initialize(ctx); err != nil {
			close(events)
			return InitDoneMsg{Err: err, events: events}
		}
		return InitDoneMsg{Manager: manager, events: events}
	}
}

// startOrganize runs the organizer in background.
func (m Model) startOrganize() tea.Cmd {
	manager := m.manager
	ctx := m.ctx
	events := m.events
	return func() tea.Msg {
		summary, err := manager.Organize(ctx)
		close(events)
		processed, failed, total := manager.GetProgress()
		return OrganizeDoneMsg{
			Summary:   summary,
			Processed: processed,
			Failed:    failed,
			Total:     total,
			Err:       err,
			manager:   manager,
		}
	}
}

// Run starts the TUI application.
func Run(settings *config.Settings) error {
	p := tea.NewProgram(NewModel(settings), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
