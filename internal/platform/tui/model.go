package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-tetromino/internal/config"
	"github.com/vovakirdan/tui-tetromino/internal/core"
	"github.com/vovakirdan/tui-tetromino/internal/tetromino"
)

// Model is the Bubble Tea model hosting one game session.
type Model struct {
	session *Session
	keys    KeyMap
	help    help.Model
	screen  *core.Screen
	snap    tetromino.Snapshot

	// Terminals send no key-up events: a soft drop lasts until no
	// repeat of the down key arrives within release.
	release  time.Duration
	dropSeq  int
	dropping bool

	width    int
	height   int
	quitting bool
}

// NewModel creates a model for the given session.
func NewModel(session *Session, release time.Duration) Model {
	snap := session.Engine().Snapshot()
	w, h := FrameSize(snap.Width, snap.Height)

	return Model{
		session: session,
		keys:    DefaultKeyMap(),
		help:    help.New(),
		screen:  core.NewScreen(w, h),
		snap:    snap,
		release: release,
	}
}

// WithTerminal sizes the model for a terminal before the first window
// size message arrives.
func (m Model) WithTerminal(rt core.RuntimeConfig) Model {
	m.width = rt.ScreenW
	m.height = rt.ScreenH
	m.help.Width = rt.ScreenW
	return m
}

// Init starts listening for engine frames. The engine runs on its own
// timer, so there is no tick loop here.
func (m Model) Init() tea.Cmd {
	return waitForFrame(m.session)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case FrameMsg:
		m.snap = tetromino.Snapshot(msg)
		return m, waitForFrame(m.session)

	case softDropReleaseMsg:
		if m.dropping && msg.seq == m.dropSeq {
			m.dropping = false
			m.session.Engine().SoftDropStop()
		}
		return m, nil
	}

	return m, nil
}

// handleKey maps a key to an engine command.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	case key.Matches(msg, m.keys.Screenshot):
		m.saveScreenshot()
		return m, nil
	}

	engine := m.session.Engine()
	switch m.keys.Action(msg) {
	case core.ActionQuit:
		m.quitting = true
		m.session.Close()
		return m, tea.Quit
	case core.ActionLeft:
		engine.MoveLeft()
	case core.ActionRight:
		engine.MoveRight()
	case core.ActionRotateRight:
		engine.RotateRight()
	case core.ActionRotateLeft:
		engine.RotateLeft()
	case core.ActionSoftDrop:
		// A new piece ends quick fall, so a held key starts it again.
		if !m.dropping || !engine.Snapshot().QuickFall {
			engine.SoftDropStart()
		}
		m.dropping = true
		m.dropSeq++
		return m, softDropReleaseCmd(m.release, m.dropSeq)
	case core.ActionPause:
		engine.Pause()
	case core.ActionRestart:
		engine.Restart()
	}

	return m, nil
}

// saveScreenshot writes the current frame as plain text.
func (m *Model) saveScreenshot() {
	DrawFrame(m.screen, m.snap)

	home, err := os.UserHomeDir()
	if err != nil {
		return
	}
	dir := filepath.Join(home, ".tetromino", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	name := fmt.Sprintf("tetromino_%s.txt", time.Now().Format("20060102_150405"))
	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(filepath.Join(dir, name), []byte(m.screen.String()), 0o600)
}

// View renders the current frame and the key help, centered in the
// terminal.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	DrawFrame(m.screen, m.snap)
	frame := lipgloss.JoinVertical(lipgloss.Left,
		RenderScreen(m.screen),
		"",
		m.help.View(m.keys),
	)

	if m.width == 0 || m.height == 0 {
		return frame
	}
	if m.width < m.screen.Width() || m.height < m.screen.Height() {
		msg := fmt.Sprintf("Terminal too small: need %dx%d", m.screen.Width(), m.screen.Height())
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, msg)
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, frame)
}

// Run starts a local game in the terminal described by rt and blocks
// until the player quits. rt.Seed is used unless opts sets one.
func Run(cfg config.TetrominoConfig, rt core.RuntimeConfig, opts SessionOptions) error {
	if opts.Seed == 0 {
		opts.Seed = rt.Seed
	}
	session := NewSession(cfg, opts)
	defer session.Close()

	p := tea.NewProgram(
		NewModel(session, cfg.Input.SoftDropRelease()).WithTerminal(rt),
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
