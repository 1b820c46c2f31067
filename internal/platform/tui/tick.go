// Package tui provides the Bubble Tea host for the tetromino engine.
// It renders engine snapshots, maps keys to engine commands and serves
// games over SSH.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-tetromino/internal/tetromino"
)

// FrameMsg carries a snapshot published by the engine.
type FrameMsg tetromino.Snapshot

// softDropReleaseMsg ends a soft drop when no key repeat followed.
type softDropReleaseMsg struct {
	seq int
}

// waitForFrame blocks until the session publishes the next snapshot or
// is closed.
func waitForFrame(s *Session) tea.Cmd {
	return func() tea.Msg {
		select {
		case snap := <-s.Frames():
			return FrameMsg(snap)
		case <-s.Done():
			return nil
		}
	}
}

// softDropReleaseCmd fires after the release window.
func softDropReleaseCmd(d time.Duration, seq int) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return softDropReleaseMsg{seq: seq}
	})
}
