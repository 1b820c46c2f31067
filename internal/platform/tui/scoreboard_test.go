package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-tetromino/internal/storage"
)

func seedScores(t *testing.T, store *storage.Store) {
	t.Helper()
	for _, e := range []storage.ScoreEntry{
		{Player: "ann", Lines: 4, Preset: "normal"},
		{Player: "bob", Lines: 12, Level: 1, Preset: "hard"},
		{Player: "ann", Lines: 8, Preset: "easy"},
	} {
		_, err := store.SaveScore(e)
		require.NoError(t, err)
	}
}

func TestScoreboardBestTab(t *testing.T) {
	store := openStore(t)
	seedScores(t, store)

	m := NewScoreboardModel(store, "ann", 100, 30)
	require.Len(t, m.scores, 3)
	assert.Equal(t, 12, m.scores[0].Lines)
	assert.Equal(t, "BEST GAMES", m.Title())

	view := m.View()
	assert.Contains(t, view, "BEST GAMES")
	assert.Contains(t, view, "Best Lines: 12")
	assert.Contains(t, view, "bob")
}

func TestScoreboardPlayerTab(t *testing.T) {
	store := openStore(t)
	seedScores(t, store)

	m := NewScoreboardModel(store, "ann", 100, 30)
	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = next.(ScoreboardModel)

	assert.Equal(t, "RECENT GAMES - ann", m.Title())
	require.Len(t, m.scores, 2)
	assert.Equal(t, 8, m.scores[0].Lines, "most recent first")

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, "BEST GAMES", next.(ScoreboardModel).Title())
}

func TestScoreboardNoPlayerStaysOnBest(t *testing.T) {
	store := openStore(t)
	seedScores(t, store)

	m := NewScoreboardModel(store, "", 100, 30)
	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, "BEST GAMES", next.(ScoreboardModel).Title())
}

func TestScoreboardEmpty(t *testing.T) {
	m := NewScoreboardModel(openStore(t), "ann", 100, 30)
	assert.Contains(t, m.View(), "No games recorded yet.")

	m = NewScoreboardModel(nil, "", 0, 0)
	assert.Empty(t, m.scores)
	assert.Contains(t, m.View(), "No games recorded yet.")
}

func TestScoreboardQuit(t *testing.T) {
	m := NewScoreboardModel(nil, "", 80, 24)
	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	assert.Empty(t, next.(ScoreboardModel).View())
}

func TestScoreboardTableHeight(t *testing.T) {
	tests := []struct {
		height   int
		expected int
	}{
		{4, 3},
		{30, 22},
		{500, maxScores},
	}
	for _, tc := range tests {
		m := NewScoreboardModel(nil, "", 80, tc.height)
		assert.Equal(t, tc.expected, m.tableHeight(), "height %d", tc.height)
	}
}
