package tui

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-tetromino/internal/config"
	"github.com/vovakirdan/tui-tetromino/internal/storage"
	"github.com/vovakirdan/tui-tetromino/internal/tetromino"
)

func openStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func newTestSession(t *testing.T, store *storage.Store) (*Session, *tetromino.ManualScheduler) {
	t.Helper()
	sched := tetromino.NewManualScheduler()
	s := NewSession(config.DefaultTetrominoConfig(), SessionOptions{
		Store:     store,
		Player:    "ann",
		Seed:      7,
		Scheduler: sched,
	})
	t.Cleanup(s.Close)
	return s, sched
}

// playUntilGameOver drops every piece straight down the middle, which
// tops out without ever completing a row.
func playUntilGameOver(t *testing.T, e *tetromino.Engine) {
	t.Helper()
	for range 5000 {
		if e.Scene() == tetromino.SceneGameOver {
			return
		}
		e.SoftDropStart()
	}
	t.Fatal("game did not end")
}

func TestSessionLoadsHighScore(t *testing.T) {
	store := openStore(t)
	require.NoError(t, store.RecordHighScore(9))

	s, _ := newTestSession(t, store)
	assert.Equal(t, 9, s.Engine().HighScore())
	assert.Equal(t, 9, s.Engine().Snapshot().HighScore)
}

func TestSessionSavesFinishedGameOnce(t *testing.T) {
	store := openStore(t)
	s, _ := newTestSession(t, store)

	playUntilGameOver(t, s.Engine())
	// Extra commands in GameOver publish nothing new.
	s.Engine().Pause()
	s.Engine().MoveLeft()

	scores, err := store.TopScores(10)
	require.NoError(t, err)
	require.Len(t, scores, 1)
	assert.Equal(t, "ann", scores[0].Player)
	assert.Equal(t, "normal", scores[0].Preset)
	assert.Zero(t, scores[0].Lines)

	// A restarted game is saved again when it ends.
	s.Engine().RotateRight()
	require.Equal(t, tetromino.ScenePlay, s.Engine().Scene())
	playUntilGameOver(t, s.Engine())

	scores, err = store.TopScores(10)
	require.NoError(t, err)
	assert.Len(t, scores, 2)
}

func TestSessionPersistsHighScore(t *testing.T) {
	store := openStore(t)
	s, _ := newTestSession(t, store)

	s.onHighScore(5)
	best, err := store.HighScore()
	require.NoError(t, err)
	assert.Equal(t, 5, best)
}

func TestSessionWithoutStore(t *testing.T) {
	s, _ := newTestSession(t, nil)
	playUntilGameOver(t, s.Engine())
	s.onHighScore(3)
	assert.Equal(t, tetromino.SceneGameOver, s.Engine().Scene())
}

func TestSessionKeepsLatestFrame(t *testing.T) {
	s, sched := newTestSession(t, nil)

	for range 5 {
		sched.RunNext()
	}

	select {
	case snap := <-s.Frames():
		assert.Equal(t, s.Engine().Snapshot().Tick, snap.Tick)
	default:
		t.Fatal("expected a pending frame")
	}

	select {
	case <-s.Frames():
		t.Fatal("only the latest frame is kept")
	default:
	}
}

func TestSessionClose(t *testing.T) {
	s, sched := newTestSession(t, nil)
	<-s.Frames()

	s.Close()
	s.Close()

	assert.Zero(t, sched.Pending())
	select {
	case <-s.Done():
	default:
		t.Fatal("Done should be closed")
	}
	assert.Nil(t, waitForFrame(s)())
}
