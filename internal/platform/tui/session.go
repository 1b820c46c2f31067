package tui

import (
	"io"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-tetromino/internal/config"
	"github.com/vovakirdan/tui-tetromino/internal/storage"
	"github.com/vovakirdan/tui-tetromino/internal/tetromino"
)

// SessionOptions configures a Session.
type SessionOptions struct {
	Store     *storage.Store // nil disables persistence
	Player    string
	Seed      int64
	Scheduler tetromino.Scheduler // nil uses the wall clock
	Logger    *log.Logger
}

// Session binds one engine to the score store and turns its callbacks
// into a stream of frames for the UI.
type Session struct {
	engine    *tetromino.Engine
	store     *storage.Store
	player    string
	preset    string
	logger    *log.Logger
	frames    chan tetromino.Snapshot
	done      chan struct{}
	closeOnce sync.Once

	mu    sync.Mutex
	saved bool // final result of the current game already stored
}

// NewSession loads the persisted best lines and starts a game.
func NewSession(cfg config.TetrominoConfig, opts SessionOptions) *Session {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	s := &Session{
		store:  opts.Store,
		player: opts.Player,
		preset: string(cfg.Difficulty.Preset),
		logger: logger,
		frames: make(chan tetromino.Snapshot, 1),
		done:   make(chan struct{}),
	}

	best := 0
	if s.store != nil {
		var err error
		if best, err = s.store.HighScore(); err != nil {
			logger.Warn("could not load high score", "error", err)
			best = 0
		}
	}

	engineOpts := cfg.EngineOptions()
	engineOpts.HighScore = best
	engineOpts.Seed = opts.Seed
	engineOpts.Scheduler = opts.Scheduler
	engineOpts.Logger = logger
	engineOpts.OnSnapshot = s.onSnapshot
	engineOpts.OnHighScore = s.onHighScore

	s.engine = tetromino.New(engineOpts)
	return s
}

// Engine returns the hosted engine.
func (s *Session) Engine() *tetromino.Engine {
	return s.engine
}

// Frames delivers the latest snapshot. Frames the UI has not picked up
// yet are replaced by newer ones.
func (s *Session) Frames() <-chan tetromino.Snapshot {
	return s.frames
}

// Done is closed when the session is closed.
func (s *Session) Done() <-chan struct{} {
	return s.done
}

// Close stops the engine. An unfinished game is not recorded.
func (s *Session) Close() {
	s.closeOnce.Do(func() {
		s.engine.Destroy()
		close(s.done)
	})
}

func (s *Session) onSnapshot(snap tetromino.Snapshot) {
	if snap.Scene == tetromino.SceneGameOver {
		s.saveResult(snap)
	} else if snap.Scene == tetromino.ScenePlay {
		s.mu.Lock()
		s.saved = false
		s.mu.Unlock()
	}
	s.push(snap)
}

func (s *Session) push(snap tetromino.Snapshot) {
	for {
		select {
		case s.frames <- snap:
			return
		case <-s.done:
			return
		default:
		}
		// Drop the stale frame and retry.
		select {
		case <-s.frames:
		default:
		}
	}
}

func (s *Session) saveResult(snap tetromino.Snapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.saved {
		return
	}
	s.saved = true

	if s.store == nil {
		return
	}
	entry := storage.ScoreEntry{
		Player: s.player,
		Lines:  snap.Lines,
		Level:  snap.Level,
		Preset: s.preset,
	}
	if _, err := s.store.SaveScore(entry); err != nil {
		s.logger.Error("could not save game", "error", err)
		return
	}
	s.logger.Info("game saved", "player", s.player, "lines", snap.Lines, "level", snap.Level)
}

func (s *Session) onHighScore(lines int) {
	s.logger.Debug("new high score", "lines", lines)
	if s.store == nil {
		return
	}
	if err := s.store.RecordHighScore(lines); err != nil {
		s.logger.Warn("could not persist high score", "lines", lines, "error", err)
	}
}
