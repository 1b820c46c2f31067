package tetromino

import (
	"io"
	"math/rand"
	"sync"
	"time"

	"github.com/charmbracelet/log"
)

// Scene is the coarse game state gating which commands apply.
type Scene int

const (
	ScenePlay Scene = iota
	ScenePause
	SceneGameOver
)

func (s Scene) String() string {
	switch s {
	case ScenePlay:
		return "play"
	case ScenePause:
		return "pause"
	case SceneGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// GameState is the mutable state of one game.
type GameState struct {
	Level     int
	Lines     int
	Score     int // reserved, never computed
	Board     *Board
	Active    *Piece // nil until the next tick spawns one
	Next      *Piece
	QuickFall bool
}

// Options configures a new Engine. Zero values select defaults.
type Options struct {
	Width     int
	Height    int
	Speed     SpeedConfig
	HighScore int   // previously persisted best lines; negative means 0
	Seed      int64 // 0 uses the current time
	Scheduler Scheduler
	Logger    *log.Logger

	// Observers registered before the first tick runs.
	OnSnapshot  func(Snapshot)
	OnHighScore func(lines int)
}

// Engine runs one game. Commands and ticks are serialized by a mutex.
// Observers are never called under it: their calls are queued in order
// and run by whichever goroutine finds the queue idle, so a callback may
// itself issue commands or call Destroy. No queued call starts once
// Destroy has run.
type Engine struct {
	mu        sync.Mutex
	width     int
	height    int
	speed     SpeedConfig
	rng       *rand.Rand
	sched     Scheduler
	logger    *log.Logger
	state     *GameState
	scene     Scene
	tick      uint64
	highScore int
	hsChanged bool
	destroyed bool

	timer Timer
	gen   uint64 // generation of the pending timer

	snapshotSubs  []func(Snapshot)
	highScoreSubs []func(int)
	outbox        []func() // observer calls waiting to run
	draining      bool     // a goroutine is running the outbox
}

// New creates an engine in the Play scene and runs the first tick.
func New(opts Options) *Engine {
	if opts.Width <= 0 {
		opts.Width = DefaultWidth
	}
	if opts.Height <= 0 {
		opts.Height = DefaultHeight
	}
	opts.Speed = opts.Speed.withDefaults()
	if opts.HighScore < 0 {
		opts.HighScore = 0
	}
	if opts.Seed == 0 {
		opts.Seed = time.Now().UnixNano()
	}
	if opts.Scheduler == nil {
		opts.Scheduler = ClockScheduler{}
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}

	e := &Engine{
		width:     opts.Width,
		height:    opts.Height,
		speed:     opts.Speed,
		rng:       rand.New(rand.NewSource(opts.Seed)),
		sched:     opts.Scheduler,
		logger:    opts.Logger,
		highScore: opts.HighScore,
	}
	if opts.OnSnapshot != nil {
		e.snapshotSubs = append(e.snapshotSubs, opts.OnSnapshot)
	}
	if opts.OnHighScore != nil {
		e.highScoreSubs = append(e.highScoreSubs, opts.OnHighScore)
	}

	e.do(func() { e.scenePlay(true) })
	return e
}

// OnSnapshot registers a render sink called after every state change.
func (e *Engine) OnSnapshot(fn func(Snapshot)) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if !e.destroyed {
		e.snapshotSubs = append(e.snapshotSubs, fn)
	}
}

// OnHighScore registers a callback for new best line counts.
func (e *Engine) OnHighScore(fn func(lines int)) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if !e.destroyed {
		e.highScoreSubs = append(e.highScoreSubs, fn)
	}
}

// Snapshot returns the current state.
func (e *Engine) Snapshot() Snapshot {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.snapshot()
}

// Scene returns the current scene.
func (e *Engine) Scene() Scene {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.scene
}

// HighScore returns the best line count seen by this engine.
func (e *Engine) HighScore() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.highScore
}

// HighScoreChanged reports whether the high score rose since the last call.
func (e *Engine) HighScoreChanged() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	changed := e.hsChanged
	e.hsChanged = false
	return changed
}

// MoveLeft shifts the active piece one column left if it fits.
func (e *Engine) MoveLeft() {
	e.do(func() { e.shift(-1) })
}

// MoveRight shifts the active piece one column right if it fits.
func (e *Engine) MoveRight() {
	e.do(func() { e.shift(1) })
}

// SoftDropStart switches to the fast interval and ticks immediately.
func (e *Engine) SoftDropStart() {
	e.do(func() {
		if e.scene != ScenePlay {
			return
		}
		e.cancelTimer()
		e.state.QuickFall = true
		e.step()
	})
}

// SoftDropStop returns to the level interval from the next schedule on.
func (e *Engine) SoftDropStop() {
	e.do(func() {
		if e.scene != ScenePlay {
			return
		}
		e.state.QuickFall = false
	})
}

// RotateRight rotates clockwise if the result fits. In GameOver it
// starts a new game.
func (e *Engine) RotateRight() {
	e.do(func() {
		if e.scene == SceneGameOver {
			e.scenePlay(true)
			return
		}
		e.rotate(1)
	})
}

// RotateLeft rotates counter-clockwise if the result fits.
func (e *Engine) RotateLeft() {
	e.do(func() { e.rotate(-1) })
}

// Pause toggles between Play and Pause. It does nothing in GameOver.
func (e *Engine) Pause() {
	e.do(func() {
		switch e.scene {
		case ScenePlay:
			e.scenePause()
		case ScenePause:
			e.logger.Debug("resume")
			e.scenePlay(false)
		}
	})
}

// Restart discards the current game and starts a fresh one.
func (e *Engine) Restart() {
	e.do(func() { e.scenePlay(true) })
}

// Destroy cancels the pending tick, drops all observers and discards
// observer calls still queued. The engine ignores every command
// afterwards. It may be called from inside an observer.
func (e *Engine) Destroy() {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.destroyed {
		return
	}
	e.cancelTimer()
	e.destroyed = true
	e.snapshotSubs = nil
	e.highScoreSubs = nil
	e.outbox = nil
}

// do runs fn as a critical section, then delivers queued notifications
// unless another goroutine is already delivering them.
func (e *Engine) do(fn func()) {
	e.mu.Lock()
	if e.destroyed {
		e.mu.Unlock()
		return
	}
	fn()
	if e.draining || len(e.outbox) == 0 {
		e.mu.Unlock()
		return
	}
	e.draining = true
	e.mu.Unlock()

	e.drain()
}

// drain runs queued observer calls one at a time, outside the lock,
// until the outbox is empty or the engine is destroyed.
func (e *Engine) drain() {
	for {
		e.mu.Lock()
		if e.destroyed || len(e.outbox) == 0 {
			e.outbox = nil
			e.draining = false
			e.mu.Unlock()
			return
		}
		f := e.outbox[0]
		e.outbox = e.outbox[1:]
		e.mu.Unlock()

		f()
	}
}

// publish queues a snapshot for every render sink.
func (e *Engine) publish() {
	if len(e.snapshotSubs) == 0 {
		return
	}
	snap := e.snapshot()
	for _, fn := range e.snapshotSubs {
		e.outbox = append(e.outbox, func() { fn(snap) })
	}
}

func (e *Engine) notifyHighScore(lines int) {
	e.hsChanged = true
	for _, fn := range e.highScoreSubs {
		e.outbox = append(e.outbox, func() { fn(lines) })
	}
}

func (e *Engine) resetState() {
	e.state = &GameState{
		Board: NewBoard(e.width, e.height),
		Next:  RandomPiece(e.rng),
	}
	e.tick = 0
}

// Scenes

func (e *Engine) scenePlay(reset bool) {
	e.logger.Debug("scene", "scene", ScenePlay, "reset", reset)
	e.cancelTimer()
	e.scene = ScenePlay
	if reset {
		e.resetState()
	}
	e.step()
	e.state.QuickFall = false
}

func (e *Engine) scenePause() {
	e.logger.Debug("scene", "scene", ScenePause)
	e.scene = ScenePause
	e.cancelTimer()
	e.publish()
}

func (e *Engine) sceneGameOver() {
	e.logger.Info("game over", "lines", e.state.Lines, "level", e.state.Level, "best", e.highScore)
	e.scene = SceneGameOver
	e.cancelTimer()
	e.publish()
}

// Tick

func (e *Engine) schedule() {
	e.gen++
	gen := e.gen
	d := e.speed.TickInterval(e.state.Level, e.state.QuickFall)
	e.timer = e.sched.AfterFunc(d, func() { e.onTimer(gen) })
}

func (e *Engine) cancelTimer() {
	if e.timer != nil {
		e.timer.Stop()
		e.timer = nil
	}
	e.gen++
}

func (e *Engine) onTimer(gen uint64) {
	e.do(func() {
		if gen != e.gen || e.scene != ScenePlay {
			return
		}
		e.timer = nil
		e.step()
	})
}

// step runs one simulation tick and schedules the next one unless the
// game ended.
func (e *Engine) step() {
	st := e.state
	e.tick++

	if st.Active == nil {
		if !e.spawn() {
			e.sceneGameOver()
			return
		}
	} else if CheckCollision(st.Board, st.Active.Grid(), st.Active.X, st.Active.Y+1) {
		p := st.Active
		CommitPiece(st.Board, p)
		e.clearLines(p.Y, p.Y+p.Height()-1)
		if !e.spawn() {
			e.sceneGameOver()
			return
		}
	} else {
		st.Active.Y++
	}

	e.publish()
	e.schedule()
}

// spawn promotes the lookahead piece and draws a new one. It returns
// false if the new piece collides at its spawn position.
func (e *Engine) spawn() bool {
	st := e.state
	p := st.Next
	p.X = (st.Board.Width() - p.Width()) / 2
	p.Y = 0
	st.Active = p
	st.Next = RandomPiece(e.rng)
	st.QuickFall = false
	return !CheckCollision(st.Board, p.Grid(), p.X, p.Y)
}

func (e *Engine) clearLines(yTop, yBottom int) {
	st := e.state
	level := st.Level
	res := ProcessClearedLines(st.Board, st, e.highScore, yTop, yBottom)
	if res.Cleared == 0 {
		return
	}
	e.logger.Debug("lines cleared", "rows", res.Cleared, "lines", st.Lines)
	if st.Level != level {
		e.logger.Debug("next level", "level", st.Level)
	}
	if res.NewHighScore {
		e.highScore = res.HighScore
		e.notifyHighScore(res.HighScore)
	}
}

// Commands

func (e *Engine) shift(dx int) {
	p := e.state.Active
	if e.scene != ScenePlay || p == nil {
		return
	}
	if CheckCollision(e.state.Board, p.Grid(), p.X+dx, p.Y) {
		return
	}
	p.X += dx
	e.publish()
}

func (e *Engine) rotate(dir int) {
	p := e.state.Active
	if e.scene != ScenePlay || p == nil {
		return
	}
	candidate := p.PeekRotateRight()
	if dir < 0 {
		candidate = p.PeekRotateLeft()
	}
	if CheckCollision(e.state.Board, candidate, p.X, p.Y) {
		return
	}
	if dir < 0 {
		p.RotateLeft()
	} else {
		p.RotateRight()
	}
	e.publish()
}
