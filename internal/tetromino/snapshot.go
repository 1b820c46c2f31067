package tetromino

// Snapshot is a rendering-agnostic copy of the engine state.
type Snapshot struct {
	Tick      uint64
	Scene     Scene
	Width     int
	Height    int
	Cells     [][]ShapeType // board with the active piece overlaid, [y][x]
	Level     int
	Lines     int
	Score     int
	HighScore int // best lines
	QuickFall bool
	Active    ShapeType
	Next      ShapeType
	NextGrid  RotationState
}

// Cell returns the tag at (x, y), or Empty out of range.
func (s Snapshot) Cell(x, y int) ShapeType {
	if y < 0 || y >= len(s.Cells) || x < 0 || x >= len(s.Cells[y]) {
		return Empty
	}
	return s.Cells[y][x]
}

// snapshot builds a Snapshot. Callers hold e.mu.
func (e *Engine) snapshot() Snapshot {
	st := e.state
	snap := Snapshot{
		Tick:      e.tick,
		Scene:     e.scene,
		Width:     st.Board.Width(),
		Height:    st.Board.Height(),
		Cells:     st.Board.Rows(),
		Level:     st.Level,
		Lines:     st.Lines,
		Score:     st.Score,
		HighScore: e.highScore,
		QuickFall: st.QuickFall,
	}

	if p := st.Active; p != nil {
		snap.Active = p.Type
		for _, c := range p.Grid().Cells() {
			x, y := p.X+c[0], p.Y+c[1]
			if y >= 0 && y < snap.Height && x >= 0 && x < snap.Width {
				snap.Cells[y][x] = p.Type
			}
		}
	}
	if n := st.Next; n != nil {
		snap.Next = n.Type
		snap.NextGrid = n.Grid()
	}
	return snap
}
