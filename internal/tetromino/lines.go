package tetromino

// LinesPerLevel is the number of cleared rows between level increases.
const LinesPerLevel = 10

// ClearResult describes one line-clearing pass.
type ClearResult struct {
	Cleared      int  // rows removed in this pass
	HighScore    int  // best lines after the pass
	NewHighScore bool // lines went strictly above the previous best
}

// ProcessClearedLines removes every full row in [yTop, yBottom], top to
// bottom, one row at a time. Each removed row adds one to st.Lines and a
// level every LinesPerLevel lines. best is the previously recorded high
// score in lines.
func ProcessClearedLines(b *Board, st *GameState, best, yTop, yBottom int) ClearResult {
	res := ClearResult{HighScore: best}
	if yTop < 0 {
		yTop = 0
	}
	if yBottom >= b.Height() {
		yBottom = b.Height() - 1
	}

	for y := yTop; y <= yBottom; y++ {
		if !b.ScanRow(y) {
			continue
		}
		b.ShiftRowsDown(y)
		res.Cleared++
		st.Lines++
		if st.Lines%LinesPerLevel == 0 {
			st.Level++
		}
		if st.Lines > res.HighScore {
			res.HighScore = st.Lines
			res.NewHighScore = true
		}
	}
	return res
}
