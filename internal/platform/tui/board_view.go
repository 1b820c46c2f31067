package tui

import (
	"fmt"

	"github.com/vovakirdan/tui-tetromino/internal/core"
	"github.com/vovakirdan/tui-tetromino/internal/tetromino"
)

const (
	cellWidth = 2 // terminal columns per board cell
	hudGap    = 3
	hudWidth  = 18
)

const (
	borderSide   = '║'
	borderBottom = '═'
	borderLeft   = '╚'
	borderRight  = '╝'
	blockRune    = '█'
)

// FrameSize returns the screen size needed to draw a board.
func FrameSize(boardW, boardH int) (int, int) {
	wellW := boardW*cellWidth + 2
	return wellW + hudGap + hudWidth, core.Max(boardH+1, tetromino.GridSize+10)
}

// DrawFrame renders a snapshot: the well with its borders on the left and
// the HUD with the next piece on the right.
func DrawFrame(s *core.Screen, snap tetromino.Snapshot) {
	s.Clear()
	well := core.NewRect(1, 0, snap.Width*cellWidth, snap.Height)

	drawBorders(s, well)
	if snap.Scene == tetromino.ScenePause {
		// The board stays hidden while paused.
		_, cy := well.Center()
		s.DrawTextCentered(well, cy, "Pause", core.ColorWhite)
	} else {
		drawCells(s, well, snap)
	}
	drawHUD(s, well.Right()+1+hudGap, snap)
}

func drawBorders(s *core.Screen, well core.Rect) {
	s.DrawVLine(well.X-1, well.Y, well.H, borderSide, core.ColorGray)
	s.DrawVLine(well.Right(), well.Y, well.H, borderSide, core.ColorGray)
	s.SetColored(well.X-1, well.Bottom(), borderLeft, core.ColorGray)
	s.DrawHLine(well.X, well.Bottom(), well.W, borderBottom, core.ColorGray)
	s.SetColored(well.Right(), well.Bottom(), borderRight, core.ColorGray)
}

func drawCells(s *core.Screen, well core.Rect, snap tetromino.Snapshot) {
	for y := range snap.Height {
		for x := range snap.Width {
			t := snap.Cell(x, y)
			if t == tetromino.Empty {
				continue
			}
			drawBlock(s, well.X+x*cellWidth, well.Y+y, ShapeColor(t))
		}
	}
}

// drawBlock draws one board cell. A block that does not fit on the
// screen is skipped whole.
func drawBlock(s *core.Screen, x, y int, c core.Color) {
	b := s.Bounds()
	if !b.Contains(x, y) || !b.Contains(x+cellWidth-1, y) {
		return
	}
	for i := range cellWidth {
		s.SetColored(x+i, y, blockRune, c)
	}
}

func drawHUD(s *core.Screen, x int, snap tetromino.Snapshot) {
	y := 0
	s.DrawTextColored(x, y, "TETROMINO", core.ColorWhite)
	y += 2
	s.DrawText(x, y, fmt.Sprintf("Best Lines: %d", snap.HighScore))
	s.DrawText(x, y+1, fmt.Sprintf("Level: %d", snap.Level))
	s.DrawText(x, y+2, fmt.Sprintf("Lines: %d", snap.Lines))
	y += 4

	s.DrawText(x, y, "Next:")
	y++
	if snap.Next != tetromino.Empty && snap.Scene != tetromino.ScenePause {
		c := ShapeColor(snap.Next)
		for _, cell := range snap.NextGrid.Cells() {
			drawBlock(s, x+cell[0]*cellWidth, y+cell[1], c)
		}
	}
	y += tetromino.GridSize + 1

	switch snap.Scene {
	case tetromino.SceneGameOver:
		s.DrawTextColored(x, y, "GAME OVER", core.ColorRed)
		s.DrawText(x, y+1, "space: new game")
	case tetromino.ScenePause:
		s.DrawText(x, y, "p: resume")
	}
}
