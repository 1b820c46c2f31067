package tetromino

import (
	"errors"
	"fmt"
)

// Reference board dimensions.
const (
	DefaultWidth  = 10
	DefaultHeight = 20
)

// ErrOutOfRange is returned for cell coordinates outside the board.
var ErrOutOfRange = errors.New("tetromino: cell out of range")

// Board is a fixed-size grid of frozen cells. Each cell holds Empty or
// the type of the piece frozen there; gameplay only looks at emptiness.
type Board struct {
	width  int
	height int
	cells  [][]ShapeType
}

// NewBoard creates an empty board.
func NewBoard(width, height int) *Board {
	b := &Board{width: width, height: height}
	b.cells = make([][]ShapeType, height)
	for y := range b.cells {
		b.cells[y] = make([]ShapeType, width)
	}
	return b
}

// Width returns the number of columns.
func (b *Board) Width() int {
	return b.width
}

// Height returns the number of rows.
func (b *Board) Height() int {
	return b.height
}

func (b *Board) inBounds(x, y int) bool {
	return x >= 0 && x < b.width && y >= 0 && y < b.height
}

// IsOccupied reports whether a cell holds a frozen block.
func (b *Board) IsOccupied(x, y int) (bool, error) {
	if !b.inBounds(x, y) {
		return false, fmt.Errorf("%w: (%d, %d) on %dx%d board", ErrOutOfRange, x, y, b.width, b.height)
	}
	return b.cells[y][x] != Empty, nil
}

// Cell returns the tag at (x, y), or Empty out of range.
func (b *Board) Cell(x, y int) ShapeType {
	if !b.inBounds(x, y) {
		return Empty
	}
	return b.cells[y][x]
}

// Set writes a tag into a cell. Out-of-range writes are ignored.
func (b *Board) Set(x, y int, t ShapeType) {
	if !b.inBounds(x, y) {
		return
	}
	b.cells[y][x] = t
}

// ScanRow reports whether every cell of row y is filled.
func (b *Board) ScanRow(y int) bool {
	if y < 0 || y >= b.height {
		return false
	}
	for _, c := range b.cells[y] {
		if c == Empty {
			return false
		}
	}
	return true
}

// ShiftRowsDown removes row fromY by pulling every row above it down by
// one and clearing row 0. Rows below fromY are untouched.
func (b *Board) ShiftRowsDown(fromY int) {
	if fromY >= b.height {
		fromY = b.height - 1
	}
	for y := fromY; y > 0; y-- {
		copy(b.cells[y], b.cells[y-1])
	}
	if b.height > 0 {
		clear(b.cells[0])
	}
}

// OccupiedCount returns the number of filled cells.
func (b *Board) OccupiedCount() int {
	n := 0
	for _, row := range b.cells {
		for _, c := range row {
			if c != Empty {
				n++
			}
		}
	}
	return n
}

// Clone returns a deep copy of the board.
func (b *Board) Clone() *Board {
	c := NewBoard(b.width, b.height)
	for y := range b.cells {
		copy(c.cells[y], b.cells[y])
	}
	return c
}

// Rows returns a copy of the cells, indexed [y][x].
func (b *Board) Rows() [][]ShapeType {
	return b.Clone().cells
}
