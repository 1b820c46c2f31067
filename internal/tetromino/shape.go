// Package tetromino implements the falling-block puzzle engine: shape
// catalog, pieces, board, collision, line clearing and the scene state
// machine. It has no terminal or storage dependencies; hosts drive it
// through commands and observe it through snapshots.
package tetromino

import "github.com/vovakirdan/tui-tetromino/internal/core"

// ShapeType identifies one of the seven tetrominoes.
// The zero value Empty marks a vacant board cell.
type ShapeType uint8

const (
	Empty ShapeType = iota
	I
	O
	T
	S
	Z
	L
	J
)

// String returns the letter of the shape, or "." for Empty.
func (t ShapeType) String() string {
	switch t {
	case I:
		return "I"
	case O:
		return "O"
	case T:
		return "T"
	case S:
		return "S"
	case Z:
		return "Z"
	case L:
		return "L"
	case J:
		return "J"
	default:
		return "."
	}
}

// GridSize is the side of every rotation grid.
const GridSize = 4

// RotationState is the occupancy of a piece in one orientation.
type RotationState [GridSize][GridSize]bool

// Cells returns the occupied (x, y) offsets, row by row.
func (r RotationState) Cells() [][2]int {
	cells := make([][2]int, 0, 4)
	for y := range GridSize {
		for x := range GridSize {
			if r[y][x] {
				cells = append(cells, [2]int{x, y})
			}
		}
	}
	return cells
}

// Footprint returns the bounding box of the occupied cells within the grid.
func (r RotationState) Footprint() core.Rect {
	minX, minY := GridSize, GridSize
	maxX, maxY := -1, -1
	for _, c := range r.Cells() {
		minX = core.Min(minX, c[0])
		minY = core.Min(minY, c[1])
		maxX = core.Max(maxX, c[0])
		maxY = core.Max(maxY, c[1])
	}
	if maxX < 0 {
		return core.Rect{}
	}
	return core.NewRect(minX, minY, maxX-minX+1, maxY-minY+1)
}

// grid builds a RotationState from rows of '#' and '.'.
func grid(rows ...string) RotationState {
	var r RotationState
	for y, row := range rows {
		for x, ch := range row {
			r[y][x] = ch == '#'
		}
	}
	return r
}

var catalog = map[ShapeType][]RotationState{
	O: {
		grid("....", ".##.", ".##.", "...."),
	},
	I: {
		grid(".#..", ".#..", ".#..", ".#.."),
		grid("....", "####", "....", "...."),
	},
	T: {
		grid("..#.", ".###", "....", "...."),
		grid("..#.", "..##", "..#.", "...."),
		grid("....", ".###", "..#.", "...."),
		grid("..#.", ".##.", "..#.", "...."),
	},
	S: {
		grid("..##", ".##.", "....", "...."),
		grid(".#..", ".##.", "..#.", "...."),
	},
	Z: {
		grid(".##.", "..##", "....", "...."),
		grid("..#.", ".##.", ".#..", "...."),
	},
	L: {
		grid(".#..", ".#..", ".##.", "...."),
		grid("....", ".###", ".#..", "...."),
		grid(".##.", "..#.", "..#.", "...."),
		grid("....", "...#", ".###", "...."),
	},
	J: {
		grid("..#.", "..#.", ".##.", "...."),
		grid("....", ".#..", ".###", "...."),
		grid(".##.", ".#..", ".#..", "...."),
		grid("....", ".###", "...#", "...."),
	},
}

// shapeOrder is the draw order used by RandomPiece.
var shapeOrder = []ShapeType{I, O, T, L, J, S, Z}

// Shapes returns the seven shape types in catalog order.
func Shapes() []ShapeType {
	out := make([]ShapeType, len(shapeOrder))
	copy(out, shapeOrder)
	return out
}

// Rotations returns the rotation cycle of a shape. The slice is shared
// and must not be modified. Empty and unknown types return nil.
func Rotations(t ShapeType) []RotationState {
	return catalog[t]
}
