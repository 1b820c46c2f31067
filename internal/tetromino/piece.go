package tetromino

import (
	"fmt"
	"math/rand"
)

// Piece is a live tetromino bound to one catalog entry.
// X and Y are the board coordinates of the top-left corner of its grid.
type Piece struct {
	Type     ShapeType
	X, Y     int
	rotation int
	sequence []RotationState
}

// Spawn creates a piece of the given type with a uniformly random
// initial rotation. The random orientation is deliberate.
func Spawn(t ShapeType, rng *rand.Rand) *Piece {
	seq := Rotations(t)
	if len(seq) == 0 {
		panic(fmt.Sprintf("tetromino: empty rotation sequence for shape %v", t))
	}
	return &Piece{
		Type:     t,
		rotation: rng.Intn(len(seq)),
		sequence: seq,
	}
}

// RandomPiece draws a uniformly random shape and spawns it.
func RandomPiece(rng *rand.Rand) *Piece {
	return Spawn(shapeOrder[rng.Intn(len(shapeOrder))], rng)
}

// Rotation returns the current index into the rotation cycle.
func (p *Piece) Rotation() int {
	return p.rotation
}

// RotationCount returns the length of the rotation cycle.
func (p *Piece) RotationCount() int {
	return len(p.sequence)
}

// Grid returns the occupancy grid for the current rotation.
func (p *Piece) Grid() RotationState {
	return p.sequence[p.rotation]
}

// Width returns the width of the piece grid.
func (p *Piece) Width() int {
	return GridSize
}

// Height returns the height of the piece grid.
func (p *Piece) Height() int {
	return GridSize
}

// PeekRotateRight returns the grid one step clockwise without rotating.
func (p *Piece) PeekRotateRight() RotationState {
	return p.sequence[p.next(1)]
}

// PeekRotateLeft returns the grid one step counter-clockwise without rotating.
func (p *Piece) PeekRotateLeft() RotationState {
	return p.sequence[p.next(-1)]
}

// RotateRight advances the rotation index. Callers check collision first;
// there is no wall kick.
func (p *Piece) RotateRight() {
	p.rotation = p.next(1)
}

// RotateLeft steps the rotation index back.
func (p *Piece) RotateLeft() {
	p.rotation = p.next(-1)
}

func (p *Piece) next(step int) int {
	n := len(p.sequence)
	return ((p.rotation+step)%n + n) % n
}
