package tetromino

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCheckCollision(t *testing.T) {
	b := NewBoard(10, 20)
	b.Set(5, 10, S)
	vertical := Rotations(I)[0] // column 1, rows 0-3

	tests := []struct {
		name     string
		x, y     int
		expected bool
	}{
		{"free", 0, 0, false},
		{"left wall", -2, 0, true},
		{"touching left wall", -1, 0, false},
		{"right wall", 9, 0, true},
		{"touching right wall", 8, 0, false},
		{"floor", 0, 17, true},
		{"resting on floor", 0, 16, false},
		{"above the top", 0, -3, false},
		{"frozen cell", 4, 8, true},
		{"next to frozen cell", 3, 8, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, CheckCollision(b, vertical, tc.x, tc.y))
		})
	}
}

// referenceCollision is a direct restatement of the collision rule.
func referenceCollision(b *Board, g RotationState, x, y int) bool {
	for yt := range GridSize {
		for xt := range GridSize {
			if !g[yt][xt] {
				continue
			}
			bx, by := x+xt, y+yt
			if bx < 0 || bx >= b.Width() || by >= b.Height() {
				return true
			}
			if by >= 0 && b.Cell(bx, by) != Empty {
				return true
			}
		}
	}
	return false
}

func TestCheckCollisionMatchesRule(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for range 300 {
		b := NewBoard(10, 20)
		for range rng.Intn(60) {
			b.Set(rng.Intn(10), rng.Intn(20), Shapes()[rng.Intn(7)])
		}
		p := RandomPiece(rng)
		for range 20 {
			x, y := rng.Intn(16)-4, rng.Intn(28)-6
			assert.Equal(t, referenceCollision(b, p.Grid(), x, y), CheckCollision(b, p.Grid(), x, y),
				"piece %v rotation %d at (%d, %d)", p.Type, p.Rotation(), x, y)
		}
	}
}

func TestCommitPiece(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	b := NewBoard(10, 20)
	p := Spawn(O, rng)
	p.X, p.Y = 3, 17

	CommitPiece(b, p)

	assert.Equal(t, 4, b.OccupiedCount())
	for _, c := range [][2]int{{4, 18}, {5, 18}, {4, 19}, {5, 19}} {
		assert.Equal(t, O, b.Cell(c[0], c[1]))
	}
}

func TestCommitPieceDropsCellsAboveBoard(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	b := NewBoard(10, 20)
	p := Spawn(O, rng)
	p.X, p.Y = 0, -2 // rows -1 and 0

	CommitPiece(b, p)
	assert.Equal(t, 2, b.OccupiedCount())
}
