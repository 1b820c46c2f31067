package tetromino

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vovakirdan/tui-tetromino/internal/core"
)

func TestCatalogHasSevenShapes(t *testing.T) {
	shapes := Shapes()
	assert.Len(t, shapes, 7)
	assert.ElementsMatch(t, []ShapeType{I, O, T, S, Z, L, J}, shapes)
	assert.Nil(t, Rotations(Empty))
}

func TestRotationCounts(t *testing.T) {
	expected := map[ShapeType]int{O: 1, I: 2, S: 2, Z: 2, T: 4, L: 4, J: 4}
	for shape, n := range expected {
		assert.Len(t, Rotations(shape), n, "shape %v", shape)
	}
}

func TestEveryRotationHasFourCells(t *testing.T) {
	for _, shape := range Shapes() {
		for i, r := range Rotations(shape) {
			assert.Len(t, r.Cells(), 4, "shape %v rotation %d", shape, i)
		}
	}
}

func TestFootprint(t *testing.T) {
	tests := []struct {
		name     string
		grid     RotationState
		expected core.Rect
	}{
		{"O", Rotations(O)[0], core.NewRect(1, 1, 2, 2)},
		{"I vertical", Rotations(I)[0], core.NewRect(1, 0, 1, 4)},
		{"I horizontal", Rotations(I)[1], core.NewRect(0, 1, 4, 1)},
		{"S flat", Rotations(S)[0], core.NewRect(1, 0, 3, 2)},
		{"empty grid", RotationState{}, core.Rect{}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, tc.grid.Footprint())
		})
	}
}

func TestShapeTypeString(t *testing.T) {
	assert.Equal(t, "I", I.String())
	assert.Equal(t, "J", J.String())
	assert.Equal(t, ".", Empty.String())
}
