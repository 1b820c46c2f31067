package tetromino

// CheckCollision reports whether grid placed with its top-left corner at
// (x, y) would overlap a wall, the floor or a frozen cell. Cells above
// row 0 are allowed so pieces can spawn partly outside the well.
func CheckCollision(b *Board, grid RotationState, x, y int) bool {
	for _, c := range grid.Cells() {
		bx, by := x+c[0], y+c[1]
		if bx < 0 || bx >= b.Width() || by >= b.Height() {
			return true
		}
		if by < 0 {
			continue
		}
		if occupied, err := b.IsOccupied(bx, by); err != nil || occupied {
			return true
		}
	}
	return false
}

// CommitPiece freezes the piece into the board at its current position.
func CommitPiece(b *Board, p *Piece) {
	for _, c := range p.Grid().Cells() {
		b.Set(p.X+c[0], p.Y+c[1], p.Type)
	}
}
