package chess

// Move records a single applied move with everything needed for exact
// reversal. A Move is immutable once created; it is the sole unit of history.
type Move struct {
	// Source and destination squares.
	From Position
	To   Position

	// The coloured piece that stood on From before the move.
	Piece Piece

	// The coloured piece actually removed by the move (Empty if none).
	// For an en passant capture this differs from the destination square's
	// pre-move content: the captured pawn sat behind the destination.
	Captured Piece

	// The coloured piece placed on To when the move promoted a pawn
	// (Empty for non-promotions). Lets redo reproduce an under-promotion
	// instead of re-deriving the default.
	Promotion Piece

	// Castling rights as they stood before the move, for exact undo.
	RightsBefore CastlingRights

	// Halfmove clock as it stood before the move, for exact undo.
	HalfmoveBefore int

	// Castle is true when the move was a castling king move.
	Castle bool
}

// IsCapture returns true if this move removed a piece.
func (m *Move) IsCapture() bool {
	return m.Captured != Empty
}

// IsPromotion returns true if this move promoted a pawn.
func (m *Move) IsPromotion() bool {
	return m.Promotion != Empty
}

// Placed returns the coloured piece that ended up on the destination square:
// the promotion piece for promotions, the moving piece otherwise.
func (m *Move) Placed() Piece {
	if m.Promotion != Empty {
		return m.Promotion
	}
	return m.Piece
}

// String returns the move in coordinate form, e.g. "e2e4".
func (m *Move) String() string {
	return m.From.String() + m.To.String()
}
