package engine

import "github.com/lgbarn/chess-engine-go/internal/chess"

// Home columns for kings and rooks, and the columns a castling king lands on.
const (
	kingHomeCol       = 4
	kingsideRookCol   = 7
	queensideRookCol  = 0
	kingsideKingCol   = 6
	queensideKingCol  = 2
	kingsideRookDest  = 5
	queensideRookDest = 3
)

// homeRow returns the back rank of the given colour: row 7 for White,
// row 0 for Black.
func homeRow(colour chess.Colour) int {
	if colour == chess.White {
		return chess.BoardSize - 1
	}
	return 0
}

// pawnHomeRow returns the rank a pawn double-push starts from.
func pawnHomeRow(colour chess.Colour) int {
	if colour == chess.White {
		return chess.BoardSize - 2
	}
	return 1
}

// promotionRow returns the farthest rank for the given colour.
func promotionRow(colour chess.Colour) int {
	if colour == chess.White {
		return 0
	}
	return chess.BoardSize - 1
}

func kingsideFlag(colour chess.Colour) chess.CastlingRights {
	if colour == chess.White {
		return chess.WhiteKingside
	}
	return chess.BlackKingside
}

func queensideFlag(colour chess.Colour) chess.CastlingRights {
	if colour == chess.White {
		return chess.WhiteQueenside
	}
	return chess.BlackQueenside
}

// castlingTargets returns the castling destination squares available to a
// king standing on from. Rights are tracked via flags, not piece positions:
// the rook must still be on its home corner with its flag set, the squares
// between king and rook must be empty, and neither the king's square nor any
// square it passes through (destination included) may be attacked.
func (g *Game) castlingTargets(from chess.Position, colour chess.Colour) []chess.Position {
	row := homeRow(colour)
	if from.Row != row || from.Col != kingHomeCol {
		return nil
	}
	opponent := colour.Opposite()
	if IsSquareAttacked(g.board, from, opponent) {
		return nil
	}
	rook := chess.MakeColouredPiece(colour, chess.Rook)

	var moves []chess.Position
	if g.board.Rights.Has(kingsideFlag(colour)) &&
		g.board.Get(chess.Position{Row: row, Col: kingsideRookCol}) == rook &&
		squaresEmpty(g.board, row, 5, 6) &&
		!IsSquareAttacked(g.board, chess.Position{Row: row, Col: 5}, opponent) &&
		!IsSquareAttacked(g.board, chess.Position{Row: row, Col: 6}, opponent) {
		moves = append(moves, chess.Position{Row: row, Col: kingsideKingCol})
	}
	if g.board.Rights.Has(queensideFlag(colour)) &&
		g.board.Get(chess.Position{Row: row, Col: queensideRookCol}) == rook &&
		squaresEmpty(g.board, row, 1, 2, 3) &&
		!IsSquareAttacked(g.board, chess.Position{Row: row, Col: 3}, opponent) &&
		!IsSquareAttacked(g.board, chess.Position{Row: row, Col: 2}, opponent) {
		moves = append(moves, chess.Position{Row: row, Col: queensideKingCol})
	}
	return moves
}

// squaresEmpty reports whether every listed column on the row is empty.
func squaresEmpty(board *chess.Board, row int, cols ...int) bool {
	for _, col := range cols {
		if board.Get(chess.Position{Row: row, Col: col}) != chess.Empty {
			return false
		}
	}
	return true
}

// relocateCastlingRook moves the rook to the square adjacent to the king's
// castling destination, clearing the rook's home corner.
func relocateCastlingRook(board *chess.Board, kingTo chess.Position) {
	row := kingTo.Row
	if kingTo.Col == kingsideKingCol {
		rook := board.Get(chess.Position{Row: row, Col: kingsideRookCol})
		board.Set(chess.Position{Row: row, Col: kingsideRookCol}, chess.Empty)
		board.Set(chess.Position{Row: row, Col: kingsideRookDest}, rook)
	} else {
		rook := board.Get(chess.Position{Row: row, Col: queensideRookCol})
		board.Set(chess.Position{Row: row, Col: queensideRookCol}, chess.Empty)
		board.Set(chess.Position{Row: row, Col: queensideRookDest}, rook)
	}
}

// undoCastlingRook puts a castling rook back on its home corner.
func undoCastlingRook(board *chess.Board, kingTo chess.Position) {
	row := kingTo.Row
	if kingTo.Col == kingsideKingCol {
		rook := board.Get(chess.Position{Row: row, Col: kingsideRookDest})
		board.Set(chess.Position{Row: row, Col: kingsideRookDest}, chess.Empty)
		board.Set(chess.Position{Row: row, Col: kingsideRookCol}, rook)
	} else {
		rook := board.Get(chess.Position{Row: row, Col: queensideRookDest})
		board.Set(chess.Position{Row: row, Col: queensideRookDest}, chess.Empty)
		board.Set(chess.Position{Row: row, Col: queensideRookCol}, rook)
	}
}

// updateCastlingRights clears rights flags when a king or rook moves from,
// or a rook is captured on, its home square. Flags are independent, so the
// order of checks does not matter, and rights only ever shrink.
func updateCastlingRights(board *chess.Board, piece chess.Piece, from chess.Position, captured chess.Piece, to chess.Position) {
	colour := chess.ExtractColour(piece)
	switch chess.ExtractPiece(piece) {
	case chess.King:
		board.Rights = board.Rights.Without(kingsideFlag(colour) | queensideFlag(colour))
	case chess.Rook:
		if from.Row == homeRow(colour) {
			if from.Col == kingsideRookCol {
				board.Rights = board.Rights.Without(kingsideFlag(colour))
			}
			if from.Col == queensideRookCol {
				board.Rights = board.Rights.Without(queensideFlag(colour))
			}
		}
	}

	if captured != chess.Empty && chess.ExtractPiece(captured) == chess.Rook {
		capturedColour := chess.ExtractColour(captured)
		if to.Row == homeRow(capturedColour) {
			if to.Col == kingsideRookCol {
				board.Rights = board.Rights.Without(kingsideFlag(capturedColour))
			}
			if to.Col == queensideRookCol {
				board.Rights = board.Rights.Without(queensideFlag(capturedColour))
			}
		}
	}
}
