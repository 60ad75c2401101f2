package engine

import (
	"fmt"

	"github.com/lgbarn/chess-engine-go/internal/chess"
)

var (
	knightOffsets = [8][2]int{{-2, -1}, {-2, 1}, {-1, -2}, {-1, 2}, {1, -2}, {1, 2}, {2, -1}, {2, 1}}
	kingOffsets   = [8][2]int{{-1, -1}, {-1, 0}, {-1, 1}, {0, -1}, {0, 1}, {1, -1}, {1, 0}, {1, 1}}
	diagonalDirs  = [4][2]int{{-1, -1}, {-1, 1}, {1, -1}, {1, 1}}
	straightDirs  = [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}
)

// findKing locates the king of the given colour. A missing king means the
// one-king-per-side board invariant was already broken by an unchecked
// mutation, so this panics rather than limping on.
func findKing(board *chess.Board, colour chess.Colour) chess.Position {
	king := chess.MakeColouredPiece(colour, chess.King)
	for row := 0; row < chess.BoardSize; row++ {
		for col := 0; col < chess.BoardSize; col++ {
			if board.Squares[row][col] == king {
				return chess.Position{Row: row, Col: col}
			}
		}
	}
	panic(fmt.Sprintf("engine: %v king missing from board", colour))
}

// IsInCheck returns true if the given colour's king is attacked.
func IsInCheck(board *chess.Board, colour chess.Colour) bool {
	return IsSquareAttacked(board, findKing(board, colour), colour.Opposite())
}

// IsSquareAttacked returns true if the square is attacked by the given
// colour. Pieces attack via their raw movement pattern: no self-check
// filtering and no castling. A sliding attack stops at the first occupied
// square, which counts as attacked only when the blocker is the right piece
// kind for that ray.
func IsSquareAttacked(board *chess.Board, target chess.Position, byColour chess.Colour) bool {
	// Pawns attack one diagonal step in their forward direction, so the
	// attacker sits one row behind the target relative to its own advance.
	pawn := chess.MakeColouredPiece(byColour, chess.Pawn)
	pawnRow := target.Row - chess.ColourOffset(byColour)
	for _, dc := range [2]int{-1, 1} {
		if board.Get(chess.Position{Row: pawnRow, Col: target.Col + dc}) == pawn {
			return true
		}
	}

	knight := chess.MakeColouredPiece(byColour, chess.Knight)
	for _, off := range knightOffsets {
		if board.Get(chess.Position{Row: target.Row + off[0], Col: target.Col + off[1]}) == knight {
			return true
		}
	}

	king := chess.MakeColouredPiece(byColour, chess.King)
	for _, off := range kingOffsets {
		if board.Get(chess.Position{Row: target.Row + off[0], Col: target.Col + off[1]}) == king {
			return true
		}
	}

	bishop := chess.MakeColouredPiece(byColour, chess.Bishop)
	queen := chess.MakeColouredPiece(byColour, chess.Queen)
	if slidingAttack(board, target, diagonalDirs, bishop, queen) {
		return true
	}

	rook := chess.MakeColouredPiece(byColour, chess.Rook)
	return slidingAttack(board, target, straightDirs, rook, queen)
}

// slidingAttack casts rays from the target square and reports whether the
// first occupied square on any ray holds one of the two attacker pieces.
func slidingAttack(board *chess.Board, target chess.Position, dirs [4][2]int, attackers ...chess.Piece) bool {
	for _, dir := range dirs {
		pos := chess.Position{Row: target.Row + dir[0], Col: target.Col + dir[1]}
		for pos.InBounds() {
			piece := board.Get(pos)
			if piece != chess.Empty {
				for _, attacker := range attackers {
					if piece == attacker {
						return true
					}
				}
				break
			}
			pos.Row += dir[0]
			pos.Col += dir[1]
		}
	}
	return false
}
