package engine

import (
	"github.com/lgbarn/chess-engine-go/internal/chess"
	"github.com/lgbarn/chess-engine-go/internal/hashing"
)

// MoveOutcome reports what an applied move did.
type MoveOutcome struct {
	Captured bool
	Castled  bool
}

// Apply moves the piece on from to to, handling en passant removal,
// promotion substitution, castling rook relocation, and castling-rights
// updates, then records the move and refreshes the game status. It returns
// nil -- a no-op -- when from holds no piece or to is out of bounds.
//
// Apply does not re-check legality. Callers are expected to have obtained to
// from LegalMoves; a destination the generator never offered relocates the
// piece unconditionally. That permissiveness is the documented contract, not
// a safety net.
//
// promotion selects the piece a pawn reaching the farthest rank becomes:
// 'q', 'r', 'b', or 'n'. Any other value, including zero, promotes to queen.
func (g *Game) Apply(from, to chess.Position, promotion byte) *MoveOutcome {
	if !from.InBounds() || !to.InBounds() {
		return nil
	}
	piece := g.board.Get(from)
	if piece == chess.Empty {
		return nil
	}
	colour := chess.ExtractColour(piece)
	kind := chess.ExtractPiece(piece)

	rightsBefore := g.board.Rights
	halfmoveBefore := g.board.HalfmoveClock

	// An en passant capture removes the bypassed pawn from the square behind
	// the destination, not the destination square itself.
	var captured chess.Piece
	if enPassantGeometry(piece, from, to, g.LastMove()) {
		behind := chess.Position{Row: from.Row, Col: to.Col}
		captured = g.board.Get(behind)
		g.board.Set(behind, chess.Empty)
	} else {
		captured = g.board.Get(to)
	}

	promoted := chess.Empty
	if kind == chess.Pawn && to.Row == promotionRow(colour) {
		promoted = chess.MakeColouredPiece(colour, promotionKind(promotion))
	}

	g.board.Set(from, chess.Empty)
	if promoted != chess.Empty {
		g.board.Set(to, promoted)
	} else {
		g.board.Set(to, piece)
	}

	castled := false
	if kind == chess.King && abs(to.Col-from.Col) == 2 {
		castled = true
		relocateCastlingRook(g.board, to)
	}

	updateCastlingRights(g.board, piece, from, captured, to)

	if kind == chess.Pawn || captured != chess.Empty {
		g.board.HalfmoveClock = 0
	} else {
		g.board.HalfmoveClock++
	}
	if colour == chess.Black {
		g.board.FullmoveNumber++
	}

	move := &chess.Move{
		From:           from,
		To:             to,
		Piece:          piece,
		Captured:       captured,
		Promotion:      promoted,
		RightsBefore:   rightsBefore,
		HalfmoveBefore: halfmoveBefore,
		Castle:         castled,
	}

	// A new move forks history: the old future is discarded.
	g.moveLog = append(g.moveLog, move)
	g.redoStack = g.redoStack[:0]
	g.layouts.Push(hashing.LayoutHash(g.board))
	g.refreshStatus()

	return &MoveOutcome{Captured: captured != chess.Empty, Castled: castled}
}

// promotionKind maps a promotion letter to a piece kind, defaulting to
// queen for anything outside q, r, b, n.
func promotionKind(letter byte) chess.Piece {
	switch letter {
	case 'r':
		return chess.Rook
	case 'b':
		return chess.Bishop
	case 'n':
		return chess.Knight
	default:
		return chess.Queen
	}
}

// enPassantGeometry reports whether a move of piece from from to to is an
// en passant capture given the most recent move: the mover must be a pawn
// taking a single diagonal step forward, and last must be an enemy pawn's
// two-square advance that landed beside the mover on the destination column.
// Only the single most recent move matters, never older history.
func enPassantGeometry(piece chess.Piece, from, to chess.Position, last *chess.Move) bool {
	if chess.ExtractPiece(piece) != chess.Pawn {
		return false
	}
	colour := chess.ExtractColour(piece)
	if to.Row-from.Row != chess.ColourOffset(colour) || abs(to.Col-from.Col) != 1 {
		return false
	}
	if last == nil || chess.ExtractPiece(last.Piece) != chess.Pawn {
		return false
	}
	if chess.ExtractColour(last.Piece) == colour {
		return false
	}
	if abs(last.To.Row-last.From.Row) != 2 {
		return false
	}
	return last.To.Row == from.Row && last.To.Col == to.Col
}
