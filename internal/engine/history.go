package engine

import (
	"github.com/lgbarn/chess-engine-go/internal/chess"
	"github.com/lgbarn/chess-engine-go/internal/hashing"
)

// Undo reverses the most recent applied move exactly: board layout, castling
// rights, halfmove clock, and last-move pointer all return to their
// pre-move values, and the move lands on the redo stack. Undoing with an
// empty move log is a no-op and returns false.
//
// Undo does not recompute the cached status; callers must treat Status()
// as stale until the next applied move.
func (g *Game) Undo() bool {
	if len(g.moveLog) == 0 {
		return false
	}
	m := g.moveLog[len(g.moveLog)-1]
	g.moveLog = g.moveLog[:len(g.moveLog)-1]

	// Put the mover back. Promotions revert to the pawn recorded in the
	// move, not the piece standing on the destination.
	g.board.Set(m.From, m.Piece)
	g.board.Set(m.To, chess.Empty)

	if m.Castle {
		undoCastlingRook(g.board, m.To)
	}

	if m.Captured != chess.Empty {
		// Whether the capture was en passant is re-derived from the move
		// geometry against the new log tail: if so, the captured pawn goes
		// back behind the destination rather than onto it.
		if enPassantGeometry(m.Piece, m.From, m.To, g.LastMove()) {
			g.board.Set(chess.Position{Row: m.From.Row, Col: m.To.Col}, m.Captured)
		} else {
			g.board.Set(m.To, m.Captured)
		}
	}

	g.board.Rights = m.RightsBefore
	g.board.HalfmoveClock = m.HalfmoveBefore
	if chess.ExtractColour(m.Piece) == chess.Black {
		g.board.FullmoveNumber--
	}

	g.layouts.Pop()
	g.redoStack = append(g.redoStack, m)
	return true
}

// Redo re-applies the most recently undone move and pushes it back onto the
// move log. The geometric effects mirror Apply, but castling rights are
// recomputed from the piece and capture identity rather than restored from
// the move's snapshot. Redoing with an empty redo stack is a no-op and
// returns false.
//
// Like Undo, Redo leaves the cached status untouched; callers re-query
// after the next applied move.
func (g *Game) Redo() bool {
	if len(g.redoStack) == 0 {
		return false
	}
	m := g.redoStack[len(g.redoStack)-1]
	g.redoStack = g.redoStack[:len(g.redoStack)-1]

	if m.Captured != chess.Empty && enPassantGeometry(m.Piece, m.From, m.To, g.LastMove()) {
		g.board.Set(chess.Position{Row: m.From.Row, Col: m.To.Col}, chess.Empty)
	}

	g.board.Set(m.From, chess.Empty)
	g.board.Set(m.To, m.Placed())

	if m.Castle {
		relocateCastlingRook(g.board, m.To)
	}

	updateCastlingRights(g.board, m.Piece, m.From, m.Captured, m.To)

	if chess.ExtractPiece(m.Piece) == chess.Pawn || m.Captured != chess.Empty {
		g.board.HalfmoveClock = 0
	} else {
		g.board.HalfmoveClock++
	}
	if chess.ExtractColour(m.Piece) == chess.Black {
		g.board.FullmoveNumber++
	}

	g.moveLog = append(g.moveLog, m)
	g.layouts.Push(hashing.LayoutHash(g.board))
	return true
}

// CanUndo reports whether a move is available to undo.
func (g *Game) CanUndo() bool {
	return len(g.moveLog) > 0
}

// CanRedo reports whether an undone move is available to redo.
func (g *Game) CanRedo() bool {
	return len(g.redoStack) > 0
}
