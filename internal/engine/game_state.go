package engine

import "github.com/lgbarn/chess-engine-go/internal/chess"

// Status holds the cached end-of-game evaluation. Its fields are pure
// functions of board, rights, move count, and history; they are recomputed
// wholesale after every applied move, never patched incrementally.
type Status struct {
	// InCheck is true when the side to move has its king attacked.
	InCheck bool

	// KingInCheck is the attacked king's square, valid only when InCheck.
	KingInCheck chess.Position

	// Checkmate: in check with no legal move. Stalemate: not in check with
	// no legal move.
	Checkmate bool
	Stalemate bool

	// Draw covers insufficient material, threefold repetition, and the
	// fifty-move clock; it is only evaluated when the game is not already
	// decided by checkmate or stalemate.
	Draw bool

	// GameOver is true for checkmate, stalemate, and draws.
	GameOver bool

	// Winner is valid only when HasWinner is true (checkmate only).
	HasWinner bool
	Winner    chess.Colour
}

// refreshStatus recomputes the cached status for the side to move.
func (g *Game) refreshStatus() {
	sideToMove := g.SideToMove()
	st := Status{}

	st.InCheck = IsInCheck(g.board, sideToMove)
	if st.InCheck {
		st.KingInCheck = findKing(g.board, sideToMove)
	}

	hasMoves := g.hasAnyLegalMove(sideToMove)
	switch {
	case st.InCheck && !hasMoves:
		st.Checkmate = true
		st.GameOver = true
		st.HasWinner = true
		st.Winner = sideToMove.Opposite()
	case !st.InCheck && !hasMoves:
		st.Stalemate = true
		st.GameOver = true
	default:
		if g.insufficientMaterial() || g.threefoldRepetition() || g.board.HalfmoveClock >= fiftyMoveLimit {
			st.Draw = true
			st.GameOver = true
		}
	}

	g.status = st
}

// IsCheckmate returns true if the current position is checkmate for the
// side to move.
func (g *Game) IsCheckmate() bool {
	return g.status.Checkmate
}

// IsStalemate returns true if the current position is stalemate for the
// side to move.
func (g *Game) IsStalemate() bool {
	return g.status.Stalemate
}
