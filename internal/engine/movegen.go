package engine

import "github.com/lgbarn/chess-engine-go/internal/chess"

// LegalMoves returns the legal destination squares for the piece on from,
// in a deterministic order for a given board state. An empty or
// out-of-bounds square yields no moves.
func (g *Game) LegalMoves(from chess.Position) []chess.Position {
	piece := g.board.Get(from)
	if piece == chess.Empty {
		return nil
	}
	colour := chess.ExtractColour(piece)

	var moves []chess.Position
	for _, to := range g.pseudoLegalMoves(from, piece) {
		if g.moveKeepsKingSafe(from, to, colour) {
			moves = append(moves, to)
		}
	}
	return moves
}

// pseudoLegalMoves computes moves consistent with the piece's movement
// pattern and board occupancy, ignoring whether they expose the own king.
func (g *Game) pseudoLegalMoves(from chess.Position, piece chess.Piece) []chess.Position {
	colour := chess.ExtractColour(piece)

	switch chess.ExtractPiece(piece) {
	case chess.Pawn:
		return g.pawnMoves(from, colour)
	case chess.Knight:
		return offsetMoves(g.board, from, colour, knightOffsets[:])
	case chess.Bishop:
		return slidingMoves(g.board, from, colour, diagonalDirs[:])
	case chess.Rook:
		return slidingMoves(g.board, from, colour, straightDirs[:])
	case chess.Queen:
		moves := slidingMoves(g.board, from, colour, diagonalDirs[:])
		return append(moves, slidingMoves(g.board, from, colour, straightDirs[:])...)
	case chess.King:
		moves := offsetMoves(g.board, from, colour, kingOffsets[:])
		return append(moves, g.castlingTargets(from, colour)...)
	}
	return nil
}

// pawnMoves generates pawn pushes, captures, and the en passant capture.
func (g *Game) pawnMoves(from chess.Position, colour chess.Colour) []chess.Position {
	dir := chess.ColourOffset(colour)
	pawn := g.board.Get(from)
	var moves []chess.Position

	one := chess.Position{Row: from.Row + dir, Col: from.Col}
	if one.InBounds() && g.board.Get(one) == chess.Empty {
		moves = append(moves, one)
		if from.Row == pawnHomeRow(colour) {
			two := chess.Position{Row: from.Row + 2*dir, Col: from.Col}
			if g.board.Get(two) == chess.Empty {
				moves = append(moves, two)
			}
		}
	}

	for _, dc := range [2]int{-1, 1} {
		to := chess.Position{Row: from.Row + dir, Col: from.Col + dc}
		if !to.InBounds() {
			continue
		}
		target := g.board.Get(to)
		switch {
		case target != chess.Empty && chess.ExtractColour(target) != colour:
			moves = append(moves, to)
		case target == chess.Empty && enPassantGeometry(pawn, from, to, g.LastMove()):
			moves = append(moves, to)
		}
	}
	return moves
}

// offsetMoves generates fixed-offset moves (knight, king) filtered by board
// bounds and own-piece occupancy.
func offsetMoves(board *chess.Board, from chess.Position, colour chess.Colour, offsets [][2]int) []chess.Position {
	var moves []chess.Position
	for _, off := range offsets {
		to := chess.Position{Row: from.Row + off[0], Col: from.Col + off[1]}
		if !to.InBounds() {
			continue
		}
		target := board.Get(to)
		if target == chess.Empty || chess.ExtractColour(target) != colour {
			moves = append(moves, to)
		}
	}
	return moves
}

// slidingMoves ray-casts in the given directions until blocked. A square
// occupied by an enemy piece is included before the ray stops; a square
// occupied by an own piece stops the ray without being included.
func slidingMoves(board *chess.Board, from chess.Position, colour chess.Colour, dirs [][2]int) []chess.Position {
	var moves []chess.Position
	for _, dir := range dirs {
		to := chess.Position{Row: from.Row + dir[0], Col: from.Col + dir[1]}
		for to.InBounds() {
			target := board.Get(to)
			if target != chess.Empty {
				if chess.ExtractColour(target) != colour {
					moves = append(moves, to)
				}
				break
			}
			moves = append(moves, to)
			to = chess.Position{Row: to.Row + dir[0], Col: to.Col + dir[1]}
		}
	}
	return moves
}

// moveKeepsKingSafe simulates the move on the live board and reports whether
// the mover's king is safe afterward. The probe touches only the two squares
// involved -- never rights, history, or cached status -- and the deferred
// restore runs on every exit path so a panic cannot leave the board
// corrupted. An en passant probe leaves the bypassed pawn in place; only
// own-king safety matters here.
func (g *Game) moveKeepsKingSafe(from, to chess.Position, colour chess.Colour) (safe bool) {
	piece := g.board.Get(from)
	captured := g.board.Get(to)
	g.board.Set(from, chess.Empty)
	g.board.Set(to, piece)
	defer func() {
		g.board.Set(to, captured)
		g.board.Set(from, piece)
	}()
	return !IsInCheck(g.board, colour)
}

// hasAnyLegalMove reports whether any piece of the given colour has a
// non-empty legal-move set.
func (g *Game) hasAnyLegalMove(colour chess.Colour) bool {
	for row := 0; row < chess.BoardSize; row++ {
		for col := 0; col < chess.BoardSize; col++ {
			piece := g.board.Squares[row][col]
			if piece == chess.Empty || chess.ExtractColour(piece) != colour {
				continue
			}
			if len(g.LegalMoves(chess.Position{Row: row, Col: col})) > 0 {
				return true
			}
		}
	}
	return false
}
