// Package engine implements the rules core: move generation, move
// application with reversible history, and end-of-game evaluation.
package engine

import (
	"github.com/lgbarn/chess-engine-go/internal/chess"
	"github.com/lgbarn/chess-engine-go/internal/hashing"
)

// Game owns the complete state of one game session: the board, the move log
// with its redo stack, the layout history used for repetition counting, and
// the cached end-of-game status. A Game is designed for a single writer;
// concurrent mutation is the caller's bug to prevent.
type Game struct {
	board     *chess.Board
	moveLog   []*chess.Move
	redoStack []*chess.Move
	layouts   hashing.History
	status    Status
}

// NewGame creates a game from the standard starting position.
func NewGame() *Game {
	g, err := NewGameFromFEN(InitialFEN)
	if err != nil {
		panic("engine: initial position failed to parse: " + err.Error())
	}
	return g
}

// NewGameFromFEN creates a game from a six-field position string.
func NewGameFromFEN(fen string) (*Game, error) {
	board, err := NewBoardFromFEN(fen)
	if err != nil {
		return nil, err
	}
	g := &Game{board: board}
	g.layouts.Push(hashing.LayoutHash(board))
	g.refreshStatus()
	return g, nil
}

// SideToMove returns the colour to move, derived from move-log parity:
// an even log length means the first mover (White) is to move.
func (g *Game) SideToMove() chess.Colour {
	if len(g.moveLog)%2 == 0 {
		return chess.White
	}
	return chess.Black
}

// Board returns a snapshot of the current board. Mutating the snapshot has
// no effect on the game.
func (g *Game) Board() chess.Board {
	return *g.board
}

// LastMove returns the most recently applied move, or nil if the move log
// is empty.
func (g *Game) LastMove() *chess.Move {
	if len(g.moveLog) == 0 {
		return nil
	}
	return g.moveLog[len(g.moveLog)-1]
}

// MoveCount returns the number of applied moves in the log.
func (g *Game) MoveCount() int {
	return len(g.moveLog)
}

// Status returns the cached end-of-game evaluation. It is refreshed after
// every applied move; after an undo or redo it is stale until the next apply.
func (g *Game) Status() Status {
	return g.status
}

// IsEnPassantCapture reports whether moving from from to to would be an
// en passant capture in the current position. Exposed so callers can
// highlight the capture square, which differs from the destination.
func (g *Game) IsEnPassantCapture(from, to chess.Position) bool {
	return enPassantGeometry(g.board.Get(from), from, to, g.LastMove())
}
