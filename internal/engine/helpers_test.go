package engine

import (
	"testing"

	"github.com/lgbarn/chess-engine-go/internal/chess"
)

// sq parses an algebraic square name, failing the test on bad input.
func sq(t *testing.T, name string) chess.Position {
	t.Helper()
	pos, ok := chess.ParseSquare(name)
	if !ok {
		t.Fatalf("bad square name %q", name)
	}
	return pos
}

// mustGame builds a game from a position string, failing the test on error.
func mustGame(t *testing.T, fen string) *Game {
	t.Helper()
	g, err := NewGameFromFEN(fen)
	if err != nil {
		t.Fatalf("NewGameFromFEN(%q) failed: %v", fen, err)
	}
	return g
}

// mustApply applies a coordinate move, failing the test if it is a no-op.
func mustApply(t *testing.T, g *Game, from, to string) *MoveOutcome {
	t.Helper()
	outcome := g.Apply(sq(t, from), sq(t, to), 0)
	if outcome == nil {
		t.Fatalf("move %s%s was a no-op", from, to)
	}
	return outcome
}

// containsSquare reports whether the move list includes the named square.
func containsSquare(t *testing.T, moves []chess.Position, name string) bool {
	t.Helper()
	want := sq(t, name)
	for _, m := range moves {
		if m == want {
			return true
		}
	}
	return false
}
