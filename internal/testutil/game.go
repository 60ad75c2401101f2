package testutil

import (
	"strings"
	"testing"

	"github.com/lgbarn/chess-engine-go/internal/chess"
	"github.com/lgbarn/chess-engine-go/internal/engine"
)

// MustGame creates a game from a position string.
// It calls t.Fatal if the string fails to parse.
func MustGame(t *testing.T, fen string) *engine.Game {
	t.Helper()
	g, err := engine.NewGameFromFEN(fen)
	if err != nil {
		t.Fatalf("NewGameFromFEN(%q) failed: %v", fen, err)
	}
	return g
}

// MustSquare parses an algebraic square name ("e4").
// It calls t.Fatal on a malformed name.
func MustSquare(t *testing.T, name string) chess.Position {
	t.Helper()
	pos, ok := chess.ParseSquare(name)
	if !ok {
		t.Fatalf("bad square name %q", name)
	}
	return pos
}

// PlayMoves applies a space-separated script of coordinate moves, e.g.
// "e2e4 e7e5 g1f3". A fifth character selects the promotion piece ("e7e8r").
// It calls t.Fatal if any move is rejected as a no-op.
func PlayMoves(t *testing.T, g *engine.Game, script string) {
	t.Helper()
	for _, text := range strings.Fields(script) {
		if len(text) != 4 && len(text) != 5 {
			t.Fatalf("bad move text %q", text)
		}
		from := MustSquare(t, text[:2])
		to := MustSquare(t, text[2:4])
		var promotion byte
		if len(text) == 5 {
			promotion = text[4]
		}
		if g.Apply(from, to, promotion) == nil {
			t.Fatalf("move %q was a no-op", text)
		}
	}
}
