package engine

import (
	"testing"

	"github.com/lgbarn/chess-engine-go/internal/chess"
)

func TestLegalMoves_InitialPositionCount(t *testing.T) {
	g := NewGame()

	total := 0
	for row := 0; row < chess.BoardSize; row++ {
		for col := 0; col < chess.BoardSize; col++ {
			pos := chess.Position{Row: row, Col: col}
			piece := g.Board().Get(pos)
			if piece == chess.Empty || chess.ExtractColour(piece) != chess.White {
				continue
			}
			total += len(g.LegalMoves(pos))
		}
	}
	if total != 20 {
		t.Errorf("initial position has %d legal moves for White, want 20", total)
	}
}

func TestLegalMoves_EmptySquare(t *testing.T) {
	g := NewGame()
	if moves := g.LegalMoves(sq(t, "e4")); len(moves) != 0 {
		t.Errorf("LegalMoves(empty square) = %v, want none", moves)
	}
	if moves := g.LegalMoves(chess.Position{Row: -3, Col: 11}); len(moves) != 0 {
		t.Errorf("LegalMoves(out of bounds) = %v, want none", moves)
	}
}

func TestLegalMoves_Pawn(t *testing.T) {
	tests := []struct {
		name string
		fen  string
		from string
		want []string
	}{
		{
			name: "home rank single and double push",
			fen:  InitialFEN,
			from: "e2",
			want: []string{"e3", "e4"},
		},
		{
			name: "double push blocked on intermediate square",
			fen:  "4k3/8/8/8/8/4n3/4P3/4K3 w - - 0 1",
			from: "e2",
			want: []string{},
		},
		{
			name: "diagonal captures plus push",
			fen:  "4k3/8/8/3p1p2/4P3/8/8/4K3 w - - 0 1",
			from: "e4",
			want: []string{"e5", "d5", "f5"},
		},
		{
			name: "no capture of own piece",
			fen:  "4k3/8/8/3P4/4P3/8/8/4K3 w - - 0 1",
			from: "e4",
			want: []string{"e5"},
		},
		{
			name: "black pawn moves toward the near rank",
			fen:  "4k3/3p4/8/8/8/8/8/4K3 w - - 0 1",
			from: "d7",
			want: []string{"d6", "d5"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := mustGame(t, tt.fen)
			moves := g.LegalMoves(sq(t, tt.from))
			if len(moves) != len(tt.want) {
				t.Fatalf("LegalMoves(%s) = %v, want %v", tt.from, moves, tt.want)
			}
			for _, name := range tt.want {
				if !containsSquare(t, moves, name) {
					t.Errorf("LegalMoves(%s) = %v, missing %s", tt.from, moves, name)
				}
			}
		})
	}
}

func TestLegalMoves_Knight(t *testing.T) {
	g := mustGame(t, "4k3/8/8/8/8/8/8/N3K3 w - - 0 1")
	moves := g.LegalMoves(sq(t, "a1"))
	if len(moves) != 2 || !containsSquare(t, moves, "b3") || !containsSquare(t, moves, "c2") {
		t.Errorf("corner knight moves = %v, want b3 and c2", moves)
	}
}

func TestLegalMoves_SlidingBlockedAndCapture(t *testing.T) {
	// Rook on d4: own pawn on d6 stops the ray before d6, enemy pawn on
	// g4 is included and stops the ray.
	g := mustGame(t, "4k3/8/3P4/8/3R2p1/8/8/4K3 w - - 0 1")
	moves := g.LegalMoves(sq(t, "d4"))

	for _, want := range []string{"d5", "g4", "a4", "d1", "d2", "d3"} {
		if !containsSquare(t, moves, want) {
			t.Errorf("rook moves %v missing %s", moves, want)
		}
	}
	for _, banned := range []string{"d6", "h4", "d7"} {
		if containsSquare(t, moves, banned) {
			t.Errorf("rook moves %v wrongly include %s", moves, banned)
		}
	}
}

func TestLegalMoves_PinnedPiece(t *testing.T) {
	// The knight on e2 shields its king from the rook on e8: every knight
	// move would expose the king, so none are legal.
	g := mustGame(t, "4r1k1/8/8/8/8/8/4N3/4K3 w - - 0 1")
	if moves := g.LegalMoves(sq(t, "e2")); len(moves) != 0 {
		t.Errorf("pinned knight has moves %v, want none", moves)
	}
}

func TestLegalMoves_MustResolveCheck(t *testing.T) {
	// White king on e1 checked by the rook on e8. The bishop on c3 can only
	// block on e5; the king may step off the e-file.
	g := mustGame(t, "4r1k1/8/8/8/8/2B5/8/4K3 w - - 0 1")

	bishop := g.LegalMoves(sq(t, "c3"))
	if len(bishop) != 1 || !containsSquare(t, bishop, "e5") {
		t.Errorf("bishop moves = %v, want only e5", bishop)
	}

	king := g.LegalMoves(sq(t, "e1"))
	for _, banned := range []string{"e2"} {
		if containsSquare(t, king, banned) {
			t.Errorf("king moves %v wrongly include %s", king, banned)
		}
	}
	for _, want := range []string{"d1", "f1", "d2", "f2"} {
		if !containsSquare(t, king, want) {
			t.Errorf("king moves %v missing %s", king, want)
		}
	}
}

func TestLegalMoves_EnPassant(t *testing.T) {
	g := NewGame()
	mustApply(t, g, "e2", "e4")
	mustApply(t, g, "a7", "a6")
	mustApply(t, g, "e4", "e5")
	mustApply(t, g, "d7", "d5")

	moves := g.LegalMoves(sq(t, "e5"))
	if !containsSquare(t, moves, "d6") {
		t.Errorf("pawn moves %v missing en passant capture d6", moves)
	}
	if !g.IsEnPassantCapture(sq(t, "e5"), sq(t, "d6")) {
		t.Error("IsEnPassantCapture(e5, d6) = false")
	}
	if g.IsEnPassantCapture(sq(t, "e5"), sq(t, "e6")) {
		t.Error("IsEnPassantCapture(e5, e6) = true for a straight push")
	}

	// The opportunity lapses once any other move intervenes.
	mustApply(t, g, "g1", "f3")
	mustApply(t, g, "g8", "f6")
	if containsSquare(t, g.LegalMoves(sq(t, "e5")), "d6") {
		t.Error("en passant still offered after intervening moves")
	}
}

func TestLegalMoves_Castling(t *testing.T) {
	tests := []struct {
		name          string
		fen           string
		king          string
		wantKingside  bool
		wantQueenside bool
	}{
		{
			name:          "both sides available",
			fen:           "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1",
			king:          "e1",
			wantKingside:  true,
			wantQueenside: true,
		},
		{
			name:          "black king both sides",
			fen:           "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1",
			king:          "e8",
			wantKingside:  true,
			wantQueenside: true,
		},
		{
			name:          "rights revoked",
			fen:           "r3k2r/8/8/8/8/8/8/R3K2R w - - 0 1",
			king:          "e1",
			wantKingside:  false,
			wantQueenside: false,
		},
		{
			name:          "kingside path attacked",
			fen:           "r3k1r1/8/8/8/8/8/8/R3K2R w KQq - 0 1",
			king:          "e1",
			wantKingside:  false,
			wantQueenside: true,
		},
		{
			name:          "queenside blocked by own bishop",
			fen:           "r3k2r/8/8/8/8/8/8/R1B1K2R w KQkq - 0 1",
			king:          "e1",
			wantKingside:  true,
			wantQueenside: false,
		},
		{
			name:          "no castling while in check",
			fen:           "r3kr2/8/8/8/4q3/8/8/R3K2R w KQq - 0 1",
			king:          "e1",
			wantKingside:  false,
			wantQueenside: false,
		},
		{
			name:          "rook missing from home corner",
			fen:           "r3k2r/8/8/8/8/8/8/R3K1R1 w KQkq - 0 1",
			king:          "e1",
			wantKingside:  false,
			wantQueenside: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := mustGame(t, tt.fen)
			moves := g.LegalMoves(sq(t, tt.king))

			row := sq(t, tt.king).Row
			kingside := chess.Position{Row: row, Col: 6}
			queenside := chess.Position{Row: row, Col: 2}

			gotKingside, gotQueenside := false, false
			for _, m := range moves {
				if m == kingside {
					gotKingside = true
				}
				if m == queenside {
					gotQueenside = true
				}
			}
			if gotKingside != tt.wantKingside {
				t.Errorf("kingside castle offered = %v, want %v (moves %v)", gotKingside, tt.wantKingside, moves)
			}
			if gotQueenside != tt.wantQueenside {
				t.Errorf("queenside castle offered = %v, want %v (moves %v)", gotQueenside, tt.wantQueenside, moves)
			}
		})
	}
}

func TestLegalMoves_Deterministic(t *testing.T) {
	g := mustGame(t, "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1")
	first := g.LegalMoves(sq(t, "f3"))
	for i := 0; i < 5; i++ {
		again := g.LegalMoves(sq(t, "f3"))
		if len(again) != len(first) {
			t.Fatalf("move count changed between calls: %d vs %d", len(again), len(first))
		}
		for j := range again {
			if again[j] != first[j] {
				t.Fatalf("move order changed between calls: %v vs %v", again, first)
			}
		}
	}
}

func TestIsSquareAttacked(t *testing.T) {
	tests := []struct {
		name     string
		fen      string
		square   string
		byColour chess.Colour
		want     bool
	}{
		{
			name:     "pawn attacks diagonally forward",
			fen:      "4k3/8/8/8/4P3/8/8/4K3 w - - 0 1",
			square:   "d5",
			byColour: chess.White,
			want:     true,
		},
		{
			name:     "pawn does not attack straight ahead",
			fen:      "4k3/8/8/8/4P3/8/8/4K3 w - - 0 1",
			square:   "e5",
			byColour: chess.White,
			want:     false,
		},
		{
			name:     "sliding attack blocked by any piece",
			fen:      "4k3/8/8/8/1q1P4/8/8/4K3 w - - 0 1",
			square:   "f4",
			byColour: chess.Black,
			want:     false,
		},
		{
			name:     "blocker itself is attacked",
			fen:      "4k3/8/8/8/1q1P4/8/8/4K3 w - - 0 1",
			square:   "d4",
			byColour: chess.Black,
			want:     true,
		},
		{
			name:     "knight jumps over blockers",
			fen:      "4k3/8/8/8/8/2n5/PPP5/K7 w - - 0 1",
			square:   "a2",
			byColour: chess.Black,
			want:     true,
		},
		{
			name:     "queen does not attack along knight pattern",
			fen:      "4k3/8/8/8/8/2q5/8/K7 w - - 0 1",
			square:   "b1",
			byColour: chess.Black,
			want:     false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := mustGame(t, tt.fen)
			board := g.Board()
			if got := IsSquareAttacked(&board, sq(t, tt.square), tt.byColour); got != tt.want {
				t.Errorf("IsSquareAttacked(%s, %v) = %v, want %v", tt.square, tt.byColour, got, tt.want)
			}
		})
	}
}
