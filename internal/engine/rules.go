package engine

import (
	"sort"
	"unicode"

	"github.com/lgbarn/chess-engine-go/internal/chess"
	"github.com/lgbarn/chess-engine-go/internal/hashing"
)

// fiftyMoveLimit is the half-move clock value at which the fifty-move rule
// draws the game: 50 full moves without a capture or pawn move.
const fiftyMoveLimit = 100

// insufficientMaterial reports whether the remaining material cannot force
// checkmate. The check keys on the sorted lowercase letter multiset of every
// remaining piece, ignoring colour: bare kings, a lone minor piece beside
// the kings, or two bishops standing on same-coloured squares. Anything else
// counts as sufficient.
func (g *Game) insufficientMaterial() bool {
	var letters []byte
	var bishopShades []int

	for row := 0; row < chess.BoardSize; row++ {
		for col := 0; col < chess.BoardSize; col++ {
			piece := g.board.Squares[row][col]
			if piece == chess.Empty {
				continue
			}
			kind := chess.ExtractPiece(piece)
			letters = append(letters, byte(unicode.ToLower(rune(kind.Letter()))))
			if kind == chess.Bishop {
				bishopShades = append(bishopShades, (row+col)%2)
			}
		}
	}
	sort.Slice(letters, func(i, j int) bool { return letters[i] < letters[j] })

	switch string(letters) {
	case "k", "kk":
		return true
	case "kn", "kkn":
		return true
	case "bk", "bkk":
		return true
	case "bbkk":
		return bishopShades[0] == bishopShades[1]
	}
	return false
}

// threefoldRepetition reports whether the current board layout has now
// occurred three or more times. The repetition key is piece placement only;
// side to move, rights, and clocks are ignored.
func (g *Game) threefoldRepetition() bool {
	return g.layouts.Count(hashing.LayoutHash(g.board)) >= 3
}

// MaterialLetters returns the sorted lowercase piece letters of all
// remaining pieces, e.g. "kkq". Useful for diagnostics and tests.
func (g *Game) MaterialLetters() string {
	var letters []byte
	for row := 0; row < chess.BoardSize; row++ {
		for col := 0; col < chess.BoardSize; col++ {
			piece := g.board.Squares[row][col]
			if piece == chess.Empty {
				continue
			}
			letters = append(letters, byte(unicode.ToLower(rune(chess.ExtractPiece(piece).Letter()))))
		}
	}
	sort.Slice(letters, func(i, j int) bool { return letters[i] < letters[j] })
	return string(letters)
}
