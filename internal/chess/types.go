// Package chess provides the core board, piece, and move types for the engine.
package chess

import "fmt"

// Colour represents the colour of a piece or player. White moves first.
type Colour int

const (
	Black Colour = iota
	White
)

// String returns the string representation of a colour.
func (c Colour) String() string {
	if c == White {
		return "White"
	}
	return "Black"
}

// Opposite returns the opposite colour.
func (c Colour) Opposite() Colour {
	if c == White {
		return Black
	}
	return White
}

// Piece represents a chess piece kind, or a coloured piece once combined
// with a Colour via MakeColouredPiece.
type Piece int

const (
	Empty Piece = iota
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
	NumPieceKinds
)

// String returns the string representation of a piece kind.
func (p Piece) String() string {
	names := []string{"Empty", "Pawn", "Knight", "Bishop", "Rook", "Queen", "King"}
	if int(p) < len(names) {
		return names[p]
	}
	return "Unknown"
}

// Letter returns the single letter representation of a piece kind (uppercase).
func (p Piece) Letter() byte {
	letters := []byte{' ', 'P', 'N', 'B', 'R', 'Q', 'K'}
	if int(p) < len(letters) {
		return letters[p]
	}
	return '?'
}

// PieceShift is used for encoding coloured pieces.
const PieceShift = 3

// MakeColouredPiece creates a coloured piece value.
func MakeColouredPiece(colour Colour, piece Piece) Piece {
	return Piece((int(piece) << PieceShift) | int(colour))
}

// W creates a white piece.
func W(piece Piece) Piece {
	return MakeColouredPiece(White, piece)
}

// B creates a black piece.
func B(piece Piece) Piece {
	return MakeColouredPiece(Black, piece)
}

// ExtractColour extracts the colour from a coloured piece.
func ExtractColour(colouredPiece Piece) Colour {
	return Colour(colouredPiece & 0x01)
}

// ExtractPiece extracts the piece kind from a coloured piece.
func ExtractPiece(colouredPiece Piece) Piece {
	return Piece(colouredPiece >> PieceShift)
}

// BoardSize is the number of ranks and files on the board.
const BoardSize = 8

// ColourOffset returns the row direction a pawn of the given colour advances
// in: -1 for White (toward row 0), +1 for Black.
func ColourOffset(colour Colour) int {
	if colour == White {
		return -1
	}
	return 1
}

// Position identifies a square as a (row, col) pair. Row 0 is the far rank
// (Black's back rank at the start of the game); row 7 is White's back rank.
type Position struct {
	Row int
	Col int
}

// InBounds returns true if the position lies on the 8x8 board.
func (p Position) InBounds() bool {
	return p.Row >= 0 && p.Row < BoardSize && p.Col >= 0 && p.Col < BoardSize
}

// String returns the algebraic name of the square, e.g. "e4".
func (p Position) String() string {
	if !p.InBounds() {
		return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
	}
	return string([]byte{byte('a' + p.Col), byte('0' + BoardSize - p.Row)})
}

// ParseSquare converts an algebraic square name ("a1".."h8") to a Position.
func ParseSquare(s string) (Position, bool) {
	if len(s) != 2 {
		return Position{}, false
	}
	col := int(s[0] - 'a')
	rank := int(s[1] - '1')
	if col < 0 || col >= BoardSize || rank < 0 || rank >= BoardSize {
		return Position{}, false
	}
	return Position{Row: BoardSize - 1 - rank, Col: col}, true
}
