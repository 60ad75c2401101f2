package engine

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/lgbarn/chess-engine-go/internal/chess"
	"github.com/lgbarn/chess-engine-go/internal/errors"
)

// InitialFEN is the position string for the standard starting position.
const InitialFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// ConvertFENCharToPiece converts a position-string character to a piece kind.
func ConvertFENCharToPiece(c byte) chess.Piece {
	switch c {
	case 'K', 'k':
		return chess.King
	case 'Q', 'q':
		return chess.Queen
	case 'R', 'r':
		return chess.Rook
	case 'N', 'n':
		return chess.Knight
	case 'B', 'b':
		return chess.Bishop
	case 'P', 'p':
		return chess.Pawn
	default:
		return chess.Empty
	}
}

// ColouredPieceToFENLetter returns the FEN letter for a coloured piece:
// uppercase for White, lowercase for Black.
func ColouredPieceToFENLetter(colouredPiece chess.Piece) byte {
	letter := chess.ExtractPiece(colouredPiece).Letter()
	if chess.ExtractColour(colouredPiece) == chess.Black {
		letter = byte(unicode.ToLower(rune(letter)))
	}
	return letter
}

// NewBoardFromFEN creates a board from a six-field position string. The
// side-to-move field is validated but not stored: the engine derives side to
// move from its move count. The en passant field is accepted and ignored for
// the same reason. Malformed clock fields default to 0 and 1 instead of
// failing.
func NewBoardFromFEN(fen string) (*chess.Board, error) {
	parts := strings.Fields(fen)
	if len(parts) < 1 {
		return nil, &errors.FENError{Err: errors.ErrInvalidFEN, Field: "board", Value: fen}
	}

	board := chess.NewBoard()

	if err := parsePiecePositions(board, parts[0]); err != nil {
		return nil, err
	}
	if err := validateSideToMove(parts); err != nil {
		return nil, err
	}
	parseCastlingRights(board, parts)
	parseClocks(board, parts)

	return board, nil
}

// parsePiecePositions parses the piece placement field, rank by rank from
// row 0 (the far rank) to row 7.
func parsePiecePositions(board *chess.Board, positions string) error {
	row, col := 0, 0

	for i := 0; i < len(positions); i++ {
		c := positions[i]
		switch {
		case c == '/':
			row++
			col = 0
		case c >= '1' && c <= '8':
			col += int(c - '0')
		default:
			piece := ConvertFENCharToPiece(c)
			if piece == chess.Empty {
				return &errors.FENError{Err: errors.ErrInvalidFEN, Field: "board", Value: string(c)}
			}
			if row >= chess.BoardSize || col >= chess.BoardSize {
				return &errors.FENError{Err: errors.Wrap(errors.ErrInvalidFEN, "square out of bounds"), Field: "board", Value: positions}
			}

			colour := chess.White
			if c >= 'a' && c <= 'z' {
				colour = chess.Black
			}
			board.Set(chess.Position{Row: row, Col: col}, chess.MakeColouredPiece(colour, piece))
			col++
		}
	}
	return nil
}

// validateSideToMove checks the side-to-move field without consuming it.
func validateSideToMove(parts []string) error {
	if len(parts) < 2 {
		return nil
	}
	switch parts[1] {
	case "w", "b":
		return nil
	default:
		return &errors.FENError{Err: errors.ErrInvalidFEN, Field: "side", Value: parts[1]}
	}
}

// parseCastlingRights parses the castling availability field.
func parseCastlingRights(board *chess.Board, parts []string) {
	board.Rights = 0
	if len(parts) < 3 || parts[2] == "-" {
		return
	}
	for i := 0; i < len(parts[2]); i++ {
		switch parts[2][i] {
		case 'K':
			board.Rights |= chess.WhiteKingside
		case 'Q':
			board.Rights |= chess.WhiteQueenside
		case 'k':
			board.Rights |= chess.BlackKingside
		case 'q':
			board.Rights |= chess.BlackQueenside
		}
	}
}

// parseClocks parses the halfmove clock and fullmove number fields.
// Malformed values keep the defaults: 0 and 1.
func parseClocks(board *chess.Board, parts []string) {
	board.HalfmoveClock = 0
	board.FullmoveNumber = 1
	if len(parts) >= 5 {
		fmt.Sscanf(parts[4], "%d", &board.HalfmoveClock)
	}
	if len(parts) >= 6 {
		fmt.Sscanf(parts[5], "%d", &board.FullmoveNumber)
	}
}

// FEN returns the six-field position string for the current game state.
func (g *Game) FEN() string {
	var sb strings.Builder

	writePiecePositions(&sb, g.board)
	sb.WriteByte(' ')
	if g.SideToMove() == chess.White {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}
	sb.WriteByte(' ')
	sb.WriteString(g.board.Rights.String())
	sb.WriteByte(' ')
	writeEnPassantTarget(&sb, g.LastMove())
	fmt.Fprintf(&sb, " %d %d", g.board.HalfmoveClock, g.board.FullmoveNumber)

	return sb.String()
}

// writePiecePositions writes the piece placement field to the builder.
func writePiecePositions(sb *strings.Builder, board *chess.Board) {
	for row := 0; row < chess.BoardSize; row++ {
		emptyCount := 0
		for col := 0; col < chess.BoardSize; col++ {
			piece := board.Squares[row][col]
			if piece == chess.Empty {
				emptyCount++
				continue
			}
			if emptyCount > 0 {
				sb.WriteByte(byte('0' + emptyCount))
				emptyCount = 0
			}
			sb.WriteByte(ColouredPieceToFENLetter(piece))
		}
		if emptyCount > 0 {
			sb.WriteByte(byte('0' + emptyCount))
		}
		if row < chess.BoardSize-1 {
			sb.WriteByte('/')
		}
	}
}

// writeEnPassantTarget writes the en passant target square derived from the
// last move, or "-" when the last move was not a double pawn advance.
func writeEnPassantTarget(sb *strings.Builder, last *chess.Move) {
	if last != nil && chess.ExtractPiece(last.Piece) == chess.Pawn && abs(last.To.Row-last.From.Row) == 2 {
		passed := chess.Position{Row: (last.From.Row + last.To.Row) / 2, Col: last.From.Col}
		sb.WriteString(passed.String())
		return
	}
	sb.WriteByte('-')
}
