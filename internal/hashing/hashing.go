// Package hashing provides board-layout hashing for repetition detection.
//
// The hash covers piece placement only. Side to move, castling rights, the
// en passant square, and the clocks are deliberately excluded: repetition is
// keyed by layout alone.
package hashing

import (
	"math/rand"

	"github.com/lgbarn/chess-engine-go/internal/chess"
)

// layoutKeySeed fixes the key table so hashes are stable across processes.
const layoutKeySeed = 0x5b6e7c1d93a4f208

// layoutKeys holds one random key per coloured piece per square.
var layoutKeys [int(chess.NumPieceKinds) * 2][chess.BoardSize * chess.BoardSize]uint64

func init() {
	rng := rand.New(rand.NewSource(layoutKeySeed))
	for i := range layoutKeys {
		for j := range layoutKeys[i] {
			layoutKeys[i][j] = rng.Uint64()
		}
	}
}

// pieceIndex maps a coloured piece to its row in the key table.
func pieceIndex(colouredPiece chess.Piece) int {
	kind := chess.ExtractPiece(colouredPiece)
	colour := chess.ExtractColour(colouredPiece)
	return int(kind)*2 + int(colour)
}

// LayoutHash returns the layout-only hash of the board's piece placement.
func LayoutHash(b *chess.Board) uint64 {
	var hash uint64
	for row := 0; row < chess.BoardSize; row++ {
		for col := 0; col < chess.BoardSize; col++ {
			piece := b.Squares[row][col]
			if piece == chess.Empty {
				continue
			}
			hash ^= layoutKeys[pieceIndex(piece)][row*chess.BoardSize+col]
		}
	}
	return hash
}

// History is an ordered sequence of layout hashes, one per reached position.
// The engine pushes after every applied move, pops on undo, and counts
// occurrences for threefold-repetition detection.
type History struct {
	hashes []uint64
}

// Push appends a layout hash to the history.
func (h *History) Push(hash uint64) {
	h.hashes = append(h.hashes, hash)
}

// Pop removes the most recent entry. Popping an empty history is a no-op.
func (h *History) Pop() {
	if len(h.hashes) > 0 {
		h.hashes = h.hashes[:len(h.hashes)-1]
	}
}

// Count returns how many entries match the given hash.
func (h *History) Count(hash uint64) int {
	count := 0
	for _, v := range h.hashes {
		if v == hash {
			count++
		}
	}
	return count
}

// Len returns the number of recorded positions.
func (h *History) Len() int {
	return len(h.hashes)
}
