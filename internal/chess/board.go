package chess

// CastlingRights is a set of up to four castling flags. The flags only ever
// shrink during a game; rights are never regained.
type CastlingRights uint8

const (
	WhiteKingside CastlingRights = 1 << iota
	WhiteQueenside
	BlackKingside
	BlackQueenside

	AllRights = WhiteKingside | WhiteQueenside | BlackKingside | BlackQueenside
)

// Has returns true if all the given flags are set.
func (r CastlingRights) Has(flags CastlingRights) bool {
	return r&flags == flags
}

// Without returns the rights with the given flags cleared.
func (r CastlingRights) Without(flags CastlingRights) CastlingRights {
	return r &^ flags
}

// String returns the FEN representation of the rights ("KQkq" subset or "-").
func (r CastlingRights) String() string {
	if r == 0 {
		return "-"
	}
	var buf []byte
	if r.Has(WhiteKingside) {
		buf = append(buf, 'K')
	}
	if r.Has(WhiteQueenside) {
		buf = append(buf, 'Q')
	}
	if r.Has(BlackKingside) {
		buf = append(buf, 'k')
	}
	if r.Has(BlackQueenside) {
		buf = append(buf, 'q')
	}
	return string(buf)
}

// Board represents the 8x8 board together with the non-derived parts of the
// game position: castling rights and the two move-count clocks. Side to move
// is not stored here; the engine derives it from its move log.
type Board struct {
	// Squares holds the board contents indexed [row][col], row 0 = far rank.
	Squares [BoardSize][BoardSize]Piece

	// Rights holds the remaining castling options.
	Rights CastlingRights

	// HalfmoveClock counts half-moves since the last capture or pawn move.
	HalfmoveClock int

	// FullmoveNumber starts at 1 and increments after each Black move.
	FullmoveNumber int
}

// NewBoard creates an empty board with full castling rights.
func NewBoard() *Board {
	return &Board{
		Rights:         AllRights,
		FullmoveNumber: 1,
	}
}

// Get returns the piece at the given position, or Empty for out-of-bounds
// positions.
func (b Board) Get(p Position) Piece {
	if !p.InBounds() {
		return Empty
	}
	return b.Squares[p.Row][p.Col]
}

// Set places a piece at the given position. Out-of-bounds positions are
// ignored.
func (b *Board) Set(p Position, piece Piece) {
	if p.InBounds() {
		b.Squares[p.Row][p.Col] = piece
	}
}

// Copy creates a deep copy of the board.
func (b *Board) Copy() *Board {
	nb := &Board{}
	*nb = *b
	return nb
}
