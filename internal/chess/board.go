package chess

// Castling identifies one of the four castling rights.
type Castling int

const (
	WhiteKingside Castling = iota
	WhiteQueenside
	BlackKingside
	BlackQueenside
	numCastling
)

// CastlingOrder lists the rights in notation order (KQkq).
var CastlingOrder = [...]Castling{WhiteKingside, WhiteQueenside, BlackKingside, BlackQueenside}

// CastlingFor returns the right for the given colour and side.
func CastlingFor(colour Colour, kingside bool) Castling {
	switch {
	case colour == White && kingside:
		return WhiteKingside
	case colour == White:
		return WhiteQueenside
	case kingside:
		return BlackKingside
	default:
		return BlackQueenside
	}
}

// Letter returns the notation letter for the right (K, Q, k or q).
func (c Castling) Letter() byte {
	return "KQkq"[c]
}

// Board represents a chess board with all state needed for the game:
// placement, side to move, castling rights and the en passant target.
type Board struct {
	// Squares[row][col]; row 0 is rank 8, col 0 is the a-file.
	Squares [BoardSize][BoardSize]Piece

	// Who has the next move.
	ToMove Colour

	// Castling rights indexed by Castling. Once cleared a right is never
	// restored by move execution.
	CastlingRights [numCastling]bool

	// Is en passant capture possible? If so then EPSquare holds the
	// square behind the pawn that just advanced two squares.
	EnPassant bool
	EPSquare  Square
}

// NewBoard creates a new empty board with White to move and no rights.
func NewBoard() *Board {
	return &Board{ToMove: White}
}

// SetupInitialPosition sets up the standard chess starting position.
func (b *Board) SetupInitialPosition() {
	b.Squares = [BoardSize][BoardSize]Piece{}

	backRank := []Kind{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}
	for col := 0; col < BoardSize; col++ {
		b.Squares[Black.BackRow()][col] = B(backRank[col])
		b.Squares[Black.PawnRow()][col] = B(Pawn)
		b.Squares[White.PawnRow()][col] = W(Pawn)
		b.Squares[White.BackRow()][col] = W(backRank[col])
	}

	b.ToMove = White
	for i := range b.CastlingRights {
		b.CastlingRights[i] = true
	}
	b.EnPassant = false
	b.EPSquare = Square{}
}

// Get returns the piece on the given square. Off-board squares are empty.
func (b *Board) Get(sq Square) Piece {
	if !sq.OnBoard() {
		return NoPiece
	}
	return b.Squares[sq.Row][sq.Col]
}

// Set places a piece on the given square. Off-board squares are ignored.
func (b *Board) Set(sq Square, piece Piece) {
	if sq.OnBoard() {
		b.Squares[sq.Row][sq.Col] = piece
	}
}

// IsEmpty reports whether the square holds no piece.
func (b *Board) IsEmpty(sq Square) bool {
	return b.Get(sq).IsEmpty()
}

// CanCastle reports whether the given castling right is still held.
func (b *Board) CanCastle(c Castling) bool {
	return b.CastlingRights[c]
}

// ClearCastling revokes a castling right.
func (b *Board) ClearCastling(c Castling) {
	b.CastlingRights[c] = false
}

// IsEnPassantTarget reports whether sq is the current en passant target.
func (b *Board) IsEnPassantTarget(sq Square) bool {
	return b.EnPassant && b.EPSquare == sq
}

// SetEnPassant records the en passant target square.
func (b *Board) SetEnPassant(sq Square) {
	b.EnPassant = true
	b.EPSquare = sq
}

// ClearEnPassant removes the en passant target.
func (b *Board) ClearEnPassant() {
	b.EnPassant = false
	b.EPSquare = Square{}
}

// FindKing returns the square of the given colour's king. The second result
// is false when no such king is on the board.
func (b *Board) FindKing(colour Colour) (Square, bool) {
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			if b.Squares[row][col].Is(King, colour) {
				return Square{Row: row, Col: col}, true
			}
		}
	}
	return Square{}, false
}

// Copy creates a deep copy of the board.
func (b *Board) Copy() *Board {
	newBoard := &Board{}
	*newBoard = *b
	return newBoard
}
