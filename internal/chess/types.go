// Package chess provides core chess types and operations.
package chess

// Colour represents the colour of a piece or player.
type Colour int

const (
	White Colour = iota
	Black
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

// Forward returns the row delta of a single pawn step: White moves toward
// row 0 (rank 8), Black toward row 7.
func (c Colour) Forward() int {
	if c == White {
		return -1
	}
	return 1
}

// PawnRow returns the row on which the colour's pawns start.
func (c Colour) PawnRow() int {
	if c == White {
		return 6
	}
	return 1
}

// BackRow returns the row on which the colour's king and rooks start.
func (c Colour) BackRow() int {
	if c == White {
		return 7
	}
	return 0
}

// PromotionRow returns the far row on which the colour's pawns promote.
func (c Colour) PromotionRow() int {
	return c.Opposite().BackRow()
}

// Kind represents a chess piece type.
type Kind int

const (
	Empty Kind = iota // No piece on the square
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
)

// String returns the string representation of a piece kind.
func (k Kind) String() string {
	names := []string{"Empty", "Pawn", "Knight", "Bishop", "Rook", "Queen", "King"}
	if k >= 0 && int(k) < len(names) {
		return names[k]
	}
	return "Unknown"
}

// Letter returns the single letter representation of a piece kind (uppercase).
func (k Kind) Letter() byte {
	letters := []byte{' ', 'P', 'N', 'B', 'R', 'Q', 'K'}
	if k >= 0 && int(k) < len(letters) {
		return letters[k]
	}
	return '?'
}

// IsPromotionChoice reports whether a pawn may promote to this kind.
func (k Kind) IsPromotionChoice() bool {
	switch k {
	case Rook, Knight, Bishop, Queen:
		return true
	}
	return false
}

// KindFromLetter converts a piece letter of either case to a kind.
// Unrecognised letters yield Empty.
func KindFromLetter(c byte) Kind {
	switch c {
	case 'K', 'k':
		return King
	case 'Q', 'q':
		return Queen
	case 'R', 'r':
		return Rook
	case 'N', 'n':
		return Knight
	case 'B', 'b':
		return Bishop
	case 'P', 'p':
		return Pawn
	default:
		return Empty
	}
}

// Piece is a (kind, colour) pair. The zero value is an empty square.
type Piece struct {
	Kind   Kind
	Colour Colour
}

// NoPiece is the content of an empty square.
var NoPiece = Piece{}

// W creates a white piece.
func W(kind Kind) Piece {
	return Piece{Kind: kind, Colour: White}
}

// B creates a black piece.
func B(kind Kind) Piece {
	return Piece{Kind: kind, Colour: Black}
}

// IsEmpty reports whether the square content holds no piece.
func (p Piece) IsEmpty() bool {
	return p.Kind == Empty
}

// Is reports whether p is a piece of the given kind and colour.
func (p Piece) Is(kind Kind, colour Colour) bool {
	return p.Kind == kind && p.Colour == colour && kind != Empty
}

// Letter returns the notation letter for the piece: uppercase for White,
// lowercase for Black, '.' for an empty square.
func (p Piece) Letter() byte {
	if p.IsEmpty() {
		return '.'
	}
	letter := p.Kind.Letter()
	if p.Colour == Black {
		letter += 'a' - 'A'
	}
	return letter
}

// String returns a readable description such as "White Knight".
func (p Piece) String() string {
	if p.IsEmpty() {
		return "Empty"
	}
	return p.Colour.String() + " " + p.Kind.String()
}

// PieceFromLetter converts a notation letter to a piece. Uppercase letters
// are White, lowercase Black. The second result is false for any other byte.
func PieceFromLetter(c byte) (Piece, bool) {
	kind := KindFromLetter(c)
	if kind == Empty {
		return NoPiece, false
	}
	colour := White
	if c >= 'a' && c <= 'z' {
		colour = Black
	}
	return Piece{Kind: kind, Colour: colour}, true
}

// Constants for board dimensions.
const (
	BoardSize = 8

	FileBase = 'a'
	RankBase = '1'
)

// Square identifies a board square by zero-based row and column.
// Row 0 is rank 8, row 7 is rank 1; column 0 is the a-file.
type Square struct {
	Row int
	Col int
}

// Sq is shorthand for constructing a square.
func Sq(row, col int) Square {
	return Square{Row: row, Col: col}
}

// OnBoard reports whether the square lies on the 8x8 board.
func (s Square) OnBoard() bool {
	return s.Row >= 0 && s.Row < BoardSize && s.Col >= 0 && s.Col < BoardSize
}

// Offset returns the square shifted by the given row and column deltas.
// The result may be off the board.
func (s Square) Offset(dRow, dCol int) Square {
	return Square{Row: s.Row + dRow, Col: s.Col + dCol}
}

// File returns the file letter ('a'-'h') of the square.
func (s Square) File() byte {
	return byte(FileBase + s.Col)
}

// Rank returns the rank digit ('1'-'8') of the square.
func (s Square) Rank() byte {
	return byte(RankBase + BoardSize - 1 - s.Row)
}

// String returns the algebraic name of the square, e.g. "e4".
func (s Square) String() string {
	if !s.OnBoard() {
		return "-"
	}
	return string([]byte{s.File(), s.Rank()})
}

// ParseSquare converts an algebraic square name such as "e3" to a Square.
func ParseSquare(name string) (Square, bool) {
	if len(name) != 2 {
		return Square{}, false
	}
	file, rank := name[0], name[1]
	if file < FileBase || file >= FileBase+BoardSize || rank < RankBase || rank >= RankBase+BoardSize {
		return Square{}, false
	}
	return Square{Row: BoardSize - 1 - int(rank-RankBase), Col: int(file - FileBase)}, true
}

// MustSquare is like ParseSquare but panics on an invalid name.
// It is intended for constants and tests.
func MustSquare(name string) Square {
	sq, ok := ParseSquare(name)
	if !ok {
		panic("chess: invalid square " + name)
	}
	return sq
}
