package chess

// Move represents a single move request between two squares.
type Move struct {
	// Source square.
	From Square

	// Destination square.
	To Square

	// The piece to promote to. Empty unless the caller pre-selects a
	// promotion; it is only consumed when the move leaves a promotion pending.
	Promotion Kind
}

// NewMove creates a move between two squares without a promotion choice.
func NewMove(from, to Square) Move {
	return Move{From: from, To: to}
}

// DeltaRow returns the signed row distance travelled.
func (m Move) DeltaRow() int {
	return m.To.Row - m.From.Row
}

// DeltaCol returns the signed column distance travelled.
func (m Move) DeltaCol() int {
	return m.To.Col - m.From.Col
}

// String returns the move in long algebraic form, e.g. "e2e4" or "e7e8q".
func (m Move) String() string {
	s := m.From.String() + m.To.String()
	if m.Promotion != Empty {
		s += string(Piece{Kind: m.Promotion, Colour: Black}.Letter())
	}
	return s
}
