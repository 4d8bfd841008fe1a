package engine

import (
	"fmt"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// IsInCheck returns true if the given colour's king is in check.
// A board without that king is reported as not in check; use InCheck to
// observe the invariant violation.
func IsInCheck(board *chess.Board, colour chess.Colour) bool {
	inCheck, _ := InCheck(board, colour)
	return inCheck
}

// InCheck reports whether the given colour's king is attacked. When the king
// cannot be found it returns false together with an error wrapping
// errors.ErrInvariantViolation.
func InCheck(board *chess.Board, colour chess.Colour) (bool, error) {
	kingSq, err := KingSquare(board, colour)
	if err != nil {
		return false, err
	}
	return IsSquareAttacked(board, kingSq, colour.Opposite()), nil
}

// KingSquare returns the square of the given colour's king.
func KingSquare(board *chess.Board, colour chess.Colour) (chess.Square, error) {
	sq, ok := board.FindKing(colour)
	if !ok {
		return chess.Square{}, fmt.Errorf("%s king not found: %w", colour, errors.ErrInvariantViolation)
	}
	return sq, nil
}

// IsSquareAttacked returns true if any piece of byColour has a capturing
// shape onto sq. It only tests movement geometry and occupancy and never
// consults the full legality validator.
func IsSquareAttacked(board *chess.Board, sq chess.Square, byColour chess.Colour) bool {
	if !sq.OnBoard() {
		return false
	}
	for row := 0; row < chess.BoardSize; row++ {
		for col := 0; col < chess.BoardSize; col++ {
			piece := board.Squares[row][col]
			if piece.IsEmpty() || piece.Colour != byColour {
				continue
			}
			if canReach(board, chess.Sq(row, col), sq) {
				return true
			}
		}
	}
	return false
}
