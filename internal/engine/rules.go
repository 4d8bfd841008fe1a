package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// Status describes whether the side to move can continue.
type Status int

const (
	Ongoing Status = iota
	Checkmate
	Stalemate
)

// String returns the string representation of a status.
func (s Status) String() string {
	switch s {
	case Checkmate:
		return "Checkmate"
	case Stalemate:
		return "Stalemate"
	default:
		return "Ongoing"
	}
}

// IsCheckmate returns true if the position is checkmate for the side to move.
func IsCheckmate(board *chess.Board) bool {
	colour := board.ToMove
	return IsInCheck(board, colour) && !HasLegalMoves(board, colour)
}

// IsStalemate returns true if the position is stalemate for the side to move.
func IsStalemate(board *chess.Board) bool {
	colour := board.ToMove
	return !IsInCheck(board, colour) && !HasLegalMoves(board, colour)
}

// GameStatus classifies the position for the side to move with a single
// legal-move search.
func GameStatus(board *chess.Board) Status {
	colour := board.ToMove
	if HasLegalMoves(board, colour) {
		return Ongoing
	}
	if IsInCheck(board, colour) {
		return Checkmate
	}
	return Stalemate
}
