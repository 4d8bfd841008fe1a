// Package engine provides chess move validation and board manipulation.
package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// The shape predicates below only look at the row and column deltas of a
// move. They know nothing about the board except pawn direction and home row.

func isRookShape(dRow, dCol int) bool {
	return (dRow == 0) != (dCol == 0)
}

func isBishopShape(dRow, dCol int) bool {
	return abs(dRow) == abs(dCol) && dRow != 0
}

func isQueenShape(dRow, dCol int) bool {
	return isRookShape(dRow, dCol) || isBishopShape(dRow, dCol)
}

func isKnightShape(dRow, dCol int) bool {
	r, c := abs(dRow), abs(dCol)
	return (r == 1 && c == 2) || (r == 2 && c == 1)
}

// isKingStep matches a single king step in any direction.
func isKingStep(dRow, dCol int) bool {
	return abs(dRow) <= 1 && abs(dCol) <= 1 && (dRow != 0 || dCol != 0)
}

// isCastlingShape matches the two-column sideways king move.
func isCastlingShape(dRow, dCol int) bool {
	return dRow == 0 && abs(dCol) == 2
}

func isPawnSingleStep(colour chess.Colour, dRow, dCol int) bool {
	return dCol == 0 && dRow == colour.Forward()
}

// isPawnDoubleStep matches the shape of a pawn's initial advance. The caller
// is responsible for checking that the skipped square is empty.
func isPawnDoubleStep(colour chess.Colour, fromRow, dRow, dCol int) bool {
	return dCol == 0 && dRow == 2*colour.Forward() && fromRow == colour.PawnRow()
}

// isPawnDiagonal matches the pawn's capturing shape. Whether the destination
// allows the capture is decided by the caller.
func isPawnDiagonal(colour chess.Colour, dRow, dCol int) bool {
	return abs(dCol) == 1 && dRow == colour.Forward()
}

// hasSliderShape checks the line shape for a sliding piece.
func hasSliderShape(kind chess.Kind, dRow, dCol int) bool {
	switch kind {
	case chess.Rook:
		return isRookShape(dRow, dCol)
	case chess.Bishop:
		return isBishopShape(dRow, dCol)
	case chess.Queen:
		return isQueenShape(dRow, dCol)
	}
	return false
}

// abs returns the absolute value of x.
func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// sign returns the sign of x: -1, 0, or 1.
func sign(x int) int {
	if x > 0 {
		return 1
	}
	if x < 0 {
		return -1
	}
	return 0
}
