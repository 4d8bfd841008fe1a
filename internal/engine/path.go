package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// isPathClear checks that every square strictly between from and to is empty.
// It must only be called for straight or diagonal lines; the step direction
// is the sign of each coordinate delta.
func isPathClear(board *chess.Board, from, to chess.Square) bool {
	rowDir := sign(to.Row - from.Row)
	colDir := sign(to.Col - from.Col)

	sq := from.Offset(rowDir, colDir)
	for sq != to {
		if !sq.OnBoard() {
			return false
		}
		if !board.IsEmpty(sq) {
			return false
		}
		sq = sq.Offset(rowDir, colDir)
	}

	return true
}

// canReach reports whether the piece on from has the capturing shape onto to:
// pawns only diagonally forward, sliders along a clear line, knights and
// kings by shape alone. Castling and pawn pushes never attack.
func canReach(board *chess.Board, from, to chess.Square) bool {
	if from == to || !from.OnBoard() || !to.OnBoard() {
		return false
	}
	piece := board.Get(from)
	dRow, dCol := to.Row-from.Row, to.Col-from.Col

	switch piece.Kind {
	case chess.Pawn:
		return isPawnDiagonal(piece.Colour, dRow, dCol)
	case chess.Knight:
		return isKnightShape(dRow, dCol)
	case chess.King:
		return isKingStep(dRow, dCol)
	case chess.Rook, chess.Bishop, chess.Queen:
		return hasSliderShape(piece.Kind, dRow, dCol) && isPathClear(board, from, to)
	}
	return false
}
