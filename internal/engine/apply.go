package engine

import (
	"fmt"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// ApplyMove applies a move to the board. The move must already have been
// validated; an empty start square is reported as errors.ErrInternal.
//
// The piece mechanics always run: an en passant victim is removed (read from
// the pre-move board), the piece is relocated, and a castling rook follows
// its king. When simulate is false the bookkeeping runs as well: castling
// rights are revoked, the en passant target is set or cleared, and the side
// to move is toggled unless a pawn reached its last rank, in which case the
// returned bool reports a pending promotion on move.To and the turn is held.
func ApplyMove(board *chess.Board, move chess.Move, simulate bool) (bool, error) {
	from, to := move.From, move.To
	piece := board.Get(from)
	if piece.IsEmpty() {
		return false, fmt.Errorf("apply %s: empty start square: %w", move, errors.ErrInternal)
	}
	captured := board.Get(to)
	dRow, dCol := move.DeltaRow(), move.DeltaCol()

	// Handle en passant capture before the destination is overwritten
	if piece.Kind == chess.Pawn && isPawnDiagonal(piece.Colour, dRow, dCol) && board.IsEnPassantTarget(to) {
		board.Set(chess.Sq(from.Row, to.Col), chess.NoPiece)
	}

	board.Set(to, piece)
	board.Set(from, chess.NoPiece)

	if piece.Kind == chess.King && isCastlingShape(dRow, dCol) {
		relocateCastlingRook(board, from.Row, dCol > 0)
	}

	if simulate {
		return false, nil
	}

	updateCastlingRights(board, piece, from, captured, to)

	// The en passant window lasts exactly one ply
	if piece.Kind == chess.Pawn && abs(dRow) == 2 {
		board.SetEnPassant(chess.Sq((from.Row+to.Row)/2, from.Col))
	} else {
		board.ClearEnPassant()
	}

	if piece.Kind == chess.Pawn && to.Row == piece.Colour.PromotionRow() {
		return true, nil
	}
	board.ToMove = board.ToMove.Opposite()

	return false, nil
}
