package engine

import (
	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// kingHome returns the starting square of the colour's king (e1 or e8).
func kingHome(colour chess.Colour) chess.Square {
	return chess.Sq(colour.BackRow(), 4)
}

// rookHome returns the corner a castling rook starts from.
func rookHome(colour chess.Colour, kingside bool) chess.Square {
	if kingside {
		return chess.Sq(colour.BackRow(), chess.BoardSize-1)
	}
	return chess.Sq(colour.BackRow(), 0)
}

// validateCastling checks a two-column king move. The king may not be in
// check, the right must still be held, every square between king and rook
// must be empty, and the square the king crosses and the one it lands on
// must not be attacked.
func validateCastling(board *chess.Board, colour chess.Colour, from, to chess.Square) error {
	kingside := to.Col > from.Col
	right := chess.CastlingFor(colour, kingside)

	if IsInCheck(board, colour) {
		return errors.Wrap(errors.ErrCastlingNotAllowed, "king is in check")
	}
	if !board.CanCastle(right) {
		return errors.Wrapf(errors.ErrCastlingNotAllowed, "right %c has been lost", right.Letter())
	}

	rookSq := rookHome(colour, kingside)
	if from != kingHome(colour) || !board.Get(rookSq).Is(chess.Rook, colour) {
		return errors.Wrapf(errors.ErrCastlingNotAllowed, "king or rook not on home square for %c", right.Letter())
	}
	if !isPathClear(board, from, rookSq) {
		return errors.ErrBlockedPath
	}

	opponent := colour.Opposite()
	step := sign(to.Col - from.Col)
	for _, sq := range []chess.Square{from.Offset(0, step), to} {
		if IsSquareAttacked(board, sq, opponent) {
			return errors.Wrapf(errors.ErrCastlingNotAllowed, "king passes through attacked square %s", sq)
		}
	}
	return nil
}

// relocateCastlingRook moves the rook that accompanies a castling king:
// kingside the h-file rook moves two columns inward, queenside the a-file
// rook moves three.
func relocateCastlingRook(board *chess.Board, row int, kingside bool) {
	rookFrom, rookTo := chess.Sq(row, 0), chess.Sq(row, 3)
	if kingside {
		rookFrom, rookTo = chess.Sq(row, 7), chess.Sq(row, 5)
	}
	rook := board.Get(rookFrom)
	board.Set(rookFrom, chess.NoPiece)
	board.Set(rookTo, rook)
}

// updateCastlingRights clears rights after a real move: both of the mover's
// rights when the king moves, and the matching right when a rook leaves or
// is captured on its home corner.
func updateCastlingRights(board *chess.Board, moved chess.Piece, from chess.Square, captured chess.Piece, to chess.Square) {
	if moved.Kind == chess.King {
		board.ClearCastling(chess.CastlingFor(moved.Colour, true))
		board.ClearCastling(chess.CastlingFor(moved.Colour, false))
	}
	if moved.Kind == chess.Rook {
		updateCastlingRightsForRook(board, moved.Colour, from)
	}
	if captured.Kind == chess.Rook {
		updateCastlingRightsForRook(board, captured.Colour, to)
	}
}

// updateCastlingRightsForRook removes the right tied to a rook corner.
func updateCastlingRightsForRook(board *chess.Board, colour chess.Colour, sq chess.Square) {
	switch sq {
	case rookHome(colour, true):
		board.ClearCastling(chess.CastlingFor(colour, true))
	case rookHome(colour, false):
		board.ClearCastling(chess.CastlingFor(colour, false))
	}
}
