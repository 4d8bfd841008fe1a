package engine

import (
	"fmt"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// IsLegal returns true if the move is fully legal for the side to move.
// It never modifies the board.
func IsLegal(board *chess.Board, move chess.Move) bool {
	return Validate(board, move) == nil
}

// Validate checks a move against the complete rules of chess and returns the
// most specific reason it is rejected, or nil if it is legal. The checks run
// in order and stop at the first failure; the final check plays the move on
// a copy of the board and rejects it if the mover's king is left attacked.
func Validate(board *chess.Board, move chess.Move) error {
	from, to := move.From, move.To
	if !from.OnBoard() || !to.OnBoard() {
		return errors.Wrapf(errors.ErrOutOfRange, "move (%d,%d)->(%d,%d)", from.Row, from.Col, to.Row, to.Col)
	}
	if from == to {
		return errors.ErrSameSquare
	}

	piece := board.Get(from)
	if piece.IsEmpty() {
		return errors.ErrNoPiece
	}
	if piece.Colour != board.ToMove {
		return errors.ErrWrongTurn
	}

	target := board.Get(to)
	if !target.IsEmpty() && target.Colour == piece.Colour {
		return errors.ErrOwnPiece
	}

	if err := validatePieceMove(board, piece, move); err != nil {
		return err
	}

	return validateKingSafety(board, piece.Colour, move)
}

// validatePieceMove dispatches the shape, obstruction and special-move rules
// for the moving piece.
func validatePieceMove(board *chess.Board, piece chess.Piece, move chess.Move) error {
	dRow, dCol := move.DeltaRow(), move.DeltaCol()

	switch piece.Kind {
	case chess.Pawn:
		return validatePawnMove(board, piece.Colour, move)

	case chess.Knight:
		if !isKnightShape(dRow, dCol) {
			return errors.ErrInvalidShape
		}
		return nil

	case chess.Rook, chess.Bishop, chess.Queen:
		if !hasSliderShape(piece.Kind, dRow, dCol) {
			return errors.ErrInvalidShape
		}
		if !isPathClear(board, move.From, move.To) {
			return errors.ErrBlockedPath
		}
		return nil

	case chess.King:
		if isKingStep(dRow, dCol) {
			return nil
		}
		if isCastlingShape(dRow, dCol) {
			return validateCastling(board, piece.Colour, move.From, move.To)
		}
		return errors.ErrInvalidShape
	}

	return fmt.Errorf("unknown piece kind %d: %w", piece.Kind, errors.ErrInternal)
}

// validatePawnMove checks pushes, double steps, captures and en passant.
func validatePawnMove(board *chess.Board, colour chess.Colour, move chess.Move) error {
	from, to := move.From, move.To
	dRow, dCol := move.DeltaRow(), move.DeltaCol()

	switch {
	case isPawnSingleStep(colour, dRow, dCol):
		if !board.IsEmpty(to) {
			return errors.ErrBlockedPath
		}
		return nil

	case isPawnDoubleStep(colour, from.Row, dRow, dCol):
		if !board.IsEmpty(from.Offset(colour.Forward(), 0)) || !board.IsEmpty(to) {
			return errors.ErrBlockedPath
		}
		return nil

	case isPawnDiagonal(colour, dRow, dCol):
		// Same-colour targets were rejected before dispatch.
		if !board.IsEmpty(to) || board.IsEnPassantTarget(to) {
			return nil
		}
		return errors.ErrInvalidShape
	}

	return errors.ErrInvalidShape
}

// validateKingSafety plays the move on an independent copy of the board and
// rejects it if the mover's king is attacked afterwards. This is what catches
// pins, discovered checks and en passant exposures.
func validateKingSafety(board *chess.Board, colour chess.Colour, move chess.Move) error {
	sim := board.Copy()
	if _, err := ApplyMove(sim, move, true); err != nil {
		return err
	}
	if IsInCheck(sim, colour) {
		return errors.ErrKingInCheck
	}
	return nil
}
