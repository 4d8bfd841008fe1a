package engine

import (
	"fmt"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// ResolvePromotion replaces the pawn on sq with choice. The pawn must be on
// its promotion row and choice must be a rook, knight, bishop or queen of the
// pawn's colour. The side to move is not changed; on any error the board is
// left untouched.
func ResolvePromotion(board *chess.Board, sq chess.Square, choice chess.Piece) error {
	if !sq.OnBoard() {
		return fmt.Errorf("%w: %w", errors.ErrInvalidPromotion, errors.ErrOutOfRange)
	}

	pawn := board.Get(sq)
	if pawn.Kind != chess.Pawn {
		return errors.Wrapf(errors.ErrInvalidPromotion, "no pawn on %s", sq)
	}
	if sq.Row != pawn.Colour.PromotionRow() {
		return errors.Wrapf(errors.ErrInvalidPromotion, "pawn on %s is not on its promotion rank", sq)
	}
	if !choice.Kind.IsPromotionChoice() {
		return errors.Wrapf(errors.ErrInvalidPromotion, "cannot promote to %s", choice.Kind)
	}
	if choice.Colour != pawn.Colour {
		return errors.Wrapf(errors.ErrInvalidPromotion, "%s pawn cannot become a %s piece", pawn.Colour, choice.Colour)
	}

	board.Set(sq, choice)
	return nil
}
