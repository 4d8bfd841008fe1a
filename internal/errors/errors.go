// Package errors provides sentinel errors and error types for the chess rules engine.
// It defines common error conditions and structured error types that preserve
// context while allowing error inspection with errors.Is() and errors.As().
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for common failure conditions.
// Use these with errors.Is() to check for specific error types.
var (
	// ErrOutOfRange indicates coordinates outside the board.
	ErrOutOfRange = errors.New("square out of range")

	// ErrIllegalMove indicates a move that violates chess rules.
	// Every specific rejection reason below wraps it.
	ErrIllegalMove = errors.New("illegal move")

	// ErrInvalidFEN indicates a malformed positional notation string.
	ErrInvalidFEN = errors.New("invalid FEN string")

	// ErrInvariantViolation indicates a board that breaks a structural
	// invariant, such as a missing king.
	ErrInvariantViolation = errors.New("board invariant violated")

	// ErrInvalidPromotion indicates a rejected promotion request.
	ErrInvalidPromotion = errors.New("invalid promotion")

	// ErrPromotionPending indicates a move attempted while a pawn awaits promotion.
	ErrPromotionPending = errors.New("promotion pending")

	// ErrNoPromotionPending indicates a promotion choice with no pawn awaiting it.
	ErrNoPromotionPending = errors.New("no promotion pending")

	// ErrInternal indicates a broken internal contract, never a user error.
	ErrInternal = errors.New("internal engine error")
)

// Specific reasons a move is illegal, most specific first in validation order.
var (
	ErrSameSquare         = fmt.Errorf("start and end square are the same: %w", ErrIllegalMove)
	ErrNoPiece            = fmt.Errorf("no piece on start square: %w", ErrIllegalMove)
	ErrWrongTurn          = fmt.Errorf("piece does not belong to the side to move: %w", ErrIllegalMove)
	ErrOwnPiece           = fmt.Errorf("destination holds a piece of the same colour: %w", ErrIllegalMove)
	ErrInvalidShape       = fmt.Errorf("piece cannot move that way: %w", ErrIllegalMove)
	ErrBlockedPath        = fmt.Errorf("path is blocked: %w", ErrIllegalMove)
	ErrCastlingNotAllowed = fmt.Errorf("castling not allowed: %w", ErrIllegalMove)
	ErrKingInCheck        = fmt.Errorf("move would leave king in check: %w", ErrIllegalMove)
)

// MoveError wraps errors with game context, including the game identity,
// ply position and move text. It implements the error interface and supports
// unwrapping via errors.Is() and errors.As().
type MoveError struct {
	Err      error  // The underlying error
	GameID   string // Identity of the game the move was played in (if known)
	PlyNum   int    // 1-based ply the move would have been (0 if not applicable)
	MoveText string // The move in long algebraic form (if applicable)
}

// Error returns a formatted error message including all available context.
func (e *MoveError) Error() string {
	var parts []string

	if e.GameID != "" {
		parts = append(parts, fmt.Sprintf("game %s", e.GameID))
	}

	if e.PlyNum > 0 {
		parts = append(parts, fmt.Sprintf("ply %d", e.PlyNum))
	}

	if e.MoveText != "" {
		parts = append(parts, fmt.Sprintf("move %q", e.MoveText))
	}

	context := strings.Join(parts, ", ")

	if e.Err != nil {
		if context == "" {
			return e.Err.Error()
		}
		return fmt.Sprintf("%s: %v", context, e.Err)
	}
	return context
}

// Unwrap returns the underlying error, enabling errors.Is() and errors.As()
// to work through the MoveError wrapper.
func (e *MoveError) Unwrap() error {
	return e.Err
}

// Wrap adds context to an error while preserving the underlying error
// for inspection with errors.Is() and errors.As().
func Wrap(err error, context string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", context, err)
}

// Wrapf adds formatted context to an error while preserving the underlying
// error for inspection with errors.Is() and errors.As().
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}
