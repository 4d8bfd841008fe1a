package chessrules

import (
	"io"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/config"
	"github.com/lgbarn/chess-rules-go/internal/engine"
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// Board vocabulary shared with the internal packages.
type (
	Colour   = chess.Colour
	Kind     = chess.Kind
	Piece    = chess.Piece
	Square   = chess.Square
	Move     = chess.Move
	Status   = engine.Status
	Observer = config.Observer

	// MoveError carries the game, ply and move of a rejected move.
	MoveError = errors.MoveError
)

const (
	White = chess.White
	Black = chess.Black
)

const (
	Empty  = chess.Empty
	Pawn   = chess.Pawn
	Knight = chess.Knight
	Bishop = chess.Bishop
	Rook   = chess.Rook
	Queen  = chess.Queen
	King   = chess.King
)

const (
	Ongoing   = engine.Ongoing
	Checkmate = engine.Checkmate
	Stalemate = engine.Stalemate
)

// Verbosity levels for the default diagnostics writer.
const (
	Silent     = config.Silent
	Anomalies  = config.Anomalies
	Commentary = config.Commentary
)

// Errors returned by a Game. Test for them with errors.Is.
var (
	ErrOutOfRange         = errors.ErrOutOfRange
	ErrIllegalMove        = errors.ErrIllegalMove
	ErrInvalidFEN         = errors.ErrInvalidFEN
	ErrInvariantViolation = errors.ErrInvariantViolation
	ErrInvalidPromotion   = errors.ErrInvalidPromotion
	ErrPromotionPending   = errors.ErrPromotionPending
	ErrNoPromotionPending = errors.ErrNoPromotionPending

	ErrSameSquare         = errors.ErrSameSquare
	ErrNoPiece            = errors.ErrNoPiece
	ErrWrongTurn          = errors.ErrWrongTurn
	ErrOwnPiece           = errors.ErrOwnPiece
	ErrInvalidShape       = errors.ErrInvalidShape
	ErrBlockedPath        = errors.ErrBlockedPath
	ErrCastlingNotAllowed = errors.ErrCastlingNotAllowed
	ErrKingInCheck        = errors.ErrKingInCheck
)

// InitialFEN is the standard starting position.
const InitialFEN = engine.InitialFEN

// Sq returns the square at row, col.
func Sq(row, col int) Square {
	return chess.Sq(row, col)
}

// ParseSquare converts algebraic notation such as "e4" to a Square.
func ParseSquare(name string) (Square, bool) {
	return chess.ParseSquare(name)
}

// Option configures a Game.
type Option func(*config.Config)

// WithLogFile sets where the default observer writes diagnostics.
// A nil writer discards them.
func WithLogFile(w io.Writer) Option {
	return func(c *config.Config) {
		c.LogFile = w
	}
}

// WithVerbosity sets how much the default observer writes.
func WithVerbosity(level int) Option {
	return func(c *config.Config) {
		c.Verbosity = level
	}
}

// WithObserver replaces the default observer. Observers only receive
// events; they cannot change the outcome of an operation.
func WithObserver(o Observer) Option {
	return func(c *config.Config) {
		c.Observer = o
	}
}
