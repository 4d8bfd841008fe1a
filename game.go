// Package chessrules is a chess rules engine for interactive play. A Game
// validates proposed moves against the full rules of chess, applies accepted
// moves, detects check, checkmate and stalemate, and converts positions to
// and from FEN.
//
// Squares use zero-based rows and columns: row 0 is rank 8, row 7 is rank 1,
// and column 0 is the a-file. A Game is not safe for concurrent use.
package chessrules

import (
	"github.com/google/uuid"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/config"
	"github.com/lgbarn/chess-rules-go/internal/engine"
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// Game owns one position and the promotion state between moves.
type Game struct {
	id    uuid.UUID
	board *chess.Board
	diag  Observer

	// Set between a pawn reaching its last rank and ResolvePromotion.
	promotionPending bool
	promotionSquare  Square

	// Plies played through this Game, used for diagnostics context only.
	ply int
}

// MoveResult describes an accepted move.
type MoveResult struct {
	// PromotionPending is true when a pawn reached its last rank and is
	// waiting for ResolvePromotion. The turn has not passed yet.
	PromotionPending bool

	// PromotionSquare is the square of the waiting pawn.
	PromotionSquare Square
}

// NewGame creates a game at the standard starting position with White to
// move, all castling rights held and no en passant target.
func NewGame(opts ...Option) *Game {
	return newGame(engine.NewInitialBoard(), opts)
}

// FromNotation creates a game from a FEN string. Only the first four fields
// are interpreted; see LoadNotation.
func FromNotation(fen string, opts ...Option) (*Game, error) {
	board, err := engine.NewBoardFromFEN(fen)
	if err != nil {
		return nil, err
	}
	g := newGame(board, opts)
	g.reportMissingKings()
	return g, nil
}

func newGame(board *chess.Board, opts []Option) *Game {
	cfg := config.NewConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	return &Game{
		id:    uuid.New(),
		board: board,
		diag:  cfg.Diagnostics(),
	}
}

// ID returns the random identity of the game, stamped on errors and
// diagnostics.
func (g *Game) ID() uuid.UUID {
	return g.id
}

// LoadNotation replaces the position with one decoded from a FEN string.
// A malformed string is rejected with ErrInvalidFEN and leaves the game
// untouched. Any pending promotion is discarded.
func (g *Game) LoadNotation(fen string) error {
	board, err := engine.NewBoardFromFEN(fen)
	if err != nil {
		return err
	}
	g.board = board
	g.promotionPending = false
	g.ply = 0
	g.reportMissingKings()
	return nil
}

// ToNotation encodes the position as FEN. The halfmove clock and fullmove
// number are always written as "0 1".
func (g *Game) ToNotation() string {
	return engine.BoardToFEN(g.board)
}

// GetPiece returns the piece at row, col. Off-board coordinates and empty
// squares both return the zero Piece.
func (g *Game) GetPiece(row, col int) Piece {
	return g.board.Get(chess.Sq(row, col))
}

// Board returns a copy of the squares, indexed [row][col].
func (g *Game) Board() [chess.BoardSize][chess.BoardSize]Piece {
	return g.board.Squares
}

// CurrentTurn returns the side to move.
func (g *Game) CurrentTurn() Colour {
	return g.board.ToMove
}

// CanCastle reports whether colour still holds the castling right on the
// given side. It says nothing about whether castling is legal right now.
func (g *Game) CanCastle(colour Colour, kingside bool) bool {
	return g.board.CanCastle(chess.CastlingFor(colour, kingside))
}

// EnPassantTarget returns the square a pawn may capture onto en passant on
// this ply, if any.
func (g *Game) EnPassantTarget() (Square, bool) {
	return g.board.EPSquare, g.board.EnPassant
}

// IsLegal reports whether moving from start to end is legal for the side to
// move. It never changes the game.
func (g *Game) IsLegal(start, end Square) bool {
	if g.promotionPending {
		return false
	}
	return engine.IsLegal(g.board, chess.NewMove(start, end))
}

// LegalDestinations returns every square the piece at row, col may legally
// move to. The result is empty for an empty square, a piece of the side not
// to move, or off-board coordinates.
func (g *Game) LegalDestinations(row, col int) []Square {
	if g.promotionPending {
		return nil
	}
	return engine.LegalDestinations(g.board, chess.Sq(row, col))
}

// MakeMove validates and plays the move from start to end. On rejection the
// error is a *MoveError wrapping the most specific reason and the game is
// unchanged. When a pawn reaches its last rank the result reports a pending
// promotion and the turn does not pass until ResolvePromotion succeeds.
func (g *Game) MakeMove(start, end Square) (MoveResult, error) {
	return g.Play(chess.NewMove(start, end))
}

// Play is MakeMove for a Move value. If the move leaves a promotion pending
// and move.Promotion names a piece kind, the promotion is resolved at once;
// an unusable kind leaves the promotion pending.
func (g *Game) Play(move Move) (MoveResult, error) {
	if g.promotionPending {
		return MoveResult{}, g.rejectMove(move, errors.ErrPromotionPending)
	}
	// Without the mover's king the self-check test passes vacuously.
	g.reportMissingKing(g.board.ToMove)
	if err := engine.Validate(g.board, move); err != nil {
		return MoveResult{}, g.rejectMove(move, err)
	}

	promotion, err := engine.ApplyMove(g.board, move, false)
	if err != nil {
		return MoveResult{}, g.moveError(move, err)
	}
	g.ply++

	if !promotion {
		return MoveResult{}, nil
	}

	g.promotionPending = true
	g.promotionSquare = move.To
	if move.Promotion != chess.Empty && g.ResolvePromotion(move.To, move.Promotion) == nil {
		return MoveResult{}, nil
	}
	return MoveResult{PromotionPending: true, PromotionSquare: move.To}, nil
}

// PendingPromotion returns the square of a pawn waiting to be promoted.
func (g *Game) PendingPromotion() (Square, bool) {
	return g.promotionSquare, g.promotionPending
}

// ResolvePromotion replaces the waiting pawn on sq with a piece of the
// chosen kind (Rook, Knight, Bishop or Queen) and then passes the turn.
// Any rejection leaves the pawn and the turn unchanged.
func (g *Game) ResolvePromotion(sq Square, kind Kind) error {
	if !g.promotionPending {
		return errors.ErrNoPromotionPending
	}
	if sq != g.promotionSquare {
		return errors.Wrapf(errors.ErrInvalidPromotion, "promotion is pending on %s, not %s", g.promotionSquare, sq)
	}

	choice := chess.Piece{Kind: kind, Colour: g.board.ToMove}
	if err := engine.ResolvePromotion(g.board, sq, choice); err != nil {
		return err
	}

	g.promotionPending = false
	g.board.ToMove = g.board.ToMove.Opposite()
	return nil
}

// IsCheck reports whether colour's king is attacked. A board without that
// king reports false and the anomaly is sent to the observer.
func (g *Game) IsCheck(colour Colour) bool {
	inCheck, err := engine.InCheck(g.board, colour)
	if err != nil {
		g.reportViolation(err)
	}
	return inCheck
}

// IsCheckmate reports whether the side to move is in check with no legal move.
func (g *Game) IsCheckmate() bool {
	return g.Status() == Checkmate
}

// IsStalemate reports whether the side to move is not in check and has no
// legal move.
func (g *Game) IsStalemate() bool {
	return g.Status() == Stalemate
}

// Status classifies the position for the side to move.
func (g *Game) Status() Status {
	colour := g.board.ToMove
	inCheck := g.IsCheck(colour)
	switch {
	case engine.HasLegalMoves(g.board, colour):
		return Ongoing
	case inCheck:
		return Checkmate
	default:
		return Stalemate
	}
}

// KingSquare returns the square of colour's king, or an error wrapping
// ErrInvariantViolation if it is missing.
func (g *Game) KingSquare(colour Colour) (Square, error) {
	sq, err := engine.KingSquare(g.board, colour)
	if err != nil {
		g.reportViolation(err)
	}
	return sq, err
}

func (g *Game) rejectMove(move Move, err error) error {
	moveErr := g.moveError(move, err)
	g.diag.MoveRejected(g.id.String(), move, err)
	return moveErr
}

func (g *Game) moveError(move Move, err error) error {
	return &errors.MoveError{
		Err:      err,
		GameID:   g.id.String(),
		PlyNum:   g.ply + 1,
		MoveText: move.String(),
	}
}

func (g *Game) reportMissingKings() {
	g.reportMissingKing(chess.White)
	g.reportMissingKing(chess.Black)
}

// reportMissingKing sends an invariant violation to the observer when
// colour's king is not on the board.
func (g *Game) reportMissingKing(colour Colour) {
	if _, err := engine.KingSquare(g.board, colour); err != nil {
		g.reportViolation(err)
	}
}

func (g *Game) reportViolation(err error) {
	g.diag.InvariantViolation(g.id.String(), err)
}
