package engine

import (
	"testing"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/errors"
	"github.com/lgbarn/chess-rules-go/internal/testutil"
)

// play validates and applies each move in turn, failing the test on the
// first rejection. Promotions are resolved to a queen.
func play(t *testing.T, board *chess.Board, moves ...chess.Move) {
	t.Helper()
	for _, move := range moves {
		if err := Validate(board, move); err != nil {
			t.Fatalf("Validate(%s) failed: %v", move, err)
		}
		promotion, err := ApplyMove(board, move, false)
		if err != nil {
			t.Fatalf("ApplyMove(%s) failed: %v", move, err)
		}
		if promotion {
			queen := chess.Piece{Kind: chess.Queen, Colour: board.ToMove}
			if err := ResolvePromotion(board, move.To, queen); err != nil {
				t.Fatalf("ResolvePromotion(%s) failed: %v", move.To, err)
			}
			board.ToMove = board.ToMove.Opposite()
		}
	}
}

func TestApplyMove(t *testing.T) {
	tests := []struct {
		name          string
		fen           string
		move          chess.Move
		wantFEN       string
		wantPromotion bool
	}{
		{
			name:    "e4 sets en passant target",
			fen:     InitialFEN,
			move:    testutil.Move("e2", "e4"),
			wantFEN: "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1",
		},
		{
			name:    "black double step",
			fen:     "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1",
			move:    testutil.Move("e7", "e5"),
			wantFEN: "rnbqkbnr/pppp1ppp/8/4p3/4P3/8/PPPP1PPP/RNBQKBNR w KQkq e6 0 1",
		},
		{
			name:    "piece move clears en passant target",
			fen:     "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1",
			move:    testutil.Move("g8", "f6"),
			wantFEN: "rnbqkb1r/pppppppp/5n2/8/4P3/8/PPPP1PPP/RNBQKBNR w KQkq - 0 1",
		},
		{
			name:    "white en passant removes the passed pawn",
			fen:     "4k3/8/8/3Pp3/8/8/8/4K3 w - e6 0 1",
			move:    testutil.Move("d5", "e6"),
			wantFEN: "4k3/8/4P3/8/8/8/8/4K3 b - - 0 1",
		},
		{
			name:    "black en passant removes the passed pawn",
			fen:     "4k3/8/8/8/3pP3/8/8/4K3 b - e3 0 1",
			move:    testutil.Move("d4", "e3"),
			wantFEN: "4k3/8/8/8/8/4p3/8/4K3 w - - 0 1",
		},
		{
			name:    "white kingside castle",
			fen:     castlingFEN,
			move:    testutil.Move("e1", "g1"),
			wantFEN: "r3k2r/8/8/8/8/8/8/R4RK1 b kq - 0 1",
		},
		{
			name:    "white queenside castle",
			fen:     castlingFEN,
			move:    testutil.Move("e1", "c1"),
			wantFEN: "r3k2r/8/8/8/8/8/8/2KR3R b kq - 0 1",
		},
		{
			name:    "black kingside castle",
			fen:     "r3k2r/8/8/8/8/8/8/R3K2R b KQkq - 0 1",
			move:    testutil.Move("e8", "g8"),
			wantFEN: "r4rk1/8/8/8/8/8/8/R3K2R w KQ - 0 1",
		},
		{
			name:    "black queenside castle",
			fen:     "r3k2r/8/8/8/8/8/8/R3K2R b KQkq - 0 1",
			move:    testutil.Move("e8", "c8"),
			wantFEN: "2kr3r/8/8/8/8/8/8/R3K2R w KQ - 0 1",
		},
		{
			name:    "king step clears both rights",
			fen:     castlingFEN,
			move:    testutil.Move("e1", "f1"),
			wantFEN: "r3k2r/8/8/8/8/8/8/R4K1R b kq - 0 1",
		},
		{
			name:    "rook move clears its right",
			fen:     castlingFEN,
			move:    testutil.Move("h1", "h2"),
			wantFEN: "r3k2r/8/8/8/8/8/7R/R3K3 b Qkq - 0 1",
		},
		{
			name:    "capturing a home rook clears the victim's right",
			fen:     castlingFEN,
			move:    testutil.Move("a1", "a8"),
			wantFEN: "R3k2r/8/8/8/8/8/8/4K2R b Kk - 0 1",
		},
		{
			name:          "white promotion holds the turn",
			fen:           "4k3/P7/8/8/8/8/8/4K3 w - - 0 1",
			move:          testutil.Move("a7", "a8"),
			wantFEN:       "P3k3/8/8/8/8/8/8/4K3 w - - 0 1",
			wantPromotion: true,
		},
		{
			name:          "black capture promotion",
			fen:           "4k3/8/8/8/8/8/1p6/R3K3 b Q - 0 1",
			move:          testutil.Move("b2", "a1"),
			wantFEN:       "4k3/8/8/8/8/8/8/p3K3 b - - 0 1",
			wantPromotion: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			board, err := NewBoardFromFEN(tt.fen)
			if err != nil {
				t.Fatalf("NewBoardFromFEN(%q) failed: %v", tt.fen, err)
			}
			testutil.AssertNoError(t, Validate(board, tt.move), "move should be legal")

			promotion, err := ApplyMove(board, tt.move, false)
			testutil.AssertNoError(t, err)
			testutil.AssertEqual(t, promotion, tt.wantPromotion, "promotion pending")
			testutil.AssertEqual(t, BoardToFEN(board), tt.wantFEN)
		})
	}
}

func TestApplyMove_Simulate(t *testing.T) {
	tests := []struct {
		name    string
		fen     string
		move    chess.Move
		wantFEN string
	}{
		{
			name:    "castling moves the rook but keeps rights and turn",
			fen:     castlingFEN,
			move:    testutil.Move("e1", "g1"),
			wantFEN: "r3k2r/8/8/8/8/8/8/R4RK1 w KQkq - 0 1",
		},
		{
			name:    "en passant removes the pawn but keeps the target",
			fen:     "4k3/8/8/3Pp3/8/8/8/4K3 w - e6 0 1",
			move:    testutil.Move("d5", "e6"),
			wantFEN: "4k3/8/4P3/8/8/8/8/4K3 w - e6 0 1",
		},
		{
			name:    "promotion is not reported",
			fen:     "4k3/P7/8/8/8/8/8/4K3 w - - 0 1",
			move:    testutil.Move("a7", "a8"),
			wantFEN: "P3k3/8/8/8/8/8/8/4K3 w - - 0 1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			board, err := NewBoardFromFEN(tt.fen)
			if err != nil {
				t.Fatalf("NewBoardFromFEN(%q) failed: %v", tt.fen, err)
			}
			promotion, err := ApplyMove(board, tt.move, true)
			testutil.AssertNoError(t, err)
			testutil.AssertFalse(t, promotion, "simulation reported a promotion")
			testutil.AssertEqual(t, BoardToFEN(board), tt.wantFEN)
		})
	}
}

func TestApplyMove_EmptyStart(t *testing.T) {
	board := NewInitialBoard()
	before := board.Copy()

	_, err := ApplyMove(board, testutil.Move("e4", "e5"), false)
	testutil.AssertErrorIs(t, err, errors.ErrInternal)
	testutil.AssertEqual(t, board, before)
}

func TestApplyMove_EnPassantExpires(t *testing.T) {
	board, err := NewBoardFromFEN("4k3/8/8/8/4p3/8/3P4/4K3 w - - 0 1")
	if err != nil {
		t.Fatalf("NewBoardFromFEN failed: %v", err)
	}

	play(t, board, testutil.Move("d2", "d4"))
	testutil.AssertNoError(t, Validate(board, testutil.Move("e4", "d3")), "capture on the next ply")

	play(t, board, testutil.Move("e8", "e7"), testutil.Move("e1", "f1"))
	testutil.AssertErrorIs(t, Validate(board, testutil.Move("e4", "d3")), errors.ErrInvalidShape, "capture two plies later")
}

func TestApplyMove_KingReturnDoesNotRestoreCastling(t *testing.T) {
	board, err := NewBoardFromFEN(castlingFEN)
	if err != nil {
		t.Fatalf("NewBoardFromFEN failed: %v", err)
	}

	play(t, board,
		testutil.Move("e1", "f1"),
		testutil.Move("a8", "b8"),
		testutil.Move("f1", "e1"),
		testutil.Move("b8", "a8"),
	)

	testutil.AssertFalse(t, board.CanCastle(chess.WhiteKingside))
	testutil.AssertFalse(t, board.CanCastle(chess.WhiteQueenside))
	testutil.AssertFalse(t, board.CanCastle(chess.BlackQueenside))
	testutil.AssertTrue(t, board.CanCastle(chess.BlackKingside))
	testutil.AssertErrorIs(t, Validate(board, testutil.Move("e1", "g1")), errors.ErrCastlingNotAllowed)
	testutil.AssertEqual(t, BoardToFEN(board), "r3k2r/8/8/8/8/8/8/R3K2R w k - 0 1")
}
