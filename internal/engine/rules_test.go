package engine

import (
	"testing"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/testutil"
)

func TestGameStatus(t *testing.T) {
	tests := []struct {
		name string
		fen  string
		want Status
	}{
		{"initial position", InitialFEN, Ongoing},
		{"check with escapes", "4k3/8/8/8/8/8/8/4K2r w - - 0 1", Ongoing},
		{"fool's mate", foolsMateFEN, Checkmate},
		{"back rank mate", "R5k1/5ppp/8/8/8/8/8/6K1 b - - 0 1", Checkmate},
		{"smothered mate", "6rk/5Npp/8/8/8/8/8/6K1 b - - 0 1", Checkmate},
		{"queen stalemate", "7k/5Q2/6K1/8/8/8/8/8 b - - 0 1", Stalemate},
		{"blocked pawn stalemate", "8/8/8/8/8/5k2/5p2/5K2 w - - 0 1", Stalemate},
		{"capture escapes mate", "R5k1/5ppp/8/8/8/8/8/r5K1 b - - 0 1", Ongoing},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			board, err := NewBoardFromFEN(tt.fen)
			if err != nil {
				t.Fatalf("NewBoardFromFEN(%q) failed: %v", tt.fen, err)
			}
			testutil.AssertEqual(t, GameStatus(board), tt.want)
			testutil.AssertEqual(t, IsCheckmate(board), tt.want == Checkmate)
			testutil.AssertEqual(t, IsStalemate(board), tt.want == Stalemate)
		})
	}
}

func TestGameStatus_FoolsMateSequence(t *testing.T) {
	board := NewInitialBoard()
	play(t, board,
		testutil.Move("f2", "f3"),
		testutil.Move("e7", "e5"),
		testutil.Move("g2", "g4"),
	)
	testutil.AssertEqual(t, GameStatus(board), Ongoing)

	play(t, board, testutil.Move("d8", "h4"))
	testutil.AssertTrue(t, IsInCheck(board, chess.White))
	testutil.AssertEqual(t, GameStatus(board), Checkmate)
	testutil.AssertFalse(t, HasLegalMoves(board, chess.White))
	testutil.AssertTrue(t, HasLegalMoves(board, chess.Black))
}

func TestStatusString(t *testing.T) {
	testutil.AssertEqual(t, Ongoing.String(), "Ongoing")
	testutil.AssertEqual(t, Checkmate.String(), "Checkmate")
	testutil.AssertEqual(t, Stalemate.String(), "Stalemate")
}
