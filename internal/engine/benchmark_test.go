package engine

import (
	"testing"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/testutil"
)

var benchFENs = map[string]string{
	"Initial":   "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1",
	"Midgame":   "r1bqkb1r/pppp1ppp/2n2n2/4p3/2B1P3/5N2/PPPP1PPP/RNBQK2R w KQkq - 4 4",
	"Endgame":   "8/5k2/8/8/8/8/5K2/4R3 w - - 0 1",
	"Complex":   "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
	"EnPassant": "rnbqkbnr/pppp1ppp/8/4pP2/8/8/PPPPP1PP/RNBQKBNR w KQkq e6 0 3",
	"Castling":  "r3k2r/pppppppp/8/8/8/8/PPPPPPPP/R3K2R w KQkq - 0 1",
}

func BenchmarkNewBoardFromFEN(b *testing.B) {
	for name, fen := range benchFENs {
		b.Run(name, func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				NewBoardFromFEN(fen)
			}
		})
	}
}

func BenchmarkBoardToFEN(b *testing.B) {
	for name, fen := range benchFENs {
		b.Run(name, func(b *testing.B) {
			board, _ := NewBoardFromFEN(fen)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				BoardToFEN(board)
			}
		})
	}
}

func BenchmarkValidate(b *testing.B) {
	cases := []struct {
		name string
		fen  string
		move chess.Move
	}{
		{"PawnMove", benchFENs["Initial"], testutil.Move("e2", "e4")},
		{"PieceMove", benchFENs["Midgame"], testutil.Move("f3", "g5")},
		{"Castling", benchFENs["Castling"], testutil.Move("e1", "g1")},
		{"EnPassant", benchFENs["EnPassant"], testutil.Move("f5", "e6")},
		{"Rejected", benchFENs["Initial"], testutil.Move("e2", "e5")},
	}

	for _, tc := range cases {
		b.Run(tc.name, func(b *testing.B) {
			board, _ := NewBoardFromFEN(tc.fen)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				Validate(board, tc.move)
			}
		})
	}
}

func BenchmarkGameReplay_ItalianOpening(b *testing.B) {
	moves := []chess.Move{
		testutil.Move("e2", "e4"), testutil.Move("e7", "e5"),
		testutil.Move("g1", "f3"), testutil.Move("b8", "c6"),
		testutil.Move("f1", "c4"), testutil.Move("f8", "c5"),
		testutil.Move("e1", "g1"), testutil.Move("g8", "f6"),
	}

	for i := 0; i < b.N; i++ {
		board := NewInitialBoard()
		for _, move := range moves {
			if Validate(board, move) == nil {
				ApplyMove(board, move, false)
			}
		}
	}
}

func BenchmarkIsInCheck(b *testing.B) {
	checkFEN := "rnb1kbnr/pppp1ppp/8/4p3/7q/5P2/PPPPP1PP/RNBQKBNR w KQkq - 1 3"

	b.Run("NoCheck", func(b *testing.B) {
		board, _ := NewBoardFromFEN(benchFENs["Initial"])
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			IsInCheck(board, chess.White)
		}
	})

	b.Run("InCheck", func(b *testing.B) {
		board, _ := NewBoardFromFEN(checkFEN)
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			IsInCheck(board, chess.White)
		}
	})
}

func BenchmarkHasLegalMoves(b *testing.B) {
	positions := []string{"Initial", "Midgame", "Endgame"}
	for _, name := range positions {
		b.Run(name, func(b *testing.B) {
			board, _ := NewBoardFromFEN(benchFENs[name])
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				HasLegalMoves(board, chess.White)
			}
		})
	}
}

func BenchmarkGameStatus_Stalemate(b *testing.B) {
	board, _ := NewBoardFromFEN("7k/5Q2/6K1/8/8/8/8/8 b - - 0 1")
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		GameStatus(board)
	}
}

func BenchmarkBoardCopy(b *testing.B) {
	board, _ := NewBoardFromFEN(benchFENs["Midgame"])
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		board.Copy()
	}
}
