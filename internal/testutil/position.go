package testutil

import "github.com/lgbarn/chess-rules-go/internal/chess"

// Move builds a move from algebraic square names, e.g. Move("e2", "e4").
// It panics on an invalid name.
func Move(from, to string) chess.Move {
	return chess.NewMove(chess.MustSquare(from), chess.MustSquare(to))
}

// Squares converts algebraic square names to squares, preserving order.
// It panics on an invalid name.
func Squares(names ...string) []chess.Square {
	squares := make([]chess.Square, 0, len(names))
	for _, name := range names {
		squares = append(squares, chess.MustSquare(name))
	}
	return squares
}
