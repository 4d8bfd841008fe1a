package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// HasLegalMoves returns true if the given colour has at least one legal move.
// Every square holding a piece of that colour is tried against every square
// of the board, so the cost is bounded by 64x64 validations.
func HasLegalMoves(board *chess.Board, colour chess.Colour) bool {
	probe := boardForColour(board, colour)
	for row := 0; row < chess.BoardSize; row++ {
		for col := 0; col < chess.BoardSize; col++ {
			piece := probe.Squares[row][col]
			if piece.IsEmpty() || piece.Colour != colour {
				continue
			}
			if hasLegalMovesForPiece(probe, chess.Sq(row, col)) {
				return true
			}
		}
	}
	return false
}

// hasLegalMovesForPiece checks if the piece on from has any legal destination.
func hasLegalMovesForPiece(board *chess.Board, from chess.Square) bool {
	for row := 0; row < chess.BoardSize; row++ {
		for col := 0; col < chess.BoardSize; col++ {
			if IsLegal(board, chess.NewMove(from, chess.Sq(row, col))) {
				return true
			}
		}
	}
	return false
}

// LegalDestinations returns every square the piece on from may legally move
// to, in row-major order. It is empty for an off-board or empty square and
// for a piece that does not belong to the side to move.
func LegalDestinations(board *chess.Board, from chess.Square) []chess.Square {
	var dests []chess.Square
	if !from.OnBoard() {
		return dests
	}
	piece := board.Get(from)
	if piece.IsEmpty() || piece.Colour != board.ToMove {
		return dests
	}

	for row := 0; row < chess.BoardSize; row++ {
		for col := 0; col < chess.BoardSize; col++ {
			to := chess.Sq(row, col)
			if IsLegal(board, chess.NewMove(from, to)) {
				dests = append(dests, to)
			}
		}
	}
	return dests
}

// LegalMoves returns every legal move for the side to move. Promotions appear
// once per from/to pair; the promotion piece is chosen separately.
func LegalMoves(board *chess.Board) []chess.Move {
	var moves []chess.Move
	for row := 0; row < chess.BoardSize; row++ {
		for col := 0; col < chess.BoardSize; col++ {
			from := chess.Sq(row, col)
			for _, to := range LegalDestinations(board, from) {
				moves = append(moves, chess.NewMove(from, to))
			}
		}
	}
	return moves
}

// boardForColour returns the board itself when colour is to move, otherwise a
// copy with the side to move switched so the validator accepts its pieces.
func boardForColour(board *chess.Board, colour chess.Colour) *chess.Board {
	if board.ToMove == colour {
		return board
	}
	probe := board.Copy()
	probe.ToMove = colour
	return probe
}
