package engine

import (
	"fmt"
	"strings"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// InitialFEN is the FEN string for the standard starting position.
const InitialFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// fenClockPlaceholder is written for the halfmove clock and fullmove number,
// which are not tracked.
const fenClockPlaceholder = "0 1"

// minFENFields is the number of fields a FEN string must carry: placement,
// side to move, castling availability and en passant target.
const minFENFields = 4

// NewBoardFromFEN creates a board from a FEN string.
//
// Piece placement is parsed leniently: a digit skips that many files, a piece
// letter places a piece, and any other character consumes one file without
// placing anything. The halfmove clock and fullmove number are accepted but
// discarded. On error no board is returned.
func NewBoardFromFEN(fen string) (*chess.Board, error) {
	parts := strings.Fields(fen)
	if len(parts) < minFENFields {
		return nil, fmt.Errorf("expected at least %d fields, got %d: %w", minFENFields, len(parts), errors.ErrInvalidFEN)
	}

	board := chess.NewBoard()

	parsePiecePositions(board, parts[0])

	if err := parseSideToMove(board, parts[1]); err != nil {
		return nil, err
	}

	parseCastlingRights(board, parts[2])

	if err := parseEnPassant(board, parts[3]); err != nil {
		return nil, err
	}

	return board, nil
}

// parsePiecePositions parses the piece placement field of a FEN string.
func parsePiecePositions(board *chess.Board, positions string) {
	for row, rank := range strings.Split(positions, "/") {
		if row >= chess.BoardSize {
			break
		}
		col := 0
		for i := 0; i < len(rank) && col < chess.BoardSize; i++ {
			c := rank[i]
			if c >= '0' && c <= '9' {
				col += int(c - '0')
				continue
			}
			if piece, ok := chess.PieceFromLetter(c); ok {
				board.Set(chess.Sq(row, col), piece)
			}
			col++
		}
	}
}

// parseSideToMove parses the side to move field.
func parseSideToMove(board *chess.Board, side string) error {
	switch side {
	case "w":
		board.ToMove = chess.White
	case "b":
		board.ToMove = chess.Black
	default:
		return fmt.Errorf("invalid side to move: %s: %w", side, errors.ErrInvalidFEN)
	}
	return nil
}

// parseCastlingRights parses the castling availability field. Each right is
// set independently by the presence of its letter.
func parseCastlingRights(board *chess.Board, castling string) {
	for _, right := range chess.CastlingOrder {
		board.CastlingRights[right] = strings.IndexByte(castling, right.Letter()) >= 0
	}
}

// parseEnPassant parses the en passant target square field.
func parseEnPassant(board *chess.Board, target string) error {
	board.ClearEnPassant()
	if target == "-" {
		return nil
	}
	sq, ok := chess.ParseSquare(target)
	if !ok {
		return fmt.Errorf("invalid en passant square: %s: %w", target, errors.ErrInvalidFEN)
	}
	board.SetEnPassant(sq)
	return nil
}

// BoardToFEN converts a board to a FEN string.
func BoardToFEN(board *chess.Board) string {
	var sb strings.Builder

	writePiecePositions(&sb, board)
	sb.WriteByte(' ')
	writeSideToMove(&sb, board)
	sb.WriteByte(' ')
	writeCastlingRights(&sb, board)
	sb.WriteByte(' ')
	writeEnPassant(&sb, board)
	sb.WriteByte(' ')
	sb.WriteString(fenClockPlaceholder)

	return sb.String()
}

// writePiecePositions writes the piece placement to the builder.
func writePiecePositions(sb *strings.Builder, board *chess.Board) {
	for row := 0; row < chess.BoardSize; row++ {
		emptyCount := 0
		for col := 0; col < chess.BoardSize; col++ {
			piece := board.Squares[row][col]
			if piece.IsEmpty() {
				emptyCount++
				continue
			}
			if emptyCount > 0 {
				sb.WriteByte(byte('0' + emptyCount))
				emptyCount = 0
			}
			sb.WriteByte(piece.Letter())
		}
		if emptyCount > 0 {
			sb.WriteByte(byte('0' + emptyCount))
		}
		if row < chess.BoardSize-1 {
			sb.WriteByte('/')
		}
	}
}

// writeSideToMove writes the side to move to the builder.
func writeSideToMove(sb *strings.Builder, board *chess.Board) {
	if board.ToMove == chess.White {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}
}

// writeCastlingRights writes the castling availability to the builder.
func writeCastlingRights(sb *strings.Builder, board *chess.Board) {
	hasCastling := false
	for _, right := range chess.CastlingOrder {
		if board.CanCastle(right) {
			sb.WriteByte(right.Letter())
			hasCastling = true
		}
	}
	if !hasCastling {
		sb.WriteByte('-')
	}
}

// writeEnPassant writes the en passant target square to the builder.
func writeEnPassant(sb *strings.Builder, board *chess.Board) {
	if board.EnPassant {
		sb.WriteString(board.EPSquare.String())
	} else {
		sb.WriteByte('-')
	}
}

// NewInitialBoard creates a board with the standard starting position.
func NewInitialBoard() *chess.Board {
	board := chess.NewBoard()
	board.SetupInitialPosition()
	return board
}
