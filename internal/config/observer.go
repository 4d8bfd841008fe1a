package config

import (
	"fmt"
	"io"

	"github.com/lgbarn/chess-rules-go/internal/chess"
)

// Observer receives diagnostics from a game. Implementations must not panic;
// nothing they do affects the result of the operation being observed.
type Observer interface {
	// MoveRejected is called when a requested move fails validation.
	MoveRejected(gameID string, move chess.Move, err error)

	// InvariantViolation is called when the board breaks a structural
	// invariant, such as a missing king.
	InvariantViolation(gameID string, err error)
}

// LogObserver writes one line per event to a writer, filtered by verbosity.
type LogObserver struct {
	w         io.Writer
	verbosity int
}

// NewLogObserver creates an observer writing to w. A nil writer discards.
func NewLogObserver(w io.Writer, verbosity int) *LogObserver {
	return &LogObserver{w: w, verbosity: verbosity}
}

// MoveRejected logs the rejection at Commentary verbosity.
func (o *LogObserver) MoveRejected(gameID string, move chess.Move, err error) {
	if o.w == nil || o.verbosity < Commentary {
		return
	}
	fmt.Fprintf(o.w, "game %s: rejected %s: %v\n", gameID, move, err)
}

// InvariantViolation logs the anomaly at Anomalies verbosity or above.
func (o *LogObserver) InvariantViolation(gameID string, err error) {
	if o.w == nil || o.verbosity < Anomalies {
		return
	}
	fmt.Fprintf(o.w, "game %s: %v\n", gameID, err)
}
