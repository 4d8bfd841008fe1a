// Package config provides configuration for the chess rules engine.
package config

import (
	"io"
	"os"
)

// Verbosity levels understood by the default log observer.
const (
	Silent     = 0 // nothing
	Anomalies  = 1 // invariant violations only
	Commentary = 2 // running commentary, including every rejected move
)

// Config holds the settings a game is created with.
type Config struct {
	// Verbosity selects what the default observer writes to LogFile.
	Verbosity int

	// Diagnostics stream for the default observer.
	LogFile io.Writer

	// Observer receives diagnostics events. When nil a LogObserver over
	// LogFile and Verbosity is used.
	Observer Observer
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Verbosity: Anomalies,
		LogFile:   os.Stderr,
	}
}

// Diagnostics returns the observer events should be sent to.
func (c *Config) Diagnostics() Observer {
	if c.Observer != nil {
		return c.Observer
	}
	return NewLogObserver(c.LogFile, c.Verbosity)
}
