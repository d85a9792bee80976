package renderer

import (
	"fmt"
	"os"
)

// Logger receives human-readable render progress. It is a separate
// channel from the image stream, which may itself be stdout.
type Logger interface {
	Printf(format string, args ...interface{})
}

// StderrLogger implements Logger by writing to stderr
type StderrLogger struct{}

func (sl *StderrLogger) Printf(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, format, args...)
}

// NewStderrLogger creates the default diagnostic logger
func NewStderrLogger() Logger {
	return &StderrLogger{}
}

// silentLogger discards progress output, for tests
type silentLogger struct{}

func (silentLogger) Printf(string, ...interface{}) {}
