// Package testutil provides test utilities for greet.
// It holds captured output streams and failing writers shared by
// the cli and greeting tests.
package testutil

import (
	"bytes"
	"io"
	"log/slog"
)

// Streams captures what a command writes to stdout and stderr.
type Streams struct {
	Stdout *bytes.Buffer
	Stderr *bytes.Buffer
}

// NewStreams creates empty captured streams.
func NewStreams() *Streams {
	return &Streams{
		Stdout: &bytes.Buffer{},
		Stderr: &bytes.Buffer{},
	}
}

// Logger returns a debug logger writing to the captured stderr.
func (s *Streams) Logger() *slog.Logger {
	return slog.New(slog.NewTextHandler(s.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

// DiscardLogger returns a logger that drops every record.
func DiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// StubWriter is an io.Writer that fails with a configured error.
type StubWriter struct {
	Err error

	// Call counter for verification in tests
	WriteCalls int
}

// NewStubWriter creates a writer whose every Write returns err.
func NewStubWriter(err error) *StubWriter {
	return &StubWriter{Err: err}
}

// Write records the call and returns the configured error.
func (w *StubWriter) Write(p []byte) (int, error) {
	w.WriteCalls++
	if w.Err != nil {
		return 0, w.Err
	}
	return len(p), nil
}
