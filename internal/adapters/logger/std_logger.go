package logger

import (
	"fmt"
	"io"
	"os"

	"github.com/baditaflorin/go_word_similarity/internal/ports"
	"github.com/baditaflorin/l"
)

// Options selects how the underlying l.Logger writes.
type Options struct {
	Output    io.Writer
	JSON      bool
	Async     bool
	AddSource bool
}

// DefaultOptions mirrors the factory settings used by the library facades.
func DefaultOptions() Options {
	return Options{
		Output:    os.Stderr,
		JSON:      false,
		Async:     true,
		AddSource: true,
	}
}

// StdLogger adapts the l.Logger to the ports.Logger interface.
type StdLogger struct {
	logger l.Logger
	file   io.Closer
}

// NewStdLogger creates a logger adapter with DefaultOptions.
func NewStdLogger() (ports.Logger, error) {
	return New(DefaultOptions())
}

// New creates a logger adapter from the given options.
func New(opts Options) (ports.Logger, error) {
	if opts.Output == nil {
		opts.Output = os.Stderr
	}
	logger, err := l.NewStandardFactory().CreateLogger(l.Config{
		Output:      opts.Output,
		JsonFormat:  opts.JSON,
		AsyncWrite:  opts.Async,
		BufferSize:  1024 * 1024,      // 1MB buffer
		MaxFileSize: 10 * 1024 * 1024, // 10MB max file size
		MaxBackups:  5,
		AddSource:   opts.AddSource,
		Metrics:     true,
	})
	if err != nil {
		return nil, err
	}

	return &StdLogger{logger: logger}, nil
}

// Open creates a logger that appends to file, or writes to stderr when file
// is empty. Closing the logger closes the file.
func Open(file string, opts Options) (ports.Logger, error) {
	if file == "" {
		opts.Output = os.Stderr
		return New(opts)
	}

	f, err := os.OpenFile(file, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}
	opts.Output = f

	logger, err := New(opts)
	if err != nil {
		_ = f.Close()
		return nil, err
	}
	std := logger.(*StdLogger)
	std.file = f
	return std, nil
}

// FromExisting wraps an existing l.Logger.
func FromExisting(logger l.Logger) ports.Logger {
	return &StdLogger{logger: logger}
}

// Debug logs a debug message.
func (s *StdLogger) Debug(msg string, keysAndValues ...interface{}) {
	s.logger.Debug(msg, keysAndValues...)
}

// Info logs an info message.
func (s *StdLogger) Info(msg string, keysAndValues ...interface{}) {
	s.logger.Info(msg, keysAndValues...)
}

// Warn logs a warning message.
func (s *StdLogger) Warn(msg string, keysAndValues ...interface{}) {
	s.logger.Warn(msg, keysAndValues...)
}

// Error logs an error message.
func (s *StdLogger) Error(msg string, keysAndValues ...interface{}) {
	s.logger.Error(msg, keysAndValues...)
}

// Close flushes and closes the underlying logger.
func (s *StdLogger) Close() error {
	err := s.logger.Close()
	if s.file != nil {
		if cerr := s.file.Close(); err == nil {
			err = cerr
		}
	}
	return err
}

// Nop discards everything. Useful for tests and quiet CLI runs.
type Nop struct{}

func (Nop) Debug(string, ...interface{}) {}
func (Nop) Info(string, ...interface{})  {}
func (Nop) Warn(string, ...interface{})  {}
func (Nop) Error(string, ...interface{}) {}
func (Nop) Close() error                 { return nil }
