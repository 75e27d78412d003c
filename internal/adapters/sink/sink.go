// Package sink renders scored word pairs.
package sink

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/baditaflorin/go_word_similarity/internal/ports"
)

// Format names an output rendering.
type Format string

const (
	FormatCSV    Format = "csv"
	FormatTable  Format = "table"
	FormatJSONL  Format = "jsonl"
	FormatSQLite Format = "sqlite"
)

// ParseFormat validates a format name.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatCSV, FormatTable, FormatJSONL, FormatSQLite:
		return f, nil
	default:
		return "", fmt.Errorf("unknown output format %q (want csv, table, jsonl or sqlite)", s)
	}
}

// Options tunes number rendering and run metadata.
type Options struct {
	// Precision is the number of decimals; -1 prints the shortest exact form.
	Precision int
	// Input is recorded alongside SQLite runs.
	Input string
	// Stdout receives output for the "-" path; nil means os.Stdout.
	Stdout io.Writer
}

// Open creates a sink writing to path. "-" means standard output and is not
// valid for the sqlite format.
func Open(format Format, path string, opts Options, logger ports.Logger) (ports.ResultSink, error) {
	if format == FormatSQLite {
		if path == "" || path == "-" {
			return nil, fmt.Errorf("sqlite output needs a file path")
		}
		return NewSQLite(path, opts, logger)
	}

	var w io.WriteCloser
	if path == "" || path == "-" {
		stdout := opts.Stdout
		if stdout == nil {
			stdout = os.Stdout
		}
		w = nopWriteCloser{stdout}
	} else {
		f, err := os.Create(path)
		if err != nil {
			return nil, fmt.Errorf("create output: %w", err)
		}
		w = f
	}

	switch format {
	case FormatCSV:
		return NewCSV(w, opts), nil
	case FormatTable:
		return NewTable(w, opts), nil
	case FormatJSONL:
		return NewJSONL(w), nil
	default:
		w.Close()
		return nil, fmt.Errorf("unknown output format %q", format)
	}
}

func formatFloat(v float64, precision int) string {
	return strconv.FormatFloat(v, 'f', precision, 64)
}

type nopWriteCloser struct {
	io.Writer
}

func (nopWriteCloser) Close() error { return nil }
