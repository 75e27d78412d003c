// Package records supplies word pairs from two-column delimited text.
package records

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"iter"
	"os"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"github.com/baditaflorin/go_word_similarity/internal/core/domain"
	"github.com/baditaflorin/go_word_similarity/internal/ports"
)

// Config controls how records are decoded.
type Config struct {
	// Encoding is a WHATWG encoding label such as "utf-8", "windows-1252" or "utf-16le".
	Encoding string
	// Delimiter separates the two fields.
	Delimiter rune
	// LazyQuotes tolerates stray quotes inside unquoted fields.
	LazyQuotes bool
}

// DefaultConfig returns UTF-8, comma separated input.
func DefaultConfig() Config {
	return Config{
		Encoding:  "utf-8",
		Delimiter: ',',
	}
}

// Validate checks if the configuration is valid.
func (c Config) Validate() error {
	if _, err := lookupEncoding(c.Encoding); err != nil {
		return err
	}
	if c.Delimiter == 0 || c.Delimiter == '"' || c.Delimiter == '\r' || c.Delimiter == '\n' {
		return fmt.Errorf("invalid delimiter %q", c.Delimiter)
	}
	return nil
}

func lookupEncoding(name string) (encoding.Encoding, error) {
	if strings.TrimSpace(name) == "" {
		name = "utf-8"
	}
	enc, err := htmlindex.Get(name)
	if err != nil {
		return nil, fmt.Errorf("unsupported encoding %q: %w", name, err)
	}
	return enc, nil
}

// Reader decodes word pairs, one per record. Each call to Records re-opens
// the source, so a file-backed Reader can be ranged more than once.
type Reader struct {
	open   func() (io.ReadCloser, error)
	config Config
	enc    encoding.Encoding
	logger ports.Logger
}

var _ ports.PairSource = (*Reader)(nil)

// NewReader creates a reader over the source returned by open.
func NewReader(open func() (io.ReadCloser, error), config Config, logger ports.Logger) (*Reader, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	enc, err := lookupEncoding(config.Encoding)
	if err != nil {
		return nil, err
	}
	return &Reader{open: open, config: config, enc: enc, logger: logger}, nil
}

// FromFile creates a reader over the file at path.
func FromFile(path string, config Config, logger ports.Logger) (*Reader, error) {
	return NewReader(func() (io.ReadCloser, error) {
		return os.Open(path)
	}, config, logger)
}

// FromReader creates a single-pass reader over r.
func FromReader(r io.Reader, config Config, logger ports.Logger) (*Reader, error) {
	return NewReader(func() (io.ReadCloser, error) {
		return io.NopCloser(r), nil
	}, config, logger)
}

// Record is a decoded pair and the input line it started on.
type Record struct {
	Pair domain.WordPair
	Line int
}

// Records yields each decoded pair in input order.
func (r *Reader) Records() iter.Seq2[domain.WordPair, error] {
	return func(yield func(domain.WordPair, error) bool) {
		for rec, err := range r.Lines() {
			if !yield(rec.Pair, err) {
				return
			}
		}
	}
}

// Lines yields each decoded pair with its line number. Records with the
// wrong number of fields yield a domain.MalformedRecordError and decoding
// continues; any other read failure is yielded once and ends the sequence.
func (r *Reader) Lines() iter.Seq2[Record, error] {
	return func(yield func(Record, error) bool) {
		src, err := r.open()
		if err != nil {
			yield(Record{}, fmt.Errorf("open input: %w", err))
			return
		}
		defer src.Close()

		decoder := unicode.BOMOverride(r.enc.NewDecoder())
		cr := csv.NewReader(transform.NewReader(src, decoder))
		cr.Comma = r.config.Delimiter
		cr.LazyQuotes = r.config.LazyQuotes
		cr.FieldsPerRecord = -1
		cr.ReuseRecord = true

		count := 0
		for {
			fields, err := cr.Read()
			if errors.Is(err, io.EOF) {
				r.logger.Debug("Finished reading records", "records", count)
				return
			}
			if err != nil {
				var parseErr *csv.ParseError
				if errors.As(err, &parseErr) {
					malformed := &domain.MalformedRecordError{Line: parseErr.StartLine, Err: parseErr.Err}
					if !yield(Record{Line: parseErr.StartLine}, malformed) {
						return
					}
					continue
				}
				yield(Record{}, fmt.Errorf("read input: %w", err))
				return
			}

			line, _ := cr.FieldPos(0)
			fields = trimTrailingEmpty(fields)
			if len(fields) != 2 {
				if !yield(Record{Line: line}, &domain.MalformedRecordError{Line: line, Fields: len(fields)}) {
					return
				}
				continue
			}

			count++
			if !yield(Record{Pair: domain.NewWordPair(fields[0], fields[1]), Line: line}, nil) {
				return
			}
		}
	}
}

// Pairs yields only the successfully decoded pairs. onError is called for
// every failed record and decides whether reading continues; a nil onError
// stops at the first failure.
func (r *Reader) Pairs(onError func(error) bool) iter.Seq[domain.WordPair] {
	return func(yield func(domain.WordPair) bool) {
		for pair, err := range r.Records() {
			if err != nil {
				if onError == nil || !onError(err) {
					return
				}
				continue
			}
			if !yield(pair) {
				return
			}
		}
	}
}

// trimTrailingEmpty drops empty fields left by a trailing delimiter.
func trimTrailingEmpty(fields []string) []string {
	for len(fields) > 2 && fields[len(fields)-1] == "" {
		fields = fields[:len(fields)-1]
	}
	return fields
}
