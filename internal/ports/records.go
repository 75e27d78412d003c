package ports

import (
	"iter"

	"github.com/baditaflorin/go_word_similarity/internal/core/domain"
)

// PairSource supplies word pairs decoded from an external record source.
type PairSource interface {
	// Records yields every decoded pair, or the error for a record that failed to decode.
	Records() iter.Seq2[domain.WordPair, error]
}

// ResultSink consumes scored pairs in input order.
type ResultSink interface {
	Write(score domain.PairScore) error
	Close() error
}
