// word_similarity.go
// Package wordsimilarity scores pairs of words with two psycholinguistic
// similarity measures:
//
//	normlevdist = 1 - levenshtein(first, second) / max(len(first), len(second))
//	os          = vanOrden(first, second) / vanOrden(first, first)
//
// where vanOrden combines shared bigrams, reversed bigrams, shared letters,
// mean length, length ratio and matching first and last letters.
//
// The package-level functions share one lazily created scorer. Use New for
// a scorer with its own logger and options.
package wordsimilarity

import (
	"context"
	"os"
	"sync"

	"github.com/baditaflorin/go_word_similarity/pkg/wordsim"
	"github.com/baditaflorin/l"
)

// Result holds both measures for one word pair.
type Result struct {
	First  string
	Second string
	// NormLevDist is the normalized Levenshtein similarity in [0, 1].
	NormLevDist float64
	// OS is the Van Orden score relative to the first word's self-pair score.
	OS float64
	// Distance is the raw edit distance.
	Distance int
	// RawScore is the unnormalized Van Orden score.
	RawScore float64
	// Features holds the seven Van Orden features.
	Features wordsim.Features
}

// Option configures a Scorer created by New.
type Option = wordsim.Option

// WithLogger sets a custom logger.
func WithLogger(logger l.Logger) Option {
	return wordsim.WithLogger(logger)
}

var (
	loggerOnce    sync.Once
	sharedLogger  l.Logger
	sharedLogErr  error
	defaultOnce   sync.Once
	defaultScorer *wordsim.Scorer
	defaultErr    error
)

// defaultLogger lazily creates the logger shared by every scorer that was
// not given one.
func defaultLogger() (l.Logger, error) {
	loggerOnce.Do(func() {
		sharedLogger, sharedLogErr = l.NewStandardFactory().CreateLogger(l.Config{
			Output:      os.Stderr, // stdout carries scored output
			AsyncWrite:  true,
			BufferSize:  1024 * 1024,
			MaxFileSize: 10 * 1024 * 1024,
			MaxBackups:  5,
			AddSource:   true,
			Metrics:     true,
		})
	})
	return sharedLogger, sharedLogErr
}

// New creates a scorer. If no logger is provided, the package default logger is used.
func New(opts ...Option) (*wordsim.Scorer, error) {
	logger, err := defaultLogger()
	if err != nil {
		return nil, err
	}
	return wordsim.New(append([]Option{wordsim.WithLogger(logger)}, opts...)...)
}

func scorer() (*wordsim.Scorer, error) {
	defaultOnce.Do(func() {
		defaultScorer, defaultErr = New()
	})
	return defaultScorer, defaultErr
}

// Compare scores one word pair with both measures.
func Compare(first, second string) (Result, error) {
	s, err := scorer()
	if err != nil {
		return Result{}, err
	}
	score, err := s.Score(context.Background(), first, second)
	if err != nil {
		return Result{First: first, Second: second}, err
	}
	return Result{
		First:       first,
		Second:      second,
		NormLevDist: score.EditDistance.NormalizedSimilarity,
		OS:          score.Orthographic.NormalizedScore,
		Distance:    score.EditDistance.RawDistance,
		RawScore:    score.Orthographic.RawScore,
		Features:    score.Orthographic.Features,
	}, nil
}

// NormLevDist returns the normalized Levenshtein similarity of two words.
func NormLevDist(first, second string) (float64, error) {
	s, err := scorer()
	if err != nil {
		return 0, err
	}
	res, err := s.EditDistance(context.Background(), first, second)
	return res.NormalizedSimilarity, err
}

// OrthographicSimilarity returns the Van Orden score of (first, second)
// relative to the score of (first, first).
func OrthographicSimilarity(first, second string) (float64, error) {
	s, err := scorer()
	if err != nil {
		return 0, err
	}
	res, err := s.Orthographic(context.Background(), first, second)
	return res.NormalizedScore, err
}
