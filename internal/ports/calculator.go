package ports

import (
	"context"

	"github.com/baditaflorin/go_word_similarity/internal/core/domain"
)

// EditDistanceCalculator computes the Levenshtein metric for two words.
type EditDistanceCalculator interface {
	Compute(ctx context.Context, first, second domain.Word) (domain.EditDistanceResult, error)
}

// OrthographicCalculator computes the Van Orden metric for a word pair.
type OrthographicCalculator interface {
	Compute(ctx context.Context, pair domain.WordPair) (domain.OrthographicResult, error)
}

// BaselineCache memoizes self-pair baselines keyed by word.
type BaselineCache interface {
	Get(word domain.Word) (float64, bool)
	Add(word domain.Word, score float64)
}
