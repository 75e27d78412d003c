package levenshtein

import (
	"context"
	"errors"

	"github.com/baditaflorin/go_word_similarity/internal/core/domain"
	"github.com/baditaflorin/go_word_similarity/internal/pool"
	"github.com/baditaflorin/go_word_similarity/internal/ports"
)

// MetricName identifies this metric in errors and logs.
const MetricName = "levenshtein"

// SimilarityConfig holds configuration for the edit-distance calculator.
type SimilarityConfig struct {
	// RowCapacity is the initial capacity of pooled DP rows.
	RowCapacity int
}

// DefaultConfig returns a default configuration.
func DefaultConfig() SimilarityConfig {
	return SimilarityConfig{
		RowCapacity: 32,
	}
}

// Validate checks if the configuration is valid.
func (c SimilarityConfig) Validate() error {
	if c.RowCapacity <= 0 {
		return errors.New("rowCapacity must be greater than 0")
	}
	return nil
}

// Calculator implements the normalized Levenshtein similarity.
type Calculator struct {
	config SimilarityConfig
	logger ports.Logger
	rows   *pool.RowPool
	runes  *pool.RuneBufferPool
}

// NewCalculator creates a new edit-distance calculator.
func NewCalculator(config SimilarityConfig, logger ports.Logger) (*Calculator, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &Calculator{
		config: config,
		logger: logger,
		rows:   pool.NewRowPool(config.RowCapacity + 1),
		runes:  pool.NewRuneBufferPool(config.RowCapacity),
	}, nil
}

// Compute calculates the raw and normalized edit distance between two words.
// It fails with a domain.InvalidInputError when both words are empty.
func (c *Calculator) Compute(ctx context.Context, first, second domain.Word) (domain.EditDistanceResult, error) {
	if err := ctx.Err(); err != nil {
		return domain.EditDistanceResult{}, err
	}

	firstBuf := c.runes.Get()
	defer c.runes.Put(firstBuf)
	secondBuf := c.runes.Get()
	defer c.runes.Put(secondBuf)

	a := pool.AppendString(firstBuf, string(first))
	b := pool.AppendString(secondBuf, string(second))

	maxLen := max(len(a), len(b))
	if maxLen == 0 {
		c.logger.Error("Both words are empty", "metric", MetricName)
		return domain.EditDistanceResult{}, &domain.InvalidInputError{
			Metric: MetricName,
			Pair:   domain.WordPair{First: first, Second: second},
			Reason: "both words are empty",
		}
	}

	row := c.rows.Get(len(b) + 1)
	distance := Distance(a, b, *row)
	c.rows.Put(row)

	result := domain.EditDistanceResult{
		RawDistance:          distance,
		NormalizedSimilarity: Normalize(distance, maxLen),
	}

	c.logger.Debug("Computed edit distance",
		"first", first,
		"second", second,
		"distance", result.RawDistance,
		"similarity", result.NormalizedSimilarity,
	)

	return result, nil
}
