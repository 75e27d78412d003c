package vanorden

import (
	"context"

	"github.com/baditaflorin/go_word_similarity/internal/core/domain"
	"github.com/baditaflorin/go_word_similarity/internal/ports"
)

// MetricName identifies this metric in errors and logs.
const MetricName = "vanorden"

// Calculator implements the Van Orden orthographic similarity.
type Calculator struct {
	logger    ports.Logger
	baselines ports.BaselineCache
}

// NewCalculator creates a new orthographic calculator. baselines may be nil,
// in which case every self-pair baseline is recomputed.
func NewCalculator(logger ports.Logger, baselines ports.BaselineCache) *Calculator {
	return &Calculator{
		logger:    logger,
		baselines: baselines,
	}
}

// Compute calculates the raw score of pair and its ratio to the self-pair
// baseline of pair.First. It fails with a domain.InvalidInputError when either word is empty.
func (c *Calculator) Compute(ctx context.Context, pair domain.WordPair) (domain.OrthographicResult, error) {
	if err := ctx.Err(); err != nil {
		return domain.OrthographicResult{}, err
	}

	first, second := pair.First.Runes(), pair.Second.Runes()
	if len(first) == 0 || len(second) == 0 {
		c.logger.Error("Cannot score pair with an empty word",
			"metric", MetricName,
			"first", pair.First,
			"second", pair.Second,
		)
		return domain.OrthographicResult{}, &domain.InvalidInputError{
			Metric: MetricName,
			Pair:   pair,
			Reason: "both words must be non-empty",
		}
	}

	features := Extract(first, second)
	raw := RawScore(features)
	baseline := c.selfScore(pair.First, first)

	result := domain.OrthographicResult{
		RawScore:        raw,
		NormalizedScore: raw / baseline,
		Features:        features,
	}

	c.logger.Debug("Computed orthographic similarity",
		"first", pair.First,
		"second", pair.Second,
		"features", features,
		"raw", raw,
		"baseline", baseline,
		"normalized", result.NormalizedScore,
	)

	return result, nil
}

// SelfScore returns the raw score of the pair (word, word). word must be non-empty.
func (c *Calculator) SelfScore(word domain.Word) float64 {
	return c.selfScore(word, word.Runes())
}

func (c *Calculator) selfScore(word domain.Word, runes []rune) float64 {
	if c.baselines != nil {
		if score, ok := c.baselines.Get(word); ok {
			return score
		}
	}
	score := RawScore(Extract(runes, runes))
	if c.baselines != nil {
		c.baselines.Add(word, score)
	}
	return score
}
