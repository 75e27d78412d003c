// Package batch maps sequences of word pairs through both similarity metrics.
package batch

import (
	"context"
	"errors"
	"fmt"
	"iter"
	"strings"

	"github.com/baditaflorin/go_word_similarity/internal/core/domain"
	"github.com/baditaflorin/go_word_similarity/internal/ports"
)

// ErrorPolicy decides what a batch does with a pair that fails to score.
type ErrorPolicy int

const (
	// YieldErrors hands each failure to the consumer and keeps going.
	YieldErrors ErrorPolicy = iota
	// SkipInvalid drops pairs that fail with domain.ErrInvalidInput.
	SkipInvalid
	// StopOnError yields the first failure and ends the sequence.
	StopOnError
)

func (p ErrorPolicy) String() string {
	switch p {
	case YieldErrors:
		return "yield"
	case SkipInvalid:
		return "skip"
	case StopOnError:
		return "stop"
	default:
		return fmt.Sprintf("ErrorPolicy(%d)", int(p))
	}
}

// ParseErrorPolicy converts "yield", "skip" or "stop" into an ErrorPolicy.
func ParseErrorPolicy(s string) (ErrorPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "yield":
		return YieldErrors, nil
	case "skip":
		return SkipInvalid, nil
	case "stop":
		return StopOnError, nil
	default:
		return YieldErrors, fmt.Errorf("unknown error policy %q (want yield, skip or stop)", s)
	}
}

// Processor scores word pairs with both metrics. It holds no per-pair state.
type Processor struct {
	editDistance ports.EditDistanceCalculator
	orthographic ports.OrthographicCalculator
	logger       ports.Logger
	policy       ErrorPolicy
}

// NewProcessor creates a batch processor.
func NewProcessor(
	editDistance ports.EditDistanceCalculator,
	orthographic ports.OrthographicCalculator,
	logger ports.Logger,
	policy ErrorPolicy,
) *Processor {
	return &Processor{
		editDistance: editDistance,
		orthographic: orthographic,
		logger:       logger,
		policy:       policy,
	}
}

// Policy returns the configured error policy.
func (p *Processor) Policy() ErrorPolicy {
	return p.policy
}

// ScorePair applies both metrics to one pair. On failure the returned score
// carries only the index and the pair.
func (p *Processor) ScorePair(ctx context.Context, index int, pair domain.WordPair) (domain.PairScore, error) {
	score := domain.PairScore{Index: index, Pair: pair}

	edit, err := p.editDistance.Compute(ctx, pair.First, pair.Second)
	if err != nil {
		return score, err
	}
	ortho, err := p.orthographic.Compute(ctx, pair)
	if err != nil {
		return score, err
	}

	score.EditDistance = edit
	score.Orthographic = ortho
	return score, nil
}

// ScoreAll lazily scores pairs in input order. Each range over the result
// re-drives pairs from the start.
func (p *Processor) ScoreAll(ctx context.Context, pairs iter.Seq[domain.WordPair]) iter.Seq2[domain.PairScore, error] {
	return func(yield func(domain.PairScore, error) bool) {
		var stats counters
		defer stats.log(p.logger, p.Policy())

		index := 0
		for pair := range pairs {
			score, err := p.ScorePair(ctx, index, pair)
			index++
			if !p.emit(ctx, yield, &stats, score, err) {
				return
			}
		}
	}
}

type counters struct {
	scored  int
	failed  int
	skipped int
}

func (c *counters) log(logger ports.Logger, policy ErrorPolicy) {
	logger.Info("Batch scoring finished",
		"scored", c.scored,
		"failed", c.failed,
		"skipped", c.skipped,
		"policy", policy.String(),
	)
}

// emit applies the error policy and reports whether iteration should continue.
func (p *Processor) emit(
	ctx context.Context,
	yield func(domain.PairScore, error) bool,
	stats *counters,
	score domain.PairScore,
	err error,
) bool {
	if err == nil {
		stats.scored++
		return yield(score, nil)
	}

	if ctx.Err() != nil && errors.Is(err, ctx.Err()) {
		yield(score, err)
		return false
	}

	if p.policy == SkipInvalid && errors.Is(err, domain.ErrInvalidInput) {
		stats.skipped++
		p.logger.Warn("Skipping pair that cannot be scored",
			"index", score.Index,
			"first", score.Pair.First,
			"second", score.Pair.Second,
			"error", err,
		)
		return true
	}

	stats.failed++
	if !yield(score, err) {
		return false
	}
	return p.policy != StopOnError
}
