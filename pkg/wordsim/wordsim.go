// Package wordsim scores word pairs with a length-normalized Levenshtein
// similarity and a Van Orden orthographic similarity.
package wordsim

import (
	"context"
	"iter"

	"github.com/baditaflorin/go_word_similarity/internal/adapters/cache"
	"github.com/baditaflorin/go_word_similarity/internal/adapters/logger"
	"github.com/baditaflorin/go_word_similarity/internal/core/batch"
	"github.com/baditaflorin/go_word_similarity/internal/core/domain"
	"github.com/baditaflorin/go_word_similarity/internal/core/levenshtein"
	"github.com/baditaflorin/go_word_similarity/internal/core/vanorden"
	"github.com/baditaflorin/go_word_similarity/internal/ports"
	"github.com/baditaflorin/go_word_similarity/internal/warmup"
	"github.com/baditaflorin/l"
)

// Re-exported domain types.
type (
	Word               = domain.Word
	WordPair           = domain.WordPair
	Features           = domain.Features
	EditDistanceResult = domain.EditDistanceResult
	OrthographicResult = domain.OrthographicResult
	PairScore          = domain.PairScore
	InvalidInputError  = domain.InvalidInputError
	ErrorPolicy        = batch.ErrorPolicy
	WarmupConfig       = warmup.WarmupConfig
)

// Error policies for batch scoring.
const (
	YieldErrors = batch.YieldErrors
	SkipInvalid = batch.SkipInvalid
	StopOnError = batch.StopOnError
)

// ErrInvalidInput matches every error returned for a pair that cannot be scored.
var ErrInvalidInput = domain.ErrInvalidInput

// NewWordPair builds a pair from two strings.
func NewWordPair(first, second string) WordPair {
	return domain.NewWordPair(first, second)
}

// Scorer computes both metrics. It is safe for concurrent use.
type Scorer struct {
	editDistance *levenshtein.Calculator
	orthographic *vanorden.Calculator
	processor    *batch.Processor
	baselines    *cache.Baselines
	logger       ports.Logger
	ownsLogger   bool
	workers      int
	window       int
	warmed       bool
}

// Option defines a functional option for configuring a Scorer.
type Option func(*scorerConfig)

type scorerConfig struct {
	Logger       ports.Logger
	CacheSize    int
	Workers      int
	Window       int
	ErrorPolicy  batch.ErrorPolicy
	WarmUp       bool
	WarmUpConfig warmup.WarmupConfig
}

// WithLogger sets a custom logger.
func WithLogger(lg l.Logger) Option {
	return func(cfg *scorerConfig) {
		cfg.Logger = logger.FromExisting(lg)
	}
}

// WithLogAdapter sets a logger that already satisfies ports.Logger.
func WithLogAdapter(lg ports.Logger) Option {
	return func(cfg *scorerConfig) {
		cfg.Logger = lg
	}
}

// WithQuietLogger discards all log output.
func WithQuietLogger() Option {
	return func(cfg *scorerConfig) {
		cfg.Logger = logger.Nop{}
	}
}

// WithBaselineCache keeps up to size self-pair baselines in an LRU.
// A size of 0 disables the cache.
func WithBaselineCache(size int) Option {
	return func(cfg *scorerConfig) {
		cfg.CacheSize = size
	}
}

// WithWorkers sets the number of goroutines ScoreAll uses. 1 scores
// sequentially; 0 uses every CPU.
func WithWorkers(n int) Option {
	return func(cfg *scorerConfig) {
		cfg.Workers = n
	}
}

// WithWindow sets how many pairs parallel scoring buffers at once.
func WithWindow(n int) Option {
	return func(cfg *scorerConfig) {
		cfg.Window = n
	}
}

// WithErrorPolicy sets what ScoreAll does with pairs that cannot be scored.
func WithErrorPolicy(policy ErrorPolicy) Option {
	return func(cfg *scorerConfig) {
		cfg.ErrorPolicy = policy
	}
}

// WithWarmUp enables system warm-up on initialization.
func WithWarmUp(enable bool) Option {
	return func(cfg *scorerConfig) {
		cfg.WarmUp = enable
	}
}

// WithWarmUpConfig sets a custom warm-up configuration.
func WithWarmUpConfig(config WarmupConfig) Option {
	return func(cfg *scorerConfig) {
		cfg.WarmUpConfig = config
		cfg.WarmUp = true
	}
}

// New creates a Scorer. Without options it scores sequentially, yields
// per-pair errors to the caller, and does not cache baselines.
func New(opts ...Option) (*Scorer, error) {
	config := &scorerConfig{
		Workers:      1,
		Window:       batch.DefaultWindow,
		ErrorPolicy:  batch.YieldErrors,
		WarmUpConfig: warmup.DefaultWarmupConfig(),
	}

	for _, opt := range opts {
		opt(config)
	}

	ownsLogger := false
	if config.Logger == nil {
		var err error
		config.Logger, err = logger.NewStdLogger()
		if err != nil {
			return nil, err
		}
		ownsLogger = true
	}

	editDistance, err := levenshtein.NewCalculator(levenshtein.DefaultConfig(), config.Logger)
	if err != nil {
		return nil, err
	}

	s := &Scorer{
		editDistance: editDistance,
		logger:       config.Logger,
		ownsLogger:   ownsLogger,
		workers:      config.Workers,
		window:       config.Window,
	}

	var baselines ports.BaselineCache
	if config.CacheSize > 0 {
		s.baselines, err = cache.NewBaselines(config.CacheSize)
		if err != nil {
			return nil, err
		}
		baselines = s.baselines
	}
	s.orthographic = vanorden.NewCalculator(config.Logger, baselines)
	s.processor = batch.NewProcessor(s.editDistance, s.orthographic, config.Logger, config.ErrorPolicy)

	if config.WarmUp {
		s.WarmUp(context.Background(), config.WarmUpConfig)
	}

	return s, nil
}

// EditDistance computes the raw and normalized Levenshtein similarity.
func (s *Scorer) EditDistance(ctx context.Context, first, second string) (EditDistanceResult, error) {
	return s.editDistance.Compute(ctx, Word(first), Word(second))
}

// Orthographic computes the Van Orden score of (first, second) normalized by
// the self-pair baseline of first.
func (s *Scorer) Orthographic(ctx context.Context, first, second string) (OrthographicResult, error) {
	return s.orthographic.Compute(ctx, NewWordPair(first, second))
}

// SelfScore returns the Van Orden raw score of (word, word).
func (s *Scorer) SelfScore(word string) (float64, error) {
	if word == "" {
		return 0, &domain.InvalidInputError{
			Metric: vanorden.MetricName,
			Pair:   NewWordPair(word, word),
			Reason: "word must be non-empty",
		}
	}
	return s.orthographic.SelfScore(Word(word)), nil
}

// Score applies both metrics to one pair.
func (s *Scorer) Score(ctx context.Context, first, second string) (PairScore, error) {
	return s.processor.ScorePair(ctx, 0, NewWordPair(first, second))
}

// ScoreAll lazily scores pairs in input order using the configured worker
// count and error policy.
func (s *Scorer) ScoreAll(ctx context.Context, pairs iter.Seq[WordPair]) iter.Seq2[PairScore, error] {
	if s.workers == 1 {
		return s.processor.ScoreAll(ctx, pairs)
	}
	return s.processor.ScoreAllParallel(ctx, pairs, s.workers, s.window)
}

// WarmUp performs system warm-up to optimize performance.
func (s *Scorer) WarmUp(ctx context.Context, config WarmupConfig) {
	if s.warmed {
		s.logger.Debug("System already warmed up, skipping")
		return
	}

	warmupMgr := warmup.NewManager(s.logger, config)
	warmupMgr.RegisterEditDistance(s.editDistance)
	warmupMgr.RegisterOrthographic(s.orthographic)

	warmupMgr.WarmUp(ctx)
	s.warmed = true
}

// Close releases the logger if the Scorer created it.
func (s *Scorer) Close() error {
	if s.ownsLogger {
		return s.logger.Close()
	}
	return nil
}
