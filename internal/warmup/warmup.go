package warmup

import (
	"context"
	"runtime"
	"sync"
	"time"

	"github.com/baditaflorin/go_word_similarity/internal/core/domain"
	"github.com/baditaflorin/go_word_similarity/internal/ports"
)

// WarmupConfig defines configuration for warming up the system
type WarmupConfig struct {
	// Number of concurrent warmup routines to run
	Concurrency int
	// Number of iterations per routine
	Iterations int
	// Warmup duration (0 means no time limit)
	Duration time.Duration
	// Whether to perform GC after warmup
	ForceGC bool
}

// DefaultWarmupConfig returns the default warmup configuration
func DefaultWarmupConfig() WarmupConfig {
	return WarmupConfig{
		Concurrency: runtime.NumCPU(),
		Iterations:  1000,
		Duration:    2 * time.Second,
		ForceGC:     true,
	}
}

// samplePairs mixes identical, close and distant words of varying length.
var samplePairs = []domain.WordPair{
	domain.NewWordPair("cot", "cot"),
	domain.NewWordPair("cot", "cat"),
	domain.NewWordPair("kitten", "sitting"),
	domain.NewWordPair("rose", "rows"),
	domain.NewWordPair("nation", "natie"),
	domain.NewWordPair("straße", "strasse"),
	domain.NewWordPair("incomprehensibility", "incompréhensibilité"),
	domain.NewWordPair("a", "xyz"),
}

// Manager handles system warmup operations
type Manager struct {
	logger       ports.Logger
	editDistance []ports.EditDistanceCalculator
	orthographic []ports.OrthographicCalculator
	config       WarmupConfig
}

// NewManager creates a new warmup manager
func NewManager(logger ports.Logger, config WarmupConfig) *Manager {
	if config.Concurrency <= 0 {
		config.Concurrency = 1
	}
	return &Manager{
		logger: logger,
		config: config,
	}
}

// RegisterEditDistance adds an edit-distance calculator to be warmed up
func (wm *Manager) RegisterEditDistance(calc ports.EditDistanceCalculator) {
	wm.editDistance = append(wm.editDistance, calc)
}

// RegisterOrthographic adds an orthographic calculator to be warmed up
func (wm *Manager) RegisterOrthographic(calc ports.OrthographicCalculator) {
	wm.orthographic = append(wm.orthographic, calc)
}

// WarmUp runs the warmup process for all registered components and returns
// the number of pairs scored.
func (wm *Manager) WarmUp(ctx context.Context) int {
	startTime := time.Now()
	wm.logger.Info("Starting system warmup",
		"components", len(wm.editDistance)+len(wm.orthographic),
		"concurrency", wm.config.Concurrency,
		"iterations", wm.config.Iterations,
	)

	// Create a context with timeout if duration is specified
	warmupCtx := ctx
	if wm.config.Duration > 0 {
		var cancel context.CancelFunc
		warmupCtx, cancel = context.WithTimeout(ctx, wm.config.Duration)
		defer cancel()
	}

	scored := wm.warmUpCalculators(warmupCtx)

	// Force garbage collection if configured
	if wm.config.ForceGC {
		wm.logger.Debug("Forcing garbage collection after warmup")
		runtime.GC()
	}

	wm.logger.Info("System warmup completed",
		"duration", time.Since(startTime),
		"pairs", scored,
	)
	return scored
}

// warmUpCalculators runs every sample pair through every registered calculator
func (wm *Manager) warmUpCalculators(ctx context.Context) int {
	if len(wm.editDistance) == 0 && len(wm.orthographic) == 0 {
		return 0
	}

	var (
		wg     sync.WaitGroup
		mu     sync.Mutex
		scored int
	)
	for i := 0; i < wm.config.Concurrency; i++ {
		wg.Add(1)
		go func(routineID int) {
			defer wg.Done()

			local := 0
			defer func() {
				mu.Lock()
				scored += local
				mu.Unlock()
			}()

			for j := 0; j < wm.config.Iterations; j++ {
				if ctx.Err() != nil {
					return
				}

				pair := samplePairs[(routineID+j)%len(samplePairs)]
				for _, calc := range wm.editDistance {
					_, _ = calc.Compute(ctx, pair.First, pair.Second)
				}
				for _, calc := range wm.orthographic {
					_, _ = calc.Compute(ctx, pair)
				}
				local++
			}
		}(i)
	}

	wg.Wait()
	return scored
}
