package batch

import (
	"context"
	"iter"
	"runtime"
	"sync"

	"github.com/baditaflorin/go_word_similarity/internal/core/domain"
)

// Constants for parallel scoring
const (
	// DefaultWorkers is the default number of worker goroutines
	DefaultWorkers = 0 // 0 means use runtime.NumCPU()

	// DefaultWindow is the number of pairs buffered per scoring round
	DefaultWindow = 256
)

type pairJob struct {
	slot int
	pair domain.WordPair
}

type pairResult struct {
	score domain.PairScore
	err   error
}

// ScoreAllParallel scores pairs with a worker pool and yields results in input
// order. At most window pairs are held in memory at once.
func (p *Processor) ScoreAllParallel(
	ctx context.Context,
	pairs iter.Seq[domain.WordPair],
	workers int,
	window int,
) iter.Seq2[domain.PairScore, error] {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if window <= 0 {
		window = DefaultWindow
	}

	return func(yield func(domain.PairScore, error) bool) {
		var stats counters
		defer stats.log(p.logger, p.Policy())

		pending := make([]domain.WordPair, 0, window)
		results := make([]pairResult, window)
		base := 0

		flush := func() bool {
			if len(pending) == 0 {
				return true
			}
			if err := ctx.Err(); err != nil {
				yield(domain.PairScore{Index: base}, err)
				return false
			}

			p.scoreWindow(ctx, base, pending, results, workers)

			for i := range pending {
				if !p.emit(ctx, yield, &stats, results[i].score, results[i].err) {
					return false
				}
			}
			base += len(pending)
			pending = pending[:0]
			return true
		}

		for pair := range pairs {
			pending = append(pending, pair)
			if len(pending) == window {
				if !flush() {
					return
				}
			}
		}
		flush()
	}
}

// scoreWindow fills results[:len(pending)] using a fixed pool of workers.
func (p *Processor) scoreWindow(
	ctx context.Context,
	base int,
	pending []domain.WordPair,
	results []pairResult,
	workers int,
) {
	workers = min(workers, len(pending))
	jobs := make(chan pairJob, len(pending))

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for job := range jobs {
				score, err := p.ScorePair(ctx, base+job.slot, job.pair)
				results[job.slot] = pairResult{score: score, err: err}
			}
		}()
	}

	for slot, pair := range pending {
		jobs <- pairJob{slot: slot, pair: pair}
	}
	close(jobs)
	wg.Wait()
}
