// Package cache provides a bounded memo of Van Orden self-pair baselines.
package cache

import (
	"fmt"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/baditaflorin/go_word_similarity/internal/core/domain"
)

// DefaultSize is the number of baselines kept when no size is configured.
const DefaultSize = 4096

// Baselines is an LRU of selfScore values keyed by word. Safe for concurrent use.
type Baselines struct {
	cache *lru.Cache[domain.Word, float64]
}

// NewBaselines creates a cache holding at most size entries.
func NewBaselines(size int) (*Baselines, error) {
	if size <= 0 {
		size = DefaultSize
	}
	c, err := lru.New[domain.Word, float64](size)
	if err != nil {
		return nil, fmt.Errorf("create baseline cache: %w", err)
	}
	return &Baselines{cache: c}, nil
}

// Get returns the cached baseline for word.
func (b *Baselines) Get(word domain.Word) (float64, bool) {
	return b.cache.Get(word)
}

// Add stores the baseline for word.
func (b *Baselines) Add(word domain.Word, score float64) {
	b.cache.Add(word, score)
}

// Len returns the number of cached baselines.
func (b *Baselines) Len() int {
	return b.cache.Len()
}
