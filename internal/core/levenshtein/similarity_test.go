package levenshtein

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/agnivade/levenshtein"
	"github.com/hbollon/go-edlib"

	"github.com/baditaflorin/go_word_similarity/internal/adapters/logger"
	"github.com/baditaflorin/go_word_similarity/internal/core/domain"
)

var corpus = []string{
	"a", "b", "ab", "ba", "cat", "cot", "act", "kitten", "sitting", "saturday", "sunday",
	"rose", "rows", "flaw", "lawn", "gumbo", "gambol", "book", "back", "intention", "execution",
	"naïve", "naive", "straße", "strasse", "αβγ", "αγβ", "mississippi", "missouri", "aaaa", "aa",
}

func newTestCalculator(t *testing.T) *Calculator {
	t.Helper()
	calc, err := NewCalculator(DefaultConfig(), logger.Nop{})
	if err != nil {
		t.Fatalf("NewCalculator: %v", err)
	}
	return calc
}

func TestComputeExamples(t *testing.T) {
	calc := newTestCalculator(t)

	tests := []struct {
		name         string
		first        string
		second       string
		wantDistance int
		wantSim      float64
	}{
		{"kitten sitting", "kitten", "sitting", 3, 1 - 3.0/7.0},
		{"empty first", "", "cat", 3, 0},
		{"empty second", "cat", "", 3, 0},
		{"identical", "rose", "rose", 0, 1},
		{"single substitution", "cat", "cot", 1, 1 - 1.0/3.0},
		{"no shared characters", "abc", "xyz", 3, 0},
		{"unicode code points", "naïve", "naive", 1, 0.8},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := calc.Compute(context.Background(), domain.Word(tc.first), domain.Word(tc.second))
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got.RawDistance != tc.wantDistance {
				t.Errorf("RawDistance = %d, want %d", got.RawDistance, tc.wantDistance)
			}
			if math.Abs(got.NormalizedSimilarity-tc.wantSim) > 1e-9 {
				t.Errorf("NormalizedSimilarity = %f, want %f", got.NormalizedSimilarity, tc.wantSim)
			}
		})
	}
}

func TestComputeKittenSittingRounded(t *testing.T) {
	calc := newTestCalculator(t)
	got, err := calc.Compute(context.Background(), "kitten", "sitting")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if math.Abs(got.NormalizedSimilarity-0.571429) > 1e-6 {
		t.Errorf("expected ~0.571429, got %f", got.NormalizedSimilarity)
	}
}

func TestComputeBothEmpty(t *testing.T) {
	calc := newTestCalculator(t)
	_, err := calc.Compute(context.Background(), "", "")
	if !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
	var invalid *domain.InvalidInputError
	if !errors.As(err, &invalid) || invalid.Metric != MetricName {
		t.Errorf("expected InvalidInputError from %s, got %#v", MetricName, err)
	}
}

func TestComputeCancelledContext(t *testing.T) {
	calc := newTestCalculator(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := calc.Compute(ctx, "cat", "cot"); !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}

func TestProperties(t *testing.T) {
	calc := newTestCalculator(t)
	ctx := context.Background()

	for _, w := range corpus {
		got, err := calc.Compute(ctx, domain.Word(w), domain.Word(w))
		if err != nil {
			t.Fatalf("Compute(%q, %q): %v", w, w, err)
		}
		if got.RawDistance != 0 || got.NormalizedSimilarity != 1.0 {
			t.Errorf("self pair %q: got %+v, want distance 0 and similarity 1", w, got)
		}
	}

	for _, w1 := range corpus {
		for _, w2 := range corpus {
			ab, err := calc.Compute(ctx, domain.Word(w1), domain.Word(w2))
			if err != nil {
				t.Fatalf("Compute(%q, %q): %v", w1, w2, err)
			}
			ba, err := calc.Compute(ctx, domain.Word(w2), domain.Word(w1))
			if err != nil {
				t.Fatalf("Compute(%q, %q): %v", w2, w1, err)
			}
			if ab.RawDistance != ba.RawDistance {
				t.Errorf("asymmetric distance for (%q, %q): %d vs %d", w1, w2, ab.RawDistance, ba.RawDistance)
			}
			bound := domain.Word(w1).Len() + domain.Word(w2).Len()
			if ab.RawDistance > bound {
				t.Errorf("distance(%q, %q) = %d exceeds %d", w1, w2, ab.RawDistance, bound)
			}
			if ab.NormalizedSimilarity < 0 || ab.NormalizedSimilarity > 1 {
				t.Errorf("similarity(%q, %q) = %f outside [0,1]", w1, w2, ab.NormalizedSimilarity)
			}
		}
	}
}

func TestDistanceMatchesReferenceImplementations(t *testing.T) {
	for _, w1 := range corpus {
		for _, w2 := range corpus {
			a, b := []rune(w1), []rune(w2)
			row := make([]int, len(b)+1)
			got := Distance(a, b, row)

			if want := levenshtein.ComputeDistance(w1, w2); got != want {
				t.Errorf("Distance(%q, %q) = %d, agnivade/levenshtein says %d", w1, w2, got, want)
			}
			if want := edlib.LevenshteinDistance(w1, w2); got != want {
				t.Errorf("Distance(%q, %q) = %d, go-edlib says %d", w1, w2, got, want)
			}
		}
	}
}

func TestDistanceReusesOversizedRow(t *testing.T) {
	row := make([]int, 64)
	for i := range row {
		row[i] = -7
	}
	if got := Distance([]rune("gumbo"), []rune("gambol"), row); got != 2 {
		t.Errorf("Distance(gumbo, gambol) = %d, want 2", got)
	}
	if got := Distance([]rune("ab"), []rune("ba"), row); got != 2 {
		t.Errorf("Distance(ab, ba) = %d, want 2", got)
	}
}

func TestSimilarityConfigValidate(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Errorf("default config should be valid: %v", err)
	}
	if _, err := NewCalculator(SimilarityConfig{RowCapacity: 0}, logger.Nop{}); err == nil {
		t.Error("expected error for zero row capacity")
	}
}
