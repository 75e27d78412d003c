// Package vanorden implements a Van Orden (1987) style orthographic similarity
// score and its normalization against the first word's self-pair baseline.
package vanorden

import "github.com/baditaflorin/go_word_similarity/internal/core/domain"

// Feature weights of the raw score.
const (
	weightF     = 50
	weightV     = 30
	weightC     = 10
	weightT     = 5
	weightB     = 27
	weightE     = 18
	scoreFactor = 10
)

// Bigrams returns the adjacent two-character substrings of word in position order.
func Bigrams(word []rune) []string {
	if len(word) < 2 {
		return nil
	}
	out := make([]string, 0, len(word)-1)
	for i := 1; i < len(word); i++ {
		out = append(out, string(word[i-1:i+1]))
	}
	return out
}

// ReversedBigrams returns Bigrams(word) with each bigram's characters swapped.
func ReversedBigrams(word []rune) []string {
	if len(word) < 2 {
		return nil
	}
	out := make([]string, 0, len(word)-1)
	for i := 1; i < len(word); i++ {
		out = append(out, string([]rune{word[i], word[i-1]}))
	}
	return out
}

// LetterCounts returns the letter multiset of word.
func LetterCounts(word []rune) map[rune]int {
	counts := make(map[rune]int, len(word))
	for _, r := range word {
		counts[r]++
	}
	return counts
}

// SharedDistinctValues counts the distinct values of a that occur anywhere in b.
// A value repeated in either sequence counts once.
func SharedDistinctValues(a, b []string) int {
	inB := make(map[string]struct{}, len(b))
	for _, v := range b {
		inB[v] = struct{}{}
	}
	seen := make(map[string]struct{}, len(a))
	shared := 0
	for _, v := range a {
		if _, dup := seen[v]; dup {
			continue
		}
		seen[v] = struct{}{}
		if _, ok := inB[v]; ok {
			shared++
		}
	}
	return shared
}

// SharedMultisetOverlap sums min(a[r], b[r]) over letters present in both multisets.
// Every shared occurrence counts.
func SharedMultisetOverlap(a, b map[rune]int) int {
	overlap := 0
	for r, countA := range a {
		if countB, ok := b[r]; ok {
			overlap += min(countA, countB)
		}
	}
	return overlap
}

// Extract computes the seven features of a pair of non-empty words.
// V checks the first word's reversed bigrams against the second word's bigrams.
func Extract(first, second []rune) domain.Features {
	firstBigrams := Bigrams(first)
	secondBigrams := Bigrams(second)

	shorter, longer := len(first), len(second)
	if shorter > longer {
		shorter, longer = longer, shorter
	}

	f := domain.Features{
		F: SharedDistinctValues(firstBigrams, secondBigrams),
		V: SharedDistinctValues(ReversedBigrams(first), secondBigrams),
		C: SharedMultisetOverlap(LetterCounts(first), LetterCounts(second)),
		A: float64(len(first)+len(second)) / 2,
		T: float64(shorter) / float64(longer),
	}
	if first[0] == second[0] {
		f.B = 1
	}
	if first[len(first)-1] == second[len(second)-1] {
		f.E = 1
	}
	return f
}

// RawScore applies the weighted formula to a feature set.
func RawScore(f domain.Features) float64 {
	shared := float64(weightF*f.F+weightV*f.V+weightC*f.C) / f.A
	return scoreFactor * (shared + weightT*f.T + float64(weightB*f.B) + float64(weightE*f.E))
}
