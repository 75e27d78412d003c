package vanorden

import (
	"testing"

	"github.com/baditaflorin/go_word_similarity/internal/core/domain"
)

var words = []string{
	"a", "aa", "ab", "aba", "abba", "cat", "cot", "act", "tac", "rose", "rows", "banana", "anna",
	"mississippi", "level", "kitten", "sitting", "naïve", "αβγα", "lawn", "flaw", "noon",
}

func TestBigrams(t *testing.T) {
	tests := []struct {
		word string
		want []string
	}{
		{"a", nil},
		{"ab", []string{"ab"}},
		{"banana", []string{"ba", "an", "na", "an", "na"}},
		{"naïve", []string{"na", "aï", "ïv", "ve"}},
	}

	for _, tc := range tests {
		t.Run(tc.word, func(t *testing.T) {
			got := Bigrams([]rune(tc.word))
			if len(got) != len(tc.want) {
				t.Fatalf("Bigrams(%q) = %v, want %v", tc.word, got, tc.want)
			}
			for i := range got {
				if got[i] != tc.want[i] {
					t.Errorf("Bigrams(%q)[%d] = %q, want %q", tc.word, i, got[i], tc.want[i])
				}
			}
		})
	}
}

func TestReversedBigrams(t *testing.T) {
	got := ReversedBigrams([]rune("cot"))
	if len(got) != 2 || got[0] != "oc" || got[1] != "to" {
		t.Errorf("ReversedBigrams(cot) = %v, want [oc to]", got)
	}
}

func TestSharedDistinctValuesCountsEachValueOnce(t *testing.T) {
	a := Bigrams([]rune("banana")) // ba an na an na
	b := Bigrams([]rune("anna"))   // an nn na

	if got := SharedDistinctValues(a, b); got != 2 {
		t.Errorf("SharedDistinctValues = %d, want 2 (an, na)", got)
	}
	if got := SharedDistinctValues(nil, b); got != 0 {
		t.Errorf("SharedDistinctValues(nil, b) = %d, want 0", got)
	}
}

func TestSharedMultisetOverlapCountsOccurrences(t *testing.T) {
	a := LetterCounts([]rune("banana")) // b1 a3 n2
	b := LetterCounts([]rune("anna"))   // a2 n2

	if got := SharedMultisetOverlap(a, b); got != 4 {
		t.Errorf("SharedMultisetOverlap = %d, want 4", got)
	}
	if got := SharedMultisetOverlap(b, a); got != 4 {
		t.Errorf("SharedMultisetOverlap reversed = %d, want 4", got)
	}
}

func TestExtractCotCat(t *testing.T) {
	got := Extract([]rune("cot"), []rune("cat"))
	want := domain.Features{F: 0, V: 0, C: 2, A: 3, T: 1, B: 1, E: 1}
	if got != want {
		t.Errorf("Extract(cot, cat) = %+v, want %+v", got, want)
	}
}

func TestExtractCotSelf(t *testing.T) {
	got := Extract([]rune("cot"), []rune("cot"))
	want := domain.Features{F: 2, V: 0, C: 3, A: 3, T: 1, B: 1, E: 1}
	if got != want {
		t.Errorf("Extract(cot, cot) = %+v, want %+v", got, want)
	}
}

func TestExtractLengthFeatures(t *testing.T) {
	got := Extract([]rune("rose"), []rune("ro"))
	if got.A != 3 {
		t.Errorf("A = %f, want 3", got.A)
	}
	if got.T != 0.5 {
		t.Errorf("T = %f, want 0.5", got.T)
	}
	if got.B != 1 || got.E != 0 {
		t.Errorf("B, E = %d, %d, want 1, 0", got.B, got.E)
	}
}

func distinctCount(values []string) int {
	set := make(map[string]struct{}, len(values))
	for _, v := range values {
		set[v] = struct{}{}
	}
	return len(set)
}

// Self-pair identities derived directly from the feature definitions.
func TestSelfPairIdentities(t *testing.T) {
	for _, w := range words {
		t.Run(w, func(t *testing.T) {
			runes := []rune(w)
			f := Extract(runes, runes)

			if want := distinctCount(Bigrams(runes)); f.F != want {
				t.Errorf("F = %d, want distinct bigram count %d", f.F, want)
			}
			if f.C != len(runes) {
				t.Errorf("C = %d, want letter count %d", f.C, len(runes))
			}
			if f.A != float64(len(runes)) {
				t.Errorf("A = %f, want %d", f.A, len(runes))
			}
			if f.T != 1 || f.B != 1 || f.E != 1 {
				t.Errorf("T, B, E = %f, %d, %d, want 1, 1, 1", f.T, f.B, f.E)
			}
			if f.V > f.F {
				t.Errorf("V = %d exceeds F = %d", f.V, f.F)
			}
		})
	}
}

func TestSelfPairReversedBigrams(t *testing.T) {
	tests := []struct {
		word  string
		wantV int
	}{
		{"cot", 0},
		{"aba", 2},
		{"abba", 3},
		{"aa", 1},
		{"a", 0},
	}

	for _, tc := range tests {
		t.Run(tc.word, func(t *testing.T) {
			runes := []rune(tc.word)
			if got := Extract(runes, runes).V; got != tc.wantV {
				t.Errorf("V(%q, %q) = %d, want %d", tc.word, tc.word, got, tc.wantV)
			}
		})
	}
}

func TestSingleCharacterSelfPair(t *testing.T) {
	f := Extract([]rune("x"), []rune("x"))
	want := domain.Features{F: 0, V: 0, C: 1, A: 1, T: 1, B: 1, E: 1}
	if f != want {
		t.Errorf("Extract(x, x) = %+v, want %+v", f, want)
	}
	if got := RawScore(f); got != 600 {
		t.Errorf("RawScore = %f, want 600", got)
	}
}

// V is computed from the first word's reversed bigrams, but reversal is a
// bijection on bigrams, so the count is the same in either pair order.
func TestReversedBigramCountIsOrderInsensitive(t *testing.T) {
	for _, w1 := range words {
		for _, w2 := range words {
			pair := domain.NewWordPair(w1, w2)
			rev := pair.Reversed()
			if rev.First != pair.Second || rev.Second != pair.First {
				t.Fatalf("Reversed(%v) = %v", pair, rev)
			}
			v12 := Extract(pair.First.Runes(), pair.Second.Runes()).V
			v21 := Extract(rev.First.Runes(), rev.Second.Runes()).V
			if v12 != v21 {
				t.Errorf("V(%q, %q) = %d but V(%q, %q) = %d", w1, w2, v12, w2, w1, v21)
			}
		}
	}
}

func TestSymmetricFeatures(t *testing.T) {
	for _, w1 := range words {
		for _, w2 := range words {
			a := Extract([]rune(w1), []rune(w2))
			b := Extract([]rune(w2), []rune(w1))
			if a.F != b.F || a.C != b.C || a.A != b.A || a.T != b.T || a.B != b.B || a.E != b.E {
				t.Errorf("features of (%q, %q) not symmetric: %+v vs %+v", w1, w2, a, b)
			}
		}
	}
}
