// Package levenshtein implements the length-normalized Levenshtein similarity
// between two word forms.
package levenshtein

// Distance returns the unit-cost Levenshtein distance between first and second.
// row is a rolling buffer of at least len(second)+1 cells; its contents are overwritten.
// Rows are processed one per character of first, so the full matrix is never built.
func Distance(first, second []rune, row []int) int {
	n := len(second)
	row = row[:n+1]
	for y := 0; y <= n; y++ {
		row[y] = y
	}

	for x := 1; x <= len(first); x++ {
		diag := row[0]
		row[0] = x
		for y := 1; y <= n; y++ {
			above := row[y]
			sub := diag
			if first[x-1] != second[y-1] {
				sub++
			}
			row[y] = min(above+1, row[y-1]+1, sub)
			diag = above
		}
	}

	return row[n]
}

// Normalize maps a raw distance onto [0,1] relative to the longer word.
// maxLen must be positive.
func Normalize(distance, maxLen int) float64 {
	return 1 - float64(distance)/float64(maxLen)
}
