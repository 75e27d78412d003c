package domain

import "unicode/utf8"

// Word is a written word form. Characters are Unicode code points.
type Word string

// Len returns the number of characters in the word.
func (w Word) Len() int {
	return utf8.RuneCountInString(string(w))
}

// Runes returns the characters of the word.
func (w Word) Runes() []rune {
	return []rune(string(w))
}

// WordPair is an ordered pair of words.
type WordPair struct {
	First  Word
	Second Word
}

// NewWordPair builds a pair from two strings.
func NewWordPair(first, second string) WordPair {
	return WordPair{First: Word(first), Second: Word(second)}
}

// IsSelfPair reports whether both members are the same word.
func (p WordPair) IsSelfPair() bool {
	return p.First == p.Second
}

// Reversed returns the pair with its members swapped.
func (p WordPair) Reversed() WordPair {
	return WordPair{First: p.Second, Second: p.First}
}

// EditDistanceResult holds the outcome of the Levenshtein metric.
type EditDistanceResult struct {
	RawDistance          int
	NormalizedSimilarity float64
}

// Features holds the seven Van Orden features of a word pair.
type Features struct {
	F int     // shared bigrams, same order
	V int     // shared bigrams, reversed order
	C int     // shared letter occurrences
	A float64 // mean length
	T float64 // shorter length over longer length
	B int     // first letters equal
	E int     // last letters equal
}

// OrthographicResult holds the outcome of the Van Orden metric.
type OrthographicResult struct {
	RawScore        float64
	NormalizedScore float64
	Features        Features
}

// PairScore is one scored pair, as handed to output sinks.
type PairScore struct {
	// Index is the zero-based position of the pair in its input.
	Index        int
	Pair         WordPair
	EditDistance EditDistanceResult
	Orthographic OrthographicResult
}
