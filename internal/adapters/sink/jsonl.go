package sink

import (
	"encoding/json"
	"io"

	"github.com/baditaflorin/go_word_similarity/internal/core/domain"
)

// Record is the JSON shape of one scored pair.
type Record struct {
	Index                int             `json:"index"`
	Word1                string          `json:"word1"`
	Word2                string          `json:"word2"`
	RawDistance          int             `json:"raw_distance"`
	NormalizedSimilarity float64         `json:"normlevdist"`
	RawScore             float64         `json:"raw_score"`
	NormalizedScore      float64         `json:"os"`
	Features             domain.Features `json:"features"`
}

// NewRecord converts a scored pair into its JSON shape.
func NewRecord(score domain.PairScore) Record {
	return Record{
		Index:                score.Index,
		Word1:                string(score.Pair.First),
		Word2:                string(score.Pair.Second),
		RawDistance:          score.EditDistance.RawDistance,
		NormalizedSimilarity: score.EditDistance.NormalizedSimilarity,
		RawScore:             score.Orthographic.RawScore,
		NormalizedScore:      score.Orthographic.NormalizedScore,
		Features:             score.Orthographic.Features,
	}
}

// JSONL writes one JSON object per line.
type JSONL struct {
	out io.WriteCloser
	enc *json.Encoder
}

// NewJSONL creates a JSON-lines sink.
func NewJSONL(out io.WriteCloser) *JSONL {
	enc := json.NewEncoder(out)
	enc.SetEscapeHTML(false)
	return &JSONL{out: out, enc: enc}
}

// Write encodes one pair.
func (j *JSONL) Write(score domain.PairScore) error {
	return j.enc.Encode(NewRecord(score))
}

// Close closes the destination.
func (j *JSONL) Close() error {
	return j.out.Close()
}
