package sink

import (
	"encoding/csv"
	"errors"
	"io"

	"github.com/baditaflorin/go_word_similarity/internal/core/domain"
)

// Header is the first CSV row.
var Header = []string{"Word1", "Word2", "normlevdist", "os"}

// CSV writes one comma separated row per pair after a header row.
type CSV struct {
	out       io.WriteCloser
	w         *csv.Writer
	precision int
	wroteHead bool
}

// NewCSV creates a CSV sink.
func NewCSV(out io.WriteCloser, opts Options) *CSV {
	return &CSV{out: out, w: csv.NewWriter(out), precision: opts.Precision}
}

// Write renders one pair.
func (c *CSV) Write(score domain.PairScore) error {
	if !c.wroteHead {
		if err := c.w.Write(Header); err != nil {
			return err
		}
		c.wroteHead = true
	}
	return c.w.Write([]string{
		string(score.Pair.First),
		string(score.Pair.Second),
		formatFloat(score.EditDistance.NormalizedSimilarity, c.precision),
		formatFloat(score.Orthographic.NormalizedScore, c.precision),
	})
}

// Close flushes buffered rows and closes the destination.
func (c *CSV) Close() error {
	if !c.wroteHead {
		_ = c.w.Write(Header)
	}
	c.w.Flush()
	return errors.Join(c.w.Error(), c.out.Close())
}
