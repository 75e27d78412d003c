package sink

import (
	"fmt"
	"io"
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/baditaflorin/go_word_similarity/internal/core/domain"
)

// Table buffers rows and renders a rounded table on Close.
type Table struct {
	out       io.WriteCloser
	tw        table.Writer
	precision int
}

// NewTable creates a table sink.
func NewTable(out io.WriteCloser, opts Options) *Table {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.Style().Format.Header = text.FormatDefault
	tw.AppendHeader(table.Row{"#", "Word1", "Word2", "normlevdist", "os"})
	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignRight, AlignHeader: text.AlignLeft},
		{Number: 4, Align: text.AlignRight, AlignHeader: text.AlignLeft},
		{Number: 5, Align: text.AlignRight, AlignHeader: text.AlignLeft},
	})
	return &Table{out: out, tw: tw, precision: opts.Precision}
}

// Write buffers one pair.
func (t *Table) Write(score domain.PairScore) error {
	t.tw.AppendRow(table.Row{
		strconv.Itoa(score.Index + 1),
		string(score.Pair.First),
		string(score.Pair.Second),
		formatFloat(score.EditDistance.NormalizedSimilarity, t.precision),
		formatFloat(score.Orthographic.NormalizedScore, t.precision),
	})
	return nil
}

// Close renders the table and closes the destination.
func (t *Table) Close() error {
	if _, err := fmt.Fprintln(t.out, t.tw.Render()); err != nil {
		t.out.Close()
		return err
	}
	return t.out.Close()
}
