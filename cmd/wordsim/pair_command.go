package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/baditaflorin/go_word_similarity/pkg/wordsim"
)

func newPairCommand(ctx *commandContext) *cobra.Command {
	var precision int

	cmd := &cobra.Command{
		Use:   "pair <first> <second>",
		Short: "Score a single word pair and show the Van Orden features",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			log, err := ctx.log()
			if err != nil {
				return err
			}
			defer ctx.close()

			scorer, err := wordsim.New(wordsim.WithLogAdapter(log))
			if err != nil {
				return err
			}

			first, second := args[0], args[1]
			score, err := scorer.Score(cmd.Context(), first, second)
			if err != nil {
				return err
			}
			baseline, err := scorer.SelfScore(first)
			if err != nil {
				return err
			}

			f := func(v float64) string {
				return strconv.FormatFloat(v, 'f', precision, 64)
			}
			features := score.Orthographic.Features
			rows := [][]string{
				{"raw distance", strconv.Itoa(score.EditDistance.RawDistance)},
				{"normlevdist", f(score.EditDistance.NormalizedSimilarity)},
				{"raw score", f(score.Orthographic.RawScore)},
				{"baseline", f(baseline)},
				{"os", f(score.Orthographic.NormalizedScore)},
				{"F (bigrams)", strconv.Itoa(features.F)},
				{"V (reversed bigrams)", strconv.Itoa(features.V)},
				{"C (letters)", strconv.Itoa(features.C)},
				{"A (mean length)", f(features.A)},
				{"T (length ratio)", f(features.T)},
				{"B (first letter)", strconv.Itoa(features.B)},
				{"E (last letter)", strconv.Itoa(features.E)},
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s / %s\n", first, second)
			fmt.Fprintln(out, renderTable([]string{"Measure", "Value"}, rows, []columnAlignment{alignLeft, alignRight}))
			return nil
		},
	}

	cmd.Flags().IntVar(&precision, "precision", 6, "Decimal places (-1 = shortest exact value)")
	return cmd
}
