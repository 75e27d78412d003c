package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/baditaflorin/go_word_similarity/internal/adapters/records"
	"github.com/baditaflorin/go_word_similarity/internal/adapters/sink"
	"github.com/baditaflorin/go_word_similarity/internal/config"
	"github.com/baditaflorin/go_word_similarity/internal/core/batch"
	"github.com/baditaflorin/go_word_similarity/internal/core/domain"
	"github.com/baditaflorin/go_word_similarity/pkg/wordsim"
)

type scoreFlags struct {
	output    string
	format    string
	encoding  string
	delimiter string
	workers   int
	onError   string
	precision int
}

func newScoreCommand(ctx *commandContext) *cobra.Command {
	var flags scoreFlags

	cmd := &cobra.Command{
		Use:   "score [input]",
		Short: "Score every word pair in a two-column file",
		Long: "Reads word pairs (one per record, no header) and writes Word1, Word2, " +
			"the normalized Levenshtein similarity and the Van Orden score relative to Word1. " +
			"Use - for standard input or output.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			if err := applyScoreFlags(cmd, cfg, flags, args); err != nil {
				return err
			}
			defer ctx.close()
			return runScore(cmd, ctx, cfg)
		},
	}

	cmd.Flags().StringVarP(&flags.output, "output", "o", "", "Output path (default output_wordSim.csv, - for stdout)")
	cmd.Flags().StringVarP(&flags.format, "format", "f", "", "Output format: csv, table, jsonl or sqlite")
	cmd.Flags().StringVar(&flags.encoding, "encoding", "", "Input text encoding (utf-8, windows-1252, iso-8859-1, utf-16le, ...)")
	cmd.Flags().StringVarP(&flags.delimiter, "delimiter", "d", "", `Input field delimiter (use "\t" for tab)`)
	cmd.Flags().IntVarP(&flags.workers, "workers", "w", 0, "Scoring goroutines (0 = all CPUs, 1 = sequential)")
	cmd.Flags().StringVar(&flags.onError, "on-error", "", "Failing pairs: yield (report and continue), skip or stop")
	cmd.Flags().IntVar(&flags.precision, "precision", -1, "Decimal places (-1 = shortest exact value)")
	return cmd
}

// applyScoreFlags copies explicitly set flags over the loaded configuration.
func applyScoreFlags(cmd *cobra.Command, cfg *config.Config, flags scoreFlags, args []string) error {
	if len(args) == 1 {
		cfg.Input.Path = args[0]
	}
	changed := cmd.Flags().Changed
	if changed("output") {
		cfg.Output.Path = flags.output
	}
	if changed("format") {
		cfg.Output.Format = flags.format
	} else if cfg.Output.Path == "-" && cfg.Output.Format == string(sink.FormatCSV) && isTerminal(cmd.OutOrStdout()) {
		cfg.Output.Format = string(sink.FormatTable)
	}
	if changed("encoding") {
		cfg.Input.Encoding = flags.encoding
	}
	if changed("delimiter") {
		cfg.Input.Delimiter = flags.delimiter
	}
	if changed("workers") {
		cfg.Scoring.Workers = flags.workers
	}
	if changed("on-error") {
		cfg.Scoring.ErrorPolicy = flags.onError
	}
	if changed("precision") {
		cfg.Output.Precision = flags.precision
	}
	return cfg.Finalize()
}

func runScore(cmd *cobra.Command, ctx *commandContext, cfg *config.Config) error {
	log, err := ctx.log()
	if err != nil {
		return err
	}

	policy, err := batch.ParseErrorPolicy(cfg.Scoring.ErrorPolicy)
	if err != nil {
		return err
	}
	format, err := sink.ParseFormat(cfg.Output.Format)
	if err != nil {
		return err
	}

	readerCfg := records.Config{
		Encoding:   cfg.Input.Encoding,
		Delimiter:  cfg.DelimiterRune(),
		LazyQuotes: cfg.Input.LazyQuotes,
	}
	var reader *records.Reader
	if cfg.Input.Path == "-" {
		reader, err = records.FromReader(cmd.InOrStdin(), readerCfg, log)
	} else {
		reader, err = records.FromFile(cfg.Input.Path, readerCfg, log)
	}
	if err != nil {
		return fmt.Errorf("open input: %w", err)
	}

	scorer, err := wordsim.New(
		wordsim.WithLogAdapter(log),
		wordsim.WithBaselineCache(cfg.Scoring.BaselineCacheSize),
		wordsim.WithWorkers(cfg.Scoring.Workers),
		wordsim.WithWindow(cfg.Scoring.Window),
		wordsim.WithErrorPolicy(policy),
	)
	if err != nil {
		return err
	}

	out, err := sink.Open(format, cfg.Output.Path, sink.Options{
		Precision: cfg.Output.Precision,
		Input:     cfg.Input.Path,
		Stdout:    cmd.OutOrStdout(),
	}, log)
	if err != nil {
		return err
	}

	stderr := cmd.ErrOrStderr()
	var readErr error
	failed, scored := 0, 0
	onReadError := func(err error) bool {
		if !errors.Is(err, domain.ErrMalformedRecord) {
			readErr = err
			return false
		}
		if policy == batch.SkipInvalid {
			log.Warn("Skipping malformed record", "error", err)
			return true
		}
		failed++
		fmt.Fprintf(stderr, "input %v\n", err)
		return policy != batch.StopOnError
	}

	// lines[i] is the input line of the i-th pair handed to the scorer.
	// The source is drained on this goroutine, ahead of the matching score.
	var lines []int
	pairs := func(yield func(domain.WordPair) bool) {
		for rec, err := range reader.Lines() {
			if err != nil {
				if !onReadError(err) {
					return
				}
				continue
			}
			lines = append(lines, rec.Line)
			if !yield(rec.Pair) {
				return
			}
		}
	}

	for score, err := range scorer.ScoreAll(cmd.Context(), pairs) {
		if err != nil {
			if ctxErr := cmd.Context().Err(); ctxErr != nil && errors.Is(err, ctxErr) {
				break
			}
			failed++
			fmt.Fprintf(stderr, "line %d (%q, %q): %v\n", lines[score.Index], score.Pair.First, score.Pair.Second, err)
			continue
		}
		if err := out.Write(score); err != nil {
			_ = out.Close()
			return fmt.Errorf("write output: %w", err)
		}
		scored++
	}

	if err := out.Close(); err != nil {
		return fmt.Errorf("close output: %w", err)
	}
	if readErr != nil {
		return readErr
	}
	if err := cmd.Context().Err(); err != nil {
		return err
	}

	log.Info("Scoring complete",
		"input", cfg.Input.Path,
		"output", cfg.Output.Path,
		"format", string(format),
		"scored", scored,
		"failed", failed,
	)
	if failed > 0 {
		return fmt.Errorf("%d pair(s) could not be scored", failed)
	}
	return nil
}

func isTerminal(w io.Writer) bool {
	file, ok := w.(*os.File)
	if !ok {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
