package config

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/baditaflorin/go_word_similarity/internal/adapters/records"
	"github.com/baditaflorin/go_word_similarity/internal/adapters/sink"
	"github.com/baditaflorin/go_word_similarity/internal/core/batch"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateInput(); err != nil {
		return err
	}
	if err := c.validateOutput(); err != nil {
		return err
	}
	if err := c.validateScoring(); err != nil {
		return err
	}
	if err := c.validateServer(); err != nil {
		return err
	}
	return c.validateLogging()
}

func (c *Config) validateInput() error {
	if utf8.RuneCountInString(c.Input.Delimiter) != 1 {
		return fmt.Errorf("input.delimiter must be a single character, got %q", c.Input.Delimiter)
	}
	rc := records.Config{Encoding: c.Input.Encoding, Delimiter: c.DelimiterRune(), LazyQuotes: c.Input.LazyQuotes}
	if err := rc.Validate(); err != nil {
		return fmt.Errorf("input: %w", err)
	}
	return nil
}

func (c *Config) validateOutput() error {
	format, err := sink.ParseFormat(c.Output.Format)
	if err != nil {
		return fmt.Errorf("output.format: %w", err)
	}
	if format == sink.FormatSQLite && (c.Output.Path == "" || c.Output.Path == "-") {
		return errors.New("output.path must be a file when output.format is sqlite")
	}
	if c.Output.Precision < -1 || c.Output.Precision > 17 {
		return errors.New("output.precision must be between -1 and 17")
	}
	return nil
}

func (c *Config) validateScoring() error {
	if c.Scoring.Workers < 0 {
		return errors.New("scoring.workers must be 0 or greater")
	}
	if _, err := batch.ParseErrorPolicy(c.Scoring.ErrorPolicy); err != nil {
		return fmt.Errorf("scoring.error_policy: %w", err)
	}
	if c.Scoring.BaselineCacheSize < 0 {
		return errors.New("scoring.baseline_cache_size must be 0 or greater")
	}
	return nil
}

func (c *Config) validateServer() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be between 1 and 65535, got %d", c.Server.Port)
	}
	if c.Server.ReadTimeoutSeconds <= 0 || c.Server.WriteTimeoutSeconds <= 0 {
		return errors.New("server timeouts must be positive")
	}
	if c.Server.MaxRequestBytes <= 0 {
		return errors.New("server.max_request_bytes must be positive")
	}
	if c.Server.MaxBatchPairs <= 0 {
		return errors.New("server.max_batch_pairs must be positive")
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "text", "json":
		return nil
	default:
		return fmt.Errorf("logging.format must be text or json, got %q", c.Logging.Format)
	}
}
