package config

import (
	"fmt"
	"strings"
)

func (c *Config) normalize() error {
	if err := c.normalizePaths(); err != nil {
		return err
	}
	c.Input.Encoding = strings.ToLower(strings.TrimSpace(c.Input.Encoding))
	if c.Input.Encoding == "" {
		c.Input.Encoding = defaultEncoding
	}
	if c.Input.Delimiter == "" {
		c.Input.Delimiter = defaultDelimiter
	} else if c.Input.Delimiter == `\t` {
		c.Input.Delimiter = "\t"
	}
	c.Output.Format = strings.ToLower(strings.TrimSpace(c.Output.Format))
	if c.Output.Format == "" {
		c.Output.Format = defaultFormat
	}
	c.Scoring.ErrorPolicy = strings.ToLower(strings.TrimSpace(c.Scoring.ErrorPolicy))
	if c.Scoring.ErrorPolicy == "" {
		c.Scoring.ErrorPolicy = defaultErrorPolicy
	}
	if c.Scoring.Window <= 0 {
		c.Scoring.Window = defaultWindow
	}
	c.normalizeLogging()
	return nil
}

func (c *Config) normalizePaths() error {
	var err error
	if c.Input.Path, err = expandPath(c.Input.Path); err != nil {
		return fmt.Errorf("input.path: %w", err)
	}
	if c.Output.Path, err = expandPath(c.Output.Path); err != nil {
		return fmt.Errorf("output.path: %w", err)
	}
	if c.Logging.File, err = expandPath(c.Logging.File); err != nil {
		return fmt.Errorf("logging.file: %w", err)
	}
	return nil
}

func (c *Config) normalizeLogging() {
	format := strings.ToLower(strings.TrimSpace(c.Logging.Format))
	switch format {
	case "", "console":
		format = defaultLogFormat
	}
	c.Logging.Format = format
}

// Finalize re-applies normalization and validation after values were
// overridden, for example from command-line flags.
func (c *Config) Finalize() error {
	if err := c.normalize(); err != nil {
		return err
	}
	return c.Validate()
}
