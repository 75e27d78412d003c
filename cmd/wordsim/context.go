package main

import (
	"strings"
	"sync"

	"github.com/spf13/cobra"

	"github.com/baditaflorin/go_word_similarity/internal/adapters/logger"
	"github.com/baditaflorin/go_word_similarity/internal/config"
	"github.com/baditaflorin/go_word_similarity/internal/ports"
)

type commandContext struct {
	configFlag *string
	quietFlag  *bool

	configOnce sync.Once
	config     *config.Config
	configPath string
	configErr  error

	logger ports.Logger
}

func newCommandContext(configFlag *string, quietFlag *bool) *commandContext {
	return &commandContext{
		configFlag: configFlag,
		quietFlag:  quietFlag,
	}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		var path string
		if c.configFlag != nil {
			path = strings.TrimSpace(*c.configFlag)
		}
		cfg, resolved, _, err := config.Load(path)
		if err != nil {
			c.configErr = err
			return
		}
		c.config = cfg
		c.configPath = resolved
	})
	return c.config, c.configErr
}

// log returns the command logger, creating it from the logging section on
// first use.
func (c *commandContext) log() (ports.Logger, error) {
	if c.logger != nil {
		return c.logger, nil
	}
	if c.quietFlag != nil && *c.quietFlag {
		c.logger = logger.Nop{}
		return c.logger, nil
	}
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, err
	}
	lg, err := logger.Open(cfg.Logging.File, logger.Options{
		JSON:      cfg.Logging.Format == "json",
		Async:     cfg.Logging.Async,
		AddSource: false,
	})
	if err != nil {
		return nil, err
	}
	c.logger = lg
	return lg, nil
}

func (c *commandContext) close() error {
	if c.logger == nil {
		return nil
	}
	err := c.logger.Close()
	c.logger = nil
	return err
}

func shouldSkipConfig(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Annotations != nil && c.Annotations["skipConfigLoad"] == "true" {
			return true
		}
	}
	return false
}
