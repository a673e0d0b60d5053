package config

import (
	"fmt"
	"strings"
)

func (c *Config) normalize() error {
	if err := c.normalizePaths(); err != nil {
		return err
	}
	c.normalizeOutput()
	return c.normalizeLogging()
}

func (c *Config) normalizePaths() error {
	var err error
	if c.Paths.Input, err = expandPath(strings.TrimSpace(c.Paths.Input)); err != nil {
		return fmt.Errorf("paths.input: %w", err)
	}
	if c.Paths.WordCountOutput, err = expandPath(strings.TrimSpace(c.Paths.WordCountOutput)); err != nil {
		return fmt.Errorf("paths.word_count_output: %w", err)
	}
	if c.Paths.TransformOutput, err = expandPath(strings.TrimSpace(c.Paths.TransformOutput)); err != nil {
		return fmt.Errorf("paths.transform_output: %w", err)
	}
	return nil
}

func (c *Config) normalizeOutput() {
	c.Output.Sort = strings.ToLower(strings.TrimSpace(c.Output.Sort))
	if c.Output.Sort == "" {
		c.Output.Sort = defaultOutputSort
	}
}

func (c *Config) normalizeLogging() error {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
	var err error
	if c.Logging.File, err = expandPath(strings.TrimSpace(c.Logging.File)); err != nil {
		return fmt.Errorf("logging.file: %w", err)
	}
	return nil
}
