package config

import (
	"errors"
	"fmt"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validatePaths(); err != nil {
		return err
	}
	if err := c.validateOutput(); err != nil {
		return err
	}
	if err := c.validateReport(); err != nil {
		return err
	}
	return c.validateLogging()
}

func (c *Config) validatePaths() error {
	if c.Paths.Input == "" {
		return errors.New("paths.input must be set")
	}
	if c.Paths.WordCountOutput == "" {
		return errors.New("paths.word_count_output must be set")
	}
	if c.Paths.TransformOutput == "" {
		return errors.New("paths.transform_output must be set")
	}
	if c.Paths.WordCountOutput == c.Paths.TransformOutput {
		return errors.New("paths.word_count_output and paths.transform_output must differ")
	}
	return nil
}

func (c *Config) validateOutput() error {
	switch c.Output.Sort {
	case "count", "word", "none":
		return nil
	default:
		return fmt.Errorf("output.sort: unsupported value %q (want count, word, or none)", c.Output.Sort)
	}
}

func (c *Config) validateReport() error {
	if c.Report.Top < 0 {
		return errors.New("report.top must be zero or positive")
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format: unsupported value %q", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level: unsupported value %q", c.Logging.Level)
	}
	return nil
}
