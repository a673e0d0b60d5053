package preflight

import (
	"textpipe/internal/config"
)

// Result reports the outcome of a single preflight check.
type Result struct {
	Name   string
	Passed bool
	Detail string
}

// RunAll executes every preflight check for the given config.
func RunAll(cfg *config.Config) []Result {
	if cfg == nil {
		return nil
	}
	return []Result{
		CheckInputReadable("Input file", cfg.Paths.Input),
		CheckOutputWritable("Word count output", cfg.Paths.WordCountOutput, cfg.Output.CreateDirs),
		CheckOutputWritable("Transform output", cfg.Paths.TransformOutput, cfg.Output.CreateDirs),
	}
}

// Passed reports whether every result passed.
func Passed(results []Result) bool {
	for _, r := range results {
		if !r.Passed {
			return false
		}
	}
	return true
}
