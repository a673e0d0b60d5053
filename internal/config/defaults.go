package config

const (
	defaultConfigPath      = "~/.config/textpipe/config.toml"
	projectConfigFile      = "textpipe.toml"
	defaultInputPath       = "inputs/sample.txt"
	defaultWordCountOutput = "outputs/word_counts.txt"
	defaultTransformOutput = "outputs/uppercase.txt"
	defaultOutputSort      = "count"
	defaultCreateDirs      = true
	defaultReportTop       = 5
	defaultLogFormat       = "console"
	defaultLogLevel        = "info"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			Input:           defaultInputPath,
			WordCountOutput: defaultWordCountOutput,
			TransformOutput: defaultTransformOutput,
		},
		Output: Output{
			Sort:       defaultOutputSort,
			CreateDirs: defaultCreateDirs,
		},
		Report: Report{
			Top: defaultReportTop,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
