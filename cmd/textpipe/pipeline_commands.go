package main

import (
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"textpipe/internal/config"
	"textpipe/internal/logging"
	"textpipe/internal/pipeline"
)

type pathFlags struct {
	input  string
	output string
}

func (p *pathFlags) register(cmd *cobra.Command, outputUsage string) {
	cmd.Flags().StringVarP(&p.input, "input", "i", "", "Input text file (overrides paths.input)")
	cmd.Flags().StringVarP(&p.output, "output", "o", "", outputUsage)
}

func newCountCommand(ctx *commandContext) *cobra.Command {
	var paths pathFlags
	var top int
	var sortFlag string

	cmd := &cobra.Command{
		Use:   "count",
		Short: "Count word frequencies and write word: count lines",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			run, err := newPipelineRun(ctx, cmd)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("top") {
				run.top = top
			}
			if cmd.Flags().Changed("sort") {
				order, err := pipeline.ParseSortOrder(sortFlag)
				if err != nil {
					return fmt.Errorf("--sort: %w", err)
				}
				run.order = order
			}
			input, err := resolvePath(paths.input, run.cfg.Paths.Input)
			if err != nil {
				return err
			}
			output, err := resolvePath(paths.output, run.cfg.Paths.WordCountOutput)
			if err != nil {
				return err
			}

			doc, err := run.load(input)
			if err != nil {
				return err
			}
			_, err = run.count(doc, output)
			return err
		},
	}

	paths.register(cmd, "Word count destination (overrides paths.word_count_output)")
	cmd.Flags().IntVarP(&top, "top", "n", 0, "Rows in the summary table (overrides report.top)")
	cmd.Flags().StringVar(&sortFlag, "sort", "", "Line order: count, word, or none (overrides output.sort)")
	return cmd
}

func newTransformCommand(ctx *commandContext) *cobra.Command {
	var paths pathFlags

	cmd := &cobra.Command{
		Use:   "transform",
		Short: "Drop blank lines and upper-case the rest",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			run, err := newPipelineRun(ctx, cmd)
			if err != nil {
				return err
			}
			input, err := resolvePath(paths.input, run.cfg.Paths.Input)
			if err != nil {
				return err
			}
			output, err := resolvePath(paths.output, run.cfg.Paths.TransformOutput)
			if err != nil {
				return err
			}

			doc, err := run.load(input)
			if err != nil {
				return err
			}
			return run.transform(doc, output)
		},
	}

	paths.register(cmd, "Transform destination (overrides paths.transform_output)")
	return cmd
}

func newRunCommand(ctx *commandContext) *cobra.Command {
	var input string

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run word count and transform over a single read of the input",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			run, err := newPipelineRun(ctx, cmd)
			if err != nil {
				return err
			}
			inputPath, err := resolvePath(input, run.cfg.Paths.Input)
			if err != nil {
				return err
			}

			doc, err := run.load(inputPath)
			if err != nil {
				return err
			}
			if _, err := run.count(doc, run.cfg.Paths.WordCountOutput); err != nil {
				return err
			}
			return run.transform(doc, run.cfg.Paths.TransformOutput)
		},
	}

	cmd.Flags().StringVarP(&input, "input", "i", "", "Input text file (overrides paths.input)")
	return cmd
}

// pipelineRun carries the settings and sinks shared by one invocation.
type pipelineRun struct {
	cfg      *config.Config
	logger   *slog.Logger
	out      io.Writer
	colorize bool
	top      int
	order    pipeline.SortOrder
	saveOpts []pipeline.SaveOption
}

func newPipelineRun(ctx *commandContext, cmd *cobra.Command) (*pipelineRun, error) {
	cfg, err := ctx.ensureConfig()
	if err != nil {
		return nil, err
	}
	logger, err := ctx.ensureLogger()
	if err != nil {
		return nil, err
	}
	order, err := pipeline.ParseSortOrder(cfg.Output.Sort)
	if err != nil {
		return nil, fmt.Errorf("output.sort: %w", err)
	}
	out := cmd.OutOrStdout()
	return &pipelineRun{
		cfg:      cfg,
		logger:   logging.NewComponentLogger(logger, "pipeline"),
		out:      out,
		colorize: shouldColorize(out),
		top:      cfg.Report.Top,
		order:    order,
		saveOpts: saveOptions(cfg),
	}, nil
}

func saveOptions(cfg *config.Config) []pipeline.SaveOption {
	var opts []pipeline.SaveOption
	if !cfg.Output.CreateDirs {
		opts = append(opts, pipeline.WithoutParentDirs())
	}
	if cfg.Output.Lock {
		opts = append(opts, pipeline.WithLock())
	}
	return opts
}

func resolvePath(flag, fallback string) (string, error) {
	if flag == "" {
		return fallback, nil
	}
	expanded, err := config.ExpandPath(flag)
	if err != nil {
		return "", fmt.Errorf("resolve path %q: %w", flag, err)
	}
	return expanded, nil
}

func (r *pipelineRun) load(path string) (pipeline.Document, error) {
	start := time.Now()
	doc, err := pipeline.Load(path)
	if err != nil {
		logging.ErrorWithContext(r.logger, "input load failed", "pipeline_load_failed",
			logging.String(logging.FieldInputPath, path),
			logging.String(logging.FieldErrorHint, "check that the input file exists and is readable"),
			logging.Error(err),
		)
		fmt.Fprintln(r.out, renderStatusLine("Input", statusError, path, r.colorize))
		return pipeline.Document{}, err
	}
	r.logger.Info("input loaded",
		logging.String(logging.FieldInputPath, path),
		logging.Int("line_count", doc.Len()),
		logging.Duration("load_duration", time.Since(start)),
	)
	fmt.Fprintln(r.out, renderStatusLine("Input", statusOK, fmt.Sprintf("%s (%s)", path, plural(doc.Len(), "line")), r.colorize))
	return doc, nil
}

func (r *pipelineRun) count(doc pipeline.Document, output string) (pipeline.WordFrequencyTable, error) {
	log := r.logger.With(logging.String(logging.FieldMode, "count"))

	table := pipeline.CountWords(doc)
	lines := table.Lines(r.order)
	if err := r.save(log, output, lines, "Word counts"); err != nil {
		return table, err
	}
	log.Info("word count saved",
		logging.String(logging.FieldOutputPath, output),
		logging.Int("distinct_words", table.Len()),
		logging.Int("total_words", table.Total()),
		logging.String("sort", string(r.order)),
	)
	fmt.Fprintln(r.out, renderStatusLine("Word counts", statusOK, fmt.Sprintf("%s (%s)", output, plural(table.Len(), "distinct word")), r.colorize))

	if best, ok := pipeline.MostFrequent(table); ok {
		fmt.Fprintf(r.out, "Most frequent word: '%s' (%s)\n", best.Word, plural(best.Count, "occurrence"))
	} else {
		fmt.Fprintln(r.out, "No words found.")
	}
	if entries := table.Top(r.top); len(entries) > 0 {
		fmt.Fprintln(r.out, renderWordTable(entries, table.Total()))
	}
	return table, nil
}

func (r *pipelineRun) transform(doc pipeline.Document, output string) error {
	log := r.logger.With(logging.String(logging.FieldMode, "transform"))

	transformed := pipeline.FilterAndUppercase(doc)
	if err := r.save(log, output, transformed.Lines(), "Uppercase"); err != nil {
		return err
	}
	log.Info("transform saved",
		logging.String(logging.FieldOutputPath, output),
		logging.Int("kept_lines", len(transformed)),
		logging.Int("dropped_lines", doc.Len()-len(transformed)),
	)
	fmt.Fprintln(r.out, renderStatusLine("Uppercase", statusOK, fmt.Sprintf("%s (%s)", output, plural(len(transformed), "line")), r.colorize))
	return nil
}

func (r *pipelineRun) save(log *slog.Logger, output string, lines []string, label string) error {
	if err := pipeline.Save(output, lines, r.saveOpts...); err != nil {
		logging.ErrorWithContext(log, "output save failed", "pipeline_save_failed",
			logging.String(logging.FieldOutputPath, output),
			logging.Bool("create_dirs", r.cfg.Output.CreateDirs),
			logging.Error(err),
		)
		fmt.Fprintln(r.out, renderStatusLine(label, statusError, output, r.colorize))
		return err
	}
	written := 0
	for _, line := range lines {
		written += len(line) + 1
	}
	log.Debug("output written",
		logging.String(logging.FieldOutputPath, output),
		logging.Int("line_count", len(lines)),
		logging.Int("written_bytes", written),
	)
	return nil
}

func plural(n int, noun string) string {
	if n == 1 {
		return "1 " + noun
	}
	return strconv.Itoa(n) + " " + noun + "s"
}
