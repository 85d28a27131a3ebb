package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/gear6io/tablediff/compare"
	"github.com/gear6io/tablediff/config"
	"github.com/gear6io/tablediff/pkg/errors"
	"github.com/gear6io/tablediff/report"
	"github.com/gear6io/tablediff/storage/filesystem"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var compareCmd = &cobra.Command{
	Use:   "compare <source> <target>",
	Short: "Compare two files or two directories",
	Long: `Compare two files, or every file under two directory trees.

Numeric fields in comma-separated content are rounded to the configured
decimal precision before diffing, so insignificant trailing digits do not
count as differences. Tabular files are profiled into a column catalog
unless disabled.

Examples:
  tablediff compare old.csv new.csv
  tablediff compare old.csv new.csv --precision 5
  tablediff compare ./source ./target --recursive --ignore '*.tmp'
  tablediff compare ./source ./target --format json
  tablediff compare ./source ./target -o report.html`,
	Args: cobra.ExactArgs(2),
	RunE: runCompare,
}

type compareOptions struct {
	recursive      bool
	ignorePatterns []string
	precision      int
	noCatalog      bool
	workers        int
	typeResolution string
	format         string
	output         string
}

var compareOpts = &compareOptions{}

func init() {
	rootCmd.AddCommand(compareCmd)

	compareCmd.Flags().BoolVarP(&compareOpts.recursive, "recursive", "r", false, "recursively compare subdirectories")
	compareCmd.Flags().StringSliceVar(&compareOpts.ignorePatterns, "ignore", nil, "basename globs to skip (e.g. '*.tmp')")
	compareCmd.Flags().IntVarP(&compareOpts.precision, "precision", "p", 3, "decimal precision for numeric comparison")
	compareCmd.Flags().BoolVar(&compareOpts.noCatalog, "no-catalog", false, "disable column catalogs for tabular files")
	compareCmd.Flags().IntVar(&compareOpts.workers, "workers", 1, "parallel workers for directory comparison")
	compareCmd.Flags().StringVar(&compareOpts.typeResolution, "type-resolution", "", "column type strategy: first-seen or majority")
	compareCmd.Flags().StringVar(&compareOpts.format, "format", "table", "output format: table, json, html")
	compareCmd.Flags().StringVarP(&compareOpts.output, "output", "o", "", "write the report to a file instead of stdout")
}

func runCompare(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	d := getDisplayFromContext(ctx)
	logger := getLoggerFromContext(ctx)

	source, target := args[0], args[1]

	configPath, cfg, err := config.FindConfig()
	if err != nil {
		d.Error("Failed to load configuration: %v", err)
		return err
	}
	if configPath != "" && cmd.Flag("verbose").Value.String() == "true" {
		d.Info("Using configuration: %s", configPath)
	}

	opts := mergeOptions(cmd, cfg)

	if logger != nil {
		logger.Info().
			Str("cmd", "compare").
			Str("source", source).
			Str("target", target).
			Int("precision", opts.Precision).
			Bool("catalog", opts.GenerateCatalog).
			Msg("Starting comparison")
	}

	sourceIsDir, err := isDirectory(source)
	if err != nil {
		d.Error("Cannot access source path: %v", err)
		return err
	}
	targetIsDir, err := isDirectory(target)
	if err != nil {
		d.Error("Cannot access target path: %v", err)
		return err
	}
	if sourceIsDir != targetIsDir {
		err := errors.New(compare.ErrInvalidOptions, "both paths must be either files or directories", nil)
		d.Error("%s", err.Error())
		return err
	}

	comparator := compare.NewComparator(filesystem.NewStore(), loggerOrNop(logger))

	var results []*compare.DiffResult
	if sourceIsDir {
		results, err = comparator.CompareDirectories(ctx, source, target, opts)
		if err != nil {
			if logger != nil {
				logger.Error().Str("cmd", "compare").Err(err).Msg("Directory comparison failed")
			}
			d.Error("Comparison failed: %v", err)
			return err
		}
	} else {
		results = []*compare.DiffResult{comparator.CompareFiles(ctx, source, target, opts)}
	}

	rep := report.New(source, target, opts.Precision, results)

	if logger != nil {
		logger.Info().
			Str("cmd", "compare").
			Str("run_id", rep.RunID).
			Int("total", rep.Summary.Total).
			Int("different", rep.Summary.Different).
			Msg("Comparison finished")
	}

	return renderReport(cmd, rep)
}

// mergeOptions folds flag values over the loaded config; flags the user
// actually set win
func mergeOptions(cmd *cobra.Command, cfg *config.Config) compare.Options {
	opts := compare.Options{
		Precision:       cfg.Compare.Precision,
		GenerateCatalog: cfg.Compare.GenerateCatalog,
		Recursive:       cfg.Compare.Recursive,
		IgnorePatterns:  cfg.Compare.IgnorePatterns,
		Workers:         cfg.Compare.Workers,
		TypeResolution:  cfg.Compare.TypeResolution,
	}

	if cmd.Flag("precision").Changed {
		opts.Precision = compareOpts.precision
	}
	if cmd.Flag("no-catalog").Changed {
		opts.GenerateCatalog = !compareOpts.noCatalog
	}
	if cmd.Flag("recursive").Changed {
		opts.Recursive = compareOpts.recursive
	}
	if cmd.Flag("ignore").Changed {
		opts.IgnorePatterns = compareOpts.ignorePatterns
	}
	if cmd.Flag("workers").Changed {
		opts.Workers = compareOpts.workers
	}
	if cmd.Flag("type-resolution").Changed {
		opts.TypeResolution = compareOpts.typeResolution
	}
	return opts
}

// renderReport writes the report in the requested format and destination
func renderReport(cmd *cobra.Command, rep *report.Report) error {
	d := getDisplayFromContext(cmd.Context())

	format := compareOpts.format
	if !cmd.Flag("format").Changed && compareOpts.output != "" {
		format = formatFromExtension(compareOpts.output)
	}

	switch format {
	case "table":
		renderTable(cmd, rep)
		return nil
	case "json":
		if compareOpts.output != "" {
			if err := rep.SaveJSON(compareOpts.output); err != nil {
				d.Error("Failed to write JSON report: %v", err)
				return err
			}
			d.Success("Comparison report generated: %s", compareOpts.output)
			return nil
		}
		return rep.WriteJSON(os.Stdout)
	case "html":
		output := compareOpts.output
		if output == "" {
			output = "comparison_report.html"
		}
		if err := rep.SaveHTML(output); err != nil {
			d.Error("Failed to write HTML report: %v", err)
			return err
		}
		d.Success("Comparison report generated: %s", output)
		return nil
	default:
		err := errors.Newf(errors.CommonInvalidInput, "unknown format '%s'", format)
		d.Error("%s", err.Error())
		return err
	}
}

func renderTable(cmd *cobra.Command, rep *report.Report) {
	d := getDisplayFromContext(cmd.Context())

	rows := make([][]string, 0, len(rep.Results))
	for _, result := range rep.Results {
		path := result.SourcePath
		if path == "" {
			path = result.TargetPath
		}
		rows = append(rows, []string{path, result.Status()})
	}
	d.Table([]string{"Path", "Status"}, rows)

	for _, result := range rep.Results {
		if result.Status() != "different" {
			continue
		}
		d.Println("")
		d.Info("%s", result.String())
		for _, line := range result.DiffLines {
			d.DiffLine(line)
		}
	}

	d.Println("")
	d.Success("%d compared: %d identical, %d different, %d source-only, %d target-only",
		rep.Summary.Total, rep.Summary.Identical, rep.Summary.Different,
		rep.Summary.SourceOnly, rep.Summary.TargetOnly)
}

func formatFromExtension(path string) string {
	switch {
	case strings.HasSuffix(strings.ToLower(path), ".json"):
		return "json"
	case strings.HasSuffix(strings.ToLower(path), ".html"):
		return "html"
	default:
		return "table"
	}
}

func isDirectory(path string) (bool, error) {
	info, err := os.Stat(path)
	if err != nil {
		return false, fmt.Errorf("cannot stat %s: %w", path, err)
	}
	return info.IsDir(), nil
}

func loggerOrNop(logger *zerolog.Logger) zerolog.Logger {
	if logger != nil {
		return *logger
	}
	return zerolog.Nop()
}
