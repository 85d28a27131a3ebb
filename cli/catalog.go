package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"github.com/gear6io/tablediff/catalog"
	"github.com/gear6io/tablediff/pkg/errors"
	"github.com/gear6io/tablediff/storage/filesystem"
	"github.com/spf13/cobra"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog <file>",
	Short: "Profile a tabular file into a column catalog",
	Long: `Profile a delimited file and print per-column statistics: inferred
type, null counts, unique values, numeric bounds, and most frequent values.

The delimiter is detected from the first data line among comma, semicolon,
tab, and pipe. The first row is treated as the header unless --no-header
is given.

Examples:
  tablediff catalog data.csv
  tablediff catalog data.csv --no-header
  tablediff catalog data.csv --type-resolution majority --format json`,
	Args: cobra.ExactArgs(1),
	RunE: runCatalog,
}

type catalogOptions struct {
	noHeader       bool
	typeResolution string
	format         string
}

var catalogOpts = &catalogOptions{}

func init() {
	rootCmd.AddCommand(catalogCmd)

	catalogCmd.Flags().BoolVar(&catalogOpts.noHeader, "no-header", false, "treat the first row as data, not column names")
	catalogCmd.Flags().StringVar(&catalogOpts.typeResolution, "type-resolution", "first-seen", "column type strategy: first-seen or majority")
	catalogCmd.Flags().StringVar(&catalogOpts.format, "format", "table", "output format: table, json")
}

func runCatalog(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	d := getDisplayFromContext(ctx)
	logger := getLoggerFromContext(ctx)

	path := args[0]

	store := filesystem.NewStore()
	lines, err := store.ReadLines(ctx, path)
	if err != nil {
		if logger != nil {
			logger.Error().Str("cmd", "catalog").Str("path", path).Err(err).Msg("Failed to read file")
		}
		d.Error("Cannot read %s: %v", path, err)
		return err
	}

	builder := catalog.NewBuilder(
		catalog.WithResolver(catalog.ResolverFor(catalogOpts.typeResolution)),
		catalog.WithFileSizer(store.FileSize),
		catalog.WithHasHeader(!catalogOpts.noHeader),
	)
	cat := builder.Build(path, lines)

	if logger != nil {
		logger.Info().
			Str("cmd", "catalog").
			Str("path", path).
			Int("rows", cat.RowCount).
			Int("columns", cat.ColumnCount).
			Msg("Catalog built")
	}

	switch catalogOpts.format {
	case "table":
		renderCatalogTable(cmd, cat)
		return nil
	case "json":
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		return encoder.Encode(cat)
	default:
		err := errors.Newf(errors.CommonInvalidInput, "unknown format '%s'", catalogOpts.format)
		d.Error("%s", err.Error())
		return err
	}
}

func renderCatalogTable(cmd *cobra.Command, cat *catalog.DataCatalog) {
	d := getDisplayFromContext(cmd.Context())

	d.Info("%s: %d rows, %d columns, delimiter %q",
		cat.FilePath, cat.RowCount, cat.ColumnCount, cat.Delimiter)

	rows := make([][]string, 0, len(cat.Headers))
	for _, header := range cat.Headers {
		col := cat.Column(header)
		if col == nil {
			continue
		}
		rows = append(rows, []string{
			col.Name,
			col.DataType.String(),
			strconv.Itoa(col.UniqueCount()),
			fmt.Sprintf("%d (%.2f%%)", col.NullCount, col.NullPercentage()),
			boundsCell(col),
			topValuesCell(col),
		})
	}
	d.Table([]string{"Column", "Type", "Unique", "Nulls", "Min/Max", "Top Values"}, rows)
}

func boundsCell(col *catalog.ColumnInfo) string {
	if col.MinValue == nil || col.MaxValue == nil {
		return "-"
	}
	return fmt.Sprintf("%g / %g", *col.MinValue, *col.MaxValue)
}

func topValuesCell(col *catalog.ColumnInfo) string {
	top := col.TopValues()
	if len(top) == 0 {
		return "-"
	}
	cell := ""
	for i, vc := range top {
		if i > 0 {
			cell += ", "
		}
		cell += fmt.Sprintf("%s(%d)", vc.Value, vc.Count)
	}
	return cell
}
