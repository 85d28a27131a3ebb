package catalog

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

const (
	// scanSampleCap bounds how many raw values are collected per column
	// during the scan; retainedSampleCap is what survives finalization.
	scanSampleCap     = 100
	retainedSampleCap = 10

	// observedTypeCap bounds how many per-value inferences are kept for
	// the type resolver.
	observedTypeCap = 20

	topValueLimit = 5

	defaultEncoding = "utf-8"
)

// delimiterCandidates is probed in order against the first line; comma wins
// ties because it comes first.
var delimiterCandidates = []string{",", ";", "\t", "|"}

// FileSizer reports the on-disk size of a file, 0 when it cannot be sized
type FileSizer func(path string) int64

// Builder constructs DataCatalogs from raw file content
type Builder struct {
	resolver  TypeResolver
	sizer     FileSizer
	hasHeader bool
}

// Option configures a Builder
type Option func(*Builder)

// WithResolver overrides the column type resolution strategy
func WithResolver(r TypeResolver) Option {
	return func(b *Builder) { b.resolver = r }
}

// WithFileSizer overrides how file sizes are looked up
func WithFileSizer(s FileSizer) Option {
	return func(b *Builder) { b.sizer = s }
}

// WithHasHeader controls whether the first row is treated as a header row.
// When false, headers Column1..ColumnN are generated sized to the widest row.
func WithHasHeader(hasHeader bool) Option {
	return func(b *Builder) { b.hasHeader = hasHeader }
}

// NewBuilder returns a Builder with first-seen type resolution and
// stat-based file sizing
func NewBuilder(opts ...Option) *Builder {
	b := &Builder{
		resolver:  FirstSeenResolver{},
		sizer:     statSize,
		hasHeader: true,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

func statSize(path string) int64 {
	info, err := os.Stat(path)
	if err != nil {
		return 0
	}
	return info.Size()
}

// Build profiles raw file content into a DataCatalog. Blank lines are
// skipped; the first remaining row supplies the column names; rows shorter
// than the header contribute nulls for their missing trailing fields.
func (b *Builder) Build(filePath string, content []string) *DataCatalog {
	cat := &DataCatalog{
		FilePath:  filePath,
		Headers:   []string{},
		Columns:   make(map[string]*ColumnInfo),
		HasHeader: b.hasHeader,
		Delimiter: ",",
		Encoding:  defaultEncoding,
	}

	if len(content) == 0 {
		return cat
	}

	cat.FileSizeBytes = b.sizer(filePath)

	var firstLine string
	for _, line := range content {
		if strings.TrimSpace(line) != "" {
			firstLine = line
			break
		}
	}
	cat.Delimiter = DetectDelimiter(firstLine)

	var rows [][]string
	for _, line := range content {
		if strings.TrimSpace(line) == "" {
			continue
		}
		rows = append(rows, strings.Split(line, cat.Delimiter))
	}
	if len(rows) == 0 {
		return cat
	}

	var headers []string
	var dataRows [][]string
	if b.hasHeader {
		headers = trimFields(rows[0])
		dataRows = rows[1:]
	} else {
		headers = genericHeaders(widestRow(rows))
		dataRows = rows
	}

	cat.Headers = headers
	cat.ColumnCount = len(headers)
	cat.RowCount = len(dataRows)

	for _, header := range headers {
		cat.Columns[header] = newColumnInfo(header)
	}

	for _, row := range dataRows {
		for idx, header := range headers {
			value := ""
			if idx < len(row) {
				value = strings.TrimSpace(row[idx])
			}
			cat.Columns[header].observe(value)
		}
	}

	for _, header := range headers {
		cat.Columns[header].finalize(len(dataRows), b.resolver)
	}

	return cat
}

// DetectDelimiter probes the candidate list against a sample line and picks
// the delimiter yielding the greatest field count, defaulting to comma when
// nothing splits the line.
func DetectDelimiter(line string) string {
	best := ","
	bestFields := 1
	for _, candidate := range delimiterCandidates {
		if fields := len(strings.Split(line, candidate)); fields > bestFields {
			best = candidate
			bestFields = fields
		}
	}
	return best
}

// observe folds one raw field value into the column profile
func (c *ColumnInfo) observe(value string) {
	if value == "" {
		c.NullCount++
		return
	}

	c.UniqueValues[value] = struct{}{}
	if _, seen := c.valueCounts[value]; !seen {
		c.valueOrder = append(c.valueOrder, value)
	}
	c.valueCounts[value]++

	if len(c.SampleValues) < scanSampleCap {
		c.SampleValues = append(c.SampleValues, value)
	}

	inferred := Infer(value)
	if len(c.observed) < observedTypeCap {
		c.observed = append(c.observed, inferred)
	}

	if inferred.IsNumeric() {
		if num, err := strconv.ParseFloat(value, 64); err == nil {
			if c.MinValue == nil || num < *c.MinValue {
				min := num
				c.MinValue = &min
			}
			if c.MaxValue == nil || num > *c.MaxValue {
				max := num
				c.MaxValue = &max
			}
		}
	}
}

// finalize settles the row count, resolves the column type and truncates the
// retained sample
func (c *ColumnInfo) finalize(rowCount int, resolver TypeResolver) {
	c.RowCount = rowCount
	c.DataType = resolver.Resolve(c.observed)
	if len(c.SampleValues) > retainedSampleCap {
		c.SampleValues = c.SampleValues[:retainedSampleCap]
	}
}

func trimFields(fields []string) []string {
	out := make([]string, len(fields))
	for i, f := range fields {
		out[i] = strings.TrimSpace(f)
	}
	return out
}

func widestRow(rows [][]string) int {
	widest := 0
	for _, row := range rows {
		if len(row) > widest {
			widest = len(row)
		}
	}
	return widest
}

func genericHeaders(n int) []string {
	headers := make([]string, n)
	for i := range headers {
		headers[i] = fmt.Sprintf("Column%d", i+1)
	}
	return headers
}
