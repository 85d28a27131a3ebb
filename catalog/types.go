package catalog

import (
	"encoding/json"
	"math"
)

// DataType is the closed set of semantic types a column value can take
type DataType int

const (
	TypeUnknown DataType = iota
	TypeInteger
	TypeFloat
	TypeString
	TypeDate
	TypeBoolean
	TypeNull
)

var typeNames = map[DataType]string{
	TypeUnknown: "unknown",
	TypeInteger: "integer",
	TypeFloat:   "float",
	TypeString:  "string",
	TypeDate:    "date",
	TypeBoolean: "boolean",
	TypeNull:    "null",
}

func (t DataType) String() string {
	if name, ok := typeNames[t]; ok {
		return name
	}
	return "unknown"
}

// IsNumeric reports whether the type carries min/max semantics
func (t DataType) IsNumeric() bool {
	return t == TypeInteger || t == TypeFloat
}

func (t DataType) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

// ValueCount pairs a raw value with its occurrence count
type ValueCount struct {
	Value string `json:"value"`
	Count int    `json:"count"`
}

// ColumnInfo holds the accumulated profile of a single column. It is mutated
// once per row during the profiling scan and treated as immutable afterwards.
type ColumnInfo struct {
	Name         string
	DataType     DataType
	SampleValues []string
	MinValue     *float64
	MaxValue     *float64
	UniqueValues map[string]struct{}
	NullCount    int
	RowCount     int

	// per-instance scan state, never shared between columns
	valueCounts map[string]int
	valueOrder  []string
	observed    []DataType
}

// newColumnInfo constructs a column profile with fresh containers
func newColumnInfo(name string) *ColumnInfo {
	return &ColumnInfo{
		Name:         name,
		DataType:     TypeUnknown,
		UniqueValues: make(map[string]struct{}),
		valueCounts:  make(map[string]int),
	}
}

// UniqueCount returns the number of distinct non-empty values
func (c *ColumnInfo) UniqueCount() int {
	return len(c.UniqueValues)
}

// NullPercentage returns the share of null values, 0 for an empty column
func (c *ColumnInfo) NullPercentage() float64 {
	if c.RowCount == 0 {
		return 0
	}
	return math.Round(10000*float64(c.NullCount)/float64(c.RowCount)) / 100
}

// TopValues returns up to 5 most frequent raw values, ties broken by
// first-encountered order
func (c *ColumnInfo) TopValues() []ValueCount {
	top := make([]ValueCount, 0, len(c.valueOrder))
	for _, v := range c.valueOrder {
		top = append(top, ValueCount{Value: v, Count: c.valueCounts[v]})
	}
	// stable insertion sort by count keeps first-encountered order for ties
	for i := 1; i < len(top); i++ {
		for j := i; j > 0 && top[j].Count > top[j-1].Count; j-- {
			top[j], top[j-1] = top[j-1], top[j]
		}
	}
	if len(top) > topValueLimit {
		top = top[:topValueLimit]
	}
	return top
}

// columnInfoJSON is the wire shape of a column profile
type columnInfoJSON struct {
	Name           string       `json:"name"`
	DataType       DataType     `json:"data_type"`
	SampleValues   []string     `json:"sample_values"`
	MinValue       *float64     `json:"min_value,omitempty"`
	MaxValue       *float64     `json:"max_value,omitempty"`
	UniqueCount    int          `json:"unique_count"`
	NullCount      int          `json:"null_count"`
	NullPercentage float64      `json:"null_percentage"`
	RowCount       int          `json:"row_count"`
	TopValues      []ValueCount `json:"top_values"`
}

func (c *ColumnInfo) MarshalJSON() ([]byte, error) {
	return json.Marshal(columnInfoJSON{
		Name:           c.Name,
		DataType:       c.DataType,
		SampleValues:   c.SampleValues,
		MinValue:       c.MinValue,
		MaxValue:       c.MaxValue,
		UniqueCount:    c.UniqueCount(),
		NullCount:      c.NullCount,
		NullPercentage: c.NullPercentage(),
		RowCount:       c.RowCount,
		TopValues:      c.TopValues(),
	})
}

// DataCatalog is the statistical profile of one tabular file. Built once per
// comparison call and never mutated after construction.
type DataCatalog struct {
	FilePath      string                 `json:"file_path"`
	RowCount      int                    `json:"row_count"`
	ColumnCount   int                    `json:"column_count"`
	Headers       []string               `json:"headers"`
	Columns       map[string]*ColumnInfo `json:"columns"`
	FileSizeBytes int64                  `json:"file_size_bytes"`
	HasHeader     bool                   `json:"has_header"`
	Delimiter     string                 `json:"delimiter"`
	Encoding      string                 `json:"encoding"`
}

// Column returns the profile for a named column, nil when absent
func (d *DataCatalog) Column(name string) *ColumnInfo {
	return d.Columns[name]
}
