package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedSizer(size int64) FileSizer {
	return func(string) int64 { return size }
}

func TestBuildBasicCatalog(t *testing.T) {
	content := []string{
		"name,age,score",
		"alice,30,91.5",
		"bob,25,78.25",
		"carol,41,91.5",
	}

	b := NewBuilder(WithFileSizer(fixedSizer(64)))
	cat := b.Build("people.csv", content)

	assert.Equal(t, "people.csv", cat.FilePath)
	assert.Equal(t, 3, cat.RowCount)
	assert.Equal(t, 3, cat.ColumnCount)
	assert.Equal(t, []string{"name", "age", "score"}, cat.Headers)
	assert.Equal(t, ",", cat.Delimiter)
	assert.Equal(t, int64(64), cat.FileSizeBytes)
	assert.True(t, cat.HasHeader)
	assert.Equal(t, "utf-8", cat.Encoding)
	require.Len(t, cat.Columns, 3)

	name := cat.Column("name")
	require.NotNil(t, name)
	assert.Equal(t, TypeString, name.DataType)
	assert.Equal(t, 3, name.UniqueCount())
	assert.Equal(t, 0, name.NullCount)

	age := cat.Column("age")
	require.NotNil(t, age)
	assert.Equal(t, TypeInteger, age.DataType)
	require.NotNil(t, age.MinValue)
	require.NotNil(t, age.MaxValue)
	assert.Equal(t, 25.0, *age.MinValue)
	assert.Equal(t, 41.0, *age.MaxValue)

	score := cat.Column("score")
	require.NotNil(t, score)
	assert.Equal(t, TypeFloat, score.DataType)
	assert.Equal(t, 2, score.UniqueCount())
}

// A column of four distinct strings: no nulls, and all four values appear
// in the top values with count 1.
func TestBuildStringColumnProfile(t *testing.T) {
	content := []string{
		"word",
		"abc",
		"def",
		"ghi",
		"jkl",
	}

	cat := NewBuilder(WithFileSizer(fixedSizer(0))).Build("words.csv", content)

	col := cat.Column("word")
	require.NotNil(t, col)
	assert.Equal(t, TypeString, col.DataType)
	assert.Equal(t, 0, col.NullCount)
	assert.Equal(t, 4, col.UniqueCount())
	assert.Equal(t, 0.0, col.NullPercentage())

	top := col.TopValues()
	require.Len(t, top, 4)
	for i, expected := range []string{"abc", "def", "ghi", "jkl"} {
		assert.Equal(t, expected, top[i].Value)
		assert.Equal(t, 1, top[i].Count)
	}
}

func TestBuildTopValuesOrdering(t *testing.T) {
	content := []string{
		"c",
		"x", "y", "x", "z", "y", "x", "w", "q", "r", "s",
	}

	cat := NewBuilder(WithFileSizer(fixedSizer(0))).Build("c.csv", content)
	top := cat.Column("c").TopValues()

	require.Len(t, top, 5)
	assert.Equal(t, ValueCount{Value: "x", Count: 3}, top[0])
	assert.Equal(t, ValueCount{Value: "y", Count: 2}, top[1])
	// singletons keep first-encountered order
	assert.Equal(t, ValueCount{Value: "z", Count: 1}, top[2])
	assert.Equal(t, ValueCount{Value: "w", Count: 1}, top[3])
	assert.Equal(t, ValueCount{Value: "q", Count: 1}, top[4])
}

func TestBuildNullHandling(t *testing.T) {
	content := []string{
		"a,b",
		"1,x",
		",y",
		"3,",
		",",
	}

	cat := NewBuilder(WithFileSizer(fixedSizer(0))).Build("n.csv", content)

	a := cat.Column("a")
	assert.Equal(t, 2, a.NullCount)
	assert.Equal(t, 50.0, a.NullPercentage())
	assert.Equal(t, TypeInteger, a.DataType)

	b := cat.Column("b")
	assert.Equal(t, 2, b.NullCount)
	assert.Equal(t, 2, b.UniqueCount())
}

// Rows shorter than the header contribute nulls for the missing trailing
// columns instead of failing the scan.
func TestBuildShortRows(t *testing.T) {
	content := []string{
		"a,b,c",
		"1,2,3",
		"4,5",
		"6",
	}

	cat := NewBuilder(WithFileSizer(fixedSizer(0))).Build("short.csv", content)

	assert.Equal(t, 3, cat.RowCount)
	assert.Equal(t, 0, cat.Column("a").NullCount)
	assert.Equal(t, 1, cat.Column("b").NullCount)
	assert.Equal(t, 2, cat.Column("c").NullCount)
}

func TestBuildDelimiterDetection(t *testing.T) {
	assert.Equal(t, ";", DetectDelimiter("a;b;c"))
	assert.Equal(t, "\t", DetectDelimiter("a\tb\tc"))
	assert.Equal(t, "|", DetectDelimiter("a|b|c"))
	assert.Equal(t, ",", DetectDelimiter("plain line"))
	// greatest field count wins
	assert.Equal(t, ";", DetectDelimiter("a,b;c;d;e"))
	// ties break toward the earlier candidate, comma first
	assert.Equal(t, ",", DetectDelimiter("a,b;c"))
}

func TestBuildSemicolonDelimited(t *testing.T) {
	content := []string{
		"id;label",
		"1;alpha",
		"2;beta",
	}

	cat := NewBuilder(WithFileSizer(fixedSizer(0))).Build("semi.csv", content)

	assert.Equal(t, ";", cat.Delimiter)
	assert.Equal(t, []string{"id", "label"}, cat.Headers)
	assert.Equal(t, 2, cat.RowCount)
}

func TestBuildEmptyContent(t *testing.T) {
	cat := NewBuilder(WithFileSizer(fixedSizer(0))).Build("empty.csv", nil)

	assert.Equal(t, 0, cat.RowCount)
	assert.Equal(t, 0, cat.ColumnCount)
	assert.Empty(t, cat.Headers)
	assert.Empty(t, cat.Columns)
}

func TestBuildHeaderOnly(t *testing.T) {
	cat := NewBuilder(WithFileSizer(fixedSizer(0))).Build("h.csv", []string{"a,b,c"})

	assert.Equal(t, 0, cat.RowCount)
	assert.Equal(t, 3, cat.ColumnCount)
	assert.Equal(t, []string{"a", "b", "c"}, cat.Headers)

	col := cat.Column("a")
	require.NotNil(t, col)
	assert.Equal(t, TypeUnknown, col.DataType)
	assert.Equal(t, 0, col.UniqueCount())
	assert.Equal(t, 0.0, col.NullPercentage())
}

func TestBuildHeaderless(t *testing.T) {
	content := []string{
		"abc,1234.001,qwert,2025/04/07",
		"def,99.5,asdf,2025/04/08",
	}

	cat := NewBuilder(WithFileSizer(fixedSizer(0)), WithHasHeader(false)).Build("raw.csv", content)

	assert.False(t, cat.HasHeader)
	assert.Equal(t, []string{"Column1", "Column2", "Column3", "Column4"}, cat.Headers)
	assert.Equal(t, 2, cat.RowCount)
	assert.Equal(t, TypeString, cat.Column("Column1").DataType)
	assert.Equal(t, TypeFloat, cat.Column("Column2").DataType)
	assert.Equal(t, TypeDate, cat.Column("Column4").DataType)
}

func TestBuildSkipsBlankLines(t *testing.T) {
	content := []string{
		"a,b",
		"",
		"1,2",
		"   ",
		"3,4",
	}

	cat := NewBuilder(WithFileSizer(fixedSizer(0))).Build("blank.csv", content)
	assert.Equal(t, 2, cat.RowCount)
}

func TestBuildSampleTruncation(t *testing.T) {
	content := []string{"v"}
	for i := 0; i < 50; i++ {
		content = append(content, "value")
	}

	cat := NewBuilder(WithFileSizer(fixedSizer(0))).Build("s.csv", content)

	col := cat.Column("v")
	assert.Len(t, col.SampleValues, retainedSampleCap)
	assert.Equal(t, 50, col.RowCount)
	assert.Equal(t, 1, col.UniqueCount())
}

// Catalog invariants: unique_count bounded by row_count, null_percentage
// within [0, 100].
func TestBuildCatalogBounds(t *testing.T) {
	content := []string{
		"a,b,c",
		"1,,x",
		"2,,x",
		"1,,y",
	}

	cat := NewBuilder(WithFileSizer(fixedSizer(0))).Build("bounds.csv", content)

	for _, header := range cat.Headers {
		col := cat.Column(header)
		assert.GreaterOrEqual(t, col.UniqueCount(), 0)
		assert.LessOrEqual(t, col.UniqueCount(), col.RowCount)
		assert.GreaterOrEqual(t, col.NullPercentage(), 0.0)
		assert.LessOrEqual(t, col.NullPercentage(), 100.0)
	}
	assert.Equal(t, 100.0, cat.Column("b").NullPercentage())
}

func TestBuildFirstSeenTypeWins(t *testing.T) {
	content := []string{
		"mixed",
		"123",
		"abc",
		"def",
	}

	cat := NewBuilder(WithFileSizer(fixedSizer(0))).Build("m.csv", content)
	assert.Equal(t, TypeInteger, cat.Column("mixed").DataType)
}

func TestBuildMajorityResolver(t *testing.T) {
	content := []string{
		"mixed",
		"123",
		"abc",
		"def",
	}

	b := NewBuilder(WithFileSizer(fixedSizer(0)), WithResolver(MajorityResolver{}))
	cat := b.Build("m.csv", content)
	assert.Equal(t, TypeString, cat.Column("mixed").DataType)
}
