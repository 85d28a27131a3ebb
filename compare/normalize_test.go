package compare

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeNumberBasic(t *testing.T) {
	assert.Equal(t, "1234.001", NormalizeNumber("1234.00100", 3))
	assert.Equal(t, "1234.000", NormalizeNumber("1234.00000", 3))
	assert.Equal(t, "3.14", NormalizeNumber("3.14159", 2))
	assert.Equal(t, "-0.500", NormalizeNumber("-0.5", 3))
	assert.Equal(t, "7.0000", NormalizeNumber("7.0", 4))
}

// Two numeric tokens agree after normalization iff they round to the same
// value at the requested precision.
func TestNormalizeNumberPrecisionEquivalence(t *testing.T) {
	assert.Equal(t, NormalizeNumber("1234.001", 2), NormalizeNumber("1234.004", 2))
	assert.Equal(t, "1234.00", NormalizeNumber("1234.001", 2))
	assert.Equal(t, "1234.00", NormalizeNumber("1234.004", 2))

	assert.NotEqual(t, NormalizeNumber("1234.001", 3), NormalizeNumber("1234.004", 3))
}

// Rounding is half-to-even; pinned on values exactly representable in binary.
func TestNormalizeNumberRoundingMode(t *testing.T) {
	assert.Equal(t, "0.12", NormalizeNumber("0.125", 2))
	assert.Equal(t, "0.38", NormalizeNumber("0.375", 2))
	assert.Equal(t, "2.2", NormalizeNumber("2.25", 1))
	assert.Equal(t, "2.8", NormalizeNumber("2.75", 1))
}

func TestNormalizeNumberIdempotence(t *testing.T) {
	for _, token := range []string{"1234.56789", "-0.001", "42.0", "999.999"} {
		for _, precision := range []int{0, 1, 2, 3, 5} {
			once := NormalizeNumber(token, precision)
			twice := NormalizeNumber(once, precision)
			assert.Equal(t, once, twice, "normalize(%q, %d) not idempotent", token, precision)
		}
	}
}

// The pattern is intentionally narrow: only plain decimal notation is
// rewritten.
func TestNormalizeNumberPassThrough(t *testing.T) {
	passThrough := []string{
		"1234",       // integer, no decimal point
		"-42",        // negative integer
		"1e5",        // exponent
		"1.5e-3",     // exponent
		"$12.50",     // currency prefix
		"1,234.56",   // thousands separator
		"abc",        // not numeric
		"12.34.56",   // not a number
		"2025/04/07", // date
		"",           // empty
		".5",         // no integer part
		"5.",         // no fractional part
	}
	for _, token := range passThrough {
		assert.Equal(t, token, NormalizeNumber(token, 3), "token %q should pass through", token)
	}
}

func TestNormalizeNumberNegativePrecisionClamped(t *testing.T) {
	assert.Equal(t, "3", NormalizeNumber("3.4", -1))
}

func TestNormalizeLine(t *testing.T) {
	assert.Equal(t, "abc,1234.001,qwert", NormalizeLine("abc, 1234.00100 ,qwert", 3))
	assert.Equal(t, "", NormalizeLine("", 3))
	assert.Equal(t, "plain text", NormalizeLine("plain text", 3))
	assert.Equal(t, "1.50,2.25", NormalizeLine("1.5,2.25", 2))
}

func TestNormalizeContentCommaJudged(t *testing.T) {
	content := []string{
		"a,b",
		"1.234567,x",
	}
	normalized := NormalizeContent(content, 2)
	assert.Equal(t, []string{"a,b", "1.23,x"}, normalized)
}

func TestNormalizeContentNonCSVUntouched(t *testing.T) {
	content := []string{
		"just a line with 1.23456 in it",
		"another line",
	}
	assert.Equal(t, content, NormalizeContent(content, 2))
}

func TestNormalizeContentFirstNonEmptyLineDecides(t *testing.T) {
	content := []string{
		"",
		"a,b",
		"1.999,2",
	}
	normalized := NormalizeContent(content, 1)
	assert.Equal(t, "2.0,2", normalized[2])
}
