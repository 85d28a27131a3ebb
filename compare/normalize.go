package compare

import (
	"regexp"
	"strconv"
	"strings"
)

// numberPattern matches plain decimal notation only: an optional minus sign,
// digits, a decimal point, digits. Integers, exponents, thousands separators
// and currency prefixes are deliberately left untouched.
var numberPattern = regexp.MustCompile(`^-?\d+\.\d+$`)

// NormalizeNumber rewrites a numeric-looking token to exactly precision
// digits after the decimal point. Rounding is round-half-to-even over the
// decimal expansion of the nearest binary float, which is what
// strconv.FormatFloat produces. Tokens that do not match the pattern, or
// that fail to parse, are returned unchanged.
func NormalizeNumber(token string, precision int) string {
	if precision < 0 {
		precision = 0
	}
	if !numberPattern.MatchString(token) {
		return token
	}
	value, err := strconv.ParseFloat(token, 64)
	if err != nil {
		return token
	}
	return strconv.FormatFloat(value, 'f', precision, 64)
}

// NormalizeLine splits a comma-delimited line, trims and normalizes each
// field, and rejoins with commas. An empty line maps to itself.
func NormalizeLine(line string, precision int) string {
	if line == "" {
		return line
	}

	parts := strings.Split(line, ",")
	for i, part := range parts {
		parts[i] = NormalizeNumber(strings.TrimSpace(part), precision)
	}
	return strings.Join(parts, ",")
}

// NormalizeContent applies line normalization to comma-separated content.
// Content whose first non-empty line carries no comma is passed through
// untouched; line normalization assumes comma delimiting.
func NormalizeContent(content []string, precision int) []string {
	if !isCommaSeparated(content) {
		return content
	}

	normalized := make([]string, len(content))
	for i, line := range content {
		normalized[i] = NormalizeLine(line, precision)
	}
	return normalized
}

func isCommaSeparated(content []string) bool {
	for _, line := range content {
		if strings.TrimSpace(line) == "" {
			continue
		}
		return strings.Contains(line, ",")
	}
	return false
}
