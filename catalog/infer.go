package catalog

import (
	"regexp"
	"strconv"
	"strings"
)

// Date shapes recognized by Infer. Shape only: month 13 still matches, which
// mirrors the permissiveness of the profiling scan rather than a calendar check.
var datePatterns = []*regexp.Regexp{
	regexp.MustCompile(`^\d{4}/\d{1,2}/\d{1,2}$`), // YYYY/M/D
	regexp.MustCompile(`^\d{1,2}/\d{1,2}/\d{4}$`), // M/D/YYYY
	regexp.MustCompile(`^\d{4}-\d{1,2}-\d{1,2}$`), // YYYY-M-D
}

var booleanTokens = map[string]struct{}{
	"true": {}, "false": {},
	"yes": {}, "no": {},
	"y": {}, "n": {},
	"t": {}, "f": {},
	"1": {}, "0": {},
}

// Infer classifies a raw string value into a DataType. The check order is
// load-bearing: integers are tested before booleans so bare "1"/"0" resolve
// to Integer, and only non-digit boolean tokens reach the boolean branch.
func Infer(value string) DataType {
	clean := strings.TrimSpace(value)

	if clean == "" || strings.EqualFold(clean, "null") {
		return TypeNull
	}

	if _, err := strconv.ParseInt(clean, 10, 64); err == nil {
		return TypeInteger
	}

	if _, err := strconv.ParseFloat(clean, 64); err == nil {
		return TypeFloat
	}

	for _, pattern := range datePatterns {
		if pattern.MatchString(clean) {
			return TypeDate
		}
	}

	if _, ok := booleanTokens[strings.ToLower(clean)]; ok {
		return TypeBoolean
	}

	return TypeString
}
