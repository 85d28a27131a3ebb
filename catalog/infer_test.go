package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInferNull(t *testing.T) {
	assert.Equal(t, TypeNull, Infer(""))
	assert.Equal(t, TypeNull, Infer("   "))
	assert.Equal(t, TypeNull, Infer("null"))
	assert.Equal(t, TypeNull, Infer("NULL"))
	assert.Equal(t, TypeNull, Infer("Null"))
}

func TestInferInteger(t *testing.T) {
	assert.Equal(t, TypeInteger, Infer("42"))
	assert.Equal(t, TypeInteger, Infer("-17"))
	assert.Equal(t, TypeInteger, Infer("0"))
	assert.Equal(t, TypeInteger, Infer(" 123 "))
}

func TestInferFloat(t *testing.T) {
	assert.Equal(t, TypeFloat, Infer("3.14"))
	assert.Equal(t, TypeFloat, Infer("-0.5"))
	assert.Equal(t, TypeFloat, Infer("1e5"))
	assert.Equal(t, TypeFloat, Infer(".5"))
}

func TestInferDate(t *testing.T) {
	assert.Equal(t, TypeDate, Infer("2025/04/07"))
	assert.Equal(t, TypeDate, Infer("2025/4/7"))
	assert.Equal(t, TypeDate, Infer("4/7/2025"))
	assert.Equal(t, TypeDate, Infer("2025-04-07"))
	assert.Equal(t, TypeDate, Infer("2025-4-7"))

	// shape only, no calendar validation
	assert.Equal(t, TypeDate, Infer("2025/13/45"))
}

func TestInferBoolean(t *testing.T) {
	assert.Equal(t, TypeBoolean, Infer("true"))
	assert.Equal(t, TypeBoolean, Infer("FALSE"))
	assert.Equal(t, TypeBoolean, Infer("yes"))
	assert.Equal(t, TypeBoolean, Infer("No"))
	assert.Equal(t, TypeBoolean, Infer("y"))
	assert.Equal(t, TypeBoolean, Infer("t"))
}

// Check order resolves the integer/boolean overlap: bare digits never reach
// the boolean branch.
func TestInferOrderIntegerWinsOverBoolean(t *testing.T) {
	assert.Equal(t, TypeInteger, Infer("1"))
	assert.Equal(t, TypeInteger, Infer("0"))
}

func TestInferString(t *testing.T) {
	assert.Equal(t, TypeString, Infer("hello"))
	assert.Equal(t, TypeString, Infer("2025/04"))
	assert.Equal(t, TypeString, Infer("$12.50"))
	assert.Equal(t, TypeString, Infer("12.5.3"))
}
