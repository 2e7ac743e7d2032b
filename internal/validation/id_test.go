package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidObjectID(t *testing.T) {
	valid := []string{
		"507f1f77bcf86cd799439011",
		"aaaaaaaaaaaaaaaaaaaaaaaa",
		"ABCDEF0123456789abcdef01",
	}
	for _, id := range valid {
		assert.True(t, IsValidObjectID(id), "expected %q to be valid", id)
	}

	invalid := []string{
		"",
		"507f1f77bcf86cd79943901",   // 23 chars
		"507f1f77bcf86cd7994390111", // 25 chars
		"507f1f77bcf86cd79943901g",  // non-hex
		"507f1f77-bcf8-6cd7-9943",   // uuid-ish
		strings.Repeat(" ", 24),
	}
	for _, id := range invalid {
		assert.False(t, IsValidObjectID(id), "expected %q to be invalid", id)
	}
}
