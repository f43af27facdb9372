package helpers

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCollapseWhitespace(t *testing.T) {
	assert.Equal(t, "Waterproof Car Cover", CollapseWhitespace("  Waterproof \n\t Car   Cover  "))
	assert.Equal(t, "₹ 1,299", CollapseWhitespace("₹\n1,299"))
	assert.Equal(t, "", CollapseWhitespace("   \n\t "))
	assert.Equal(t, "", CollapseWhitespace(""))
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short title", Truncate("short title", 50))
	// The ellipsis counts against the limit
	assert.Equal(t, "ab...", Truncate("abcdefgh", 5))
	// Exact boundary stays untouched
	assert.Equal(t, "abcde", Truncate("abcde", 5))
	// Multi-byte text is cut on rune boundaries
	assert.Equal(t, "₹ 1,...", Truncate("₹ 1,299 only", 7))
	assert.Equal(t, "₹₹₹", Truncate("₹₹₹₹₹", 3))
}
