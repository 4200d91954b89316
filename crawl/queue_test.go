package crawl

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestURLSet(t *testing.T) {
	s := NewURLSet()

	assert.True(t, s.Add("a"))
	assert.True(t, s.Add("b"))
	assert.False(t, s.Add("a"), "duplicate must be rejected")
	assert.True(t, s.Add("c"))

	assert.Equal(t, 3, s.Len())
	assert.Equal(t, []string{"a", "b", "c"}, s.All(), "first-discovery order preserved")
}
