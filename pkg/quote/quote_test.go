package quote

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultPoolPicksFromPool(t *testing.T) {
	p := Default()
	assert.Equal(t, len(Quotes()), p.Len())
	for i := 0; i < 100; i++ {
		assert.True(t, p.Contains(p.Pick()))
	}
}

func TestNewPoolFallsBackToDefaults(t *testing.T) {
	assert.Equal(t, Default().Len(), NewPool(nil).Len())
}

func TestNewPoolCopiesInput(t *testing.T) {
	in := []string{"only"}
	p := NewPool(in)
	in[0] = "changed"

	assert.Equal(t, "only", p.Pick())
	assert.False(t, p.Contains("changed"))
}

func TestFixed(t *testing.T) {
	var s Source = Fixed("same")
	assert.Equal(t, "same", s.Pick())
	assert.Equal(t, "same", s.Pick())
}
