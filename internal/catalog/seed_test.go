package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultProducts(t *testing.T) {
	assert.Len(t, DefaultProducts, 4)

	seen := map[string]bool{}
	for _, p := range DefaultProducts {
		assert.NotEmpty(t, p.Name)
		assert.NotEmpty(t, p.Category)
		assert.GreaterOrEqual(t, p.Price, 0.0)
		assert.False(t, seen[p.Name], "duplicate seed product %q", p.Name)
		seen[p.Name] = true
	}
}
