package orders

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTotal(t *testing.T) {
	items := []Item{
		{ProductID: "p1", Name: "Diamond Sword", Price: 10, Quantity: 2},
		{ProductID: "p2", Name: "VIP Rank", Price: 5, Quantity: 1},
	}
	assert.Equal(t, 25.00, Total(items))
}

func TestTotalRoundsToTwoDecimals(t *testing.T) {
	// 3 * 0.1 accumulates float error without rounding
	items := []Item{{ProductID: "p1", Price: 0.1, Quantity: 3}}
	assert.Equal(t, 0.3, Total(items))

	items = []Item{
		{ProductID: "p1", Price: 12.99, Quantity: 3},
		{ProductID: "p2", Price: 10.49, Quantity: 1},
	}
	assert.Equal(t, 49.46, Total(items))
}

func TestTotalEmpty(t *testing.T) {
	assert.Equal(t, 0.0, Total(nil))
}
