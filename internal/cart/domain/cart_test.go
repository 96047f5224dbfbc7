package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCartRemoveKeepsOrder(t *testing.T) {
	c := Cart{Items: []LineItem{{ID: 4, Quantity: 1}, {ID: 1, Quantity: 2}, {ID: 6, Quantity: 1}}}

	c.Remove(1)
	c.Remove(9)

	assert.Equal(t, []LineItem{{ID: 4, Quantity: 1}, {ID: 6, Quantity: 1}}, c.Items)
	assert.Equal(t, 2, c.Count())
}

func TestCartAddResetsQuantity(t *testing.T) {
	var c Cart
	c.Add(LineItem{ID: 2, Quantity: 7})
	c.Add(LineItem{ID: 2, Quantity: 7})

	assert.Len(t, c.Items, 1)
	assert.Equal(t, 2, c.Items[0].Quantity)
}

func TestCartDecreaseReportsQuantity(t *testing.T) {
	c := Cart{Items: []LineItem{{ID: 3, Quantity: 1}}}

	qty, ok := c.Decrease(3)
	assert.True(t, ok)
	assert.Equal(t, 0, qty)

	_, ok = c.Decrease(8)
	assert.False(t, ok)
}

func TestCartTotal(t *testing.T) {
	assert.Equal(t, Money{}, Cart{}.Total())

	c := Cart{Items: []LineItem{
		{ID: 3, Price: Money{Currency: "USD", Amount: 1499}, Quantity: 2},
		{ID: 2, Price: Money{Currency: "USD", Amount: 2499}, Quantity: 1},
	}}
	assert.Equal(t, Money{Currency: "USD", Amount: 5497}, c.Total())
	assert.Equal(t, "54.97", c.Total().Decimal().StringFixed(2))
}
