package domain

import (
	"slices"

	"github.com/shopspring/decimal"
)

// Money is an amount in minor units (cents).
type Money struct {
	Currency string
	Amount   int64
}

func (m Money) Decimal() decimal.Decimal {
	return decimal.New(m.Amount, -2)
}

func (m Money) Mul(n int) Money {
	return Money{Currency: m.Currency, Amount: m.Amount * int64(n)}
}

// LineItem keeps a copy of the product's display fields taken when it was
// first added. ID is the product id and the line item's key.
type LineItem struct {
	ID       int
	Name     string
	Price    Money
	Image    string
	Quantity int
}

func (li LineItem) Total() Money {
	return li.Price.Mul(li.Quantity)
}

// Cart is ordered by first add. It holds at most one line item per ID and
// never a line item with a quantity below 1.
type Cart struct {
	Items []LineItem
}

func (c Cart) IsEmpty() bool {
	return len(c.Items) == 0
}

func (c Cart) Has(id int) bool {
	return c.indexOf(id) >= 0
}

func (c Cart) Item(id int) (LineItem, bool) {
	i := c.indexOf(id)
	if i < 0 {
		return LineItem{}, false
	}
	return c.Items[i], true
}

// Count is the sum of quantities.
func (c Cart) Count() int {
	n := 0
	for _, it := range c.Items {
		n += it.Quantity
	}
	return n
}

// Total is the sum of price times quantity. The currency is taken from the
// first line item; an empty cart totals to the zero Money.
func (c Cart) Total() Money {
	var total Money
	for i, it := range c.Items {
		if i == 0 {
			total.Currency = it.Price.Currency
		}
		total.Amount += it.Total().Amount
	}
	return total
}

// Add increments the existing line item for item.ID or appends item with a
// quantity of one.
func (c *Cart) Add(item LineItem) {
	if i := c.indexOf(item.ID); i >= 0 {
		c.Items[i].Quantity++
		return
	}
	item.Quantity = 1
	c.Items = append(c.Items, item)
}

func (c *Cart) Increase(id int) bool {
	i := c.indexOf(id)
	if i < 0 {
		return false
	}
	c.Items[i].Quantity++
	return true
}

// Decrease lowers the quantity by one and reports the new quantity. A
// result of zero or less leaves the item in place; callers remove it.
func (c *Cart) Decrease(id int) (int, bool) {
	i := c.indexOf(id)
	if i < 0 {
		return 0, false
	}
	c.Items[i].Quantity--
	return c.Items[i].Quantity, true
}

func (c *Cart) Remove(id int) {
	c.Items = slices.DeleteFunc(c.Items, func(it LineItem) bool { return it.ID == id })
}

func (c *Cart) Clear() {
	c.Items = nil
}

func (c Cart) indexOf(id int) int {
	return slices.IndexFunc(c.Items, func(it LineItem) bool { return it.ID == id })
}
