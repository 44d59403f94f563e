package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
)

var (
	// DiscountThreshold is the subtotal a cart must exceed to get a discount.
	DiscountThreshold = decimal.NewFromInt(1000)
	// DiscountRate is the share of the subtotal taken off above the threshold.
	DiscountRate = decimal.RequireFromString("0.10")
)

type Cart struct {
	items    []Item
	currency currency.Unit
}

func NewCart(cur currency.Unit) *Cart {
	return &Cart{currency: cur}
}

func (c *Cart) AddItem(item Item) {
	c.items = append(c.items, item)
}

// RemoveItem removes the item at the 1-based position and returns it.
// The cart is left untouched when the position is out of range.
func (c *Cart) RemoveItem(position int) (Item, error) {
	if position < 1 || position > len(c.items) {
		return Item{}, fmt.Errorf("position[%d] out of range [1, %d]: %w", position, len(c.items), ErrInvalidPosition)
	}

	idx := position - 1
	removed := c.items[idx]
	c.items = append(c.items[:idx], c.items[idx+1:]...)

	return removed, nil
}

func (c *Cart) Items() []Item {
	return append([]Item(nil), c.items...)
}

func (c *Cart) Len() int {
	return len(c.items)
}

func (c *Cart) IsEmpty() bool {
	return len(c.items) == 0
}

func (c *Cart) Currency() currency.Unit {
	return c.currency
}

func (c *Cart) Subtotal() Money {
	subtotal := ZeroMoney(c.currency)
	for _, item := range c.items {
		subtotal = subtotal.Add(item.Price)
	}

	return subtotal
}

func (c *Cart) Discount() Money {
	return discountFor(c.Subtotal())
}

func (c *Cart) Total() Money {
	subtotal := c.Subtotal()
	return subtotal.Sub(discountFor(subtotal))
}

func (c *Cart) View() CartView {
	subtotal := c.Subtotal()
	discount := discountFor(subtotal)

	return CartView{
		Items:    c.Items(),
		Subtotal: subtotal,
		Discount: discount,
		Total:    subtotal.Sub(discount),
	}
}

func discountFor(subtotal Money) Money {
	if !subtotal.Amount.GreaterThan(DiscountThreshold) {
		return ZeroMoney(subtotal.Currency)
	}

	return subtotal.Mul(DiscountRate)
}

// CartView is a snapshot of a cart for display.
type CartView struct {
	Items    []Item
	Subtotal Money
	Discount Money
	Total    Money
}

func (v CartView) IsEmpty() bool {
	return len(v.Items) == 0
}
