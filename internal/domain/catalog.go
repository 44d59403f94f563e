package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
)

type Item struct {
	Name  string
	Price Money
}

// Catalog is the fixed list of products offered by the store.
// Positions are 1-based, matching what the customer sees on the menu.
type Catalog struct {
	items    []Item
	currency currency.Unit
}

func NewCatalog(cur currency.Unit, items ...Item) (Catalog, error) {
	for i, item := range items {
		if item.Name == "" {
			return Catalog{}, fmt.Errorf("item[%d] name is empty", i+1)
		}
		if item.Price.IsNegative() {
			return Catalog{}, fmt.Errorf("item[%s] price is negative", item.Name)
		}
		if item.Price.Currency.String() != cur.String() {
			return Catalog{}, fmt.Errorf("item[%s] currency[%s] does not match catalog currency[%s]",
				item.Name, item.Price.Currency, cur)
		}
	}

	return Catalog{
		items:    append([]Item(nil), items...),
		currency: cur,
	}, nil
}

// MustCatalog is like NewCatalog but panics on invalid items.
func MustCatalog(cur currency.Unit, items ...Item) Catalog {
	c, err := NewCatalog(cur, items...)
	if err != nil {
		panic(fmt.Sprintf("domain.NewCatalog: %v", err))
	}
	return c
}

// DefaultCatalog returns the store's products priced in cur.
func DefaultCatalog(cur currency.Unit) Catalog {
	price := func(v int64) Money {
		return NewMoney(decimal.NewFromInt(v), cur)
	}

	return MustCatalog(cur,
		Item{Name: "Mouse Gamer", Price: price(120)},
		Item{Name: "Mecanic Keyboard", Price: price(250)},
		Item{Name: "Headset", Price: price(180)},
		Item{Name: `Monitor 24"`, Price: price(900)},
		Item{Name: "Gamer Chair", Price: price(1100)},
	)
}

func (c Catalog) Currency() currency.Unit {
	return c.currency
}

func (c Catalog) Len() int {
	return len(c.items)
}

func (c Catalog) Items() []Item {
	return append([]Item(nil), c.items...)
}

func (c Catalog) Item(position int) (Item, error) {
	if position < 1 || position > len(c.items) {
		return Item{}, fmt.Errorf("position[%d] out of range [1, %d]: %w", position, len(c.items), ErrInvalidPosition)
	}

	return c.items[position-1], nil
}
