package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/text/currency"
)

type OrderStatus int

const (
	OrderOpen OrderStatus = iota
	OrderFinalized
)

func (s OrderStatus) String() string {
	switch s {
	case OrderOpen:
		return "open"
	case OrderFinalized:
		return "finalized"
	default:
		return "unknown"
	}
}

// Order ties one customer to one cart. It moves from open to finalized
// exactly once, and the cart cannot change after that.
type Order struct {
	id         uuid.UUID
	customer   Customer
	cart       *Cart
	status     OrderStatus
	finishedAt time.Time
}

func NewOrder(id uuid.UUID, customer Customer, cur currency.Unit) (*Order, error) {
	if id == uuid.Nil {
		return nil, fmt.Errorf("order id is empty")
	}

	return &Order{
		id:       id,
		customer: customer,
		cart:     NewCart(cur),
		status:   OrderOpen,
	}, nil
}

func (o *Order) ID() uuid.UUID {
	return o.id
}

func (o *Order) Customer() Customer {
	return o.customer
}

func (o *Order) Status() OrderStatus {
	return o.status
}

func (o *Order) FinishedAt() time.Time {
	return o.finishedAt
}

func (o *Order) Cart() CartView {
	return o.cart.View()
}

func (o *Order) AddItem(item Item) error {
	if o.status != OrderOpen {
		return ErrOrderFinalized
	}
	if item.Price.Currency.String() != o.cart.Currency().String() {
		return fmt.Errorf("item[%s] currency[%s] does not match order currency[%s]: %w",
			item.Name, item.Price.Currency, o.cart.Currency(), ErrCurrencyMismatch)
	}

	o.cart.AddItem(item)

	return nil
}

func (o *Order) RemoveItem(position int) (Item, error) {
	if o.status != OrderOpen {
		return Item{}, ErrOrderFinalized
	}

	item, err := o.cart.RemoveItem(position)
	if err != nil {
		return Item{}, fmt.Errorf("cart.RemoveItem: %w", err)
	}

	return item, nil
}

// Finish finalizes the order. An empty order stays open.
func (o *Order) Finish(now time.Time) (Summary, error) {
	if o.status != OrderOpen {
		return Summary{}, ErrOrderFinalized
	}
	if o.cart.IsEmpty() {
		return Summary{}, ErrEmptyOrder
	}

	o.status = OrderFinalized
	o.finishedAt = now

	view := o.cart.View()

	return Summary{
		OrderID:    o.id,
		Customer:   o.customer,
		Items:      view.Items,
		Subtotal:   view.Subtotal,
		Discount:   view.Discount,
		Total:      view.Total,
		FinishedAt: now,
	}, nil
}

type Summary struct {
	OrderID    uuid.UUID
	Customer   Customer
	Items      []Item
	Subtotal   Money
	Discount   Money
	Total      Money
	FinishedAt time.Time
}
