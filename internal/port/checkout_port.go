package port

import (
	"github.com/google/uuid"
	"github.com/nikolayk812/virtualstore/internal/domain"
)

type Checkout interface {
	OrderID() uuid.UUID
	Customer() domain.Customer
	Products() []domain.Item
	AddProduct(position int) (domain.Item, error)
	RemoveItem(position int) (domain.Item, error)
	Cart() domain.CartView
	Finish() (domain.Summary, error)
}

type IDGenerator interface {
	NewID() (uuid.UUID, error)
}
