package checkout

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/nikolayk812/virtualstore/internal/domain"
	"github.com/nikolayk812/virtualstore/internal/port"
	"go.uber.org/zap"
)

type session struct {
	catalog domain.Catalog
	order   *domain.Order
	now     func() time.Time
	logger  *zap.Logger
}

type options struct {
	ids    port.IDGenerator
	now    func() time.Time
	logger *zap.Logger
}

type Option func(*options)

func WithIDGenerator(ids port.IDGenerator) Option {
	return func(o *options) {
		o.ids = ids
	}
}

func WithClock(now func() time.Time) Option {
	return func(o *options) {
		o.now = now
	}
}

func WithLogger(logger *zap.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// NewSession opens an order for customer against catalog.
func NewSession(catalog domain.Catalog, customer domain.Customer, opts ...Option) (port.Checkout, error) {
	o := options{
		ids:    RandomIDs{},
		now:    time.Now,
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(&o)
	}

	id, err := o.ids.NewID()
	if err != nil {
		return nil, fmt.Errorf("ids.NewID: %w", err)
	}

	order, err := domain.NewOrder(id, customer, catalog.Currency())
	if err != nil {
		return nil, fmt.Errorf("domain.NewOrder: %w", err)
	}

	logger := o.logger.With(zap.String("order_id", id.String()))
	logger.Info("order opened",
		zap.String("customer_name", customer.Name),
		zap.String("customer_email", customer.Email))

	return &session{
		catalog: catalog,
		order:   order,
		now:     o.now,
		logger:  logger,
	}, nil
}

func (s *session) OrderID() uuid.UUID {
	return s.order.ID()
}

func (s *session) Customer() domain.Customer {
	return s.order.Customer()
}

func (s *session) Products() []domain.Item {
	return s.catalog.Items()
}

func (s *session) AddProduct(position int) (domain.Item, error) {
	item, err := s.catalog.Item(position)
	if err != nil {
		s.logger.Warn("product lookup failed", zap.Int("position", position), zap.Error(err))
		return domain.Item{}, fmt.Errorf("catalog.Item: %w", err)
	}

	if err := s.order.AddItem(item); err != nil {
		s.logger.Warn("add item rejected", zap.String("item", item.Name), zap.Error(err))
		return domain.Item{}, fmt.Errorf("order.AddItem: %w", err)
	}

	s.logger.Info("item added", zap.String("item", item.Name), zap.Stringer("price", item.Price))

	return item, nil
}

func (s *session) RemoveItem(position int) (domain.Item, error) {
	item, err := s.order.RemoveItem(position)
	if err != nil {
		s.logger.Warn("remove item rejected", zap.Int("position", position), zap.Error(err))
		return domain.Item{}, fmt.Errorf("order.RemoveItem: %w", err)
	}

	s.logger.Info("item removed", zap.Int("position", position), zap.String("item", item.Name))

	return item, nil
}

func (s *session) Cart() domain.CartView {
	return s.order.Cart()
}

func (s *session) Finish() (domain.Summary, error) {
	summary, err := s.order.Finish(s.now())
	if err != nil {
		s.logger.Warn("finish rejected", zap.Error(err))
		return domain.Summary{}, fmt.Errorf("order.Finish: %w", err)
	}

	s.logger.Info("order finalized",
		zap.Int("items", len(summary.Items)),
		zap.Stringer("subtotal", summary.Subtotal),
		zap.Stringer("discount", summary.Discount),
		zap.Stringer("total", summary.Total))

	return summary, nil
}

// RandomIDs generates version 4 order ids.
type RandomIDs struct{}

func (RandomIDs) NewID() (uuid.UUID, error) {
	return uuid.NewRandom()
}
