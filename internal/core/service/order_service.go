package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/liquidglass/storefront-api/internal/core/domain"
	"github.com/liquidglass/storefront-api/internal/core/ports"
)

// DedupChecker abstracts the idempotency cache (Redis). The snapshot remains
// the source of truth; the cache only short-circuits replay lookups.
type DedupChecker interface {
	IsDuplicate(ctx context.Context, key string) (bool, error)
	Mark(ctx context.Context, key string) error
}

// noopDedup is used when no Redis is configured; every key looks new and the
// snapshot scan decides.
type noopDedup struct{}

func (noopDedup) IsDuplicate(context.Context, string) (bool, error) { return false, nil }
func (noopDedup) Mark(context.Context, string) error                { return nil }

// OrderService implements the checkout workflow and admin order management.
type OrderService struct {
	store ports.Store
	dedup DedupChecker
	log   zerolog.Logger
}

// NewOrderService returns an OrderService. A nil dedup disables the
// idempotency cache without changing replay semantics.
func NewOrderService(store ports.Store, dedup DedupChecker, log zerolog.Logger) *OrderService {
	if dedup == nil {
		dedup = noopDedup{}
	}
	return &OrderService{store: store, dedup: dedup, log: log}
}

// errOrderReplayed aborts the store update when the idempotency key matched
// an existing order; nothing is written.
var errOrderReplayed = errors.New("order already created")

// CreateOrder validates the request, then appends the order and decrements
// stock for every matched line item inside one serialized store update, so
// two concurrent checkouts cannot read the same stock level. Products that no
// longer exist are skipped; stock never drops below zero.
func (s *OrderService) CreateOrder(ctx context.Context, input ports.CreateOrderInput) (*ports.OrderResult, error) {
	if err := validateOrderInput(input); err != nil {
		return nil, err
	}

	if input.IdempotencyKey != "" {
		if dup, err := s.dedup.IsDuplicate(ctx, input.IdempotencyKey); err != nil {
			s.log.Warn().Err(err).Msg("dedup check failed, falling back to snapshot scan")
		} else if dup {
			s.log.Debug().Str("idempotency_key", input.IdempotencyKey).Msg("idempotency cache hit")
		}
		// Hit or miss, the snapshot decides: the cache entry may have expired,
		// and the scan must share the critical section with the insert so two
		// concurrent retries cannot both pass it.
	}

	now := time.Now().UTC()
	order := domain.Order{
		ID:              "order_" + uuid.NewString(),
		Total:           input.Total,
		ShippingAddress: input.ShippingAddress,
		PaymentMethod:   input.PaymentMethod,
		Status:          domain.StatusPending,
		IdempotencyKey:  input.IdempotencyKey,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	for _, item := range input.Items {
		order.Items = append(order.Items, domain.OrderItem{
			ProductID: item.ProductID,
			Name:      item.Name,
			Price:     item.Price,
			Quantity:  item.Quantity,
		})
	}

	var replayed *domain.Order
	err := s.store.Update(ctx, func(snap *domain.Snapshot) error {
		if order.IdempotencyKey != "" {
			for i := range snap.Orders {
				if snap.Orders[i].IdempotencyKey == order.IdempotencyKey {
					prev := snap.Orders[i]
					replayed = &prev
					return errOrderReplayed
				}
			}
		}

		snap.Orders = append(snap.Orders, order)
		for _, item := range order.Items {
			p := snap.ProductByID(item.ProductID)
			if p == nil {
				s.log.Warn().
					Str("order_id", order.ID).
					Str("product_id", item.ProductID).
					Msg("ordered product not in catalog, stock untouched")
				continue
			}
			p.Stock -= item.Quantity
			if p.Stock < 0 {
				p.Stock = 0
			}
		}
		return nil
	})
	if errors.Is(err, errOrderReplayed) {
		s.log.Info().
			Str("idempotency_key", order.IdempotencyKey).
			Str("order_id", replayed.ID).
			Msg("idempotent replay")
		return &ports.OrderResult{Order: replayed, AlreadyExisted: true}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("create order: %w", err)
	}

	if input.IdempotencyKey != "" {
		if err := s.dedup.Mark(ctx, input.IdempotencyKey); err != nil {
			s.log.Warn().Err(err).Msg("failed to set dedup key")
		}
	}

	s.log.Info().
		Str("order_id", order.ID).
		Int("items", len(order.Items)).
		Float64("total", order.Total).
		Msg("order created")

	return &ports.OrderResult{Order: &order}, nil
}

// UpdateOrderStatus sets the order's status and bumps UpdatedAt. Any of the
// five known states may follow any other; only membership is enforced.
func (s *OrderService) UpdateOrderStatus(ctx context.Context, orderID string, status domain.OrderStatus) (*domain.Order, error) {
	if !status.Valid() {
		return nil, domain.ErrInvalidOrderStatus
	}

	var updated domain.Order
	err := s.store.Update(ctx, func(snap *domain.Snapshot) error {
		order := snap.OrderByID(orderID)
		if order == nil {
			return domain.ErrOrderNotFound
		}
		order.Status = status
		order.UpdatedAt = time.Now().UTC()
		updated = *order
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.Info().
		Str("order_id", orderID).
		Str("status", string(status)).
		Msg("order status updated")

	return &updated, nil
}

// ListOrders returns all orders, most recent first.
func (s *OrderService) ListOrders(ctx context.Context) ([]domain.Order, error) {
	snap, err := s.store.Read(ctx)
	if err != nil {
		return nil, err
	}

	orders := make([]domain.Order, len(snap.Orders))
	copy(orders, snap.Orders)
	sort.Slice(orders, func(i, j int) bool {
		return orders[i].CreatedAt.After(orders[j].CreatedAt)
	})
	return orders, nil
}

func validateOrderInput(input ports.CreateOrderInput) error {
	if len(input.Items) == 0 {
		return domain.ErrMissingOrderInfo
	}
	if input.ShippingAddress.FullName == "" || input.ShippingAddress.AddressLine1 == "" {
		return domain.ErrMissingOrderInfo
	}
	if input.Total <= 0 {
		return domain.ErrMissingOrderInfo
	}
	if !input.PaymentMethod.Valid() {
		return domain.ErrMissingOrderInfo
	}
	return nil
}
