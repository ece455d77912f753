package store

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"sync"

	"github.com/rs/zerolog"

	"github.com/fruitmall/fruitmall-client/internal/model"
)

// OrderListParams filters and paginates GET /orders
type OrderListParams struct {
	Page   int
	Size   int
	Status model.OrderStatus
}

func (p OrderListParams) query() url.Values {
	q := url.Values{}
	if p.Page > 0 {
		q.Set("page", strconv.Itoa(p.Page))
	}
	if p.Size > 0 {
		q.Set("size", strconv.Itoa(p.Size))
	}
	if p.Status != "" {
		q.Set("status", p.Status.String())
	}
	return q
}

// orderListResponse is the payload of GET /orders
type orderListResponse struct {
	Orders []model.Order `json:"orders"`
	Total  int           `json:"total"`
}

// OrderStore mirrors the user's orders. All actions are remote-only: on
// failure the snapshot is left untouched and the error propagates.
type OrderStore struct {
	mu      sync.RWMutex
	orders  []model.Order
	current *model.Order
	total   int
	loading bool

	gateway Gateway
	log     zerolog.Logger
}

// NewOrderStore creates an order container
func NewOrderStore(gateway Gateway, log zerolog.Logger) *OrderStore {
	return &OrderStore{gateway: gateway, log: log}
}

// Create submits a checkout request. The backend owns validation, pricing,
// stock, and cart clearing; the returned order becomes the current one.
func (s *OrderStore) Create(ctx context.Context, req model.CheckoutRequest) (*model.Order, error) {
	s.setLoading(true)
	defer s.setLoading(false)

	payload, err := s.gateway.Post(ctx, "/orders", req)
	if err != nil {
		s.log.Warn().Err(err).Msg("order creation failed")
		return nil, err
	}

	var order model.Order
	if err := json.Unmarshal(payload, &order); err != nil {
		return nil, fmt.Errorf("failed to decode order: %w", err)
	}

	s.mu.Lock()
	s.current = &order
	s.mu.Unlock()
	return &order, nil
}

// Fetch reloads the order list
func (s *OrderStore) Fetch(ctx context.Context, params OrderListParams) error {
	s.setLoading(true)
	defer s.setLoading(false)

	payload, err := s.gateway.Get(ctx, "/orders", params.query())
	if err != nil {
		s.log.Warn().Err(err).Msg("order list fetch failed")
		return err
	}

	var resp orderListResponse
	if err := json.Unmarshal(payload, &resp); err != nil {
		return fmt.Errorf("failed to decode order list: %w", err)
	}

	s.mu.Lock()
	s.orders = resp.Orders
	s.total = resp.Total
	s.mu.Unlock()
	return nil
}

// FetchDetail loads one order and makes it current
func (s *OrderStore) FetchDetail(ctx context.Context, orderID int64) (*model.Order, error) {
	payload, err := s.gateway.Get(ctx, fmt.Sprintf("/orders/%d", orderID), nil)
	if err != nil {
		s.log.Warn().Int64("orderId", orderID).Err(err).Msg("order detail fetch failed")
		return nil, err
	}

	var order model.Order
	if err := json.Unmarshal(payload, &order); err != nil {
		return nil, fmt.Errorf("failed to decode order detail: %w", err)
	}

	s.mu.Lock()
	s.current = &order
	s.mu.Unlock()
	return &order, nil
}

// Cancel asks the backend to cancel and, on success, marks the local copy
// cancelled. Status transitions never happen client-side otherwise.
func (s *OrderStore) Cancel(ctx context.Context, orderID int64) error {
	if _, err := s.gateway.Put(ctx, fmt.Sprintf("/orders/%d/cancel", orderID), nil); err != nil {
		s.log.Warn().Int64("orderId", orderID).Err(err).Msg("order cancel failed")
		return err
	}

	s.mu.Lock()
	for i := range s.orders {
		if s.orders[i].ID == orderID {
			s.orders[i].Status = model.OrderStatusCancelled
			break
		}
	}
	if s.current != nil && s.current.ID == orderID {
		s.current.Status = model.OrderStatusCancelled
	}
	s.mu.Unlock()
	return nil
}

// Orders returns a copy of the order list
func (s *OrderStore) Orders() []model.Order {
	s.mu.RLock()
	defer s.mu.RUnlock()
	orders := make([]model.Order, len(s.orders))
	copy(orders, s.orders)
	return orders
}

// Current returns a copy of the current order, or nil
func (s *OrderStore) Current() *model.Order {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.current == nil {
		return nil
	}
	order := *s.current
	return &order
}

// Total returns the backend's total order count for the last fetch
func (s *OrderStore) Total() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.total
}

// Loading reports whether an action is in flight
func (s *OrderStore) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}

func (s *OrderStore) setLoading(v bool) {
	s.mu.Lock()
	s.loading = v
	s.mu.Unlock()
}
