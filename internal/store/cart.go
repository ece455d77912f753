package store

import (
	"context"
	"fmt"
	"sync"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/fruitmall/fruitmall-client/internal/api"
	"github.com/fruitmall/fruitmall-client/internal/localstore"
	"github.com/fruitmall/fruitmall-client/internal/model"
)

// addItemRequest is the payload of POST /cart/items
type addItemRequest struct {
	ProductID int64 `json:"productId"`
	Quantity  int   `json:"quantity"`
}

// updateItemRequest is the payload of PUT /cart/items/{id}
type updateItemRequest struct {
	Quantity int `json:"quantity"`
}

// CartStore mirrors the remote cart. Mutations are remote-first: the
// backend is attempted, and on failure the same mutation lands in the
// persisted local mirror with a FallbackError reporting the miss.
type CartStore struct {
	mu      sync.RWMutex
	items   []model.CartItem
	loading bool

	gateway  Gateway
	local    *localstore.Store
	log      zerolog.Logger
	onChange func() // callback for UI updates
}

// NewCartStore creates a cart container seeded from the persisted mirror
func NewCartStore(gateway Gateway, local *localstore.Store, log zerolog.Logger) *CartStore {
	return &CartStore{
		items:   local.CartItems(),
		gateway: gateway,
		local:   local,
		log:     log,
	}
}

// SetChangeCallback sets the callback invoked after every snapshot change
func (s *CartStore) SetChangeCallback(callback func()) {
	s.onChange = callback
}

// Add puts quantity units of the product in the cart. On remote failure
// the item still lands in the local mirror (quantity incremented when
// already present) and a FallbackError wrapping the cause is returned.
func (s *CartStore) Add(ctx context.Context, product model.Product, quantity int) error {
	if quantity < 1 {
		quantity = 1
	}

	_, err := s.gateway.Post(ctx, "/cart/items", addItemRequest{ProductID: product.ID, Quantity: quantity})
	if err == nil {
		// Refresh from the authoritative copy
		s.Fetch(ctx)
		return nil
	}

	s.log.Warn().Int64("productId", product.ID).Int("quantity", quantity).Err(err).
		Msg("cart add failed; applying local fallback")

	s.mu.Lock()
	found := false
	for i := range s.items {
		if s.items[i].ProductID == product.ID {
			s.items[i].Quantity += quantity
			found = true
			break
		}
	}
	if !found {
		s.items = append(s.items, model.CartItem{
			ProductID: product.ID,
			Name:      product.Name,
			Price:     product.Price,
			Quantity:  quantity,
		})
	}
	s.mu.Unlock()

	s.persist()
	s.notifyChange()
	return &FallbackError{Message: "failed to add to cart, saved locally", Err: err}
}

// Remove deletes the product's line. The mirror is kept in step on
// success; on failure the local removal still happens and a FallbackError
// is returned.
func (s *CartStore) Remove(ctx context.Context, productID int64) error {
	_, err := s.gateway.Delete(ctx, fmt.Sprintf("/cart/items/%d", productID))

	s.mu.Lock()
	kept := s.items[:0]
	for _, item := range s.items {
		if item.ProductID != productID {
			kept = append(kept, item)
		}
	}
	s.items = kept
	s.mu.Unlock()

	s.persist()
	s.notifyChange()

	if err != nil {
		s.log.Warn().Int64("productId", productID).Err(err).Msg("cart remove failed; removed locally only")
		return &FallbackError{Message: "failed to remove from cart, removed locally", Err: err}
	}
	return nil
}

// UpdateQuantity sets the line quantity. Fallback mutates the mirror.
func (s *CartStore) UpdateQuantity(ctx context.Context, productID int64, quantity int) error {
	_, err := s.gateway.Put(ctx, fmt.Sprintf("/cart/items/%d", productID), updateItemRequest{Quantity: quantity})

	s.mu.Lock()
	for i := range s.items {
		if s.items[i].ProductID == productID {
			s.items[i].Quantity = quantity
			break
		}
	}
	s.mu.Unlock()

	s.persist()
	s.notifyChange()

	if err != nil {
		s.log.Warn().Int64("productId", productID).Int("quantity", quantity).Err(err).
			Msg("cart update failed; updated locally only")
		return &FallbackError{Message: "failed to update cart, updated locally", Err: err}
	}
	return nil
}

// Fetch reloads the cart from the backend, tolerating every collection
// shape the backend has been seen to answer with. Errors degrade instead
// of failing the view: a 401 clears the snapshot, anything else keeps it.
func (s *CartStore) Fetch(ctx context.Context) {
	s.setLoading(true)
	defer s.setLoading(false)

	payload, err := s.gateway.Get(ctx, "/cart/items", nil)
	if err != nil {
		if api.IsUnauthorized(err) {
			s.log.Debug().Msg("cart fetch unauthorized; clearing snapshot")
			s.mu.Lock()
			s.items = nil
			s.mu.Unlock()
			s.notifyChange()
		} else {
			s.log.Warn().Err(err).Msg("cart fetch failed; keeping current snapshot")
		}
		return
	}

	items, err := api.DecodeItems[model.CartItem](payload)
	if err != nil {
		s.log.Warn().Err(err).Msg("cart response shape not recognized; using empty cart")
		items = []model.CartItem{}
	}

	s.mu.Lock()
	s.items = items
	s.mu.Unlock()

	s.persist()
	s.notifyChange()
}

// Clear empties the cart. Fallback empties the mirror locally.
func (s *CartStore) Clear(ctx context.Context) error {
	_, err := s.gateway.Delete(ctx, "/cart/items")

	s.mu.Lock()
	s.items = nil
	s.mu.Unlock()

	s.persist()
	s.notifyChange()

	if err != nil {
		s.log.Warn().Err(err).Msg("cart clear failed; cleared locally only")
		return &FallbackError{Message: "failed to clear cart, cleared locally", Err: err}
	}
	return nil
}

// ResetLocal drops the snapshot and the persisted mirror without a
// backend call. Used on logout, where the server-side cart survives.
func (s *CartStore) ResetLocal() {
	s.mu.Lock()
	s.items = nil
	s.mu.Unlock()

	s.persist()
	s.notifyChange()
}

// Items returns a copy of the current line items
func (s *CartStore) Items() []model.CartItem {
	s.mu.RLock()
	defer s.mu.RUnlock()
	items := make([]model.CartItem, len(s.items))
	copy(items, s.items)
	return items
}

// TotalItems returns the sum of line quantities, derived on every read
func (s *CartStore) TotalItems() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	total := 0
	for _, item := range s.items {
		total += item.Quantity
	}
	return total
}

// TotalPrice returns the sum of quantity times unit price across lines,
// derived on every read.
func (s *CartStore) TotalPrice() decimal.Decimal {
	s.mu.RLock()
	defer s.mu.RUnlock()
	total := decimal.Zero
	for _, item := range s.items {
		total = total.Add(item.LineTotal())
	}
	return total
}

// Loading reports whether a fetch is in flight
func (s *CartStore) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}

func (s *CartStore) setLoading(v bool) {
	s.mu.Lock()
	s.loading = v
	s.mu.Unlock()
}

func (s *CartStore) persist() {
	s.mu.RLock()
	items := make([]model.CartItem, len(s.items))
	copy(items, s.items)
	s.mu.RUnlock()

	if err := s.local.SaveCartItems(items); err != nil {
		s.log.Warn().Err(err).Msg("failed to persist cart mirror")
	}
}

func (s *CartStore) notifyChange() {
	if s.onChange != nil {
		s.onChange()
	}
}
