package store

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/fruitmall/fruitmall-client/internal/api"
	"github.com/fruitmall/fruitmall-client/internal/model"
)

// ReviewRequest is the payload of POST /products/{id}/reviews
type ReviewRequest struct {
	Rating  int    `json:"rating"`
	Comment string `json:"comment"`
}

// ProductStore mirrors the catalog. The product list is entirely API-fed;
// reviews are appended locally after a successful submission, pending the
// next refresh.
type ProductStore struct {
	mu       sync.RWMutex
	products []model.Product

	gateway Gateway
	log     zerolog.Logger
}

// NewProductStore creates a product container
func NewProductStore(gateway Gateway, log zerolog.Logger) *ProductStore {
	return &ProductStore{gateway: gateway, log: log}
}

// FetchProducts reloads the catalog. Like the cart listing this is a
// fetch-style read: failures degrade to the current snapshot and log.
func (s *ProductStore) FetchProducts(ctx context.Context) {
	payload, err := s.gateway.Get(ctx, "/products", nil)
	if err != nil {
		s.log.Warn().Err(err).Msg("product list fetch failed; keeping current snapshot")
		return
	}

	products, err := api.DecodeItems[model.Product](payload)
	if err != nil {
		s.log.Warn().Err(err).Msg("product response shape not recognized; using empty list")
		products = []model.Product{}
	}

	s.mu.Lock()
	s.products = products
	s.mu.Unlock()
}

// FetchProduct loads one product and merges it into the snapshot
func (s *ProductStore) FetchProduct(ctx context.Context, productID int64) (*model.Product, error) {
	payload, err := s.gateway.Get(ctx, fmt.Sprintf("/products/%d", productID), nil)
	if err != nil {
		return nil, err
	}

	var product model.Product
	if err := json.Unmarshal(payload, &product); err != nil {
		return nil, fmt.Errorf("failed to decode product: %w", err)
	}

	s.mu.Lock()
	replaced := false
	for i := range s.products {
		if s.products[i].ID == product.ID {
			s.products[i] = product
			replaced = true
			break
		}
	}
	if !replaced {
		s.products = append(s.products, product)
	}
	s.mu.Unlock()
	return &product, nil
}

// AddReview submits a review and, on success, appends it locally with a
// generated id and today's date, recomputing the average rating until the
// next refresh replaces it with the backend's value.
func (s *ProductStore) AddReview(ctx context.Context, productID int64, review ReviewRequest) error {
	if _, err := s.gateway.Post(ctx, fmt.Sprintf("/products/%d/reviews", productID), review); err != nil {
		s.log.Warn().Int64("productId", productID).Err(err).Msg("review submission failed")
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.products {
		if s.products[i].ID != productID {
			continue
		}
		p := &s.products[i]
		p.Reviews = append(p.Reviews, model.Review{
			ID:      p.NextReviewID(),
			Rating:  review.Rating,
			Comment: review.Comment,
			Date:    time.Now().Format("2006-01-02"),
		})
		p.RecomputeRating()
		break
	}
	return nil
}

// Products returns a copy of the catalog snapshot
func (s *ProductStore) Products() []model.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	products := make([]model.Product, len(s.products))
	copy(products, s.products)
	return products
}

// ByID returns the product with the given id, or nil
func (s *ProductStore) ByID(productID int64) *model.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for i := range s.products {
		if s.products[i].ID == productID {
			product := s.products[i]
			return &product
		}
	}
	return nil
}

// ByCategory filters the snapshot; an empty category returns everything
func (s *ProductStore) ByCategory(category string) []model.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if category == "" {
		products := make([]model.Product, len(s.products))
		copy(products, s.products)
		return products
	}
	var filtered []model.Product
	for _, p := range s.products {
		if p.Category == category {
			filtered = append(filtered, p)
		}
	}
	return filtered
}

// Categories returns the sorted distinct categories in the snapshot
func (s *ProductStore) Categories() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	seen := make(map[string]bool)
	var categories []string
	for _, p := range s.products {
		if p.Category != "" && !seen[p.Category] {
			seen[p.Category] = true
			categories = append(categories, p.Category)
		}
	}
	sort.Strings(categories)
	return categories
}
