package model

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestProduct_RecomputeRating(t *testing.T) {
	product := &Product{
		Reviews: []Review{
			{ID: 1, Rating: 5},
			{ID: 2, Rating: 3},
			{ID: 3, Rating: 4},
		},
	}

	product.RecomputeRating()
	if product.Rating != 4.0 {
		t.Errorf("RecomputeRating() = %v, expected 4.0", product.Rating)
	}
}

func TestProduct_RecomputeRating_Empty(t *testing.T) {
	product := &Product{Rating: 4.5}
	product.RecomputeRating()
	if product.Rating != 0 {
		t.Errorf("RecomputeRating() with no reviews = %v, expected 0", product.Rating)
	}
}

func TestProduct_NextReviewID(t *testing.T) {
	tests := []struct {
		name     string
		reviews  []Review
		expected int64
	}{
		{"no reviews", nil, 1},
		{"sequential", []Review{{ID: 1}, {ID: 2}}, 3},
		{"gaps", []Review{{ID: 7}, {ID: 2}}, 8},
	}

	for _, test := range tests {
		product := &Product{Reviews: test.reviews}
		if result := product.NextReviewID(); result != test.expected {
			t.Errorf("NextReviewID() for %s = %d, expected %d", test.name, result, test.expected)
		}
	}
}

func TestCartItem_LineTotal(t *testing.T) {
	item := CartItem{
		ProductID: 1,
		Price:     decimal.RequireFromString("12.50"),
		Quantity:  3,
	}

	if got := item.LineTotal(); !got.Equal(decimal.RequireFromString("37.50")) {
		t.Errorf("LineTotal() = %s, expected 37.50", got)
	}
}
