package model

import (
	"github.com/shopspring/decimal"
)

// Review is a single product review entry
type Review struct {
	ID      int64  `json:"id"`
	Rating  int    `json:"rating"` // 1..5
	Comment string `json:"comment"`
	Author  string `json:"author,omitempty"`
	Date    string `json:"date"` // YYYY-MM-DD
}

// Product mirrors a backend catalog record together with its reviews
type Product struct {
	ID          int64           `json:"id"`
	Name        string          `json:"name"`
	Price       decimal.Decimal `json:"price"`
	Stock       int             `json:"stock"`
	Category    string          `json:"category"`
	Description string          `json:"description,omitempty"`
	Rating      float64         `json:"rating"`
	Reviews     []Review        `json:"reviews,omitempty"`
}

// RecomputeRating recalculates the average rating from the review list.
// Used after a locally appended review, pending the next refresh.
func (p *Product) RecomputeRating() {
	if len(p.Reviews) == 0 {
		p.Rating = 0
		return
	}
	total := 0
	for _, r := range p.Reviews {
		total += r.Rating
	}
	p.Rating = float64(total) / float64(len(p.Reviews))
}

// NextReviewID returns a client-side id one past the highest review id,
// for immediate display before the backend assigns the real one.
func (p *Product) NextReviewID() int64 {
	var max int64
	for _, r := range p.Reviews {
		if r.ID > max {
			max = r.ID
		}
	}
	return max + 1
}
