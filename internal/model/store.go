package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// StoreStatus represents the operating state of the storefront
type StoreStatus string

const (
	// StoreStatusOpen means the store is operating normally
	StoreStatusOpen StoreStatus = "open"

	// StoreStatusClosed means the store is closed for the day
	StoreStatusClosed StoreStatus = "closed"

	// StoreStatusHoliday means the store is closed for a holiday
	StoreStatusHoliday StoreStatus = "holiday"

	// StoreStatusMaintenance means the system is under maintenance
	StoreStatusMaintenance StoreStatus = "maintenance"
)

// String returns the string representation of StoreStatus
func (ss StoreStatus) String() string {
	return string(ss)
}

// StoreInfo holds the storefront's public contact details
type StoreInfo struct {
	Name         string `json:"name"`
	Address      string `json:"address"`
	Phone        string `json:"phone"`
	Email        string `json:"email"`
	OpeningHours string `json:"openingHours"`
	Description  string `json:"description"`
}

// Employee is a back-office staff record
type Employee struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Role     string `json:"role"`
	Phone    string `json:"phone"`
	Email    string `json:"email"`
	HiredAt  string `json:"hiredAt,omitempty"`
	IsActive bool   `json:"isActive"`
}

// Coupon is a discount voucher managed in the back-office
type Coupon struct {
	ID        string          `json:"id"`
	Code      string          `json:"code"`
	Discount  decimal.Decimal `json:"discount"`
	MinSpend  decimal.Decimal `json:"minSpend"`
	ExpiresAt time.Time       `json:"expiresAt"`
	IsActive  bool            `json:"isActive"`
}

// FlashSale is a time-boxed price promotion for a single product
type FlashSale struct {
	ID        string          `json:"id"`
	ProductID int64           `json:"productId"`
	SalePrice decimal.Decimal `json:"salePrice"`
	StartsAt  time.Time       `json:"startsAt"`
	EndsAt    time.Time       `json:"endsAt"`
}

// SalesPoint is one entry in a sales time series
type SalesPoint struct {
	Label   string          `json:"label"` // e.g. date or week number
	Orders  int             `json:"orders"`
	Revenue decimal.Decimal `json:"revenue"`
}

// SalesStatistics groups sales series by granularity
type SalesStatistics struct {
	Daily   []SalesPoint `json:"daily"`
	Weekly  []SalesPoint `json:"weekly"`
	Monthly []SalesPoint `json:"monthly"`
}
