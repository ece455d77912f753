package store

import (
	"sync"

	"github.com/google/uuid"

	"github.com/fruitmall/fruitmall-client/internal/model"
)

// StoreManagementStore is the back-office staging area: store info and
// status, employees, coupons, flash sales, and sales statistics. It is
// intentionally local-only in this revision; records get uuid identifiers
// so a future backend sync cannot collide.
type StoreManagementStore struct {
	mu         sync.RWMutex
	info       model.StoreInfo
	status     model.StoreStatus
	employees  []model.Employee
	coupons    []model.Coupon
	flashSales []model.FlashSale
	stats      model.SalesStatistics
}

// NewStoreManagementStore creates the container with the default store info
func NewStoreManagementStore() *StoreManagementStore {
	return &StoreManagementStore{
		info: model.StoreInfo{
			Name:         "水果商城",
			Address:      "北京市朝阳区xx路xx号",
			Phone:        "010-12345678",
			Email:        "contact@fruitmall.com",
			OpeningHours: "09:00-21:00",
			Description:  "专业的水果零售商城，提供新鲜、优质的水果。",
		},
		status: model.StoreStatusOpen,
	}
}

// Info returns the store info snapshot
func (s *StoreManagementStore) Info() model.StoreInfo {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.info
}

// UpdateInfo merges non-empty fields into the store info
func (s *StoreManagementStore) UpdateInfo(info model.StoreInfo) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if info.Name != "" {
		s.info.Name = info.Name
	}
	if info.Address != "" {
		s.info.Address = info.Address
	}
	if info.Phone != "" {
		s.info.Phone = info.Phone
	}
	if info.Email != "" {
		s.info.Email = info.Email
	}
	if info.OpeningHours != "" {
		s.info.OpeningHours = info.OpeningHours
	}
	if info.Description != "" {
		s.info.Description = info.Description
	}
}

// Status returns the current store status
func (s *StoreManagementStore) Status() model.StoreStatus {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.status
}

// UpdateStatus sets the store status
func (s *StoreManagementStore) UpdateStatus(status model.StoreStatus) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.status = status
}

// StatusText returns the display text for the current status
func (s *StoreManagementStore) StatusText() string {
	return StatusLabel(s.Status())
}

// StatusLabel returns the display text for a store status
func StatusLabel(status model.StoreStatus) string {
	switch status {
	case model.StoreStatusOpen:
		return "营业中"
	case model.StoreStatusClosed:
		return "已打烊"
	case model.StoreStatusHoliday:
		return "节假日休息"
	case model.StoreStatusMaintenance:
		return "系统维护中"
	default:
		return "未知状态"
	}
}

// Employees returns a copy of the employee list
func (s *StoreManagementStore) Employees() []model.Employee {
	s.mu.RLock()
	defer s.mu.RUnlock()
	employees := make([]model.Employee, len(s.employees))
	copy(employees, s.employees)
	return employees
}

// AddEmployee stores the record under a generated id and returns it
func (s *StoreManagementStore) AddEmployee(employee model.Employee) model.Employee {
	employee.ID = uuid.NewString()
	s.mu.Lock()
	s.employees = append(s.employees, employee)
	s.mu.Unlock()
	return employee
}

// UpdateEmployee merges non-empty fields into the record, reporting
// whether it was found.
func (s *StoreManagementStore) UpdateEmployee(id string, data model.Employee) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.employees {
		if s.employees[i].ID != id {
			continue
		}
		e := &s.employees[i]
		if data.Name != "" {
			e.Name = data.Name
		}
		if data.Role != "" {
			e.Role = data.Role
		}
		if data.Phone != "" {
			e.Phone = data.Phone
		}
		if data.Email != "" {
			e.Email = data.Email
		}
		if data.HiredAt != "" {
			e.HiredAt = data.HiredAt
		}
		e.IsActive = data.IsActive
		return true
	}
	return false
}

// RemoveEmployee deletes the record, reporting whether it was found
func (s *StoreManagementStore) RemoveEmployee(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.employees {
		if s.employees[i].ID == id {
			s.employees = append(s.employees[:i], s.employees[i+1:]...)
			return true
		}
	}
	return false
}

// Coupons returns a copy of the coupon list
func (s *StoreManagementStore) Coupons() []model.Coupon {
	s.mu.RLock()
	defer s.mu.RUnlock()
	coupons := make([]model.Coupon, len(s.coupons))
	copy(coupons, s.coupons)
	return coupons
}

// AddCoupon stores the record under a generated id and returns it
func (s *StoreManagementStore) AddCoupon(coupon model.Coupon) model.Coupon {
	coupon.ID = uuid.NewString()
	s.mu.Lock()
	s.coupons = append(s.coupons, coupon)
	s.mu.Unlock()
	return coupon
}

// UpdateCoupon replaces the record's mutable fields, reporting whether it
// was found.
func (s *StoreManagementStore) UpdateCoupon(id string, data model.Coupon) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.coupons {
		if s.coupons[i].ID != id {
			continue
		}
		c := &s.coupons[i]
		if data.Code != "" {
			c.Code = data.Code
		}
		if !data.Discount.IsZero() {
			c.Discount = data.Discount
		}
		if !data.MinSpend.IsZero() {
			c.MinSpend = data.MinSpend
		}
		if !data.ExpiresAt.IsZero() {
			c.ExpiresAt = data.ExpiresAt
		}
		c.IsActive = data.IsActive
		return true
	}
	return false
}

// RemoveCoupon deletes the record, reporting whether it was found
func (s *StoreManagementStore) RemoveCoupon(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.coupons {
		if s.coupons[i].ID == id {
			s.coupons = append(s.coupons[:i], s.coupons[i+1:]...)
			return true
		}
	}
	return false
}

// FlashSales returns a copy of the flash sale list
func (s *StoreManagementStore) FlashSales() []model.FlashSale {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sales := make([]model.FlashSale, len(s.flashSales))
	copy(sales, s.flashSales)
	return sales
}

// AddFlashSale stores the record under a generated id and returns it
func (s *StoreManagementStore) AddFlashSale(sale model.FlashSale) model.FlashSale {
	sale.ID = uuid.NewString()
	s.mu.Lock()
	s.flashSales = append(s.flashSales, sale)
	s.mu.Unlock()
	return sale
}

// UpdateFlashSale replaces the record's mutable fields, reporting whether
// it was found.
func (s *StoreManagementStore) UpdateFlashSale(id string, data model.FlashSale) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.flashSales {
		if s.flashSales[i].ID != id {
			continue
		}
		f := &s.flashSales[i]
		if data.ProductID != 0 {
			f.ProductID = data.ProductID
		}
		if !data.SalePrice.IsZero() {
			f.SalePrice = data.SalePrice
		}
		if !data.StartsAt.IsZero() {
			f.StartsAt = data.StartsAt
		}
		if !data.EndsAt.IsZero() {
			f.EndsAt = data.EndsAt
		}
		return true
	}
	return false
}

// RemoveFlashSale deletes the record, reporting whether it was found
func (s *StoreManagementStore) RemoveFlashSale(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.flashSales {
		if s.flashSales[i].ID == id {
			s.flashSales = append(s.flashSales[:i], s.flashSales[i+1:]...)
			return true
		}
	}
	return false
}

// FlashSaleByProduct returns the flash sale covering the product, if any
func (s *StoreManagementStore) FlashSaleByProduct(productID int64) (model.FlashSale, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, sale := range s.flashSales {
		if sale.ProductID == productID {
			return sale, true
		}
	}
	return model.FlashSale{}, false
}

// SalesStatistics returns the statistics snapshot
func (s *StoreManagementStore) SalesStatistics() model.SalesStatistics {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.stats
}

// UpdateSalesStatistics merges non-empty series into the snapshot
func (s *StoreManagementStore) UpdateSalesStatistics(stats model.SalesStatistics) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if stats.Daily != nil {
		s.stats.Daily = stats.Daily
	}
	if stats.Weekly != nil {
		s.stats.Weekly = stats.Weekly
	}
	if stats.Monthly != nil {
		s.stats.Monthly = stats.Monthly
	}
}
