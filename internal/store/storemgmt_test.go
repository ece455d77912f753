package store

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fruitmall/fruitmall-client/internal/model"
)

func TestStoreManagement_StatusText(t *testing.T) {
	mgmt := NewStoreManagementStore()

	tests := []struct {
		status model.StoreStatus
		text   string
	}{
		{model.StoreStatusOpen, "营业中"},
		{model.StoreStatusClosed, "已打烊"},
		{model.StoreStatusHoliday, "节假日休息"},
		{model.StoreStatusMaintenance, "系统维护中"},
		{model.StoreStatus("bogus"), "未知状态"},
	}

	for _, test := range tests {
		mgmt.UpdateStatus(test.status)
		assert.Equal(t, test.text, mgmt.StatusText())
	}
}

func TestStoreManagement_EmployeeCRUD(t *testing.T) {
	mgmt := NewStoreManagementStore()

	added := mgmt.AddEmployee(model.Employee{Name: "王芳", Role: "店长", IsActive: true})
	assert.NotEmpty(t, added.ID, "employee gets a generated id")

	other := mgmt.AddEmployee(model.Employee{Name: "李明", Role: "收银员", IsActive: true})
	assert.NotEqual(t, added.ID, other.ID)
	require.Len(t, mgmt.Employees(), 2)

	require.True(t, mgmt.UpdateEmployee(added.ID, model.Employee{Phone: "13800000000", IsActive: true}))
	employees := mgmt.Employees()
	assert.Equal(t, "13800000000", employees[0].Phone)
	assert.Equal(t, "王芳", employees[0].Name, "unset fields keep their values")

	assert.False(t, mgmt.UpdateEmployee("missing", model.Employee{}))
	require.True(t, mgmt.RemoveEmployee(other.ID))
	assert.Len(t, mgmt.Employees(), 1)
	assert.False(t, mgmt.RemoveEmployee(other.ID))
}

func TestStoreManagement_CouponCRUD(t *testing.T) {
	mgmt := NewStoreManagementStore()

	coupon := mgmt.AddCoupon(model.Coupon{
		Code:     "FRUIT10",
		Discount: decimal.RequireFromString("10"),
		MinSpend: decimal.RequireFromString("50"),
		IsActive: true,
	})
	require.NotEmpty(t, coupon.ID)

	require.True(t, mgmt.UpdateCoupon(coupon.ID, model.Coupon{Code: "FRUIT15", IsActive: false}))
	got := mgmt.Coupons()[0]
	assert.Equal(t, "FRUIT15", got.Code)
	assert.False(t, got.IsActive)
	assert.True(t, got.Discount.Equal(decimal.RequireFromString("10")))

	require.True(t, mgmt.RemoveCoupon(coupon.ID))
	assert.Empty(t, mgmt.Coupons())
}

func TestStoreManagement_FlashSaleLookup(t *testing.T) {
	mgmt := NewStoreManagementStore()

	sale := mgmt.AddFlashSale(model.FlashSale{ProductID: 3, SalePrice: decimal.RequireFromString("1.99")})
	require.NotEmpty(t, sale.ID)

	got, ok := mgmt.FlashSaleByProduct(3)
	require.True(t, ok)
	assert.True(t, got.SalePrice.Equal(decimal.RequireFromString("1.99")))

	_, ok = mgmt.FlashSaleByProduct(99)
	assert.False(t, ok)

	require.True(t, mgmt.RemoveFlashSale(sale.ID))
	_, ok = mgmt.FlashSaleByProduct(3)
	assert.False(t, ok)
}

func TestStoreManagement_InfoMergeAndStatistics(t *testing.T) {
	mgmt := NewStoreManagementStore()

	mgmt.UpdateInfo(model.StoreInfo{Phone: "010-87654321"})
	info := mgmt.Info()
	assert.Equal(t, "010-87654321", info.Phone)
	assert.Equal(t, "水果商城", info.Name, "unset fields keep defaults")

	mgmt.UpdateSalesStatistics(model.SalesStatistics{
		Daily: []model.SalesPoint{{Label: "2026-08-29", Orders: 12, Revenue: decimal.RequireFromString("340.00")}},
	})
	stats := mgmt.SalesStatistics()
	require.Len(t, stats.Daily, 1)
	assert.Empty(t, stats.Weekly, "unset series untouched")
}
