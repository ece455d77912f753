package router

import "github.com/fruitmall/fruitmall-client/internal/model"

// DefaultTitle is the window title used when a route carries none
const DefaultTitle = "水果商城"

// PermissionDeniedNotice is shown when an admin route rejects the session
const PermissionDeniedNotice = "权限不足，请使用管理员账户登录"

// Meta is the per-route navigation metadata
type Meta struct {
	Title         string
	RequiresAuth  bool
	RequiresAdmin bool
	AllowedRoles  []string
}

// Route binds a path pattern to a named view. Path segments starting
// with ':' match any single segment and are handed to the view as
// parameters.
type Route struct {
	Path string
	Name string
	Meta Meta
}

func adminMeta(title string) Meta {
	return Meta{
		Title:         title,
		RequiresAuth:  true,
		RequiresAdmin: true,
		AllowedRoles:  model.AdminRoles,
	}
}

// Routes returns the full route table
func Routes() []Route {
	return []Route{
		{Path: "/", Name: "Home", Meta: Meta{Title: "首页"}},
		{Path: "/login", Name: "Login", Meta: Meta{Title: "登录"}},
		{Path: "/register", Name: "Register", Meta: Meta{Title: "注册"}},
		{Path: "/orders", Name: "Orders", Meta: Meta{Title: "订单", RequiresAuth: true}},
		{Path: "/cart", Name: "Cart", Meta: Meta{Title: "购物车", RequiresAuth: true}},
		{Path: "/profile", Name: "Profile", Meta: Meta{Title: "个人信息", RequiresAuth: true}},
		{Path: "/product/:id", Name: "ProductDetail", Meta: Meta{Title: "商品详情"}},
		{Path: "/store-info", Name: "StoreInfo", Meta: Meta{Title: "店铺信息"}},
		{Path: "/contact-us", Name: "ContactUs", Meta: Meta{Title: "联系我们"}},
		{Path: "/admin/dashboard", Name: "AdminDashboard", Meta: adminMeta("管理员仪表盘")},
		{Path: "/admin/products", Name: "AdminProducts", Meta: adminMeta("商品管理")},
		{Path: "/admin/statistics", Name: "AdminStatistics", Meta: adminMeta("统计数据")},
		{Path: "/admin/employees", Name: "AdminEmployees", Meta: adminMeta("员工管理")},
		{Path: "/admin/store-status", Name: "AdminStoreStatus", Meta: adminMeta("商店状态")},
		{Path: "/admin/coupons", Name: "AdminCoupons", Meta: adminMeta("优惠券管理")},
		{Path: "/admin/sales", Name: "AdminSales", Meta: adminMeta("销售分析")},
		{Path: "/admin/store", Name: "AdminStore", Meta: adminMeta("商店管理")},
		{Path: "/admin/users", Name: "AdminUsers", Meta: adminMeta("用户管理")},
	}
}
