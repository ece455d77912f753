package ui

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// Text keys for localization
const (
	KeyAppTitle         = "app_title"
	KeyHome             = "home"
	KeyCart             = "cart"
	KeyOrders           = "orders"
	KeyProfile          = "profile"
	KeyLogin            = "login"
	KeyLogout           = "logout"
	KeyRegister         = "register"
	KeyUsername         = "username"
	KeyPassword         = "password"
	KeyEmail            = "email"
	KeyPhone            = "phone"
	KeyAddress          = "address"
	KeySave             = "save"
	KeyCancel           = "cancel"
	KeySettings         = "settings"
	KeyLanguage         = "language"
	KeyAdmin            = "admin"
	KeyAddToCart        = "add_to_cart"
	KeyRemove           = "remove"
	KeyQuantity         = "quantity"
	KeyCheckout         = "checkout"
	KeyTotal            = "total"
	KeyCartEmpty        = "cart_empty"
	KeyCartSavedLocally = "cart_saved_locally"
	KeyOrderCancel      = "order_cancel"
	KeyOrderCancelled   = "order_cancelled"
	KeySubmitReview     = "submit_review"
	KeyReviewAdded      = "review_added"
	KeyLoginFailed      = "login_failed"
	KeyLoginRequired    = "login_required"
	KeyProfileSaved     = "profile_saved"
	KeyStoreInfo        = "store_info"
	KeyContactUs        = "contact_us"
	KeyExportCSV        = "export_csv"
	KeyExportDone       = "export_done"
	KeySettingsSaved    = "settings_saved"
)

// NewLocalization creates a new localization manager
func NewLocalization() *Localization {
	l := &Localization{
		currentLanguage: "zh",
		texts:           make(map[string]map[string]string),
	}

	l.initializeTexts()
	return l
}

// SetLanguage sets the current language
func (l *Localization) SetLanguage(lang string) {
	if _, exists := l.texts[lang]; exists {
		l.currentLanguage = lang
	}
}

// GetText returns localized text for the given key
func (l *Localization) GetText(key string) string {
	if texts, exists := l.texts[l.currentLanguage]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Fallback to Chinese
	if texts, exists := l.texts["zh"]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Final fallback - return key itself
	return key
}

// GetCurrentLanguage returns the current language code
func (l *Localization) GetCurrentLanguage() string {
	return l.currentLanguage
}

// GetAvailableLanguages returns map of available languages with their display names
func (l *Localization) GetAvailableLanguages() map[string]string {
	return map[string]string{
		"zh": "中文",
		"en": "English",
	}
}

// initializeTexts initializes all text translations
func (l *Localization) initializeTexts() {
	// Chinese texts (primary)
	l.texts["zh"] = map[string]string{
		KeyAppTitle:         "水果商城",
		KeyHome:             "首页",
		KeyCart:             "购物车",
		KeyOrders:           "订单",
		KeyProfile:          "个人信息",
		KeyLogin:            "登录",
		KeyLogout:           "退出登录",
		KeyRegister:         "注册",
		KeyUsername:         "用户名",
		KeyPassword:         "密码",
		KeyEmail:            "邮箱",
		KeyPhone:            "电话",
		KeyAddress:          "地址",
		KeySave:             "保存",
		KeyCancel:           "取消",
		KeySettings:         "设置",
		KeyLanguage:         "语言",
		KeyAdmin:            "管理",
		KeyAddToCart:        "加入购物车",
		KeyRemove:           "删除",
		KeyQuantity:         "数量",
		KeyCheckout:         "结算",
		KeyTotal:            "合计",
		KeyCartEmpty:        "购物车是空的",
		KeyCartSavedLocally: "添加失败，已保存到本地购物车",
		KeyOrderCancel:      "取消订单",
		KeyOrderCancelled:   "订单已取消",
		KeySubmitReview:     "提交评价",
		KeyReviewAdded:      "评价已提交",
		KeyLoginFailed:      "登录失败",
		KeyLoginRequired:    "请先登录",
		KeyProfileSaved:     "个人信息已保存",
		KeyStoreInfo:        "店铺信息",
		KeyContactUs:        "联系我们",
		KeyExportCSV:        "导出CSV",
		KeyExportDone:       "导出完成",
		KeySettingsSaved:    "设置已保存",
	}

	// English texts
	l.texts["en"] = map[string]string{
		KeyAppTitle:         "Fruit Mall",
		KeyHome:             "Home",
		KeyCart:             "Cart",
		KeyOrders:           "Orders",
		KeyProfile:          "Profile",
		KeyLogin:            "Login",
		KeyLogout:           "Logout",
		KeyRegister:         "Register",
		KeyUsername:         "Username",
		KeyPassword:         "Password",
		KeyEmail:            "Email",
		KeyPhone:            "Phone",
		KeyAddress:          "Address",
		KeySave:             "Save",
		KeyCancel:           "Cancel",
		KeySettings:         "Settings",
		KeyLanguage:         "Language",
		KeyAdmin:            "Admin",
		KeyAddToCart:        "Add to Cart",
		KeyRemove:           "Remove",
		KeyQuantity:         "Quantity",
		KeyCheckout:         "Checkout",
		KeyTotal:            "Total",
		KeyCartEmpty:        "Your cart is empty",
		KeyCartSavedLocally: "Add failed, saved to local cart",
		KeyOrderCancel:      "Cancel Order",
		KeyOrderCancelled:   "Order cancelled",
		KeySubmitReview:     "Submit Review",
		KeyReviewAdded:      "Review submitted",
		KeyLoginFailed:      "Login failed",
		KeyLoginRequired:    "Please log in first",
		KeyProfileSaved:     "Profile saved",
		KeyStoreInfo:        "Store Info",
		KeyContactUs:        "Contact Us",
		KeyExportCSV:        "Export CSV",
		KeyExportDone:       "Export complete",
		KeySettingsSaved:    "Settings saved",
	}
}
