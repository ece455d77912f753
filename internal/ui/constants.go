package ui

import "time"

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Icons (emojis/symbols)
const (
	IconCart     = "🛒"
	IconOrders   = "📦"
	IconProfile  = "👤"
	IconHome     = "🏠"
	IconStore    = "🏪"
	IconSettings = "⚙"
	IconAdmin    = "🔧"
	IconLanguage = "🌐"
	IconStar     = "★"
	IconStarDim  = "☆"
)

// Text fragments
const (
	MiddleDotSeparator = " · "
	DashPlaceholder    = "—"
	PriceFormat        = "¥%s"
)

// Layout sizing (product and cart lists)
const (
	QuantityLabelWidth float32 = 48
	PriceLabelWidth    float32 = 84

	RowMinWidth  float32 = 400
	RowMinHeight float32 = 64
)

// Toast notification sizing and behavior
const (
	ToastWidth    float32 = 300
	ToastHeight   float32 = 120
	ToastMargin   float32 = 20
	ToastAutoHide         = 5 * time.Second
)

// Debounce durations
const (
	UIUpdateDebounce = 100 * time.Millisecond
)
