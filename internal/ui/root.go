package ui

import (
	"context"
	"fmt"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
	"github.com/rs/zerolog"

	"github.com/fruitmall/fruitmall-client/internal/config"
	"github.com/fruitmall/fruitmall-client/internal/router"
	"github.com/fruitmall/fruitmall-client/internal/store"
)

// Containers bundles the state containers the shell renders from
type Containers struct {
	Users     *store.UserStore
	Cart      *store.CartStore
	Orders    *store.OrderStore
	Products  *store.ProductStore
	StoreMgmt *store.StoreManagementStore
}

// RootUI represents the main UI structure: navigation bar on top, the
// router-driven content area below, toasts overlaid on demand.
type RootUI struct {
	window       fyne.Window
	nav          *router.Router
	settings     *config.Settings
	localization *Localization
	log          zerolog.Logger

	containers Containers

	content  *fyne.Container
	navBar   *fyne.Container
	cartBtn  *widget.Button
	views    map[string]func(router.Navigation) fyne.CanvasObject
}

// NewRootUI creates and initializes the main UI
func NewRootUI(window fyne.Window, app fyne.App, nav *router.Router, containers Containers, log zerolog.Logger) *RootUI {
	settings := config.NewSettings(app)

	localization := NewLocalization()
	localization.SetLanguage(settings.GetLanguage())

	ui := &RootUI{
		window:       window,
		nav:          nav,
		settings:     settings,
		localization: localization,
		log:          log,
		containers:   containers,
	}

	ui.registerViews()

	nav.SetTitleCallback(window.SetTitle)
	nav.SetNoticeCallback(ui.ShowToast)
	nav.SetShowCallback(ui.showView)
	containers.Cart.SetChangeCallback(ui.refreshCartButton)

	ui.setupUI()
	return ui
}

// setupUI creates and arranges all UI components
func (ui *RootUI) setupUI() {
	ui.content = container.NewStack()
	ui.navBar = container.NewHBox()
	ui.rebuildNavBar()

	ui.window.SetContent(container.NewBorder(
		container.NewVBox(ui.navBar, widget.NewSeparator()),
		nil, nil, nil,
		ui.content,
	))
}

// rebuildNavBar recreates the navigation buttons for the current
// session. Called after login, logout, and language changes.
func (ui *RootUI) rebuildNavBar() {
	text := ui.localization.GetText

	ui.cartBtn = widget.NewButton(ui.cartLabel(), func() { ui.navigate("/cart") })

	buttons := []fyne.CanvasObject{
		widget.NewButton(IconHome+" "+text(KeyHome), func() { ui.navigate("/") }),
		ui.cartBtn,
		widget.NewButton(IconOrders+" "+text(KeyOrders), func() { ui.navigate("/orders") }),
		widget.NewButton(IconStore+" "+text(KeyStoreInfo), func() { ui.navigate("/store-info") }),
	}

	if ui.containers.Users.IsAdmin() {
		buttons = append(buttons, widget.NewButton(IconAdmin+" "+text(KeyAdmin), func() { ui.navigate("/admin/dashboard") }))
	}

	if ui.containers.Users.IsAuthenticated() {
		buttons = append(buttons,
			widget.NewButton(IconProfile+" "+text(KeyProfile), func() { ui.navigate("/profile") }),
			widget.NewButton(text(KeyLogout), ui.onLogout),
		)
	} else {
		buttons = append(buttons,
			widget.NewButton(text(KeyLogin), func() { ui.navigate("/login") }),
			widget.NewButton(text(KeyRegister), func() { ui.navigate("/register") }),
		)
	}

	settingsBtn := widget.NewButton(IconSettings, ui.onShowSettings)
	settingsBtn.Importance = widget.LowImportance
	buttons = append(buttons, settingsBtn)

	ui.navBar.Objects = buttons
	ui.navBar.Refresh()
}

func (ui *RootUI) cartLabel() string {
	label := IconCart + " " + ui.localization.GetText(KeyCart)
	if count := ui.containers.Cart.TotalItems(); count > 0 {
		label = fmt.Sprintf("%s (%d)", label, count)
	}
	return label
}

func (ui *RootUI) refreshCartButton() {
	if ui.cartBtn == nil {
		return
	}
	fyne.Do(func() {
		ui.cartBtn.SetText(ui.cartLabel())
	})
}

func (ui *RootUI) navigate(path string) {
	if err := ui.nav.Navigate(path); err != nil {
		ui.log.Warn().Str("path", path).Err(err).Msg("navigation failed")
	}
}

// showView swaps the content area to the target view
func (ui *RootUI) showView(nav router.Navigation) {
	factory, ok := ui.views[nav.Route.Name]
	if !ok {
		ui.log.Warn().Str("route", nav.Route.Name).Msg("no view registered")
		return
	}
	ui.content.Objects = []fyne.CanvasObject{factory(nav)}
	ui.content.Refresh()
}

// onLogout clears the session and returns to the home view
func (ui *RootUI) onLogout() {
	ui.containers.Users.Logout(context.Background())
	ui.containers.Cart.ResetLocal()
	ui.rebuildNavBar()
	ui.navigate("/")
}

// onLanguageChange handles language selection
func (ui *RootUI) onLanguageChange(langCode string) {
	ui.localization.SetLanguage(langCode)
	ui.settings.SetLanguage(langCode)
	ui.rebuildNavBar()
	if current := ui.nav.Current(); current != nil {
		ui.navigate(current.Route.Path)
	}
}

// onShowSettings displays the settings dialog
func (ui *RootUI) onShowSettings() {
	ShowSettingsDialog(ui.window, ui.settings, ui.localization, ui.onLanguageChange)
}

// ShowToast shows an auto-hiding in-app notification in the top-right
// corner. Used for guard denials, fallback warnings, and API errors.
func (ui *RootUI) ShowToast(message string) {
	fyne.Do(func() {
		messageLabel := widget.NewLabel(message)
		messageLabel.Wrapping = fyne.TextWrapWord

		var toastPopup *widget.PopUp
		closeBtn := widget.NewButton("×", func() {
			if toastPopup != nil {
				toastPopup.Hide()
			}
		})
		closeBtn.Importance = widget.LowImportance

		content := container.NewBorder(nil, nil, nil, closeBtn, messageLabel)
		toastPopup = widget.NewPopUp(content, ui.window.Canvas())

		canvasSize := ui.window.Canvas().Size()
		toastSize := fyne.NewSize(ToastWidth, ToastHeight)
		toastPopup.Resize(toastSize)
		toastPopup.Move(fyne.NewPos(canvasSize.Width-toastSize.Width-ToastMargin, ToastMargin))
		toastPopup.Show()

		go func() {
			time.Sleep(ToastAutoHide)
			fyne.Do(toastPopup.Hide)
		}()
	})
}

// registerViews binds route names to their lazily-invoked factories
func (ui *RootUI) registerViews() {
	ui.views = map[string]func(router.Navigation) fyne.CanvasObject{
		"Home":             ui.homeView,
		"Login":            ui.loginView,
		"Register":         ui.registerView,
		"Orders":           ui.ordersView,
		"Cart":             ui.cartView,
		"Profile":          ui.profileView,
		"ProductDetail":    ui.productDetailView,
		"StoreInfo":        ui.storeInfoView,
		"ContactUs":        ui.contactUsView,
		"AdminDashboard":   ui.adminDashboardView,
		"AdminProducts":    ui.adminProductsView,
		"AdminStatistics":  ui.adminStatisticsView,
		"AdminEmployees":   ui.adminEmployeesView,
		"AdminStoreStatus": ui.adminStoreStatusView,
		"AdminCoupons":     ui.adminCouponsView,
		"AdminSales":       ui.adminSalesView,
		"AdminStore":       ui.adminStoreView,
		"AdminUsers":       ui.adminUsersView,
	}
}
