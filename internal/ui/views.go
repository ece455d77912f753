package ui

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/fruitmall/fruitmall-client/internal/model"
	"github.com/fruitmall/fruitmall-client/internal/router"
	"github.com/fruitmall/fruitmall-client/internal/store"
)

// homeView shows the catalog with a category filter
func (ui *RootUI) homeView(router.Navigation) fyne.CanvasObject {
	text := ui.localization.GetText
	products := ui.containers.Products

	list := container.NewVBox()
	categorySelect := widget.NewSelect(nil, nil)

	rebuild := func(category string) {
		rows := []fyne.CanvasObject{}
		for _, product := range products.ByCategory(category) {
			rows = append(rows, ui.productRow(product))
		}
		if len(rows) == 0 {
			rows = append(rows, widget.NewLabel(DashPlaceholder))
		}
		list.Objects = rows
		list.Refresh()
	}

	categorySelect.OnChanged = rebuild
	rebuild("")

	go func() {
		products.FetchProducts(context.Background())
		fyne.Do(func() {
			categorySelect.Options = append([]string{""}, products.Categories()...)
			categorySelect.Refresh()
			rebuild(categorySelect.Selected)
		})
	}()

	top := container.NewBorder(nil, nil, widget.NewLabel(text(KeyHome)), nil, categorySelect)
	return container.NewBorder(top, nil, nil, nil, container.NewVScroll(list))
}

// productRow renders one catalog entry with an add-to-cart action
func (ui *RootUI) productRow(product model.Product) fyne.CanvasObject {
	text := ui.localization.GetText

	nameBtn := widget.NewButton(product.Name, func() {
		ui.navigate(fmt.Sprintf("/product/%d", product.ID))
	})
	nameBtn.Importance = widget.LowImportance

	price := product.Price
	priceText := fmt.Sprintf(PriceFormat, price.StringFixed(2))
	if sale, ok := ui.containers.StoreMgmt.FlashSaleByProduct(product.ID); ok {
		priceText = fmt.Sprintf(PriceFormat, sale.SalePrice.StringFixed(2)) + MiddleDotSeparator + priceText
	}

	addBtn := widget.NewButton(text(KeyAddToCart), func() {
		ui.onAddToCart(product)
	})

	details := widget.NewLabel(priceText + MiddleDotSeparator + ratingStars(product.Rating))
	return container.NewBorder(nil, nil, nameBtn, addBtn, details)
}

func (ui *RootUI) onAddToCart(product model.Product) {
	go func() {
		if err := ui.containers.Cart.Add(context.Background(), product, 1); err != nil {
			if store.IsFallback(err) {
				ui.ShowToast(ui.localization.GetText(KeyCartSavedLocally))
			} else {
				ui.ShowToast(err.Error())
			}
		}
	}()
}

// ratingStars renders a 0..5 rating as star glyphs
func ratingStars(rating float64) string {
	full := int(rating + 0.5)
	if full > 5 {
		full = 5
	}
	return strings.Repeat(IconStar, full) + strings.Repeat(IconStarDim, 5-full)
}

// loginView authenticates and honors the post-login redirect parameter
func (ui *RootUI) loginView(nav router.Navigation) fyne.CanvasObject {
	text := ui.localization.GetText
	redirect := nav.Query.Get("redirect")

	username := widget.NewEntry()
	username.SetPlaceHolder(text(KeyUsername))
	password := widget.NewPasswordEntry()
	password.SetPlaceHolder(text(KeyPassword))

	submit := func() {
		go func() {
			_, err := ui.containers.Users.Login(context.Background(), username.Text, password.Text)
			if err != nil {
				ui.ShowToast(text(KeyLoginFailed) + ": " + err.Error())
				return
			}
			fyne.Do(func() {
				ui.rebuildNavBar()
				target := redirect
				if target == "" {
					target = "/"
				}
				ui.navigate(target)
			})
			ui.containers.Cart.Fetch(context.Background())
		}()
	}
	password.OnSubmitted = func(string) { submit() }

	loginBtn := widget.NewButton(text(KeyLogin), submit)
	loginBtn.Importance = widget.HighImportance

	form := container.NewVBox(
		widget.NewLabel(text(KeyLogin)),
		widget.NewSeparator(),
		username,
		password,
		loginBtn,
		widget.NewButton(text(KeyRegister), func() { ui.navigate("/register") }),
	)
	return container.NewCenter(container.NewGridWrap(fyne.NewSize(320, form.MinSize().Height), form))
}

// registerView creates an account, then routes to login
func (ui *RootUI) registerView(router.Navigation) fyne.CanvasObject {
	text := ui.localization.GetText

	username := widget.NewEntry()
	username.SetPlaceHolder(text(KeyUsername))
	password := widget.NewPasswordEntry()
	password.SetPlaceHolder(text(KeyPassword))
	email := widget.NewEntry()
	email.SetPlaceHolder(text(KeyEmail))
	phone := widget.NewEntry()
	phone.SetPlaceHolder(text(KeyPhone))

	registerBtn := widget.NewButton(text(KeyRegister), func() {
		go func() {
			req := store.RegisterRequest{
				Username: username.Text,
				Password: password.Text,
				Email:    email.Text,
				Phone:    phone.Text,
			}
			if err := ui.containers.Users.Register(context.Background(), req); err != nil {
				ui.ShowToast(err.Error())
				return
			}
			fyne.Do(func() { ui.navigate("/login") })
		}()
	})
	registerBtn.Importance = widget.HighImportance

	form := container.NewVBox(
		widget.NewLabel(text(KeyRegister)),
		widget.NewSeparator(),
		username,
		password,
		email,
		phone,
		registerBtn,
	)
	return container.NewCenter(container.NewGridWrap(fyne.NewSize(320, form.MinSize().Height), form))
}

// cartView lists line items with quantity controls and checkout
func (ui *RootUI) cartView(router.Navigation) fyne.CanvasObject {
	text := ui.localization.GetText
	cart := ui.containers.Cart

	list := container.NewVBox()
	totalLabel := widget.NewLabel("")
	totalLabel.TextStyle = fyne.TextStyle{Bold: true}

	var rebuild func()
	rebuild = func() {
		items := cart.Items()
		rows := []fyne.CanvasObject{}
		for _, item := range items {
			rows = append(rows, ui.cartRow(item, rebuild))
		}
		if len(rows) == 0 {
			rows = append(rows, widget.NewLabel(text(KeyCartEmpty)))
		}
		list.Objects = rows
		list.Refresh()
		totalLabel.SetText(fmt.Sprintf("%s: %d%s"+PriceFormat,
			text(KeyTotal), cart.TotalItems(), MiddleDotSeparator, cart.TotalPrice().StringFixed(2)))
	}
	rebuild()

	go func() {
		cart.Fetch(context.Background())
		fyne.Do(rebuild)
	}()

	address := widget.NewEntry()
	address.SetPlaceHolder(text(KeyAddress))
	payment := widget.NewSelect([]string{"alipay", "wechat", "card"}, nil)

	checkoutBtn := widget.NewButton(text(KeyCheckout), func() {
		go func() {
			_, err := ui.containers.Orders.Create(context.Background(), model.CheckoutRequest{
				CartItems:       cart.Items(),
				ShippingAddress: address.Text,
				PaymentMethod:   payment.Selected,
			})
			if err != nil {
				ui.ShowToast(err.Error())
				return
			}
			// The backend clears the server-side cart during checkout
			cart.Fetch(context.Background())
			fyne.Do(func() { ui.navigate("/orders") })
		}()
	})
	checkoutBtn.Importance = widget.HighImportance

	bottom := container.NewVBox(
		widget.NewSeparator(),
		totalLabel,
		address,
		container.NewBorder(nil, nil, payment, checkoutBtn),
	)
	return container.NewBorder(nil, bottom, nil, nil, container.NewVScroll(list))
}

// cartRow renders one cart line with quantity and remove controls
func (ui *RootUI) cartRow(item model.CartItem, onChanged func()) fyne.CanvasObject {
	text := ui.localization.GetText
	cart := ui.containers.Cart

	apply := func(action func(context.Context) error) {
		go func() {
			if err := action(context.Background()); err != nil {
				if store.IsFallback(err) {
					ui.ShowToast(ui.localization.GetText(KeyCartSavedLocally))
				} else {
					ui.ShowToast(err.Error())
				}
			}
			fyne.Do(onChanged)
		}()
	}

	decBtn := widget.NewButton("-", func() {
		apply(func(ctx context.Context) error {
			return cart.UpdateQuantity(ctx, item.ProductID, item.Quantity-1)
		})
	})
	incBtn := widget.NewButton("+", func() {
		apply(func(ctx context.Context) error {
			return cart.UpdateQuantity(ctx, item.ProductID, item.Quantity+1)
		})
	})
	removeBtn := widget.NewButton(text(KeyRemove), func() {
		apply(func(ctx context.Context) error {
			return cart.Remove(ctx, item.ProductID)
		})
	})

	qty := widget.NewLabel(strconv.Itoa(item.Quantity))
	line := widget.NewLabel(fmt.Sprintf("%s"+MiddleDotSeparator+PriceFormat, item.Name, item.LineTotal().StringFixed(2)))
	controls := container.NewHBox(decBtn, qty, incBtn, removeBtn)
	return container.NewBorder(nil, nil, line, controls)
}

// ordersView lists the user's orders with cancel actions
func (ui *RootUI) ordersView(router.Navigation) fyne.CanvasObject {
	text := ui.localization.GetText
	orders := ui.containers.Orders

	list := container.NewVBox()

	var rebuild func()
	rebuild = func() {
		rows := []fyne.CanvasObject{}
		for _, order := range orders.Orders() {
			rows = append(rows, ui.orderRow(order, rebuild))
		}
		if len(rows) == 0 {
			rows = append(rows, widget.NewLabel(DashPlaceholder))
		}
		list.Objects = rows
		list.Refresh()
	}
	rebuild()

	go func() {
		params := store.OrderListParams{Page: 1, Size: ui.settings.GetPageSize()}
		if err := orders.Fetch(context.Background(), params); err != nil {
			ui.ShowToast(err.Error())
			return
		}
		fyne.Do(rebuild)
	}()

	header := widget.NewLabel(text(KeyOrders))
	header.TextStyle = fyne.TextStyle{Bold: true}
	return container.NewBorder(header, nil, nil, nil, container.NewVScroll(list))
}

// orderRow renders one order summary line
func (ui *RootUI) orderRow(order model.Order, onChanged func()) fyne.CanvasObject {
	text := ui.localization.GetText

	summary := fmt.Sprintf("#%d"+MiddleDotSeparator+"%s"+MiddleDotSeparator+PriceFormat,
		order.ID, order.Status, order.Amount.StringFixed(2))
	label := widget.NewLabel(summary)

	if !order.Status.IsCancellable() {
		return label
	}

	orderID := order.ID
	cancelBtn := widget.NewButton(text(KeyOrderCancel), func() {
		go func() {
			if err := ui.containers.Orders.Cancel(context.Background(), orderID); err != nil {
				ui.ShowToast(err.Error())
				return
			}
			ui.ShowToast(ui.localization.GetText(KeyOrderCancelled))
			fyne.Do(onChanged)
		}()
	})
	return container.NewBorder(nil, nil, label, cancelBtn)
}

// profileView edits the signed-in user's contact details
func (ui *RootUI) profileView(router.Navigation) fyne.CanvasObject {
	text := ui.localization.GetText
	current := ui.containers.Users.Current()
	if current == nil {
		return widget.NewLabel(text(KeyLoginRequired))
	}

	username := widget.NewEntry()
	username.SetText(current.Username)
	email := widget.NewEntry()
	email.SetText(current.Email)
	phone := widget.NewEntry()
	phone.SetText(current.Phone)
	address := widget.NewEntry()
	address.SetText(current.Address)

	saveBtn := widget.NewButton(text(KeySave), func() {
		go func() {
			update := store.ProfileUpdate{
				Username: username.Text,
				Email:    email.Text,
				Phone:    phone.Text,
				Address:  address.Text,
			}
			if _, err := ui.containers.Users.UpdateProfile(context.Background(), update); err != nil {
				ui.ShowToast(err.Error())
				return
			}
			ui.ShowToast(ui.localization.GetText(KeyProfileSaved))
		}()
	})
	saveBtn.Importance = widget.HighImportance

	form := container.NewVBox(
		widget.NewLabel(text(KeyProfile)),
		widget.NewSeparator(),
		widget.NewLabel(text(KeyUsername)+":"), username,
		widget.NewLabel(text(KeyEmail)+":"), email,
		widget.NewLabel(text(KeyPhone)+":"), phone,
		widget.NewLabel(text(KeyAddress)+":"), address,
		saveBtn,
	)
	return container.NewCenter(container.NewGridWrap(fyne.NewSize(360, form.MinSize().Height), form))
}

// productDetailView shows one product with its reviews and a review form
func (ui *RootUI) productDetailView(nav router.Navigation) fyne.CanvasObject {
	text := ui.localization.GetText
	productID, err := strconv.ParseInt(nav.Params["id"], 10, 64)
	if err != nil {
		return widget.NewLabel(DashPlaceholder)
	}

	content := container.NewVBox(widget.NewLabel(DashPlaceholder))

	var rebuild func()
	rebuild = func() {
		product := ui.containers.Products.ByID(productID)
		if product == nil {
			return
		}

		title := widget.NewLabel(product.Name)
		title.TextStyle = fyne.TextStyle{Bold: true}
		details := widget.NewLabel(fmt.Sprintf(
			PriceFormat+MiddleDotSeparator+"%s"+MiddleDotSeparator+"%s %d",
			product.Price.StringFixed(2), ratingStars(product.Rating), text(KeyQuantity), product.Stock))

		addBtn := widget.NewButton(text(KeyAddToCart), func() { ui.onAddToCart(*product) })

		rows := []fyne.CanvasObject{
			container.NewBorder(nil, nil, title, addBtn),
			details,
			widget.NewLabel(product.Description),
			widget.NewSeparator(),
		}
		for _, review := range product.Reviews {
			rows = append(rows, widget.NewLabel(
				ratingStars(float64(review.Rating))+MiddleDotSeparator+review.Comment+MiddleDotSeparator+review.Date))
		}

		ratingSelect := widget.NewSelect([]string{"1", "2", "3", "4", "5"}, nil)
		comment := widget.NewEntry()
		comment.SetPlaceHolder(text(KeySubmitReview))
		submitBtn := widget.NewButton(text(KeySubmitReview), func() {
			rating, _ := strconv.Atoi(ratingSelect.Selected)
			go func() {
				req := store.ReviewRequest{Rating: rating, Comment: comment.Text}
				if err := ui.containers.Products.AddReview(context.Background(), productID, req); err != nil {
					ui.ShowToast(err.Error())
					return
				}
				ui.ShowToast(ui.localization.GetText(KeyReviewAdded))
				fyne.Do(rebuild)
			}()
		})
		rows = append(rows, container.NewBorder(nil, nil, ratingSelect, submitBtn, comment))

		content.Objects = rows
		content.Refresh()
	}
	rebuild()

	go func() {
		if _, err := ui.containers.Products.FetchProduct(context.Background(), productID); err != nil {
			ui.ShowToast(err.Error())
			return
		}
		fyne.Do(rebuild)
	}()

	return container.NewVScroll(content)
}

// storeInfoView shows the storefront's public details and status
func (ui *RootUI) storeInfoView(router.Navigation) fyne.CanvasObject {
	info := ui.containers.StoreMgmt.Info()

	title := widget.NewLabel(info.Name)
	title.TextStyle = fyne.TextStyle{Bold: true}

	return container.NewVBox(
		title,
		widget.NewLabel(ui.containers.StoreMgmt.StatusText()),
		widget.NewSeparator(),
		widget.NewLabel(info.Description),
		widget.NewLabel(info.Address),
		widget.NewLabel(info.OpeningHours),
	)
}

// contactUsView shows the storefront's contact channels
func (ui *RootUI) contactUsView(router.Navigation) fyne.CanvasObject {
	text := ui.localization.GetText
	info := ui.containers.StoreMgmt.Info()

	title := widget.NewLabel(text(KeyContactUs))
	title.TextStyle = fyne.TextStyle{Bold: true}

	return container.NewVBox(
		title,
		widget.NewSeparator(),
		widget.NewLabel(text(KeyPhone)+": "+info.Phone),
		widget.NewLabel(text(KeyEmail)+": "+info.Email),
		widget.NewLabel(text(KeyAddress)+": "+info.Address),
	)
}
