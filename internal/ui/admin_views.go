package ui

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
	"github.com/shopspring/decimal"

	"github.com/fruitmall/fruitmall-client/internal/model"
	"github.com/fruitmall/fruitmall-client/internal/platform"
	"github.com/fruitmall/fruitmall-client/internal/router"
	"github.com/fruitmall/fruitmall-client/internal/store"
)

// adminDashboardView shows back-office shortcuts with live counts
func (ui *RootUI) adminDashboardView(router.Navigation) fyne.CanvasObject {
	mgmt := ui.containers.StoreMgmt

	title := widget.NewLabel("管理员仪表盘")
	title.TextStyle = fyne.TextStyle{Bold: true}

	shortcuts := []struct {
		label string
		path  string
	}{
		{fmt.Sprintf("商品管理 (%d)", len(ui.containers.Products.Products())), "/admin/products"},
		{"统计数据", "/admin/statistics"},
		{fmt.Sprintf("员工管理 (%d)", len(mgmt.Employees())), "/admin/employees"},
		{"商店状态" + MiddleDotSeparator + mgmt.StatusText(), "/admin/store-status"},
		{fmt.Sprintf("优惠券管理 (%d)", len(mgmt.Coupons())), "/admin/coupons"},
		{"销售分析", "/admin/sales"},
		{"商店管理", "/admin/store"},
		{"用户管理", "/admin/users"},
	}

	rows := []fyne.CanvasObject{title, widget.NewSeparator()}
	for _, shortcut := range shortcuts {
		path := shortcut.path
		rows = append(rows, widget.NewButton(shortcut.label, func() { ui.navigate(path) }))
	}
	return container.NewVScroll(container.NewVBox(rows...))
}

// adminProductsView lists the catalog with flash sale controls
func (ui *RootUI) adminProductsView(router.Navigation) fyne.CanvasObject {
	mgmt := ui.containers.StoreMgmt
	products := ui.containers.Products

	list := container.NewVBox()

	var rebuild func()
	rebuild = func() {
		rows := []fyne.CanvasObject{}
		for _, product := range products.Products() {
			p := product
			line := fmt.Sprintf("%s"+MiddleDotSeparator+PriceFormat+MiddleDotSeparator+"库存 %d",
				p.Name, p.Price.StringFixed(2), p.Stock)

			var action *widget.Button
			if sale, ok := mgmt.FlashSaleByProduct(p.ID); ok {
				action = widget.NewButton("取消特卖 "+fmt.Sprintf(PriceFormat, sale.SalePrice.StringFixed(2)), func() {
					mgmt.RemoveFlashSale(sale.ID)
					rebuild()
				})
			} else {
				action = widget.NewButton("设为特卖", func() {
					ui.showFlashSaleDialog(p, rebuild)
				})
			}
			rows = append(rows, container.NewBorder(nil, nil, widget.NewLabel(line), action))
		}
		if len(rows) == 0 {
			rows = append(rows, widget.NewLabel(DashPlaceholder))
		}
		list.Objects = rows
		list.Refresh()
	}
	rebuild()

	go func() {
		products.FetchProducts(context.Background())
		fyne.Do(rebuild)
	}()

	header := widget.NewLabel("商品管理")
	header.TextStyle = fyne.TextStyle{Bold: true}
	return container.NewBorder(header, nil, nil, nil, container.NewVScroll(list))
}

// showFlashSaleDialog collects a sale price for the product
func (ui *RootUI) showFlashSaleDialog(product model.Product, onDone func()) {
	priceEntry := widget.NewEntry()
	priceEntry.SetPlaceHolder(product.Price.StringFixed(2))

	var popup *widget.PopUp
	confirmBtn := widget.NewButton("确定", func() {
		price, err := decimal.NewFromString(priceEntry.Text)
		if err == nil && price.IsPositive() {
			ui.containers.StoreMgmt.AddFlashSale(model.FlashSale{
				ProductID: product.ID,
				SalePrice: price,
				StartsAt:  time.Now(),
				EndsAt:    time.Now().Add(24 * time.Hour),
			})
			onDone()
		}
		popup.Hide()
	})
	cancelBtn := widget.NewButton(ui.localization.GetText(KeyCancel), func() { popup.Hide() })

	content := container.NewVBox(
		widget.NewLabel(product.Name),
		priceEntry,
		container.NewHBox(confirmBtn, cancelBtn),
	)
	popup = widget.NewModalPopUp(content, ui.window.Canvas())
	popup.Show()
}

// adminStatisticsView shows order volume and the sales series
func (ui *RootUI) adminStatisticsView(router.Navigation) fyne.CanvasObject {
	orders := ui.containers.Orders
	stats := ui.containers.StoreMgmt.SalesStatistics()

	header := widget.NewLabel("统计数据")
	header.TextStyle = fyne.TextStyle{Bold: true}

	totalLabel := widget.NewLabel(fmt.Sprintf("订单总数: %d", orders.Total()))

	rows := []fyne.CanvasObject{header, widget.NewSeparator(), totalLabel}
	for _, point := range stats.Daily {
		rows = append(rows, widget.NewLabel(fmt.Sprintf(
			"%s"+MiddleDotSeparator+"%d 单"+MiddleDotSeparator+PriceFormat,
			point.Label, point.Orders, point.Revenue.StringFixed(2))))
	}

	go func() {
		if err := orders.Fetch(context.Background(), store.OrderListParams{Page: 1, Size: 1}); err != nil {
			return
		}
		fyne.Do(func() {
			totalLabel.SetText(fmt.Sprintf("订单总数: %d", orders.Total()))
		})
	}()

	return container.NewVScroll(container.NewVBox(rows...))
}

// adminEmployeesView manages the staff roster
func (ui *RootUI) adminEmployeesView(router.Navigation) fyne.CanvasObject {
	mgmt := ui.containers.StoreMgmt

	list := container.NewVBox()

	var rebuild func()
	rebuild = func() {
		rows := []fyne.CanvasObject{}
		for _, employee := range mgmt.Employees() {
			e := employee
			line := e.Name + MiddleDotSeparator + e.Role
			if e.Phone != "" {
				line += MiddleDotSeparator + e.Phone
			}
			removeBtn := widget.NewButton(ui.localization.GetText(KeyRemove), func() {
				mgmt.RemoveEmployee(e.ID)
				rebuild()
			})
			rows = append(rows, container.NewBorder(nil, nil, widget.NewLabel(line), removeBtn))
		}
		if len(rows) == 0 {
			rows = append(rows, widget.NewLabel(DashPlaceholder))
		}
		list.Objects = rows
		list.Refresh()
	}
	rebuild()

	nameEntry := widget.NewEntry()
	nameEntry.SetPlaceHolder("姓名")
	roleEntry := widget.NewEntry()
	roleEntry.SetPlaceHolder("职位")
	phoneEntry := widget.NewEntry()
	phoneEntry.SetPlaceHolder("电话")

	addBtn := widget.NewButton("添加员工", func() {
		if nameEntry.Text == "" {
			return
		}
		mgmt.AddEmployee(model.Employee{
			Name:     nameEntry.Text,
			Role:     roleEntry.Text,
			Phone:    phoneEntry.Text,
			IsActive: true,
		})
		nameEntry.SetText("")
		roleEntry.SetText("")
		phoneEntry.SetText("")
		rebuild()
	})

	header := widget.NewLabel("员工管理")
	header.TextStyle = fyne.TextStyle{Bold: true}
	form := container.NewVBox(widget.NewSeparator(), nameEntry, roleEntry, phoneEntry, addBtn)
	return container.NewBorder(header, form, nil, nil, container.NewVScroll(list))
}

// adminStoreStatusView switches the storefront operating state
func (ui *RootUI) adminStoreStatusView(router.Navigation) fyne.CanvasObject {
	mgmt := ui.containers.StoreMgmt

	current := widget.NewLabel(mgmt.StatusText())
	current.TextStyle = fyne.TextStyle{Bold: true}

	options := []model.StoreStatus{
		model.StoreStatusOpen,
		model.StoreStatusClosed,
		model.StoreStatusHoliday,
		model.StoreStatusMaintenance,
	}

	rows := []fyne.CanvasObject{widget.NewLabel("商店状态"), current, widget.NewSeparator()}
	for _, option := range options {
		status := option
		rows = append(rows, widget.NewButton(store.StatusLabel(status), func() {
			mgmt.UpdateStatus(status)
			current.SetText(mgmt.StatusText())
		}))
	}

	return container.NewVBox(rows...)
}

// adminCouponsView manages discount vouchers
func (ui *RootUI) adminCouponsView(router.Navigation) fyne.CanvasObject {
	mgmt := ui.containers.StoreMgmt

	list := container.NewVBox()

	var rebuild func()
	rebuild = func() {
		rows := []fyne.CanvasObject{}
		for _, coupon := range mgmt.Coupons() {
			c := coupon
			line := fmt.Sprintf("%s"+MiddleDotSeparator+"减 "+PriceFormat+MiddleDotSeparator+"满 "+PriceFormat,
				c.Code, c.Discount.StringFixed(2), c.MinSpend.StringFixed(2))
			removeBtn := widget.NewButton(ui.localization.GetText(KeyRemove), func() {
				mgmt.RemoveCoupon(c.ID)
				rebuild()
			})
			rows = append(rows, container.NewBorder(nil, nil, widget.NewLabel(line), removeBtn))
		}
		if len(rows) == 0 {
			rows = append(rows, widget.NewLabel(DashPlaceholder))
		}
		list.Objects = rows
		list.Refresh()
	}
	rebuild()

	codeEntry := widget.NewEntry()
	codeEntry.SetPlaceHolder("优惠码")
	discountEntry := widget.NewEntry()
	discountEntry.SetPlaceHolder("折扣金额")
	minSpendEntry := widget.NewEntry()
	minSpendEntry.SetPlaceHolder("最低消费")

	addBtn := widget.NewButton("添加优惠券", func() {
		discount, err := decimal.NewFromString(discountEntry.Text)
		if codeEntry.Text == "" || err != nil {
			return
		}
		minSpend, err := decimal.NewFromString(minSpendEntry.Text)
		if err != nil {
			minSpend = decimal.Zero
		}
		mgmt.AddCoupon(model.Coupon{
			Code:     codeEntry.Text,
			Discount: discount,
			MinSpend: minSpend,
			IsActive: true,
		})
		codeEntry.SetText("")
		discountEntry.SetText("")
		minSpendEntry.SetText("")
		rebuild()
	})

	header := widget.NewLabel("优惠券管理")
	header.TextStyle = fyne.TextStyle{Bold: true}
	form := container.NewVBox(widget.NewSeparator(), codeEntry, discountEntry, minSpendEntry, addBtn)
	return container.NewBorder(header, form, nil, nil, container.NewVScroll(list))
}

// adminSalesView shows the sales series and exports them to CSV
func (ui *RootUI) adminSalesView(router.Navigation) fyne.CanvasObject {
	text := ui.localization.GetText
	mgmt := ui.containers.StoreMgmt
	stats := mgmt.SalesStatistics()

	header := widget.NewLabel("销售分析")
	header.TextStyle = fyne.TextStyle{Bold: true}

	rows := []fyne.CanvasObject{header, widget.NewSeparator()}
	sections := []struct {
		label  string
		points []model.SalesPoint
	}{
		{"日", stats.Daily},
		{"周", stats.Weekly},
		{"月", stats.Monthly},
	}
	for _, section := range sections {
		if len(section.points) == 0 {
			continue
		}
		rows = append(rows, widget.NewLabel(section.label))
		for _, point := range section.points {
			rows = append(rows, widget.NewLabel(fmt.Sprintf(
				"%s"+MiddleDotSeparator+"%d 单"+MiddleDotSeparator+PriceFormat,
				point.Label, point.Orders, point.Revenue.StringFixed(2))))
		}
	}
	if len(rows) == 2 {
		rows = append(rows, widget.NewLabel(DashPlaceholder))
	}

	exportBtn := widget.NewButton(text(KeyExportCSV), func() {
		go func() {
			dir, err := platform.DefaultExportDir()
			if err != nil {
				ui.ShowToast(err.Error())
				return
			}
			path := filepath.Join(dir, fmt.Sprintf("sales-%s.csv", time.Now().Format("20060102-150405")))
			if _, err := platform.ExportSalesCSV(path, mgmt.SalesStatistics()); err != nil {
				ui.ShowToast(err.Error())
				return
			}
			ui.ShowToast(text(KeyExportDone) + ": " + path)
		}()
	})
	exportBtn.Importance = widget.HighImportance

	return container.NewBorder(nil, exportBtn, nil, nil, container.NewVScroll(container.NewVBox(rows...)))
}

// adminStoreView edits the storefront's public details
func (ui *RootUI) adminStoreView(router.Navigation) fyne.CanvasObject {
	mgmt := ui.containers.StoreMgmt
	info := mgmt.Info()

	nameEntry := widget.NewEntry()
	nameEntry.SetText(info.Name)
	addressEntry := widget.NewEntry()
	addressEntry.SetText(info.Address)
	phoneEntry := widget.NewEntry()
	phoneEntry.SetText(info.Phone)
	emailEntry := widget.NewEntry()
	emailEntry.SetText(info.Email)
	hoursEntry := widget.NewEntry()
	hoursEntry.SetText(info.OpeningHours)
	descEntry := widget.NewMultiLineEntry()
	descEntry.SetText(info.Description)

	saveBtn := widget.NewButton(ui.localization.GetText(KeySave), func() {
		mgmt.UpdateInfo(model.StoreInfo{
			Name:         nameEntry.Text,
			Address:      addressEntry.Text,
			Phone:        phoneEntry.Text,
			Email:        emailEntry.Text,
			OpeningHours: hoursEntry.Text,
			Description:  descEntry.Text,
		})
		ui.ShowToast(ui.localization.GetText(KeySettingsSaved))
	})
	saveBtn.Importance = widget.HighImportance

	header := widget.NewLabel("商店管理")
	header.TextStyle = fyne.TextStyle{Bold: true}
	return container.NewVScroll(container.NewVBox(
		header,
		widget.NewSeparator(),
		nameEntry, addressEntry, phoneEntry, emailEntry, hoursEntry, descEntry,
		saveBtn,
	))
}

// adminUsersView lists all accounts
func (ui *RootUI) adminUsersView(router.Navigation) fyne.CanvasObject {
	list := container.NewVBox(widget.NewLabel(DashPlaceholder))

	go func() {
		users, err := ui.containers.Users.ListUsers(context.Background())
		if err != nil {
			ui.ShowToast(err.Error())
			return
		}
		fyne.Do(func() {
			rows := []fyne.CanvasObject{}
			for _, user := range users {
				line := fmt.Sprintf("#%d"+MiddleDotSeparator+"%s", user.ID, user.Username)
				if user.Email != "" {
					line += MiddleDotSeparator + user.Email
				}
				if user.IsAdmin() {
					line += MiddleDotSeparator + IconAdmin
				}
				rows = append(rows, widget.NewLabel(line))
			}
			if len(rows) == 0 {
				rows = append(rows, widget.NewLabel(DashPlaceholder))
			}
			list.Objects = rows
			list.Refresh()
		})
	}()

	header := widget.NewLabel("用户管理")
	header.TextStyle = fyne.TextStyle{Bold: true}
	return container.NewBorder(header, nil, nil, nil, container.NewVScroll(list))
}
