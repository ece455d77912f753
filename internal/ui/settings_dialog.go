package ui

import (
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/fruitmall/fruitmall-client/internal/config"
)

// ShowSettingsDialog displays the settings dialog. onLanguageChange is
// invoked after save when the language selection changed.
func ShowSettingsDialog(window fyne.Window, settings *config.Settings, localization *Localization, onLanguageChange func(string)) {
	text := localization.GetText

	languageOptions := []string{}
	for code := range settings.GetLanguageOptions() {
		languageOptions = append(languageOptions, code)
	}
	languageSelect := widget.NewSelect(languageOptions, nil)
	languageSelect.SetSelected(settings.GetLanguage())

	pageSizeEntry := widget.NewEntry()
	pageSizeEntry.SetPlaceHolder("1-100")
	pageSizeEntry.SetText(strconv.Itoa(settings.GetPageSize()))

	form := container.NewVBox(
		widget.NewLabel(text(KeyLanguage)+":"),
		languageSelect,

		widget.NewLabel(text(KeyOrders)+" / "+text(KeyQuantity)+":"),
		pageSizeEntry,
	)

	confirm := dialog.NewCustomConfirm(
		text(KeySettings),
		text(KeySave),
		text(KeyCancel),
		form,
		func(confirmed bool) {
			if !confirmed {
				return
			}

			if pageSizeEntry.Text != "" {
				if size, err := strconv.Atoi(pageSizeEntry.Text); err == nil {
					settings.SetPageSize(size)
				}
			}

			if languageSelect.Selected != "" && languageSelect.Selected != settings.GetLanguage() {
				onLanguageChange(languageSelect.Selected)
			}

			dialog.ShowInformation(text(KeySettings), text(KeySettingsSaved), window)
		},
		window,
	)

	confirm.Resize(fyne.NewSize(400, 260))
	confirm.Show()
}
