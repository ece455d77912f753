package config

import (
	"fyne.io/fyne/v2"
)

// Settings keys for Fyne preferences
const (
	KeyLanguage = "app_language"
	KeyPageSize = "order_page_size"
)

// Default values
const (
	DefaultLanguage = "zh"
	DefaultPageSize = 10
)

// Settings manages per-user application preferences
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// GetLanguage returns the configured UI language
func (s *Settings) GetLanguage() string {
	lang := s.app.Preferences().String(KeyLanguage)
	if lang == "" {
		s.SetLanguage(DefaultLanguage)
		return DefaultLanguage
	}
	return lang
}

// SetLanguage sets the UI language
func (s *Settings) SetLanguage(lang string) {
	s.app.Preferences().SetString(KeyLanguage, lang)
}

// GetPageSize returns the order list page size
func (s *Settings) GetPageSize() int {
	size := s.app.Preferences().Int(KeyPageSize)
	if size <= 0 {
		s.SetPageSize(DefaultPageSize)
		return DefaultPageSize
	}
	return size
}

// SetPageSize sets the order list page size
func (s *Settings) SetPageSize(size int) {
	if size < 1 {
		size = 1
	}
	if size > 100 {
		size = 100
	}
	s.app.Preferences().SetInt(KeyPageSize, size)
}

// GetLanguageOptions returns available language options
func (s *Settings) GetLanguageOptions() map[string]string {
	return map[string]string{
		"zh": "简体中文",
		"en": "English",
	}
}
