package config

import (
	"testing"

	"fyne.io/fyne/v2/test"
)

func TestNewSettings(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if settings.app != app {
		t.Error("Settings app reference should match provided app")
	}
}

func TestLanguage(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Test default value
	if lang := settings.GetLanguage(); lang != DefaultLanguage {
		t.Errorf("Expected default language %s, got %s", DefaultLanguage, lang)
	}

	settings.SetLanguage("en")
	if lang := settings.GetLanguage(); lang != "en" {
		t.Errorf("Expected language en, got %s", lang)
	}
}

func TestPageSize(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if size := settings.GetPageSize(); size != DefaultPageSize {
		t.Errorf("Expected default page size %d, got %d", DefaultPageSize, size)
	}

	settings.SetPageSize(25)
	if size := settings.GetPageSize(); size != 25 {
		t.Errorf("Expected page size 25, got %d", size)
	}

	// Test boundary values
	settings.SetPageSize(0) // Should be clamped to 1
	if settings.GetPageSize() != 1 {
		t.Error("Page size should be clamped to minimum 1")
	}

	settings.SetPageSize(500) // Should be clamped to 100
	if settings.GetPageSize() != 100 {
		t.Error("Page size should be clamped to maximum 100")
	}
}
