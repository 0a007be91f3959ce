package config

import (
	"testing"
	"time"

	"fyne.io/fyne/v2/test"
)

func TestNewSettings(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if settings.app != app {
		t.Error("Settings app reference should match provided app")
	}
}

func TestSaveDirectory(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Test default value
	dir := settings.GetSaveDirectory()
	if dir == "" {
		t.Error("Save directory should not be empty")
	}

	// Default is persisted on first read
	if app.Preferences().String(KeySaveDir) != dir {
		t.Error("Default save directory should be written back to preferences")
	}

	customDir := "/custom/shots"
	settings.SetSaveDirectory(customDir)

	retrievedDir := settings.GetSaveDirectory()
	if retrievedDir != customDir {
		t.Errorf("Expected save directory %s, got %s", customDir, retrievedDir)
	}
}

func TestJPEGQuality(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	quality := settings.GetJPEGQuality()
	if quality != DefaultJPEGQuality {
		t.Errorf("Expected default quality %d, got %d", DefaultJPEGQuality, quality)
	}

	settings.SetJPEGQuality(75)
	if settings.GetJPEGQuality() != 75 {
		t.Errorf("Expected quality 75, got %d", settings.GetJPEGQuality())
	}

	// Test boundary values
	settings.SetJPEGQuality(1)
	if settings.GetJPEGQuality() != MinJPEGQuality {
		t.Errorf("Quality should be clamped to minimum %d", MinJPEGQuality)
	}

	settings.SetJPEGQuality(150)
	if settings.GetJPEGQuality() != MaxJPEGQuality {
		t.Errorf("Quality should be clamped to maximum %d", MaxJPEGQuality)
	}
}

func TestFadeDuration(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if settings.GetFadeDuration() != 500*time.Millisecond {
		t.Errorf("Expected default fade 500ms, got %v", settings.GetFadeDuration())
	}

	settings.SetFadeDuration(250)
	if settings.GetFadeDuration() != 250*time.Millisecond {
		t.Errorf("Expected fade 250ms, got %v", settings.GetFadeDuration())
	}

	settings.SetFadeDuration(0)
	if settings.GetFadeDuration() != 0 {
		t.Errorf("Zero fade should disable the animation, got %v", settings.GetFadeDuration())
	}

	settings.SetFadeDuration(-10)
	if settings.GetFadeDuration() != 0 {
		t.Error("Negative fade should be clamped to 0")
	}

	settings.SetFadeDuration(10000)
	if settings.GetFadeDuration() != MaxFadeDurationMS*time.Millisecond {
		t.Errorf("Fade should be clamped to %dms", MaxFadeDurationMS)
	}
}

func TestAutoSaveOnGenerate(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if settings.GetAutoSaveOnGenerate() != DefaultAutoSaveOnGenerate {
		t.Errorf("Expected default auto-save %v", DefaultAutoSaveOnGenerate)
	}

	settings.SetAutoSaveOnGenerate(false)
	if settings.GetAutoSaveOnGenerate() {
		t.Error("Expected auto-save to be disabled")
	}
}

func TestLanguage(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	lang := settings.GetLanguage()
	if lang != DefaultLanguage {
		t.Errorf("Expected default language %s, got %s", DefaultLanguage, lang)
	}

	settings.SetLanguage("ko")

	retrievedLang := settings.GetLanguage()
	if retrievedLang != "ko" {
		t.Errorf("Expected language 'ko', got %s", retrievedLang)
	}
}

func TestGetLanguageOptions(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	options := settings.GetLanguageOptions()

	expectedLangs := []string{"system", "en", "ko", "ru"}
	for _, lang := range expectedLangs {
		if _, exists := options[lang]; !exists {
			t.Errorf("Expected language option '%s' to exist", lang)
		}
	}

	if len(options) != len(expectedLangs) {
		t.Errorf("Expected %d language options, got %d", len(expectedLangs), len(options))
	}
}
