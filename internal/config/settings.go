package config

import (
	"time"

	"fyne.io/fyne/v2"

	"github.com/ytget/lotto645/internal/platform"
)

// Settings keys for Fyne preferences
const (
	KeySaveDir            = "save_directory"
	KeyJPEGQuality        = "jpeg_quality"
	KeyFadeDurationMS     = "fade_duration_ms"
	KeyAutoSaveOnGenerate = "auto_save_on_generate"
	KeyLanguage           = "app_language"
)

// Default values
const (
	DefaultJPEGQuality        = 90
	DefaultFadeDurationMS     = 500
	DefaultAutoSaveOnGenerate = true
	DefaultLanguage           = "system"
	FallbackSaveDir           = "/tmp/lotto645"
)

// Limits
const (
	MinJPEGQuality    = 10
	MaxJPEGQuality    = 100
	MaxFadeDurationMS = 2000
)

// Settings manages application configuration
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// GetSaveDirectory returns the directory screenshots are written to
func (s *Settings) GetSaveDirectory() string {
	dir := s.app.Preferences().String(KeySaveDir)
	if dir == "" {
		defaultDir, err := platform.GetScreenshotsDir()
		if err != nil {
			defaultDir = FallbackSaveDir
		}
		s.SetSaveDirectory(defaultDir)
		return defaultDir
	}
	return dir
}

// SetSaveDirectory sets the screenshot directory
func (s *Settings) SetSaveDirectory(dir string) {
	s.app.Preferences().SetString(KeySaveDir, dir)
}

// GetJPEGQuality returns the JPEG quality used for saved tickets
func (s *Settings) GetJPEGQuality() int {
	value := s.app.Preferences().Int(KeyJPEGQuality)
	if value <= 0 {
		s.SetJPEGQuality(DefaultJPEGQuality)
		return DefaultJPEGQuality
	}
	return value
}

// SetJPEGQuality sets the JPEG quality, clamped to [MinJPEGQuality, MaxJPEGQuality]
func (s *Settings) SetJPEGQuality(quality int) {
	if quality < MinJPEGQuality {
		quality = MinJPEGQuality
	}
	if quality > MaxJPEGQuality {
		quality = MaxJPEGQuality
	}
	s.app.Preferences().SetInt(KeyJPEGQuality, quality)
}

// GetFadeDuration returns the duration of each half of the fade animation
func (s *Settings) GetFadeDuration() time.Duration {
	ms := s.app.Preferences().IntWithFallback(KeyFadeDurationMS, DefaultFadeDurationMS)
	return time.Duration(ms) * time.Millisecond
}

// SetFadeDuration sets the fade duration in milliseconds, clamped to [0, MaxFadeDurationMS]
func (s *Settings) SetFadeDuration(ms int) {
	if ms < 0 {
		ms = 0
	}
	if ms > MaxFadeDurationMS {
		ms = MaxFadeDurationMS
	}
	s.app.Preferences().SetInt(KeyFadeDurationMS, ms)
}

// GetAutoSaveOnGenerate returns whether a new draw is saved to photos right away
func (s *Settings) GetAutoSaveOnGenerate() bool {
	return s.app.Preferences().BoolWithFallback(KeyAutoSaveOnGenerate, DefaultAutoSaveOnGenerate)
}

// SetAutoSaveOnGenerate sets whether a new draw is saved to photos right away
func (s *Settings) SetAutoSaveOnGenerate(autoSave bool) {
	s.app.Preferences().SetBool(KeyAutoSaveOnGenerate, autoSave)
}

// GetLanguage returns the configured language
func (s *Settings) GetLanguage() string {
	lang := s.app.Preferences().String(KeyLanguage)
	if lang == "" {
		s.SetLanguage(DefaultLanguage)
		return DefaultLanguage
	}
	return lang
}

// SetLanguage sets the application language
func (s *Settings) SetLanguage(lang string) {
	s.app.Preferences().SetString(KeyLanguage, lang)
}

// GetLanguageOptions returns available language options
func (s *Settings) GetLanguageOptions() map[string]string {
	return map[string]string{
		"system": "System Default",
		"en":     "English",
		"ko":     "한국어",
		"ru":     "Русский",
	}
}
