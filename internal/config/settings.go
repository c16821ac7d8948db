package config

import (
	"time"

	"fyne.io/fyne/v2"
)

// Settings keys for Fyne preferences
const (
	KeyEmailCheckDelay = "email_check_delay_ms"
	KeyLanguage        = "app_language"
)

// Default values
const (
	DefaultEmailCheckDelay = 2000 * time.Millisecond
	DefaultLanguage        = "system"

	MaxEmailCheckDelay = 10 * time.Second
)

// Settings manages application configuration
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// GetEmailCheckDelay returns how long the simulated email check takes
func (s *Settings) GetEmailCheckDelay() time.Duration {
	ms := s.app.Preferences().IntWithFallback(KeyEmailCheckDelay, -1)
	if ms < 0 {
		s.SetEmailCheckDelay(DefaultEmailCheckDelay)
		return DefaultEmailCheckDelay
	}
	return time.Duration(ms) * time.Millisecond
}

// SetEmailCheckDelay sets the email check delay, clamped to [0, MaxEmailCheckDelay]
func (s *Settings) SetEmailCheckDelay(delay time.Duration) {
	if delay < 0 {
		delay = 0
	}
	if delay > MaxEmailCheckDelay {
		delay = MaxEmailCheckDelay
	}
	s.app.Preferences().SetInt(KeyEmailCheckDelay, int(delay.Milliseconds()))
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
		"ru":     "Русский",
		"pt":     "Português",
	}
}
