package ui

import (
	"strconv"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/profile-sample/internal/config"
)

// SettingsDialog represents the settings configuration dialog
type SettingsDialog struct {
	settings         *config.Settings
	localization     *Localization
	window           fyne.Window
	dialog           *dialog.ConfirmDialog
	onLanguageChange func(string)

	// UI components
	checkDelayEntry *widget.Entry
	languageSelect  *widget.Select
}

// NewSettingsDialog creates a new settings dialog
func NewSettingsDialog(settings *config.Settings, localization *Localization, window fyne.Window, onLanguageChange func(string)) *SettingsDialog {
	sd := &SettingsDialog{
		settings:         settings,
		localization:     localization,
		window:           window,
		onLanguageChange: onLanguageChange,
	}

	sd.createUI()
	return sd
}

// Show displays the settings dialog
func (sd *SettingsDialog) Show() {
	sd.loadCurrentSettings()
	sd.dialog.Show()
}

// createUI creates the settings dialog UI
func (sd *SettingsDialog) createUI() {
	sd.checkDelayEntry = widget.NewEntry()
	sd.checkDelayEntry.SetPlaceHolder("0-" + strconv.FormatInt(config.MaxEmailCheckDelay.Milliseconds(), 10))

	languageOptions := []string{}
	for code := range sd.settings.GetLanguageOptions() {
		languageOptions = append(languageOptions, code)
	}
	sd.languageSelect = widget.NewSelect(languageOptions, nil)

	form := container.NewVBox(
		widget.NewLabel(sd.localization.GetText(KeyEmailCheckDelay)),
		sd.checkDelayEntry,
		widget.NewLabel(sd.localization.GetText(KeyRestartToApply)),
		widget.NewSeparator(),
		widget.NewLabel(sd.localization.GetText(KeyLanguage)),
		sd.languageSelect,
	)

	sd.dialog = dialog.NewCustomConfirm(
		sd.localization.GetText(KeySettings),
		sd.localization.GetText(KeySave),
		sd.localization.GetText(KeyCancel),
		form,
		sd.onSave,
		sd.window,
	)

	sd.dialog.Resize(fyne.NewSize(SettingsDialogWidth, SettingsDialogHeight))
}

// loadCurrentSettings loads current settings into the UI
func (sd *SettingsDialog) loadCurrentSettings() {
	sd.checkDelayEntry.SetText(strconv.FormatInt(sd.settings.GetEmailCheckDelay().Milliseconds(), 10))
	sd.languageSelect.SetSelected(sd.settings.GetLanguage())
}

// onSave handles saving the settings
func (sd *SettingsDialog) onSave(confirmed bool) {
	if !confirmed {
		return
	}

	// Validate and save the check delay
	if delayStr := sd.checkDelayEntry.Text; delayStr != "" {
		if ms, err := strconv.Atoi(delayStr); err == nil {
			sd.settings.SetEmailCheckDelay(time.Duration(ms) * time.Millisecond)
		}
	}

	// Save language
	if lang := sd.languageSelect.Selected; lang != "" && lang != sd.settings.GetLanguage() {
		sd.settings.SetLanguage(lang)
		if sd.onLanguageChange != nil {
			sd.onLanguageChange(lang)
		}
	}

	dialog.ShowInformation(sd.localization.GetText(KeySettings), sd.localization.GetText(KeySettingsSaved), sd.window)
}
