package ui

import (
	"fmt"
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/data/binding"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/profile-sample/internal/config"
	"github.com/ytget/profile-sample/internal/model"
	"github.com/ytget/profile-sample/internal/viewmodel"
)

// ProfileScreen renders a ProfileState and owns it for the window lifetime
type ProfileScreen struct {
	window       fyne.Window
	state        *viewmodel.ProfileState
	settings     *config.Settings
	localization *Localization

	// Bindings fed from the view-model observables
	nameText       binding.String
	lastNameText   binding.String
	likesText      binding.String
	likesProgress  binding.Float
	popularityText binding.String
	emailStateText binding.String

	nameLabel       *widget.Label
	lastNameLabel   *widget.Label
	likeBtn         *widget.Button
	popularityIcon  *widget.Icon
	emailEntry      *widget.Entry
	emailStateLabel *widget.Label
	emailSpinner    *widget.ProgressBarInfinite
	fieldLabels     map[string]*widget.Label

	unsubscribes []func()
}

// NewProfileScreen builds the screen, binds it to state and installs it as
// the window content. It must run on the Fyne main goroutine.
func NewProfileScreen(window fyne.Window, state *viewmodel.ProfileState, settings *config.Settings, localization *Localization) *ProfileScreen {
	s := &ProfileScreen{
		window:         window,
		state:          state,
		settings:       settings,
		localization:   localization,
		nameText:       binding.NewString(),
		lastNameText:   binding.NewString(),
		likesText:      binding.NewString(),
		likesProgress:  binding.NewFloat(),
		popularityText: binding.NewString(),
		emailStateText: binding.NewString(),
		fieldLabels:    make(map[string]*widget.Label),
	}

	window.SetTitle(localization.GetText(KeyAppTitle))

	s.setupUI()
	s.bind()

	// Closing the window destroys the owner of the profile state
	window.SetOnClosed(s.Close)

	return s
}

// setupUI creates and arranges all UI components
func (s *ProfileScreen) setupUI() {
	s.createMenu()

	s.nameLabel = widget.NewLabelWithData(s.nameText)
	s.nameLabel.TextStyle = fyne.TextStyle{Bold: true}

	s.lastNameLabel = widget.NewLabelWithData(s.lastNameText)

	s.popularityIcon = widget.NewIcon(PopularityIcon(model.PopularityNormal))
	iconBox := container.NewGridWrap(fyne.NewSize(PopularityIconSize, PopularityIconSize), s.popularityIcon)

	likesLabel := widget.NewLabelWithData(s.likesText)
	likesLabel.TextStyle = fyne.TextStyle{Bold: true}
	progress := widget.NewProgressBarWithData(s.likesProgress)
	progress.TextFormatter = func() string { return "" }

	s.likeBtn = widget.NewButtonWithIcon(s.localization.GetText(KeyLike), theme.ContentAddIcon(), s.onLike)
	s.likeBtn.Importance = widget.HighImportance

	s.emailEntry = widget.NewEntry()
	s.emailEntry.SetPlaceHolder(s.localization.GetText(KeyEnterEmail))
	s.emailEntry.SetText(s.state.Email().Get())
	s.emailEntry.OnChanged = s.onEmailChanged

	s.emailStateLabel = widget.NewLabelWithData(s.emailStateText)
	s.emailSpinner = widget.NewProgressBarInfinite()
	s.emailSpinner.Hide()

	form := container.NewVBox(
		s.fieldLabel(KeyName), s.nameLabel,
		s.fieldLabel(KeyLastName), s.lastNameLabel,
		widget.NewSeparator(),
		container.NewBorder(nil, nil, iconBox, nil,
			container.NewVBox(
				container.NewHBox(s.fieldLabel(KeyLikes), likesLabel),
				container.NewHBox(s.fieldLabel(KeyPopularity), widget.NewLabelWithData(s.popularityText)),
				progress,
			),
		),
		s.likeBtn,
		widget.NewSeparator(),
		s.fieldLabel(KeyEmail),
		s.emailEntry,
		s.emailStateLabel,
		s.emailSpinner,
	)

	s.window.SetContent(container.NewPadded(form))
}

// fieldLabel creates a caption whose text follows the current language
func (s *ProfileScreen) fieldLabel(key string) *widget.Label {
	label := widget.NewLabel(s.localization.GetText(key))
	label.Importance = widget.LowImportance
	s.fieldLabels[key] = label
	return label
}

// bind subscribes the widgets to the view-model observables
func (s *ProfileScreen) bind() {
	s.unsubscribes = append(s.unsubscribes,
		s.state.Name().Subscribe(func(name string) {
			s.setString(s.nameText, name)
		}),
		s.state.LastName().Subscribe(func(lastName string) {
			s.setString(s.lastNameText, lastName)
		}),
		s.state.Likes().Subscribe(s.onLikesChanged),
		s.state.Popularity().Subscribe(s.onPopularityChanged),
		s.state.EmailState().Subscribe(s.onEmailStateChanged),
	)
}

func (s *ProfileScreen) onLikesChanged(likes int) {
	s.setString(s.likesText, fmt.Sprintf(LikesLabelFormat, likes))
	if err := s.likesProgress.Set(model.LikesProgress(likes)); err != nil {
		log.Printf("failed to update likes progress: %v", err)
	}
}

func (s *ProfileScreen) onPopularityChanged(p model.Popularity) {
	s.setString(s.popularityText, s.localization.PopularityText(p))
	s.popularityIcon.SetResource(PopularityIcon(p))
}

func (s *ProfileScreen) onEmailStateChanged(state model.EmailState) {
	s.setString(s.emailStateText, s.localization.EmailStateText(state))
	s.emailStateLabel.Importance = EmailStateImportance(state)
	s.emailStateLabel.Refresh()

	if state.IsSettled() {
		s.emailSpinner.Stop()
		s.emailSpinner.Hide()
	} else {
		s.emailSpinner.Show()
		s.emailSpinner.Start()
	}
}

// setString updates a string binding, logging failures
func (s *ProfileScreen) setString(b binding.String, value string) {
	if err := b.Set(value); err != nil {
		log.Printf("failed to update binding: %v", err)
	}
}

// onLike handles the like button
func (s *ProfileScreen) onLike() {
	s.state.OnLike()
}

// onEmailChanged forwards every edit of the email entry to the view-model
func (s *ProfileScreen) onEmailChanged(email string) {
	s.state.SetEmail(email)
}

// createMenu creates the application menu
func (s *ProfileScreen) createMenu() {
	settingsItem := fyne.NewMenuItem(s.localization.GetText(KeySettings), s.onShowSettings)

	languageMenu := fyne.NewMenu(s.localization.GetText(KeyLanguage))
	for code, name := range s.localization.GetAvailableLanguages() {
		langCode := code // Capture for closure
		langItem := fyne.NewMenuItem(name, func() {
			s.onLanguageChange(langCode)
		})
		langItem.Checked = s.localization.GetCurrentLanguage() == code
		languageMenu.Items = append(languageMenu.Items, langItem)
	}

	s.window.SetMainMenu(fyne.NewMainMenu(
		fyne.NewMenu(s.localization.GetText(KeyFile), settingsItem),
		languageMenu,
	))
}

// onShowSettings opens the settings dialog
func (s *ProfileScreen) onShowSettings() {
	NewSettingsDialog(s.settings, s.localization, s.window, s.onLanguageChange).Show()
}

// onLanguageChange switches language and refreshes every text
func (s *ProfileScreen) onLanguageChange(langCode string) {
	s.localization.SetLanguage(langCode)
	s.settings.SetLanguage(langCode)
	s.refreshUITexts()
	s.createMenu()
}

// refreshUITexts updates all UI texts with current language
func (s *ProfileScreen) refreshUITexts() {
	s.window.SetTitle(s.localization.GetText(KeyAppTitle))
	for key, label := range s.fieldLabels {
		label.SetText(s.localization.GetText(key))
	}
	s.likeBtn.SetText(s.localization.GetText(KeyLike))
	s.emailEntry.SetPlaceHolder(s.localization.GetText(KeyEnterEmail))

	s.onPopularityChanged(s.state.Popularity().Get())
	s.onEmailStateChanged(s.state.EmailState().Get())
}

// Close unbinds the widgets and cancels all profile work
func (s *ProfileScreen) Close() {
	for _, unsubscribe := range s.unsubscribes {
		unsubscribe()
	}
	s.unsubscribes = nil
	s.state.Close()
}
