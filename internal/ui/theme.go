package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/profile-sample/internal/model"
)

// ProfileTheme colours email states and popularity tiers on top of the
// default Fyne theme
type ProfileTheme struct{}

// NewProfileTheme creates the profile theme
func NewProfileTheme() fyne.Theme {
	return &ProfileTheme{}
}

// Color returns theme colors
func (t *ProfileTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	switch name {
	case theme.ColorNameSuccess:
		return color.RGBA{R: 46, G: 160, B: 67, A: 255} // available email
	case theme.ColorNameError:
		return color.RGBA{R: 183, G: 28, B: 28, A: 255} // invalid email
	case theme.ColorNameWarning:
		return color.RGBA{R: 255, G: 143, B: 0, A: 255} // popular / star
	case theme.ColorNamePrimary:
		return color.RGBA{R: 0, G: 137, B: 123, A: 255}
	}

	return theme.DefaultTheme().Color(name, variant)
}

// Font returns theme fonts
func (t *ProfileTheme) Font(style fyne.TextStyle) fyne.Resource {
	return theme.DefaultTheme().Font(style)
}

// Icon returns theme icons
func (t *ProfileTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return theme.DefaultTheme().Icon(name)
}

// Size returns theme sizes with a larger heading for the profile name
func (t *ProfileTheme) Size(name fyne.ThemeSizeName) float32 {
	switch name {
	case theme.SizeNameHeadingText:
		return 28
	case theme.SizeNameSubHeadingText:
		return 20
	case theme.SizeNameInputRadius:
		return 6
	}

	return theme.DefaultTheme().Size(name)
}

// PopularityIcon returns the icon shown for a popularity tier
func PopularityIcon(p model.Popularity) fyne.Resource {
	switch p {
	case model.PopularityStar:
		return theme.NewWarningThemedResource(theme.MediaRecordIcon())
	case model.PopularityPopular:
		return theme.NewPrimaryThemedResource(theme.AccountIcon())
	default:
		return theme.AccountIcon()
	}
}

// EmailStateImportance maps an email state to the label importance used to
// colour its description
func EmailStateImportance(s model.EmailState) widget.Importance {
	switch s {
	case model.EmailStateInvalid, model.EmailStateTaken:
		return widget.DangerImportance
	case model.EmailStateChecking:
		return widget.MediumImportance
	case model.EmailStateOK:
		return widget.SuccessImportance
	default:
		return widget.LowImportance
	}
}
