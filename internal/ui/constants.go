package ui

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Text fragments
const (
	LikesLabelFormat = "%d"
)

// Layout sizing
const (
	WindowWidth  float32 = 420
	WindowHeight float32 = 560

	PopularityIconSize float32 = 64
)

// Settings dialog sizing
const (
	SettingsDialogWidth  float32 = 400
	SettingsDialogHeight float32 = 260
)
