package ui

// Package ui contains the Fyne-based user interface hosting the profile
// view-model. The screen owns its ProfileState: observables are bridged into
// Fyne data bindings, user input is forwarded to the view-model, and closing
// the window cancels all outstanding profile work. All UI strings are
// localized via Localization.
