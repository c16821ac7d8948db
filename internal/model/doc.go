package model

// Package model defines the profile domain values shared by the view-model,
// the UI and the CLI: popularity tiers, email validation states and the
// profile snapshot. Classifiers are pure functions so they can be recomputed
// at any time from the current base values.
