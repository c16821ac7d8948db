package model

import "strings"

// Default profile values shown before the user edits anything
const (
	DefaultName     = "Ada"
	DefaultLastName = "Lovelace"
)

// Profile is a point-in-time copy of every observable profile field
type Profile struct {
	Name       string
	LastName   string
	Likes      int
	Email      string
	Popularity Popularity
	EmailState EmailState
}

// NewProfile returns the initial profile
func NewProfile() Profile {
	return Profile{
		Name:       DefaultName,
		LastName:   DefaultLastName,
		Popularity: ClassifyPopularity(0),
		EmailState: EmailStateVoid,
	}
}

// DisplayName returns "Name LastName", skipping empty parts
func (p Profile) DisplayName() string {
	parts := make([]string, 0, 2)
	for _, part := range []string{p.Name, p.LastName} {
		if s := strings.TrimSpace(part); s != "" {
			parts = append(parts, s)
		}
	}
	return strings.Join(parts, " ")
}
