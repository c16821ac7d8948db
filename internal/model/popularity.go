package model

// Popularity represents the tier derived from a like count
type Popularity string

const (
	// PopularityNormal is used for 0..4 likes
	PopularityNormal Popularity = "NORMAL"

	// PopularityPopular is used for 5..9 likes
	PopularityPopular Popularity = "POPULAR"

	// PopularityStar is used for 10 likes and more
	PopularityStar Popularity = "STAR"
)

// Like count thresholds; a tier is reached when likes exceed the value.
const (
	PopularThreshold = 4
	StarThreshold    = 9
)

// String returns the string representation of Popularity
func (p Popularity) String() string {
	return string(p)
}

// ClassifyPopularity maps a like count to its popularity tier
func ClassifyPopularity(likes int) Popularity {
	switch {
	case likes > StarThreshold:
		return PopularityStar
	case likes > PopularThreshold:
		return PopularityPopular
	default:
		return PopularityNormal
	}
}

// LikesProgress returns the fraction of the way to STAR, clamped to [0, 1]
func LikesProgress(likes int) float64 {
	if likes <= 0 {
		return 0
	}
	progress := float64(likes) / float64(StarThreshold+1)
	if progress > 1 {
		return 1
	}
	return progress
}
