package matching

import (
	"fmt"

	"github.com/your-org/pawmatch/internal/models"
)

// Rule weights for record-to-record scoring. Each rule only ever adds
// points; the running total is clamped to 100 once at the end.
const (
	pointsSameType     = 30
	pointsSameBreed    = 25
	pointsSimilarBreed = 15
	pointsSameSize     = 20
	pointsSameColor    = 15
	pointsSimilarColor = 8
	pointsNearby       = 10
)

// Score compares two pet listings and returns a similarity score in [0,100]
// together with human-readable descriptions of the matched attributes, in
// rule evaluation order: type, breed, size, color, location.
//
// Unset fields never penalize: a rule whose inputs are empty simply
// contributes nothing. The result is symmetric in its arguments.
func Score(a, b *models.Pet) (int, []string) {
	similarity := 0
	var features []string

	if a.Type == b.Type && a.Type != "" {
		similarity += pointsSameType
		features = append(features, fmt.Sprintf("same type (%s)", a.Type))
	}

	switch {
	case a.Breed != "" && a.Breed == b.Breed:
		similarity += pointsSameBreed
		features = append(features, fmt.Sprintf("same breed (%s)", a.Breed))
	case SimilarBreeds(a.Breed, b.Breed):
		similarity += pointsSimilarBreed
		features = append(features, "similar breeds")
	}

	if a.Size == b.Size && a.Size != "" {
		similarity += pointsSameSize
		features = append(features, fmt.Sprintf("same size (%s)", a.Size))
	}

	switch {
	case a.Color != "" && a.Color == b.Color:
		similarity += pointsSameColor
		features = append(features, fmt.Sprintf("same color (%s)", a.Color))
	case SimilarColors(a.Color, b.Color):
		similarity += pointsSimilarColor
		features = append(features, "similar colors")
	}

	if NearbyLocations(a.Location, b.Location) {
		similarity += pointsNearby
		features = append(features, "nearby location")
	}

	if similarity > 100 {
		similarity = 100
	}
	return similarity, features
}

// ConfidenceFor buckets a similarity score: >=85 high, >=70 medium, else low.
func ConfidenceFor(similarity int) models.Confidence {
	switch {
	case similarity >= 85:
		return models.ConfidenceHigh
	case similarity >= 70:
		return models.ConfidenceMedium
	default:
		return models.ConfidenceLow
	}
}
