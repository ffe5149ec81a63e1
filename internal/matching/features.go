package matching

import "github.com/your-org/pawmatch/internal/models"

// Feature-to-feature weights. This scorer is deliberately separate from the
// record-to-record one: weights are fractions of 1.0 scaled to a percentage
// at the end, and only attributes present on both sides count as factors.
const (
	weightSameBreed    = 0.4
	weightSimilarBreed = 0.25
	weightSameColor    = 0.3
	weightSimilarColor = 0.15
	weightSameSize     = 0.2
)

// CompareFeatures scores two extracted feature sets against each other and
// returns a similarity percentage in [0,100]. The weighted sum is dampened
// by the mean detection confidence and normalized by the number of
// attributes both sides populated. Zero shared attributes yields 0.
func CompareFeatures(f1, f2 models.PetFeatures) float64 {
	factors := 0
	sum := 0.0

	if f1.Breed != "" && f2.Breed != "" {
		factors++
		if f1.Breed == f2.Breed {
			sum += weightSameBreed
		} else if SimilarBreeds(f1.Breed, f2.Breed) {
			sum += weightSimilarBreed
		}
	}

	if f1.Color != "" && f2.Color != "" {
		factors++
		if f1.Color == f2.Color {
			sum += weightSameColor
		} else if SimilarColors(f1.Color, f2.Color) {
			sum += weightSimilarColor
		}
	}

	if f1.Size != "" && f2.Size != "" {
		factors++
		if f1.Size == f2.Size {
			sum += weightSameSize
		}
	}

	if factors == 0 {
		return 0
	}

	sum *= (f1.Confidence + f2.Confidence) / 2

	similarity := sum / float64(factors) * 100
	if similarity > 100 {
		similarity = 100
	}
	return similarity
}
