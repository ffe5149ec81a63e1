package matching_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/your-org/pawmatch/internal/matching"
	"github.com/your-org/pawmatch/internal/models"
)

func TestCompareFeaturesZeroFactors(t *testing.T) {
	// Neither side shares a populated attribute; must be exactly 0, not NaN.
	f1 := models.PetFeatures{Breed: "Labrador", Confidence: 0.9}
	f2 := models.PetFeatures{Color: "Negro", Confidence: 0.8}

	assert.Equal(t, 0.0, matching.CompareFeatures(f1, f2))
	assert.Equal(t, 0.0, matching.CompareFeatures(models.PetFeatures{}, models.PetFeatures{}))
}

func TestCompareFeaturesIdentical(t *testing.T) {
	f := models.PetFeatures{Breed: "Golden Retriever", Color: "Dorado", Size: "large", Confidence: 1.0}

	// (0.4 + 0.3 + 0.2) * 1.0 / 3 factors * 100
	assert.InDelta(t, 30.0, matching.CompareFeatures(f, f), 1e-9)
}

func TestCompareFeaturesSimilarGroupsAndConfidenceDamping(t *testing.T) {
	f1 := models.PetFeatures{Breed: "Golden Retriever", Color: "Dorado", Size: "large", Confidence: 0.94}
	f2 := models.PetFeatures{Breed: "Labrador", Color: "Chocolate", Size: "large", Confidence: 0.89}

	// breed group 0.25 + color 0 + size 0.2 = 0.45, damped by mean
	// confidence 0.915, over 3 factors.
	expected := 0.45 * 0.915 / 3 * 100
	assert.InDelta(t, expected, matching.CompareFeatures(f1, f2), 1e-9)
}

func TestCompareFeaturesPartialAttributes(t *testing.T) {
	// Only breed is populated on both sides: one factor.
	f1 := models.PetFeatures{Breed: "Labrador", Confidence: 1.0}
	f2 := models.PetFeatures{Breed: "Labrador", Size: "large", Confidence: 1.0}

	assert.InDelta(t, 40.0, matching.CompareFeatures(f1, f2), 1e-9)
}

func TestCompareFeaturesBounded(t *testing.T) {
	f := models.PetFeatures{Breed: "Labrador", Confidence: 1.0}

	got := matching.CompareFeatures(f, f)
	assert.GreaterOrEqual(t, got, 0.0)
	assert.LessOrEqual(t, got, 100.0)
}
