package matching_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/your-org/pawmatch/internal/matching"
	"github.com/your-org/pawmatch/internal/models"
)

func lostGolden() *models.Pet {
	return &models.Pet{
		ID:       "lost-1",
		Type:     models.TypeDog,
		Breed:    "Golden Retriever",
		Color:    "Dorado",
		Size:     models.SizeLarge,
		Status:   models.StatusLost,
		Location: "Parque Central, Madrid",
	}
}

func TestScorePerfectMatch(t *testing.T) {
	a := lostGolden()
	b := lostGolden()
	b.ID = "found-1"
	b.Status = models.StatusFound
	b.Location = "Plaza Mayor, Madrid"

	similarity, features := matching.Score(a, b)

	assert.Equal(t, 100, similarity)
	assert.Equal(t, []string{
		"same type (dog)",
		"same breed (Golden Retriever)",
		"same size (large)",
		"same color (Dorado)",
		"nearby location",
	}, features)
}

func TestScoreNoOverlap(t *testing.T) {
	a := lostGolden()
	b := &models.Pet{
		ID:       "found-2",
		Type:     models.TypeCat,
		Breed:    "Gato Siamés",
		Color:    "Gris y blanco",
		Size:     models.SizeMedium,
		Status:   models.StatusFound,
		Location: "Calle Mayor, Barcelona",
	}

	similarity, features := matching.Score(a, b)

	assert.Equal(t, 0, similarity)
	assert.Empty(t, features)
}

func TestScoreSimilarBreedGroupAndLocation(t *testing.T) {
	a := lostGolden()
	b := &models.Pet{
		ID:       "found-3",
		Type:     models.TypeDog,
		Breed:    "Labrador",
		Color:    "Chocolate",
		Size:     models.SizeLarge,
		Status:   models.StatusFound,
		Location: "Parque del Retiro, Madrid",
	}

	// 30 type + 15 breed group + 20 size + 0 color + 10 location
	similarity, features := matching.Score(a, b)

	assert.Equal(t, 75, similarity)
	assert.Equal(t, []string{
		"same type (dog)",
		"similar breeds",
		"same size (large)",
		"nearby location",
	}, features)
}

func TestScoreSimilarColorGroup(t *testing.T) {
	a := lostGolden()
	b := lostGolden()
	b.Color = "Amarillo"
	b.Location = "somewhere else"

	similarity, features := matching.Score(a, b)

	// 30 + 25 + 20 + 8, no location
	assert.Equal(t, 83, similarity)
	assert.Contains(t, features, "similar colors")
	assert.NotContains(t, features, "nearby location")
}

func TestScoreSymmetric(t *testing.T) {
	a := lostGolden()
	b := &models.Pet{
		Type:     models.TypeDog,
		Breed:    "Labrador Retriever",
		Color:    "Amarillo",
		Size:     models.SizeLarge,
		Location: "Gran Vía, Madrid",
	}

	sAB, _ := matching.Score(a, b)
	sBA, _ := matching.Score(b, a)

	assert.Equal(t, sAB, sBA)
}

func TestScoreEmptyFieldsContributeNothing(t *testing.T) {
	a := lostGolden()
	empty := &models.Pet{}

	similarity, features := matching.Score(a, empty)

	assert.Equal(t, 0, similarity)
	assert.Empty(t, features)

	// Two fully empty records must not count shared emptiness as matches.
	similarity, features = matching.Score(&models.Pet{}, &models.Pet{})
	assert.Equal(t, 0, similarity)
	assert.Empty(t, features)
}

func TestNearbyLocations(t *testing.T) {
	tests := []struct {
		name   string
		a, b   string
		nearby bool
	}{
		{"same city segment", "Parque Central, Madrid", "Plaza Mayor, Madrid", true},
		{"different cities", "Parque Central, Madrid", "Calle Mayor, Barcelona", false},
		{"no comma on either side", "Madrid", "Madrid", false},
		{"one sided containment", "Madrid centro", "Plaza, Madrid centro", false},
		{"segment contained mid string", "Estación Madrid Norte", "Atocha, Madrid", true},
		{"empty strings", "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.nearby, matching.NearbyLocations(tt.a, tt.b))
		})
	}
}

func TestConfidenceBuckets(t *testing.T) {
	assert.Equal(t, models.ConfidenceLow, matching.ConfidenceFor(0))
	assert.Equal(t, models.ConfidenceLow, matching.ConfidenceFor(69))
	assert.Equal(t, models.ConfidenceMedium, matching.ConfidenceFor(70))
	assert.Equal(t, models.ConfidenceMedium, matching.ConfidenceFor(84))
	assert.Equal(t, models.ConfidenceHigh, matching.ConfidenceFor(85))
	assert.Equal(t, models.ConfidenceHigh, matching.ConfidenceFor(100))
}
