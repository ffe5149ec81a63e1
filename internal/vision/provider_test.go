package vision

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/your-org/pawmatch/internal/models"
)

type stubProvider struct {
	features models.PetFeatures
	err      error
}

func (s *stubProvider) Name() string { return "stub" }

func (s *stubProvider) Analyze(context.Context, []byte) (models.PetFeatures, error) {
	return s.features, s.err
}

func TestFeaturesFromLabel(t *testing.T) {
	tests := []struct {
		label    string
		expected models.PetFeatures
	}{
		{"golden-retriever", models.PetFeatures{Breed: "Golden Retriever", Color: "Dorado", Size: "large", Confidence: 0.9}},
		{"Labrador", models.PetFeatures{Breed: "Labrador", Size: "large", Confidence: 0.9}},
		{"french bulldog", models.PetFeatures{Breed: "Bulldog Francés", Size: "small", Confidence: 0.9}},
		{"black cat", models.PetFeatures{Breed: "Gato doméstico", Color: "Negro", Size: "small", Confidence: 0.9}},
		{"white gato", models.PetFeatures{Breed: "Gato doméstico", Color: "Blanco", Size: "small", Confidence: 0.9}},
		{"brown labrador", models.PetFeatures{Breed: "Labrador", Color: "Marrón", Size: "large", Confidence: 0.9}},
		{"airplane", models.PetFeatures{Confidence: 0.9}},
	}

	for _, tt := range tests {
		t.Run(tt.label, func(t *testing.T) {
			assert.Equal(t, tt.expected, featuresFromLabel(tt.label, 0.9))
		})
	}
}

func TestExtractUsesProviderResult(t *testing.T) {
	want := models.PetFeatures{Breed: "Labrador", Color: "Chocolate", Size: "large", Confidence: 0.88}
	e := NewExtractor(&stubProvider{features: want}, NewMockProvider(1))

	got, isMock := e.Extract(context.Background(), []byte("img"))

	assert.Equal(t, want, got)
	assert.False(t, isMock)
	assert.False(t, e.Mock())
}

func TestExtractFallsBackToMockOnProviderError(t *testing.T) {
	e := NewExtractor(&stubProvider{err: errors.New("boom")}, NewMockProvider(1))

	got, isMock := e.Extract(context.Background(), []byte("img"))

	assert.True(t, isMock)
	assert.Contains(t, mockResults, got)
}

func TestExtractWithoutProviderIsMock(t *testing.T) {
	e := NewExtractor(nil, NewMockProvider(1))

	got, isMock := e.Extract(context.Background(), []byte("img"))

	assert.True(t, isMock)
	assert.True(t, e.Mock())
	assert.Contains(t, mockResults, got)
}

func TestMockProviderDeterministicWithSeed(t *testing.T) {
	a := NewMockProvider(42)
	b := NewMockProvider(42)

	for i := 0; i < 10; i++ {
		fa, _ := a.Analyze(context.Background(), nil)
		fb, _ := b.Analyze(context.Background(), nil)
		assert.Equal(t, fa, fb)
	}
}

func TestCompareBounded(t *testing.T) {
	e := NewExtractor(nil, NewMockProvider(7))

	for i := 0; i < 20; i++ {
		got := e.Compare(context.Background(), []byte("a"), []byte("b"))
		assert.GreaterOrEqual(t, got, 0.0)
		assert.LessOrEqual(t, got, 100.0)
	}
}
