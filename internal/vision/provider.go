package vision

import (
	"context"
	"log/slog"
	"strings"
	"sync"

	"github.com/your-org/pawmatch/internal/matching"
	"github.com/your-org/pawmatch/internal/models"
	"github.com/your-org/pawmatch/internal/observability"
)

// Provider turns raw image bytes into coarse pet features.
type Provider interface {
	Name() string
	Analyze(ctx context.Context, image []byte) (models.PetFeatures, error)
}

// Extractor wraps a provider with the mock fallback policy: a provider
// failure is never surfaced to callers, it degrades to a plausible mock
// result. Callers can only tell the difference via the mock flag.
type Extractor struct {
	provider Provider // nil when neither a local model nor a credential is configured
	mock     *MockProvider
}

func NewExtractor(provider Provider, mock *MockProvider) *Extractor {
	return &Extractor{provider: provider, mock: mock}
}

// Extract analyzes one image. The second return value reports whether the
// result came from the mock provider.
func (e *Extractor) Extract(ctx context.Context, image []byte) (models.PetFeatures, bool) {
	if e.provider == nil {
		features, _ := e.mock.Analyze(ctx, image)
		observability.ImagesAnalyzed.WithLabelValues(e.mock.Name()).Inc()
		return features, true
	}

	features, err := e.provider.Analyze(ctx, image)
	if err != nil {
		slog.Warn("vision provider failed, falling back to mock",
			"provider", e.provider.Name(), "error", err)
		observability.VisionFallbacks.WithLabelValues(e.provider.Name()).Inc()
		features, _ = e.mock.Analyze(ctx, image)
		observability.ImagesAnalyzed.WithLabelValues(e.mock.Name()).Inc()
		return features, true
	}

	observability.ImagesAnalyzed.WithLabelValues(e.provider.Name()).Inc()
	return features, false
}

// Compare extracts features from both images concurrently (the extractions
// are independent) and scores them against each other.
func (e *Extractor) Compare(ctx context.Context, image1, image2 []byte) float64 {
	var wg sync.WaitGroup
	var f1, f2 models.PetFeatures

	wg.Add(2)
	go func() {
		defer wg.Done()
		f1, _ = e.Extract(ctx, image1)
	}()
	go func() {
		defer wg.Done()
		f2, _ = e.Extract(ctx, image2)
	}()
	wg.Wait()

	return matching.CompareFeatures(f1, f2)
}

// Mock reports whether the extractor has no real provider behind it.
func (e *Extractor) Mock() bool {
	return e.provider == nil
}

// featuresFromLabel maps a detection class name to pet attributes via
// case-insensitive keyword rules. Unknown labels keep only the confidence.
func featuresFromLabel(label string, confidence float64) models.PetFeatures {
	features := models.PetFeatures{Confidence: confidence}
	name := strings.ToLower(label)

	switch {
	case strings.Contains(name, "golden") || strings.Contains(name, "retriever"):
		features.Breed = "Golden Retriever"
		features.Color = "Dorado"
		features.Size = "large"
	case strings.Contains(name, "labrador"):
		features.Breed = "Labrador"
		features.Size = "large"
	case strings.Contains(name, "bulldog"):
		features.Breed = "Bulldog Francés"
		features.Size = "small"
	case strings.Contains(name, "cat") || strings.Contains(name, "gato"):
		features.Breed = "Gato doméstico"
		features.Size = "small"
	}

	// Color keywords are independent of the breed rules and may override
	// the color a breed rule set.
	if strings.Contains(name, "black") {
		features.Color = "Negro"
	}
	if strings.Contains(name, "white") {
		features.Color = "Blanco"
	}
	if strings.Contains(name, "brown") {
		features.Color = "Marrón"
	}
	if strings.Contains(name, "golden") {
		features.Color = "Dorado"
	}

	return features
}
