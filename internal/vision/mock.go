package vision

import (
	"context"
	"math/rand"
	"sync"
	"time"

	"github.com/your-org/pawmatch/internal/models"
)

// mockResults is the fixed table of plausible analysis results. A fallback
// answer must be indistinguishable in shape from a real one.
var mockResults = []models.PetFeatures{
	{Breed: "Golden Retriever", Color: "Dorado", Size: "large", Confidence: 0.94},
	{Breed: "Labrador", Color: "Chocolate", Size: "large", Confidence: 0.89},
	{Breed: "Bulldog Francés", Color: "Negro", Size: "small", Confidence: 0.76},
	{Breed: "Gato doméstico", Color: "Gris y blanco", Size: "small", Confidence: 0.87},
}

// MockProvider serves uniformly random entries from the fixed result table.
// It backs the demo when no real provider is configured and is the fallback
// when one fails.
type MockProvider struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewMockProvider creates a mock provider. Seed 0 means non-deterministic;
// any other seed makes the pick sequence reproducible for tests.
func NewMockProvider(seed int64) *MockProvider {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &MockProvider{rng: rand.New(rand.NewSource(seed))}
}

func (p *MockProvider) Name() string { return "mock" }

func (p *MockProvider) Analyze(_ context.Context, _ []byte) (models.PetFeatures, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return mockResults[p.rng.Intn(len(mockResults))], nil
}
