package matching

import (
	"fmt"
	"log/slog"
	"sort"

	"github.com/your-org/pawmatch/internal/models"
)

// DefaultMinSimilarity is the threshold applied when the caller does not
// supply one.
const DefaultMinSimilarity = 70.0

// PetSource is the read surface the finder needs from the record store.
type PetSource interface {
	Get(id string) (*models.Pet, error)
	List() []*models.Pet
}

// Finder ranks opposite-status candidates for a target listing.
type Finder struct {
	source PetSource
}

func NewFinder(source PetSource) *Finder {
	return &Finder{source: source}
}

// FindMatches scores every candidate with status opposite to the target's,
// keeps those at or above minSimilarity and returns them sorted by
// similarity descending. Ties keep candidate iteration order. An unknown
// target id is an error; an empty result is not.
func (f *Finder) FindMatches(targetID string, minSimilarity float64) ([]models.Match, error) {
	target, err := f.source.Get(targetID)
	if err != nil {
		return nil, fmt.Errorf("find matches for %q: %w", targetID, err)
	}

	opposite := models.StatusFound
	if target.Status == models.StatusFound {
		opposite = models.StatusLost
	}

	matches := make([]models.Match, 0)
	for _, candidate := range f.source.List() {
		if candidate.ID == targetID || candidate.Status != opposite {
			continue
		}

		m, ok := scoreCandidate(target, candidate, minSimilarity)
		if ok {
			matches = append(matches, m)
		}
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Similarity > matches[j].Similarity
	})

	return matches, nil
}

// scoreCandidate evaluates one pair. A panic while scoring skips the
// candidate instead of failing the whole request.
func scoreCandidate(target, candidate *models.Pet, minSimilarity float64) (m models.Match, ok bool) {
	defer func() {
		if r := recover(); r != nil {
			slog.Error("scoring candidate failed, skipping", "candidate", candidate.ID, "panic", r)
			ok = false
		}
	}()

	similarity, features := Score(target, candidate)
	if float64(similarity) < minSimilarity {
		return models.Match{}, false
	}

	lost, found := target, candidate
	if target.Status == models.StatusFound {
		lost, found = candidate, target
	}

	return models.Match{
		LostPet:         lost,
		FoundPet:        found,
		Similarity:      similarity,
		MatchedFeatures: features,
		Confidence:      ConfidenceFor(similarity),
	}, true
}
