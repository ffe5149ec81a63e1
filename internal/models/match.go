package models

// Confidence is the coarse bucket derived from a similarity score.
type Confidence string

const (
	ConfidenceHigh   Confidence = "high"
	ConfidenceMedium Confidence = "medium"
	ConfidenceLow    Confidence = "low"
)

// Match pairs one lost and one found listing with their similarity verdict.
// MatchedFeatures follows the scorer's rule evaluation order.
type Match struct {
	LostPet         *Pet       `json:"lostPet"`
	FoundPet        *Pet       `json:"foundPet"`
	Similarity      int        `json:"similarity"`
	MatchedFeatures []string   `json:"matchedFeatures"`
	Confidence      Confidence `json:"confidence"`
}
