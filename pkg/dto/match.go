package dto

import "time"

// MatchResponse is one scored lost/found pairing.
type MatchResponse struct {
	LostPet         PetResponse `json:"lostPet"`
	FoundPet        PetResponse `json:"foundPet"`
	Similarity      int         `json:"similarity"`
	MatchedFeatures []string    `json:"matchedFeatures"`
	Confidence      string      `json:"confidence"`
}

type MatchListResponse struct {
	Success bool            `json:"success"`
	Matches []MatchResponse `json:"matches"`
	Total   int             `json:"total"`
}

// MatchEvent is broadcast over WebSocket and published to the queue for
// every match at or above the query threshold.
type MatchEvent struct {
	Type            string    `json:"type"` // "match.computed"
	PetID           string    `json:"petId"`
	LostPetID       string    `json:"lostPetId"`
	FoundPetID      string    `json:"foundPetId"`
	Similarity      int       `json:"similarity"`
	Confidence      string    `json:"confidence"`
	MatchedFeatures []string  `json:"matchedFeatures"`
	OccurredAt      time.Time `json:"occurredAt"`
}
