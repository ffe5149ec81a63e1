package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/your-org/pawmatch/internal/api/ws"
	"github.com/your-org/pawmatch/internal/matching"
	"github.com/your-org/pawmatch/internal/models"
	"github.com/your-org/pawmatch/internal/observability"
	"github.com/your-org/pawmatch/internal/queue"
	"github.com/your-org/pawmatch/internal/store"
	"github.com/your-org/pawmatch/pkg/dto"
)

type MatchHandler struct {
	finder        *matching.Finder
	hub           *ws.Hub
	producer      *queue.Producer // nil when NATS is not configured
	minSimilarity float64
}

func NewMatchHandler(finder *matching.Finder, hub *ws.Hub, producer *queue.Producer, minSimilarity float64) *MatchHandler {
	return &MatchHandler{
		finder:        finder,
		hub:           hub,
		producer:      producer,
		minSimilarity: minSimilarity,
	}
}

// Find ranks opposite-status candidates for the given pet. Every match at
// or above the threshold is also emitted as a match.computed event.
func (h *MatchHandler) Find(c *gin.Context) {
	petID := c.Query("petId")
	if petID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "petId is required"})
		return
	}

	minSimilarity := h.minSimilarity
	if v := c.Query("minSimilarity"); v != "" {
		parsed, err := strconv.ParseFloat(v, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid minSimilarity"})
			return
		}
		minSimilarity = parsed
	}

	observability.MatchRequests.Inc()

	matches, err := h.finder.FindMatches(petID, minSimilarity)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "pet not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to find matches"})
		return
	}

	observability.MatchesFound.Observe(float64(len(matches)))

	resp := make([]dto.MatchResponse, 0, len(matches))
	for _, m := range matches {
		resp = append(resp, toMatchResponse(m))
		h.emitEvent(c, petID, m)
	}

	c.JSON(http.StatusOK, dto.MatchListResponse{Success: true, Matches: resp, Total: len(resp)})
}

// emitEvent broadcasts a match over WebSocket and, when a producer is
// wired, publishes it to the queue. Delivery failures never fail the query.
func (h *MatchHandler) emitEvent(c *gin.Context, petID string, m models.Match) {
	event := &dto.MatchEvent{
		Type:            "match.computed",
		PetID:           petID,
		LostPetID:       m.LostPet.ID,
		FoundPetID:      m.FoundPet.ID,
		Similarity:      m.Similarity,
		Confidence:      string(m.Confidence),
		MatchedFeatures: m.MatchedFeatures,
		OccurredAt:      time.Now().UTC(),
	}

	if h.hub != nil {
		h.hub.BroadcastMatch(event)
	}
	if h.producer != nil {
		if err := h.producer.PublishMatch(c.Request.Context(), petID, event); err != nil {
			slog.Warn("publish match event", "pet", petID, "error", err)
		}
	}
}

func toMatchResponse(m models.Match) dto.MatchResponse {
	return dto.MatchResponse{
		LostPet:         toPetResponse(m.LostPet),
		FoundPet:        toPetResponse(m.FoundPet),
		Similarity:      m.Similarity,
		MatchedFeatures: m.MatchedFeatures,
		Confidence:      string(m.Confidence),
	}
}
