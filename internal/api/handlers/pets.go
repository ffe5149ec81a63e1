package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/your-org/pawmatch/internal/models"
	"github.com/your-org/pawmatch/internal/store"
	"github.com/your-org/pawmatch/pkg/dto"
)

type PetHandler struct {
	store *store.Store
}

func NewPetHandler(s *store.Store) *PetHandler {
	return &PetHandler{store: s}
}

// List searches the listings. All filters are optional and combine with AND;
// type, status and size may be given multiple times.
func (h *PetHandler) List(c *gin.Context) {
	filter := store.Filter{
		Query:    c.Query("query"),
		Location: c.Query("location"),
	}
	for _, v := range c.QueryArray("type") {
		filter.Types = append(filter.Types, models.PetType(v))
	}
	for _, v := range c.QueryArray("status") {
		filter.Statuses = append(filter.Statuses, models.PetStatus(v))
	}
	for _, v := range c.QueryArray("size") {
		filter.Sizes = append(filter.Sizes, models.PetSize(v))
	}

	pets := h.store.Search(filter)

	resp := make([]dto.PetResponse, 0, len(pets))
	for _, p := range pets {
		resp = append(resp, toPetResponse(p))
	}

	c.JSON(http.StatusOK, dto.PetListResponse{Success: true, Pets: resp, Total: len(resp)})
}

func (h *PetHandler) Get(c *gin.Context) {
	pet, err := h.store.Get(c.Param("id"))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "pet not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, toPetResponse(pet))
}

func toPetResponse(p *models.Pet) dto.PetResponse {
	return dto.PetResponse{
		ID:          p.ID,
		Name:        p.Name,
		Type:        string(p.Type),
		Breed:       p.Breed,
		Color:       p.Color,
		Size:        string(p.Size),
		Status:      string(p.Status),
		Location:    p.Location,
		Date:        p.Date.Format("2006-01-02"),
		Description: p.Description,
		Contact: dto.ContactResponse{
			Name:     p.Contact.Name,
			Phone:    p.Contact.Phone,
			WhatsApp: p.Contact.WhatsApp,
			Email:    p.Contact.Email,
		},
		Images: p.Images,
	}
}
