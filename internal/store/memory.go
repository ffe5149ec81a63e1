package store

import (
	"errors"
	"strings"

	"github.com/your-org/pawmatch/internal/models"
)

var ErrNotFound = errors.New("pet not found")

// Store holds the pet listings for the process lifetime. The collection is
// fixed at construction and never mutated afterwards, so reads need no
// locking; callers receive shared read-only views.
type Store struct {
	byID  map[string]*models.Pet
	order []*models.Pet // seed order, used for stable iteration
}

func New(pets []models.Pet) *Store {
	s := &Store{byID: make(map[string]*models.Pet, len(pets))}
	for i := range pets {
		p := &pets[i]
		s.byID[p.ID] = p
		s.order = append(s.order, p)
	}
	return s
}

// Get returns the listing with the given id or ErrNotFound.
func (s *Store) Get(id string) (*models.Pet, error) {
	p, ok := s.byID[id]
	if !ok {
		return nil, ErrNotFound
	}
	return p, nil
}

// List returns all listings in seed order.
func (s *Store) List() []*models.Pet {
	out := make([]*models.Pet, len(s.order))
	copy(out, s.order)
	return out
}

// Filter narrows a search. Zero-value fields are ignored; slice fields
// match when the listing's value is any of the given ones.
type Filter struct {
	Query    string // case-insensitive substring over name, breed, description, location
	Types    []models.PetType
	Statuses []models.PetStatus
	Sizes    []models.PetSize
	Location string // case-insensitive substring over location
}

// Search returns the listings matching every set filter field, in seed order.
func (s *Store) Search(f Filter) []*models.Pet {
	out := make([]*models.Pet, 0)
	for _, p := range s.order {
		if !matchesFilter(p, f) {
			continue
		}
		out = append(out, p)
	}
	return out
}

func matchesFilter(p *models.Pet, f Filter) bool {
	if f.Query != "" {
		q := strings.ToLower(f.Query)
		if !strings.Contains(strings.ToLower(p.Name), q) &&
			!strings.Contains(strings.ToLower(p.Breed), q) &&
			!strings.Contains(strings.ToLower(p.Description), q) &&
			!strings.Contains(strings.ToLower(p.Location), q) {
			return false
		}
	}
	if len(f.Types) > 0 && !containsType(f.Types, p.Type) {
		return false
	}
	if len(f.Statuses) > 0 && !containsStatus(f.Statuses, p.Status) {
		return false
	}
	if len(f.Sizes) > 0 && !containsSize(f.Sizes, p.Size) {
		return false
	}
	if f.Location != "" && !strings.Contains(strings.ToLower(p.Location), strings.ToLower(f.Location)) {
		return false
	}
	return true
}

func containsType(vs []models.PetType, v models.PetType) bool {
	for _, x := range vs {
		if x == v {
			return true
		}
	}
	return false
}

func containsStatus(vs []models.PetStatus, v models.PetStatus) bool {
	for _, x := range vs {
		if x == v {
			return true
		}
	}
	return false
}

func containsSize(vs []models.PetSize, v models.PetSize) bool {
	for _, x := range vs {
		if x == v {
			return true
		}
	}
	return false
}
