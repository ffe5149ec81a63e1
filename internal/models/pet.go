package models

import "time"

// PetType is the coarse animal category of a listing.
type PetType string

const (
	TypeDog   PetType = "dog"
	TypeCat   PetType = "cat"
	TypeOther PetType = "other"
)

// PetSize is the three-valued size bucket.
type PetSize string

const (
	SizeSmall  PetSize = "small"
	SizeMedium PetSize = "medium"
	SizeLarge  PetSize = "large"
)

// PetStatus marks a listing as lost or found. The two sets are disjoint;
// matching only ever pairs one lost record with one found record.
type PetStatus string

const (
	StatusLost  PetStatus = "lost"
	StatusFound PetStatus = "found"
)

// Contact holds the reporter's contact details.
type Contact struct {
	Name     string `json:"name"`
	Phone    string `json:"phone"`
	WhatsApp string `json:"whatsapp,omitempty"`
	Email    string `json:"email,omitempty"`
}

// Pet is a single lost/found pet listing.
type Pet struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Type        PetType   `json:"type"`
	Breed       string    `json:"breed"`
	Color       string    `json:"color"`
	Size        PetSize   `json:"size"`
	Status      PetStatus `json:"status"`
	Location    string    `json:"location"` // free text, conventionally "place, city"
	Date        time.Time `json:"date"`
	Description string    `json:"description"`
	Contact     Contact   `json:"contact"`
	Images      []string  `json:"images"`
}

// PetFeatures is the output of image analysis: coarse attributes with an
// overall detection confidence in [0,1]. Unset strings mean the attribute
// could not be determined.
type PetFeatures struct {
	Breed      string   `json:"breed,omitempty"`
	Color      string   `json:"color,omitempty"`
	Size       string   `json:"size,omitempty"`
	Markings   []string `json:"markings,omitempty"`
	Confidence float64  `json:"confidence"`
}
