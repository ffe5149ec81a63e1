package dto

// ContactResponse mirrors the reporter contact block of a listing.
type ContactResponse struct {
	Name     string `json:"name"`
	Phone    string `json:"phone"`
	WhatsApp string `json:"whatsapp,omitempty"`
	Email    string `json:"email,omitempty"`
}

// PetResponse is the wire form of one pet listing. Date is a calendar date
// (YYYY-MM-DD).
type PetResponse struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Type        string          `json:"type"`
	Breed       string          `json:"breed"`
	Color       string          `json:"color"`
	Size        string          `json:"size"`
	Status      string          `json:"status"`
	Location    string          `json:"location"`
	Date        string          `json:"date"`
	Description string          `json:"description"`
	Contact     ContactResponse `json:"contact"`
	Images      []string        `json:"images"`
}

type PetListResponse struct {
	Success bool          `json:"success"`
	Pets    []PetResponse `json:"pets"`
	Total   int           `json:"total"`
}
