package store

import (
	"time"

	"github.com/your-org/pawmatch/internal/models"
)

// SeedPets is the compiled-in listing dataset. There is no persistence
// layer: the store is rebuilt from this slice on every start.
func SeedPets() []models.Pet {
	return []models.Pet{
		{
			ID:          "1",
			Name:        "Luna",
			Type:        models.TypeDog,
			Breed:       "Golden Retriever",
			Color:       "Dorado",
			Size:        models.SizeLarge,
			Status:      models.StatusLost,
			Location:    "Parque Central, Madrid",
			Date:        date(2024, 1, 15),
			Description: "Muy cariñosa, lleva collar azul con placa. Responde a su nombre.",
			Contact: models.Contact{
				Name:     "María García",
				Phone:    "+34 666 123 456",
				WhatsApp: "+34 666 123 456",
			},
			Images: []string{"/golden-retriever.png"},
		},
		{
			ID:          "2",
			Name:        "Michi",
			Type:        models.TypeCat,
			Breed:       "Gato Siamés",
			Color:       "Gris y blanco",
			Size:        models.SizeMedium,
			Status:      models.StatusFound,
			Location:    "Calle Mayor, Barcelona",
			Date:        date(2024, 1, 14),
			Description: "Gato muy tranquilo, ojos azules. Encontrado cerca del mercado.",
			Contact: models.Contact{
				Name:  "Carlos López",
				Phone: "+34 677 987 654",
			},
			Images: []string{"/siamese-cat-gray-white.png"},
		},
		{
			ID:          "3",
			Name:        "Rocky",
			Type:        models.TypeDog,
			Breed:       "Bulldog Francés",
			Color:       "Negro",
			Size:        models.SizeSmall,
			Status:      models.StatusLost,
			Location:    "Plaza España, Sevilla",
			Date:        date(2024, 1, 13),
			Description: "Muy juguetón, tiene una mancha blanca en el pecho.",
			Contact: models.Contact{
				Name:     "Ana Martín",
				Phone:    "+34 655 444 333",
				WhatsApp: "+34 655 444 333",
			},
			Images: []string{"/french-bulldog-black-white-chest.png"},
		},
		{
			ID:          "4",
			Name:        "Bella",
			Type:        models.TypeDog,
			Breed:       "Labrador",
			Color:       "Chocolate",
			Size:        models.SizeLarge,
			Status:      models.StatusFound,
			Location:    "Parque del Retiro, Madrid",
			Date:        date(2024, 1, 12),
			Description: "Perra muy amigable, sin collar. Parece estar bien cuidada.",
			Contact: models.Contact{
				Name:  "Luis Fernández",
				Phone: "+34 644 555 777",
			},
			Images: []string{"/chocolate-labrador.png"},
		},
		{
			ID:          "5",
			Name:        "Whiskers",
			Type:        models.TypeCat,
			Breed:       "Gato Persa",
			Color:       "Blanco",
			Size:        models.SizeSmall,
			Status:      models.StatusLost,
			Location:    "Barrio Gótico, Barcelona",
			Date:        date(2024, 1, 11),
			Description: "Gato persa de pelo largo, muy tímido. Lleva collar rosa.",
			Contact: models.Contact{
				Name:     "Elena Ruiz",
				Phone:    "+34 633 888 999",
				WhatsApp: "+34 633 888 999",
			},
			Images: []string{"/white-persian-cat.png"},
		},
		{
			ID:          "6",
			Name:        "Max",
			Type:        models.TypeDog,
			Breed:       "Golden Retriever",
			Color:       "Dorado",
			Size:        models.SizeLarge,
			Status:      models.StatusFound,
			Location:    "Plaza Mayor, Madrid",
			Date:        date(2024, 1, 16),
			Description: "Perro dorado encontrado vagando, muy sociable.",
			Contact: models.Contact{
				Name:  "Pedro Sánchez",
				Phone: "+34 688 222 111",
			},
			Images: []string{"/golden-retriever-found.png"},
		},
		{
			ID:          "7",
			Name:        "Desconocido",
			Type:        models.TypeCat,
			Breed:       "Gato doméstico",
			Color:       "Negro y blanco",
			Size:        models.SizeSmall,
			Status:      models.StatusFound,
			Location:    "Las Ramblas, Barcelona",
			Date:        date(2024, 1, 10),
			Description: "Gato joven sin chip, encontrado en un portal.",
			Contact: models.Contact{
				Name:  "Lucía Torres",
				Phone: "+34 699 333 444",
				Email: "lucia.torres@example.com",
			},
			Images: nil,
		},
		{
			ID:          "8",
			Name:        "Toby",
			Type:        models.TypeDog,
			Breed:       "Bulldog Inglés",
			Color:       "Marrón",
			Size:        models.SizeMedium,
			Status:      models.StatusFound,
			Location:    "Triana, Sevilla",
			Date:        date(2024, 1, 9),
			Description: "Bulldog tranquilo con collar rojo sin placa.",
			Contact: models.Contact{
				Name:  "Javier Moreno",
				Phone: "+34 611 777 888",
			},
			Images: []string{"/english-bulldog.png"},
		},
	}
}

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}
