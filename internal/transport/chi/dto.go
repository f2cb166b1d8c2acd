package chi

import (
	"time"

	"github.com/google/uuid"

	"github.com/moradia-ai/moradia/internal/domain"
	domlisting "github.com/moradia-ai/moradia/internal/domain/listing"
	domuser "github.com/moradia-ai/moradia/internal/domain/user"
)

type addressResponse struct {
	Street       string `json:"street"`
	Number       string `json:"number"`
	Complement   string `json:"complement,omitempty"`
	Neighborhood string `json:"neighborhood"`
	City         string `json:"city"`
	State        string `json:"state"`
	Zipcode      string `json:"zipcode"`
	Formatted    string `json:"formatted"`
}

type listingResponse struct {
	ID            uuid.UUID               `json:"id"`
	RentPrice     *float64                `json:"rentPrice"`
	SalePrice     *float64                `json:"salePrice"`
	CondoFee      float64                 `json:"condoFee"`
	PropertyTax   *float64                `json:"propertyTax"`
	Description   string                  `json:"description"`
	PropertyType  domlisting.PropertyType `json:"propertyType"`
	ListingType   domlisting.ListingType  `json:"listingType"`
	Status        domlisting.Status       `json:"status"`
	Bedrooms      int                     `json:"bedrooms"`
	Bathrooms     int                     `json:"bathrooms"`
	ParkingSpaces int                     `json:"parkingSpaces"`
	Area          float64                 `json:"area"`
	IsFurnished   bool                    `json:"isFurnished"`
	AcceptsPets   bool                    `json:"acceptsPets"`
	Address       addressResponse         `json:"address"`
	Latitude      *float64                `json:"latitude"`
	Longitude     *float64                `json:"longitude"`
	OwnerID       uuid.UUID               `json:"ownerId"`
	CreatedAt     time.Time               `json:"createdAt"`
	UpdatedAt     time.Time               `json:"updatedAt"`
}

func listingToResponse(l domlisting.Listing) listingResponse {
	return listingResponse{
		ID:            l.ID,
		RentPrice:     l.RentPrice,
		SalePrice:     l.SalePrice,
		CondoFee:      l.CondoFee,
		PropertyTax:   l.PropertyTax,
		Description:   l.Description,
		PropertyType:  l.PropertyType,
		ListingType:   l.ListingType,
		Status:        l.Status,
		Bedrooms:      l.Bedrooms,
		Bathrooms:     l.Bathrooms,
		ParkingSpaces: l.ParkingSpaces,
		Area:          l.Area,
		IsFurnished:   l.IsFurnished,
		AcceptsPets:   l.AcceptsPets,
		Address: addressResponse{
			Street:       l.Address.Street,
			Number:       l.Address.Number,
			Complement:   l.Address.Complement,
			Neighborhood: l.Address.Neighborhood,
			City:         l.Address.City,
			State:        l.Address.State,
			Zipcode:      l.Address.Zipcode,
			Formatted:    l.Address.Formatted,
		},
		Latitude:  l.Latitude,
		Longitude: l.Longitude,
		OwnerID:   l.OwnerID,
		CreatedAt: l.CreatedAt,
		UpdatedAt: l.UpdatedAt,
	}
}

// pagedResponse is one page of listings with pagination metadata.
type pagedResponse struct {
	Items         []listingResponse `json:"items"`
	CurrentPage   int               `json:"currentPage"`
	PageSize      int               `json:"pageSize"`
	TotalElements int64             `json:"totalElements"`
	TotalPages    int               `json:"totalPages"`
	HasNext       bool              `json:"hasNext"`
}

func pageToResponse(p domain.Page[domlisting.Listing]) pagedResponse {
	items := make([]listingResponse, len(p.Items))
	for i, l := range p.Items {
		items[i] = listingToResponse(l)
	}
	return pagedResponse{
		Items:         items,
		CurrentPage:   p.CurrentPage,
		PageSize:      p.PageSize,
		TotalElements: p.TotalElements,
		TotalPages:    p.TotalPages,
		HasNext:       p.HasNext,
	}
}

type userResponse struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Email string    `json:"email"`
	Role  string    `json:"role"`
}

func userToResponse(u domuser.User) userResponse {
	return userResponse{ID: u.ID, Name: u.Name, Email: u.Email, Role: u.Role}
}

type loginResponse struct {
	Token string       `json:"token"`
	User  userResponse `json:"user"`
}
