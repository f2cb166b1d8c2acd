package listing

import (
	"github.com/moradia-ai/moradia/internal/domain"
	domlisting "github.com/moradia-ai/moradia/internal/domain/listing"
)

// MaxDescriptionLen bounds the free-text description.
const MaxDescriptionLen = 2000

// AddressInput carries the client-supplied address fields.
// The formatted string is always derived server-side.
type AddressInput struct {
	Street       string `json:"street"`
	Number       string `json:"number"`
	Complement   string `json:"complement"`
	Neighborhood string `json:"neighborhood"`
	City         string `json:"city"`
	State        string `json:"state"`
	Zipcode      string `json:"zipcode"`
}

func (a AddressInput) toDomain() domlisting.Address {
	addr := domlisting.Address{
		Street:       a.Street,
		Number:       a.Number,
		Complement:   a.Complement,
		Neighborhood: a.Neighborhood,
		City:         a.City,
		State:        a.State,
		Zipcode:      a.Zipcode,
	}
	addr.RefreshFormatted()
	return addr
}

// CreateInput carries the fields for both kind-specific creation operations.
// The sale use case reads SalePrice, the rental use case reads RentPrice;
// the other price field is ignored. Numeric fields are pointers so that a
// legitimate zero (e.g. a studio with no bedrooms) is distinguishable from
// an absent field.
type CreateInput struct {
	SalePrice     *float64                 `json:"salePrice"`
	RentPrice     *float64                 `json:"rentPrice"`
	CondoFee      *float64                 `json:"condoFee"`
	PropertyTax   *float64                 `json:"propertyTax"`
	Description   string                   `json:"description"`
	PropertyType  domlisting.PropertyType  `json:"propertyType"`
	Bedrooms      *int                     `json:"bedrooms"`
	Bathrooms     *int                     `json:"bathrooms"`
	ParkingSpaces *int                     `json:"parkingSpaces"`
	Area          *float64                 `json:"area"`
	IsFurnished   *bool                    `json:"isFurnished"`
	AcceptsPets   *bool                    `json:"acceptsPets"`
	Latitude      *float64                 `json:"latitude"`
	Longitude     *float64                 `json:"longitude"`
	Address       *AddressInput            `json:"address"`
}

// validate checks the common fields shared by both creation operations and
// the generic update. Price validation is kind-specific and handled by the
// caller. Returns a ValidationError naming every offending field.
func (in CreateInput) validate() []string {
	var bad []string

	if in.CondoFee == nil || *in.CondoFee < 0 {
		bad = append(bad, "condoFee")
	}
	if in.PropertyTax != nil && *in.PropertyTax < 0 {
		bad = append(bad, "propertyTax")
	}
	if len(in.Description) > MaxDescriptionLen {
		bad = append(bad, "description")
	}
	if !in.PropertyType.Valid() {
		bad = append(bad, "propertyType")
	}
	if in.Bedrooms == nil || *in.Bedrooms < 0 {
		bad = append(bad, "bedrooms")
	}
	if in.Bathrooms == nil || *in.Bathrooms < 0 {
		bad = append(bad, "bathrooms")
	}
	if in.ParkingSpaces == nil || *in.ParkingSpaces < 0 {
		bad = append(bad, "parkingSpaces")
	}
	if in.Area == nil || *in.Area <= 0 {
		bad = append(bad, "area")
	}
	if in.IsFurnished == nil {
		bad = append(bad, "isFurnished")
	}
	if in.AcceptsPets == nil {
		bad = append(bad, "acceptsPets")
	}
	if in.Address == nil {
		bad = append(bad, "address")
	}
	return bad
}

func (in CreateInput) validateForSale() error {
	bad := in.validate()
	if in.SalePrice == nil || *in.SalePrice <= 0 {
		bad = append([]string{"salePrice"}, bad...)
	}
	if len(bad) > 0 {
		return domain.NewValidationError(bad...)
	}
	return nil
}

func (in CreateInput) validateForRental() error {
	bad := in.validate()
	if in.RentPrice == nil || *in.RentPrice <= 0 {
		bad = append([]string{"rentPrice"}, bad...)
	}
	if len(bad) > 0 {
		return domain.NewValidationError(bad...)
	}
	return nil
}

// UpdateInput carries the fields of the generic update operation. The price
// matching the listing's kind is required; the other one must stay empty.
type UpdateInput = CreateInput
