package listing

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// PropertyType is the kind of property being listed.
type PropertyType string

// Allowed property types.
const (
	TypeApartment  PropertyType = "APARTMENT"
	TypeHouse      PropertyType = "HOUSE"
	TypeStudio     PropertyType = "STUDIO"
	TypeKitnet     PropertyType = "KITNET"
	TypeCommercial PropertyType = "COMMERCIAL"
)

// Valid reports whether p is one of the allowed property types.
func (p PropertyType) Valid() bool {
	switch p {
	case TypeApartment, TypeHouse, TypeStudio, TypeKitnet, TypeCommercial:
		return true
	}
	return false
}

// ListingType distinguishes rental listings from sale listings.
type ListingType string

// Allowed listing types.
const (
	ListingRent ListingType = "RENT"
	ListingSale ListingType = "SALE"
)

// Valid reports whether l is one of the allowed listing types.
func (l ListingType) Valid() bool {
	return l == ListingRent || l == ListingSale
}

// Status is the publication status of a listing.
type Status string

// Publication statuses.
const (
	StatusDraft     Status = "DRAFT"
	StatusPublished Status = "PUBLISHED"
	StatusPaused    Status = "PAUSED"
)

// Valid reports whether s is one of the allowed statuses.
func (s Status) Valid() bool {
	return s == StatusDraft || s == StatusPublished || s == StatusPaused
}

// Address is the postal address embedded in a listing.
// Formatted is derived, never supplied by clients.
type Address struct {
	Street       string `gorm:"column:street"`
	Number       string `gorm:"column:number"`
	Complement   string `gorm:"column:complement"`
	Neighborhood string `gorm:"column:neighborhood"`
	City         string `gorm:"column:city"`
	State        string `gorm:"column:state;size:2"`
	Zipcode      string `gorm:"column:zipcode;size:8"`
	Formatted    string `gorm:"column:formatted;size:300"`
}

// RefreshFormatted re-derives the human-readable formatted address.
// Called on every address write.
func (a *Address) RefreshFormatted() {
	a.Formatted = fmt.Sprintf("%s %s, %s, %s - %s, %s",
		a.Street, a.Number, a.Neighborhood, a.City, a.State, a.Zipcode)
}

// Listing is a real-estate property record offered for rent or sale.
// Exactly one of RentPrice/SalePrice is populated, consistent with
// ListingType; that invariant is enforced at write time, not by filtering.
type Listing struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	CreatedAt     time.Time `gorm:"index"`
	UpdatedAt     time.Time
	RentPrice     *float64 `gorm:"type:decimal(12,2)"`
	SalePrice     *float64 `gorm:"type:decimal(12,2)"`
	CondoFee      float64  `gorm:"type:decimal(12,2)"`
	PropertyTax   *float64 `gorm:"type:decimal(12,2)"`
	Description   string   `gorm:"size:2000"`
	PropertyType  PropertyType `gorm:"type:varchar(20);not null"`
	ListingType   ListingType  `gorm:"type:varchar(10);not null"`
	Status        Status       `gorm:"type:varchar(10);not null"`
	Bedrooms      int          `gorm:"not null"`
	Bathrooms     int          `gorm:"not null"`
	ParkingSpaces int          `gorm:"not null"`
	Area          float64      `gorm:"type:decimal(10,2);not null"`
	IsFurnished   bool         `gorm:"not null"`
	AcceptsPets   bool         `gorm:"not null"`
	Address       Address      `gorm:"embedded;embeddedPrefix:addr_"`
	Latitude      *float64
	Longitude     *float64
	OwnerID       uuid.UUID `gorm:"type:uuid;not null;index"`
}

// TableName sets the listings table name.
func (Listing) TableName() string { return "listings" }
