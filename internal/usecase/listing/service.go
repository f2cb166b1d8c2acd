package listing

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/moradia-ai/moradia/internal/domain"
	domlisting "github.com/moradia-ai/moradia/internal/domain/listing"
	domuser "github.com/moradia-ai/moradia/internal/domain/user"
)

// Caller identifies the authenticated user performing an operation.
type Caller struct {
	UserID uuid.UUID
	Role   string
}

func (c Caller) canModify(l domlisting.Listing) bool {
	return l.OwnerID == c.UserID || c.Role == domuser.RoleAdmin
}

// Service implements the listing operations: kind-specific creation, fetch,
// generic update, delete, and the filtered paged listing query.
type Service struct {
	repo            Repository
	defaultPageSize int
	maxPageSize     int
}

// New creates a listing service.
func New(repo Repository) *Service {
	return &Service{repo: repo, defaultPageSize: 15, maxPageSize: 100}
}

// WithPagination overrides the page-size defaults.
func (s *Service) WithPagination(defaultSize, maxSize int) *Service {
	if defaultSize > 0 {
		s.defaultPageSize = defaultSize
	}
	if maxSize > 0 {
		s.maxPageSize = maxSize
	}
	return s
}

// CreateForSale creates a sale listing owned by the caller.
// Rent price is never populated on a sale listing.
func (s *Service) CreateForSale(ctx context.Context, caller Caller, in CreateInput) (domlisting.Listing, error) {
	if err := in.validateForSale(); err != nil {
		return domlisting.Listing{}, err
	}

	l := newFromInput(in, caller.UserID)
	l.ListingType = domlisting.ListingSale
	l.SalePrice = in.SalePrice

	if err := s.repo.Create(ctx, &l); err != nil {
		return domlisting.Listing{}, fmt.Errorf("create sale listing: %w", err)
	}
	return l, nil
}

// CreateForRental creates a rental listing owned by the caller.
// Sale price is never populated on a rental listing.
func (s *Service) CreateForRental(ctx context.Context, caller Caller, in CreateInput) (domlisting.Listing, error) {
	if err := in.validateForRental(); err != nil {
		return domlisting.Listing{}, err
	}

	l := newFromInput(in, caller.UserID)
	l.ListingType = domlisting.ListingRent
	l.RentPrice = in.RentPrice

	if err := s.repo.Create(ctx, &l); err != nil {
		return domlisting.Listing{}, fmt.Errorf("create rental listing: %w", err)
	}
	return l, nil
}

// Get fetches a listing by id.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (domlisting.Listing, error) {
	return s.repo.Get(ctx, id)
}

// Update replaces the mutable fields of a listing and re-derives the
// formatted address. The listing kind is immutable; the price matching the
// kind is required and the other one is cleared. Only the owner or an admin
// may update.
func (s *Service) Update(ctx context.Context, caller Caller, id uuid.UUID, in UpdateInput) (domlisting.Listing, error) {
	l, err := s.repo.Get(ctx, id)
	if err != nil {
		return domlisting.Listing{}, err
	}
	if !caller.canModify(l) {
		return domlisting.Listing{}, domain.ErrForbidden
	}

	switch l.ListingType {
	case domlisting.ListingSale:
		if err := in.validateForSale(); err != nil {
			return domlisting.Listing{}, err
		}
		l.SalePrice = in.SalePrice
		l.RentPrice = nil
	case domlisting.ListingRent:
		if err := in.validateForRental(); err != nil {
			return domlisting.Listing{}, err
		}
		l.RentPrice = in.RentPrice
		l.SalePrice = nil
	default:
		return domlisting.Listing{}, fmt.Errorf("listing %s has unknown type %q", id, l.ListingType)
	}

	l.CondoFee = *in.CondoFee
	l.PropertyTax = in.PropertyTax
	l.Description = in.Description
	l.PropertyType = in.PropertyType
	l.Bedrooms = *in.Bedrooms
	l.Bathrooms = *in.Bathrooms
	l.ParkingSpaces = *in.ParkingSpaces
	l.Area = *in.Area
	l.IsFurnished = *in.IsFurnished
	l.AcceptsPets = *in.AcceptsPets
	l.Latitude = in.Latitude
	l.Longitude = in.Longitude
	l.Address = in.Address.toDomain()

	if err := s.repo.Update(ctx, &l); err != nil {
		return domlisting.Listing{}, fmt.Errorf("update listing: %w", err)
	}
	return l, nil
}

// Delete removes a listing. Only the owner or an admin may delete; a missing
// id surfaces as NotFound.
func (s *Service) Delete(ctx context.Context, caller Caller, id uuid.UUID) error {
	l, err := s.repo.Get(ctx, id)
	if err != nil {
		return err
	}
	if !caller.canModify(l) {
		return domain.ErrForbidden
	}
	return s.repo.Delete(ctx, id)
}

// List returns one page of listings matching the filter, most recent first.
// Page and size are normalized: negative page becomes 0, non-positive size
// becomes the default, oversized requests are capped.
func (s *Service) List(
	ctx context.Context, f domlisting.Filter, page, size int,
) (domain.Page[domlisting.Listing], error) {
	if page < 0 {
		page = 0
	}
	if size <= 0 {
		size = s.defaultPageSize
	}
	if size > s.maxPageSize {
		size = s.maxPageSize
	}
	return s.repo.FindPage(ctx, f, page, size)
}

func newFromInput(in CreateInput, owner uuid.UUID) domlisting.Listing {
	return domlisting.Listing{
		ID:            uuid.New(),
		CondoFee:      *in.CondoFee,
		PropertyTax:   in.PropertyTax,
		Description:   in.Description,
		PropertyType:  in.PropertyType,
		Status:        domlisting.StatusPublished,
		Bedrooms:      *in.Bedrooms,
		Bathrooms:     *in.Bathrooms,
		ParkingSpaces: *in.ParkingSpaces,
		Area:          *in.Area,
		IsFurnished:   *in.IsFurnished,
		AcceptsPets:   *in.AcceptsPets,
		Latitude:      in.Latitude,
		Longitude:     in.Longitude,
		Address:       in.Address.toDomain(),
		OwnerID:       owner,
	}
}
