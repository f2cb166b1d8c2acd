package listing

import (
	"context"

	"github.com/google/uuid"

	"github.com/moradia-ai/moradia/internal/domain"
	domlisting "github.com/moradia-ai/moradia/internal/domain/listing"
)

// Repository defines the storage contract for listings.
type Repository interface {
	Create(ctx context.Context, l *domlisting.Listing) error
	Get(ctx context.Context, id uuid.UUID) (domlisting.Listing, error)
	Update(ctx context.Context, l *domlisting.Listing) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindPage(ctx context.Context, f domlisting.Filter, page, size int) (domain.Page[domlisting.Listing], error)
}
