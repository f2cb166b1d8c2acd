package listing

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/moradia-ai/moradia/internal/domain"
	domlisting "github.com/moradia-ai/moradia/internal/domain/listing"
)

// Repository persists listings in Postgres via GORM.
type Repository struct {
	db *gorm.DB
}

// New creates a listing repository.
func New(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Create inserts a new listing.
func (r *Repository) Create(ctx context.Context, l *domlisting.Listing) error {
	if err := r.db.WithContext(ctx).Create(l).Error; err != nil {
		return fmt.Errorf("create listing: %w", err)
	}
	return nil
}

// Get fetches a listing by id. Returns domain.ErrNotFound when missing.
func (r *Repository) Get(ctx context.Context, id uuid.UUID) (domlisting.Listing, error) {
	var l domlisting.Listing
	err := r.db.WithContext(ctx).First(&l, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domlisting.Listing{}, domain.ErrNotFound
		}
		return domlisting.Listing{}, fmt.Errorf("get listing: %w", err)
	}
	return l, nil
}

// Update writes all fields of an existing listing.
func (r *Repository) Update(ctx context.Context, l *domlisting.Listing) error {
	if err := r.db.WithContext(ctx).Save(l).Error; err != nil {
		return fmt.Errorf("update listing: %w", err)
	}
	return nil
}

// Delete removes a listing by id. Deleting a missing id is domain.ErrNotFound,
// not a silent no-op.
func (r *Repository) Delete(ctx context.Context, id uuid.UUID) error {
	res := r.db.WithContext(ctx).Delete(&domlisting.Listing{}, "id = ?", id)
	if res.Error != nil {
		return fmt.Errorf("delete listing: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// FindPage applies the filter and returns one page ordered by creation time
// descending, id as the tiebreaker so pagination is stable across calls.
func (r *Repository) FindPage(
	ctx context.Context, f domlisting.Filter, page, size int,
) (domain.Page[domlisting.Listing], error) {
	base := applyFilter(
		r.db.WithContext(ctx).Model(&domlisting.Listing{}), f,
	).Session(&gorm.Session{})

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return domain.Page[domlisting.Listing]{}, fmt.Errorf("count listings: %w", err)
	}

	items := []domlisting.Listing{}
	err := base.
		Order("created_at DESC, id").
		Offset(page * size).
		Limit(size).
		Find(&items).Error
	if err != nil {
		return domain.Page[domlisting.Listing]{}, fmt.Errorf("find listings: %w", err)
	}

	return domain.NewPage(items, page, size, total), nil
}
