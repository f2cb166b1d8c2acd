package listing

import (
	"gorm.io/gorm"

	domlisting "github.com/moradia-ai/moradia/internal/domain/listing"
)

// scope is one predicate fragment applied to a query under construction.
// A nil scope means the criterion was absent and contributes no restriction.
type scope func(*gorm.DB) *gorm.DB

// filterScopes returns one optional scope per filter field, in declaration
// order. Order does not change the result (the fragments are ANDed) but keeps
// the generated SQL deterministic.
func filterScopes(f domlisting.Filter) []scope {
	return []scope{
		hasMaxPrice(f.MaxPrice),
		hasCity(f.City),
		hasState(f.State),
		hasPropertyType(f.PropertyType),
		hasListingType(f.ListingType),
		hasMinBedrooms(f.MinBedrooms),
		hasMinBathrooms(f.MinBathrooms),
		hasMinParkingSpaces(f.MinParkingSpaces),
		hasMinArea(f.MinArea),
		hasMaxArea(f.MaxArea),
		isFurnished(f.IsFurnished),
		acceptsPets(f.AcceptsPets),
	}
}

// applyFilter folds every active scope into the query. An all-nil filter
// leaves the query unrestricted (matches everything, never nothing).
func applyFilter(db *gorm.DB, f domlisting.Filter) *gorm.DB {
	for _, s := range filterScopes(f) {
		if s != nil {
			db = s(db)
		}
	}
	return db
}

// hasMaxPrice bounds whichever price column is populated. A listing passes
// when its sale price or its rent price is within the bound; the cross-kind
// OR is intentional and preserved as-is (see DESIGN.md).
func hasMaxPrice(max *float64) scope {
	if max == nil {
		return nil
	}
	return func(db *gorm.DB) *gorm.DB {
		return db.Where(
			"(sale_price IS NOT NULL AND sale_price <= ?) OR (rent_price IS NOT NULL AND rent_price <= ?)",
			*max, *max,
		)
	}
}

func hasCity(city *string) scope {
	if city == nil {
		return nil
	}
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("addr_city = ?", *city)
	}
}

func hasState(state *string) scope {
	if state == nil {
		return nil
	}
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("addr_state = ?", *state)
	}
}

func hasPropertyType(pt *domlisting.PropertyType) scope {
	if pt == nil {
		return nil
	}
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("property_type = ?", *pt)
	}
}

func hasListingType(lt *domlisting.ListingType) scope {
	if lt == nil {
		return nil
	}
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("listing_type = ?", *lt)
	}
}

func hasMinBedrooms(min *int) scope {
	if min == nil {
		return nil
	}
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("bedrooms >= ?", *min)
	}
}

func hasMinBathrooms(min *int) scope {
	if min == nil {
		return nil
	}
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("bathrooms >= ?", *min)
	}
}

func hasMinParkingSpaces(min *int) scope {
	if min == nil {
		return nil
	}
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("parking_spaces >= ?", *min)
	}
}

func hasMinArea(min *float64) scope {
	if min == nil {
		return nil
	}
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("area >= ?", *min)
	}
}

func hasMaxArea(max *float64) scope {
	if max == nil {
		return nil
	}
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("area <= ?", *max)
	}
}

func isFurnished(v *bool) scope {
	if v == nil {
		return nil
	}
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("is_furnished = ?", *v)
	}
}

func acceptsPets(v *bool) scope {
	if v == nil {
		return nil
	}
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("accepts_pets = ?", *v)
	}
}
