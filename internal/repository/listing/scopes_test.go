package listing

import (
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	domlisting "github.com/moradia-ai/moradia/internal/domain/listing"
)

// newDryRunDB opens a GORM session that builds SQL without executing it.
func newDryRunDB(t *testing.T) *gorm.DB {
	t.Helper()

	sqlDB, _, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{DryRun: true})
	require.NoError(t, err)
	return db
}

func buildSQL(t *testing.T, f domlisting.Filter) (string, []interface{}) {
	t.Helper()

	db := newDryRunDB(t)
	var items []domlisting.Listing
	stmt := applyFilter(db.Model(&domlisting.Listing{}), f).Find(&items).Statement
	return stmt.SQL.String(), stmt.Vars
}

func strPtr(s string) *string    { return &s }
func intPtr(i int) *int          { return &i }
func floatPtr(f float64) *float64 { return &f }
func boolPtr(b bool) *bool       { return &b }

func TestApplyFilter_EmptyFilterHasNoWhere(t *testing.T) {
	sql, vars := buildSQL(t, domlisting.Filter{})

	assert.NotContains(t, sql, "WHERE", "an all-nil filter must match everything")
	assert.Empty(t, vars)
}

func TestApplyFilter_MaxPriceBoundsEitherPriceColumn(t *testing.T) {
	sql, vars := buildSQL(t, domlisting.Filter{MaxPrice: floatPtr(450000)})

	assert.Contains(t, sql, "sale_price IS NOT NULL AND sale_price <=")
	assert.Contains(t, sql, "rent_price IS NOT NULL AND rent_price <=")
	assert.Contains(t, sql, " OR ")
	assert.Equal(t, []interface{}{450000.0, 450000.0}, vars)
}

func TestApplyFilter_SingleFieldPredicates(t *testing.T) {
	tests := []struct {
		name     string
		filter   domlisting.Filter
		fragment string
		want     interface{}
	}{
		{"city equality", domlisting.Filter{City: strPtr("Campinas")}, "addr_city =", "Campinas"},
		{"state equality", domlisting.Filter{State: strPtr("SP")}, "addr_state =", "SP"},
		{
			"property type equality",
			domlisting.Filter{PropertyType: ptypePtr(domlisting.TypeApartment)},
			"property_type =", domlisting.TypeApartment,
		},
		{
			"listing type equality",
			domlisting.Filter{ListingType: ltypePtr(domlisting.ListingRent)},
			"listing_type =", domlisting.ListingRent,
		},
		{"min bedrooms", domlisting.Filter{MinBedrooms: intPtr(2)}, "bedrooms >=", 2},
		{"min bathrooms", domlisting.Filter{MinBathrooms: intPtr(1)}, "bathrooms >=", 1},
		{"min parking", domlisting.Filter{MinParkingSpaces: intPtr(1)}, "parking_spaces >=", 1},
		{"min area", domlisting.Filter{MinArea: floatPtr(40)}, "area >=", 40.0},
		{"max area", domlisting.Filter{MaxArea: floatPtr(90)}, "area <=", 90.0},
		{"furnished", domlisting.Filter{IsFurnished: boolPtr(true)}, "is_furnished =", true},
		{"accepts pets", domlisting.Filter{AcceptsPets: boolPtr(false)}, "accepts_pets =", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sql, vars := buildSQL(t, tt.filter)

			assert.Contains(t, sql, tt.fragment)
			require.Len(t, vars, 1)
			assert.EqualValues(t, tt.want, vars[0])
		})
	}
}

func TestApplyFilter_CombinesWithAND(t *testing.T) {
	f := domlisting.Filter{
		City:        strPtr("Campinas"),
		MinBedrooms: intPtr(2),
		MaxPrice:    floatPtr(3000),
	}
	sql, vars := buildSQL(t, f)

	assert.Contains(t, sql, "addr_city =")
	assert.Contains(t, sql, "bedrooms >=")
	assert.Contains(t, sql, "sale_price IS NOT NULL")
	assert.NotContains(t, sql, "addr_city = $1 OR", "top-level fields never combine with OR")
	assert.Len(t, vars, 4) // max price binds twice
}

func TestApplyFilter_DeterministicOrder(t *testing.T) {
	f := domlisting.Filter{
		City:    strPtr("Campinas"),
		MaxArea: floatPtr(90),
	}

	first, _ := buildSQL(t, f)
	second, _ := buildSQL(t, f)
	assert.Equal(t, first, second)

	// Declaration order: city before area bounds.
	assert.Less(t, strings.Index(first, "addr_city"), strings.Index(first, "area <="))
}

func ptypePtr(p domlisting.PropertyType) *domlisting.PropertyType { return &p }
func ltypePtr(l domlisting.ListingType) *domlisting.ListingType   { return &l }
