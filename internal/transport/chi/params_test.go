package chi

import (
	"net/url"
	"testing"

	domlisting "github.com/moradia-ai/moradia/internal/domain/listing"
)

func TestFilterFromQuery_Empty(t *testing.T) {
	f, err := filterFromQuery(url.Values{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !f.IsZero() {
		t.Errorf("expected zero filter, got %+v", f)
	}
}

func TestFilterFromQuery_AllFields(t *testing.T) {
	q := url.Values{}
	q.Set("maxPrice", "450000")
	q.Set("city", "Campinas")
	q.Set("state", "SP")
	q.Set("propertyType", "APARTMENT")
	q.Set("listingType", "RENT")
	q.Set("minBedrooms", "2")
	q.Set("minBathrooms", "1")
	q.Set("minParkingSpaces", "1")
	q.Set("minArea", "50")
	q.Set("maxArea", "120.5")
	q.Set("isFurnished", "true")
	q.Set("acceptsPets", "false")

	f, err := filterFromQuery(q)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if f.MaxPrice == nil || *f.MaxPrice != 450000 {
		t.Errorf("maxPrice = %v", f.MaxPrice)
	}
	if f.City == nil || *f.City != "Campinas" {
		t.Errorf("city = %v", f.City)
	}
	if f.State == nil || *f.State != "SP" {
		t.Errorf("state = %v", f.State)
	}
	if f.PropertyType == nil || *f.PropertyType != domlisting.TypeApartment {
		t.Errorf("propertyType = %v", f.PropertyType)
	}
	if f.ListingType == nil || *f.ListingType != domlisting.ListingRent {
		t.Errorf("listingType = %v", f.ListingType)
	}
	if f.MinBedrooms == nil || *f.MinBedrooms != 2 {
		t.Errorf("minBedrooms = %v", f.MinBedrooms)
	}
	if f.MaxArea == nil || *f.MaxArea != 120.5 {
		t.Errorf("maxArea = %v", f.MaxArea)
	}
	if f.IsFurnished == nil || !*f.IsFurnished {
		t.Errorf("isFurnished = %v", f.IsFurnished)
	}
	if f.AcceptsPets == nil || *f.AcceptsPets {
		t.Errorf("acceptsPets = %v", f.AcceptsPets)
	}
}

func TestFilterFromQuery_Invalid(t *testing.T) {
	cases := []struct {
		name  string
		key   string
		value string
	}{
		{"bad number", "maxPrice", "cheap"},
		{"bad int", "minBedrooms", "two"},
		{"bad bool", "isFurnished", "yes please"},
		{"unknown property type", "propertyType", "CASTLE"},
		{"unknown listing type", "listingType", "LEASE"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			q := url.Values{}
			q.Set(tc.key, tc.value)
			if _, err := filterFromQuery(q); err == nil {
				t.Errorf("expected error for %s=%s", tc.key, tc.value)
			}
		})
	}
}

func TestPageParams(t *testing.T) {
	cases := []struct {
		name     string
		query    string
		page     int
		size     int
		wantErr  bool
	}{
		{"defaults", "", 0, 0, false},
		{"explicit", "page=2&size=30", 2, 30, false},
		{"page only", "page=5", 5, 0, false},
		{"bad page", "page=first", 0, 0, true},
		{"bad size", "size=lots", 0, 0, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			q, _ := url.ParseQuery(tc.query)
			page, size, err := pageParams(q)
			if tc.wantErr {
				if err == nil {
					t.Fatal("expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if page != tc.page || size != tc.size {
				t.Errorf("got page=%d size=%d, want page=%d size=%d", page, size, tc.page, tc.size)
			}
		})
	}
}
