package listing

// Filter is the sparse set of optional search criteria applied to listings.
// A nil field contributes no constraint. The JSON field names are the wire
// contract shared with the text-model extraction schema; there is no minPrice
// field even though the extraction instruction mentions one (see DESIGN.md).
type Filter struct {
	MaxPrice         *float64      `json:"maxPrice"`
	City             *string       `json:"city"`
	State            *string       `json:"state"`
	PropertyType     *PropertyType `json:"propertyType"`
	ListingType      *ListingType  `json:"listingType"`
	MinBedrooms      *int          `json:"minBedrooms"`
	MinBathrooms     *int          `json:"minBathrooms"`
	MinParkingSpaces *int          `json:"minParkingSpaces"`
	MinArea          *float64      `json:"minArea"`
	MaxArea          *float64      `json:"maxArea"`
	IsFurnished      *bool         `json:"isFurnished"`
	AcceptsPets      *bool         `json:"acceptsPets"`
}

// IsZero reports whether no criterion is set, i.e. the filter matches everything.
func (f Filter) IsZero() bool {
	return f.MaxPrice == nil && f.City == nil && f.State == nil &&
		f.PropertyType == nil && f.ListingType == nil &&
		f.MinBedrooms == nil && f.MinBathrooms == nil && f.MinParkingSpaces == nil &&
		f.MinArea == nil && f.MaxArea == nil &&
		f.IsFurnished == nil && f.AcceptsPets == nil
}
