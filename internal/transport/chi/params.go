package chi

import (
	"fmt"
	"net/url"
	"strconv"

	domlisting "github.com/moradia-ai/moradia/internal/domain/listing"
)

// pageParams extracts the page/size query parameters. Absent values fall back
// to the use-case defaults (page 0, default size).
func pageParams(q url.Values) (page, size int, err error) {
	page, err = intParam(q, "page", 0)
	if err != nil {
		return 0, 0, err
	}
	size, err = intParam(q, "size", 0)
	if err != nil {
		return 0, 0, err
	}
	return page, size, nil
}

// filterFromQuery builds a listing filter from query parameters. A parameter
// that is absent contributes no criterion; a parameter that is present but
// unparseable is a client error.
func filterFromQuery(q url.Values) (domlisting.Filter, error) {
	var f domlisting.Filter
	var err error

	if f.MaxPrice, err = floatPtrParam(q, "maxPrice"); err != nil {
		return f, err
	}
	if v := q.Get("city"); v != "" {
		f.City = &v
	}
	if v := q.Get("state"); v != "" {
		f.State = &v
	}
	if v := q.Get("propertyType"); v != "" {
		pt := domlisting.PropertyType(v)
		if !pt.Valid() {
			return f, fmt.Errorf("invalid propertyType %q", v)
		}
		f.PropertyType = &pt
	}
	if v := q.Get("listingType"); v != "" {
		lt := domlisting.ListingType(v)
		if !lt.Valid() {
			return f, fmt.Errorf("invalid listingType %q", v)
		}
		f.ListingType = &lt
	}
	if f.MinBedrooms, err = intPtrParam(q, "minBedrooms"); err != nil {
		return f, err
	}
	if f.MinBathrooms, err = intPtrParam(q, "minBathrooms"); err != nil {
		return f, err
	}
	if f.MinParkingSpaces, err = intPtrParam(q, "minParkingSpaces"); err != nil {
		return f, err
	}
	if f.MinArea, err = floatPtrParam(q, "minArea"); err != nil {
		return f, err
	}
	if f.MaxArea, err = floatPtrParam(q, "maxArea"); err != nil {
		return f, err
	}
	if f.IsFurnished, err = boolPtrParam(q, "isFurnished"); err != nil {
		return f, err
	}
	if f.AcceptsPets, err = boolPtrParam(q, "acceptsPets"); err != nil {
		return f, err
	}

	return f, nil
}

func intParam(q url.Values, key string, fallback int) (int, error) {
	v := q.Get(key)
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q", key, v)
	}
	return n, nil
}

func intPtrParam(q url.Values, key string) (*int, error) {
	v := q.Get(key)
	if v == "" {
		return nil, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return nil, fmt.Errorf("invalid %s %q", key, v)
	}
	return &n, nil
}

func floatPtrParam(q url.Values, key string) (*float64, error) {
	v := q.Get(key)
	if v == "" {
		return nil, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid %s %q", key, v)
	}
	return &f, nil
}

func boolPtrParam(q url.Values, key string) (*bool, error) {
	v := q.Get(key)
	if v == "" {
		return nil, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return nil, fmt.Errorf("invalid %s %q", key, v)
	}
	return &b, nil
}
