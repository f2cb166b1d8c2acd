package search

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"github.com/moradia-ai/moradia/internal/domain"
	domlisting "github.com/moradia-ai/moradia/internal/domain/listing"
)

// Models tend to wrap JSON in markdown fences despite instructions not to.
var fenceJSONRegex = regexp.MustCompile("(?is)```json")

// ParseFilter turns raw model output into a Filter.
// Empty raw text fails with ErrEmptyModelResponse before any fence handling.
// After fence stripping, text that is not valid JSON, carries mistyped
// fields, or carries unknown enum values fails with ErrMalformedFilter.
// Unknown JSON fields (minPrice among them) are ignored.
func ParseFilter(raw string) (domlisting.Filter, error) {
	if strings.TrimSpace(raw) == "" {
		return domlisting.Filter{}, domain.ErrEmptyModelResponse
	}

	clean := stripCodeFences(raw)

	var f domlisting.Filter
	if err := json.Unmarshal([]byte(clean), &f); err != nil {
		return domlisting.Filter{}, fmt.Errorf("%w: %v", domain.ErrMalformedFilter, err)
	}

	if f.PropertyType != nil && !f.PropertyType.Valid() {
		return domlisting.Filter{}, fmt.Errorf("%w: unknown propertyType %q", domain.ErrMalformedFilter, *f.PropertyType)
	}
	if f.ListingType != nil && !f.ListingType.Valid() {
		return domlisting.Filter{}, fmt.Errorf("%w: unknown listingType %q", domain.ErrMalformedFilter, *f.ListingType)
	}

	return f, nil
}

// stripCodeFences removes markdown code-fence markers (``` with an optional
// json tag, any case, any position) and trims whitespace.
func stripCodeFences(s string) string {
	s = fenceJSONRegex.ReplaceAllString(s, "")
	s = strings.ReplaceAll(s, "```", "")
	return strings.TrimSpace(s)
}
