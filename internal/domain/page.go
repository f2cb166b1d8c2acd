package domain

// Page is one slice of an ordered result set plus pagination metadata.
// Page indices are zero-based.
type Page[T any] struct {
	Items         []T
	CurrentPage   int
	PageSize      int
	TotalElements int64
	TotalPages    int
	HasNext       bool
}

// NewPage assembles a Page, deriving total page count and the has-next flag.
func NewPage[T any](items []T, page, size int, total int64) Page[T] {
	totalPages := 0
	if size > 0 {
		totalPages = int((total + int64(size) - 1) / int64(size))
	}
	return Page[T]{
		Items:         items,
		CurrentPage:   page,
		PageSize:      size,
		TotalElements: total,
		TotalPages:    totalPages,
		HasNext:       page+1 < totalPages,
	}
}
