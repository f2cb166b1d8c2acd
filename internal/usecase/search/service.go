package search

import (
	"context"
	"fmt"
	"strings"

	"github.com/moradia-ai/moradia/internal/domain"
	domlisting "github.com/moradia-ai/moradia/internal/domain/listing"
)

// Service translates free-form search text into a listing filter via the
// external text model. Failures are terminal for the request: nothing here
// retries, and the model's null/non-null choices are not second-guessed.
type Service struct {
	model TextModel
}

// New creates a search service.
func New(model TextModel) *Service {
	return &Service{model: model}
}

// ExtractFilter maps non-empty free text to a Filter.
func (s *Service) ExtractFilter(ctx context.Context, text string) (domlisting.Filter, error) {
	if strings.TrimSpace(text) == "" {
		return domlisting.Filter{}, domain.NewValidationError("text")
	}

	raw, err := s.model.Generate(ctx, extractionInstruction, text)
	if err != nil {
		return domlisting.Filter{}, fmt.Errorf("generate filter: %w", err)
	}

	return ParseFilter(raw)
}
