package search

import "context"

// TextModel is the external text-generation collaborator: one synchronous
// round trip, no streaming.
type TextModel interface {
	Generate(ctx context.Context, instruction, text string) (string, error)
}
