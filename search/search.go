package search

import (
	"context"

	"github.com/ankoehn/ai-content-writer/models"
)

// Engine is the search collaborator capability: given a text query it
// returns an ordered sequence of findings. Implementations wrap one
// external provider each.
type Engine interface {
	Search(ctx context.Context, query string) ([]models.SearchResult, error)
}
