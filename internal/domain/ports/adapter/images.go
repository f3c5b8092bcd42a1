package adapter

import (
	"context"

	"github.com/bunny00908/anime/internal/domain/model"
)

// ImageSearchAdapter is the port for the remote stock-photo search service.
// Implementations must honor ctx and bound each call with a timeout.
type ImageSearchAdapter interface {
	Search(ctx context.Context, query string, page int) ([]model.Image, error)
}
