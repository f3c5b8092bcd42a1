package repository

import (
	"context"

	"github.com/bunny00908/anime/internal/domain/model"
)

// UserDirectory stores the last-seen display name per chat.
// The default implementation is an in-memory map; a Redis-backed one exists
// for multi-instance deployments.
type UserDirectory interface {
	// Remember upserts the record and reports whether the chat was unknown
	// before this call.
	Remember(ctx context.Context, rec *model.UserRecord) (first bool, err error)
	// NameFor returns the stored name or domain.ErrNotFound.
	NameFor(ctx context.Context, chatID int64) (string, error)
	Count(ctx context.Context) (int, error)
}
