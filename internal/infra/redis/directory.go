package redis

import (
	"context"
	"errors"
	"strconv"

	"github.com/bunny00908/anime/internal/domain"
	"github.com/bunny00908/anime/internal/domain/model"
	"github.com/bunny00908/anime/internal/domain/ports/repository"
)

var _ repository.UserDirectory = (*Directory)(nil)

const directoryKey = "chat_names"

// Directory keeps chat display names in a single Redis hash so several bot
// instances can share one directory.
type Directory struct {
	client RedisClient
}

func NewDirectory(client RedisClient) *Directory {
	return &Directory{client: client}
}

func (d *Directory) Remember(ctx context.Context, rec *model.UserRecord) (bool, error) {
	if rec == nil {
		return false, domain.ErrInvalidArgument
	}
	// HSET reports how many fields were newly created; 1 means first contact.
	added, err := d.client.HSet(ctx, directoryKey, field(rec.ChatID), rec.Name)
	if err != nil {
		return false, err
	}
	return added == 1, nil
}

func (d *Directory) NameFor(ctx context.Context, chatID int64) (string, error) {
	name, err := d.client.HGet(ctx, directoryKey, field(chatID))
	if err != nil {
		if errors.Is(err, ErrNil) {
			return "", domain.ErrNotFound
		}
		return "", err
	}
	return name, nil
}

func (d *Directory) Count(ctx context.Context) (int, error) {
	n, err := d.client.HLen(ctx, directoryKey)
	if err != nil {
		return 0, err
	}
	return int(n), nil
}

func field(chatID int64) string { return strconv.FormatInt(chatID, 10) }
