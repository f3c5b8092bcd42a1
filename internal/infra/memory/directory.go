package memory

import (
	"context"
	"sync"

	"github.com/bunny00908/anime/internal/domain"
	"github.com/bunny00908/anime/internal/domain/model"
	"github.com/bunny00908/anime/internal/domain/ports/repository"
)

var _ repository.UserDirectory = (*Directory)(nil)

// Directory is the default process-lifetime user directory. Unbounded on
// purpose: this bot serves a single low-traffic deployment.
type Directory struct {
	mu    sync.RWMutex
	names map[int64]string
}

func NewDirectory() *Directory {
	return &Directory{names: make(map[int64]string)}
}

func (d *Directory) Remember(_ context.Context, rec *model.UserRecord) (bool, error) {
	if rec == nil {
		return false, domain.ErrInvalidArgument
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	_, known := d.names[rec.ChatID]
	d.names[rec.ChatID] = rec.Name
	return !known, nil
}

func (d *Directory) NameFor(_ context.Context, chatID int64) (string, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	name, ok := d.names[chatID]
	if !ok {
		return "", domain.ErrNotFound
	}
	return name, nil
}

func (d *Directory) Count(_ context.Context) (int, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return len(d.names), nil
}
