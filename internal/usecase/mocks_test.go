// File: internal/usecase/mocks_test.go
package usecase

import (
	"context"
	"sync"

	"github.com/rs/zerolog"

	"github.com/bunny00908/anime/internal/domain"
	"github.com/bunny00908/anime/internal/domain/model"
)

func newTestLogger() *zerolog.Logger {
	l := zerolog.Nop()
	return &l
}

type searchCall struct {
	Query string
	Page  int
}

// mockSearch lets each test script the remote search behavior and records
// every issued call.
type mockSearch struct {
	mu    sync.Mutex
	calls []searchCall

	SearchFunc func(ctx context.Context, query string, page int) ([]model.Image, error)
}

func (m *mockSearch) Search(ctx context.Context, query string, page int) ([]model.Image, error) {
	m.mu.Lock()
	m.calls = append(m.calls, searchCall{Query: query, Page: page})
	m.mu.Unlock()
	if m.SearchFunc != nil {
		return m.SearchFunc(ctx, query, page)
	}
	return nil, nil
}

func (m *mockSearch) Calls() []searchCall {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]searchCall, len(m.calls))
	copy(out, m.calls)
	return out
}

// memDirectory is a small in-memory UserDirectory used by unit tests.
type memDirectory struct {
	mu         sync.RWMutex
	names      map[int64]string
	countCalls int

	rememberErr error // used by tests to simulate backend failures
}

func newMemDirectory() *memDirectory {
	return &memDirectory{names: make(map[int64]string)}
}

func (m *memDirectory) Remember(_ context.Context, rec *model.UserRecord) (bool, error) {
	if m.rememberErr != nil {
		return false, m.rememberErr
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	_, known := m.names[rec.ChatID]
	m.names[rec.ChatID] = rec.Name
	return !known, nil
}

func (m *memDirectory) NameFor(_ context.Context, chatID int64) (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	name, ok := m.names[chatID]
	if !ok {
		return "", domain.ErrNotFound
	}
	return name, nil
}

func (m *memDirectory) Count(_ context.Context) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.countCalls++
	return len(m.names), nil
}

func (m *memDirectory) CountCalls() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.countCalls
}
