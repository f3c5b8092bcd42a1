package model

import "github.com/bunny00908/anime/internal/domain"

// UserRecord is the last-seen display name for a chat. Last write wins;
// records live for the process lifetime unless a shared directory backend
// is configured.
type UserRecord struct {
	ChatID int64
	Name   string
}

func NewUserRecord(chatID int64, name string) (*UserRecord, error) {
	if chatID == 0 {
		return nil, domain.ErrInvalidArgument
	}
	if name == "" {
		return nil, domain.ErrInvalidArgument
	}
	return &UserRecord{ChatID: chatID, Name: name}, nil
}
