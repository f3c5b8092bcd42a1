package usecase

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/bunny00908/anime/internal/domain/model"
	"github.com/bunny00908/anime/internal/domain/ports/repository"
	"github.com/bunny00908/anime/internal/infra/logging"
	"github.com/bunny00908/anime/internal/infra/metrics"
)

// Compile-time check
var _ UserUseCase = (*userUC)(nil)

// UserUseCase tracks display names per chat for caption personalization.
type UserUseCase interface {
	// Remember refreshes the directory entry and reports first contact.
	Remember(ctx context.Context, chatID int64, name string) (first bool, err error)
	// NameFor never fails; unknown chats resolve to a generic name.
	NameFor(ctx context.Context, chatID int64) string
	Count(ctx context.Context) (int, error)
}

const unknownName = "User"

type userUC struct {
	directory repository.UserDirectory
	log       *zerolog.Logger
}

func NewUserUseCase(directory repository.UserDirectory, logger *zerolog.Logger) *userUC {
	return &userUC{directory: directory, log: logger}
}

func (u *userUC) Remember(ctx context.Context, chatID int64, name string) (bool, error) {
	defer logging.TraceDuration(logging.With(ctx, u.log), "UserUC.Remember")()
	if name == "" {
		name = "there"
	}
	rec, err := model.NewUserRecord(chatID, name)
	if err != nil {
		return false, err
	}
	first, err := u.directory.Remember(ctx, rec)
	if err != nil {
		return false, err
	}
	if first {
		// The directory only grows, so the gauge moves on first contact only.
		if n, cerr := u.directory.Count(ctx); cerr == nil {
			metrics.SetKnownChats(n)
		}
	}
	return first, nil
}

func (u *userUC) NameFor(ctx context.Context, chatID int64) string {
	name, err := u.directory.NameFor(ctx, chatID)
	if err != nil {
		return unknownName
	}
	return name
}

func (u *userUC) Count(ctx context.Context) (int, error) {
	return u.directory.Count(ctx)
}
