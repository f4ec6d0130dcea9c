// Package handlers implements the HTTP surface. Handlers hold their
// dependencies explicitly; nothing reaches for package-level state.
package handlers

import (
	"context"
	"time"

	"github.com/daybook-app/daybook-backend/internal/models"
)

// UserStore is the user persistence surface the handlers need.
type UserStore interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	GetUserByEmail(ctx context.Context, email string) (models.User, error)
	GetUserByUsername(ctx context.Context, username string) (models.User, error)
	UpdateUser(ctx context.Context, user models.User) (models.User, error)
}

// JournalStore is the journal persistence surface the handlers need.
type JournalStore interface {
	CreateJournal(ctx context.Context, journal models.Journal) (models.Journal, error)
	ListJournals(ctx context.Context, ownerID int64, skip, limit int) ([]models.Journal, error)
	ListJournalsSince(ctx context.Context, ownerID int64, from models.Date) ([]models.Journal, error)
	ListJournalsForMonth(ctx context.Context, ownerID int64, year int, month time.Month) ([]models.Journal, error)
	UpdateJournal(ctx context.Context, journal models.Journal) (models.Journal, error)
	DeleteJournal(ctx context.Context, id, ownerID int64) error
}

// TokenIssuer signs access tokens for authenticated users.
type TokenIssuer interface {
	Issue(userID int64) (string, error)
}

type Handler struct {
	users    UserStore
	journals JournalStore
	tokens   TokenIssuer
}

func New(users UserStore, journals JournalStore, tokens TokenIssuer) *Handler {
	return &Handler{users: users, journals: journals, tokens: tokens}
}
