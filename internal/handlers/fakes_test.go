package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"

	"github.com/daybook-app/daybook-backend/internal/handlers"
	"github.com/daybook-app/daybook-backend/internal/middleware"
	"github.com/daybook-app/daybook-backend/internal/models"
	"github.com/daybook-app/daybook-backend/internal/routes"
	"github.com/daybook-app/daybook-backend/internal/services"
	"github.com/daybook-app/daybook-backend/internal/store"
)

// fakeStore is an in-memory stand-in for the SQL store, mirroring its
// sentinel error contract.
type fakeStore struct {
	mu          sync.Mutex
	users       map[int64]models.User
	journals    map[int64]models.Journal
	nextUser    int64
	nextJournal int64
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		users:    make(map[int64]models.User),
		journals: make(map[int64]models.Journal),
	}
}

func (f *fakeStore) CreateUser(_ context.Context, user models.User) (models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, existing := range f.users {
		if existing.Email == user.Email || existing.Username == user.Username {
			return models.User{}, store.ErrDuplicate
		}
	}
	f.nextUser++
	user.ID = f.nextUser
	user.CreatedAt = time.Now()
	f.users[user.ID] = user
	return user, nil
}

func (f *fakeStore) GetUserByEmail(_ context.Context, email string) (models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, user := range f.users {
		if user.Email == email {
			return user, nil
		}
	}
	return models.User{}, store.ErrNotFound
}

func (f *fakeStore) GetUserByUsername(_ context.Context, username string) (models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, user := range f.users {
		if user.Username == username {
			return user, nil
		}
	}
	return models.User{}, store.ErrNotFound
}

func (f *fakeStore) UpdateUser(_ context.Context, user models.User) (models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.users[user.ID]; !ok {
		return models.User{}, store.ErrNotFound
	}
	for id, existing := range f.users {
		if id == user.ID {
			continue
		}
		if existing.Email == user.Email || existing.Username == user.Username {
			return models.User{}, store.ErrDuplicate
		}
	}
	f.users[user.ID] = user
	return user, nil
}

func (f *fakeStore) CreateJournal(_ context.Context, journal models.Journal) (models.Journal, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.nextJournal++
	journal.ID = f.nextJournal
	f.journals[journal.ID] = journal
	return journal, nil
}

func (f *fakeStore) ownedByID(ownerID int64) []models.Journal {
	var out []models.Journal
	for _, j := range f.journals {
		if j.UserID == ownerID {
			out = append(out, j)
		}
	}
	sort.Slice(out, func(i, k int) bool { return out[i].ID < out[k].ID })
	return out
}

func (f *fakeStore) ListJournals(_ context.Context, ownerID int64, skip, limit int) ([]models.Journal, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	owned := f.ownedByID(ownerID)
	if skip >= len(owned) {
		return []models.Journal{}, nil
	}
	owned = owned[skip:]
	if limit > 0 && limit < len(owned) {
		owned = owned[:limit]
	}
	return owned, nil
}

func (f *fakeStore) ListJournalsSince(_ context.Context, ownerID int64, from models.Date) ([]models.Journal, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := []models.Journal{}
	for _, j := range f.ownedByID(ownerID) {
		if !j.CreatedDate.Before(from.Time) {
			out = append(out, j)
		}
	}
	return out, nil
}

func (f *fakeStore) ListJournalsForMonth(_ context.Context, ownerID int64, year int, month time.Month) ([]models.Journal, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := []models.Journal{}
	for _, j := range f.ownedByID(ownerID) {
		if j.CreatedDate.Year() == year && j.CreatedDate.Month() == month {
			out = append(out, j)
		}
	}
	return out, nil
}

func (f *fakeStore) UpdateJournal(_ context.Context, journal models.Journal) (models.Journal, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	existing, ok := f.journals[journal.ID]
	if !ok || existing.UserID != journal.UserID {
		return models.Journal{}, store.ErrNotFound
	}
	f.journals[journal.ID] = journal
	return journal, nil
}

func (f *fakeStore) DeleteJournal(_ context.Context, id, ownerID int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	existing, ok := f.journals[id]
	if !ok || existing.UserID != ownerID {
		return store.ErrNotFound
	}
	delete(f.journals, id)
	return nil
}

// newTestAPI wires the handlers, auth middleware and routes the way main does,
// backed by the in-memory store.
func newTestAPI(t *testing.T) (*chi.Mux, *fakeStore) {
	t.Helper()
	fs := newFakeStore()
	tokens := services.NewTokenService("test-secret", time.Hour)
	h := handlers.New(fs, fs, tokens)
	r := chi.NewRouter()
	routes.Setup(r, h, middleware.RequireAuth(tokens))
	return r, fs
}

func doJSON(t *testing.T, router http.Handler, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, into interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), into))
}

// createUserAndToken registers a user through the API and logs in.
func createUserAndToken(t *testing.T, router http.Handler, username string) string {
	t.Helper()
	rec := doJSON(t, router, http.MethodPost, "/users/", "", map[string]string{
		"email":    username + "@example.com",
		"username": username,
		"password": "pw-" + username,
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	rec = doJSON(t, router, http.MethodPost, "/token", "", map[string]string{
		"username": username,
		"password": "pw-" + username,
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp struct {
		AccessToken string `json:"access_token"`
		TokenType   string `json:"token_type"`
	}
	decodeBody(t, rec, &resp)
	require.Equal(t, "bearer", resp.TokenType)
	require.NotEmpty(t, resp.AccessToken)
	return resp.AccessToken
}
