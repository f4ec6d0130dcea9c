package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/daybook-app/daybook-backend/internal/middleware"
	"github.com/daybook-app/daybook-backend/internal/models"
	"github.com/daybook-app/daybook-backend/internal/store"
)

const (
	defaultListLimit = 20
	maxListLimit     = 100
)

type journalRequest struct {
	Title        string      `json:"title"`
	Content      string      `json:"content"`
	Category     string      `json:"category"`
	CreatedDate  models.Date `json:"created_date"`
	DueDate      models.Date `json:"due_date"`
	DateOfUpdate models.Date `json:"date_of_update"`
	Archive      bool        `json:"archive"`
}

type deleteJournalResponse struct {
	Message string `json:"message"`
}

// validate fills defaults and checks the field constraints shared by
// create and update.
func (req *journalRequest) validate() (string, bool) {
	if req.Title == "" || req.Content == "" || req.Category == "" {
		return "Title, content, and category are required", false
	}
	if req.CreatedDate.IsZero() {
		req.CreatedDate = models.Today()
	}
	if req.DateOfUpdate.IsZero() {
		req.DateOfUpdate = models.Today()
	}
	if !req.DueDate.IsZero() && req.DueDate.Before(req.CreatedDate.Time) {
		return "Due date cannot be before created date", false
	}
	return "", true
}

// ListJournals handles GET /journals/. Entries are scoped to the caller
// and ordered by ID; skip/limit query parameters paginate.
func (h *Handler) ListJournals(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "Authentication required")
		return
	}

	limit := defaultListLimit
	if v := r.URL.Query().Get("limit"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			limit = parsed
		}
	}
	if limit > maxListLimit {
		limit = maxListLimit
	}

	skip := 0
	if v := r.URL.Query().Get("skip"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			skip = parsed
		}
	}

	journals, err := h.journals.ListJournals(r.Context(), userID, skip, limit)
	if err != nil {
		serverError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, journals)
}

// CreateJournal handles POST /journals/. The owner comes from the token,
// never from the body.
func (h *Handler) CreateJournal(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "Authentication required")
		return
	}

	var req journalRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if msg, ok := req.validate(); !ok {
		writeError(w, http.StatusBadRequest, msg)
		return
	}

	journal, err := h.journals.CreateJournal(r.Context(), models.Journal{
		UserID:       userID,
		Title:        req.Title,
		Content:      req.Content,
		Category:     req.Category,
		CreatedDate:  req.CreatedDate,
		DueDate:      req.DueDate,
		DateOfUpdate: req.DateOfUpdate,
		Archive:      req.Archive,
	})
	if err != nil {
		serverError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, journal)
}

// UpdateJournal handles PUT /journals/{journalID} with full replacement
// semantics. Entries owned by other users look like missing entries.
func (h *Handler) UpdateJournal(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "Authentication required")
		return
	}

	journalID, err := strconv.ParseInt(chi.URLParam(r, "journalID"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid journal ID")
		return
	}

	var req journalRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if msg, ok := req.validate(); !ok {
		writeError(w, http.StatusBadRequest, msg)
		return
	}

	journal, err := h.journals.UpdateJournal(r.Context(), models.Journal{
		ID:           journalID,
		UserID:       userID,
		Title:        req.Title,
		Content:      req.Content,
		Category:     req.Category,
		CreatedDate:  req.CreatedDate,
		DueDate:      req.DueDate,
		DateOfUpdate: req.DateOfUpdate,
		Archive:      req.Archive,
	})
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Journal not found")
			return
		}
		serverError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, journal)
}

// DeleteJournal handles DELETE /journals/{journalID}.
func (h *Handler) DeleteJournal(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "Authentication required")
		return
	}

	journalID, err := strconv.ParseInt(chi.URLParam(r, "journalID"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid journal ID")
		return
	}

	if err := h.journals.DeleteJournal(r.Context(), journalID, userID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Journal not found")
			return
		}
		serverError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, deleteJournalResponse{Message: "Journal entry deleted successfully"})
}

// DailyJournals handles GET /journals/daily: the caller's entries created today.
func (h *Handler) DailyJournals(w http.ResponseWriter, r *http.Request) {
	h.listSince(w, r, models.Today())
}

// WeeklyJournals handles GET /journals/weekly: the caller's entries created
// since the start of the current week (Monday).
func (h *Handler) WeeklyJournals(w http.ResponseWriter, r *http.Request) {
	today := models.Today()
	offset := (int(today.Weekday()) + 6) % 7 // days since Monday
	weekStart := models.NewDate(today.AddDate(0, 0, -offset))
	h.listSince(w, r, weekStart)
}

// MonthlyJournals handles GET /journals/monthly: the caller's entries
// created in the current calendar month.
func (h *Handler) MonthlyJournals(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "Authentication required")
		return
	}

	now := time.Now().UTC()
	journals, err := h.journals.ListJournalsForMonth(r.Context(), userID, now.Year(), now.Month())
	if err != nil {
		serverError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, journals)
}

func (h *Handler) listSince(w http.ResponseWriter, r *http.Request, from models.Date) {
	userID, ok := middleware.UserID(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "Authentication required")
		return
	}

	journals, err := h.journals.ListJournalsSince(r.Context(), userID, from)
	if err != nil {
		serverError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, journals)
}
