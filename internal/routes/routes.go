package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/daybook-app/daybook-backend/internal/handlers"
)

// Setup registers the API routes. The auth middleware guards every
// journal route; user creation and token issuance stay public.
func Setup(r chi.Router, h *handlers.Handler, auth func(http.Handler) http.Handler) {
	// User management
	r.Post("/users/", h.CreateUser)
	r.Put("/users/{email}", h.UpdateUser)

	// Authentication
	r.Post("/token", h.IssueToken)

	// Journal CRUD, bearer-token authenticated
	r.Route("/journals", func(r chi.Router) {
		r.Use(auth)
		r.Get("/", h.ListJournals)
		r.Post("/", h.CreateJournal)
		r.Get("/daily", h.DailyJournals)
		r.Get("/weekly", h.WeeklyJournals)
		r.Get("/monthly", h.MonthlyJournals)
		r.Put("/{journalID}", h.UpdateJournal)
		r.Delete("/{journalID}", h.DeleteJournal)
	})
}
