package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/daybook-app/daybook-backend/internal/models"
	"github.com/daybook-app/daybook-backend/internal/store"
	"github.com/daybook-app/daybook-backend/pkg/utils"
)

type createUserRequest struct {
	Email    string `json:"email"`
	Username string `json:"username"`
	Password string `json:"password"`
}

// updateUserRequest uses pointers so an absent field is distinguishable
// from an empty one; any subset of the three may be changed.
type updateUserRequest struct {
	Email    *string `json:"email"`
	Username *string `json:"username"`
	Password *string `json:"password"`
}

type userResponse struct {
	ID       int64  `json:"id"`
	Email    string `json:"email"`
	Username string `json:"username"`
}

// CreateUser handles POST /users/.
func (h *Handler) CreateUser(w http.ResponseWriter, r *http.Request) {
	var req createUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if req.Email == "" || req.Username == "" || req.Password == "" {
		writeError(w, http.StatusBadRequest, "Email, username, and password are required")
		return
	}
	if err := utils.ValidateEmail(req.Email); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := utils.ValidateUsername(req.Username); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	hashedPassword, err := utils.HashPassword(req.Password)
	if err != nil {
		serverError(w, err)
		return
	}

	user, err := h.users.CreateUser(r.Context(), models.User{
		Email:    req.Email,
		Username: req.Username,
		Password: hashedPassword,
	})
	if err != nil {
		if errors.Is(err, store.ErrDuplicate) {
			writeError(w, http.StatusConflict, "User with this email or username already exists")
			return
		}
		serverError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, userResponse{
		ID:       user.ID,
		Email:    user.Email,
		Username: user.Username,
	})
}

// UpdateUser handles PUT /users/{email}. The user is looked up by the
// email in the path; the body may change any subset of email, username
// and password.
func (h *Handler) UpdateUser(w http.ResponseWriter, r *http.Request) {
	email := chi.URLParam(r, "email")

	user, err := h.users.GetUserByEmail(r.Context(), email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "User not found")
			return
		}
		serverError(w, err)
		return
	}

	var req updateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if req.Email != nil {
		if err := utils.ValidateEmail(*req.Email); err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		user.Email = *req.Email
	}
	if req.Username != nil {
		if err := utils.ValidateUsername(*req.Username); err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		user.Username = *req.Username
	}
	if req.Password != nil {
		if *req.Password == "" {
			writeError(w, http.StatusBadRequest, "Password cannot be empty")
			return
		}
		hashedPassword, err := utils.HashPassword(*req.Password)
		if err != nil {
			serverError(w, err)
			return
		}
		user.Password = hashedPassword
	}

	updated, err := h.users.UpdateUser(r.Context(), user)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrDuplicate):
			writeError(w, http.StatusConflict, "User with this email or username already exists")
		case errors.Is(err, store.ErrNotFound):
			writeError(w, http.StatusNotFound, "User not found")
		default:
			serverError(w, err)
		}
		return
	}

	writeJSON(w, http.StatusOK, userResponse{
		ID:       updated.ID,
		Email:    updated.Email,
		Username: updated.Username,
	})
}
