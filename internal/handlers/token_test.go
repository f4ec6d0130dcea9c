package handlers_test

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/daybook-app/daybook-backend/internal/services"
)

func TestIssueToken(t *testing.T) {
	router, _ := newTestAPI(t)
	createUserAndToken(t, router, "alice")

	rec := doJSON(t, router, http.MethodPost, "/token", "", map[string]string{
		"username": "alice",
		"password": "pw-alice",
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp struct {
		AccessToken string `json:"access_token"`
		TokenType   string `json:"token_type"`
	}
	decodeBody(t, rec, &resp)
	assert.Equal(t, "bearer", resp.TokenType)

	// Token resolves to the registered user's identity.
	userID, err := services.NewTokenService("test-secret", time.Hour).Validate(resp.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, int64(1), userID)
}

func TestIssueToken_GenericFailure(t *testing.T) {
	router, _ := newTestAPI(t)
	createUserAndToken(t, router, "alice")

	wrongPassword := doJSON(t, router, http.MethodPost, "/token", "", map[string]string{
		"username": "alice",
		"password": "wrong",
	})
	unknownUser := doJSON(t, router, http.MethodPost, "/token", "", map[string]string{
		"username": "nobody",
		"password": "pw-alice",
	})

	assert.Equal(t, http.StatusUnauthorized, wrongPassword.Code)
	assert.Equal(t, http.StatusUnauthorized, unknownUser.Code)
	assert.Equal(t, wrongPassword.Body.String(), unknownUser.Body.String(),
		"wrong password and unknown username must be indistinguishable")
}

func TestIssueToken_MissingFields(t *testing.T) {
	router, _ := newTestAPI(t)

	rec := doJSON(t, router, http.MethodPost, "/token", "", map[string]string{"username": "alice"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doJSON(t, router, http.MethodPost, "/token", "", map[string]string{"password": "pw"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
