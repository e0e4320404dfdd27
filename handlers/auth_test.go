package handlers_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSignUpAndSignIn(t *testing.T) {
	r := setupRouter(t)

	creds := map[string]any{"email": "new@example.com", "password": "password123"}

	w := doJSON(t, r, http.MethodPost, "/api/auth/signup", "", creds)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	resp := decodeBody(t, w)
	assert.NotEmpty(t, resp["access_token"])
	assert.NotEmpty(t, resp["refresh_token"])

	w = doJSON(t, r, http.MethodPost, "/api/auth/signin", "", creds)
	require.Equal(t, http.StatusOK, w.Code)
	resp = decodeBody(t, w)
	token, _ := resp["access_token"].(string)
	require.NotEmpty(t, token)

	w = doJSON(t, r, http.MethodGet, "/api/auth/me", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	user, ok := decodeBody(t, w)["user"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "new@example.com", user["email"])
}

func TestSignUp_Rejections(t *testing.T) {
	r := setupRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/auth/signup", "", map[string]any{
		"email": "not-an-email", "password": "password123",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, r, http.MethodPost, "/api/auth/signup", "", map[string]any{
		"email": "short@example.com", "password": "short",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	creds := map[string]any{"email": "dup@example.com", "password": "password123"}
	w = doJSON(t, r, http.MethodPost, "/api/auth/signup", "", creds)
	require.Equal(t, http.StatusCreated, w.Code)
	w = doJSON(t, r, http.MethodPost, "/api/auth/signup", "", creds)
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestSignIn_InvalidCredentials(t *testing.T) {
	r := setupRouter(t)
	createTestUser(t, "a@example.com")

	w := doJSON(t, r, http.MethodPost, "/api/auth/signin", "", map[string]any{
		"email": "a@example.com", "password": "wrong-password",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "AUTH_ERROR", decodeBody(t, w)["code"])

	w = doJSON(t, r, http.MethodPost, "/api/auth/signin", "", map[string]any{
		"email": "missing@example.com", "password": "password123",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestCurrentUser_RequiresAuth(t *testing.T) {
	r := setupRouter(t)

	w := doJSON(t, r, http.MethodGet, "/api/auth/me", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "AUTH_REQUIRED", decodeBody(t, w)["code"])
}

func TestRefreshToken(t *testing.T) {
	r := setupRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/auth/signup", "", map[string]any{
		"email": "r@example.com", "password": "password123",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	resp := decodeBody(t, w)
	refresh, _ := resp["refresh_token"].(string)
	access, _ := resp["access_token"].(string)

	w = doJSON(t, r, http.MethodPost, "/api/auth/refresh", "", map[string]any{"refresh_token": refresh})
	require.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, decodeBody(t, w)["access_token"])

	// an access token must not work as a refresh token
	w = doJSON(t, r, http.MethodPost, "/api/auth/refresh", "", map[string]any{"refresh_token": access})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestSignOut(t *testing.T) {
	r := setupRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/auth/signout", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}
