package handlers_test

import (
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSignInEndpoint(t *testing.T) {
	env := newTestEnv(t)

	status, body := env.request(t, http.MethodPost, "/api/v1/auth/signin", "", fiber.Map{
		"email":    "test@student.com",
		"password": "12345",
	})
	require.Equal(t, http.StatusOK, status)
	assert.NotEmpty(t, body["token"])

	user, ok := body["user"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "u1", user["id"])
	assert.Equal(t, "student", user["role"])
}

func TestSignInEndpointRejectsBadCredentials(t *testing.T) {
	env := newTestEnv(t)

	status, body := env.request(t, http.MethodPost, "/api/v1/auth/signin", "", fiber.Map{
		"email":    "test@student.com",
		"password": "nope",
	})
	assert.Equal(t, http.StatusUnauthorized, status)
	assert.Equal(t, "Invalid credentials", body["error"])
}

func TestSignInEndpointValidation(t *testing.T) {
	env := newTestEnv(t)

	status, _ := env.request(t, http.MethodPost, "/api/v1/auth/signin", "", fiber.Map{
		"email": "not-an-email",
	})
	assert.Equal(t, http.StatusBadRequest, status)
}

func TestSignUpEndpoint(t *testing.T) {
	env := newTestEnv(t)

	_, firstID := env.signUp(t, "a@example.com", "Ada")
	_, secondID := env.signUp(t, "b@example.com", "Grace")
	assert.NotEqual(t, firstID, secondID)
}

func TestSignOutEndpoint(t *testing.T) {
	env := newTestEnv(t)
	token := env.signIn(t)

	status, _ := env.request(t, http.MethodPost, "/api/v1/auth/signout", token, nil)
	require.Equal(t, http.StatusOK, status)

	_, ok := env.sessions.User()
	assert.False(t, ok)
}

func TestProtectedRouteWithoutToken(t *testing.T) {
	env := newTestEnv(t)

	status, _ := env.request(t, http.MethodGet, "/api/v1/profile", "", nil)
	assert.Equal(t, http.StatusBadRequest, status)
}

func TestProfileEndpoints(t *testing.T) {
	env := newTestEnv(t)
	token := env.signIn(t)

	status, body := env.request(t, http.MethodGet, "/api/v1/profile", token, nil)
	require.Equal(t, http.StatusOK, status)
	user := body["user"].(map[string]any)
	assert.Equal(t, "u1", user["id"])

	status, body = env.request(t, http.MethodPatch, "/api/v1/profile", token, fiber.Map{
		"bio":    "Now teaching Go.",
		"skills": []string{"Go"},
	})
	require.Equal(t, http.StatusOK, status)
	user = body["user"].(map[string]any)
	assert.Equal(t, "Now teaching Go.", user["bio"])
	assert.Equal(t, "Your Name", user["name"])
}
