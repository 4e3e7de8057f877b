package handlers_test

import (
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateReview(t *testing.T) {
	env := newTestEnv(t)
	token, reviewerID := env.signUp(t, "learner@example.com", "Learner")

	status, body := env.request(t, http.MethodPost, "/api/v1/reviews", token, fiber.Map{
		"sessionId":  "session_1",
		"revieweeId": "u2",
		"rating":     5,
		"comment":    "Great session",
	})
	require.Equal(t, http.StatusCreated, status)
	review := body["review"].(map[string]any)
	assert.Equal(t, reviewerID, review["reviewerId"])

	status, body = env.request(t, http.MethodGet, "/api/v1/users/u2/reviews", "", nil)
	require.Equal(t, http.StatusOK, status)
	assert.Len(t, body["reviews"], 1)
}

func TestCreateReviewRatingBounds(t *testing.T) {
	env := newTestEnv(t)
	token, _ := env.signUp(t, "learner@example.com", "Learner")

	for _, rating := range []int{0, 6} {
		status, _ := env.request(t, http.MethodPost, "/api/v1/reviews", token, fiber.Map{
			"sessionId":  "session_1",
			"revieweeId": "u2",
			"rating":     rating,
		})
		assert.Equal(t, http.StatusBadRequest, status)
	}
}

func TestReportLifecycle(t *testing.T) {
	env := newTestEnv(t)
	token, _ := env.signUp(t, "reporter@example.com", "Reporter")

	status, body := env.request(t, http.MethodPost, "/api/v1/reports", token, fiber.Map{
		"targetId": "offer_1",
		"type":     "offer",
		"reason":   "spam",
	})
	require.Equal(t, http.StatusCreated, status)
	report := body["report"].(map[string]any)
	assert.Equal(t, "pending", report["status"])
	reportID := report["id"].(string)

	// Non-admins cannot reach the moderation surface.
	status, _ = env.request(t, http.MethodGet, "/api/v1/admin/reports", token, nil)
	assert.Equal(t, http.StatusForbidden, status)

	mod := adminToken(t)
	status, body = env.request(t, http.MethodGet, "/api/v1/admin/reports", mod, nil)
	require.Equal(t, http.StatusOK, status)
	assert.Len(t, body["reports"], 1)

	status, body = env.request(t, http.MethodPatch, "/api/v1/admin/reports/"+reportID, mod, fiber.Map{
		"status": "resolved",
	})
	require.Equal(t, http.StatusOK, status)
	resolved := body["report"].(map[string]any)
	assert.Equal(t, "resolved", resolved["status"])
}

func TestReportUnknownType(t *testing.T) {
	env := newTestEnv(t)
	token, _ := env.signUp(t, "reporter@example.com", "Reporter")

	status, body := env.request(t, http.MethodPost, "/api/v1/reports", token, fiber.Map{
		"targetId": "offer_1",
		"type":     "meme",
		"reason":   "spam",
	})
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "Unknown report type", body["error"])
}

func TestResolveReportValidation(t *testing.T) {
	env := newTestEnv(t)

	status, _ := env.request(t, http.MethodPatch, "/api/v1/admin/reports/report_1", adminToken(t), fiber.Map{
		"status": "pending",
	})
	assert.Equal(t, http.StatusBadRequest, status)
}
