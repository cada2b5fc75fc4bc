package integration_test

import (
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Mithil2603/machinery-backend/internal/models"
	"github.com/Mithil2603/machinery-backend/test/helpers"
)

// resetTokenFromEmail pulls the token out of the most recent reset email.
func resetTokenFromEmail(t *testing.T, ts *helpers.TestServer) string {
	t.Helper()
	body := ts.Email.LastBody()
	idx := strings.LastIndex(body, "/reset-password/")
	if idx < 0 {
		t.Fatalf("no reset link in email body: %q", body)
	}
	return strings.TrimSpace(body[idx+len("/reset-password/"):])
}

func TestPasswordResetFlow(t *testing.T) {
	ts := helpers.NewTestServer(t)

	helpers.SignupUser(t, ts, "forgetful@test.com", "old_password123", models.UserTypeUser)

	// Request the reset link.
	res, bodyStr := ts.SendRequest(t, http.MethodPost, "/forgot-password", "", map[string]interface{}{
		"email": "forgetful@test.com",
	})
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, bodyStr, "Password reset email sent")
	assert.Equal(t, "forgetful@test.com", ts.Email.LastTo())

	token := resetTokenFromEmail(t, ts)

	// The link target validates the token before showing a form.
	res, _ = ts.SendRequest(t, http.MethodGet, "/reset-password/"+token, "", nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)

	// Submit the new password.
	res, bodyStr = ts.SendRequest(t, http.MethodPost, "/reset-password/"+token, "", map[string]interface{}{
		"newPassword": "new_password456",
	})
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, bodyStr, "Password reset successfully")

	// A fresh session cookie is attached so the user stays signed in.
	// Exactly one authToken header, carrying the rotated token.
	var sessionCookies []*http.Cookie
	for _, c := range res.Cookies() {
		if c.Name == "authToken" {
			sessionCookies = append(sessionCookies, c)
		}
	}
	assert.Len(t, sessionCookies, 1)
	assert.NotEmpty(t, sessionCookies[0].Value)

	// Old password is dead, new one works.
	res, _ = ts.SendRequest(t, http.MethodPost, "/login", "", map[string]interface{}{
		"email":         "forgetful@test.com",
		"user_password": "old_password123",
	})
	assert.Equal(t, http.StatusUnauthorized, res.StatusCode)

	res, _ = ts.SendRequest(t, http.MethodPost, "/login", "", map[string]interface{}{
		"email":         "forgetful@test.com",
		"user_password": "new_password456",
	})
	assert.Equal(t, http.StatusOK, res.StatusCode)
}

func TestForgotPassword_UnknownEmail(t *testing.T) {
	ts := helpers.NewTestServer(t)

	res, _ := ts.SendRequest(t, http.MethodPost, "/forgot-password", "", map[string]interface{}{
		"email": "ghost@test.com",
	})
	assert.Equal(t, http.StatusNotFound, res.StatusCode)
	assert.Empty(t, ts.Email.Sent)
}

func TestResetPassword_InvalidToken(t *testing.T) {
	ts := helpers.NewTestServer(t)

	res, _ := ts.SendRequest(t, http.MethodGet, "/reset-password/bogus-token", "", nil)
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)

	res, _ = ts.SendRequest(t, http.MethodPost, "/reset-password/bogus-token", "", map[string]interface{}{
		"newPassword": "whatever_123",
	})
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
}

func TestResetPassword_TokenIsSingleUse(t *testing.T) {
	ts := helpers.NewTestServer(t)

	helpers.SignupUser(t, ts, "once@test.com", "old_password123", models.UserTypeUser)

	res, _ := ts.SendRequest(t, http.MethodPost, "/forgot-password", "", map[string]interface{}{
		"email": "once@test.com",
	})
	assert.Equal(t, http.StatusOK, res.StatusCode)
	token := resetTokenFromEmail(t, ts)

	res, _ = ts.SendRequest(t, http.MethodPost, "/reset-password/"+token, "", map[string]interface{}{
		"newPassword": "fresh_password1",
	})
	assert.Equal(t, http.StatusOK, res.StatusCode)

	// Replaying the consumed token fails.
	res, _ = ts.SendRequest(t, http.MethodPost, "/reset-password/"+token, "", map[string]interface{}{
		"newPassword": "fresh_password2",
	})
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
}

func TestForgotPassword_ReissueInvalidatesOldToken(t *testing.T) {
	ts := helpers.NewTestServer(t)

	helpers.SignupUser(t, ts, "twice@test.com", "old_password123", models.UserTypeUser)

	res, _ := ts.SendRequest(t, http.MethodPost, "/forgot-password", "", map[string]interface{}{
		"email": "twice@test.com",
	})
	assert.Equal(t, http.StatusOK, res.StatusCode)
	firstToken := resetTokenFromEmail(t, ts)

	res, _ = ts.SendRequest(t, http.MethodPost, "/forgot-password", "", map[string]interface{}{
		"email": "twice@test.com",
	})
	assert.Equal(t, http.StatusOK, res.StatusCode)
	secondToken := resetTokenFromEmail(t, ts)
	assert.NotEqual(t, firstToken, secondToken)

	// The first token no longer validates or consumes.
	res, _ = ts.SendRequest(t, http.MethodGet, "/reset-password/"+firstToken, "", nil)
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)

	res, _ = ts.SendRequest(t, http.MethodPost, "/reset-password/"+secondToken, "", map[string]interface{}{
		"newPassword": "final_password1",
	})
	assert.Equal(t, http.StatusOK, res.StatusCode)
}
