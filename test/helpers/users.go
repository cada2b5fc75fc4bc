package helpers

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Mithil2603/machinery-backend/internal/models"
)

// SignupUser registers a user through the API and returns its id.
func SignupUser(t *testing.T, ts *TestServer, email, password string, userType models.UserType) uint {
	t.Helper()

	body := map[string]interface{}{
		"first_name":    "Test",
		"last_name":     "User",
		"email":         email,
		"phone_number":  "1234567890",
		"user_password": password,
		"user_type":     string(userType),
	}
	res, bodyStr := ts.SendRequest(t, http.MethodPost, "/signup", "", body)
	assert.Equal(t, http.StatusCreated, res.StatusCode, "signup should succeed, got: "+bodyStr)

	var created struct {
		UserID uint `json:"user_id"`
	}
	assert.NoError(t, json.Unmarshal([]byte(bodyStr), &created))
	assert.NotZero(t, created.UserID)
	return created.UserID
}

// CreateAndLoginUser registers and logs a user in, returning the session
// token and the user id.
func CreateAndLoginUser(t *testing.T, ts *TestServer, email, password string, userType models.UserType) (string, uint) {
	t.Helper()

	userID := SignupUser(t, ts, email, password, userType)

	loginBody := map[string]interface{}{
		"email":         email,
		"user_password": password,
	}
	res, bodyStr := ts.SendRequest(t, http.MethodPost, "/login", "", loginBody)
	assert.Equal(t, http.StatusOK, res.StatusCode, "login should succeed, got: "+bodyStr)

	var loginResponse struct {
		Token string `json:"token"`
	}
	assert.NoError(t, json.Unmarshal([]byte(bodyStr), &loginResponse))
	assert.NotEmpty(t, loginResponse.Token)

	return loginResponse.Token, userID
}
