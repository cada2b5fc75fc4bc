package integration_test

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/Mithil2603/machinery-backend/internal/auth"
	"github.com/Mithil2603/machinery-backend/internal/models"
	"github.com/Mithil2603/machinery-backend/test/helpers"
)

func TestSession_ExpiredTokenRejected(t *testing.T) {
	ts := helpers.NewTestServer(t)

	_, userID := helpers.CreateAndLoginUser(t, ts, "expired@test.com", "pass123456", models.UserTypeUser)

	// A token signed with the right secret but already past its expiry.
	expiredTokens := auth.NewTokenManager(ts.Cfg.JWT.Secret, -time.Minute)
	expired, err := expiredTokens.Issue(userID, "user")
	assert.NoError(t, err)

	res, _ := ts.SendRequest(t, http.MethodGet, "/orders", expired, nil)
	assert.Equal(t, http.StatusUnauthorized, res.StatusCode)
}

func TestSession_TamperedTokenRejected(t *testing.T) {
	ts := helpers.NewTestServer(t)

	helpers.CreateAndLoginUser(t, ts, "tamper@test.com", "pass123456", models.UserTypeUser)

	// Signed with a different secret, so the signature check fails.
	foreignTokens := auth.NewTokenManager("attacker-secret", time.Hour)
	forged, err := foreignTokens.Issue(1, "owner")
	assert.NoError(t, err)

	res, _ := ts.SendRequest(t, http.MethodGet, "/orders", forged, nil)
	assert.Equal(t, http.StatusUnauthorized, res.StatusCode)
}

func TestSession_BearerHeaderFallback(t *testing.T) {
	ts := helpers.NewTestServer(t)

	token, _ := helpers.CreateAndLoginUser(t, ts, "apiclient@test.com", "pass123456", models.UserTypeUser)

	// API clients without cookies can authenticate with a Bearer header.
	req, err := http.NewRequest(http.MethodGet, ts.Server.URL+"/orders", nil)
	assert.NoError(t, err)
	req.Header.Set("Authorization", "Bearer "+token)

	res, err := http.DefaultClient.Do(req)
	assert.NoError(t, err)
	defer res.Body.Close()
	assert.Equal(t, http.StatusOK, res.StatusCode)
}
