package helpers

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"gorm.io/gorm"

	"github.com/Mithil2603/machinery-backend/internal/app"
	"github.com/Mithil2603/machinery-backend/internal/config"
	"github.com/Mithil2603/machinery-backend/internal/email"
	"github.com/Mithil2603/machinery-backend/internal/logger"
)

// TestServer wraps a fully wired application over an in-memory database.
// Email is a recording mock so tests can inspect outbound messages.
type TestServer struct {
	Server *httptest.Server
	DB     *gorm.DB
	Email  *email.MockProvider
	Cfg    *config.Config
}

// NewTestServer builds the router with an in-memory SQLite database and a
// mock email provider.
func NewTestServer(t *testing.T) *TestServer {
	t.Helper()

	cfg := testConfig()
	logger.Init(cfg.Server.Env)

	db := NewTestDB(t)
	mockEmail := email.NewMockProvider()

	router := app.SetupRouter(cfg, db, mockEmail)
	server := httptest.NewServer(router)
	t.Cleanup(server.Close)

	return &TestServer{
		Server: server,
		DB:     db,
		Email:  mockEmail,
		Cfg:    cfg,
	}
}

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Server.Env = "test"
	cfg.JWT.Secret = "test-secret"
	cfg.JWT.TTL = 60
	cfg.App.BaseURL = "http://localhost:3000"
	cfg.App.AllowedOrigins = []string{"http://localhost:3000"}
	cfg.Email.InquiryTo = "sales@example.com"
	return cfg
}

// SendRequest performs a JSON request against the test server. A non-empty
// token is attached as the session cookie, the way browsers send it.
func (ts *TestServer) SendRequest(t *testing.T, method, path, token string, body interface{}) (*http.Response, string) {
	t.Helper()

	var reqBody io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("failed to encode request body: %v", err)
		}
		reqBody = bytes.NewBuffer(jsonBody)
	}

	req, err := http.NewRequest(method, ts.Server.URL+path, reqBody)
	if err != nil {
		t.Fatalf("failed to build request: %v", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.AddCookie(&http.Cookie{Name: "authToken", Value: token})
	}

	res, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("request %s %s failed: %v", method, path, err)
	}

	resBody, err := io.ReadAll(res.Body)
	res.Body.Close()
	if err != nil {
		t.Fatalf("failed to read response body: %v", err)
	}

	return res, string(resBody)
}

// SessionCookie extracts the authToken cookie from a response, if any.
// The last match wins, matching how a browser applies repeated Set-Cookie
// headers for the same name.
func SessionCookie(res *http.Response) *http.Cookie {
	var found *http.Cookie
	for _, c := range res.Cookies() {
		if c.Name == "authToken" {
			found = c
		}
	}
	return found
}
