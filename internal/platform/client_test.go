package platform

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.Handler) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(srv.URL, WithHTTPClient(srv.Client()))
}

func TestNewClient_TrimsTrailingSlash(t *testing.T) {
	c := NewClient("http://localhost:8000/")
	assert.Equal(t, "http://localhost:8000", c.BaseURL)
}

func TestClient_ErrorUsesDetailField(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnprocessableEntity)
		w.Write([]byte(`{"detail": "dataset has no timestamp column"}`))
	}))

	_, err := c.KPIs(context.Background())
	require.Error(t, err)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusUnprocessableEntity, apiErr.Status)
	assert.Equal(t, "dataset has no timestamp column", apiErr.Message)
	assert.Contains(t, apiErr.Error(), "status 422")
}

func TestClient_ErrorFallsBackToStatusText(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "empty body", body: ""},
		{name: "non-JSON body", body: "<html>Bad Gateway</html>"},
		{name: "JSON without detail", body: `{"error": "boom"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusBadGateway)
				w.Write([]byte(tt.body))
			}))

			_, err := c.KPIs(context.Background())
			var apiErr *APIError
			require.ErrorAs(t, err, &apiErr)
			assert.Equal(t, http.StatusBadGateway, apiErr.Status)
			assert.Equal(t, http.StatusText(http.StatusBadGateway), apiErr.Message)
		})
	}
}

func TestClient_SendsBearerAndRequestID(t *testing.T) {
	var gotAuth, gotRequestID string
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotRequestID = r.Header.Get("X-Request-ID")
		w.Write([]byte(`{}`))
	}))
	c.Tokens = StaticToken("tok_abc123")

	_, err := c.KPIs(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Bearer tok_abc123", gotAuth)
	assert.NotEmpty(t, gotRequestID)
}

func TestClient_NoAuthHeaderWithoutToken(t *testing.T) {
	var gotAuth string
	var sawHeader bool
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		_, sawHeader = r.Header["Authorization"]
		w.Write([]byte(`{}`))
	}))

	_, err := c.KPIs(context.Background())
	require.NoError(t, err)
	assert.Empty(t, gotAuth)
	assert.False(t, sawHeader, "Authorization header should be absent, not empty")
}

func TestLogin_Success(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/auth/login", r.URL.Path)

		var req LoginRequest
		require.NoError(t, jsonDecode(r, &req))
		assert.Equal(t, "ops@refinery.example", req.Email)
		assert.Equal(t, "hunter2", req.Password)

		w.Write([]byte(`{
			"access_token": "tok_xyz",
			"token_type": "bearer",
			"role": "admin",
			"user": {"email": "ops@refinery.example", "name": "Ops Lead", "role": "admin"}
		}`))
	}))

	resp, err := c.Login(context.Background(), "ops@refinery.example", "hunter2")
	require.NoError(t, err)
	assert.Equal(t, "tok_xyz", resp.AccessToken)
	require.NotNil(t, resp.User)
	assert.Equal(t, "Ops Lead", resp.User.Name)
	assert.Equal(t, "admin", resp.User.Role)
}

func TestLogin_InvalidCredentials(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"detail": "Invalid credentials"}`))
	}))

	resp, err := c.Login(context.Background(), "ops@refinery.example", "wrong")
	require.Error(t, err)
	assert.Nil(t, resp)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusUnauthorized, apiErr.Status)
	assert.Equal(t, "Invalid credentials", apiErr.Message)
	assert.True(t, IsStatus(err, http.StatusUnauthorized))
}

func jsonDecode(r *http.Request, target any) error {
	defer r.Body.Close()
	return json.NewDecoder(r.Body).Decode(target)
}
