package auth

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthRouter(t *testing.T) (*gin.Engine, *Service) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	svc := NewService(newMockUserStore(), NewTokenManager("test-secret-at-least-16", time.Hour), 8)
	h := NewHandler(svc)

	r := gin.New()
	r.POST("/api/register", h.Register)
	r.POST("/api/login", h.Login)

	verify := r.Group("")
	verify.Use(RequireAuth(svc))
	verify.GET("/api/verify", h.Verify)

	return r, svc
}

func postJSON(r http.Handler, path string, body any) *httptest.ResponseRecorder {
	data, _ := json.Marshal(body)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRegisterEndpoint(t *testing.T) {
	r, _ := newAuthRouter(t)

	w := postJSON(r, "/api/register", gin.H{"email": "alice@x.com", "password": "secret123"})
	require.Equal(t, http.StatusCreated, w.Code)

	var resp AuthResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, "alice@x.com", resp.User.Email)
	assert.NotEmpty(t, resp.User.ID)

	// The password hash must never appear in the response
	assert.NotContains(t, w.Body.String(), "password")
}

func TestRegisterEndpoint_Duplicate(t *testing.T) {
	r, _ := newAuthRouter(t)

	w := postJSON(r, "/api/register", gin.H{"email": "bob@x.com", "password": "secret123"})
	require.Equal(t, http.StatusCreated, w.Code)

	w = postJSON(r, "/api/register", gin.H{"email": "bob@x.com", "password": "secret123"})
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestRegisterEndpoint_InvalidInput(t *testing.T) {
	r, _ := newAuthRouter(t)

	w := postJSON(r, "/api/register", gin.H{"email": "not-an-email", "password": "secret123"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = postJSON(r, "/api/register", gin.H{"email": "carol@x.com", "password": "short"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = postJSON(r, "/api/register", gin.H{})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestLoginEndpoint(t *testing.T) {
	r, _ := newAuthRouter(t)

	w := postJSON(r, "/api/register", gin.H{"email": "erin@x.com", "password": "secret123"})
	require.Equal(t, http.StatusCreated, w.Code)

	w = postJSON(r, "/api/login", gin.H{"email": "erin@x.com", "password": "secret123"})
	require.Equal(t, http.StatusOK, w.Code)

	var resp AuthResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.Token)

	// Wrong password and unknown email produce the same failure
	w = postJSON(r, "/api/login", gin.H{"email": "erin@x.com", "password": "wrongpass"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	wrongPassBody := w.Body.String()

	w = postJSON(r, "/api/login", gin.H{"email": "ghost@x.com", "password": "whatever1"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, wrongPassBody, w.Body.String())
}

func TestVerifyEndpoint(t *testing.T) {
	r, _ := newAuthRouter(t)

	w := postJSON(r, "/api/register", gin.H{"email": "frank@x.com", "password": "secret123"})
	require.Equal(t, http.StatusCreated, w.Code)

	var reg AuthResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &reg))

	req := httptest.NewRequest(http.MethodGet, "/api/verify", nil)
	req.Header.Set("Authorization", "Bearer "+reg.Token)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		User PublicUser `json:"user"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, reg.User.ID, resp.User.ID)
	assert.Equal(t, "frank@x.com", resp.User.Email)
}

func TestVerifyEndpoint_NoToken(t *testing.T) {
	r, _ := newAuthRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/verify", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
