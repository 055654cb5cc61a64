package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/LavaJover/shvark-deal-bot/internal/config"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func serveCallback(t *testing.T, tokenURL, target string) *httptest.ResponseRecorder {
	t.Helper()
	cfg := &config.DealBotConfig{}
	cfg.OAuth.ClientID = "client-id"
	cfg.OAuth.ClientSecret = "client-secret"
	cfg.OAuth.RedirectURI = "http://localhost/callback"
	cfg.OAuth.TokenURL = tokenURL

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	NewRouter(cfg).ServeHTTP(w, req)
	return w
}

func TestCallbackMissingCode(t *testing.T) {
	w := serveCallback(t, "http://unused.invalid", "/callback")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error":"no code received"}`, w.Body.String())
}

func TestCallbackExchangesCode(t *testing.T) {
	var form map[string]string
	provider := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		form = map[string]string{
			"client_id":  r.PostFormValue("client_id"),
			"code":       r.PostFormValue("code"),
			"grant_type": r.PostFormValue("grant_type"),
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"access_token": "tok"})
	}))
	defer provider.Close()

	w := serveCallback(t, provider.URL, "/callback?code=abc123")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message":"OAuth callback successful"}`, w.Body.String())
	assert.Equal(t, "client-id", form["client_id"])
	assert.Equal(t, "abc123", form["code"])
	assert.Equal(t, "authorization_code", form["grant_type"])
}

func TestCallbackProviderRejection(t *testing.T) {
	provider := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "bad code", http.StatusBadRequest)
	}))
	defer provider.Close()

	w := serveCallback(t, provider.URL, "/callback?code=stale")
	assert.Equal(t, http.StatusBadGateway, w.Code)
	assert.JSONEq(t, `{"error":"error exchanging code for token"}`, w.Body.String())
}

func TestHealthz(t *testing.T) {
	w := serveCallback(t, "http://unused.invalid", "/healthz")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}
