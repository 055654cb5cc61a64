package http

import (
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/LavaJover/shvark-deal-bot/internal/config"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// NewRouter builds the bot's HTTP surface: the OAuth callback, a liveness
// probe and the metrics endpoint.
func NewRouter(cfg *config.DealBotConfig) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())

	client := &http.Client{Timeout: 10 * time.Second}
	router.GET("/callback", oauthCallback(cfg, client))
	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	return router
}

// oauthCallback exchanges the authorization code for a token. A missing code
// is the caller's fault, a failed exchange is the provider's: the status
// codes say which.
func oauthCallback(cfg *config.DealBotConfig, client *http.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		code := c.Query("code")
		if code == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "no code received"})
			return
		}

		form := url.Values{}
		form.Set("client_id", cfg.OAuth.ClientID)
		form.Set("client_secret", cfg.OAuth.ClientSecret)
		form.Set("code", code)
		form.Set("grant_type", "authorization_code")
		form.Set("redirect_uri", cfg.OAuth.RedirectURI)

		req, err := http.NewRequestWithContext(c.Request.Context(), http.MethodPost, cfg.OAuth.TokenURL, strings.NewReader(form.Encode()))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to build token request"})
			return
		}
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

		resp, err := client.Do(req)
		if err != nil {
			slog.Error("oauth token exchange failed", "error", err.Error())
			c.JSON(http.StatusBadGateway, gin.H{"error": "error exchanging code for token"})
			return
		}
		defer resp.Body.Close()
		io.Copy(io.Discard, resp.Body)

		if resp.StatusCode != http.StatusOK {
			slog.Error("oauth token exchange rejected", "status", resp.Status)
			c.JSON(http.StatusBadGateway, gin.H{"error": "error exchanging code for token"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "OAuth callback successful"})
	}
}
