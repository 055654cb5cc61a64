package rates

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetPrices(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/simple/price", r.URL.Path)
		assert.Contains(t, r.URL.RawQuery, "bitcoin")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"bitcoin":{"usd":64123.5},"ethereum":{"usd":3200.1},"matic-network":{"usd":0.71}}`))
	}))
	defer srv.Close()

	provider := NewCoinGeckoProviderWithBaseURL(srv.URL)
	prices, err := provider.GetPrices(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 64123.5, prices["bitcoin"])
	assert.Equal(t, 3200.1, prices["ethereum"])
	assert.Equal(t, 0.71, prices["matic-network"])
}

func TestGetPricesAPIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()

	provider := NewCoinGeckoProviderWithBaseURL(srv.URL)
	_, err := provider.GetPrices(context.Background())
	require.Error(t, err)
}
