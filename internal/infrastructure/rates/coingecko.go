package rates

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"
)

const defaultBaseURL = "https://api.coingecko.com/api/v3"

// AssetIDs queried for the escrow panel footer
var AssetIDs = []string{"bitcoin", "ethereum", "matic-network"}

type CoinGeckoProvider struct {
	client  *http.Client
	baseURL string
}

type simplePriceResponse map[string]struct {
	USD float64 `json:"usd"`
}

func NewCoinGeckoProvider() *CoinGeckoProvider {
	return &CoinGeckoProvider{
		client: &http.Client{
			Timeout: 10 * time.Second,
		},
		baseURL: defaultBaseURL,
	}
}

// NewCoinGeckoProviderWithBaseURL is used by tests to point at a stub server
func NewCoinGeckoProviderWithBaseURL(baseURL string) *CoinGeckoProvider {
	p := NewCoinGeckoProvider()
	p.baseURL = baseURL
	return p
}

// GetPrices returns USD spot prices keyed by asset id
func (p *CoinGeckoProvider) GetPrices(ctx context.Context) (map[string]float64, error) {
	url := fmt.Sprintf("%s/simple/price?ids=%s&vs_currencies=usd", p.baseURL, strings.Join(AssetIDs, ","))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("price request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("price API status: %s", resp.Status)
	}

	var body simplePriceResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("decode price response: %w", err)
	}

	prices := make(map[string]float64, len(body))
	for id, entry := range body {
		prices[id] = entry.USD
	}
	return prices, nil
}
