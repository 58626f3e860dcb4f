package httpclient

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

// CurrencyLayerClient talks to an apilayer-style "/live" endpoint. Quotes
// come back keyed as "<source><target>" ("USDEUR"); the trailing code is an
// external wire convention and is validated against the requested set rather
// than trusted blindly.
type CurrencyLayerClient struct {
	http      *http.Client
	endpoint  string
	accessKey string
}

type apiResponse struct {
	Success bool                       `json:"success"`
	Quotes  map[string]decimal.Decimal `json:"quotes"`
}

func (c *CurrencyLayerClient) FetchRates(ctx context.Context, base string, codes []string) (map[string]decimal.Decimal, error) {
	u, err := url.Parse(c.endpoint)
	if err != nil {
		return nil, fmt.Errorf("failed to parse endpoint URL: %w", err)
	}

	q := u.Query()
	q.Set("access_key", c.accessKey)
	q.Set("source", base)
	q.Set("currencies", strings.Join(codes, ","))
	q.Set("format", "1")
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request for source %q: %w", base, err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to execute request for source %q: %w", base, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("unexpected status code %d for source %q: %s", resp.StatusCode, base, resp.Status)
	}

	var body apiResponse
	if err = json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("failed to decode response for source %q: %w", base, err)
	}

	if !body.Success {
		return nil, fmt.Errorf("api returned non-success result for source %q", base)
	}

	return extractRates(base, codes, body.Quotes)
}

// extractRates turns provider quote keys into plain currency codes. A quote
// must be exactly "<base><code>" for a requested code; unknown keys are
// skipped, a missing requested code fails the whole call so no partial rate
// table can ever be written.
func extractRates(base string, codes []string, quotes map[string]decimal.Decimal) (map[string]decimal.Decimal, error) {
	requested := make(map[string]struct{}, len(codes))
	for _, code := range codes {
		requested[code] = struct{}{}
	}

	rates := make(map[string]decimal.Decimal, len(codes))
	for key, value := range quotes {
		if !strings.HasPrefix(key, base) {
			logrus.Warnf("Skipping quote %q: key does not start with source %q", key, base)
			continue
		}
		code := key[len(base):]
		if _, ok := requested[code]; !ok {
			logrus.Warnf("Skipping quote %q: %q was not requested", key, code)
			continue
		}
		if !value.IsPositive() {
			return nil, fmt.Errorf("quote %q has non-positive rate %s", key, value)
		}
		rates[code] = value
	}

	for code := range requested {
		if _, ok := rates[code]; !ok {
			return nil, fmt.Errorf("quote for currency %q is missing from response", code)
		}
	}
	return rates, nil
}

func NewCurrencyLayerClient(httpClient *http.Client, endpoint string, accessKey string) *CurrencyLayerClient {
	return &CurrencyLayerClient{http: httpClient, endpoint: endpoint, accessKey: accessKey}
}
