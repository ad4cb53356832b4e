// Package currencyapi talks to the currencyapi.com v3 HTTP API.
package currencyapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/SscSPs/currency_exchange_app/internal/apperrors"
	"github.com/SscSPs/currency_exchange_app/internal/core/domain"
	"github.com/SscSPs/currency_exchange_app/internal/core/ports/providers"
	"github.com/SscSPs/currency_exchange_app/internal/platform/metrics"
	"github.com/shopspring/decimal"
)

// DefaultBaseURL is the production API root.
const DefaultBaseURL = "https://api.currencyapi.com/v3"

const (
	endpointCurrencies = "currencies"
	endpointHistorical = "historical"
)

// Client is an HTTP client for the currencies and historical endpoints.
type Client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

var _ providers.CurrencyAPI = (*Client)(nil)

// NewClient creates a client. A zero timeout leaves requests bounded only by their context.
func NewClient(apiKey, baseURL string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		apiKey:  apiKey,
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

type currenciesResponse struct {
	Data map[string]struct {
		Symbol string `json:"symbol"`
		Name   string `json:"name"`
		Code   string `json:"code"`
	} `json:"data"`
}

type historicalResponse struct {
	Data map[string]struct {
		Code  string           `json:"code"`
		Value *decimal.Decimal `json:"value"`
	} `json:"data"`
}

// ListCurrencies fetches the provider catalog keyed by currency code.
// A non-200 answer is reported as *apperrors.ExternalFetchError.
func (c *Client) ListCurrencies(ctx context.Context) (map[string]domain.ProviderCurrency, error) {
	params := url.Values{}
	params.Set("apikey", c.apiKey)

	var body currenciesResponse
	if err := c.get(ctx, endpointCurrencies, params, &body, nil); err != nil {
		return nil, err
	}

	result := make(map[string]domain.ProviderCurrency, len(body.Data))
	for code, entry := range body.Data {
		result[code] = domain.ProviderCurrency{
			Code:   code,
			Name:   entry.Name,
			Symbol: entry.Symbol,
		}
	}
	return result, nil
}

// HistoricalRate fetches how many units of targetCode one unit of baseCode bought on date.
// HTTP 422 is reported as apperrors.ErrRateUnprocessable.
func (c *Client) HistoricalRate(ctx context.Context, baseCode, targetCode string, date time.Time) (decimal.Decimal, error) {
	params := url.Values{}
	params.Set("apikey", c.apiKey)
	params.Set("currencies", targetCode)
	params.Set("base_currency", baseCode)
	params.Set("date", date.Format(domain.ProviderDateLayout))

	var body historicalResponse
	hasTarget := func() error {
		if entry, ok := body.Data[targetCode]; !ok || entry.Value == nil {
			return fmt.Errorf("no rate for %s in provider response", targetCode)
		}
		return nil
	}
	if err := c.get(ctx, endpointHistorical, params, &body, hasTarget); err != nil {
		return decimal.Zero, err
	}
	return *body.Data[targetCode].Value, nil
}

// get performs the request and decodes a 200 body into out. check, when set,
// inspects the decoded body; a check failure is counted as a decode outcome.
func (c *Client) get(ctx context.Context, endpoint string, params url.Values, out any, check func() error) error {
	reqURL := c.baseURL + "/" + endpoint + "?" + params.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return fmt.Errorf("failed to build %s request: %w", endpoint, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		metrics.RecordProviderRequest(endpoint, metrics.OutcomeTransport)
		// url.Error prints the full URL and the query carries the api key.
		var uerr *url.Error
		if errors.As(err, &uerr) {
			uerr.URL = c.baseURL + "/" + endpoint
		}
		return fmt.Errorf("request to %s failed: %w", endpoint, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusUnprocessableEntity && endpoint == endpointHistorical:
		metrics.RecordProviderRequest(endpoint, metrics.OutcomeUnprocessable)
		return apperrors.ErrRateUnprocessable
	case resp.StatusCode != http.StatusOK:
		metrics.RecordProviderRequest(endpoint, metrics.OutcomeHTTPError)
		return &apperrors.ExternalFetchError{StatusCode: resp.StatusCode}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		metrics.RecordProviderRequest(endpoint, metrics.OutcomeDecode)
		return fmt.Errorf("failed to decode %s response: %w", endpoint, errors.Join(apperrors.ErrExternalFetch, err))
	}
	if check != nil {
		if err := check(); err != nil {
			metrics.RecordProviderRequest(endpoint, metrics.OutcomeDecode)
			return err
		}
	}

	metrics.RecordProviderRequest(endpoint, metrics.OutcomeSuccess)
	return nil
}
