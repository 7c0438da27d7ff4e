package currency

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/safar/go-shop-api/internal/config"
	"github.com/shopspring/decimal"
)

// ErrUnsupported is returned for a currency code outside the recognized
// set. No outbound call is made in that case.
var ErrUnsupported = errors.New("currency not supported")

// UpstreamError carries the rate service's own failure payload verbatim so
// the API boundary can hand it back to the caller uninterpreted.
type UpstreamError struct {
	Payload json.RawMessage
}

func (e *UpstreamError) Error() string {
	return "exchange rate lookup failed: " + string(e.Payload)
}

type ratesResponse struct {
	Success bool                       `json:"success"`
	Rates   map[string]decimal.Decimal `json:"rates"`
}

// Gateway fetches EUR-relative exchange rates from the external service.
// Calls are synchronous and uncached; the only protection against a hung
// upstream is the configured client timeout plus the request context.
type Gateway struct {
	client    *http.Client
	baseURL   string
	accessKey string
}

func NewGateway(cfg *config.FixerConfig) *Gateway {
	return &Gateway{
		client:    &http.Client{Timeout: cfg.Timeout},
		baseURL:   cfg.BaseURL,
		accessKey: cfg.AccessKey,
	}
}

// FetchRate returns the current multiplier from EUR to code.
func (g *Gateway) FetchRate(ctx context.Context, code string) (decimal.Decimal, error) {
	code = Normalize(code)
	if !IsSupported(code) {
		return decimal.Zero, ErrUnsupported
	}

	q := url.Values{}
	q.Set("access_key", g.accessKey)
	q.Set("base", BaseCurrency)
	q.Set("symbols", code)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, g.baseURL+"/latest?"+q.Encode(), nil)
	if err != nil {
		return decimal.Zero, fmt.Errorf("build rate request: %w", err)
	}

	res, err := g.client.Do(req)
	if err != nil {
		return decimal.Zero, fmt.Errorf("fetch rate: %w", err)
	}
	defer res.Body.Close()

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return decimal.Zero, fmt.Errorf("read rate response: %w", err)
	}

	var parsed ratesResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return decimal.Zero, fmt.Errorf("decode rate response: %w", err)
	}

	if !parsed.Success {
		return decimal.Zero, &UpstreamError{Payload: json.RawMessage(body)}
	}

	rate, ok := parsed.Rates[code]
	if !ok {
		return decimal.Zero, fmt.Errorf("rate for %s missing from response", code)
	}

	return rate, nil
}

// Convert returns amount expressed in code, using one fresh rate lookup.
func (g *Gateway) Convert(ctx context.Context, amount decimal.Decimal, code string) (decimal.Decimal, error) {
	rate, err := g.FetchRate(ctx, code)
	if err != nil {
		return decimal.Zero, err
	}
	return amount.Mul(rate), nil
}
