package currency

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/safar/go-shop-api/internal/config"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestGateway(t *testing.T, handler http.HandlerFunc) (*Gateway, *int) {
	t.Helper()

	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		handler(w, r)
	}))
	t.Cleanup(srv.Close)

	gw := NewGateway(&config.FixerConfig{
		BaseURL:   srv.URL,
		AccessKey: "test-key",
		Timeout:   2 * time.Second,
	})
	return gw, &calls
}

func ratesHandler(code string, rate string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]interface{}{
			"success": true,
			"rates":   map[string]json.Number{code: json.Number(rate)},
		})
	}
}

func TestConvert(t *testing.T) {
	gw, calls := newTestGateway(t, ratesHandler("EGP", "18.823"))

	amount := decimal.RequireFromString("107.5")
	got, err := gw.Convert(context.Background(), amount, "EGP")
	require.NoError(t, err)

	want := amount.Mul(decimal.RequireFromString("18.823"))
	assert.True(t, got.Equal(want), "got %s, want %s", got, want)
	assert.Equal(t, 1, *calls)
}

func TestConvertCaseInsensitive(t *testing.T) {
	gw, _ := newTestGateway(t, ratesHandler("EGP", "18.823"))

	got, err := gw.Convert(context.Background(), decimal.NewFromInt(1), "egp")
	require.NoError(t, err)
	assert.True(t, got.Equal(decimal.RequireFromString("18.823")))
}

func TestConvertRequestShape(t *testing.T) {
	var query map[string][]string
	gw, _ := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
		query = r.URL.Query()
		ratesHandler("USD", "1.1")(w, r)
	})

	_, err := gw.FetchRate(context.Background(), "USD")
	require.NoError(t, err)

	assert.Equal(t, []string{"test-key"}, query["access_key"])
	assert.Equal(t, []string{"EUR"}, query["base"])
	assert.Equal(t, []string{"USD"}, query["symbols"])
}

func TestConvertUnsupportedSkipsCall(t *testing.T) {
	gw, calls := newTestGateway(t, ratesHandler("EGP", "18.823"))

	_, err := gw.Convert(context.Background(), decimal.NewFromInt(1), "XXX")
	assert.ErrorIs(t, err, ErrUnsupported)
	assert.Equal(t, 0, *calls, "unsupported code must not reach the rate service")
}

func TestConvertUpstreamFailure(t *testing.T) {
	payload := `{"success":false,"error":{"code":104,"info":"monthly usage limit reached"}}`
	gw, _ := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(payload))
	})

	_, err := gw.FetchRate(context.Background(), "EGP")

	var upstream *UpstreamError
	require.ErrorAs(t, err, &upstream)
	assert.JSONEq(t, payload, string(upstream.Payload))
}

func TestConvertMissingRate(t *testing.T) {
	gw, _ := newTestGateway(t, ratesHandler("USD", "1.1"))

	_, err := gw.FetchRate(context.Background(), "EGP")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrUnsupported)
}

func TestIsSupported(t *testing.T) {
	assert.True(t, IsSupported("EGP"))
	assert.True(t, IsSupported("usd"))
	assert.True(t, IsSupported(" eur "))
	assert.False(t, IsSupported("NOPE"))
	assert.False(t, IsSupported(""))
}
