package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCurrencyParam(t *testing.T) {
	cases := []struct {
		name      string
		target    string
		code      string
		requested bool
	}{
		{"absent key", "/products", "", false},
		{"recognized code", "/products?currency=egp", "EGP", true},
		// A present key is a conversion request even when its value is
		// empty or whitespace; the empty code then fails the symbol
		// check downstream instead of silently serving EUR amounts.
		{"present but empty", "/products?currency=", "", true},
		{"whitespace only", "/products?currency=%20%20", "", true},
		{"unrecognized code", "/products?currency=nope", "NOPE", true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodGet, tc.target, nil)
			code, ok := currencyParam(r)
			assert.Equal(t, tc.requested, ok)
			assert.Equal(t, tc.code, code)
		})
	}
}
