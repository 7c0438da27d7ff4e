package api

import (
	"context"
	"database/sql"

	"github.com/rs/zerolog"
	"github.com/safar/go-shop-api/internal/auth"
	"github.com/shopspring/decimal"
)

// RateFetcher is the currency conversion gateway as the handlers see it: a
// single EUR-relative rate per recognized code.
type RateFetcher interface {
	FetchRate(ctx context.Context, code string) (decimal.Decimal, error)
}

type Server struct {
	db     *sql.DB
	rates  RateFetcher
	tokens *auth.TokenMaker
	logger zerolog.Logger
}

func NewServer(db *sql.DB, rates RateFetcher, tokens *auth.TokenMaker, logger zerolog.Logger) *Server {
	return &Server{
		db:     db,
		rates:  rates,
		tokens: tokens,
		logger: logger,
	}
}
