package api

import (
	"errors"
	"net/http"

	"github.com/rs/zerolog/log"
	"github.com/safar/go-shop-api/internal/auth"
	"github.com/safar/go-shop-api/internal/currency"
	"github.com/safar/go-shop-api/internal/database"
)

// respondError is the single boundary translator: every error raised below
// the handlers funnels through here and becomes a status code plus the
// {detail, status_code} envelope. Upstream conversion failures are the one
// exception; their payload passes through unwrapped.
func respondError(w http.ResponseWriter, err error) {
	var fields database.FieldErrors
	if errors.As(err, &fields) {
		respondFields(w, http.StatusBadRequest, fields)
		return
	}

	var upstream *currency.UpstreamError
	if errors.As(err, &upstream) {
		respondRaw(w, http.StatusConflict, upstream.Payload)
		return
	}

	switch {
	case errors.Is(err, database.ErrProductNotFound),
		errors.Is(err, database.ErrOrderNotFound),
		errors.Is(err, database.ErrUserNotFound):
		respondDetail(w, http.StatusNotFound, "Not found.")

	case errors.Is(err, database.ErrStockViolation),
		errors.Is(err, currency.ErrUnsupported):
		respondDetail(w, http.StatusNotAcceptable, "Not acceptable")

	case errors.Is(err, database.ErrDuplicateEmail):
		respondDetail(w, http.StatusConflict, "Already exist")

	case errors.Is(err, database.ErrNotAuthorized):
		respondDetail(w, http.StatusForbidden, "Not authorized")

	case errors.Is(err, auth.ErrInvalidCredentials):
		respondDetail(w, http.StatusUnauthorized, "Wrong password")

	case errors.Is(err, auth.ErrInvalidToken), errors.Is(err, auth.ErrExpiredToken):
		respondDetail(w, http.StatusUnauthorized, "Invalid or expired token")

	case database.IsForeignKeyViolation(err):
		respondDetail(w, http.StatusConflict, "Referenced by existing orders")

	default:
		log.Error().Err(err).Msg("unhandled error")
		respondDetail(w, http.StatusInternalServerError, "Internal server error")
	}
}
