package api

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/safar/go-shop-api/internal/auth"
	"github.com/safar/go-shop-api/internal/database"
)

type contextKey string

const (
	requestIDKey contextKey = "request_id"
	claimsKey    contextKey = "auth_claims"
)

func RequestIDMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get("X-Request-Id")
		if requestID == "" {
			requestID = uuid.New().String()
		}
		ctx := context.WithValue(r.Context(), requestIDKey, requestID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
	wrote  bool
}

func (w *statusRecorder) WriteHeader(status int) {
	w.status = status
	w.wrote = true
	w.ResponseWriter.WriteHeader(status)
}

func (w *statusRecorder) Write(b []byte) (int, error) {
	w.wrote = true
	return w.ResponseWriter.Write(b)
}

// LoggerMiddleware logs every request on completion and recovers panics
// into a 500.
func LoggerMiddleware(logger zerolog.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			recorder := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
			start := time.Now()

			defer func() {
				if rec := recover(); rec != nil {
					// A 500 can only go out if the handler had not
					// started the response; otherwise the status and
					// body are already on the wire.
					if !recorder.wrote {
						respondDetail(recorder, http.StatusInternalServerError, "Internal server error")
					}
					logger.Error().
						Interface("panic", rec).
						Str("method", r.Method).
						Str("url", r.URL.String()).
						Int("status", recorder.status).
						Msg("request panicked")
					return
				}

				requestID, _ := r.Context().Value(requestIDKey).(string)
				logger.Info().
					Str("request_id", requestID).
					Str("method", r.Method).
					Str("url", r.URL.String()).
					Int("status", recorder.status).
					Dur("elapsed", time.Since(start)).
					Msg("request completed")
			}()

			next.ServeHTTP(recorder, r)
		})
	}
}

// AuthMiddleware verifies a Bearer access token when one is present and
// attaches its claims to the context. Absence of a token is not an error
// here; the role guards decide what each route requires.
func AuthMiddleware(tokens *auth.TokenMaker) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if header == "" {
				next.ServeHTTP(w, r)
				return
			}

			fields := strings.Fields(header)
			if len(fields) != 2 || !strings.EqualFold(fields[0], "Bearer") {
				respondDetail(w, http.StatusUnauthorized, "Invalid authorization header")
				return
			}

			claims, err := tokens.VerifyToken(fields[1])
			if err != nil {
				respondError(w, err)
				return
			}
			if claims.TokenType != auth.TokenTypeAccess {
				respondDetail(w, http.StatusUnauthorized, "Invalid or expired token")
				return
			}

			ctx := context.WithValue(r.Context(), claimsKey, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func claimsFrom(r *http.Request) *auth.Claims {
	claims, _ := r.Context().Value(claimsKey).(*auth.Claims)
	return claims
}

func requireAuth(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if claimsFrom(r) == nil {
			respondDetail(w, http.StatusUnauthorized, "Authentication required")
			return
		}
		next(w, r)
	}
}

// requireStaff guards catalog mutation and revenue reporting.
func requireStaff(next http.HandlerFunc) http.HandlerFunc {
	return requireAuth(func(w http.ResponseWriter, r *http.Request) {
		if !claimsFrom(r).IsStaff {
			respondError(w, database.ErrNotAuthorized)
			return
		}
		next(w, r)
	})
}

// requireCustomer guards order placement and listing; staff accounts do
// not shop.
func requireCustomer(next http.HandlerFunc) http.HandlerFunc {
	return requireAuth(func(w http.ResponseWriter, r *http.Request) {
		if claimsFrom(r).IsStaff {
			respondError(w, database.ErrNotAuthorized)
			return
		}
		next(w, r)
	})
}
