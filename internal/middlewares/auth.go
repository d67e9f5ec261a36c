package middlewares

import (
	"context"
	"net/http"

	"github.com/mshulgin/go-account-service/internal/logger"
	"github.com/mshulgin/go-account-service/internal/models"
)

// Tokener extracts and validates bearer tokens.
type Tokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	GetUserID(ctx context.Context, tokenString string) (int64, error)
}

// UserLoader fetches the user record behind a token. A lookup miss returns
// (nil, nil).
type UserLoader interface {
	GetByID(ctx context.Context, id int64) (*models.UserDB, error)
}

// contextKey is an unexported type for keys in context
type contextKey struct{}

var userKey = contextKey{}

// CurrentUser returns the authenticated user stored by AuthMiddleware, or nil.
func CurrentUser(ctx context.Context) *models.UserDB {
	user, _ := ctx.Value(userKey).(*models.UserDB)
	return user
}

// WithUser returns a context carrying the given user as the authenticated one.
func WithUser(ctx context.Context, user *models.UserDB) context.Context {
	return context.WithValue(ctx, userKey, user)
}

// AuthMiddleware validates the bearer token and loads the current user into
// the request context. Requests with a valid token for a deleted user are
// rejected as unauthorized; inactive accounts are forbidden.
func AuthMiddleware(tokener Tokener, users UserLoader) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			tokenString, err := tokener.GetTokenFromRequest(ctx, r)
			if err != nil {
				logger.Log.Infow("authorization failed", "err", err)
				w.WriteHeader(http.StatusUnauthorized)
				return
			}

			userID, err := tokener.GetUserID(ctx, tokenString)
			if err != nil {
				logger.Log.Infow("authorization failed", "err", err)
				w.WriteHeader(http.StatusUnauthorized)
				return
			}

			user, err := users.GetByID(ctx, userID)
			if err != nil {
				logger.Log.Errorw("failed to load current user", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				return
			}
			if user == nil {
				w.WriteHeader(http.StatusUnauthorized)
				return
			}
			if !user.IsActive {
				w.WriteHeader(http.StatusForbidden)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithUser(ctx, user)))
		})
	}
}

// SuperuserMiddleware rejects requests whose authenticated user is not a
// superuser. It must run after AuthMiddleware.
func SuperuserMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user := CurrentUser(r.Context())
			if user == nil || !user.IsSuperuser {
				w.WriteHeader(http.StatusForbidden)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
