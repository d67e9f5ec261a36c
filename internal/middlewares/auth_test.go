package middlewares

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mshulgin/go-account-service/internal/models"
)

type fakeTokener struct {
	token  string
	userID int64
	extErr error
	valErr error
}

func (f *fakeTokener) GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error) {
	return f.token, f.extErr
}

func (f *fakeTokener) GetUserID(ctx context.Context, tokenString string) (int64, error) {
	return f.userID, f.valErr
}

type fakeLoader struct {
	user *models.UserDB
	err  error
}

func (f *fakeLoader) GetByID(ctx context.Context, id int64) (*models.UserDB, error) {
	return f.user, f.err
}

func TestAuthMiddleware(t *testing.T) {
	tests := []struct {
		name       string
		tokener    *fakeTokener
		loader     *fakeLoader
		wantStatus int
		wantUser   bool
	}{
		{
			name:       "valid token, active user",
			tokener:    &fakeTokener{token: "t", userID: 1},
			loader:     &fakeLoader{user: &models.UserDB{ID: 1, Username: "alice", IsActive: true}},
			wantStatus: http.StatusOK,
			wantUser:   true,
		},
		{
			name:       "missing header",
			tokener:    &fakeTokener{extErr: errors.New("authorization header missing")},
			loader:     &fakeLoader{},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "invalid token",
			tokener:    &fakeTokener{token: "t", valErr: errors.New("invalid token")},
			loader:     &fakeLoader{},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "token for deleted user",
			tokener:    &fakeTokener{token: "t", userID: 9},
			loader:     &fakeLoader{user: nil},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "inactive user",
			tokener:    &fakeTokener{token: "t", userID: 2},
			loader:     &fakeLoader{user: &models.UserDB{ID: 2, IsActive: false}},
			wantStatus: http.StatusForbidden,
		},
		{
			name:       "loader failure",
			tokener:    &fakeTokener{token: "t", userID: 1},
			loader:     &fakeLoader{err: errors.New("db down")},
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotUser *models.UserDB
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				gotUser = CurrentUser(r.Context())
				w.WriteHeader(http.StatusOK)
			})

			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/me", nil)

			AuthMiddleware(tt.tokener, tt.loader)(next).ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantUser {
				assert.NotNil(t, gotUser)
			} else {
				assert.Nil(t, gotUser)
			}
		})
	}
}

func TestSuperuserMiddleware(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	t.Run("superuser passes", func(t *testing.T) {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		ctx := context.WithValue(req.Context(), userKey, &models.UserDB{ID: 1, IsSuperuser: true, IsActive: true})

		SuperuserMiddleware()(next).ServeHTTP(rec, req.WithContext(ctx))
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("plain user forbidden", func(t *testing.T) {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		ctx := context.WithValue(req.Context(), userKey, &models.UserDB{ID: 2, IsActive: true})

		SuperuserMiddleware()(next).ServeHTTP(rec, req.WithContext(ctx))
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("no user forbidden", func(t *testing.T) {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/", nil)

		SuperuserMiddleware()(next).ServeHTTP(rec, req)
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})
}
