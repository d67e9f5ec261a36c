package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/mshulgin/go-account-service/internal/logger"
	"github.com/mshulgin/go-account-service/internal/services"
)

// Loginer defines the interface that the password login service must implement.
type Loginer interface {
	Login(ctx context.Context, username, password string) (token string, isSuperuser bool, err error)
}

// TokenResponse represents a successful login response
// swagger:model TokenResponse
type TokenResponse struct {
	// Status message
	// default: success
	Msg string `json:"msg"`

	// Session token
	// default: JWT_TOKEN
	AccessToken string `json:"access_token"`

	// Token type
	// default: Bearer
	TokenType string `json:"token_type"`

	// Whether the user is a superuser
	IsSuperuser bool `json:"is_superuser"`
}

// NewLoginHandler returns an HTTP handler for password login.
// @Summary User login
// @Description Authenticate with form-encoded username and password, returns a session token
// @Tags auth
// @Accept x-www-form-urlencoded
// @Produce json
// @Param username formData string true "Username"
// @Param password formData string true "Password"
// @Success 200 {object} handlers.TokenResponse "Session token returned"
// @Failure 401 {object} handlers.ErrorResponse "Wrong password"
// @Failure 403 {object} handlers.ErrorResponse "Account locked"
// @Failure 404 {object} handlers.ErrorResponse "Username does not exist"
// @Router /login [post]
func NewLoginHandler(svc Loginer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			writeError(w, http.StatusBadRequest, "invalid form body")
			return
		}

		username := r.PostFormValue("username")
		password := r.PostFormValue("password")

		token, isSuperuser, err := svc.Login(r.Context(), username, password)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrUserNotFound):
				writeError(w, http.StatusNotFound, "Username does not exist")
			case errors.Is(err, services.ErrInvalidCredentials):
				writeError(w, http.StatusUnauthorized, "Wrong password")
			case errors.Is(err, services.ErrUserInactive):
				writeError(w, http.StatusForbidden, "Account is locked, login refused")
			default:
				logger.Log.Errorw("internal server error", "err", err)
				writeError(w, http.StatusInternalServerError, "Internal server error")
			}
			return
		}

		writeJSON(w, http.StatusOK, TokenResponse{
			Msg:         "success",
			AccessToken: token,
			TokenType:   "Bearer",
			IsSuperuser: isSuperuser,
		})
	}
}
