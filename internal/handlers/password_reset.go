package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/mshulgin/go-account-service/internal/logger"
	"github.com/mshulgin/go-account-service/internal/services"
)

// PasswordReseter defines the interface for the two-step password reset flow.
type PasswordReseter interface {
	RequestReset(ctx context.Context, usernameOrEmail string) (capsule, username string, err error)
	CompleteReset(ctx context.Context, code, password1, password2, capsule, usernameCookie string) error
}

// ResetCookies holds the names and lifetime of the cookies carrying the reset
// state between the two steps of the flow.
type ResetCookies struct {
	CodeName     string
	UsernameName string
	MaxAge       int
}

// PasswordResetRequest represents the JSON body completing a password reset
// swagger:model PasswordResetRequest
type PasswordResetRequest struct {
	// Code received by mail
	// required: true
	// default: A1B2
	Code string `json:"code"`

	// New password
	// required: true
	// default: secret123
	Password1 string `json:"password1"`

	// New password confirmation
	// required: true
	// default: secret123
	Password2 string `json:"password2"`
}

// NewResetCodeHandler returns an HTTP handler that starts a password reset.
// It emails a reset code and stores a signed capsule plus the resolved
// username in short-lived cookies.
// @Summary Request a password reset code
// @Description Emails a reset code to the user identified by username or email and sets the reset-state cookies.
// @Tags password
// @Produce json
// @Param username_or_email query string true "Username or registered email"
// @Success 200 {object} handlers.MessageResponse "Code sent"
// @Failure 404 {object} handlers.ErrorResponse "No such user"
// @Router /password/reset/code [post]
func NewResetCodeHandler(svc PasswordReseter, cookies ResetCookies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		usernameOrEmail := r.URL.Query().Get("username_or_email")
		if usernameOrEmail == "" {
			usernameOrEmail = r.PostFormValue("username_or_email")
		}

		capsule, username, err := svc.RequestReset(r.Context(), usernameOrEmail)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrUserNotFound):
				writeError(w, http.StatusNotFound, "No account matches that username or email")
			default:
				logger.Log.Errorw("internal server error", "err", err)
				writeError(w, http.StatusInternalServerError, "Internal server error")
			}
			return
		}

		http.SetCookie(w, &http.Cookie{
			Name:     cookies.CodeName,
			Value:    capsule,
			Path:     "/",
			MaxAge:   cookies.MaxAge,
			HttpOnly: true,
		})
		http.SetCookie(w, &http.Cookie{
			Name:     cookies.UsernameName,
			Value:    username,
			Path:     "/",
			MaxAge:   cookies.MaxAge,
			HttpOnly: true,
		})
		writeJSON(w, http.StatusOK, MessageResponse{Message: "Reset code sent, valid for 300 seconds"})
	}
}

// NewPasswordResetHandler returns an HTTP handler that completes a password
// reset using the code from the mail and the cookie-held reset state. The
// cookies are cleared on success.
// @Summary Complete a password reset
// @Description Verifies the emailed code against the reset-state cookies and overwrites the password.
// @Tags password
// @Accept json
// @Produce json
// @Param passwordResetRequest body handlers.PasswordResetRequest true "Code and new password"
// @Success 200 {object} handlers.MessageResponse "Password reset"
// @Failure 403 {object} handlers.ErrorResponse "Password mismatch or wrong code"
// @Failure 404 {object} handlers.ErrorResponse "Reset state missing or expired"
// @Router /password/reset [post]
func NewPasswordResetHandler(svc PasswordReseter, cookies ResetCookies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req PasswordResetRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		var capsule, username string
		if c, err := r.Cookie(cookies.CodeName); err == nil {
			capsule = c.Value
		}
		if c, err := r.Cookie(cookies.UsernameName); err == nil {
			username = c.Value
		}

		err := svc.CompleteReset(r.Context(), req.Code, req.Password1, req.Password2, capsule, username)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrPasswordMismatch):
				writeError(w, http.StatusForbidden, "Passwords do not match")
			case errors.Is(err, services.ErrResetStateMissing):
				writeError(w, http.StatusNotFound, "Reset state missing or expired, request a new code")
			case errors.Is(err, services.ErrResetCodeWrong):
				writeError(w, http.StatusForbidden, "Wrong reset code")
			default:
				logger.Log.Errorw("internal server error", "err", err)
				writeError(w, http.StatusInternalServerError, "Internal server error")
			}
			return
		}

		http.SetCookie(w, &http.Cookie{Name: cookies.CodeName, Value: "", Path: "/", MaxAge: -1, HttpOnly: true})
		http.SetCookie(w, &http.Cookie{Name: cookies.UsernameName, Value: "", Path: "/", MaxAge: -1, HttpOnly: true})
		writeJSON(w, http.StatusOK, MessageResponse{Message: "Password reset, log in with the new password"})
	}
}

// NewResetDoneHandler returns the static confirmation endpoint for the reset
// flow.
// @Summary Password reset confirmation
// @Tags password
// @Produce json
// @Success 200 {object} handlers.MessageResponse "Confirmation"
// @Router /password/reset/done [get]
func NewResetDoneHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, MessageResponse{Message: "Password reset complete"})
	}
}
