package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/mshulgin/go-account-service/internal/logger"
	"github.com/mshulgin/go-account-service/internal/services"
)

// EmailLoginer defines the interface for the email-code login flow.
type EmailLoginer interface {
	SendLoginCode(ctx context.Context, email string) (string, error)
	LoginWithEmailCode(ctx context.Context, email, code, lookupID string) (string, bool, error)
}

// EmailCaptchaRequest represents the JSON body requesting a login code
// swagger:model EmailCaptchaRequest
type EmailCaptchaRequest struct {
	// Email
	// required: true
	// default: john@example.com
	Email string `json:"email"`
}

// EmailLoginRequest represents the JSON body for email-code login
// swagger:model EmailLoginRequest
type EmailLoginRequest struct {
	// Email
	// required: true
	// default: john@example.com
	Email string `json:"email"`

	// Code received by mail
	// required: true
	// default: A1B2
	Code string `json:"code"`
}

// NewEmailCaptchaHandler returns an HTTP handler that emails a one-time login
// code. The lookup id for the stored code is handed back in a short-lived
// cookie so the follow-up login request can present it.
// @Summary Request an email login code
// @Description Sends a one-time login code to the given address and sets a lookup cookie for the follow-up login.
// @Tags auth
// @Accept json
// @Produce json
// @Param emailCaptchaRequest body handlers.EmailCaptchaRequest true "Destination address"
// @Success 200 {object} handlers.MessageResponse "Code sent"
// @Failure 404 {object} handlers.ErrorResponse "Email not registered"
// @Failure 403 {object} handlers.ErrorResponse "Account is locked"
// @Router /login/email/captcha [post]
func NewEmailCaptchaHandler(svc EmailLoginer, cookieName string, cookieMaxAge int) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req EmailCaptchaRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		lookupID, err := svc.SendLoginCode(r.Context(), req.Email)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrUserNotFound):
				writeError(w, http.StatusNotFound, "Email is not registered")
			case errors.Is(err, services.ErrUserInactive):
				writeError(w, http.StatusForbidden, "Account is locked, login refused")
			default:
				logger.Log.Errorw("internal server error", "err", err)
				writeError(w, http.StatusInternalServerError, "Internal server error")
			}
			return
		}

		http.SetCookie(w, &http.Cookie{
			Name:     cookieName,
			Value:    lookupID,
			Path:     "/",
			MaxAge:   cookieMaxAge,
			HttpOnly: true,
		})
		writeJSON(w, http.StatusOK, MessageResponse{Message: "Verification code sent, valid for 120 seconds"})
	}
}

// NewEmailLoginHandler returns an HTTP handler for logging in with a
// previously emailed code. The lookup cookie set by the captcha handler ties
// the request to the stored code; a missing cookie means no code was
// requested.
// @Summary Log in with an email code
// @Description Authenticates with a one-time code requested via /login/email/captcha and returns a session token.
// @Tags auth
// @Accept json
// @Produce json
// @Param emailLoginRequest body handlers.EmailLoginRequest true "Email and code"
// @Success 200 {object} handlers.TokenResponse "Successful login"
// @Failure 404 {object} handlers.ErrorResponse "Email not registered"
// @Failure 403 {object} handlers.ErrorResponse "Account locked, code never requested or code expired"
// @Failure 412 {object} handlers.ErrorResponse "Wrong code"
// @Router /login/email [post]
func NewEmailLoginHandler(svc EmailLoginer, cookieName string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req EmailLoginRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		var lookupID string
		if c, err := r.Cookie(cookieName); err == nil {
			lookupID = c.Value
		}

		token, isSuperuser, err := svc.LoginWithEmailCode(r.Context(), req.Email, req.Code, lookupID)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrUserNotFound):
				writeError(w, http.StatusNotFound, "Email is not registered")
			case errors.Is(err, services.ErrUserInactive):
				writeError(w, http.StatusForbidden, "Account is locked, login refused")
			case errors.Is(err, services.ErrCodeNotRequested):
				writeError(w, http.StatusForbidden, "No login code was requested")
			case errors.Is(err, services.ErrCodeExpired):
				writeError(w, http.StatusForbidden, "Login code expired, request a new one")
			case errors.Is(err, services.ErrCodeIncorrect):
				writeError(w, http.StatusPreconditionFailed, "Wrong login code")
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
