package handlers

import (
	"net/http"

	"github.com/mshulgin/go-account-service/internal/logger"
	"github.com/mshulgin/go-account-service/internal/middlewares"
)

// NewLogoutHandler returns an HTTP handler for logging out. Sessions are
// bearer tokens that simply expire, so the handler only acknowledges the
// request for the authenticated user.
// @Summary Log out
// @Description Acknowledges logout for the authenticated user. The bearer token stays valid until it expires.
// @Tags auth
// @Produce json
// @Success 200 {object} handlers.MessageResponse "Logged out"
// @Failure 401 {object} handlers.ErrorResponse "Missing or invalid token"
// @Security BearerAuth
// @Router /logout [post]
func NewLogoutHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if user := middlewares.CurrentUser(r.Context()); user != nil {
			logger.Log.Infow("user logged out", "username", user.Username)
		}
		writeJSON(w, http.StatusOK, MessageResponse{Message: "Logged out"})
	}
}
