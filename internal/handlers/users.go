package handlers

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/mshulgin/go-account-service/internal/logger"
	"github.com/mshulgin/go-account-service/internal/models"
	"github.com/mshulgin/go-account-service/internal/services"
)

// UserAdminer defines the interface for superuser-only user management.
type UserAdminer interface {
	List(ctx context.Context, page, size int) (*models.UserPage, error)
	SetSuper(ctx context.Context, id int64) (bool, error)
	SetActive(ctx context.Context, id int64) (bool, error)
}

// ToggleResponse reports the flag value after a toggle
// swagger:model ToggleResponse
type ToggleResponse struct {
	// ID of the toggled user
	ID int64 `json:"id"`

	// Status is the new flag value
	Status bool `json:"status"`
}

// NewListUsersHandler returns an HTTP handler serving one page of users,
// newest registrations first.
// @Summary List users
// @Tags admin
// @Produce json
// @Param page query int false "Page number, starting at 1" default(1)
// @Param size query int false "Page size" default(20)
// @Success 200 {object} models.UserPage "One page of users"
// @Failure 401 {object} handlers.ErrorResponse "Missing or invalid token"
// @Failure 403 {object} handlers.ErrorResponse "Requires superuser"
// @Security BearerAuth
// @Router / [get]
func NewListUsersHandler(svc UserAdminer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		page, _ := strconv.Atoi(r.URL.Query().Get("page"))
		size, _ := strconv.Atoi(r.URL.Query().Get("size"))

		result, err := svc.List(r.Context(), page, size)
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			writeError(w, http.StatusInternalServerError, "Internal server error")
			return
		}

		writeJSON(w, http.StatusOK, result)
	}
}

// NewToggleSuperHandler returns an HTTP handler flipping a user's superuser
// flag and reporting the new value.
// @Summary Toggle the superuser flag
// @Tags admin
// @Produce json
// @Param id path int true "User id"
// @Success 200 {object} handlers.ToggleResponse "New flag value"
// @Failure 401 {object} handlers.ErrorResponse "Missing or invalid token"
// @Failure 403 {object} handlers.ErrorResponse "Requires superuser"
// @Failure 404 {object} handlers.ErrorResponse "No such user"
// @Security BearerAuth
// @Router /{id}/super [post]
func NewToggleSuperHandler(svc UserAdminer) http.HandlerFunc {
	return toggleHandler(svc.SetSuper)
}

// NewToggleActiveHandler returns an HTTP handler flipping a user's active
// flag and reporting the new value.
// @Summary Toggle the active flag
// @Tags admin
// @Produce json
// @Param id path int true "User id"
// @Success 200 {object} handlers.ToggleResponse "New flag value"
// @Failure 401 {object} handlers.ErrorResponse "Missing or invalid token"
// @Failure 403 {object} handlers.ErrorResponse "Requires superuser"
// @Failure 404 {object} handlers.ErrorResponse "No such user"
// @Security BearerAuth
// @Router /{id}/active [post]
func NewToggleActiveHandler(svc UserAdminer) http.HandlerFunc {
	return toggleHandler(svc.SetActive)
}

func toggleHandler(toggle func(ctx context.Context, id int64) (bool, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
		if err != nil {
			writeError(w, http.StatusNotFound, "No such user")
			return
		}

		status, err := toggle(r.Context(), id)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrUserNotFound):
				writeError(w, http.StatusNotFound, "No such user")
			default:
				logger.Log.Errorw("internal server error", "err", err)
				writeError(w, http.StatusInternalServerError, "Internal server error")
			}
			return
		}

		writeJSON(w, http.StatusOK, ToggleResponse{ID: id, Status: status})
	}
}
