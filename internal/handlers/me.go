package handlers

import (
	"context"
	"errors"
	"io"
	"net/http"

	"github.com/mshulgin/go-account-service/internal/logger"
	"github.com/mshulgin/go-account-service/internal/middlewares"
	"github.com/mshulgin/go-account-service/internal/models"
	"github.com/mshulgin/go-account-service/internal/services"
	"github.com/mshulgin/go-account-service/internal/storage"
)

// maxAvatarSize bounds the multipart form held in memory.
const maxAvatarSize = 10 << 20

// ProfileUpdater defines the interface for self-service profile operations.
type ProfileUpdater interface {
	Update(ctx context.Context, current *models.UserDB, p models.ProfileUpdate) (*models.UserDB, error)
	DeleteAvatar(ctx context.Context, current *models.UserDB) error
	DeleteAccount(ctx context.Context, current *models.UserDB) error
}

// NewGetMeHandler returns an HTTP handler serving the authenticated user's
// profile.
// @Summary Get own profile
// @Tags me
// @Produce json
// @Success 200 {object} models.UserDB "Current profile"
// @Failure 401 {object} handlers.ErrorResponse "Missing or invalid token"
// @Security BearerAuth
// @Router /me [get]
func NewGetMeHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user := middlewares.CurrentUser(r.Context())
		if user == nil {
			writeError(w, http.StatusUnauthorized, "Not authenticated")
			return
		}
		writeJSON(w, http.StatusOK, user)
	}
}

// NewUpdateMeHandler returns an HTTP handler that updates the authenticated
// user's profile from a multipart form. Optional fields left out of the form
// keep their stored values; an uploaded avatar file replaces the previous one.
// @Summary Update own profile
// @Description Applies profile changes from a multipart form. Absent optional fields are left unchanged.
// @Tags me
// @Accept multipart/form-data
// @Produce json
// @Param username formData string true "Username"
// @Param email formData string true "Email"
// @Param mobile_number formData string false "Mobile number"
// @Param wechat formData string false "Wechat id"
// @Param qq formData string false "QQ number"
// @Param blog_address formData string false "Blog URL"
// @Param introduction formData string false "Self introduction"
// @Param avatar formData file false "Avatar image"
// @Success 200 {object} models.UserDB "Updated profile"
// @Failure 401 {object} handlers.ErrorResponse "Missing or invalid token"
// @Failure 403 {object} handlers.ErrorResponse "Validation failed or value taken"
// @Security BearerAuth
// @Router /me [put]
func NewUpdateMeHandler(svc ProfileUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user := middlewares.CurrentUser(r.Context())
		if user == nil {
			writeError(w, http.StatusUnauthorized, "Not authenticated")
			return
		}

		if err := r.ParseMultipartForm(maxAvatarSize); err != nil {
			writeError(w, http.StatusBadRequest, "invalid multipart form")
			return
		}

		p := models.ProfileUpdate{
			Username:     r.PostFormValue("username"),
			Email:        r.PostFormValue("email"),
			MobileNumber: formValuePtr(r, "mobile_number"),
			Wechat:       formValuePtr(r, "wechat"),
			QQ:           formValuePtr(r, "qq"),
			BlogAddress:  formValuePtr(r, "blog_address"),
			Introduction: formValuePtr(r, "introduction"),
		}

		file, header, err := r.FormFile("avatar")
		switch {
		case err == nil:
			data, readErr := io.ReadAll(file)
			file.Close()
			if readErr != nil {
				writeError(w, http.StatusBadRequest, "failed to read avatar upload")
				return
			}
			p.Avatar = &models.AvatarUpload{
				Filename:    header.Filename,
				ContentType: header.Header.Get("Content-Type"),
				Data:        data,
			}
		case errors.Is(err, http.ErrMissingFile):
			// no upload, keep the stored avatar
		default:
			writeError(w, http.StatusBadRequest, "invalid avatar upload")
			return
		}

		updated, err := svc.Update(r.Context(), user, p)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrUsernameTaken):
				writeError(w, http.StatusForbidden, "Username already registered, pick another")
			case errors.Is(err, services.ErrEmailTaken):
				writeError(w, http.StatusForbidden, "Email already registered, pick another")
			case errors.Is(err, services.ErrInvalidEmail):
				writeError(w, http.StatusForbidden, "Malformed email address")
			case errors.Is(err, services.ErrInvalidMobile):
				writeError(w, http.StatusForbidden, "Malformed mobile number")
			case errors.Is(err, services.ErrInvalidWechat):
				writeError(w, http.StatusForbidden, "Malformed wechat id")
			case errors.Is(err, services.ErrInvalidQQ):
				writeError(w, http.StatusForbidden, "Malformed QQ number")
			case errors.Is(err, storage.ErrNotImage):
				writeError(w, http.StatusForbidden, "Avatar must be an image file")
			default:
				logger.Log.Errorw("internal server error", "err", err)
				writeError(w, http.StatusInternalServerError, "Internal server error")
			}
			return
		}

		writeJSON(w, http.StatusOK, updated)
	}
}

// NewDeleteMyAvatarHandler returns an HTTP handler that removes the
// authenticated user's avatar.
// @Summary Delete own avatar
// @Tags me
// @Produce json
// @Success 200 {object} handlers.MessageResponse "Avatar removed"
// @Failure 401 {object} handlers.ErrorResponse "Missing or invalid token"
// @Failure 404 {object} handlers.ErrorResponse "No avatar set"
// @Security BearerAuth
// @Router /me/avatar [delete]
func NewDeleteMyAvatarHandler(svc ProfileUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user := middlewares.CurrentUser(r.Context())
		if user == nil {
			writeError(w, http.StatusUnauthorized, "Not authenticated")
			return
		}

		if err := svc.DeleteAvatar(r.Context(), user); err != nil {
			switch {
			case errors.Is(err, services.ErrNoAvatar):
				writeError(w, http.StatusNotFound, "No avatar to delete")
			default:
				logger.Log.Errorw("internal server error", "err", err)
				writeError(w, http.StatusInternalServerError, "Internal server error")
			}
			return
		}

		writeJSON(w, http.StatusOK, MessageResponse{Message: "Avatar removed"})
	}
}

// NewDeleteMeHandler returns an HTTP handler that permanently deletes the
// authenticated user's account.
// @Summary Delete own account
// @Tags me
// @Produce json
// @Success 200 {object} handlers.MessageResponse "Account deleted"
// @Failure 401 {object} handlers.ErrorResponse "Missing or invalid token"
// @Security BearerAuth
// @Router /me [delete]
func NewDeleteMeHandler(svc ProfileUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user := middlewares.CurrentUser(r.Context())
		if user == nil {
			writeError(w, http.StatusUnauthorized, "Not authenticated")
			return
		}

		if err := svc.DeleteAccount(r.Context(), user); err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			writeError(w, http.StatusInternalServerError, "Internal server error")
			return
		}

		writeJSON(w, http.StatusOK, MessageResponse{Message: "Account deleted"})
	}
}

// formValuePtr returns the form value when the field was present in the
// request, nil otherwise. Presence is what distinguishes "clear to empty"
// from "leave unchanged".
func formValuePtr(r *http.Request, key string) *string {
	if r.MultipartForm == nil {
		return nil
	}
	values, ok := r.MultipartForm.Value[key]
	if !ok || len(values) == 0 {
		return nil
	}
	return &values[0]
}
