package services

import (
	"context"

	"github.com/mshulgin/go-account-service/internal/logger"
	"github.com/mshulgin/go-account-service/internal/models"
)

// AdminService handles superuser-only operations: the user listing and the
// superuser/active toggles.
type AdminService struct {
	reader UserReader
	writer UserWriter
}

// NewAdminService creates a new AdminService instance.
func NewAdminService(reader UserReader, writer UserWriter) *AdminService {
	return &AdminService{reader: reader, writer: writer}
}

// List returns one page of users ordered by registration time, newest first.
func (svc *AdminService) List(ctx context.Context, page, size int) (*models.UserPage, error) {
	if page < 1 {
		page = 1
	}
	if size < 1 {
		size = 20
	}

	users, err := svc.reader.List(ctx, size, (page-1)*size)
	if err != nil {
		logger.Log.Errorw("failed to list users", "err", err)
		return nil, err
	}

	total, err := svc.reader.Count(ctx)
	if err != nil {
		logger.Log.Errorw("failed to count users", "err", err)
		return nil, err
	}

	return &models.UserPage{
		Items: users,
		Total: total,
		Page:  page,
		Size:  size,
	}, nil
}

// SetSuper toggles the superuser flag and returns the new value.
func (svc *AdminService) SetSuper(ctx context.Context, id int64) (bool, error) {
	user, err := svc.reader.GetByID(ctx, id)
	if err != nil {
		logger.Log.Errorw("failed to get user", "err", err)
		return false, err
	}
	if user == nil {
		return false, ErrUserNotFound
	}

	status, err := svc.writer.ToggleSuperuser(ctx, id)
	if err != nil {
		logger.Log.Errorw("failed to toggle superuser", "err", err)
		return false, err
	}
	return status, nil
}

// SetActive toggles the active flag and returns the new value.
func (svc *AdminService) SetActive(ctx context.Context, id int64) (bool, error) {
	user, err := svc.reader.GetByID(ctx, id)
	if err != nil {
		logger.Log.Errorw("failed to get user", "err", err)
		return false, err
	}
	if user == nil {
		return false, ErrUserNotFound
	}

	status, err := svc.writer.ToggleActive(ctx, id)
	if err != nil {
		logger.Log.Errorw("failed to toggle active", "err", err)
		return false, err
	}
	return status, nil
}
