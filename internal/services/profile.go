package services

import (
	"context"

	"github.com/mshulgin/go-account-service/internal/logger"
	"github.com/mshulgin/go-account-service/internal/models"
)

// ProfileService handles profile mutation, avatar management and account
// deletion for the authenticated user.
type ProfileService struct {
	reader  UserReader
	writer  UserWriter
	avatars AvatarKeeper
	events  KafkaWriter
}

// NewProfileService creates a new ProfileService instance.
func NewProfileService(reader UserReader, writer UserWriter, avatars AvatarKeeper, events KafkaWriter) *ProfileService {
	return &ProfileService{
		reader:  reader,
		writer:  writer,
		avatars: avatars,
		events:  events,
	}
}

// Update validates and applies profile changes for the current user and
// returns the stored record. Uniqueness is re-checked only for a changed
// username or email.
func (svc *ProfileService) Update(ctx context.Context, current *models.UserDB, p models.ProfileUpdate) (*models.UserDB, error) {
	if p.Username != current.Username {
		other, err := svc.reader.GetByUsername(ctx, p.Username)
		if err != nil {
			logger.Log.Errorw("failed to check username", "err", err)
			return nil, err
		}
		if other != nil {
			return nil, ErrUsernameTaken
		}
	}

	if p.Email != current.Email {
		other, err := svc.reader.GetByEmail(ctx, p.Email)
		if err != nil {
			logger.Log.Errorw("failed to check email", "err", err)
			return nil, err
		}
		if other != nil {
			return nil, ErrEmailTaken
		}
		if !isEmailValid(p.Email) {
			return nil, ErrInvalidEmail
		}
	}

	if p.MobileNumber != nil && !mobileRe.MatchString(*p.MobileNumber) {
		return nil, ErrInvalidMobile
	}
	if p.Wechat != nil && !wechatRe.MatchString(*p.Wechat) {
		return nil, ErrInvalidWechat
	}
	if p.QQ != nil && !qqRe.MatchString(*p.QQ) {
		return nil, ErrInvalidQQ
	}

	var avatar *string
	if p.Avatar != nil {
		name, err := svc.avatars.Save(p.Avatar.Filename, p.Avatar.ContentType, p.Avatar.Data)
		if err != nil {
			return nil, err
		}
		// drop the replaced file, a leftover is not worth failing the request
		if current.Avatar != nil {
			if err := svc.avatars.Remove(*current.Avatar); err != nil {
				logger.Log.Errorw("failed to remove old avatar", "username", current.Username, "file", *current.Avatar, "err", err)
			}
		}
		avatar = &name
	}

	user, err := svc.writer.UpdateProfile(ctx, current.ID, p, avatar)
	if err != nil {
		logger.Log.Errorw("failed to update profile", "err", err)
		return nil, err
	}
	return user, nil
}

// DeleteAvatar removes the current user's avatar file and clears the column.
func (svc *ProfileService) DeleteAvatar(ctx context.Context, current *models.UserDB) error {
	if current.Avatar == nil {
		return ErrNoAvatar
	}

	if err := svc.avatars.Remove(*current.Avatar); err != nil {
		logger.Log.Errorw("failed to remove avatar file", "username", current.Username, "file", *current.Avatar, "err", err)
	}

	return svc.writer.ClearAvatar(ctx, current.ID)
}

// DeleteAccount hard-deletes the current user. The avatar file removal is
// best-effort; the row is deleted regardless.
func (svc *ProfileService) DeleteAccount(ctx context.Context, current *models.UserDB) error {
	if current.Avatar != nil {
		if err := svc.avatars.Remove(*current.Avatar); err != nil {
			logger.Log.Errorw("failed to remove avatar file", "username", current.Username, "file", *current.Avatar, "err", err)
		}
	}

	if err := svc.writer.Delete(ctx, current.ID); err != nil {
		logger.Log.Errorw("failed to delete user", "err", err)
		return err
	}

	publishEvent(ctx, svc.events, AccountEvent{Type: EventDeleted, Username: current.Username, Email: current.Email})
	return nil
}
