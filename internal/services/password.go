package services

import (
	"context"
	"crypto/sha256"
	"encoding/hex"

	"golang.org/x/crypto/bcrypt"

	"github.com/mshulgin/go-account-service/internal/email"
	"github.com/mshulgin/go-account-service/internal/logger"
)

// PasswordService handles the password reset flow. The reset state lives in
// client-held cookies: a signed capsule binding the code hash to the target
// username, so the server stays stateless between the two steps.
type PasswordService struct {
	reader  UserReader
	writer  UserWriter
	captcha CodeGenerator
	email   EmailSender
	capsule CapsuleIssuer
}

// NewPasswordService creates a new PasswordService instance.
func NewPasswordService(
	reader UserReader,
	writer UserWriter,
	captcha CodeGenerator,
	emailSender EmailSender,
	capsule CapsuleIssuer,
) *PasswordService {
	return &PasswordService{
		reader:  reader,
		writer:  writer,
		captcha: captcha,
		email:   emailSender,
		capsule: capsule,
	}
}

func hashCode(code string) string {
	sum := sha256.Sum256([]byte(code))
	return hex.EncodeToString(sum[:])
}

// RequestReset resolves the target user by username first, falling back to a
// syntactically valid email, then emails a reset code and returns the signed
// capsule plus the resolved username for the caller to set as cookies.
func (svc *PasswordService) RequestReset(ctx context.Context, usernameOrEmail string) (capsule, username string, err error) {
	user, err := svc.reader.GetByUsername(ctx, usernameOrEmail)
	if err != nil {
		logger.Log.Errorw("failed to get user", "err", err)
		return "", "", err
	}
	if user == nil {
		if !isEmailValid(usernameOrEmail) {
			return "", "", ErrUserNotFound
		}
		user, err = svc.reader.GetByEmail(ctx, usernameOrEmail)
		if err != nil {
			logger.Log.Errorw("failed to get user", "err", err)
			return "", "", err
		}
		if user == nil {
			return "", "", ErrUserNotFound
		}
	}

	code, err := svc.captcha.Generate()
	if err != nil {
		logger.Log.Errorw("failed to generate code", "err", err)
		return "", "", err
	}

	capsule, err = svc.capsule.Issue(hashCode(code), user.Username)
	if err != nil {
		logger.Log.Errorw("failed to issue reset capsule", "err", err)
		return "", "", err
	}

	if err := svc.email.SendVerificationCode(user.Email, code, email.TemplateReset); err != nil {
		logger.Log.Errorw("failed to send reset code", "err", err)
		return "", "", err
	}

	logger.Log.Infow("reset code sent", "username", user.Username)
	return capsule, user.Username, nil
}

// CompleteReset verifies the confirmation fields and the cookie-held capsule,
// then overwrites the password hash for the capsule's subject.
func (svc *PasswordService) CompleteReset(ctx context.Context, code, password1, password2, capsule, usernameCookie string) error {
	if password1 != password2 {
		return ErrPasswordMismatch
	}
	if capsule == "" || usernameCookie == "" {
		return ErrResetStateMissing
	}

	wantHash, subject, err := svc.capsule.Verify(capsule)
	if err != nil {
		logger.Log.Infow("reset capsule rejected", "err", err)
		return ErrResetStateMissing
	}

	if hashCode(code) != wantHash {
		return ErrResetCodeWrong
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password2), bcrypt.DefaultCost)
	if err != nil {
		logger.Log.Errorw("failed to hash password", "err", err)
		return err
	}

	if err := svc.writer.ResetPassword(ctx, subject, string(hashed)); err != nil {
		logger.Log.Errorw("failed to reset password", "username", subject, "err", err)
		return err
	}

	logger.Log.Infow("password reset", "username", subject)
	return nil
}
