package services

import (
	"context"
	"time"

	"github.com/segmentio/kafka-go"

	"github.com/mshulgin/go-account-service/internal/email"
	"github.com/mshulgin/go-account-service/internal/models"
)

// UserReader defines read-only operations on user records. Lookup misses
// return (nil, nil).
type UserReader interface {
	GetByID(ctx context.Context, id int64) (*models.UserDB, error)
	GetByUsername(ctx context.Context, username string) (*models.UserDB, error)
	GetByEmail(ctx context.Context, email string) (*models.UserDB, error)
	List(ctx context.Context, limit, offset int) ([]models.UserDB, error)
	Count(ctx context.Context) (int64, error)
}

// UserWriter defines write operations on user records.
type UserWriter interface {
	Create(ctx context.Context, uid, username, password, email string) (*models.UserDB, error)
	TouchLastLogin(ctx context.Context, username string) error
	UpdateProfile(ctx context.Context, id int64, p models.ProfileUpdate, avatar *string) (*models.UserDB, error)
	ResetPassword(ctx context.Context, username, password string) error
	ToggleSuperuser(ctx context.Context, id int64) (bool, error)
	ToggleActive(ctx context.Context, id int64) (bool, error)
	ClearAvatar(ctx context.Context, id int64) error
	Delete(ctx context.Context, id int64) error
}

// TokenIssuer mints signed session tokens for a user id.
type TokenIssuer interface {
	Generate(ctx context.Context, userID int64) (string, error)
}

// TokenCache maps a user's external UID to an issued token.
type TokenCache interface {
	Get(ctx context.Context, uid string) (string, error)
	Set(ctx context.Context, uid, token string, ttl time.Duration) error
}

// CodeCache stores email login codes under one-time lookup ids.
type CodeCache interface {
	Get(ctx context.Context, id string) (string, error)
	Set(ctx context.Context, id, code string, ttl time.Duration) error
}

// CodeGenerator produces verification codes.
type CodeGenerator interface {
	Generate() (string, error)
}

// EmailSender delivers verification codes out-of-band.
type EmailSender interface {
	SendVerificationCode(to, code string, t email.Template) error
}

// CapsuleIssuer signs and verifies the password-reset capsule held by the client.
type CapsuleIssuer interface {
	Issue(codeHash, subject string) (string, error)
	Verify(capsule string) (codeHash, subject string, err error)
}

// AvatarKeeper stores and removes avatar files.
type AvatarKeeper interface {
	Save(filename, contentType string, data []byte) (string, error)
	Remove(name string) error
}

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}
