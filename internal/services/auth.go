package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/mshulgin/go-account-service/internal/email"
	"github.com/mshulgin/go-account-service/internal/logger"
	"github.com/mshulgin/go-account-service/internal/models"
)

// AuthService handles registration, password login and email-code login.
type AuthService struct {
	reader   UserReader
	writer   UserWriter
	jwt      TokenIssuer
	tokens   TokenCache // nil when the session cache is disabled
	codes    CodeCache  // nil when the session cache is disabled
	captcha  CodeGenerator
	email    EmailSender
	events   KafkaWriter
	tokenTTL time.Duration
	codeTTL  time.Duration
}

// NewAuthService creates a new AuthService instance. tokens and codes may be
// nil: logins then mint a fresh token every time and email-code login is
// unavailable.
func NewAuthService(
	reader UserReader,
	writer UserWriter,
	jwt TokenIssuer,
	tokens TokenCache,
	codes CodeCache,
	captcha CodeGenerator,
	emailSender EmailSender,
	events KafkaWriter,
	tokenTTL time.Duration,
	codeTTL time.Duration,
) *AuthService {
	return &AuthService{
		reader:   reader,
		writer:   writer,
		jwt:      jwt,
		tokens:   tokens,
		codes:    codes,
		captcha:  captcha,
		email:    emailSender,
		events:   events,
		tokenTTL: tokenTTL,
		codeTTL:  codeTTL,
	}
}

// Register registers a new user and returns the created record.
func (svc *AuthService) Register(ctx context.Context, username, password, emailAddr string) (*models.UserDB, error) {
	existing, err := svc.reader.GetByUsername(ctx, username)
	if err != nil {
		logger.Log.Errorw("failed to check username", "err", err)
		return nil, err
	}
	if existing != nil {
		return nil, ErrUsernameTaken
	}

	existing, err = svc.reader.GetByEmail(ctx, emailAddr)
	if err != nil {
		logger.Log.Errorw("failed to check email", "err", err)
		return nil, err
	}
	if existing != nil {
		return nil, ErrEmailTaken
	}

	if !isEmailValid(emailAddr) {
		return nil, ErrInvalidEmail
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		logger.Log.Errorw("failed to hash password", "err", err)
		return nil, err
	}

	user, err := svc.writer.Create(ctx, uuid.New().String(), username, string(hashed), emailAddr)
	if err != nil {
		logger.Log.Errorw("failed to save user", "err", err)
		return nil, err
	}

	publishEvent(ctx, svc.events, AccountEvent{Type: EventRegistered, Username: user.Username, Email: user.Email})
	return user, nil
}

// Login authenticates a user by password and returns a session token plus the
// superuser flag.
func (svc *AuthService) Login(ctx context.Context, username, password string) (string, bool, error) {
	user, err := svc.reader.GetByUsername(ctx, username)
	if err != nil {
		logger.Log.Errorw("failed to get user", "err", err)
		return "", false, err
	}
	if user == nil {
		return "", false, ErrUserNotFound
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		logger.Log.Infow("invalid credentials", "username", username)
		return "", false, ErrInvalidCredentials
	}

	if !user.IsActive {
		return "", false, ErrUserInactive
	}

	token, err := svc.finishLogin(ctx, user)
	if err != nil {
		return "", false, err
	}
	return token, user.IsSuperuser, nil
}

// SendLoginCode generates a login code, emails it and stores it under a
// random one-time lookup id. The id is handed back to the client so the
// follow-up login can find the code again.
func (svc *AuthService) SendLoginCode(ctx context.Context, emailAddr string) (string, error) {
	if svc.codes == nil {
		return "", ErrCacheDisabled
	}

	user, err := svc.reader.GetByEmail(ctx, emailAddr)
	if err != nil {
		logger.Log.Errorw("failed to get user", "err", err)
		return "", err
	}
	if user == nil {
		return "", ErrUserNotFound
	}
	if !user.IsActive {
		return "", ErrUserInactive
	}

	code, err := svc.captcha.Generate()
	if err != nil {
		logger.Log.Errorw("failed to generate code", "err", err)
		return "", err
	}

	if err := svc.email.SendVerificationCode(emailAddr, code, email.TemplateLogin); err != nil {
		logger.Log.Errorw("failed to send login code", "err", err)
		return "", err
	}

	id := uuid.New().String()
	if err := svc.codes.Set(ctx, id, code, svc.codeTTL); err != nil {
		logger.Log.Errorw("failed to store login code", "err", err)
		return "", err
	}
	return id, nil
}

// LoginWithEmailCode authenticates a user by a previously issued email code.
// The lookupID is the one-time id handed out by SendLoginCode; an empty id
// means no code was ever requested for this flow.
func (svc *AuthService) LoginWithEmailCode(ctx context.Context, emailAddr, code, lookupID string) (string, bool, error) {
	if svc.codes == nil {
		return "", false, ErrCacheDisabled
	}

	user, err := svc.reader.GetByEmail(ctx, emailAddr)
	if err != nil {
		logger.Log.Errorw("failed to get user", "err", err)
		return "", false, err
	}
	if user == nil {
		return "", false, ErrUserNotFound
	}
	if !user.IsActive {
		return "", false, ErrUserInactive
	}

	if lookupID == "" {
		return "", false, ErrCodeNotRequested
	}

	stored, err := svc.codes.Get(ctx, lookupID)
	if err != nil {
		logger.Log.Errorw("failed to fetch login code", "err", err)
		return "", false, err
	}
	if stored == "" {
		return "", false, ErrCodeExpired
	}
	if stored != code {
		return "", false, ErrCodeIncorrect
	}

	token, err := svc.finishLogin(ctx, user)
	if err != nil {
		return "", false, err
	}
	return token, user.IsSuperuser, nil
}

// finishLogin touches the login timestamp and returns the session token,
// reusing a cached one when the session cache holds a live token for this
// user.
func (svc *AuthService) finishLogin(ctx context.Context, user *models.UserDB) (string, error) {
	if err := svc.writer.TouchLastLogin(ctx, user.Username); err != nil {
		logger.Log.Errorw("failed to update login time", "err", err)
		return "", err
	}

	token, err := svc.issueOrReuseToken(ctx, user)
	if err != nil {
		return "", err
	}

	publishEvent(ctx, svc.events, AccountEvent{Type: EventLoggedIn, Username: user.Username, Email: user.Email})
	logger.Log.Infow("user logged in", "username", user.Username)
	return token, nil
}

// issueOrReuseToken returns the cached token for the user when one is live,
// otherwise mints a fresh token and caches it for the token TTL. Cache
// failures degrade to a fresh uncached token rather than failing the login.
func (svc *AuthService) issueOrReuseToken(ctx context.Context, user *models.UserDB) (string, error) {
	if svc.tokens != nil {
		cached, err := svc.tokens.Get(ctx, user.UserUID)
		if err != nil {
			logger.Log.Errorw("session cache read failed", "err", err)
		}
		if cached != "" {
			return cached, nil
		}
	}

	token, err := svc.jwt.Generate(ctx, user.ID)
	if err != nil {
		logger.Log.Errorw("failed to generate JWT", "err", err)
		return "", err
	}

	if svc.tokens != nil {
		if err := svc.tokens.Set(ctx, user.UserUID, token, svc.tokenTTL); err != nil {
			logger.Log.Errorw("session cache write failed", "err", err)
		}
	}
	return token, nil
}
