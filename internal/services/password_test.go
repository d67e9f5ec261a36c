package services_test

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"

	"github.com/mshulgin/go-account-service/internal/models"
	"github.com/mshulgin/go-account-service/internal/services"
)

func sha256hex(s string) string {
	sum := sha256.Sum256([]byte(s))
	return hex.EncodeToString(sum[:])
}

func TestPasswordService_RequestReset(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	user := &models.UserDB{ID: 1, Username: "alice", Email: "alice@example.com", IsActive: true}

	t.Run("resolved by username", func(t *testing.T) {
		reader := services.NewMockUserReader(ctrl)
		captcha := services.NewMockCodeGenerator(ctrl)
		sender := services.NewMockEmailSender(ctrl)
		capsule := services.NewMockCapsuleIssuer(ctrl)

		reader.EXPECT().GetByUsername(gomock.Any(), "alice").Return(user, nil)
		captcha.EXPECT().Generate().Return("AB12", nil)
		capsule.EXPECT().Issue(sha256hex("AB12"), "alice").Return("CAPSULE", nil)
		sender.EXPECT().SendVerificationCode("alice@example.com", "AB12", gomock.Any()).Return(nil)

		svc := services.NewPasswordService(reader, nil, captcha, sender, capsule)

		gotCapsule, gotUsername, err := svc.RequestReset(context.Background(), "alice")
		assert.NoError(t, err)
		assert.Equal(t, "CAPSULE", gotCapsule)
		assert.Equal(t, "alice", gotUsername)
	})

	t.Run("resolved by email fallback", func(t *testing.T) {
		reader := services.NewMockUserReader(ctrl)
		captcha := services.NewMockCodeGenerator(ctrl)
		sender := services.NewMockEmailSender(ctrl)
		capsule := services.NewMockCapsuleIssuer(ctrl)

		reader.EXPECT().GetByUsername(gomock.Any(), "alice@example.com").Return(nil, nil)
		reader.EXPECT().GetByEmail(gomock.Any(), "alice@example.com").Return(user, nil)
		captcha.EXPECT().Generate().Return("AB12", nil)
		capsule.EXPECT().Issue(sha256hex("AB12"), "alice").Return("CAPSULE", nil)
		sender.EXPECT().SendVerificationCode("alice@example.com", "AB12", gomock.Any()).Return(nil)

		svc := services.NewPasswordService(reader, nil, captcha, sender, capsule)

		_, gotUsername, err := svc.RequestReset(context.Background(), "alice@example.com")
		assert.NoError(t, err)
		assert.Equal(t, "alice", gotUsername)
	})

	t.Run("neither username nor valid email", func(t *testing.T) {
		reader := services.NewMockUserReader(ctrl)

		reader.EXPECT().GetByUsername(gomock.Any(), "no such user").Return(nil, nil)

		svc := services.NewPasswordService(reader, nil, nil, nil, nil)

		_, _, err := svc.RequestReset(context.Background(), "no such user")
		assert.ErrorIs(t, err, services.ErrUserNotFound)
	})

	t.Run("valid email but unknown", func(t *testing.T) {
		reader := services.NewMockUserReader(ctrl)

		reader.EXPECT().GetByUsername(gomock.Any(), "ghost@example.com").Return(nil, nil)
		reader.EXPECT().GetByEmail(gomock.Any(), "ghost@example.com").Return(nil, nil)

		svc := services.NewPasswordService(reader, nil, nil, nil, nil)

		_, _, err := svc.RequestReset(context.Background(), "ghost@example.com")
		assert.ErrorIs(t, err, services.ErrUserNotFound)
	})
}

func TestPasswordService_CompleteReset(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name           string
		code           string
		password1      string
		password2      string
		capsule        string
		usernameCookie string
		mockSetup      func(writer *services.MockUserWriter, capsule *services.MockCapsuleIssuer)
		wantErr        error
	}{
		{
			name:           "success",
			code:           "AB12",
			password1:      "newpass",
			password2:      "newpass",
			capsule:        "CAPSULE",
			usernameCookie: "alice",
			mockSetup: func(writer *services.MockUserWriter, capsule *services.MockCapsuleIssuer) {
				capsule.EXPECT().Verify("CAPSULE").Return(sha256hex("AB12"), "alice", nil)
				writer.EXPECT().
					ResetPassword(gomock.Any(), "alice", gomock.Any()).
					DoAndReturn(func(_ context.Context, _ string, hashed string) error {
						return bcrypt.CompareHashAndPassword([]byte(hashed), []byte("newpass"))
					})
			},
		},
		{
			name:           "passwords differ regardless of cookies",
			code:           "AB12",
			password1:      "one",
			password2:      "two",
			capsule:        "",
			usernameCookie: "",
			mockSetup:      func(writer *services.MockUserWriter, capsule *services.MockCapsuleIssuer) {},
			wantErr:        services.ErrPasswordMismatch,
		},
		{
			name:           "cookies missing",
			code:           "AB12",
			password1:      "newpass",
			password2:      "newpass",
			capsule:        "",
			usernameCookie: "",
			mockSetup:      func(writer *services.MockUserWriter, capsule *services.MockCapsuleIssuer) {},
			wantErr:        services.ErrResetStateMissing,
		},
		{
			name:           "expired capsule",
			code:           "AB12",
			password1:      "newpass",
			password2:      "newpass",
			capsule:        "EXPIRED",
			usernameCookie: "alice",
			mockSetup: func(writer *services.MockUserWriter, capsule *services.MockCapsuleIssuer) {
				capsule.EXPECT().Verify("EXPIRED").Return("", "", services.ErrResetStateMissing)
			},
			wantErr: services.ErrResetStateMissing,
		},
		{
			name:           "wrong code",
			code:           "XXXX",
			password1:      "newpass",
			password2:      "newpass",
			capsule:        "CAPSULE",
			usernameCookie: "alice",
			mockSetup: func(writer *services.MockUserWriter, capsule *services.MockCapsuleIssuer) {
				capsule.EXPECT().Verify("CAPSULE").Return(sha256hex("AB12"), "alice", nil)
			},
			wantErr: services.ErrResetCodeWrong,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			writer := services.NewMockUserWriter(ctrl)
			capsule := services.NewMockCapsuleIssuer(ctrl)
			tt.mockSetup(writer, capsule)

			svc := services.NewPasswordService(nil, writer, nil, nil, capsule)

			err := svc.CompleteReset(context.Background(), tt.code, tt.password1, tt.password2, tt.capsule, tt.usernameCookie)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
