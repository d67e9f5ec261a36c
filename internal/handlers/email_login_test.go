package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/mshulgin/go-account-service/internal/services"
)

func TestEmailCaptchaHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockEmailLoginer(ctrl)

	tests := []struct {
		name         string
		inputBody    interface{}
		mockSetup    func()
		expectedCode int
		expectCookie bool
	}{
		{
			name:      "success",
			inputBody: EmailCaptchaRequest{Email: "john@example.com"},
			mockSetup: func() {
				mockSvc.EXPECT().
					SendLoginCode(gomock.Any(), "john@example.com").
					Return("lookup-id-1", nil)
			},
			expectedCode: http.StatusOK,
			expectCookie: true,
		},
		{
			name:      "unknown email",
			inputBody: EmailCaptchaRequest{Email: "ghost@example.com"},
			mockSetup: func() {
				mockSvc.EXPECT().
					SendLoginCode(gomock.Any(), "ghost@example.com").
					Return("", services.ErrUserNotFound)
			},
			expectedCode: http.StatusNotFound,
		},
		{
			name:      "locked account",
			inputBody: EmailCaptchaRequest{Email: "john@example.com"},
			mockSetup: func() {
				mockSvc.EXPECT().
					SendLoginCode(gomock.Any(), "john@example.com").
					Return("", services.ErrUserInactive)
			},
			expectedCode: http.StatusForbidden,
		},
		{
			name:         "invalid JSON",
			inputBody:    "{invalid json}",
			mockSetup:    func() {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:      "internal error",
			inputBody: EmailCaptchaRequest{Email: "john@example.com"},
			mockSetup: func() {
				mockSvc.EXPECT().
					SendLoginCode(gomock.Any(), "john@example.com").
					Return("", errors.New("smtp down"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()

			var bodyBytes []byte
			switch v := tt.inputBody.(type) {
			case string:
				bodyBytes = []byte(v)
			default:
				bodyBytes, _ = json.Marshal(v)
			}

			req := httptest.NewRequest(http.MethodPost, "/login/email/captcha", bytes.NewReader(bodyBytes))
			w := httptest.NewRecorder()

			handler := NewEmailCaptchaHandler(mockSvc, "app_email_login_id", 300)
			handler.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedCode, w.Code)

			var lookupCookie *http.Cookie
			for _, c := range w.Result().Cookies() {
				if c.Name == "app_email_login_id" {
					lookupCookie = c
				}
			}
			if tt.expectCookie {
				assert.NotNil(t, lookupCookie)
				assert.Equal(t, "lookup-id-1", lookupCookie.Value)
				assert.Equal(t, 300, lookupCookie.MaxAge)
			} else {
				assert.Nil(t, lookupCookie)
			}
		})
	}
}

func TestEmailLoginHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockEmailLoginer(ctrl)

	tests := []struct {
		name         string
		inputBody    interface{}
		cookieValue  string
		mockSetup    func()
		expectedCode int
		expectedBody interface{}
	}{
		{
			name:        "success",
			inputBody:   EmailLoginRequest{Email: "john@example.com", Code: "A1B2"},
			cookieValue: "lookup-id-1",
			mockSetup: func() {
				mockSvc.EXPECT().
					LoginWithEmailCode(gomock.Any(), "john@example.com", "A1B2", "lookup-id-1").
					Return("JWT_TOKEN", false, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: &TokenResponse{
				Msg:         "success",
				AccessToken: "JWT_TOKEN",
				TokenType:   "Bearer",
			},
		},
		{
			name:      "missing lookup cookie",
			inputBody: EmailLoginRequest{Email: "john@example.com", Code: "A1B2"},
			mockSetup: func() {
				mockSvc.EXPECT().
					LoginWithEmailCode(gomock.Any(), "john@example.com", "A1B2", "").
					Return("", false, services.ErrCodeNotRequested)
			},
			expectedCode: http.StatusForbidden,
			expectedBody: &ErrorResponse{Error: "No login code was requested"},
		},
		{
			name:        "expired code",
			inputBody:   EmailLoginRequest{Email: "john@example.com", Code: "A1B2"},
			cookieValue: "lookup-id-1",
			mockSetup: func() {
				mockSvc.EXPECT().
					LoginWithEmailCode(gomock.Any(), "john@example.com", "A1B2", "lookup-id-1").
					Return("", false, services.ErrCodeExpired)
			},
			expectedCode: http.StatusForbidden,
			expectedBody: &ErrorResponse{Error: "Login code expired, request a new one"},
		},
		{
			name:        "wrong code",
			inputBody:   EmailLoginRequest{Email: "john@example.com", Code: "ZZZZ"},
			cookieValue: "lookup-id-1",
			mockSetup: func() {
				mockSvc.EXPECT().
					LoginWithEmailCode(gomock.Any(), "john@example.com", "ZZZZ", "lookup-id-1").
					Return("", false, services.ErrCodeIncorrect)
			},
			expectedCode: http.StatusPreconditionFailed,
			expectedBody: &ErrorResponse{Error: "Wrong login code"},
		},
		{
			name:        "unknown email",
			inputBody:   EmailLoginRequest{Email: "ghost@example.com", Code: "A1B2"},
			cookieValue: "lookup-id-1",
			mockSetup: func() {
				mockSvc.EXPECT().
					LoginWithEmailCode(gomock.Any(), "ghost@example.com", "A1B2", "lookup-id-1").
					Return("", false, services.ErrUserNotFound)
			},
			expectedCode: http.StatusNotFound,
			expectedBody: &ErrorResponse{Error: "Email is not registered"},
		},
		{
			name:        "internal error",
			inputBody:   EmailLoginRequest{Email: "john@example.com", Code: "A1B2"},
			cookieValue: "lookup-id-1",
			mockSetup: func() {
				mockSvc.EXPECT().
					LoginWithEmailCode(gomock.Any(), "john@example.com", "A1B2", "lookup-id-1").
					Return("", false, errors.New("redis down"))
			},
			expectedCode: http.StatusInternalServerError,
			expectedBody: &ErrorResponse{Error: "Internal server error"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()

			bodyBytes, _ := json.Marshal(tt.inputBody)
			req := httptest.NewRequest(http.MethodPost, "/login/email", bytes.NewReader(bodyBytes))
			if tt.cookieValue != "" {
				req.AddCookie(&http.Cookie{Name: "app_email_login_id", Value: tt.cookieValue})
			}
			w := httptest.NewRecorder()

			handler := NewEmailLoginHandler(mockSvc, "app_email_login_id")
			handler.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedCode, w.Code)

			var respBody interface{}
			switch tt.expectedCode {
			case http.StatusOK:
				respBody = &TokenResponse{}
			default:
				respBody = &ErrorResponse{}
			}
			assert.NoError(t, decodeBody(w, respBody))
			assert.Equal(t, tt.expectedBody, respBody)
		})
	}
}
