package auth

import (
	"bytes"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/bdspro/platform/internal/domain"
	"github.com/bdspro/platform/internal/service/authservice"
)

func NewMock(t *testing.T) (*AuthHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service)
	defer ctrl.Finish()
	return handler, service
}

func TestRegister(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name         string
		body         string
		prepareMock  func()
		expectedCode int
	}{
		{
			name: "Successful registration",
			body: `{"name":"Alice","email":"alice@example.com","password":"testpassword"}`,
			prepareMock: func() {
				service.EXPECT().
					Register(gomock.Any(), "Alice", "alice@example.com", "testpassword", "").
					Return(&domain.User{ID: 1, ReferralCode: "BDS1A2B3C4D"}, nil)
				service.EXPECT().GenerateToken(1).Return("token", nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Registration with referral code",
			body: `{"name":"Bob","email":"bob@example.com","password":"testpassword","referral_code":"BDSAAAA1111"}`,
			prepareMock: func() {
				service.EXPECT().
					Register(gomock.Any(), "Bob", "bob@example.com", "testpassword", "BDSAAAA1111").
					Return(&domain.User{ID: 2, ReferralCode: "BDS9F8E7D6C"}, nil)
				service.EXPECT().GenerateToken(2).Return("token", nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:         "Invalid request body",
			body:         `{invalid`,
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "Email already registered",
			body: `{"name":"Alice","email":"alice@example.com","password":"testpassword"}`,
			prepareMock: func() {
				service.EXPECT().
					Register(gomock.Any(), "Alice", "alice@example.com", "testpassword", "").
					Return(nil, authservice.ErrEmailTaken)
			},
			expectedCode: http.StatusConflict,
		},
		{
			name: "Internal error",
			body: `{"name":"Alice","email":"alice@example.com","password":"testpassword"}`,
			prepareMock: func() {
				service.EXPECT().
					Register(gomock.Any(), "Alice", "alice@example.com", "testpassword", "").
					Return(nil, errors.New("database error"))
			},
			expectedCode: http.StatusInternalServerError,
		},
		{
			name: "Token generation failure",
			body: `{"name":"Alice","email":"alice@example.com","password":"testpassword"}`,
			prepareMock: func() {
				service.EXPECT().
					Register(gomock.Any(), "Alice", "alice@example.com", "testpassword", "").
					Return(&domain.User{ID: 1}, nil)
				service.EXPECT().GenerateToken(1).Return("", errors.New("signing error"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			req := httptest.NewRequest(http.MethodPost, "/api/user/register", bytes.NewBufferString(tt.body))
			w := httptest.NewRecorder()
			handler.Register(w, req)

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedCode == http.StatusOK {
				assert.Equal(t, "Bearer token", w.Header().Get("Authorization"))
			}
		})
	}
}

func TestLogin(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name         string
		body         string
		prepareMock  func()
		expectedCode int
	}{
		{
			name: "Successful login",
			body: `{"email":"alice@example.com","password":"testpassword"}`,
			prepareMock: func() {
				service.EXPECT().
					Authenticate(gomock.Any(), "alice@example.com", "testpassword").
					Return(&domain.User{ID: 1}, nil)
				service.EXPECT().GenerateToken(1).Return("token", nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:         "Invalid request body",
			body:         `{invalid`,
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "Invalid credentials",
			body: `{"email":"alice@example.com","password":"wrong"}`,
			prepareMock: func() {
				service.EXPECT().
					Authenticate(gomock.Any(), "alice@example.com", "wrong").
					Return(nil, errors.New("invalid credentials"))
			},
			expectedCode: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			req := httptest.NewRequest(http.MethodPost, "/api/user/login", bytes.NewBufferString(tt.body))
			w := httptest.NewRecorder()
			handler.Login(w, req)

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedCode == http.StatusOK {
				assert.Equal(t, "Bearer token", w.Header().Get("Authorization"))
			}
		})
	}
}
