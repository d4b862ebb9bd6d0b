package withdrawals

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/bdspro/platform/internal/domain"
	"github.com/bdspro/platform/internal/dto"
	"github.com/bdspro/platform/internal/service/withdrawalservice"
	"github.com/bdspro/platform/pkg/auth"
)

func NewMock(t *testing.T) (*WithdrawalHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service)
	defer ctrl.Finish()
	return handler, service
}

func TestProcessWithdrawal(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name         string
		body         string
		prepareMock  func()
		expectedCode int
		expectedBody *dto.WithdrawalResponseDTO
	}{
		{
			name: "Successful withdrawal",
			body: `{"amount":100,"address":"TXk4G1zvN8wq2hP9rLm5eYc3dAb7fJh6Qs"}`,
			prepareMock: func() {
				service.EXPECT().
					ProcessWithdrawal(gomock.Any(), 1, 100.0, "TXk4G1zvN8wq2hP9rLm5eYc3dAb7fJh6Qs", "").
					Return(&domain.WithdrawalResult{
						UserID:        1,
						Amount:        100.0,
						NewBalance:    400.0,
						TransactionID: 77,
					}, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: &dto.WithdrawalResponseDTO{
				Amount:        100.0,
				NewBalance:    400.0,
				TransactionID: 77,
				Status:        "pending",
			},
		},
		{
			name:         "Invalid request body",
			body:         `{invalid`,
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "Amount below minimum",
			body: `{"amount":5,"address":"TXk4G1zvN8wq2hP9rLm5eYc3dAb7fJh6Qs"}`,
			prepareMock: func() {
				service.EXPECT().
					ProcessWithdrawal(gomock.Any(), 1, 5.0, "TXk4G1zvN8wq2hP9rLm5eYc3dAb7fJh6Qs", "").
					Return(nil, withdrawalservice.ErrBelowMinimum)
			},
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "Invalid address",
			body: `{"amount":100,"address":"short"}`,
			prepareMock: func() {
				service.EXPECT().
					ProcessWithdrawal(gomock.Any(), 1, 100.0, "short", "").
					Return(nil, withdrawalservice.ErrInvalidAddress)
			},
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "Insufficient balance",
			body: `{"amount":100,"address":"TXk4G1zvN8wq2hP9rLm5eYc3dAb7fJh6Qs"}`,
			prepareMock: func() {
				service.EXPECT().
					ProcessWithdrawal(gomock.Any(), 1, 100.0, "TXk4G1zvN8wq2hP9rLm5eYc3dAb7fJh6Qs", "").
					Return(nil, withdrawalservice.ErrInsufficientBalance)
			},
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "User not found",
			body: `{"amount":100,"address":"TXk4G1zvN8wq2hP9rLm5eYc3dAb7fJh6Qs"}`,
			prepareMock: func() {
				service.EXPECT().
					ProcessWithdrawal(gomock.Any(), 1, 100.0, "TXk4G1zvN8wq2hP9rLm5eYc3dAb7fJh6Qs", "").
					Return(nil, withdrawalservice.ErrUserNotFound)
			},
			expectedCode: http.StatusNotFound,
		},
		{
			name: "Internal error",
			body: `{"amount":100,"address":"TXk4G1zvN8wq2hP9rLm5eYc3dAb7fJh6Qs"}`,
			prepareMock: func() {
				service.EXPECT().
					ProcessWithdrawal(gomock.Any(), 1, 100.0, "TXk4G1zvN8wq2hP9rLm5eYc3dAb7fJh6Qs", "").
					Return(nil, errors.New("database error"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			req := httptest.NewRequest(http.MethodPost, "/api/withdrawals", bytes.NewBufferString(tt.body))
			req = req.WithContext(context.WithValue(req.Context(), auth.UserIDKey, 1))
			w := httptest.NewRecorder()
			handler.ProcessWithdrawal(w, req)

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedBody != nil {
				var got dto.WithdrawalResponseDTO
				assert.NoError(t, json.NewDecoder(w.Body).Decode(&got))
				assert.Equal(t, *tt.expectedBody, got)
			}
		})
	}
}
