package balanceservice

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/bdspro/platform/internal/domain"
)

func NewMock(t *testing.T) (*Service, *MockUserRepo) {
	ctrl := gomock.NewController(t)
	userRepo := NewMockUserRepo(ctrl)
	service := New(userRepo)
	defer ctrl.Finish()
	return service, userRepo
}

func TestCredit(t *testing.T) {
	service, userRepo := NewMock(t)

	tests := []struct {
		name            string
		userID          int
		amount          float64
		earningDelta    float64
		rewardDelta     float64
		prepareMock     func()
		expectedBalance float64
		expectedError   error
	}{
		{
			name:         "Successful credit",
			userID:       1,
			amount:       100.0,
			earningDelta: 0,
			rewardDelta:  0,
			prepareMock: func() {
				userRepo.EXPECT().GetForUpdate(gomock.Any(), 1).Return(&domain.User{
					ID:             1,
					AccountBalance: 50.0,
					TotalEarning:   10.0,
					Rewards:        5.0,
				}, nil)
				userRepo.EXPECT().UpdateBalances(gomock.Any(), 1, 150.0, 10.0, 5.0).Return(nil)
			},
			expectedBalance: 150.0,
			expectedError:   nil,
		},
		{
			name:         "Credit with earning and reward deltas",
			userID:       7,
			amount:       1.0,
			earningDelta: 1.0,
			rewardDelta:  1.0,
			prepareMock: func() {
				userRepo.EXPECT().GetForUpdate(gomock.Any(), 7).Return(&domain.User{
					ID:             7,
					AccountBalance: 200.0,
					TotalEarning:   20.0,
					Rewards:        2.0,
				}, nil)
				userRepo.EXPECT().UpdateBalances(gomock.Any(), 7, 201.0, 21.0, 3.0).Return(nil)
			},
			expectedBalance: 201.0,
			expectedError:   nil,
		},
		{
			name:   "User not found",
			userID: 99,
			amount: 100.0,
			prepareMock: func() {
				userRepo.EXPECT().GetForUpdate(gomock.Any(), 99).Return(nil, nil)
			},
			expectedBalance: 0,
			expectedError:   ErrUserNotFound,
		},
		{
			name:   "Cannot load user",
			userID: 1,
			amount: 100.0,
			prepareMock: func() {
				userRepo.EXPECT().GetForUpdate(gomock.Any(), 1).Return(nil, errors.New("database error"))
			},
			expectedBalance: 0,
			expectedError:   errors.New("database error"),
		},
		{
			name:   "Cannot persist balances",
			userID: 1,
			amount: 100.0,
			prepareMock: func() {
				userRepo.EXPECT().GetForUpdate(gomock.Any(), 1).Return(&domain.User{ID: 1, AccountBalance: 50.0}, nil)
				userRepo.EXPECT().UpdateBalances(gomock.Any(), 1, 150.0, 0.0, 0.0).Return(errors.New("database error"))
			},
			expectedBalance: 0,
			expectedError:   errors.New("database error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			balance, err := service.Credit(context.Background(), tt.userID, tt.amount, tt.earningDelta, tt.rewardDelta)
			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedBalance, balance)
			}
		})
	}
}

func TestDebit(t *testing.T) {
	service, userRepo := NewMock(t)

	tests := []struct {
		name            string
		userID          int
		amount          float64
		prepareMock     func()
		expectedBalance float64
		expectedError   error
	}{
		{
			name:   "Successful debit",
			userID: 1,
			amount: 30.0,
			prepareMock: func() {
				userRepo.EXPECT().GetForUpdate(gomock.Any(), 1).Return(&domain.User{
					ID:             1,
					AccountBalance: 50.0,
					TotalEarning:   10.0,
					Rewards:        5.0,
				}, nil)
				userRepo.EXPECT().UpdateBalances(gomock.Any(), 1, 20.0, 10.0, 5.0).Return(nil)
			},
			expectedBalance: 20.0,
			expectedError:   nil,
		},
		{
			name:   "Insufficient balance leaves account untouched",
			userID: 1,
			amount: 100.0,
			prepareMock: func() {
				userRepo.EXPECT().GetForUpdate(gomock.Any(), 1).Return(&domain.User{
					ID:             1,
					AccountBalance: 50.0,
				}, nil)
			},
			expectedBalance: 0,
			expectedError:   ErrInsufficientBalance,
		},
		{
			name:   "User not found",
			userID: 99,
			amount: 10.0,
			prepareMock: func() {
				userRepo.EXPECT().GetForUpdate(gomock.Any(), 99).Return(nil, nil)
			},
			expectedBalance: 0,
			expectedError:   ErrUserNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			balance, err := service.Debit(context.Background(), tt.userID, tt.amount)
			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedBalance, balance)
			}
		})
	}
}
