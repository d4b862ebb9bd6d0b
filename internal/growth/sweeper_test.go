package growth

import (
	"context"
	"fmt"
	"testing"
	"time"

	gomock "go.uber.org/mock/gomock"
	"go.uber.org/zap"

	"github.com/bdspro/platform/internal/config"
	"github.com/bdspro/platform/internal/domain"
)

func NewMock(t *testing.T) (*Service, *MockProcessor) {
	cfg := &config.Config{GrowthInterval: time.Minute}
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	processor := NewMockProcessor(ctrl)
	service := New(cfg, processor)
	return service, processor
}

func TestService_Start(t *testing.T) {
	service, _ := NewMock(t)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	service.Start(ctx)
	time.Sleep(20 * time.Millisecond)
	cancel()
}

func TestService_processDeposits(t *testing.T) {
	tests := []struct {
		name             string
		mockFindDeposits func(ctx context.Context, limit uint32) ([]domain.Deposit, error)
		mockAddTask      func(ctx context.Context, task Task) error
		depositCount     int
		processedCount   int
	}{
		{
			name: "successfully processes matured deposits",
			mockFindDeposits: func(ctx context.Context, limit uint32) ([]domain.Deposit, error) {
				return []domain.Deposit{
					{ID: 101, UserID: 1, Amount: 100.0},
					{ID: 102, UserID: 2, Amount: 50.0},
				}, nil
			},
			mockAddTask: func(ctx context.Context, task Task) error {
				return task()
			},
			depositCount:   2,
			processedCount: 2,
		},
		{
			name: "fails when fetching deposits",
			mockFindDeposits: func(ctx context.Context, limit uint32) ([]domain.Deposit, error) {
				return nil, fmt.Errorf("failed to fetch deposits for growth sweep")
			},
			depositCount:   0,
			processedCount: 0,
		},
		{
			name: "error in workerPool AddTask",
			mockFindDeposits: func(ctx context.Context, limit uint32) ([]domain.Deposit, error) {
				return []domain.Deposit{
					{ID: 103, UserID: 1, Amount: 100.0},
				}, nil
			},
			mockAddTask: func(ctx context.Context, task Task) error {
				return fmt.Errorf("failed to add task to worker pool")
			},
			depositCount:   1,
			processedCount: 0,
		},
		{
			name: "failed deposit is logged and does not stop the sweep",
			mockFindDeposits: func(ctx context.Context, limit uint32) ([]domain.Deposit, error) {
				return []domain.Deposit{
					{ID: 104, UserID: 1, Amount: 100.0},
					{ID: 105, UserID: 2, Amount: 50.0},
				}, nil
			},
			mockAddTask: func(ctx context.Context, task Task) error {
				return task()
			},
			depositCount:   2,
			processedCount: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			processor := NewMockProcessor(ctrl)
			workerPool := NewMockWorkerPoolI(ctrl)

			processor.EXPECT().
				EligibleDeposits(gomock.Any(), gomock.Any()).
				DoAndReturn(tt.mockFindDeposits).
				Times(1)
			if tt.depositCount > 0 {
				workerPool.EXPECT().
					AddTask(gomock.Any(), gomock.Any()).
					DoAndReturn(tt.mockAddTask).
					Times(tt.depositCount)
			}
			if tt.processedCount > 0 {
				processor.EXPECT().
					ProcessDeposit(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, deposit domain.Deposit) *domain.GrowthResult {
						// Odd-numbered deposits fail; the sweep must carry on regardless.
						if deposit.ID%2 == 1 {
							return &domain.GrowthResult{DepositID: deposit.ID, Success: false, Error: "tx failed"}
						}
						return &domain.GrowthResult{DepositID: deposit.ID, Success: true}
					}).
					Times(tt.processedCount)
			}

			service := &Service{
				processor:  processor,
				workerPool: workerPool,
				limit:      1000,
			}

			logger := zap.NewExample()
			zap.ReplaceGlobals(logger)

			ctx := context.Background()
			service.processDeposits(ctx)
		})
	}
}

func TestService_run_closesPoolOnCancel(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	processor := NewMockProcessor(ctrl)
	workerPool := NewMockWorkerPoolI(ctrl)

	closed := make(chan struct{})
	workerPool.EXPECT().Close().Do(func() { close(closed) }).Times(1)

	service := &Service{
		processor:     processor,
		workerPool:    workerPool,
		limit:         1000,
		sweepInterval: time.Hour,
	}

	ctx, cancel := context.WithCancel(context.Background())
	go service.run(ctx)
	cancel()

	select {
	case <-closed:
	case <-time.After(time.Second):
		t.Fatal("worker pool was not closed on shutdown")
	}
}
