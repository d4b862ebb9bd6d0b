package growth

import (
	"context"
	"sync/atomic"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/bdspro/platform/internal/config"
	"github.com/bdspro/platform/internal/domain"
)

type Processor interface {
	EligibleDeposits(ctx context.Context, limit uint32) ([]domain.Deposit, error)
	ProcessDeposit(ctx context.Context, deposit domain.Deposit) *domain.GrowthResult
}

// Service periodically sweeps matured deposits and hands each one to the
// growth processor through a bounded worker pool. The sweep is cancellable
// between deposits; a single deposit's processing always runs to completion.
type Service struct {
	processor     Processor
	limit         uint32
	workerPool    WorkerPoolI
	sweepInterval time.Duration
}

func New(cfg *config.Config, processor Processor) *Service {
	return &Service{
		processor:     processor,
		limit:         1000,
		workerPool:    NewWorkerPool(10),
		sweepInterval: cfg.GrowthInterval,
	}
}

func (s *Service) Start(ctx context.Context) {
	zap.L().Info("Growth sweeper started", zap.Duration("interval", s.sweepInterval))
	go s.run(ctx)
}

func (s *Service) run(ctx context.Context) {
	ticker := time.NewTicker(s.sweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			zap.L().Info("Context canceled, stopping growth sweeper")
			s.workerPool.Close()
			return
		case <-ticker.C:
			s.processDeposits(ctx)
		}
	}
}

func (s *Service) processDeposits(ctx context.Context) {
	deposits, err := s.processor.EligibleDeposits(ctx, atomic.LoadUint32(&s.limit))
	if err != nil {
		zap.L().Error("Failed to fetch deposits for growth sweep", zap.Error(err))
		return
	}

	// Concurrent payout of the same deposit is guarded inside the
	// processor itself, so dispatch here stays dumb.
	var g errgroup.Group
	for _, deposit := range deposits {
		deposit := deposit

		g.Go(func() error {
			return s.workerPool.AddTask(ctx, func() error {
				result := s.processor.ProcessDeposit(ctx, deposit)
				if !result.Success {
					zap.L().Warn("Growth processing failed for deposit",
						zap.Int("depositID", deposit.ID),
						zap.String("error", result.Error),
					)
				}
				return nil
			})
		})
	}

	if err := g.Wait(); err != nil {
		zap.L().Error("Error dispatching growth sweep", zap.Error(err))
	}
}
