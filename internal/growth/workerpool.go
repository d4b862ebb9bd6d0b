package growth

import (
	"context"
	"errors"
	"sync"

	"go.uber.org/zap"
)

type WorkerPoolI interface {
	AddTask(ctx context.Context, task Task) error
	Close()
}

type Task func() error

var ErrPoolClosed = errors.New("worker pool is closed")

// WorkerPool runs tasks on a fixed set of workers. After Close, workers
// finish their current task and stop; anything still queued is dropped.
type WorkerPool struct {
	tasks chan Task
	done  chan struct{}
	once  sync.Once
	wg    sync.WaitGroup
}

func NewWorkerPool(size int) *WorkerPool {
	wp := &WorkerPool{
		tasks: make(chan Task, size),
		done:  make(chan struct{}),
	}

	wp.wg.Add(size)
	for i := 0; i < size; i++ {
		go wp.worker()
	}
	return wp
}

func (wp *WorkerPool) worker() {
	defer wp.wg.Done()
	for {
		select {
		case <-wp.done:
			return
		case task := <-wp.tasks:
			if err := task(); err != nil {
				zap.L().Error("Task execution failed", zap.Error(err))
			}
		}
	}
}

func (wp *WorkerPool) AddTask(ctx context.Context, task Task) error {
	select {
	case <-wp.done:
		return ErrPoolClosed
	case <-ctx.Done():
		return ctx.Err()
	case wp.tasks <- task:
		return nil
	}
}

// Close stops the pool and waits for the workers to exit. Safe to call
// more than once.
func (wp *WorkerPool) Close() {
	wp.once.Do(func() {
		close(wp.done)
	})
	wp.wg.Wait()
}
