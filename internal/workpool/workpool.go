// Package workpool 提供固定大小的工作池，用于并发执行快照读写等任务
package workpool

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ErrNotRunning 表示工作池未在运行
var ErrNotRunning = errors.New("work pool is not running")

// Status 工作池的状态
type Status int

const (
	// StatusIdle 空闲状态
	StatusIdle Status = iota
	// StatusRunning 运行状态
	StatusRunning
	// StatusShuttingDown 正在关闭
	StatusShuttingDown
	// StatusStopped 已停止
	StatusStopped
)

// String 返回工作池状态的字符串表示
func (s Status) String() string {
	switch s {
	case StatusIdle:
		return "Idle"
	case StatusRunning:
		return "Running"
	case StatusShuttingDown:
		return "ShuttingDown"
	case StatusStopped:
		return "Stopped"
	default:
		return "Unknown"
	}
}

// WorkPool 管理一组工作协程，处理提交的任务
type WorkPool struct {
	config Config

	// 任务队列
	tasks chan *Handle

	// 状态控制，Submit 持有读锁发送任务，Shutdown 持有写锁关闭队列
	status     Status
	statusLock sync.RWMutex

	workerWg sync.WaitGroup
	metrics  metrics

	// 工作池上下文，强制关闭时取消所有任务
	ctx    context.Context
	cancel context.CancelFunc
}

// New 创建一个新的工作池
func New(options ...Option) *WorkPool {
	config := DefaultConfig()
	for _, option := range options {
		option(&config)
	}

	ctx, cancel := context.WithCancel(context.Background())

	return &WorkPool{
		config: config,
		tasks:  make(chan *Handle, config.queueCapacity),
		status: StatusIdle,
		ctx:    ctx,
		cancel: cancel,
	}
}

// Start 启动工作池，开始处理任务
func (wp *WorkPool) Start() error {
	wp.statusLock.Lock()
	defer wp.statusLock.Unlock()

	if wp.status != StatusIdle {
		return fmt.Errorf("work pool cannot start, current status: %s", wp.status)
	}
	wp.status = StatusRunning

	for i := 0; i < wp.config.workers; i++ {
		wp.workerWg.Add(1)
		go wp.runWorker()
	}

	wp.config.logger.Debug("work pool started", zap.Int("workers", wp.config.workers))
	return nil
}

// Submit 提交一个任务，队列满时阻塞直到有空位或 ctx 结束
func (wp *WorkPool) Submit(ctx context.Context, name string, task Task) (*Handle, error) {
	wp.statusLock.RLock()
	defer wp.statusLock.RUnlock()

	if wp.status != StatusRunning {
		return nil, fmt.Errorf("%w, current status: %s", ErrNotRunning, wp.status)
	}

	h := newHandle(wp.ctx, uuid.New().String(), name, task)

	select {
	case wp.tasks <- h:
	case <-ctx.Done():
		return nil, ctx.Err()
	}

	wp.metrics.taskSubmitted()
	wp.config.logger.Debug("task submitted", zap.String("id", h.id), zap.String("name", name))
	return h, nil
}

// Shutdown 关闭任务队列并等待已提交的任务完成
// ctx 结束时取消剩余任务并返回 ctx 的错误
func (wp *WorkPool) Shutdown(ctx context.Context) error {
	wp.statusLock.Lock()
	if wp.status != StatusRunning {
		wp.status = StatusStopped
		wp.statusLock.Unlock()
		wp.cancel()
		return nil
	}
	wp.status = StatusShuttingDown
	close(wp.tasks)
	wp.statusLock.Unlock()

	doneCh := make(chan struct{})
	go func() {
		wp.workerWg.Wait()
		close(doneCh)
	}()

	var err error
	select {
	case <-doneCh:
	case <-ctx.Done():
		wp.cancel()
		<-doneCh
		err = ctx.Err()
		wp.config.logger.Warn("work pool shutdown deadline exceeded", zap.Error(err))
	}

	wp.cancel()

	wp.statusLock.Lock()
	wp.status = StatusStopped
	wp.statusLock.Unlock()

	m := wp.metrics.snapshot()
	wp.config.logger.Debug("work pool stopped",
		zap.Uint64("completed", m.CompletedTasks),
		zap.Uint64("failed", m.FailedTasks),
		zap.Uint64("canceled", m.CanceledTasks))
	return err
}

// Status 返回工作池的当前状态
func (wp *WorkPool) Status() Status {
	wp.statusLock.RLock()
	defer wp.statusLock.RUnlock()
	return wp.status
}

// Metrics 返回工作池的指标快照
func (wp *WorkPool) Metrics() Metrics {
	return wp.metrics.snapshot()
}

// runWorker 工作协程主循环，队列关闭后退出
func (wp *WorkPool) runWorker() {
	defer wp.workerWg.Done()

	for h := range wp.tasks {
		h.setRunning()

		// 强制关闭后不再执行剩余任务
		err := h.ctx.Err()
		if err == nil {
			err = h.task(h.ctx)
		}

		status := h.setCompleted(err)
		wp.metrics.taskFinished(status, h.Duration())

		if err != nil {
			wp.config.logger.Debug("task finished with error",
				zap.String("id", h.id),
				zap.String("name", h.name),
				zap.Stringer("status", status),
				zap.Error(err))
		}
	}
}

// Run 使用临时工作池执行一组任务，返回所有任务错误的合并结果
func Run(ctx context.Context, tasks map[string]Task, options ...Option) error {
	wp := New(options...)
	if err := wp.Start(); err != nil {
		return err
	}

	handles := make([]*Handle, 0, len(tasks))
	var errs []error
	for name, task := range tasks {
		h, err := wp.Submit(ctx, name, task)
		if err != nil {
			errs = append(errs, err)
			break
		}
		handles = append(handles, h)
	}

	if err := wp.Shutdown(ctx); err != nil {
		errs = append(errs, err)
	}

	for _, h := range handles {
		if err := h.Err(); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", h.name, err))
		}
	}
	return errors.Join(errs...)
}
