package workpool

import (
	"context"
	"errors"
	"sync"
	"time"
)

// TaskStatus 表示任务的当前状态
type TaskStatus int

const (
	// TaskStatusPending 表示任务正在等待执行
	TaskStatusPending TaskStatus = iota
	// TaskStatusRunning 表示任务正在执行中
	TaskStatusRunning
	// TaskStatusCompleted 表示任务已成功完成
	TaskStatusCompleted
	// TaskStatusFailed 表示任务执行失败
	TaskStatusFailed
	// TaskStatusCanceled 表示任务被取消
	TaskStatusCanceled
)

// String 返回任务状态的字符串表示
func (s TaskStatus) String() string {
	switch s {
	case TaskStatusPending:
		return "Pending"
	case TaskStatusRunning:
		return "Running"
	case TaskStatusCompleted:
		return "Completed"
	case TaskStatusFailed:
		return "Failed"
	case TaskStatusCanceled:
		return "Canceled"
	default:
		return "Unknown"
	}
}

// Task 是工作池中执行的任务
type Task func(ctx context.Context) error

// Handle 代表一个已提交的任务
type Handle struct {
	id    string
	name  string
	task  Task
	ctx   context.Context
	done  chan struct{}
	start time.Time
	end   time.Time

	status TaskStatus
	err    error
	mu     sync.RWMutex
}

func newHandle(ctx context.Context, id, name string, task Task) *Handle {
	return &Handle{
		id:     id,
		name:   name,
		task:   task,
		ctx:    ctx,
		done:   make(chan struct{}),
		status: TaskStatusPending,
	}
}

// ID 返回任务的唯一标识符
func (h *Handle) ID() string {
	return h.id
}

// Name 返回提交任务时给出的名称
func (h *Handle) Name() string {
	return h.name
}

// Status 返回任务的当前状态
func (h *Handle) Status() TaskStatus {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.status
}

// Err 等待任务结束并返回其错误
func (h *Handle) Err() error {
	<-h.done
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.err
}

// Wait 等待任务完成，ctx 结束时提前返回
func (h *Handle) Wait(ctx context.Context) error {
	select {
	case <-h.done:
		return h.Err()
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Duration 返回任务的执行时间
func (h *Handle) Duration() time.Duration {
	h.mu.RLock()
	defer h.mu.RUnlock()

	if h.start.IsZero() {
		return 0
	}
	if h.end.IsZero() {
		return time.Since(h.start)
	}
	return h.end.Sub(h.start)
}

func (h *Handle) setRunning() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.status = TaskStatusRunning
	h.start = time.Now()
}

func (h *Handle) setCompleted(err error) TaskStatus {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.end = time.Now()
	h.err = err

	switch {
	case errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded):
		h.status = TaskStatusCanceled
	case err != nil:
		h.status = TaskStatusFailed
	default:
		h.status = TaskStatusCompleted
	}

	close(h.done)
	return h.status
}
