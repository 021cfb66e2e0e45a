package workpool

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestWorkPool_StartAndShutdown(t *testing.T) {
	wp := New(WithWorkers(2))
	assert.Equal(t, StatusIdle, wp.Status())

	require.NoError(t, wp.Start())
	assert.Equal(t, StatusRunning, wp.Status())
	assert.Error(t, wp.Start())

	require.NoError(t, wp.Shutdown(context.Background()))
	assert.Equal(t, StatusStopped, wp.Status())

	_, err := wp.Submit(context.Background(), "late", func(context.Context) error { return nil })
	assert.ErrorIs(t, err, ErrNotRunning)
}

func TestWorkPool_ExecutesAllTasks(t *testing.T) {
	wp := New(WithWorkers(3), WithQueueCapacity(2))
	require.NoError(t, wp.Start())

	var count atomic.Int32
	var handles []*Handle
	for i := 0; i < 20; i++ {
		h, err := wp.Submit(context.Background(), "inc", func(context.Context) error {
			count.Add(1)
			return nil
		})
		require.NoError(t, err)
		assert.NotEmpty(t, h.ID())
		handles = append(handles, h)
	}

	require.NoError(t, wp.Shutdown(context.Background()))
	assert.Equal(t, int32(20), count.Load())

	for _, h := range handles {
		assert.Equal(t, TaskStatusCompleted, h.Status())
		assert.NoError(t, h.Err())
	}

	m := wp.Metrics()
	assert.Equal(t, uint64(20), m.TotalTasks)
	assert.Equal(t, uint64(20), m.CompletedTasks)
	assert.Equal(t, 1.0, m.TaskSuccessRate())
}

func TestWorkPool_TaskFailure(t *testing.T) {
	wp := New(WithWorkers(1))
	require.NoError(t, wp.Start())

	boom := errors.New("boom")
	h, err := wp.Submit(context.Background(), "fail", func(context.Context) error { return boom })
	require.NoError(t, err)

	assert.ErrorIs(t, h.Wait(context.Background()), boom)
	assert.Equal(t, TaskStatusFailed, h.Status())
	assert.Equal(t, "fail", h.Name())

	require.NoError(t, wp.Shutdown(context.Background()))
	m := wp.Metrics()
	assert.Equal(t, uint64(1), m.FailedTasks)
	assert.Equal(t, 0.0, m.TaskSuccessRate())
}

func TestWorkPool_ShutdownDeadlineCancelsTasks(t *testing.T) {
	wp := New(WithWorkers(1))
	require.NoError(t, wp.Start())

	started := make(chan struct{})
	slow, err := wp.Submit(context.Background(), "slow", func(ctx context.Context) error {
		close(started)
		<-ctx.Done()
		return ctx.Err()
	})
	require.NoError(t, err)

	queued, err := wp.Submit(context.Background(), "queued", func(context.Context) error { return nil })
	require.NoError(t, err)

	<-started
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	assert.ErrorIs(t, wp.Shutdown(ctx), context.DeadlineExceeded)
	assert.Equal(t, TaskStatusCanceled, slow.Status())
	assert.Equal(t, TaskStatusCanceled, queued.Status())
	assert.Equal(t, uint64(2), wp.Metrics().CanceledTasks)
}

func TestRun(t *testing.T) {
	var ran atomic.Int32
	tasks := map[string]Task{
		"a": func(context.Context) error { ran.Add(1); return nil },
		"b": func(context.Context) error { ran.Add(1); return errors.New("bad b") },
		"c": func(context.Context) error { ran.Add(1); return nil },
	}

	err := Run(context.Background(), tasks, WithWorkers(2))
	assert.EqualError(t, err, "b: bad b")
	assert.Equal(t, int32(3), ran.Load())

	assert.NoError(t, Run(context.Background(), nil))
}

func TestStatusStrings(t *testing.T) {
	assert.Equal(t, "ShuttingDown", StatusShuttingDown.String())
	assert.Equal(t, "Unknown", Status(42).String())
	assert.Equal(t, "Canceled", TaskStatusCanceled.String())
	assert.Equal(t, "Unknown", TaskStatus(42).String())
}
