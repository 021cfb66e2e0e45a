package workpool

import (
	"sync/atomic"
	"time"
)

// Metrics 包含工作池的运行时指标
type Metrics struct {
	TotalTasks     uint64        // 总提交任务数
	CompletedTasks uint64        // 已完成任务数
	FailedTasks    uint64        // 失败任务数
	CanceledTasks  uint64        // 取消任务数
	AvgProcessTime time.Duration // 平均处理时间
}

type metrics struct {
	total            atomic.Uint64
	completed        atomic.Uint64
	failed           atomic.Uint64
	canceled         atomic.Uint64
	totalProcessTime atomic.Int64
}

func (m *metrics) taskSubmitted() {
	m.total.Add(1)
}

func (m *metrics) taskFinished(status TaskStatus, processingTime time.Duration) {
	switch status {
	case TaskStatusCompleted:
		m.completed.Add(1)
	case TaskStatusFailed:
		m.failed.Add(1)
	case TaskStatusCanceled:
		m.canceled.Add(1)
	}
	m.totalProcessTime.Add(int64(processingTime))
}

// snapshot 返回当前指标的快照
func (m *metrics) snapshot() Metrics {
	s := Metrics{
		TotalTasks:     m.total.Load(),
		CompletedTasks: m.completed.Load(),
		FailedTasks:    m.failed.Load(),
		CanceledTasks:  m.canceled.Load(),
	}
	if finished := s.CompletedTasks + s.FailedTasks + s.CanceledTasks; finished > 0 {
		s.AvgProcessTime = time.Duration(m.totalProcessTime.Load() / int64(finished))
	}
	return s
}

// TaskSuccessRate 计算任务成功率 (0.0-1.0)
func (m Metrics) TaskSuccessRate() float64 {
	total := m.CompletedTasks + m.FailedTasks + m.CanceledTasks
	if total == 0 {
		return 1.0
	}
	return float64(m.CompletedTasks) / float64(total)
}
