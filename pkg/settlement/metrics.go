package settlement

import (
	"sync"
	"sync/atomic"
	"time"
)

// MetricOperation 定义指标操作类型
type MetricOperation string

const (
	OpPush    MetricOperation = "push"
	OpProcess MetricOperation = "process"
)

// LatencyStats 延迟统计，record 会并发调用
type LatencyStats struct {
	mu    sync.Mutex
	count int64
	total time.Duration
	min   time.Duration
	max   time.Duration
}

// QueueMetrics 队列性能指标收集器
type QueueMetrics struct {
	totalTasks      atomic.Int64
	successfulTasks atomic.Int64
	failedTasks     atomic.Int64
	processingTimes *sync.Map // 处理时间统计

	// 延迟统计
	pushLatency *LatencyStats

	// 队列状态
	queueLength     atomic.Int64
	peakQueueLength atomic.Int64
}

// NewQueueMetrics 创建新的指标收集器
func NewQueueMetrics() *QueueMetrics {
	return &QueueMetrics{
		processingTimes: &sync.Map{},
		pushLatency:     &LatencyStats{},
	}
}

// RecordSuccess 记录成功操作
func (m *QueueMetrics) RecordSuccess(op MetricOperation) {
	m.successfulTasks.Add(1)
	m.totalTasks.Add(1)
}

// RecordError 记录失败操作
func (m *QueueMetrics) RecordError(op MetricOperation) {
	m.failedTasks.Add(1)
	m.totalTasks.Add(1)
}

// RecordProcessingTime 记录任务处理时间
func (m *QueueMetrics) RecordProcessingTime(duration time.Duration) {
	m.processingTimes.Store(time.Now().Unix(), duration.Milliseconds())

	// 更新峰值队列长度
	currentLength := m.queueLength.Load()
	if currentLength > m.peakQueueLength.Load() {
		m.peakQueueLength.Store(currentLength)
	}
}

// RecordPushLatency 记录推送延迟
func (m *QueueMetrics) RecordPushLatency(d time.Duration) {
	if m.pushLatency == nil {
		m.pushLatency = &LatencyStats{}
	}
	m.pushLatency.record(d)
}

// record 记录延迟数据
func (s *LatencyStats) record(d time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.count++
	s.total += d

	// 更新最小值
	if s.min == 0 || d < s.min {
		s.min = d
	}

	// 更新最大值
	if d > s.max {
		s.max = d
	}
}
