package settlement

import (
	"context"
	"fmt"
	"sync"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"payhub/pkg/logger"
)

// Worker 结算工作器组
// 从队列消费结算任务并交给 Settler 执行。
// 任务执行失败只记录日志、不重试，支付保持 processing，
// 由客户端的轮询超时兜底
type Worker struct {
	source      TaskSource
	settler     *Settler
	stopChan    chan struct{}
	workerCount int
	metrics     *QueueMetrics
	wg          sync.WaitGroup
	config      WorkerConfig
}

// TaskSource 工作器消费的任务来源
// 队列为空时返回 redis.Nil
type TaskSource interface {
	PopTask(ctx context.Context) (*Task, error)
}

// WorkerConfig 工作器配置
type WorkerConfig struct {
	WorkerCount     int           // 并发工作器数量
	ShutdownTimeout time.Duration // 关闭超时时间
}

// NewWorker 创建新的工作器组
func NewWorker(source TaskSource, settler *Settler, config WorkerConfig) *Worker {
	if config.WorkerCount <= 0 {
		config.WorkerCount = 10 // 默认工作器数量
	}
	if config.ShutdownTimeout <= 0 {
		config.ShutdownTimeout = 30 * time.Second
	}

	return &Worker{
		source:      source,
		settler:     settler,
		stopChan:    make(chan struct{}),
		workerCount: config.WorkerCount,
		metrics:     NewQueueMetrics(),
		config:      config,
	}
}

// Start 启动工作器组
func (w *Worker) Start() {
	for i := 0; i < w.workerCount; i++ {
		w.wg.Add(1)
		go w.startWorker(i)
	}
}

// startWorker 启动单个工作器
func (w *Worker) startWorker(id int) {
	defer w.wg.Done()

	logger.InfoString("Settlement", "Worker", fmt.Sprintf("Worker %d started", id))

	for {
		select {
		case <-w.stopChan:
			logger.InfoString("Settlement", "Worker", fmt.Sprintf("Worker %d stopping", id))
			return
		default:
			if err := w.processNextTask(); err != nil {
				logger.ErrorString("Settlement", "Worker", fmt.Sprintf("Worker %d error: %v", id, err))
				time.Sleep(time.Second) // 错误恢复延迟
			}
		}
	}
}

// processNextTask 取出并处理下一个结算任务
func (w *Worker) processNextTask() error {
	start := time.Now()
	defer func() {
		w.metrics.RecordProcessingTime(time.Since(start))
	}()

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	task, err := w.source.PopTask(ctx)
	if err != nil {
		if err == goredis.Nil {
			return nil // 空队列，继续轮询
		}
		return fmt.Errorf("pop task error: %w", err)
	}

	return w.handleTask(ctx, task)
}

// handleTask 处理单个结算任务
func (w *Worker) handleTask(ctx context.Context, task *Task) error {
	if err := w.settler.Settle(ctx, task); err != nil {
		w.metrics.RecordError(OpProcess)
		// 不重试，支付停留在 processing 状态
		return fmt.Errorf("settle task error: %w", err)
	}

	w.metrics.RecordSuccess(OpProcess)
	return nil
}

// Stop 优雅关闭工作器组
func (w *Worker) Stop() {
	close(w.stopChan)

	// 等待所有工作器完成
	done := make(chan struct{})
	go func() {
		w.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		logger.InfoString("Settlement", "Stop", "All workers stopped gracefully")
	case <-time.After(w.config.ShutdownTimeout):
		logger.WarnString("Settlement", "Stop", "Worker shutdown timed out")
	}
}
