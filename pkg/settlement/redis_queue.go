package settlement

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"
	"golang.org/x/time/rate"

	"payhub/pkg/config"
	"payhub/pkg/redis"
)

// QueueService Redis 结算任务队列
// 支付受理后任务入队，由后台 Worker 消费
type QueueService struct {
	client      *redis.RedisClient
	prefix      string
	rateLimiter *rate.Limiter
	metrics     *QueueMetrics
}

// NewQueueService 创建新的队列服务实例
func NewQueueService() *QueueService {
	rateLimit := config.GetInt("queue.rate_limit", 1000)
	burst := config.GetInt("queue.rate_burst", rateLimit)

	return &QueueService{
		client:      redis.GetRedis(redis.QueueDB),
		prefix:      config.GetString("redis.queue_prefix", "payhub:settlement"),
		rateLimiter: rate.NewLimiter(rate.Limit(rateLimit), burst),
		metrics:     NewQueueMetrics(),
	}
}

// PushTask 将结算任务推送到队列
// 支持限流和监控指标收集
func (q *QueueService) PushTask(ctx context.Context, task *Task) error {
	// 应用限流
	if err := q.rateLimiter.Wait(ctx); err != nil {
		return fmt.Errorf("rate limit exceeded: %w", err)
	}

	// 开始计时
	start := time.Now()
	defer func() {
		if q.metrics != nil {
			q.metrics.RecordPushLatency(time.Since(start))
		}
	}()

	// 序列化任务
	taskJSON, err := json.Marshal(task)
	if err != nil {
		q.metrics.RecordError(OpPush)
		return fmt.Errorf("failed to marshal task: %w", err)
	}

	key := fmt.Sprintf("%s:tasks", q.prefix)
	if err := q.client.Client.LPush(ctx, key, taskJSON).Err(); err != nil {
		q.metrics.RecordError(OpPush)
		return fmt.Errorf("failed to push task: %w", err)
	}

	q.metrics.RecordSuccess(OpPush)
	return nil
}

// PopTask 从队列中阻塞获取任务
// 队列为空时最多阻塞 5 秒后返回 redis.Nil，调用方自行决定是否继续轮询
func (q *QueueService) PopTask(ctx context.Context) (*Task, error) {
	key := fmt.Sprintf("%s:tasks", q.prefix)
	result, err := q.client.Client.BRPop(ctx, 5*time.Second, key).Result()
	if err != nil {
		if err == goredis.Nil {
			return nil, err
		}
		return nil, fmt.Errorf("failed to pop task from queue: %w", err)
	}

	var task Task
	if err := json.Unmarshal([]byte(result[1]), &task); err != nil {
		return nil, fmt.Errorf("failed to unmarshal task: %w", err)
	}

	return &task, nil
}

// Length 当前队列长度
func (q *QueueService) Length(ctx context.Context) (int64, error) {
	key := fmt.Sprintf("%s:tasks", q.prefix)
	return q.client.Client.LLen(ctx, key).Result()
}

// Ping 检查队列后端连接
func (q *QueueService) Ping(ctx context.Context) error {
	return q.client.Client.Ping(ctx).Err()
}
