package bootstrap

import (
	"context"
	"time"

	"payhub/app/repositories"
	"payhub/pkg/config"
	"payhub/pkg/logger"
	"payhub/pkg/redis"
	"payhub/pkg/settlement"
	"payhub/pkg/webhook"
)

// settlementWorker 运行中的工作器组，关闭时需要优雅停止
var settlementWorker *settlement.Worker

// SetupQueue 启动结算工作器组
// 支付受理后任务入队，这里的 Worker 负责延迟结算并写入终态
func SetupQueue() {
	if redis.Manager == nil {
		logger.ErrorString("Queue", "Setup", "Redis manager not initialized")
		return
	}

	queueService := settlement.NewQueueService()

	settler := settlement.NewSettler(
		repositories.NewPaymentRepository(),
		settlement.NewOutcomeSourceFromConfig(),
		settlement.NewDelaySourceFromConfig(),
	)

	// 终态回调：投递商户 webhook
	settler.OnTerminal(notifyMerchant)

	worker := settlement.NewWorker(queueService, settler, settlement.WorkerConfig{
		WorkerCount:     config.GetInt("queue.worker_count", 10),
		ShutdownTimeout: 30 * time.Second,
	})

	worker.Start()
	settlementWorker = worker

	logger.InfoString("Queue", "Setup", "结算队列服务启动成功")
}

// StopQueue 优雅停止结算工作器组，等待进行中的结算完成
func StopQueue() {
	if settlementWorker != nil {
		settlementWorker.Stop()
	}
}

// notifyMerchant 按支付 ID 查找商户回调地址并投递公开投影
func notifyMerchant(paymentID string) {
	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	paymentRepo := repositories.NewPaymentRepository()
	p, err := paymentRepo.GetByID(ctx, paymentID)
	if err != nil {
		logger.ErrorString("Webhook", "Lookup", "payment not found: "+paymentID)
		return
	}

	merchantRepo := repositories.NewMerchantRepository()
	m, err := merchantRepo.GetByID(ctx, p.MerchantID)
	if err != nil || m.WebhookURL == "" {
		return
	}

	notifier := webhook.NewNotifier(webhook.Config{
		Timeout:    time.Duration(config.GetInt("webhook.timeout", 10)) * time.Second,
		MaxRetries: config.GetInt("webhook.max_retries", 3),
	})

	// 投递失败只记录日志，结算结果不受影响
	_ = notifier.Notify(ctx, m.WebhookURL, p.ToPublic())
}
