// Package webhook 结算终态的商户回调通知
// 尽力而为投递：失败只记录日志，不影响结算结果
package webhook

import (
	"context"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"

	"payhub/pkg/logger"
)

// Notifier 商户回调通知器
type Notifier struct {
	client     *resty.Client
	maxRetries int
}

// Config 通知器配置
type Config struct {
	Timeout    time.Duration
	MaxRetries int
}

// NewNotifier 创建通知器
func NewNotifier(config Config) *Notifier {
	if config.Timeout <= 0 {
		config.Timeout = 10 * time.Second
	}
	if config.MaxRetries < 0 {
		config.MaxRetries = 0
	}

	client := resty.New().
		SetTimeout(config.Timeout).
		SetHeader("Content-Type", "application/json").
		SetHeader("User-Agent", "payhub-webhook/1.0")

	return &Notifier{
		client:     client,
		maxRetries: config.MaxRetries,
	}
}

// Notify 向商户回调地址投递支付终态
// 按固定间隔重试，全部失败后放弃并记录日志
func (n *Notifier) Notify(ctx context.Context, url string, payload interface{}) error {
	if url == "" {
		return nil
	}

	var lastErr error
	for attempt := 0; attempt <= n.maxRetries; attempt++ {
		if attempt > 0 {
			select {
			case <-time.After(time.Duration(attempt) * time.Second):
			case <-ctx.Done():
				return ctx.Err()
			}
		}

		resp, err := n.client.R().
			SetContext(ctx).
			SetBody(payload).
			Post(url)
		if err != nil {
			lastErr = err
			continue
		}
		if resp.IsSuccess() {
			return nil
		}
		lastErr = fmt.Errorf("webhook endpoint returned %d", resp.StatusCode())
	}

	logger.ErrorString("Webhook", "Notify",
		fmt.Sprintf("delivery to %s failed after %d attempts: %v", url, n.maxRetries+1, lastErr))
	return lastErr
}
