// Package settlement 模拟异步结算
// 支付受理后由独立的结算任务在延迟后一次性写入终态
package settlement

import (
	"context"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"payhub/app/models/payment"
	"payhub/pkg/config"
	"payhub/pkg/logger"
)

// Task 结算任务，按支付维度调度
type Task struct {
	PaymentID string    `json:"payment_id"`
	Method    string    `json:"method"`
	CreatedAt time.Time `json:"created_at"`
}

// Store 结算需要的存储能力
// 终态写入必须是按 ID 的条件更新，重复触发时返回 false
type Store interface {
	SettleTerminal(ctx context.Context, id string, status payment.Status, errCode, errDesc string) (bool, error)
}

// OutcomeSource 结算结果来源
type OutcomeSource interface {
	Outcome(method string) payment.Status
}

// DelaySource 结算延迟来源
type DelaySource interface {
	Delay() time.Duration
}

// Settler 结算器，持有可替换的结果与延迟来源
type Settler struct {
	store      Store
	outcomes   OutcomeSource
	delays     DelaySource
	onTerminal func(paymentID string)
}

// NewSettler 创建结算器
func NewSettler(store Store, outcomes OutcomeSource, delays DelaySource) *Settler {
	return &Settler{
		store:    store,
		outcomes: outcomes,
		delays:   delays,
	}
}

// OnTerminal 注册终态回调（商户 webhook 通知等）
// 回调在独立协程中执行，不阻塞结算
func (s *Settler) OnTerminal(fn func(paymentID string)) {
	s.onTerminal = fn
}

// Settle 对单个支付执行一次结算
// 等待延迟、确定结果、条件更新写入终态。
// 记录已是终态或不存在时静默跳过（幂等保护）
func (s *Settler) Settle(ctx context.Context, task *Task) error {
	// 模拟网络 / 渠道处理延迟
	delay := s.delays.Delay()
	if delay > 0 {
		timer := time.NewTimer(delay)
		defer timer.Stop()
		select {
		case <-timer.C:
		case <-ctx.Done():
			return ctx.Err()
		}
	}

	outcome := s.outcomes.Outcome(task.Method)

	var errCode, errDesc string
	if outcome == payment.StatusFailed {
		errCode, errDesc = failureFor(task.Method)
	}

	applied, err := s.store.SettleTerminal(ctx, task.PaymentID, outcome, errCode, errDesc)
	if err != nil {
		return fmt.Errorf("settle payment %s: %w", task.PaymentID, err)
	}
	if !applied {
		logger.WarnString("Settlement", "Skip",
			fmt.Sprintf("payment %s already terminal or missing", task.PaymentID))
		return nil
	}

	logger.InfoString("Settlement", "Done",
		fmt.Sprintf("payment %s settled as %s", task.PaymentID, outcome))

	if s.onTerminal != nil {
		go s.onTerminal(task.PaymentID)
	}
	return nil
}

// failureFor 按支付方式返回结算失败的错误码和通用描述
func failureFor(method string) (string, string) {
	if method == string(payment.MethodCard) {
		return payment.ErrCodeCardDeclined, "Payment was declined by the issuing bank"
	}
	return payment.ErrCodeBankTransferFailed, "Bank transfer could not be completed"
}

/* 🎲 结果与延迟来源的实现 */

// FixedOutcome 固定结果来源，确定性模式使用
type FixedOutcome struct {
	Status payment.Status
}

// Outcome 始终返回配置的结果
func (f FixedOutcome) Outcome(string) payment.Status {
	return f.Status
}

// RandomOutcome 按方式区分成功率的概率结果来源
type RandomOutcome struct {
	BankSuccessRate float64
	CardSuccessRate float64

	mu  sync.Mutex
	rng *rand.Rand
}

// NewRandomOutcome 创建概率结果来源
func NewRandomOutcome(bankRate, cardRate float64) *RandomOutcome {
	return &RandomOutcome{
		BankSuccessRate: bankRate,
		CardSuccessRate: cardRate,
		rng:             rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// Outcome 对每笔支付独立抽样
func (r *RandomOutcome) Outcome(method string) payment.Status {
	rate := r.BankSuccessRate
	if method == string(payment.MethodCard) {
		rate = r.CardSuccessRate
	}

	r.mu.Lock()
	roll := r.rng.Float64()
	r.mu.Unlock()

	if roll < rate {
		return payment.StatusSuccess
	}
	return payment.StatusFailed
}

// FixedDelay 固定延迟来源，确定性模式使用
type FixedDelay struct {
	Duration time.Duration
}

// Delay 返回固定延迟
func (f FixedDelay) Delay() time.Duration {
	return f.Duration
}

// RandomDelay 区间内随机延迟来源
type RandomDelay struct {
	Min time.Duration
	Max time.Duration

	mu  sync.Mutex
	rng *rand.Rand
}

// NewRandomDelay 创建随机延迟来源
func NewRandomDelay(min, max time.Duration) *RandomDelay {
	return &RandomDelay{
		Min: min,
		Max: max,
		rng: rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// Delay 在 [Min, Max] 区间内随机取值
func (r *RandomDelay) Delay() time.Duration {
	if r.Max <= r.Min {
		return r.Min
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.Min + time.Duration(r.rng.Int63n(int64(r.Max-r.Min)))
}

// NewOutcomeSourceFromConfig 根据配置创建结果来源
func NewOutcomeSourceFromConfig() OutcomeSource {
	if config.GetBool("settlement.deterministic") {
		outcome := payment.StatusSuccess
		if config.GetString("settlement.force_outcome", "success") == string(payment.StatusFailed) {
			outcome = payment.StatusFailed
		}
		return FixedOutcome{Status: outcome}
	}
	return NewRandomOutcome(
		config.GetFloat64("settlement.bank_success_rate", 0.90),
		config.GetFloat64("settlement.card_success_rate", 0.95),
	)
}

// NewDelaySourceFromConfig 根据配置创建延迟来源
func NewDelaySourceFromConfig() DelaySource {
	if config.GetBool("settlement.deterministic") {
		return FixedDelay{
			Duration: time.Duration(config.GetInt("settlement.fixed_delay_ms", 100)) * time.Millisecond,
		}
	}
	return NewRandomDelay(
		time.Duration(config.GetInt("settlement.min_delay_seconds", 5))*time.Second,
		time.Duration(config.GetInt("settlement.max_delay_seconds", 10))*time.Second,
	)
}
