package settlement

import (
	"context"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"payhub/app/models/payment"
	"payhub/pkg/logger"
)

// fakeStore 内存版结算存储，模拟「仅 processing 可更新」的条件写
type fakeStore struct {
	mu       sync.Mutex
	statuses map[string]payment.Status
	errCodes map[string]string
	errDescs map[string]string
	applied  int
}

func newFakeStore(ids ...string) *fakeStore {
	s := &fakeStore{
		statuses: make(map[string]payment.Status),
		errCodes: make(map[string]string),
		errDescs: make(map[string]string),
	}
	for _, id := range ids {
		s.statuses[id] = payment.StatusProcessing
	}
	return s
}

func (s *fakeStore) SettleTerminal(_ context.Context, id string, status payment.Status, errCode, errDesc string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	current, ok := s.statuses[id]
	if !ok || current != payment.StatusProcessing {
		return false, nil
	}
	s.statuses[id] = status
	s.errCodes[id] = errCode
	s.errDescs[id] = errDesc
	s.applied++
	return true, nil
}

func setupLogger(t *testing.T) {
	t.Helper()
	logger.InitLogger(filepath.Join(t.TempDir(), "logs.log"), 1, 1, 1, false, "single", "debug")
}

func TestSettleSuccess(t *testing.T) {
	setupLogger(t)
	store := newFakeStore("pay_1")
	settler := NewSettler(store, FixedOutcome{Status: payment.StatusSuccess}, FixedDelay{})

	task := &Task{PaymentID: "pay_1", Method: string(payment.MethodCard)}
	if err := settler.Settle(context.Background(), task); err != nil {
		t.Fatalf("Settle returned error: %v", err)
	}

	if store.statuses["pay_1"] != payment.StatusSuccess {
		t.Errorf("status = %s, want success", store.statuses["pay_1"])
	}
	if store.errCodes["pay_1"] != "" || store.errDescs["pay_1"] != "" {
		t.Errorf("success settlement must not set error fields")
	}
}

func TestSettleFailureErrorCodes(t *testing.T) {
	setupLogger(t)

	tests := []struct {
		name     string
		method   string
		wantCode string
	}{
		{"card declined", string(payment.MethodCard), payment.ErrCodeCardDeclined},
		{"bank transfer failed", string(payment.MethodBankHandle), payment.ErrCodeBankTransferFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := newFakeStore("pay_1")
			settler := NewSettler(store, FixedOutcome{Status: payment.StatusFailed}, FixedDelay{})

			task := &Task{PaymentID: "pay_1", Method: tt.method}
			if err := settler.Settle(context.Background(), task); err != nil {
				t.Fatalf("Settle returned error: %v", err)
			}

			if store.statuses["pay_1"] != payment.StatusFailed {
				t.Fatalf("status = %s, want failed", store.statuses["pay_1"])
			}
			if store.errCodes["pay_1"] != tt.wantCode {
				t.Errorf("error code = %s, want %s", store.errCodes["pay_1"], tt.wantCode)
			}
			if store.errDescs["pay_1"] == "" {
				t.Errorf("failed settlement must carry a description")
			}
		})
	}
}

func TestSettleIdempotent(t *testing.T) {
	setupLogger(t)
	store := newFakeStore("pay_1")
	settler := NewSettler(store, FixedOutcome{Status: payment.StatusSuccess}, FixedDelay{})

	task := &Task{PaymentID: "pay_1", Method: string(payment.MethodCard)}

	// 重复触发两次结算，第二次必须是 no-op
	if err := settler.Settle(context.Background(), task); err != nil {
		t.Fatalf("first Settle returned error: %v", err)
	}
	if err := settler.Settle(context.Background(), task); err != nil {
		t.Fatalf("second Settle returned error: %v", err)
	}

	if store.applied != 1 {
		t.Errorf("terminal write applied %d times, want 1", store.applied)
	}
	if store.statuses["pay_1"] != payment.StatusSuccess {
		t.Errorf("status = %s, want success", store.statuses["pay_1"])
	}
}

func TestSettleMissingPayment(t *testing.T) {
	setupLogger(t)
	store := newFakeStore() // 无任何支付记录
	settler := NewSettler(store, FixedOutcome{Status: payment.StatusSuccess}, FixedDelay{})

	task := &Task{PaymentID: "pay_missing", Method: string(payment.MethodCard)}
	if err := settler.Settle(context.Background(), task); err != nil {
		t.Fatalf("missing payment must not surface an error, got: %v", err)
	}
	if store.applied != 0 {
		t.Errorf("no write expected for missing payment")
	}
}

func TestSettleRespectsContextCancel(t *testing.T) {
	setupLogger(t)
	store := newFakeStore("pay_1")
	settler := NewSettler(store, FixedOutcome{Status: payment.StatusSuccess}, FixedDelay{Duration: time.Minute})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	task := &Task{PaymentID: "pay_1", Method: string(payment.MethodCard)}
	if err := settler.Settle(ctx, task); err == nil {
		t.Fatal("expected context error")
	}
	if store.statuses["pay_1"] != payment.StatusProcessing {
		t.Errorf("cancelled settlement must not write a terminal state")
	}
}

func TestRandomOutcomeRates(t *testing.T) {
	alwaysSucceed := NewRandomOutcome(1.0, 1.0)
	alwaysFail := NewRandomOutcome(0.0, 0.0)

	for i := 0; i < 100; i++ {
		if alwaysSucceed.Outcome(string(payment.MethodCard)) != payment.StatusSuccess {
			t.Fatal("rate 1.0 must always succeed")
		}
		if alwaysFail.Outcome(string(payment.MethodBankHandle)) != payment.StatusFailed {
			t.Fatal("rate 0.0 must always fail")
		}
	}
}

func TestRandomDelayBounds(t *testing.T) {
	src := NewRandomDelay(5*time.Millisecond, 10*time.Millisecond)
	for i := 0; i < 100; i++ {
		d := src.Delay()
		if d < 5*time.Millisecond || d > 10*time.Millisecond {
			t.Fatalf("delay %v outside [5ms, 10ms]", d)
		}
	}
}
