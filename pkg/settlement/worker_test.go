package settlement

import (
	"context"
	"testing"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"payhub/app/models/payment"
)

// fakeTaskSource 内存版任务来源，队列为空时返回 redis.Nil
type fakeTaskSource struct {
	tasks chan *Task
}

func (f *fakeTaskSource) PopTask(ctx context.Context) (*Task, error) {
	select {
	case task := <-f.tasks:
		return task, nil
	case <-time.After(5 * time.Millisecond):
		return nil, goredis.Nil
	case <-ctx.Done():
		return nil, goredis.Nil
	}
}

func (s *fakeStore) appliedCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.applied
}

func TestWorkerProcessesAndStops(t *testing.T) {
	setupLogger(t)

	store := newFakeStore("pay_1", "pay_2", "pay_3")
	settler := NewSettler(store, FixedOutcome{Status: payment.StatusSuccess}, FixedDelay{})

	source := &fakeTaskSource{tasks: make(chan *Task, 3)}
	for _, id := range []string{"pay_1", "pay_2", "pay_3"} {
		source.tasks <- &Task{PaymentID: id, Method: string(payment.MethodCard)}
	}

	worker := NewWorker(source, settler, WorkerConfig{
		WorkerCount:     2,
		ShutdownTimeout: 2 * time.Second,
	})
	worker.Start()

	// 等待全部任务结算完成
	deadline := time.Now().Add(3 * time.Second)
	for store.appliedCount() < 3 {
		if time.Now().After(deadline) {
			t.Fatalf("only %d of 3 tasks settled before deadline", store.appliedCount())
		}
		time.Sleep(10 * time.Millisecond)
	}

	// Stop 等待工作器退出后返回
	done := make(chan struct{})
	go func() {
		worker.Stop()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(3 * time.Second):
		t.Fatal("Stop did not return")
	}

	for _, id := range []string{"pay_1", "pay_2", "pay_3"} {
		if store.statuses[id] != payment.StatusSuccess {
			t.Errorf("payment %s = %s, want success", id, store.statuses[id])
		}
	}
}
