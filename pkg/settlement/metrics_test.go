package settlement

import (
	"sync"
	"testing"
	"time"
)

func TestLatencyStatsConcurrentRecord(t *testing.T) {
	m := NewQueueMetrics()

	const (
		goroutines = 20
		perWorker  = 50
	)

	var wg sync.WaitGroup
	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			for j := 0; j < perWorker; j++ {
				m.RecordPushLatency(time.Duration(n+1) * time.Millisecond)
			}
		}(i)
	}
	wg.Wait()

	s := m.pushLatency
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.count != goroutines*perWorker {
		t.Errorf("count = %d, want %d", s.count, goroutines*perWorker)
	}
	if s.min != 1*time.Millisecond {
		t.Errorf("min = %v, want 1ms", s.min)
	}
	if s.max != time.Duration(goroutines)*time.Millisecond {
		t.Errorf("max = %v, want %dms", s.max, goroutines)
	}

	// 总和固定：perWorker * (1 + 2 + ... + goroutines) 毫秒
	wantTotal := time.Duration(perWorker*goroutines*(goroutines+1)/2) * time.Millisecond
	if s.total != wantTotal {
		t.Errorf("total = %v, want %v", s.total, wantTotal)
	}
}
