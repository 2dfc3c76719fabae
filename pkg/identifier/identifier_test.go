package identifier

import (
	"strings"
	"testing"
)

func TestNewFormat(t *testing.T) {
	id := New(OrderPrefix)

	if !strings.HasPrefix(id, OrderPrefix) {
		t.Errorf("id %q missing prefix %q", id, OrderPrefix)
	}
	if len(id) != len(OrderPrefix)+SuffixLength {
		t.Errorf("id length = %d, want %d", len(id), len(OrderPrefix)+SuffixLength)
	}

	suffix := strings.TrimPrefix(id, OrderPrefix)
	for _, c := range suffix {
		if !strings.ContainsRune(alphabet, c) {
			t.Errorf("suffix contains invalid character %q", c)
		}
	}
}

func TestNewUniqueness(t *testing.T) {
	seen := make(map[string]bool, 1000)
	for i := 0; i < 1000; i++ {
		id := NewPaymentID()
		if seen[id] {
			t.Fatalf("duplicate id generated: %s", id)
		}
		seen[id] = true
	}
}

func TestPrefixHelpers(t *testing.T) {
	if id := NewOrderID(); !strings.HasPrefix(id, "order_") {
		t.Errorf("NewOrderID() = %q, want order_ prefix", id)
	}
	if id := NewPaymentID(); !strings.HasPrefix(id, "pay_") {
		t.Errorf("NewPaymentID() = %q, want pay_ prefix", id)
	}
}
