package testkit

import (
	"sync"
	"testing"
	"time"
)

var (
	tokenFn   = func() string { return "***" }
	maxTokens = 64
)

func TestSwap_FunctionAndRestore(t *testing.T) {
	t.Run("swap-in-subtest", func(t *testing.T) {
		if tokenFn() != "***" {
			t.Fatalf("precondition failed")
		}
		Swap(t, &tokenFn, func() string { return "[x]" })
		if got := tokenFn(); got != "[x]" {
			t.Fatalf("swap did not take effect, got %q", got)
		}
	})

	if got := tokenFn(); got != "***" {
		t.Fatalf("swap did not restore original, got %q", got)
	}
}

func TestSwap_NonFunctionType(t *testing.T) {
	t.Run("int", func(t *testing.T) {
		Swap(t, &maxTokens, 8)
		if maxTokens != 8 {
			t.Fatalf("swap failed, got %d", maxTokens)
		}
	})
	if maxTokens != 64 {
		t.Fatalf("swap did not restore original, got %d", maxTokens)
	}
}

func TestSerial_GuardsConcurrentSubtests(t *testing.T) {
	var mu sync.Mutex
	seq := make([]string, 0, 4)
	record := func(s string) {
		mu.Lock()
		seq = append(seq, s)
		mu.Unlock()
	}

	t.Run("group", func(t *testing.T) {
		for _, name := range []string{"A", "B"} {
			name := name
			t.Run(name, func(t *testing.T) {
				t.Parallel()
				Serial(t)
				record(name + "-start")
				time.Sleep(20 * time.Millisecond)
				record(name + "-end")
			})
		}
	})

	if len(seq) != 4 {
		t.Fatalf("unexpected sequence %v", seq)
	}
	// each start must be followed directly by its own end
	if seq[0][:1] != seq[1][:1] || seq[2][:1] != seq[3][:1] {
		t.Fatalf("expected grouped execution, got %v", seq)
	}
}
