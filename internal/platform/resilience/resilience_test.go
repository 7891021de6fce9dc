package resilience

import (
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

func TestCircuitBreaker_OpensAfterThreshold(t *testing.T) {
	t.Parallel()

	breaker := NewCircuitBreaker(CircuitBreakerConfig{
		FailureThreshold: 3,
		OpenTimeout:      time.Minute,
		HalfOpenMaxReq:   1,
	})

	for i := 0; i < 3; i++ {
		if err := breaker.Allow(); err != nil {
			t.Fatalf("allow before threshold: %v", err)
		}
		breaker.RecordFailure()
	}

	if err := breaker.Allow(); !errors.Is(err, ErrCircuitOpen) {
		t.Fatalf("expected open circuit, got %v", err)
	}
	if state := breaker.State(); state != CircuitStateOpen {
		t.Fatalf("state = %s, want open", state)
	}
}

func TestCircuitBreaker_HalfOpenRecovers(t *testing.T) {
	t.Parallel()

	breaker := NewCircuitBreaker(CircuitBreakerConfig{
		FailureThreshold: 1,
		OpenTimeout:      time.Millisecond,
		HalfOpenMaxReq:   1,
	})
	current := time.Now()
	breaker.now = func() time.Time { return current }

	breaker.RecordFailure()
	if err := breaker.Allow(); !errors.Is(err, ErrCircuitOpen) {
		t.Fatalf("expected open, got %v", err)
	}

	current = current.Add(2 * time.Millisecond)
	if err := breaker.Allow(); err != nil {
		t.Fatalf("probe request rejected: %v", err)
	}
	breaker.RecordSuccess()

	if state := breaker.State(); state != CircuitStateClosed {
		t.Fatalf("state = %s, want closed after successful probe", state)
	}
}

func TestCircuitBreaker_SuccessResetsFailures(t *testing.T) {
	t.Parallel()

	breaker := NewCircuitBreaker(CircuitBreakerConfig{
		FailureThreshold: 2,
		OpenTimeout:      time.Minute,
		HalfOpenMaxReq:   1,
	})

	breaker.RecordFailure()
	breaker.RecordSuccess()
	breaker.RecordFailure()

	if err := breaker.Allow(); err != nil {
		t.Fatalf("circuit should still be closed: %v", err)
	}
}

func TestSingleFlight_CollapsesConcurrentCalls(t *testing.T) {
	t.Parallel()

	var flight SingleFlight
	var calls atomic.Int32

	const workers = 16
	start := make(chan struct{})
	var wg sync.WaitGroup
	wg.Add(workers)

	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			<-start
			v, err, _ := flight.Do("key", func() (any, error) {
				calls.Add(1)
				time.Sleep(10 * time.Millisecond)
				return "result", nil
			})
			if err != nil || v != "result" {
				t.Errorf("unexpected flight result: %v, %v", v, err)
			}
		}()
	}

	close(start)
	wg.Wait()

	if got := calls.Load(); got != 1 {
		t.Fatalf("fn called %d times, want 1", got)
	}
}
