package resilience

import (
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

func TestSingleFlight_ConcurrentCallsShareOneExecution(t *testing.T) {
	t.Parallel()

	var g SingleFlight
	var executions atomic.Int32

	const callers = 16
	start := make(chan struct{})
	var wg sync.WaitGroup
	results := make([]any, callers)

	for i := 0; i < callers; i++ {
		i := i
		wg.Add(1)
		go func() {
			defer wg.Done()
			<-start
			value, err, _ := g.Do("key", func() (any, error) {
				executions.Add(1)
				time.Sleep(20 * time.Millisecond)
				return "computed", nil
			})
			if err != nil {
				t.Errorf("caller %d: %v", i, err)
				return
			}
			results[i] = value
		}()
	}

	close(start)
	wg.Wait()

	if got := executions.Load(); got != 1 {
		t.Fatalf("executions = %d, want 1", got)
	}
	for i, value := range results {
		if value != "computed" {
			t.Fatalf("caller %d got %v", i, value)
		}
	}
}

func TestSingleFlight_SequentialCallsRecompute(t *testing.T) {
	t.Parallel()

	var g SingleFlight
	count := 0

	for i := 0; i < 3; i++ {
		_, err, shared := g.Do("key", func() (any, error) {
			count++
			return count, nil
		})
		if err != nil {
			t.Fatalf("call %d: %v", i, err)
		}
		if shared {
			t.Fatalf("call %d unexpectedly shared", i)
		}
	}

	if count != 3 {
		t.Fatalf("executions = %d, want 3", count)
	}
}

func TestSingleFlight_ErrorsPropagate(t *testing.T) {
	t.Parallel()

	var g SingleFlight
	boom := errors.New("boom")

	_, err, _ := g.Do("key", func() (any, error) {
		return nil, boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("error = %v, want boom", err)
	}
}
