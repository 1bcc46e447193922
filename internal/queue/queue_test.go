package queue

import (
	"sync"
	"testing"
	"time"
)

// TestPushPollOrder verifies FIFO order.
func TestPushPollOrder(t *testing.T) {
	q := New[int]()
	for i := 1; i <= 3; i++ {
		q.Push(i)
	}
	for i := 1; i <= 3; i++ {
		v, ok := q.Poll()
		if !ok || v != i {
			t.Errorf("Poll() = %d, %v, want %d, true", v, ok, i)
		}
	}
	if _, ok := q.Poll(); ok {
		t.Error("Poll on empty queue should report false")
	}
}

// TestWaitBlocks verifies Wait blocks until a producer pushes.
func TestWaitBlocks(t *testing.T) {
	q := New[string]()

	go func() {
		time.Sleep(10 * time.Millisecond)
		q.Push("hello")
	}()

	v, ok := q.Wait()
	if !ok || v != "hello" {
		t.Errorf("Wait() = %q, %v, want %q, true", v, ok, "hello")
	}
}

// TestWaitTimeoutExpires verifies the timeout path reports no value.
func TestWaitTimeoutExpires(t *testing.T) {
	q := New[int]()

	start := time.Now()
	_, ok := q.WaitTimeout(20 * time.Millisecond)
	if ok {
		t.Fatal("WaitTimeout on empty queue returned a value")
	}
	if elapsed := time.Since(start); elapsed < 15*time.Millisecond {
		t.Errorf("WaitTimeout returned after %v, want ~20ms", elapsed)
	}
}

// TestWaitTimeoutDelivers verifies a push within the window is received.
func TestWaitTimeoutDelivers(t *testing.T) {
	q := New[int]()

	go func() {
		time.Sleep(5 * time.Millisecond)
		q.Push(42)
	}()

	v, ok := q.WaitTimeout(time.Second)
	if !ok || v != 42 {
		t.Errorf("WaitTimeout() = %d, %v, want 42, true", v, ok)
	}
}

// TestFlushFunc verifies selective flushing keeps order.
func TestFlushFunc(t *testing.T) {
	q := New[int]()
	for i := 1; i <= 6; i++ {
		q.Push(i)
	}

	q.FlushFunc(func(v int) bool { return v%2 == 0 })

	if q.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", q.Len())
	}
	for _, want := range []int{1, 3, 5} {
		v, _ := q.Poll()
		if v != want {
			t.Errorf("Poll() = %d, want %d", v, want)
		}
	}
}

// TestFlush verifies Flush empties the queue.
func TestFlush(t *testing.T) {
	q := New[int]()
	q.Push(1)
	q.Push(2)
	q.Flush()
	if q.HasPending() {
		t.Error("HasPending() = true after Flush")
	}
}

// TestCloseUnblocksWaiters verifies blocked waiters return after Close
// and pre-close items remain drainable.
func TestCloseUnblocksWaiters(t *testing.T) {
	q := New[int]()
	q.Push(7)

	var wg sync.WaitGroup
	results := make(chan bool, 2)
	for range 2 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, ok := q.Wait()
			results <- ok
		}()
	}

	// Let both goroutines reach Wait before closing.
	time.Sleep(10 * time.Millisecond)
	q.Close()
	wg.Wait()
	close(results)

	var delivered int
	for ok := range results {
		if ok {
			delivered++
		}
	}
	if delivered != 1 {
		t.Errorf("delivered = %d, want exactly 1 (the pre-close item)", delivered)
	}

	// Pushes after Close are discarded.
	q.Push(8)
	if q.HasPending() {
		t.Error("Push after Close should be dropped")
	}

	// Close is idempotent.
	q.Close()
}

// TestConcurrentProducers verifies items from concurrent producers are
// all delivered exactly once.
func TestConcurrentProducers(t *testing.T) {
	q := New[int]()
	const producers, perProducer = 8, 100

	var wg sync.WaitGroup
	for p := range producers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range perProducer {
				q.Push(p*perProducer + i)
			}
		}()
	}
	wg.Wait()

	seen := make(map[int]bool)
	for {
		v, ok := q.Poll()
		if !ok {
			break
		}
		if seen[v] {
			t.Fatalf("item %d delivered twice", v)
		}
		seen[v] = true
	}
	if len(seen) != producers*perProducer {
		t.Errorf("delivered %d items, want %d", len(seen), producers*perProducer)
	}
}
