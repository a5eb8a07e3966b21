package retry

import (
	"context"
	"testing"
	"time"
)

func TestPoll_SuccessFirstAttempt(t *testing.T) {
	t.Parallel()
	attempts := 0
	probe := func(attempt int) bool {
		attempts = attempt
		return true
	}

	ok, err := Poll(context.Background(), probe, WithInterval(time.Millisecond))

	if err != nil {
		t.Errorf("Expected no error, got: %v", err)
	}
	if !ok {
		t.Error("Expected success")
	}
	if attempts != 1 {
		t.Errorf("Expected 1 attempt, got: %d", attempts)
	}
}

func TestPoll_SuccessAfterRetries(t *testing.T) {
	t.Parallel()
	attempts := 0
	probe := func(int) bool {
		attempts++
		return attempts >= 3
	}

	ok, err := Poll(context.Background(), probe, WithInterval(time.Millisecond))

	if err != nil {
		t.Errorf("Expected no error, got: %v", err)
	}
	if !ok {
		t.Error("Expected success after retries")
	}
	if attempts != 3 {
		t.Errorf("Expected 3 attempts, got: %d", attempts)
	}
}

func TestPoll_Exhaustion(t *testing.T) {
	t.Parallel()
	attempts := 0
	probe := func(int) bool {
		attempts++
		return false
	}

	ok, err := Poll(context.Background(), probe,
		WithMaxAttempts(4),
		WithInterval(time.Millisecond))

	// Exhaustion is reported via the boolean, not the error
	if err != nil {
		t.Errorf("Expected no error on exhaustion, got: %v", err)
	}
	if ok {
		t.Error("Expected failure after exhausting attempts")
	}
	if attempts != 4 {
		t.Errorf("Expected 4 attempts, got: %d", attempts)
	}
}

func TestPoll_ContextCancellation(t *testing.T) {
	t.Parallel()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	attempts := 0
	probe := func(int) bool {
		attempts++
		return false
	}

	ok, err := Poll(ctx, probe, WithInterval(50*time.Millisecond))

	if err == nil {
		t.Error("Expected error from cancelled context, got nil")
	}
	if ok {
		t.Error("Expected failure on cancellation")
	}
	if attempts != 0 {
		t.Errorf("Expected no attempts after cancellation, got: %d", attempts)
	}
}

func TestPoll_AttemptNumbering(t *testing.T) {
	t.Parallel()
	var seen []int
	probe := func(attempt int) bool {
		seen = append(seen, attempt)
		return false
	}

	_, err := Poll(context.Background(), probe,
		WithMaxAttempts(3),
		WithInterval(time.Millisecond))
	if err != nil {
		t.Fatalf("Poll returned error: %v", err)
	}

	want := []int{1, 2, 3}
	if len(seen) != len(want) {
		t.Fatalf("Expected %d attempts, got %d", len(want), len(seen))
	}
	for i := range want {
		if seen[i] != want[i] {
			t.Errorf("Attempt %d numbered %d, want %d", i, seen[i], want[i])
		}
	}
}
