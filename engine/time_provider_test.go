package engine

import (
	"testing"
	"time"
)

func TestMonotonicTimeProvider(t *testing.T) {
	provider := NewMonotonicTimeProvider()

	t1 := provider.Now()
	time.Sleep(5 * time.Millisecond)
	t2 := provider.Now()

	if !t2.After(t1) {
		t.Errorf("expected t2 after t1, got t1=%v t2=%v", t1, t2)
	}
}

func TestMockTimeProvider(t *testing.T) {
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	mock := NewMockTimeProvider(start)

	if !mock.Now().Equal(start) {
		t.Errorf("initial time = %v, want %v", mock.Now(), start)
	}

	next := start.Add(24 * time.Hour)
	mock.SetTime(next)
	if !mock.Now().Equal(next) {
		t.Errorf("after SetTime = %v, want %v", mock.Now(), next)
	}

	mock.Advance(time.Hour)
	mock.Advance(30 * time.Minute)
	if want := next.Add(90 * time.Minute); !mock.Now().Equal(want) {
		t.Errorf("after Advance = %v, want %v", mock.Now(), want)
	}
}
