package engine

import (
	"reflect"
	"testing"
	"time"
)

func TestSchedulerEveryFiresOnPeriod(t *testing.T) {
	s := NewScheduler()
	fired := 0
	id := s.Every(5*time.Second, func() { fired++ })
	if id == 0 {
		t.Fatal("Every returned zero ID")
	}

	for i := 0; i < 4; i++ {
		s.Step(time.Second)
	}
	if fired != 0 {
		t.Fatalf("fired at %v, want none before 5s", s.Now())
	}
	s.Step(time.Second)
	if fired != 1 {
		t.Fatalf("fired %d at 5s, want 1", fired)
	}

	// A large step catches up on every missed period
	s.Step(10 * time.Second)
	if fired != 3 {
		t.Errorf("fired %d at 15s, want 3", fired)
	}
}

func TestSchedulerDueOrder(t *testing.T) {
	s := NewScheduler()
	var order []string
	s.Every(5*time.Second, func() { order = append(order, "ring") })
	s.Every(7*time.Second, func() { order = append(order, "bird") })

	s.Step(35 * time.Second)

	want := []string{"ring", "bird", "ring", "bird", "ring", "ring", "bird", "ring", "bird", "ring", "ring", "bird"}
	if !reflect.DeepEqual(order, want) {
		t.Errorf("order = %v\nwant    %v", order, want)
	}
}

func TestSchedulerCancel(t *testing.T) {
	s := NewScheduler()
	a, b := 0, 0
	idA := s.Every(time.Second, func() { a++ })
	s.Every(time.Second, func() { b++ })

	s.Step(time.Second)
	if !s.Cancel(idA) {
		t.Fatal("Cancel of live timer returned false")
	}
	if s.Cancel(idA) {
		t.Error("double Cancel returned true")
	}
	s.Step(time.Second)
	if a != 1 || b != 2 {
		t.Errorf("a=%d b=%d, want 1,2", a, b)
	}

	s.CancelAll()
	s.Step(time.Second)
	if b != 2 || s.Timers() != 0 {
		t.Errorf("timers still firing after CancelAll: b=%d timers=%d", b, s.Timers())
	}
}

func TestSchedulerCancelAllFromCallback(t *testing.T) {
	s := NewScheduler()
	fired := 0
	s.Every(time.Second, func() {
		fired++
		s.CancelAll()
	})
	s.Every(time.Second, func() { fired++ })

	s.Step(3 * time.Second)
	if fired != 1 {
		t.Errorf("fired %d, want 1 after callback cancelled all timers", fired)
	}
}

func TestSchedulerFrameRunsOncePerStep(t *testing.T) {
	s := NewScheduler()
	frames := 0
	var frame func()
	frame = func() {
		frames++
		if frames < 3 {
			s.RequestFrame(frame)
		}
	}
	s.RequestFrame(frame)

	for i := 0; i < 5; i++ {
		s.Step(time.Millisecond)
	}
	if frames != 3 || s.TickIndex() != 3 {
		t.Errorf("frames=%d ticks=%d, want 3,3", frames, s.TickIndex())
	}
	if !s.Idle() {
		t.Error("scheduler should be idle after the last frame")
	}
}

func TestSchedulerTimersBeforeFrame(t *testing.T) {
	s := NewScheduler()
	var order []string
	s.Every(time.Second, func() { order = append(order, "timer") })
	s.RequestFrame(func() { order = append(order, "frame") })

	s.Step(time.Second)
	if !reflect.DeepEqual(order, []string{"timer", "frame"}) {
		t.Errorf("order = %v", order)
	}
}

func TestSchedulerRejectsBadPeriod(t *testing.T) {
	s := NewScheduler()
	if id := s.Every(0, func() {}); id != 0 {
		t.Errorf("zero period accepted with id %d", id)
	}
	if !s.Idle() {
		t.Error("rejected timer registered")
	}
}

func TestSchedulerMillis(t *testing.T) {
	s := NewScheduler()
	s.Step(1500 * time.Millisecond)
	if s.Millis() != 1500 {
		t.Errorf("Millis = %v, want 1500", s.Millis())
	}
}
