package clock

import (
	"testing"
	"time"
)

func TestEveryFiresOncePerPeriod(t *testing.T) {
	s := NewScheduler()
	count := 0
	s.Every(time.Second, func() { count++ })

	s.Advance(999 * time.Millisecond)
	if count != 0 {
		t.Fatalf("fired early: count=%d", count)
	}

	s.Advance(time.Millisecond)
	if count != 1 {
		t.Fatalf("expected 1 fire at 1s, got %d", count)
	}

	// A large step catches up one fire per elapsed period
	s.Advance(3 * time.Second)
	if count != 4 {
		t.Errorf("expected 4 fires at 4s, got %d", count)
	}
}

func TestAfterFiresOnce(t *testing.T) {
	s := NewScheduler()
	count := 0
	s.After(500*time.Millisecond, func() { count++ })

	s.Advance(time.Second)
	s.Advance(time.Second)

	if count != 1 {
		t.Errorf("one-shot fired %d times", count)
	}
	if s.Pending() != 0 {
		t.Errorf("one-shot should be removed after firing, pending=%d", s.Pending())
	}
}

func TestFiresInDueOrder(t *testing.T) {
	s := NewScheduler()
	var order []string

	s.After(300*time.Millisecond, func() { order = append(order, "c") })
	s.After(100*time.Millisecond, func() { order = append(order, "a") })
	s.After(200*time.Millisecond, func() { order = append(order, "b1") })
	s.After(200*time.Millisecond, func() { order = append(order, "b2") })

	s.Advance(time.Second)

	expected := []string{"a", "b1", "b2", "c"}
	if len(order) != len(expected) {
		t.Fatalf("order = %v, expected %v", order, expected)
	}
	for i := range expected {
		if order[i] != expected[i] {
			t.Errorf("order = %v, expected %v", order, expected)
			break
		}
	}
}

func TestNowDuringCallback(t *testing.T) {
	s := NewScheduler()
	var seen time.Duration
	s.After(250*time.Millisecond, func() { seen = s.Now() })

	s.Advance(time.Second)

	if seen != 250*time.Millisecond {
		t.Errorf("Now() inside callback = %v, expected 250ms", seen)
	}
	if s.Now() != time.Second {
		t.Errorf("Now() after Advance = %v, expected 1s", s.Now())
	}
}

func TestCancel(t *testing.T) {
	s := NewScheduler()
	count := 0
	h := s.Every(time.Second, func() { count++ })

	s.Advance(time.Second)
	s.Cancel(h)
	s.Advance(5 * time.Second)

	if count != 1 {
		t.Errorf("cancelled timer kept firing: count=%d", count)
	}
}

func TestCancelAllInsideCallback(t *testing.T) {
	s := NewScheduler()
	fired := map[string]bool{}

	s.After(100*time.Millisecond, func() {
		fired["first"] = true
		s.CancelAll()
	})
	s.After(200*time.Millisecond, func() { fired["second"] = true })

	s.Advance(time.Second)

	if !fired["first"] {
		t.Error("first timer should fire")
	}
	if fired["second"] {
		t.Error("timer armed before CancelAll must not fire")
	}
	if s.Generation() != 1 {
		t.Errorf("Generation() = %d, expected 1", s.Generation())
	}
}

func TestScheduleDuringAdvance(t *testing.T) {
	s := NewScheduler()
	count := 0
	s.After(100*time.Millisecond, func() {
		s.After(100*time.Millisecond, func() { count++ })
	})

	s.Advance(time.Second)

	if count != 1 {
		t.Errorf("timer scheduled inside the window should fire in the same Advance, count=%d", count)
	}
}

func TestEveryRejectsNonPositive(t *testing.T) {
	s := NewScheduler()
	if h := s.Every(0, func() {}); h != 0 {
		t.Errorf("Every(0) = %d, expected zero handle", h)
	}
	if s.Pending() != 0 {
		t.Errorf("Pending() = %d, expected 0", s.Pending())
	}
}
