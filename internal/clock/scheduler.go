// Package clock provides a simulated-time scheduler for the game loop.
//
// The scheduler owns no goroutines. Time only moves when the frame loop calls
// Advance, so every callback runs on the caller's goroutine, in due-time order.
// This keeps the simulation deterministic and lets tests step time explicitly.
package clock

import "time"

// Handle identifies a scheduled timer.
type Handle uint64

type timer struct {
	handle     Handle
	due        time.Duration
	interval   time.Duration // 0 for one-shot timers
	generation uint64
	seq        uint64 // insertion order, breaks ties between equal due times
	fn         func()
}

// Scheduler runs periodic and one-shot callbacks against a simulated clock.
// It is not safe for concurrent use.
type Scheduler struct {
	now        time.Duration
	generation uint64
	nextHandle Handle
	nextSeq    uint64
	timers     map[Handle]*timer
}

// NewScheduler creates a scheduler at time zero.
func NewScheduler() *Scheduler {
	return &Scheduler{
		timers: make(map[Handle]*timer),
	}
}

// Now returns the simulated time elapsed since creation.
func (s *Scheduler) Now() time.Duration {
	return s.now
}

// Generation returns the current generation. CancelAll increments it.
func (s *Scheduler) Generation() uint64 {
	return s.generation
}

// Pending returns the number of armed timers.
func (s *Scheduler) Pending() int {
	return len(s.timers)
}

// After schedules fn to run once, delay from now.
func (s *Scheduler) After(delay time.Duration, fn func()) Handle {
	return s.add(delay, 0, fn)
}

// Every schedules fn to run each interval, first at now+interval.
// Non-positive intervals are rejected and return the zero Handle.
func (s *Scheduler) Every(interval time.Duration, fn func()) Handle {
	if interval <= 0 {
		return 0
	}
	return s.add(interval, interval, fn)
}

func (s *Scheduler) add(delay, interval time.Duration, fn func()) Handle {
	if delay < 0 {
		delay = 0
	}
	s.nextHandle++
	s.nextSeq++
	t := &timer{
		handle:     s.nextHandle,
		due:        s.now + delay,
		interval:   interval,
		generation: s.generation,
		seq:        s.nextSeq,
		fn:         fn,
	}
	s.timers[t.handle] = t
	return t.handle
}

// Cancel disarms a single timer. Unknown handles are ignored.
func (s *Scheduler) Cancel(h Handle) {
	delete(s.timers, h)
}

// CancelAll disarms every timer and starts a new generation.
// Callbacks from earlier generations never run again, even if Advance is
// already iterating over them.
func (s *Scheduler) CancelAll() {
	s.generation++
	clear(s.timers)
}

// Advance moves the clock forward by dt and fires every timer that comes due,
// earliest first. A callback may schedule or cancel timers; newly scheduled
// timers that fall inside the window fire in the same call.
func (s *Scheduler) Advance(dt time.Duration) {
	if dt < 0 {
		return
	}
	target := s.now + dt

	for {
		t := s.nextDue(target)
		if t == nil {
			break
		}

		s.now = t.due
		if t.interval > 0 {
			t.due += t.interval
			s.nextSeq++
			t.seq = s.nextSeq
		} else {
			delete(s.timers, t.handle)
		}

		if t.generation == s.generation {
			t.fn()
		}
	}

	s.now = target
}

// nextDue returns the earliest armed timer due at or before limit.
func (s *Scheduler) nextDue(limit time.Duration) *timer {
	var best *timer
	for _, t := range s.timers {
		if t.due > limit || t.generation != s.generation {
			continue
		}
		if best == nil || t.due < best.due || (t.due == best.due && t.seq < best.seq) {
			best = t
		}
	}
	return best
}
