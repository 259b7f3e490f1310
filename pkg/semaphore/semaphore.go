package semaphore

import "context"

// Semaphore is a bounded counting semaphore. The number of concurrently held
// slots never exceeds the capacity fixed at construction. All methods are
// safe for concurrent use.
type Semaphore struct {
	slots chan struct{}
}

// New creates a semaphore with the given capacity. A capacity below 1 is
// treated as 1 so the semaphore always admits at least one holder.
func New(capacity int) *Semaphore {
	if capacity < 1 {
		capacity = 1
	}
	return &Semaphore{
		slots: make(chan struct{}, capacity),
	}
}

// Acquire claims a slot, blocking until one is available.
func (s *Semaphore) Acquire() {
	s.slots <- struct{}{}
}

// AcquireContext claims a slot, blocking until one is available or the
// context is cancelled. It returns the context error without claiming a
// slot when cancelled.
func (s *Semaphore) AcquireContext(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	select {
	case s.slots <- struct{}{}:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// TryAcquire claims a slot only if one is immediately available and reports
// whether it succeeded.
func (s *Semaphore) TryAcquire() bool {
	select {
	case s.slots <- struct{}{}:
		return true
	default:
		return false
	}
}

// Release returns a previously acquired slot and wakes one blocked acquirer.
// Releasing more than was acquired is a usage bug and panics.
func (s *Semaphore) Release() {
	select {
	case <-s.slots:
	default:
		panic("semaphore: release of unacquired slot")
	}
}

// InFlight returns the number of slots currently held.
func (s *Semaphore) InFlight() int {
	return len(s.slots)
}

// Capacity returns the fixed slot capacity.
func (s *Semaphore) Capacity() int {
	return cap(s.slots)
}
