package workerpool

import "sync"

var (
	sharedOnce sync.Once
	sharedPool *Pool
)

// Shared returns the process-wide pool used by dispatchers that do not carry
// their own. The pool is constructed on first use with default settings and
// lives for the rest of the process; callers start it lazily via Start, which
// is idempotent, so any number of dispatchers can share it while its workers
// are spawned exactly once.
func Shared() *Pool {
	sharedOnce.Do(func() {
		sharedPool = New()
	})
	return sharedPool
}
