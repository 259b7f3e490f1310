// Package semaphore provides a bounded counting semaphore for throttling
// concurrent work.
//
// A Semaphore hands out a fixed number of slots. Acquire claims a slot,
// blocking while all slots are in use; Release returns one. Exhaustion is
// expressed as backpressure (the caller blocks), never as an error, which
// makes the semaphore suitable as the admission gate in front of unmanaged
// goroutine spawning.
//
// The implementation is a buffered channel, the conventional Go shape for a
// counting semaphore: acquiring sends into the channel, releasing receives
// from it, and the channel buffer bounds the count.
//
// # Usage
//
//	sem := semaphore.New(64)
//
//	for _, job := range jobs {
//		sem.Acquire()
//		go func() {
//			defer sem.Release()
//			job()
//		}()
//	}
//
// AcquireContext is the cancellable variant for callers that cannot afford
// to block indefinitely, and TryAcquire claims a slot only when one is free.
package semaphore
