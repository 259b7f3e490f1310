// Package mpsc provides an unbounded many-producer/single-consumer FIFO queue.
//
// The queue accepts concurrent Enqueue calls from any number of goroutines
// while exactly one consumer goroutine drains it. Enqueue never blocks on
// capacity and never drops elements. The consumer chooses between Dequeue,
// which returns immediately when the queue is empty, and BlockingDequeue,
// which parks until an element arrives.
//
// # Ordering
//
// Elements are observed by the consumer in the order the Enqueue calls
// completed. For a single producer goroutine this is exactly its call order.
// Enqueue calls racing on distinct goroutines may complete in either relative
// order; the queue makes no promise between producers.
//
// # Usage
//
//	q := mpsc.New[func()]()
//
//	// producers
//	go q.Enqueue(task)
//
//	// the single consumer
//	for {
//		task, ok := q.Dequeue()
//		if !ok {
//			task = q.BlockingDequeue()
//		}
//		task()
//	}
//
// The single-consumer contract is not enforced at runtime. Concurrent
// consumers will not corrupt the queue, but the ordering guarantee above is
// only meaningful with one.
package mpsc
