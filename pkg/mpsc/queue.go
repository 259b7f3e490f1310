package mpsc

import "sync"

// Queue is an unbounded FIFO queue for many producers and a single consumer.
// The zero value is not usable; create instances with New.
type Queue[T any] struct {
	mu    sync.Mutex
	ready *sync.Cond
	items []T
	head  int
}

// New creates an empty queue.
func New[T any]() *Queue[T] {
	q := &Queue[T]{}
	q.ready = sync.NewCond(&q.mu)
	return q
}

// Enqueue appends v to the tail of the queue and wakes the consumer if it is
// parked in BlockingDequeue. It never blocks waiting for capacity and never
// drops elements; it is safe to call from any number of goroutines.
func (q *Queue[T]) Enqueue(v T) {
	q.mu.Lock()
	q.items = append(q.items, v)
	q.mu.Unlock()
	q.ready.Signal()
}

// Dequeue removes and returns the element at the head of the queue. It
// returns the zero value and false immediately when the queue is empty.
func (q *Queue[T]) Dequeue() (T, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.head == len(q.items) {
		var zero T
		return zero, false
	}
	return q.pop(), true
}

// BlockingDequeue removes and returns the element at the head of the queue,
// parking the calling goroutine until an element is available.
func (q *Queue[T]) BlockingDequeue() T {
	q.mu.Lock()
	defer q.mu.Unlock()

	for q.head == len(q.items) {
		q.ready.Wait()
	}
	return q.pop()
}

// Len returns the number of elements currently queued.
func (q *Queue[T]) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.items) - q.head
}

// pop removes the head element. Callers must hold q.mu and have verified the
// queue is non-empty. The vacated cell is zeroed so consumed elements (often
// closures) do not outlive their dequeue, and the backing slice is reused
// once fully drained.
func (q *Queue[T]) pop() T {
	v := q.items[q.head]
	var zero T
	q.items[q.head] = zero
	q.head++
	if q.head == len(q.items) {
		q.items = q.items[:0]
		q.head = 0
	}
	return v
}
