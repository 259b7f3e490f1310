package signal

import (
	"time"

	"github.com/cenkalti/backoff/v4"

	"github.com/simple555a/SignalsAndSlots/pkg/mpsc"
)

// strandMsg is a queue element for a strand worker. A stop message tells the
// worker to exit after draining everything queued ahead of it.
type strandMsg struct {
	run  func()
	stop bool
}

// strand owns the dedicated worker goroutine backing a single Strand slot.
// The worker is the queue's only consumer; done closes when it exits.
type strand struct {
	queue *mpsc.Queue[strandMsg]
	done  chan struct{}
}

// newStrand spawns the worker goroutine. onExit runs when the worker winds
// down, before done is closed.
func newStrand(minWait, maxWait time.Duration, onExit func()) *strand {
	st := &strand{
		queue: mpsc.New[strandMsg](),
		done:  make(chan struct{}),
	}
	go st.listen(minWait, maxWait, onExit)
	return st
}

// listen drains the strand queue until it sees a stop message. An idle
// worker sleeps on an exponential curve from minWait up to maxWait, then
// parks on a blocking dequeue so the next enqueue wakes it immediately.
func (st *strand) listen(minWait, maxWait time.Duration, onExit func()) {
	defer close(st.done)
	defer onExit()

	idle := backoff.NewExponentialBackOff(
		backoff.WithInitialInterval(minWait),
		backoff.WithRandomizationFactor(0),
		backoff.WithMultiplier(2),
		backoff.WithMaxInterval(maxWait),
		backoff.WithMaxElapsedTime(0),
	)

	for {
		msg, ok := st.queue.Dequeue()
		if !ok {
			wait := idle.NextBackOff()
			if wait < maxWait {
				time.Sleep(wait)
				continue
			}
			msg = st.queue.BlockingDequeue()
		}

		if msg.stop {
			return
		}

		msg.run()
		idle.Reset()
	}
}

// stop enqueues the stop message without waiting for the worker.
func (st *strand) stop() {
	st.queue.Enqueue(strandMsg{stop: true})
}

// wait blocks until the worker has exited.
func (st *strand) wait() {
	<-st.done
}

// join shuts the worker down and waits for it. Tasks queued ahead of the
// stop message still run. Must not be called from the strand's own worker.
func (st *strand) join() {
	st.stop()
	st.wait()
}
