package signal_test

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/simple555a/SignalsAndSlots/core/signal"
	"github.com/simple555a/SignalsAndSlots/pkg/workerpool"
)

// newTestPool returns a private started-on-demand pool so tests do not
// depend on the process-wide shared instance.
func newTestPool(t *testing.T) *workerpool.Pool {
	t.Helper()

	pool := workerpool.New(workerpool.WithWorkers(2))
	t.Cleanup(func() {
		if pool.Running() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			require.NoError(t, pool.Stop(ctx))
		}
	})
	return pool
}

func TestConnect_AssignsUniqueIncreasingIDs(t *testing.T) {
	t.Parallel()

	sig := signal.New[int](signal.WithPool(newTestPool(t)))
	defer sig.DisconnectAll()

	noop := func(int) {}

	// IDs come from one counter shared by all four schemes.
	schemes := []signal.Scheme{
		signal.Synchronous,
		signal.Asynchronous,
		signal.Strand,
		signal.Pooled,
		signal.Synchronous,
	}

	var prev signal.SlotID
	for i, scheme := range schemes {
		id, err := sig.Connect(scheme, noop)
		require.NoError(t, err)

		if i == 0 {
			assert.Equal(t, signal.SlotID(0), id, "first ID must be 0")
		} else {
			assert.Greater(t, id, prev, "IDs must strictly increase in connection order")
		}
		prev = id
	}

	assert.Equal(t, len(schemes), sig.Connected())
}

func TestConnect_IndependentCountersPerSignal(t *testing.T) {
	t.Parallel()

	sigA := signal.New[string]()
	sigB := signal.New[string]()

	idA, err := sigA.Connect(signal.Synchronous, func(string) {})
	require.NoError(t, err)
	idB, err := sigB.Connect(signal.Synchronous, func(string) {})
	require.NoError(t, err)

	assert.Equal(t, signal.SlotID(0), idA)
	assert.Equal(t, signal.SlotID(0), idB)
}

func TestConnect_Validation(t *testing.T) {
	t.Parallel()

	t.Run("rejects unknown scheme", func(t *testing.T) {
		t.Parallel()

		sig := signal.New[int]()
		_, err := sig.Connect(signal.Scheme(42), func(int) {})

		assert.ErrorIs(t, err, signal.ErrInvalidScheme)
		assert.Equal(t, 0, sig.Connected())
	})

	t.Run("rejects nil slot", func(t *testing.T) {
		t.Parallel()

		sig := signal.New[int]()
		_, err := sig.Connect(signal.Synchronous, nil)

		assert.ErrorIs(t, err, signal.ErrNilSlot)
		assert.Equal(t, 0, sig.Connected())
	})
}

func TestConnect_SameFunctionTwice(t *testing.T) {
	t.Parallel()

	calls := 0
	slot := func(int) { calls++ }

	sig := signal.New[int]()
	first, err := sig.Connect(signal.Synchronous, slot)
	require.NoError(t, err)
	second, err := sig.Connect(signal.Synchronous, slot)
	require.NoError(t, err)

	require.NotEqual(t, first, second, "each connection holds its own ID")
	require.Equal(t, 2, sig.Connected())

	require.NoError(t, sig.Emit(context.Background(), 7))
	assert.Equal(t, 2, calls)

	// Dropping one registration leaves the other delivering.
	sig.Disconnect(first)
	require.NoError(t, sig.Emit(context.Background(), 7))
	assert.Equal(t, 3, calls)
}

func TestConnect_PooledRejectedByStoppedPool(t *testing.T) {
	t.Parallel()

	pool := workerpool.New(workerpool.WithWorkers(1))
	require.NoError(t, pool.Start())
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	require.NoError(t, pool.Stop(ctx))

	sig := signal.New[int](signal.WithPool(pool))
	_, err := sig.Connect(signal.Pooled, func(int) {})

	require.Error(t, err)
	assert.ErrorIs(t, err, workerpool.ErrStopped)
	assert.Equal(t, 0, sig.Connected(), "a failed connect must not register the slot")
}

func TestConnect_PooledStartsPoolExactlyOnce(t *testing.T) {
	t.Parallel()

	pool := newTestPool(t)

	sigA := signal.New[int](signal.WithPool(pool))
	defer sigA.DisconnectAll()
	sigB := signal.New[string](signal.WithPool(pool))
	defer sigB.DisconnectAll()

	var countA, countB atomic.Int64
	_, err := sigA.Connect(signal.Pooled, func(int) { countA.Add(1) })
	require.NoError(t, err)
	_, err = sigB.Connect(signal.Pooled, func(string) { countB.Add(1) })
	require.NoError(t, err)

	assert.Equal(t, int64(1), pool.Stats().Starts, "engines sharing a pool must share one start-up")

	require.NoError(t, sigA.Emit(context.Background(), 1))
	require.NoError(t, sigB.Emit(context.Background(), "x"))

	require.Eventually(t, func() bool {
		return countA.Load() == 1 && countB.Load() == 1
	}, time.Second, 5*time.Millisecond)
}

func TestDisconnect_UnknownID(t *testing.T) {
	t.Parallel()

	sig := signal.New[int]()
	_, err := sig.Connect(signal.Synchronous, func(int) {})
	require.NoError(t, err)

	assert.NotPanics(t, func() { sig.Disconnect(signal.SlotID(999)) })
	assert.Equal(t, 1, sig.Connected())

	// Disconnecting twice is equally a no-op the second time.
	sig.Disconnect(0)
	assert.NotPanics(t, func() { sig.Disconnect(0) })
	assert.Equal(t, 0, sig.Connected())
}

func TestDisconnect_StrandJoinsWorker(t *testing.T) {
	t.Parallel()

	sig := signal.New[int]()

	id, err := sig.Connect(signal.Strand, func(int) {})
	require.NoError(t, err)
	assert.Equal(t, int32(1), sig.Stats().ActiveStrands)

	sig.Disconnect(id)
	assert.Equal(t, int32(0), sig.Stats().ActiveStrands, "disconnect must join the strand worker before returning")
	assert.Equal(t, 0, sig.Connected())
}

func TestDisconnect_StrandDrainsQueuedWork(t *testing.T) {
	t.Parallel()

	delivered := make(chan int, 3)
	sig := signal.New[int]()

	id, err := sig.Connect(signal.Strand, func(v int) {
		time.Sleep(10 * time.Millisecond)
		delivered <- v
	})
	require.NoError(t, err)

	for i := 1; i <= 3; i++ {
		require.NoError(t, sig.Emit(context.Background(), i))
	}

	// The stop message queues behind the three emissions, so all of them
	// still run before the worker exits.
	sig.Disconnect(id)

	close(delivered)
	var got []int
	for v := range delivered {
		got = append(got, v)
	}
	assert.Equal(t, []int{1, 2, 3}, got)
}

func TestDisconnectAll(t *testing.T) {
	t.Parallel()

	t.Run("with no slots", func(t *testing.T) {
		t.Parallel()

		sig := signal.New[int]()
		assert.NotPanics(t, sig.DisconnectAll)
		assert.Equal(t, 0, sig.Connected())
	})

	t.Run("removes every scheme and joins every strand", func(t *testing.T) {
		t.Parallel()

		sig := signal.New[int](signal.WithPool(newTestPool(t)))

		_, err := sig.Connect(signal.Synchronous, func(int) {})
		require.NoError(t, err)
		_, err = sig.Connect(signal.Asynchronous, func(int) {})
		require.NoError(t, err)
		for i := 0; i < 3; i++ {
			_, err = sig.Connect(signal.Strand, func(int) {})
			require.NoError(t, err)
		}
		_, err = sig.Connect(signal.Pooled, func(int) {})
		require.NoError(t, err)

		require.Equal(t, 6, sig.Connected())
		require.Equal(t, int32(3), sig.Stats().ActiveStrands)

		sig.DisconnectAll()

		assert.Equal(t, 0, sig.Connected())
		assert.Equal(t, int32(0), sig.Stats().ActiveStrands, "every strand worker must be joined")
	})
}

func TestNewFromConfig(t *testing.T) {
	t.Parallel()

	cfg := signal.Config{
		ThreadSafeEmission: true,
		MaxAsync:           2,
		StrandMinWait:      time.Microsecond,
		StrandMaxWait:      time.Millisecond,
	}

	sig := signal.NewFromConfig[int](cfg)
	defer sig.DisconnectAll()

	assert.Equal(t, 2, sig.Stats().AsyncCapacity)

	// Thread-safe emission must hold: emit while connecting concurrently.
	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 0; i < 100; i++ {
			_, _ = sig.Connect(signal.Synchronous, func(int) {})
		}
	}()
	for i := 0; i < 100; i++ {
		require.NoError(t, sig.Emit(context.Background(), 1))
	}
	<-done
}

func TestStats_SlotCounts(t *testing.T) {
	t.Parallel()

	sig := signal.New[int](signal.WithPool(newTestPool(t)), signal.WithMaxAsync(8))
	defer sig.DisconnectAll()

	_, err := sig.Connect(signal.Synchronous, func(int) {})
	require.NoError(t, err)
	_, err = sig.Connect(signal.Asynchronous, func(int) {})
	require.NoError(t, err)
	_, err = sig.Connect(signal.Strand, func(int) {})
	require.NoError(t, err)
	_, err = sig.Connect(signal.Pooled, func(int) {})
	require.NoError(t, err)

	stats := sig.Stats()
	assert.Equal(t, 1, stats.Synchronous)
	assert.Equal(t, 1, stats.Asynchronous)
	assert.Equal(t, 1, stats.Strands)
	assert.Equal(t, 1, stats.Pooled)
	assert.Equal(t, int32(1), stats.ActiveStrands)
	assert.Equal(t, 0, stats.AsyncInFlight)
	assert.Equal(t, 8, stats.AsyncCapacity)
}

func TestHealthcheck(t *testing.T) {
	t.Parallel()

	t.Run("healthy when idle", func(t *testing.T) {
		t.Parallel()

		sig := signal.New[int]()
		assert.NoError(t, sig.Healthcheck(context.Background()))
	})

	t.Run("reports async saturation", func(t *testing.T) {
		t.Parallel()

		block := make(chan struct{})
		sig := signal.New[int](signal.WithMaxAsync(1))
		defer sig.DisconnectAll()

		_, err := sig.Connect(signal.Asynchronous, func(int) { <-block })
		require.NoError(t, err)

		// The admission slot is claimed inside Emit, so saturation is
		// visible as soon as it returns.
		require.NoError(t, sig.Emit(context.Background(), 1))

		err = sig.Healthcheck(context.Background())
		require.Error(t, err)
		assert.ErrorIs(t, err, signal.ErrHealthcheckFailed)
		assert.ErrorIs(t, err, signal.ErrAsyncSaturated)

		close(block)
		require.Eventually(t, func() bool {
			return sig.Healthcheck(context.Background()) == nil
		}, time.Second, 5*time.Millisecond)
	})

	t.Run("reports stopped pool with pooled slots", func(t *testing.T) {
		t.Parallel()

		pool := workerpool.New(workerpool.WithWorkers(1))
		sig := signal.New[int](signal.WithPool(pool))

		_, err := sig.Connect(signal.Pooled, func(int) {})
		require.NoError(t, err)
		require.NoError(t, sig.Healthcheck(context.Background()))

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		require.NoError(t, pool.Stop(ctx))

		err = sig.Healthcheck(context.Background())
		require.Error(t, err)
		assert.ErrorIs(t, err, signal.ErrHealthcheckFailed)
		assert.ErrorIs(t, err, signal.ErrPoolNotRunning)
	})
}

func TestSchemeString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "synchronous", signal.Synchronous.String())
	assert.Equal(t, "asynchronous", signal.Asynchronous.String())
	assert.Equal(t, "strand", signal.Strand.String())
	assert.Equal(t, "pooled", signal.Pooled.String())
	assert.Equal(t, "unknown", signal.Scheme(42).String())
}
