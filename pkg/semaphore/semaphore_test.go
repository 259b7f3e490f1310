package semaphore_test

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/simple555a/SignalsAndSlots/pkg/semaphore"
)

func TestSemaphore_CapacityClamp(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 1, semaphore.New(0).Capacity())
	assert.Equal(t, 1, semaphore.New(-5).Capacity())
	assert.Equal(t, 16, semaphore.New(16).Capacity())
}

func TestSemaphore_AcquireRelease(t *testing.T) {
	t.Parallel()

	sem := semaphore.New(2)
	assert.Equal(t, 0, sem.InFlight())

	sem.Acquire()
	sem.Acquire()
	assert.Equal(t, 2, sem.InFlight())

	sem.Release()
	assert.Equal(t, 1, sem.InFlight())

	sem.Release()
	assert.Equal(t, 0, sem.InFlight())
}

func TestSemaphore_TryAcquire(t *testing.T) {
	t.Parallel()

	sem := semaphore.New(1)
	require.True(t, sem.TryAcquire())
	assert.False(t, sem.TryAcquire(), "exhausted semaphore must not admit")

	sem.Release()
	assert.True(t, sem.TryAcquire())
}

func TestSemaphore_AcquireBlocksUntilRelease(t *testing.T) {
	t.Parallel()

	sem := semaphore.New(1)
	sem.Acquire()

	var acquired atomic.Bool
	done := make(chan struct{})
	go func() {
		defer close(done)
		sem.Acquire()
		acquired.Store(true)
	}()

	// The second acquire must be blocked while the slot is held.
	time.Sleep(50 * time.Millisecond)
	assert.False(t, acquired.Load(), "acquire should block while exhausted")

	sem.Release()
	select {
	case <-done:
		assert.True(t, acquired.Load())
	case <-time.After(time.Second):
		t.Fatal("blocked acquire was not woken by release")
	}

	sem.Release()
}

func TestSemaphore_AcquireContext(t *testing.T) {
	t.Parallel()

	t.Run("succeeds when capacity is free", func(t *testing.T) {
		t.Parallel()

		sem := semaphore.New(1)
		require.NoError(t, sem.AcquireContext(context.Background()))
		assert.Equal(t, 1, sem.InFlight())
	})

	t.Run("respects pre-cancelled context", func(t *testing.T) {
		t.Parallel()

		sem := semaphore.New(1)
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		err := sem.AcquireContext(ctx)
		assert.ErrorIs(t, err, context.Canceled)
		assert.Equal(t, 0, sem.InFlight(), "cancelled acquire must not claim a slot")
	})

	t.Run("unblocks on cancellation", func(t *testing.T) {
		t.Parallel()

		sem := semaphore.New(1)
		sem.Acquire()

		ctx, cancel := context.WithCancel(context.Background())
		errCh := make(chan error, 1)
		go func() {
			errCh <- sem.AcquireContext(ctx)
		}()

		time.Sleep(50 * time.Millisecond)
		cancel()

		select {
		case err := <-errCh:
			assert.ErrorIs(t, err, context.Canceled)
		case <-time.After(time.Second):
			t.Fatal("cancelled acquire did not return")
		}
	})
}

func TestSemaphore_ReleaseWithoutAcquirePanics(t *testing.T) {
	t.Parallel()

	sem := semaphore.New(1)
	assert.Panics(t, func() { sem.Release() })
}
