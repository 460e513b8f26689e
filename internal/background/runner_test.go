package background

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/playforge/bangate/internal/testutil"
)

func TestGoRunsTask(t *testing.T) {
	r := New(testutil.NopLogger())

	var ran atomic.Bool
	r.Go("task", func(ctx context.Context) error {
		ran.Store(true)
		return nil
	})

	r.Wait()
	assert.True(t, ran.Load())
}

func TestErrorsAreSwallowed(t *testing.T) {
	r := New(testutil.NopLogger())

	r.Go("failing", func(ctx context.Context) error {
		return errors.New("boom")
	})

	// Must not panic or block
	r.Wait()
}

func TestPanicsAreContained(t *testing.T) {
	r := New(testutil.NopLogger())

	r.Go("panicking", func(ctx context.Context) error {
		panic("boom")
	})

	r.Wait()
}

func TestTaskContextNotTiedToCaller(t *testing.T) {
	r := New(testutil.NopLogger())

	var taskErr atomic.Value
	r.Go("detached", func(ctx context.Context) error {
		taskErr.Store(ctx.Err() == nil)
		return nil
	})

	r.Wait()
	assert.Equal(t, true, taskErr.Load())
}

func TestWaitCoversMultipleTasks(t *testing.T) {
	r := New(testutil.NopLogger())

	var count atomic.Int32
	for i := 0; i < 10; i++ {
		r.Go("task", func(ctx context.Context) error {
			count.Add(1)
			return nil
		})
	}

	r.Wait()
	assert.Equal(t, int32(10), count.Load())
}
