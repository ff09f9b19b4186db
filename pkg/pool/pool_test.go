package pool_test

import (
	"context"
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"github.com/dmaraujo/agendo/pkg/pool"
	"github.com/stretchr/testify/assert"
)

func TestRun_ProcessesAllItems(t *testing.T) {
	items := []int{1, 2, 3, 4, 5, 6, 7, 8}
	var processed int64

	errs := pool.Run(context.Background(), items, 3, func(ctx context.Context, item int) error {
		atomic.AddInt64(&processed, 1)
		return nil
	})

	assert.Empty(t, errs)
	assert.Equal(t, int64(len(items)), atomic.LoadInt64(&processed))
}

func TestRun_CollectsWorkerErrors(t *testing.T) {
	items := []int{1, 2, 3, 4}

	errs := pool.Run(context.Background(), items, 2, func(ctx context.Context, item int) error {
		if item%2 == 0 {
			return fmt.Errorf("item %d failed", item)
		}
		return nil
	})

	assert.Len(t, errs, 2)
}

func TestRun_StopsFeedingOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	items := make([]int, 100)
	for i := range items {
		items[i] = i
	}

	var processed int64
	errs := pool.Run(ctx, items, 1, func(ctx context.Context, item int) error {
		if atomic.AddInt64(&processed, 1) == 3 {
			cancel()
		}
		time.Sleep(time.Millisecond)
		return nil
	})

	assert.Empty(t, errs)
	assert.Less(t, atomic.LoadInt64(&processed), int64(len(items)))
}

func TestRun_ClampsWorkerCount(t *testing.T) {
	errs := pool.Run(context.Background(), []int{1, 2}, 0, func(ctx context.Context, item int) error {
		return nil
	})
	assert.Empty(t, errs)
}
