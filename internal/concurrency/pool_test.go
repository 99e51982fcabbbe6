package concurrency_test

import (
	"context"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/beanbarn/storefront/internal/concurrency"
)

func TestForEachProcessesEveryTask(t *testing.T) {
	var sum int64
	concurrency.ForEach(context.Background(), 4, 100, func(_ context.Context, i int) {
		atomic.AddInt64(&sum, int64(i))
	})
	require.EqualValues(t, 4950, sum)
}

func TestForEachMoreWorkersThanTasks(t *testing.T) {
	var calls int64
	concurrency.ForEach(context.Background(), 16, 3, func(_ context.Context, i int) {
		atomic.AddInt64(&calls, 1)
	})
	require.EqualValues(t, 3, calls)
}

func TestForEachZeroTasks(t *testing.T) {
	concurrency.ForEach(context.Background(), 4, 0, func(_ context.Context, i int) {
		t.Fatal("should not be called")
	})
}
