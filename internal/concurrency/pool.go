package concurrency

import (
	"context"
	"sync"
)

// TaskFn processes the task at index. Implementations must be safe to run
// from multiple goroutines.
type TaskFn func(ctx context.Context, index int)

// ForEach fans tasks out across at most workers goroutines and waits for all
// of them. Task indexes are handed out in order through a shared channel.
func ForEach(ctx context.Context, workers, tasks int, fn TaskFn) {
	if tasks == 0 {
		return
	}
	if workers > tasks {
		workers = tasks
	}
	if workers < 1 {
		workers = 1
	}

	indexes := make(chan int)
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range indexes {
				fn(ctx, idx)
			}
		}()
	}

	for i := 0; i < tasks; i++ {
		select {
		case indexes <- i:
		case <-ctx.Done():
			close(indexes)
			wg.Wait()
			return
		}
	}
	close(indexes)
	wg.Wait()
}
