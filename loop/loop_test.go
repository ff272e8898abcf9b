package loop_test

import (
	"context"
	"testing"
	"time"

	"github.com/b97tsk/spawn/loop"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestRunUntilIdleRunsFIFO(t *testing.T) {
	l := loop.New()

	var order []int
	for i := 1; i <= 3; i++ {
		require.NoError(t, l.Spawn(func(ctx context.Context) { order = append(order, i) }))
	}

	l.RunUntilIdle()
	require.Equal(t, []int{1, 2, 3}, order)
}

func TestTasksCanSpawnTasks(t *testing.T) {
	l := loop.New()

	var order []string
	require.NoError(t, l.Spawn(func(ctx context.Context) {
		order = append(order, "outer")
		_ = l.Spawn(func(ctx context.Context) { order = append(order, "inner") })
	}))

	l.RunUntilIdle()
	require.Equal(t, []string{"outer", "inner"}, order)
}

func TestRunReturnsWhenCanceled(t *testing.T) {
	l := loop.New()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	require.ErrorIs(t, l.Run(ctx), context.Canceled)
}

func TestRunDrainsAfterClose(t *testing.T) {
	l := loop.New()

	ran := false
	require.NoError(t, l.Spawn(func(ctx context.Context) { ran = true }))
	l.Close()

	require.NoError(t, l.Run(context.Background()))
	require.True(t, ran)
}

func TestRunWakesOnSpawn(t *testing.T) {
	l := loop.New()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan error, 1)
	go func() { done <- l.Run(ctx) }()

	results := make(chan int, 1)
	require.NoError(t, l.Spawn(func(ctx context.Context) { results <- 42 }))

	select {
	case v := <-results:
		require.Equal(t, 42, v)
	case <-time.After(5 * time.Second):
		t.Fatal("task did not run")
	}

	l.Close()
	require.NoError(t, <-done)
}

func TestSpawnAfterClose(t *testing.T) {
	l := loop.New()
	l.Close()
	l.Close() // safe to repeat

	require.ErrorIs(t, l.Spawn(func(ctx context.Context) {}), loop.ErrClosed)
}

func TestPanickingTaskDoesNotKillLoop(t *testing.T) {
	core, logs := observer.New(zap.ErrorLevel)
	l := loop.New(loop.WithLogger(zap.New(core)))

	ran := false
	require.NoError(t, l.Spawn(func(ctx context.Context) { panic("boom") }))
	require.NoError(t, l.Spawn(func(ctx context.Context) { ran = true }))

	l.RunUntilIdle()

	require.True(t, ran)
	require.Equal(t, 1, logs.Len())
	entry := logs.All()[0]
	require.Equal(t, "task panicked", entry.Message)
	require.Equal(t, "boom", entry.ContextMap()["value"])
}
