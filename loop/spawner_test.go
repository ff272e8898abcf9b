package loop_test

import (
	"context"
	"testing"

	"github.com/b97tsk/spawn"
	"github.com/b97tsk/spawn/loop"
	"github.com/stretchr/testify/require"
)

func TestSpawnerDelivers(t *testing.T) {
	l := loop.New()
	s := spawn.New(loop.NewSpawner(l))
	defer s.Close()

	results := make(chan int, 1)
	require.NoError(t, s.Go(func(ctx context.Context) { results <- 42 }))

	l.RunUntilIdle()
	require.Equal(t, 42, <-results)
}

func TestSpawnerShutdown(t *testing.T) {
	l := loop.New()
	s := spawn.New(loop.NewSpawner(l))
	defer s.Close()

	l.Close()

	err := s.Go(func(ctx context.Context) {})
	require.ErrorIs(t, err, spawn.ErrShutdown)
	require.ErrorIs(t, err, loop.ErrClosed)
}

func TestSpawnerCloneOutlivesOriginal(t *testing.T) {
	l := loop.New()
	s := spawn.New(loop.NewSpawner(l))
	c := s.Clone()

	s.Close()

	results := make(chan int, 1)
	require.NoError(t, c.Go(func(ctx context.Context) { results <- 42 }))
	c.Close()

	l.RunUntilIdle()
	require.Equal(t, 42, <-results)
}
