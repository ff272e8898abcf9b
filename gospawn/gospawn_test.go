package gospawn_test

import (
	"context"
	"testing"
	"time"

	"github.com/b97tsk/spawn"
	"github.com/b97tsk/spawn/gospawn"
	"github.com/stretchr/testify/require"
)

func TestSpawnerDelivers(t *testing.T) {
	s := spawn.New(gospawn.NewSpawner())
	defer s.Close()

	results := make(chan int, 1)
	require.NoError(t, s.Go(func(ctx context.Context) { results <- 42 }))

	select {
	case v := <-results:
		require.Equal(t, 42, v)
	case <-time.After(5 * time.Second):
		t.Fatal("future did not run")
	}
}

func TestSpawnerStateless(t *testing.T) {
	s := spawn.New(gospawn.NewSpawner())

	// Clone and close in any order; there is no shared state to unbalance.
	c := s.Clone()
	s.Close()
	c.Close()

	s2 := spawn.New(gospawn.NewSpawner())
	results := make(chan int, 1)
	require.NoError(t, s2.Go(func(ctx context.Context) { results <- 1 }))
	require.Equal(t, 1, <-results)
	s2.Close()
}
