package snowflake

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

// TestInit mutates package state, so it must not run in parallel.
func TestInit(t *testing.T) {
	t.Run("valid node ID", func(t *testing.T) {
		require.NoError(t, Init(1))
	})

	t.Run("negative node ID", func(t *testing.T) {
		require.Error(t, Init(-1))
	})

	t.Run("node ID above max", func(t *testing.T) {
		require.Error(t, Init(1024))
	})

	// Reset to a valid node for subsequent tests
	require.NoError(t, Init(0))
}

func TestNextID_Uniqueness(t *testing.T) {
	require.NoError(t, Init(0))

	const count = 5000
	seen := make(map[int64]bool, count)
	for i := 0; i < count; i++ {
		id := NextID()
		require.False(t, seen[id], "duplicate ID: %d", id)
		require.Positive(t, id)
		seen[id] = true
	}
}

func TestNextID_Concurrent(t *testing.T) {
	require.NoError(t, Init(0))

	const goroutines = 8
	const perGoroutine = 500

	var wg sync.WaitGroup
	results := make([][]int64, goroutines)
	for g := 0; g < goroutines; g++ {
		wg.Add(1)
		go func(g int) {
			defer wg.Done()
			ids := make([]int64, perGoroutine)
			for i := range ids {
				ids[i] = NextID()
			}
			results[g] = ids
		}(g)
	}
	wg.Wait()

	seen := make(map[int64]bool, goroutines*perGoroutine)
	for _, ids := range results {
		for _, id := range ids {
			require.False(t, seen[id], "duplicate ID in concurrent run: %d", id)
			seen[id] = true
		}
	}
	require.Len(t, seen, goroutines*perGoroutine)
}
