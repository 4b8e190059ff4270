// Package rank is the shared leaderboard builder. Every ranked result in the
// engine (role leaderboards, similarity shortlists, per-player top roles)
// goes through TopN so the tie-break semantics are identical everywhere.
package rank

import (
	"context"
	"fmt"
	"sort"
	"sync"
)

// TopN sorts items descending by score and returns at most n of them. Ties
// keep their relative order from the input slice; the player pool is sorted
// alphabetically at load time, so equal scores come back in name order. The
// input slice is never reordered.
func TopN[T any](items []T, score func(T) float64, n int) []T {
	if n < 0 {
		n = 0
	}
	out := make([]T, len(items))
	copy(out, items)
	sort.SliceStable(out, func(i, j int) bool {
		return score(out[i]) > score(out[j])
	})
	if n < len(out) {
		out = out[:n]
	}
	return out
}

// ScoreAll evaluates score for every item, sharded across workers, and
// returns the results aligned with the input order. Per-item scoring is
// independent, so shards never coordinate; ordering only matters at the
// final sort, which stays with TopN. workers < 2 runs inline.
func ScoreAll[T any](ctx context.Context, items []T, workers int, score func(T) float64) ([]float64, error) {
	out := make([]float64, len(items))
	if workers < 2 || len(items) < workers {
		for i, it := range items {
			if err := ctx.Err(); err != nil {
				return nil, fmt.Errorf("scoring cancelled: %w", err)
			}
			out[i] = score(it)
		}
		return out, nil
	}

	var wg sync.WaitGroup
	chunk := (len(items) + workers - 1) / workers
	for start := 0; start < len(items); start += chunk {
		end := start + chunk
		if end > len(items) {
			end = len(items)
		}
		wg.Add(1)
		go func(lo, hi int) {
			defer wg.Done()
			for i := lo; i < hi; i++ {
				if ctx.Err() != nil {
					return
				}
				out[i] = score(items[i])
			}
		}(start, end)
	}
	wg.Wait()
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("scoring cancelled: %w", err)
	}
	return out, nil
}
