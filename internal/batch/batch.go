// Package batch fans a query out to multiple hosts with a bounded worker
// pool and collects exactly one result per host.
package batch

import (
	"context"
	"sync"

	"golang.org/x/sync/semaphore"
)

// DefaultLimit bounds concurrent queries when the caller does not supply
// a limit. Kept small to avoid saturating firewall management planes.
const DefaultLimit = 25

// Result is the per-host outcome of a batch. Either Value or Err is set,
// never both.
type Result[T any] struct {
	Host  string
	Value T
	Err   error
}

// Run executes fn once per host, concurrently up to limit workers, and
// returns one Result per host in input order. A host's failure is
// recorded in its Result and never aborts the batch. A single-host batch
// runs inline on the calling goroutine.
func Run[T any](ctx context.Context, hosts []string, limit int64, fn func(ctx context.Context, host string) (T, error)) []Result[T] {
	results := make([]Result[T], len(hosts))

	if len(hosts) == 1 {
		v, err := fn(ctx, hosts[0])
		results[0] = Result[T]{Host: hosts[0], Value: v, Err: err}
		return results
	}

	if limit <= 0 {
		limit = DefaultLimit
	}

	sem := semaphore.NewWeighted(limit)
	var wg sync.WaitGroup
	for i, host := range hosts {
		if err := sem.Acquire(ctx, 1); err != nil {
			results[i] = Result[T]{Host: host, Err: err}
			continue
		}
		wg.Add(1)
		go func(i int, host string) {
			defer wg.Done()
			defer sem.Release(1)
			v, err := fn(ctx, host)
			results[i] = Result[T]{Host: host, Value: v, Err: err}
		}(i, host)
	}
	wg.Wait()

	return results
}
