package batch

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunOneResultPerHost(t *testing.T) {
	hosts := []string{"fw01", "fw02", "fw03", "fw04", "fw05"}

	results := Run(context.Background(), hosts, 2, func(_ context.Context, host string) (string, error) {
		return strings.ToUpper(host), nil
	})

	require.Len(t, results, len(hosts))
	for i, res := range results {
		assert.Equal(t, hosts[i], res.Host, "results must follow input order")
		assert.Equal(t, strings.ToUpper(hosts[i]), res.Value)
		assert.NoError(t, res.Err)
	}
}

func TestRunSingletonMatchesBatch(t *testing.T) {
	query := func(_ context.Context, host string) (string, error) {
		if host == "fw02" {
			return "", fmt.Errorf("%s: connection refused", host)
		}
		return "config for " + host, nil
	}

	single := Run(context.Background(), []string{"fw01"}, 0, query)
	many := Run(context.Background(), []string{"fw01", "fw02", "fw03"}, 0, query)

	require.Len(t, single, 1)
	require.Len(t, many, 3)
	assert.Equal(t, single[0], many[0], "parallelism must not change a host's outcome")
}

func TestRunPartialFailure(t *testing.T) {
	query := func(_ context.Context, host string) (int, error) {
		if host == "fw02" {
			return 0, fmt.Errorf("%s: timeout", host)
		}
		return 42, nil
	}

	results := Run(context.Background(), []string{"fw01", "fw02", "fw03"}, 0, query)

	require.Len(t, results, 3)
	assert.NoError(t, results[0].Err)
	assert.Error(t, results[1].Err)
	assert.NoError(t, results[2].Err)
	assert.Equal(t, 42, results[0].Value)
	assert.Equal(t, 42, results[2].Value)
}

func TestRunHonorsLimit(t *testing.T) {
	const limit = 3

	var active, peak int64
	var mu sync.Mutex

	hosts := make([]string, 20)
	for i := range hosts {
		hosts[i] = fmt.Sprintf("fw%02d", i)
	}

	results := Run(context.Background(), hosts, limit, func(_ context.Context, host string) (struct{}, error) {
		n := atomic.AddInt64(&active, 1)
		mu.Lock()
		if n > peak {
			peak = n
		}
		mu.Unlock()
		defer atomic.AddInt64(&active, -1)
		return struct{}{}, nil
	})

	require.Len(t, results, len(hosts))
	mu.Lock()
	defer mu.Unlock()
	assert.LessOrEqual(t, peak, int64(limit))
}

func TestRunCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	results := Run(ctx, []string{"fw01", "fw02"}, 1, func(ctx context.Context, host string) (string, error) {
		return "", ctx.Err()
	})

	require.Len(t, results, 2)
	for _, res := range results {
		assert.Error(t, res.Err)
	}
}
