package ingest_test

import (
	"context"
	"testing"
	"time"

	"github.com/fwojciec/pagemark/ingest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDomainLimiter(t *testing.T) {
	t.Parallel()

	t.Run("first wait per domain is immediate", func(t *testing.T) {
		t.Parallel()

		limiter := ingest.NewDomainLimiter(1)

		begin := time.Now()
		require.NoError(t, limiter.Wait(context.Background(), "example.com"))
		assert.Less(t, time.Since(begin), 50*time.Millisecond)
	})

	t.Run("limits are tracked per domain", func(t *testing.T) {
		t.Parallel()

		limiter := ingest.NewDomainLimiter(1)
		require.NoError(t, limiter.Wait(context.Background(), "a.example.com"))

		// A different domain gets its own limiter and is not delayed.
		begin := time.Now()
		require.NoError(t, limiter.Wait(context.Background(), "b.example.com"))
		assert.Less(t, time.Since(begin), 50*time.Millisecond)
	})

	t.Run("second wait on the same domain is delayed", func(t *testing.T) {
		t.Parallel()

		limiter := ingest.NewDomainLimiter(20)
		require.NoError(t, limiter.Wait(context.Background(), "example.com"))

		begin := time.Now()
		require.NoError(t, limiter.Wait(context.Background(), "example.com"))
		assert.GreaterOrEqual(t, time.Since(begin), 25*time.Millisecond)
	})

	t.Run("respects context cancellation", func(t *testing.T) {
		t.Parallel()

		limiter := ingest.NewDomainLimiter(0.001)
		require.NoError(t, limiter.Wait(context.Background(), "example.com"))

		ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
		defer cancel()

		err := limiter.Wait(ctx, "example.com")
		require.Error(t, err)
	})
}
