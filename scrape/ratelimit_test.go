package scrape_test

import (
	"context"
	"testing"
	"time"

	"github.com/mtoscano/cinelist/scrape"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDomainLimiter_FirstRequestImmediate(t *testing.T) {
	t.Parallel()

	l := scrape.NewDomainLimiter(1.0)

	start := time.Now()
	require.NoError(t, l.Wait(context.Background(), "www.imdb.com"))
	assert.Less(t, time.Since(start), 50*time.Millisecond)
}

func TestDomainLimiter_SecondRequestWaits(t *testing.T) {
	t.Parallel()

	l := scrape.NewDomainLimiter(10.0) // 100ms between requests

	require.NoError(t, l.Wait(context.Background(), "www.imdb.com"))

	start := time.Now()
	require.NoError(t, l.Wait(context.Background(), "www.imdb.com"))
	assert.GreaterOrEqual(t, time.Since(start), 50*time.Millisecond)
}

func TestDomainLimiter_DomainsIndependent(t *testing.T) {
	t.Parallel()

	l := scrape.NewDomainLimiter(1.0)

	require.NoError(t, l.Wait(context.Background(), "www.imdb.com"))

	start := time.Now()
	require.NoError(t, l.Wait(context.Background(), "m.imdb.com"))
	assert.Less(t, time.Since(start), 50*time.Millisecond)
}

func TestDomainLimiter_ContextCanceled(t *testing.T) {
	t.Parallel()

	l := scrape.NewDomainLimiter(0.1) // 10s between requests

	require.NoError(t, l.Wait(context.Background(), "www.imdb.com"))

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	assert.Error(t, l.Wait(ctx, "www.imdb.com"))
}
