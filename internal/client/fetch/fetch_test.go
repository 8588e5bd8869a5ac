package fetch

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hubbub-app/hubbub-cli/internal/logging"
)

func testLogger() logging.Logger {
	return logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestFetcher_InitialState(t *testing.T) {
	f := New(func(ctx context.Context, key int64) ([]string, error) {
		return nil, nil
	}, []string{}, testLogger())

	s := f.State()
	assert.True(t, s.Loading)
	assert.Equal(t, []string{}, s.Data)
	assert.Empty(t, s.Err)
}

func TestFetcher_Success(t *testing.T) {
	f := New(func(ctx context.Context, key int64) ([]string, error) {
		return []string{"a", "b"}, nil
	}, []string{}, testLogger())

	f.Load(context.Background(), 1)
	f.Wait()

	s := f.State()
	assert.False(t, s.Loading)
	assert.Equal(t, []string{"a", "b"}, s.Data)
	assert.Empty(t, s.Err)
}

func TestFetcher_FailureSwallowsErrorIntoFixedMessage(t *testing.T) {
	f := New(func(ctx context.Context, key int64) ([]string, error) {
		return nil, errors.New("connection refused")
	}, []string{}, testLogger())

	f.Load(context.Background(), 1)
	f.Wait()

	s := f.State()
	assert.False(t, s.Loading)
	assert.Equal(t, []string{}, s.Data, "failure must fall back to the initial value")
	assert.Equal(t, FailureMessage, s.Err)
}

func TestFetcher_UnchangedKeyIsNoOp(t *testing.T) {
	var calls atomic.Int64
	f := New(func(ctx context.Context, key int64) (string, error) {
		calls.Add(1)
		return "data", nil
	}, "", testLogger())
	ctx := context.Background()

	f.Load(ctx, 1)
	f.Wait()
	f.Load(ctx, 1)
	f.Wait()

	assert.Equal(t, int64(1), calls.Load())

	f.Reload(ctx)
	f.Wait()
	assert.Equal(t, int64(2), calls.Load(), "Reload forces a fresh fetch")
}

func TestFetcher_ChangedKeySupersedesInFlightFetch(t *testing.T) {
	gate1 := make(chan struct{})
	f := New(func(ctx context.Context, key int64) (string, error) {
		if key == 1 {
			<-gate1 // keep the first fetch in flight
			return "stale", nil
		}
		return "fresh", nil
	}, "", testLogger())
	ctx := context.Background()

	f.Load(ctx, 1)
	f.Load(ctx, 2)

	// Let the newer fetch land first, then release the older one.
	require.Eventually(t, func() bool {
		s := f.State()
		return !s.Loading && s.Data == "fresh"
	}, time.Second, time.Millisecond)

	close(gate1)
	f.Wait()

	s := f.State()
	assert.Equal(t, "fresh", s.Data, "a stale result must never overwrite the newer one")
	assert.Empty(t, s.Err)
}

func TestFetcher_CloseDiscardsInFlightResult(t *testing.T) {
	gate := make(chan struct{})
	f := New(func(ctx context.Context, key int64) (string, error) {
		<-gate
		return "late", nil
	}, "initial", testLogger())
	ctx := context.Background()

	f.Load(ctx, 1)
	f.Close()
	close(gate)
	f.Wait()

	s := f.State()
	assert.NotEqual(t, "late", s.Data, "result arriving after teardown must be dropped")
}

func TestFetcher_OnChangeSeesLifecycle(t *testing.T) {
	states := make(chan State[string], 4)
	f := New(func(ctx context.Context, key int64) (string, error) {
		return "data", nil
	}, "", testLogger())
	f.OnChange(func(s State[string]) { states <- s })

	f.Load(context.Background(), 1)
	f.Wait()

	first := <-states
	assert.True(t, first.Loading)

	second := <-states
	assert.False(t, second.Loading)
	assert.Equal(t, "data", second.Data)
}

func TestFetcher_ContextCancelledFetchEndsInError(t *testing.T) {
	f := New(func(ctx context.Context, key int64) (string, error) {
		<-ctx.Done()
		return "", ctx.Err()
	}, "initial", testLogger())

	ctx, cancel := context.WithCancel(context.Background())
	f.Load(ctx, 1)
	cancel()
	f.Wait()

	s := f.State()
	assert.Equal(t, FailureMessage, s.Err)
	assert.Equal(t, "initial", s.Data)
}
