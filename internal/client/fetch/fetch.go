// Package fetch implements the shared read path used by every data-bound
// view: a small lifecycle around one remote call that tracks
// loading/success/error and never applies a result that is no longer live.
//
// Each view owns its own Fetcher. There is no cross-instance cache and no
// deduplication of concurrent identical requests.
package fetch

import (
	"context"
	"sync"

	"github.com/hubbub-app/hubbub-cli/internal/logging"
)

// FailureMessage is the fixed user-facing message every failed fetch
// reports. The underlying error is logged, never shown.
const FailureMessage = "Failed to fetch data. Please try again later."

// Func is the remote call a Fetcher drives.
type Func[K comparable, T any] func(ctx context.Context, key K) (T, error)

// State is one snapshot of the fetch lifecycle. While Loading is true, Data
// holds the initial value and Err is empty; afterwards exactly one of Data
// or Err is meaningful.
type State[T any] struct {
	Loading bool
	Data    T
	Err     string
}

// Fetcher runs fn through loading→success|error, re-fetching exactly when
// the key's value changes. A generation counter guards result application:
// every (re)load and Close bump it, and a completion whose generation is
// stale is discarded, so a superseded or torn-down fetch can never
// overwrite newer state.
type Fetcher[K comparable, T any] struct {
	fn      Func[K, T]
	initial T
	log     logging.Logger

	mu       sync.Mutex
	state    State[T]
	gen      uint64
	key      K
	hasKey   bool
	cancel   context.CancelFunc
	onChange func(State[T])

	wg sync.WaitGroup
}

func New[K comparable, T any](fn Func[K, T], initial T, log logging.Logger) *Fetcher[K, T] {
	return &Fetcher[K, T]{
		fn:      fn,
		initial: initial,
		log:     log,
		state:   State[T]{Loading: true, Data: initial},
	}
}

// OnChange registers a callback invoked with every state transition. It is
// called without the internal lock held, so reading State from inside is
// safe.
func (f *Fetcher[K, T]) OnChange(fn func(State[T])) {
	f.mu.Lock()
	f.onChange = fn
	f.mu.Unlock()
}

// State returns the latest snapshot.
func (f *Fetcher[K, T]) State() State[T] {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state
}

// Load fetches for the given key. An unchanged key is a no-op; a changed
// key supersedes any in-flight fetch.
func (f *Fetcher[K, T]) Load(ctx context.Context, key K) {
	f.mu.Lock()
	if f.hasKey && f.key == key {
		f.mu.Unlock()
		return
	}
	f.start(ctx, key)
}

// Reload forces a fresh fetch for the current key. Before the first Load it
// does nothing.
func (f *Fetcher[K, T]) Reload(ctx context.Context) {
	f.mu.Lock()
	if !f.hasKey {
		f.mu.Unlock()
		return
	}
	f.start(ctx, f.key)
}

// start begins a new generation. Caller holds f.mu; start releases it.
func (f *Fetcher[K, T]) start(ctx context.Context, key K) {
	if f.cancel != nil {
		f.cancel()
	}
	fctx, cancel := context.WithCancel(ctx)
	f.cancel = cancel

	f.gen++
	gen := f.gen
	f.key = key
	f.hasKey = true
	f.state = State[T]{Loading: true, Data: f.initial}

	snapshot := f.state
	notify := f.onChange
	f.mu.Unlock()

	if notify != nil {
		notify(snapshot)
	}

	f.wg.Add(1)
	go f.run(fctx, gen, key)
}

func (f *Fetcher[K, T]) run(ctx context.Context, gen uint64, key K) {
	defer f.wg.Done()

	data, err := f.fn(ctx, key)

	f.mu.Lock()
	if gen != f.gen {
		// Superseded or closed while in flight; the result is stale.
		f.mu.Unlock()
		return
	}
	if err != nil {
		f.log.Warn(ctx, "fetch failed", "error", err)
		f.state = State[T]{Data: f.initial, Err: FailureMessage}
	} else {
		f.state = State[T]{Data: data}
	}
	snapshot := f.state
	notify := f.onChange
	f.mu.Unlock()

	if notify != nil {
		notify(snapshot)
	}
}

// Close invalidates the Fetcher: the in-flight call (if any) is cancelled
// and its eventual result is discarded. Used on view teardown.
func (f *Fetcher[K, T]) Close() {
	f.mu.Lock()
	f.gen++
	if f.cancel != nil {
		f.cancel()
		f.cancel = nil
	}
	f.mu.Unlock()
}

// Wait blocks until all started fetches have completed or been discarded.
// Primarily a synchronization point for the sequential CLI and for tests.
func (f *Fetcher[K, T]) Wait() {
	f.wg.Wait()
}
