// Package credentials persists the single bearer-credential slot the client
// keeps between runs. The slot holds an opaque string; no format checking
// happens here — decoding and expiry are the session package's job.
package credentials

import "context"

// Store is the durable credential slot.
//
// Contract:
//   - Set persists the credential; an empty input is a logged no-op.
//   - Get returns the stored credential, or "" when none is set.
//   - Clear removes the stored value and is idempotent.
type Store interface {
	Set(ctx context.Context, credential string) error
	Get(ctx context.Context) (string, error)
	Clear(ctx context.Context) error
}
