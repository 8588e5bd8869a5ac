// Package session derives the current principal from the stored credential.
//
// The credential is a signed token whose payload embeds a "user" claim. The
// derivation is a local, synchronous decode — no server round-trip — so it is
// safe to call before every render. The signature is deliberately not
// verified here: the server is the authority, the client only reads the
// claims it was handed.
package session

import (
	"context"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/hubbub-app/hubbub-cli/internal/client/credentials"
	"github.com/hubbub-app/hubbub-cli/internal/client/models"
	"github.com/hubbub-app/hubbub-cli/internal/logging"
)

type claims struct {
	jwt.RegisteredClaims
	User models.User `json:"user"`
}

// Session owns the credential lifecycle: sign-in stores the credential,
// sign-out and local expiry clear it, and Principal exposes the identity it
// currently proves. Constructed once at the application root and passed to
// whatever needs it.
type Session struct {
	store  credentials.Store
	log    logging.Logger
	parser *jwt.Parser
	now    func() time.Time
}

func New(store credentials.Store, log logging.Logger) *Session {
	return &Session{
		store:  store,
		log:    log,
		parser: jwt.NewParser(),
		now:    time.Now,
	}
}

// Principal returns the identity embedded in the stored credential, or nil
// when there is none.
//
// An expired credential is purged from the store and reported as absent —
// silent sign-out, not an error. A credential that cannot be decoded is a
// defect condition and fails closed to absent rather than propagating.
// A non-nil error only signals a storage failure.
func (s *Session) Principal(ctx context.Context) (*models.User, error) {
	raw, err := s.store.Get(ctx)
	if err != nil {
		return nil, err
	}
	if raw == "" {
		return nil, nil
	}

	var c claims
	if _, _, err := s.parser.ParseUnverified(raw, &c); err != nil {
		s.log.Warn(ctx, "stored credential is malformed", "error", err)
		return nil, nil
	}
	if c.ExpiresAt == nil {
		s.log.Warn(ctx, "stored credential carries no expiry")
		return nil, nil
	}

	if !s.now().Before(c.ExpiresAt.Time) {
		s.log.Info(ctx, "credential expired, signing out")
		if err := s.store.Clear(ctx); err != nil {
			s.log.Error(ctx, "failed to clear expired credential", "error", err)
		}
		return nil, nil
	}

	return &c.User, nil
}

// SignIn persists the credential. Dependents that recompute the principal
// after this call observe the new identity.
func (s *Session) SignIn(ctx context.Context, credential string) error {
	return s.store.Set(ctx, credential)
}

// SignOut discards the stored credential.
func (s *Session) SignOut(ctx context.Context) error {
	return s.store.Clear(ctx)
}
