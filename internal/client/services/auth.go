// Package services contains application services for the Hubbub client:
// thin orchestration over the API client and the session, shaped for the
// interactive views.
package services

import (
	"context"
	"fmt"

	"github.com/hubbub-app/hubbub-cli/internal/client/api"
	"github.com/hubbub-app/hubbub-cli/internal/client/models"
	"github.com/hubbub-app/hubbub-cli/internal/client/session"
)

// AuthService defines authentication operations for the CLI.
//
// Contract:
//   - SignUp: create an account on the server.
//   - SignIn: authenticate, persist the returned credential, and expose the
//     principal it proves.
//   - SignOut: discard the stored credential.
//   - Principal: derive the current identity locally (no network).
//   - Profile: fetch the authenticated profile from the server.
//
// All methods must honor context cancellation/timeouts.
type AuthService interface {
	SignUp(ctx context.Context, form models.SignUpForm) (*models.User, error)
	SignIn(ctx context.Context, username, password string) (*models.User, error)
	SignOut(ctx context.Context) error
	Principal(ctx context.Context) (*models.User, error)
	Profile(ctx context.Context) (*models.User, error)
	Close(ctx context.Context) error
}

type authService struct {
	client  api.Client
	session *session.Session
}

// NewAuthService constructs an AuthService bound to the given API client
// and session.
func NewAuthService(client api.Client, session *session.Session) AuthService {
	return &authService{client: client, session: session}
}

func (a *authService) SignUp(ctx context.Context, form models.SignUpForm) (*models.User, error) {
	user, err := a.client.SignUp(ctx, form)
	if err != nil {
		return nil, fmt.Errorf("sign up error: %w", err)
	}
	return user, nil
}

// SignIn stores the credential returned by the server and then recomputes
// the principal from it, so the caller always observes the post-write
// identity.
func (a *authService) SignIn(ctx context.Context, username, password string) (*models.User, error) {
	token, err := a.client.SignIn(ctx, models.SignInForm{Username: username, Password: password})
	if err != nil {
		return nil, fmt.Errorf("sign in error: %w", err)
	}

	if err := a.session.SignIn(ctx, token); err != nil {
		return nil, fmt.Errorf("credential saving error: %w", err)
	}

	return a.session.Principal(ctx)
}

func (a *authService) SignOut(ctx context.Context) error {
	return a.session.SignOut(ctx)
}

func (a *authService) Principal(ctx context.Context) (*models.User, error) {
	return a.session.Principal(ctx)
}

func (a *authService) Profile(ctx context.Context) (*models.User, error) {
	return a.client.Profile(ctx)
}

// Close releases resources held by the underlying client.
func (a *authService) Close(ctx context.Context) error {
	return a.client.Close()
}
