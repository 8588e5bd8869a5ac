// Package api is the typed client for the Hubbub REST API: one request
// builder per remote operation. Builders issue exactly one call against the
// configured base address, attach the stored credential where the contract
// requires it, and pass errors to the caller without retrying or
// interpreting them.
package api

import (
	"context"

	"github.com/hubbub-app/hubbub-cli/internal/client/models"
)

type Client interface {
	Close() error

	// Auth.
	SignUp(ctx context.Context, form models.SignUpForm) (*models.User, error)
	SignIn(ctx context.Context, form models.SignInForm) (string, error)
	Profile(ctx context.Context) (*models.User, error)

	// Events.
	ListEvents(ctx context.Context) ([]models.Event, error)
	GetEvent(ctx context.Context, id int64) (*models.Event, error)
	CreateEvent(ctx context.Context, payload models.EventPayload) (*models.Event, error)
	UpdateEvent(ctx context.Context, id int64, payload models.EventPayload) (*models.Event, error)
	DeleteEvent(ctx context.Context, id int64) error

	// Questions.
	ListQuestions(ctx context.Context, eventID int64) ([]models.Question, error)
	CreateQuestion(ctx context.Context, eventID int64, question string) (*models.Question, error)
	UpdateQuestion(ctx context.Context, id int64, question string) (*models.Question, error)
	RespondQuestion(ctx context.Context, id int64, response *string) (*models.Question, error)
	DeleteQuestion(ctx context.Context, id int64) error
}
