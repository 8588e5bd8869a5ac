package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/hubbub-app/hubbub-cli/internal/client/api"
	"github.com/hubbub-app/hubbub-cli/internal/client/config"
	"github.com/hubbub-app/hubbub-cli/internal/client/credentials"
	"github.com/hubbub-app/hubbub-cli/internal/client/models"
	"github.com/hubbub-app/hubbub-cli/internal/client/services"
	"github.com/hubbub-app/hubbub-cli/internal/client/session"
	"github.com/hubbub-app/hubbub-cli/internal/client/storage"
	"github.com/hubbub-app/hubbub-cli/internal/logging"

	_ "modernc.org/sqlite"
)

// App wires the interactive client together: configuration, the session
// bound to the durable credential slot, and the application services views
// call into.
type App struct {
	config    *config.Config
	auth      services.AuthService
	events    services.EventService
	questions services.QuestionService
	log       logging.Logger
	reader    *bufio.Reader
	out       io.Writer
}

func NewApp(c *config.Config, log logging.Logger) (*App, error) {
	ctx := context.Background()

	db, err := storage.InitDatabase(ctx, c.DatabasePath)
	if err != nil {
		return nil, fmt.Errorf("error initializing database: %w", err)
	}

	store := credentials.NewSQLiteStore(db, log)
	sess := session.New(store, log)
	apiClient := api.NewHTTPClient(c.APIBaseURL, c.RequestTimeout, store, log)

	return &App{
		config:    c,
		auth:      services.NewAuthService(apiClient, sess),
		events:    services.NewEventService(apiClient),
		questions: services.NewQuestionService(apiClient),
		log:       log,
		reader:    bufio.NewReader(os.Stdin),
		out:       os.Stdout,
	}, nil
}

func (a *App) Run(ctx context.Context) {
	defer func() { _ = a.auth.Close(ctx) }()
	fmt.Fprintln(a.out, "Hubbub CLI (type 'help' for commands)")
	runREPL(ctx, a, func() string { return a.status(ctx) }, bufio.NewScanner(os.Stdin), a.out)
}

// principal derives the current identity; storage failures degrade to
// signed-out rather than breaking the view.
func (a *App) principal(ctx context.Context) *models.User {
	p, err := a.auth.Principal(ctx)
	if err != nil {
		a.log.Error(ctx, "failed to derive principal", "error", err)
		return nil
	}
	return p
}

// status labels the prompt. Reading the principal every iteration means a
// locally-expired credential flips the prompt to guest without any command.
func (a *App) status(ctx context.Context) string {
	if p := a.principal(ctx); p != nil {
		return p.Username
	}
	return "guest"
}

func (a *App) isSignedIn(ctx context.Context) bool {
	return a.principal(ctx) != nil
}

// printAPIError renders a failed mutation: field-level validation messages
// when the server returned them, otherwise a single generic line.
func (a *App) printAPIError(err error, generic string) {
	var apiErr *api.Error
	if errors.As(err, &apiErr) && len(apiErr.Fields) > 0 {
		for name, messages := range apiErr.Fields {
			for _, msg := range messages {
				fmt.Fprintf(a.out, "%s: %s\n", name, msg)
			}
		}
		return
	}
	fmt.Fprintln(a.out, generic)
}
