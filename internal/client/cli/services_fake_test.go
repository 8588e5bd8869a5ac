package cli

import (
	"bufio"
	"bytes"
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/hubbub-app/hubbub-cli/internal/client/models"
	"github.com/hubbub-app/hubbub-cli/internal/logging"
)

func testLogger() logging.Logger {
	return logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

// newTestApp builds an App over fakes, feeding prompts from the given
// scripted input.
func newTestApp(t *testing.T, input string, auth *fakeAuth, events *fakeEvents, questions *fakeQuestions) (*App, *bytes.Buffer) {
	t.Helper()
	out := &bytes.Buffer{}
	if auth == nil {
		auth = &fakeAuth{}
	}
	if events == nil {
		events = &fakeEvents{}
	}
	if questions == nil {
		questions = &fakeQuestions{}
	}
	return &App{
		auth:      auth,
		events:    events,
		questions: questions,
		log:       testLogger(),
		reader:    bufio.NewReader(strings.NewReader(input)),
		out:       out,
	}, out
}

type fakeAuth struct {
	principal   *models.User
	signUpUser  *models.User
	signUpErr   error
	signUpForm  models.SignUpForm
	signInUser  *models.User
	signInErr   error
	profileUser *models.User
	profileErr  error
	signedOut   bool
}

func (f *fakeAuth) SignUp(_ context.Context, form models.SignUpForm) (*models.User, error) {
	f.signUpForm = form
	return f.signUpUser, f.signUpErr
}

func (f *fakeAuth) SignIn(_ context.Context, _, _ string) (*models.User, error) {
	if f.signInErr != nil {
		return nil, f.signInErr
	}
	f.principal = f.signInUser
	return f.signInUser, nil
}

func (f *fakeAuth) SignOut(_ context.Context) error {
	f.signedOut = true
	f.principal = nil
	return nil
}

func (f *fakeAuth) Principal(_ context.Context) (*models.User, error) {
	return f.principal, nil
}

func (f *fakeAuth) Profile(_ context.Context) (*models.User, error) {
	return f.profileUser, f.profileErr
}

func (f *fakeAuth) Close(_ context.Context) error { return nil }

type fakeEvents struct {
	list      []models.Event
	listErr   error
	event     *models.Event
	getErr    error
	created   *models.Event
	createErr error
	updated   *models.Event
	updateErr error
	deleteErr error

	lastForm models.EventForm
	deleted  []int64
}

func (f *fakeEvents) List(_ context.Context) ([]models.Event, error) {
	return f.list, f.listErr
}

func (f *fakeEvents) Get(_ context.Context, _ int64) (*models.Event, error) {
	return f.event, f.getErr
}

func (f *fakeEvents) EditForm(_ context.Context, _ int64) (models.EventForm, error) {
	if f.getErr != nil {
		return models.EventForm{}, f.getErr
	}
	return f.event.Form(), nil
}

func (f *fakeEvents) Create(_ context.Context, form models.EventForm) (*models.Event, error) {
	f.lastForm = form
	return f.created, f.createErr
}

func (f *fakeEvents) Update(_ context.Context, _ int64, form models.EventForm) (*models.Event, error) {
	f.lastForm = form
	return f.updated, f.updateErr
}

func (f *fakeEvents) Delete(_ context.Context, id int64) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	f.deleted = append(f.deleted, id)
	return nil
}

type fakeQuestions struct {
	list       []models.Question
	listErr    error
	asked      *models.Question
	askErr     error
	edited     *models.Question
	editErr    error
	responded  *models.Question
	respondErr error
	cleared    *models.Question
	clearErr   error
	deleteErr  error

	lastAsk     string
	lastEdit    string
	lastRespond string
	deleted     []int64
}

func (f *fakeQuestions) List(_ context.Context, _ int64) ([]models.Question, error) {
	return f.list, f.listErr
}

func (f *fakeQuestions) Ask(_ context.Context, _ int64, question string) (*models.Question, error) {
	f.lastAsk = question
	return f.asked, f.askErr
}

func (f *fakeQuestions) Edit(_ context.Context, _ int64, question string) (*models.Question, error) {
	f.lastEdit = question
	return f.edited, f.editErr
}

func (f *fakeQuestions) Respond(_ context.Context, _ int64, response string) (*models.Question, error) {
	f.lastRespond = response
	return f.responded, f.respondErr
}

func (f *fakeQuestions) ClearResponse(_ context.Context, _ int64) (*models.Question, error) {
	return f.cleared, f.clearErr
}

func (f *fakeQuestions) Delete(_ context.Context, id int64) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	f.deleted = append(f.deleted, id)
	return nil
}
