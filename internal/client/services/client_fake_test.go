package services

import (
	"context"

	"github.com/hubbub-app/hubbub-cli/internal/client/models"
)

// fakeClient is a scriptable api.Client shared by the service tests.
type fakeClient struct {
	signUpUser *models.User
	signUpErr  error

	signInToken string
	signInErr   error
	signInForm  models.SignInForm

	profileUser *models.User
	profileErr  error

	events    []models.Event
	event     *models.Event
	eventErr  error
	created   *models.Event
	createErr error

	lastPayload models.EventPayload
	lastEventID int64
	deletedID   int64

	questions      []models.Question
	question       *models.Question
	questionErr    error
	lastQuestion   string
	lastResponse   *string
	respondCalled  bool
	lastQuestionID int64
}

func (f *fakeClient) Close() error { return nil }

func (f *fakeClient) SignUp(_ context.Context, form models.SignUpForm) (*models.User, error) {
	return f.signUpUser, f.signUpErr
}

func (f *fakeClient) SignIn(_ context.Context, form models.SignInForm) (string, error) {
	f.signInForm = form
	return f.signInToken, f.signInErr
}

func (f *fakeClient) Profile(context.Context) (*models.User, error) {
	return f.profileUser, f.profileErr
}

func (f *fakeClient) ListEvents(context.Context) ([]models.Event, error) {
	return f.events, f.eventErr
}

func (f *fakeClient) GetEvent(_ context.Context, id int64) (*models.Event, error) {
	f.lastEventID = id
	return f.event, f.eventErr
}

func (f *fakeClient) CreateEvent(_ context.Context, payload models.EventPayload) (*models.Event, error) {
	f.lastPayload = payload
	return f.created, f.createErr
}

func (f *fakeClient) UpdateEvent(_ context.Context, id int64, payload models.EventPayload) (*models.Event, error) {
	f.lastEventID = id
	f.lastPayload = payload
	return f.created, f.createErr
}

func (f *fakeClient) DeleteEvent(_ context.Context, id int64) error {
	f.deletedID = id
	return f.eventErr
}

func (f *fakeClient) ListQuestions(_ context.Context, eventID int64) ([]models.Question, error) {
	f.lastEventID = eventID
	return f.questions, f.questionErr
}

func (f *fakeClient) CreateQuestion(_ context.Context, eventID int64, question string) (*models.Question, error) {
	f.lastEventID = eventID
	f.lastQuestion = question
	return f.question, f.questionErr
}

func (f *fakeClient) UpdateQuestion(_ context.Context, id int64, question string) (*models.Question, error) {
	f.lastQuestionID = id
	f.lastQuestion = question
	return f.question, f.questionErr
}

func (f *fakeClient) RespondQuestion(_ context.Context, id int64, response *string) (*models.Question, error) {
	f.lastQuestionID = id
	f.lastResponse = response
	f.respondCalled = true
	return f.question, f.questionErr
}

func (f *fakeClient) DeleteQuestion(_ context.Context, id int64) error {
	f.lastQuestionID = id
	return f.questionErr
}
