package services

import (
	"context"

	"github.com/hubbub-app/hubbub-cli/internal/client/api"
	"github.com/hubbub-app/hubbub-cli/internal/client/models"
)

// QuestionService covers the question lifecycle on an event page: visitors
// ask and edit their own questions, the event owner responds or clears a
// response, and either side deletes what they own.
type QuestionService interface {
	List(ctx context.Context, eventID int64) ([]models.Question, error)
	Ask(ctx context.Context, eventID int64, question string) (*models.Question, error)
	Edit(ctx context.Context, id int64, question string) (*models.Question, error)
	Respond(ctx context.Context, id int64, response string) (*models.Question, error)
	ClearResponse(ctx context.Context, id int64) (*models.Question, error)
	Delete(ctx context.Context, id int64) error
}

type questionService struct {
	client api.Client
}

func NewQuestionService(client api.Client) QuestionService {
	return &questionService{client: client}
}

func (s *questionService) List(ctx context.Context, eventID int64) ([]models.Question, error) {
	return s.client.ListQuestions(ctx, eventID)
}

func (s *questionService) Ask(ctx context.Context, eventID int64, question string) (*models.Question, error) {
	return s.client.CreateQuestion(ctx, eventID, question)
}

func (s *questionService) Edit(ctx context.Context, id int64, question string) (*models.Question, error) {
	return s.client.UpdateQuestion(ctx, id, question)
}

func (s *questionService) Respond(ctx context.Context, id int64, response string) (*models.Question, error) {
	return s.client.RespondQuestion(ctx, id, &response)
}

// ClearResponse removes the owner's answer, leaving the question open again.
func (s *questionService) ClearResponse(ctx context.Context, id int64) (*models.Question, error) {
	return s.client.RespondQuestion(ctx, id, nil)
}

func (s *questionService) Delete(ctx context.Context, id int64) error {
	return s.client.DeleteQuestion(ctx, id)
}
