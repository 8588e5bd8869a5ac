package services

import (
	"context"

	"github.com/hubbub-app/hubbub-cli/internal/client/api"
	"github.com/hubbub-app/hubbub-cli/internal/client/models"
)

// EventService exposes event reads and mutations to the views. Mutations
// take the user-facing form shape and perform the wire conversions at this
// boundary; errors from the API pass through for the view to present.
type EventService interface {
	List(ctx context.Context) ([]models.Event, error)
	Get(ctx context.Context, id int64) (*models.Event, error)
	EditForm(ctx context.Context, id int64) (models.EventForm, error)
	Create(ctx context.Context, form models.EventForm) (*models.Event, error)
	Update(ctx context.Context, id int64, form models.EventForm) (*models.Event, error)
	Delete(ctx context.Context, id int64) error
}

type eventService struct {
	client api.Client
}

func NewEventService(client api.Client) EventService {
	return &eventService{client: client}
}

func (s *eventService) List(ctx context.Context) ([]models.Event, error) {
	return s.client.ListEvents(ctx)
}

func (s *eventService) Get(ctx context.Context, id int64) (*models.Event, error) {
	return s.client.GetEvent(ctx, id)
}

// EditForm reads the event fresh and maps it into the editable shape
// (duration truncated to HH:MM, start rendered local-naive).
func (s *eventService) EditForm(ctx context.Context, id int64) (models.EventForm, error) {
	event, err := s.client.GetEvent(ctx, id)
	if err != nil {
		return models.EventForm{}, err
	}
	return event.Form(), nil
}

func (s *eventService) Create(ctx context.Context, form models.EventForm) (*models.Event, error) {
	payload, err := form.Payload()
	if err != nil {
		return nil, err
	}
	return s.client.CreateEvent(ctx, payload)
}

func (s *eventService) Update(ctx context.Context, id int64, form models.EventForm) (*models.Event, error) {
	payload, err := form.Payload()
	if err != nil {
		return nil, err
	}
	return s.client.UpdateEvent(ctx, id, payload)
}

func (s *eventService) Delete(ctx context.Context, id int64) error {
	return s.client.DeleteEvent(ctx, id)
}
