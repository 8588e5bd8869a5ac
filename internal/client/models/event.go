package models

import "time"

// Event is an event resource as returned by the API. Duration travels as
// "HH:MM:SS" on the wire; StartDatetime is an absolute timestamp.
type Event struct {
	ID            int64     `json:"id"`
	Title         string    `json:"title"`
	Location      string    `json:"location"`
	StartDatetime time.Time `json:"start_datetime"`
	Duration      string    `json:"duration"`
	ContactEmail  string    `json:"contact_email"`
	Description   string    `json:"description"`
	Image         string    `json:"image,omitempty"`
	Owner         Owner     `json:"owner"`
}

// EventForm is the user-facing edit shape: duration as "HH:MM" and the start
// as a local-timezone-naive datetime input value.
type EventForm struct {
	Title         string
	Location      string
	StartDatetime string
	Duration      string
	ContactEmail  string
	Description   string
	Image         string
}

// EventPayload is the wire shape submitted on create and update.
type EventPayload struct {
	Title         string `json:"title"`
	Location      string `json:"location"`
	StartDatetime string `json:"start_datetime"`
	Duration      string `json:"duration"`
	ContactEmail  string `json:"contact_email"`
	Description   string `json:"description"`
	Image         string `json:"image,omitempty"`
}

// Form converts a fetched event into its editable representation:
// seconds are stripped from the duration and the start is rendered as a
// local input value, without shifting the represented instant.
func (e *Event) Form() EventForm {
	return EventForm{
		Title:         e.Title,
		Location:      e.Location,
		StartDatetime: FormatStartInput(e.StartDatetime),
		Duration:      DurationFromWire(e.Duration),
		ContactEmail:  e.ContactEmail,
		Description:   e.Description,
		Image:         e.Image,
	}
}

// Payload converts form values into the wire shape: the duration gains a
// ":00" seconds suffix and the start becomes an absolute timestamp.
func (f EventForm) Payload() (EventPayload, error) {
	duration, err := DurationToWire(f.Duration)
	if err != nil {
		return EventPayload{}, err
	}
	start, err := ParseStartInput(f.StartDatetime)
	if err != nil {
		return EventPayload{}, err
	}
	return EventPayload{
		Title:         f.Title,
		Location:      f.Location,
		StartDatetime: start.Format(time.RFC3339),
		Duration:      duration,
		ContactEmail:  f.ContactEmail,
		Description:   f.Description,
		Image:         f.Image,
	}, nil
}
