package cli

import (
	"context"
	"fmt"

	"github.com/hubbub-app/hubbub-cli/internal/client/fetch"
	"github.com/hubbub-app/hubbub-cli/internal/client/models"
)

// Events renders the event index. The view owns its fetch: a fresh Fetcher
// per invocation, torn down when the view is done.
func (a *App) Events(ctx context.Context) error {
	f := fetch.New(func(ctx context.Context, _ struct{}) ([]models.Event, error) {
		return a.events.List(ctx)
	}, []models.Event{}, a.log)
	defer f.Close()

	f.Load(ctx, struct{}{})
	f.Wait()

	s := f.State()
	if s.Err != "" {
		fmt.Fprintln(a.out, s.Err)
		return nil
	}
	if len(s.Data) == 0 {
		fmt.Fprintln(a.out, "No events yet.")
		return nil
	}
	for _, e := range s.Data {
		fmt.Fprintf(a.out, "#%-4d %s | %s | %s\n",
			e.ID, e.Title, e.Location, e.StartDatetime.Local().Format("02/01/2006 15:04"))
	}
	return nil
}

// Create prompts for a new event and submits it. On success the client
// navigates to the created event's page.
func (a *App) Create(ctx context.Context) error {
	if !a.isSignedIn(ctx) {
		fmt.Fprintln(a.out, "Sign in to create an event.")
		return nil
	}

	form, err := a.promptEventForm(models.EventForm{})
	if err != nil {
		return err
	}

	created, err := a.events.Create(ctx, form)
	if err != nil {
		a.log.Warn(ctx, "event create failed", "error", err)
		a.printAPIError(err, "Failed to create event.")
		return nil
	}

	fmt.Fprintf(a.out, "Created event #%d.\n", created.ID)
	return a.Show(ctx, created.ID)
}

// Update pre-fills the form from a fresh read and submits the changes.
// The form is only offered to the event's owner.
func (a *App) Update(ctx context.Context, eventID int64) error {
	principal := a.principal(ctx)
	if principal == nil {
		fmt.Fprintln(a.out, "Sign in to update an event.")
		return nil
	}

	event, err := a.events.Get(ctx, eventID)
	if err != nil {
		a.log.Warn(ctx, "event fetch failed", "error", err, "event_id", eventID)
		fmt.Fprintln(a.out, fetch.FailureMessage)
		return nil
	}
	if !models.IsOwner(principal, event.Owner) {
		fmt.Fprintln(a.out, "Only the event owner can update it.")
		return nil
	}

	form, err := a.promptEventForm(event.Form())
	if err != nil {
		return err
	}

	if _, err := a.events.Update(ctx, eventID, form); err != nil {
		a.log.Warn(ctx, "event update failed", "error", err, "event_id", eventID)
		a.printAPIError(err, "Failed to update event.")
		return nil
	}

	fmt.Fprintf(a.out, "Updated event #%d.\n", eventID)
	return a.Show(ctx, eventID)
}

// Delete removes an event after confirmation. Only offered to the owner.
func (a *App) Delete(ctx context.Context, eventID int64) error {
	principal := a.principal(ctx)
	if principal == nil {
		fmt.Fprintln(a.out, "Sign in to delete an event.")
		return nil
	}

	event, err := a.events.Get(ctx, eventID)
	if err != nil {
		a.log.Warn(ctx, "event fetch failed", "error", err, "event_id", eventID)
		fmt.Fprintln(a.out, fetch.FailureMessage)
		return nil
	}
	if !models.IsOwner(principal, event.Owner) {
		fmt.Fprintln(a.out, "Only the event owner can delete it.")
		return nil
	}

	confirm, err := getSimpleText(a.reader, fmt.Sprintf("Delete %q? (y/N)", event.Title), a.out)
	if err != nil {
		return err
	}
	if confirm != "y" && confirm != "Y" {
		fmt.Fprintln(a.out, "Kept.")
		return nil
	}

	if err := a.events.Delete(ctx, eventID); err != nil {
		a.log.Warn(ctx, "event delete failed", "error", err, "event_id", eventID)
		fmt.Fprintln(a.out, "Failed to delete event")
		return nil
	}

	fmt.Fprintf(a.out, "Deleted event #%d.\n", eventID)
	return nil
}

// promptEventForm collects event fields. Empty input keeps the default, so
// updating only one field of an existing event stays painless.
func (a *App) promptEventForm(defaults models.EventForm) (models.EventForm, error) {
	prompt := func(label, current string) (string, error) {
		p := label
		if current != "" {
			p = fmt.Sprintf("%s [%s]", label, current)
		}
		v, err := getSimpleText(a.reader, p, a.out)
		if err != nil {
			return "", err
		}
		if v == "" {
			return current, nil
		}
		return v, nil
	}

	form := defaults
	var err error
	if form.Title, err = prompt("Title", defaults.Title); err != nil {
		return form, err
	}
	if form.Location, err = prompt("Location", defaults.Location); err != nil {
		return form, err
	}
	if form.StartDatetime, err = prompt("Start (YYYY-MM-DDTHH:MM)", defaults.StartDatetime); err != nil {
		return form, err
	}
	if form.Duration, err = prompt("Duration (HH:MM)", defaults.Duration); err != nil {
		return form, err
	}
	if form.ContactEmail, err = prompt("Contact email", defaults.ContactEmail); err != nil {
		return form, err
	}
	if form.Description, err = prompt("Description", defaults.Description); err != nil {
		return form, err
	}
	return form, nil
}
