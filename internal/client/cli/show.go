package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/hubbub-app/hubbub-cli/internal/client/fetch"
	"github.com/hubbub-app/hubbub-cli/internal/client/models"
)

// eventPage is the interactive view of a single event. It holds a local
// copy of the question list; question mutations patch that copy in place
// instead of refetching, so the view reflects the change immediately.
type eventPage struct {
	app          *App
	event        *models.Event
	questions    []models.Question
	questionsErr string
}

// Show fetches an event and its questions and enters the event page loop.
// The two fetches run concurrently; the page only opens once both settle.
func (a *App) Show(ctx context.Context, eventID int64) error {
	eventF := fetch.New(func(ctx context.Context, id int64) (*models.Event, error) {
		return a.events.Get(ctx, id)
	}, nil, a.log)
	defer eventF.Close()

	questionsF := fetch.New(func(ctx context.Context, id int64) ([]models.Question, error) {
		return a.questions.List(ctx, id)
	}, []models.Question{}, a.log)
	defer questionsF.Close()

	eventF.Load(ctx, eventID)
	questionsF.Load(ctx, eventID)
	eventF.Wait()
	questionsF.Wait()

	es := eventF.State()
	if es.Err != "" || es.Data == nil {
		fmt.Fprintln(a.out, fetch.FailureMessage)
		return nil
	}

	qs := questionsF.State()
	page := &eventPage{
		app:          a,
		event:        es.Data,
		questions:    append([]models.Question(nil), qs.Data...),
		questionsErr: qs.Err,
	}
	return page.loop(ctx)
}

func (p *eventPage) loop(ctx context.Context) error {
	a := p.app
	p.render(ctx)
	for {
		line, err := getSimpleText(a.reader, fmt.Sprintf("event #%d (ask, answer <q>, unanswer <q>, editq <q>, delq <q>, update, delete, back)", p.event.ID), a.out)
		if err != nil {
			return err
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]

		qid, qidOK := int64(0), false
		if len(parts) > 1 {
			if parsed, err := strconv.ParseInt(parts[1], 10, 64); err == nil {
				qid, qidOK = parsed, true
			}
		}

		switch cmd {
		case "ask":
			p.ask(ctx)

		case "answer":
			if !qidOK {
				fmt.Fprintln(a.out, "Usage: answer <question-id>")
				continue
			}
			p.answer(ctx, qid)

		case "unanswer":
			if !qidOK {
				fmt.Fprintln(a.out, "Usage: unanswer <question-id>")
				continue
			}
			p.unanswer(ctx, qid)

		case "editq":
			if !qidOK {
				fmt.Fprintln(a.out, "Usage: editq <question-id>")
				continue
			}
			p.editQuestion(ctx, qid)

		case "delq":
			if !qidOK {
				fmt.Fprintln(a.out, "Usage: delq <question-id>")
				continue
			}
			p.deleteQuestion(ctx, qid)

		case "update":
			if done := p.update(ctx); done {
				p.render(ctx)
			}

		case "delete":
			deleted, err := p.delete(ctx)
			if err != nil {
				return err
			}
			if deleted {
				return nil
			}

		case "back", "exit":
			return nil

		default:
			fmt.Fprintln(a.out, "Unknown command:", cmd)
		}
	}
}

func (p *eventPage) render(ctx context.Context) {
	a := p.app
	e := p.event
	principal := a.principal(ctx)

	fmt.Fprintf(a.out, "\n#%d %s\n", e.ID, e.Title)
	fmt.Fprintf(a.out, "Where:    %s\n", e.Location)
	fmt.Fprintf(a.out, "When:     %s\n", e.StartDatetime.Local().Format("02/01/2006 15:04"))
	fmt.Fprintf(a.out, "Duration: %s\n", models.DurationFromWire(e.Duration))
	fmt.Fprintf(a.out, "Contact:  %s\n", e.ContactEmail)
	if e.Description != "" {
		fmt.Fprintln(a.out, e.Description)
	}
	fmt.Fprintf(a.out, "Hosted by %s\n", e.Owner.Username)
	if models.IsOwner(principal, e.Owner) {
		fmt.Fprintln(a.out, "You host this event: update, delete and answer are available.")
	}

	fmt.Fprintln(a.out, "\nQuestions:")
	if p.questionsErr != "" {
		fmt.Fprintln(a.out, p.questionsErr)
		return
	}
	if len(p.questions) == 0 {
		fmt.Fprintln(a.out, "No questions yet.")
		return
	}
	for i := range p.questions {
		q := &p.questions[i]
		marker := "open"
		if q.Answered() {
			marker = "answered"
		}
		fmt.Fprintf(a.out, "  q%-4d [%s] %s (by %s)\n", q.ID, marker, q.Question, q.Owner.Username)
		if q.Answered() {
			fmt.Fprintf(a.out, "        -> %s\n", *q.Response)
		}
		if models.IsOwner(principal, q.Owner) {
			fmt.Fprintln(a.out, "        (yours: editq, delq)")
		}
	}
}

func (p *eventPage) ask(ctx context.Context) {
	a := p.app
	if !a.isSignedIn(ctx) {
		fmt.Fprintln(a.out, "Sign in to ask a question.")
		return
	}

	text, err := getSimpleText(a.reader, "Your question", a.out)
	if err != nil || text == "" {
		return
	}

	created, err := a.questions.Ask(ctx, p.event.ID, text)
	if err != nil {
		a.log.Warn(ctx, "question create failed", "error", err, "event_id", p.event.ID)
		a.printAPIError(err, "Failed to ask question.")
		return
	}

	p.questions = append(p.questions, *created)
	fmt.Fprintf(a.out, "Asked q%d.\n", created.ID)
}

func (p *eventPage) answer(ctx context.Context, qid int64) {
	a := p.app
	if !models.IsOwner(a.principal(ctx), p.event.Owner) {
		fmt.Fprintln(a.out, "Only the event owner can answer questions.")
		return
	}
	if p.find(qid) == nil {
		fmt.Fprintf(a.out, "No question q%d on this event.\n", qid)
		return
	}

	response, err := getSimpleText(a.reader, "Your answer", a.out)
	if err != nil || response == "" {
		return
	}

	updated, err := a.questions.Respond(ctx, qid, response)
	if err != nil {
		a.log.Warn(ctx, "question respond failed", "error", err, "question_id", qid)
		a.printAPIError(err, "Failed to answer question.")
		return
	}

	p.replace(*updated)
	fmt.Fprintf(a.out, "Answered q%d.\n", qid)
}

func (p *eventPage) unanswer(ctx context.Context, qid int64) {
	a := p.app
	if !models.IsOwner(a.principal(ctx), p.event.Owner) {
		fmt.Fprintln(a.out, "Only the event owner can clear an answer.")
		return
	}
	if p.find(qid) == nil {
		fmt.Fprintf(a.out, "No question q%d on this event.\n", qid)
		return
	}

	updated, err := a.questions.ClearResponse(ctx, qid)
	if err != nil {
		a.log.Warn(ctx, "question unanswer failed", "error", err, "question_id", qid)
		a.printAPIError(err, "Failed to clear the answer.")
		return
	}

	p.replace(*updated)
	fmt.Fprintf(a.out, "Cleared the answer on q%d.\n", qid)
}

func (p *eventPage) editQuestion(ctx context.Context, qid int64) {
	a := p.app
	q := p.find(qid)
	if q == nil {
		fmt.Fprintf(a.out, "No question q%d on this event.\n", qid)
		return
	}
	if !models.IsOwner(a.principal(ctx), q.Owner) {
		fmt.Fprintln(a.out, "Only the question's author can edit it.")
		return
	}

	text, err := getSimpleText(a.reader, fmt.Sprintf("Question [%s]", q.Question), a.out)
	if err != nil {
		return
	}
	if text == "" {
		text = q.Question
	}

	updated, err := a.questions.Edit(ctx, qid, text)
	if err != nil {
		a.log.Warn(ctx, "question update failed", "error", err, "question_id", qid)
		a.printAPIError(err, "Failed to update question.")
		return
	}

	p.replace(*updated)
	fmt.Fprintf(a.out, "Updated q%d.\n", qid)
}

func (p *eventPage) deleteQuestion(ctx context.Context, qid int64) {
	a := p.app
	q := p.find(qid)
	if q == nil {
		fmt.Fprintf(a.out, "No question q%d on this event.\n", qid)
		return
	}
	if !models.IsOwner(a.principal(ctx), q.Owner) {
		fmt.Fprintln(a.out, "Only the question's author can delete it.")
		return
	}

	if err := a.questions.Delete(ctx, qid); err != nil {
		a.log.Warn(ctx, "question delete failed", "error", err, "question_id", qid)
		a.printAPIError(err, "Failed to delete question.")
		return
	}

	p.remove(qid)
	fmt.Fprintf(a.out, "Deleted q%d.\n", qid)
}

// update edits the event from within its page. Returns true when the event
// changed and the page should re-render.
func (p *eventPage) update(ctx context.Context) bool {
	a := p.app
	if !models.IsOwner(a.principal(ctx), p.event.Owner) {
		fmt.Fprintln(a.out, "Only the event owner can update it.")
		return false
	}

	form, err := a.promptEventForm(p.event.Form())
	if err != nil {
		return false
	}

	updated, err := a.events.Update(ctx, p.event.ID, form)
	if err != nil {
		a.log.Warn(ctx, "event update failed", "error", err, "event_id", p.event.ID)
		a.printAPIError(err, "Failed to update event.")
		return false
	}

	p.event = updated
	fmt.Fprintf(a.out, "Updated event #%d.\n", p.event.ID)
	return true
}

// delete removes the event. Returns true when the page should close.
func (p *eventPage) delete(ctx context.Context) (bool, error) {
	a := p.app
	if !models.IsOwner(a.principal(ctx), p.event.Owner) {
		fmt.Fprintln(a.out, "Only the event owner can delete it.")
		return false, nil
	}

	confirm, err := getSimpleText(a.reader, fmt.Sprintf("Delete %q? (y/N)", p.event.Title), a.out)
	if err != nil {
		return false, err
	}
	if confirm != "y" && confirm != "Y" {
		fmt.Fprintln(a.out, "Kept.")
		return false, nil
	}

	if err := a.events.Delete(ctx, p.event.ID); err != nil {
		a.log.Warn(ctx, "event delete failed", "error", err, "event_id", p.event.ID)
		fmt.Fprintln(a.out, "Failed to delete event")
		return false, nil
	}

	fmt.Fprintf(a.out, "Deleted event #%d.\n", p.event.ID)
	return true, nil
}

func (p *eventPage) find(id int64) *models.Question {
	for i := range p.questions {
		if p.questions[i].ID == id {
			return &p.questions[i]
		}
	}
	return nil
}

func (p *eventPage) replace(q models.Question) {
	for i := range p.questions {
		if p.questions[i].ID == q.ID {
			p.questions[i] = q
			return
		}
	}
}

func (p *eventPage) remove(id int64) {
	for i := range p.questions {
		if p.questions[i].ID == id {
			p.questions = append(p.questions[:i], p.questions[i+1:]...)
			return
		}
	}
}
