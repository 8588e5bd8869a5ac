package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/hubbub-app/hubbub-cli/internal/client/credentials"
	"github.com/hubbub-app/hubbub-cli/internal/client/models"
	"github.com/hubbub-app/hubbub-cli/internal/logging"
)

// HTTPClient implements Client over the REST contract. The credential is
// read from the store per request; when the slot is empty an authorized
// builder still sends the request unauthenticated and lets the server
// reject it.
type HTTPClient struct {
	baseURL string
	http    *http.Client
	store   credentials.Store
	log     logging.Logger
}

func NewHTTPClient(baseURL string, timeout time.Duration, store credentials.Store, log logging.Logger) *HTTPClient {
	return &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
		store:   store,
		log:     log,
	}
}

func (c *HTTPClient) Close() error {
	c.http.CloseIdleConnections()
	return nil
}

// do issues one request and decodes a 2xx body into out (when non-nil).
// Transport errors and non-2xx statuses surface to the caller unchanged in
// meaning: no retries, no status interpretation beyond building *Error.
func (c *HTTPClient) do(ctx context.Context, method, path string, body any, authed bool, out any) error {
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode %s %s: %w", method, path, err)
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("build %s %s: %w", method, path, err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-Id", uuid.NewString())
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	if authed {
		token, err := c.store.Get(ctx)
		if err != nil {
			return err
		}
		if token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Error(ctx, "request failed", "method", method, "path", path, "error", err)
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := decodeError(resp)
		c.log.Error(ctx, "request rejected", "method", method, "path", path, "status", resp.StatusCode)
		return apiErr
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s %s: %w", method, path, err)
	}
	return nil
}

// decodeError builds an *Error from a non-2xx response. The body is
// expected to be either {"detail": "..."} or a field→messages map; anything
// unparseable degrades to a bare status error.
func decodeError(resp *http.Response) *Error {
	apiErr := &Error{StatusCode: resp.StatusCode}

	var body map[string]json.RawMessage
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return apiErr
	}

	for name, raw := range body {
		if name == "detail" {
			_ = json.Unmarshal(raw, &apiErr.Detail)
			continue
		}

		var many []string
		if err := json.Unmarshal(raw, &many); err == nil {
			if apiErr.Fields == nil {
				apiErr.Fields = map[string][]string{}
			}
			apiErr.Fields[name] = many
			continue
		}
		var one string
		if err := json.Unmarshal(raw, &one); err == nil {
			if apiErr.Fields == nil {
				apiErr.Fields = map[string][]string{}
			}
			apiErr.Fields[name] = []string{one}
		}
	}
	return apiErr
}

func (c *HTTPClient) SignUp(ctx context.Context, form models.SignUpForm) (*models.User, error) {
	var user models.User
	if err := c.do(ctx, http.MethodPost, "/auth/sign-up/", form, false, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// SignIn exchanges username/password for a credential. The canonical
// response field is "token"; older API revisions used "access" and that
// spelling is still accepted on decode.
func (c *HTTPClient) SignIn(ctx context.Context, form models.SignInForm) (string, error) {
	var body struct {
		Token  string `json:"token"`
		Access string `json:"access"`
	}
	if err := c.do(ctx, http.MethodPost, "/auth/sign-in/", form, false, &body); err != nil {
		return "", err
	}
	if body.Token != "" {
		return body.Token, nil
	}
	return body.Access, nil
}

func (c *HTTPClient) Profile(ctx context.Context) (*models.User, error) {
	var user models.User
	if err := c.do(ctx, http.MethodGet, "/auth/profile/", nil, true, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (c *HTTPClient) ListEvents(ctx context.Context) ([]models.Event, error) {
	var events []models.Event
	if err := c.do(ctx, http.MethodGet, "/events/", nil, false, &events); err != nil {
		return nil, err
	}
	return events, nil
}

func (c *HTTPClient) GetEvent(ctx context.Context, id int64) (*models.Event, error) {
	var event models.Event
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/events/%d/", id), nil, false, &event); err != nil {
		return nil, err
	}
	return &event, nil
}

func (c *HTTPClient) CreateEvent(ctx context.Context, payload models.EventPayload) (*models.Event, error) {
	var event models.Event
	if err := c.do(ctx, http.MethodPost, "/events/", payload, true, &event); err != nil {
		return nil, err
	}
	return &event, nil
}

func (c *HTTPClient) UpdateEvent(ctx context.Context, id int64, payload models.EventPayload) (*models.Event, error) {
	var event models.Event
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("/events/%d/", id), payload, true, &event); err != nil {
		return nil, err
	}
	return &event, nil
}

func (c *HTTPClient) DeleteEvent(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/events/%d/", id), nil, true, nil)
}

func (c *HTTPClient) ListQuestions(ctx context.Context, eventID int64) ([]models.Question, error) {
	var questions []models.Question
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/events/%d/questions/", eventID), nil, false, &questions); err != nil {
		return nil, err
	}
	return questions, nil
}

func (c *HTTPClient) CreateQuestion(ctx context.Context, eventID int64, question string) (*models.Question, error) {
	body := map[string]string{"question": question}
	var created models.Question
	if err := c.do(ctx, http.MethodPost, fmt.Sprintf("/events/%d/questions/", eventID), body, true, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (c *HTTPClient) UpdateQuestion(ctx context.Context, id int64, question string) (*models.Question, error) {
	body := map[string]string{"question": question}
	var updated models.Question
	if err := c.do(ctx, http.MethodPatch, fmt.Sprintf("/questions/%d/", id), body, true, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

// RespondQuestion sets or clears (nil) the owner's response.
func (c *HTTPClient) RespondQuestion(ctx context.Context, id int64, response *string) (*models.Question, error) {
	body := map[string]*string{"response": response}
	var updated models.Question
	if err := c.do(ctx, http.MethodPatch, fmt.Sprintf("/questions/%d/", id), body, true, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

// DeleteQuestion removes the question row; any response tied to it goes
// with it.
func (c *HTTPClient) DeleteQuestion(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/questions/%d/", id), nil, true, nil)
}
