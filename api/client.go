// Package api implements the HTTP client for a daytask server.
//
// The server owns persistence, the history log, authentication, and the
// soft-delete expiry sweep. This package is the only I/O boundary: it
// translates between the wire representation (snake_case fields, ISO-8601
// date strings) and the task package's model at the edge, so wire shapes
// never leak into the classification or lifecycle code.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/amonks/daytask/task"
)

// Client satisfies task.Gateway so the bulk coordinator can drive it.
var _ task.Gateway = (*Client)(nil)

// Client calls the daytask server API.
type Client struct {
	baseURL string
	token   string
	client  *http.Client
}

// Option configures a Client.
type Option func(*Client)

// WithToken sets the bearer token sent with every request.
func WithToken(token string) Option {
	return func(c *Client) {
		c.token = token
	}
}

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		c.client = client
	}
}

// New creates a client for the given address or URL.
func New(addr string, opts ...Option) *Client {
	baseURL := strings.TrimRight(addr, "/")
	if !strings.HasPrefix(baseURL, "http://") && !strings.HasPrefix(baseURL, "https://") {
		baseURL = "http://" + baseURL
	}
	c := &Client{baseURL: baseURL, client: &http.Client{}}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// SetToken replaces the bearer token after a sign-in.
func (c *Client) SetToken(token string) {
	c.token = token
}

// List returns all active tasks.
func (c *Client) List(ctx context.Context) ([]task.Task, error) {
	return c.listTasks(ctx, "/tasks")
}

// ListToday returns the server's view of today's tasks.
func (c *Client) ListToday(ctx context.Context) ([]task.Task, error) {
	return c.listTasks(ctx, "/tasks/today")
}

// ListOld returns the server's view of old tasks.
func (c *Client) ListOld(ctx context.Context) ([]task.Task, error) {
	return c.listTasks(ctx, "/tasks/old")
}

// ListDeleted returns soft-deleted tasks still inside their recovery
// window, each with DeletedAt set.
func (c *Client) ListDeleted(ctx context.Context) ([]task.Task, error) {
	return c.listTasks(ctx, "/tasks/deleted")
}

// Get returns a single task by ID.
func (c *Client) Get(ctx context.Context, id string) (*task.Task, error) {
	var wire wireTask
	if err := c.do(ctx, http.MethodGet, "/tasks/"+id, nil, &wire); err != nil {
		return nil, err
	}
	return wire.toTask()
}

// CreateOptions configures a new task.
type CreateOptions struct {
	Description string
	Priority    task.Priority
	DueDate     string // ISO date, e.g. 2026-03-15
	Category    string
	Tags        []string
}

// Create creates a task with the given title. Validation failures are
// rejected locally and never reach the network.
func (c *Client) Create(ctx context.Context, title string, opts CreateOptions) (*task.Task, error) {
	if err := task.ValidateTitle(title); err != nil {
		return nil, err
	}
	if opts.Priority == "" {
		opts.Priority = task.PriorityMedium
	}
	if err := task.ValidatePriority(opts.Priority); err != nil {
		return nil, err
	}

	payload := createRequest{
		Title:       title,
		Description: opts.Description,
		Priority:    string(opts.Priority),
		DueDate:     opts.DueDate,
		Category:    opts.Category,
		Tags:        opts.Tags,
	}
	var wire wireTask
	if err := c.do(ctx, http.MethodPost, "/tasks", payload, &wire); err != nil {
		return nil, err
	}
	return wire.toTask()
}

// UpdateOptions configures fields to update on a task.
// Nil pointers mean "don't update this field".
type UpdateOptions struct {
	Title       *string
	Description *string
	Completed   *bool
	Priority    *task.Priority
	DueDate     *string
	Category    *string
	Tags        []string
}

// Update applies a partial update to a task.
func (c *Client) Update(ctx context.Context, id string, opts UpdateOptions) (*task.Task, error) {
	if opts.Title != nil {
		if err := task.ValidateTitle(*opts.Title); err != nil {
			return nil, err
		}
	}
	if opts.Priority != nil {
		if err := task.ValidatePriority(*opts.Priority); err != nil {
			return nil, err
		}
	}

	payload := updateRequest{
		Title:       opts.Title,
		Description: opts.Description,
		Completed:   opts.Completed,
		DueDate:     opts.DueDate,
		Category:    opts.Category,
		Tags:        opts.Tags,
	}
	if opts.Priority != nil {
		priority := string(*opts.Priority)
		payload.Priority = &priority
	}
	var wire wireTask
	if err := c.do(ctx, http.MethodPut, "/tasks/"+id, payload, &wire); err != nil {
		return nil, err
	}
	return wire.toTask()
}

// Delete soft-deletes a task, starting its recovery window.
func (c *Client) Delete(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/tasks/"+id, nil, nil)
}

// Toggle flips a task's completion flag.
func (c *Client) Toggle(ctx context.Context, id string) (*task.Task, error) {
	var wire wireTask
	if err := c.do(ctx, http.MethodPatch, "/tasks/"+id+"/toggle", nil, &wire); err != nil {
		return nil, err
	}
	return wire.toTask()
}

// Restore brings a soft-deleted task back to active. Returns
// task.ErrRecoveryExpired when the server reports the recovery window has
// elapsed; the task is gone but the failure is recoverable.
func (c *Client) Restore(ctx context.Context, id string) (*task.Task, error) {
	var wire wireTask
	if err := c.do(ctx, http.MethodPatch, "/tasks/"+id+"/restore", nil, &wire); err != nil {
		var serverErr *ServerError
		if asServerError(err, &serverErr) && serverErr.Status == http.StatusGone {
			return nil, fmt.Errorf("%w: %s", task.ErrRecoveryExpired, serverErr.Message)
		}
		return nil, err
	}
	return wire.toTask()
}

// PermanentDelete erases a soft-deleted task entirely. Callers must
// confirm with the user before invoking; there is no undo.
func (c *Client) PermanentDelete(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/tasks/"+id+"/permanent", nil, nil)
}

// CompleteAllOld marks every old incomplete task completed.
func (c *Client) CompleteAllOld(ctx context.Context) (int, error) {
	return c.countRequest(ctx, http.MethodPatch, "/tasks/old/complete-all")
}

// DeleteAllOld soft-deletes every old task.
func (c *Client) DeleteAllOld(ctx context.Context) (int, error) {
	return c.countRequest(ctx, http.MethodDelete, "/tasks/old/all")
}

// DeleteCompletedOld soft-deletes every old completed task.
func (c *Client) DeleteCompletedOld(ctx context.Context) (int, error) {
	return c.countRequest(ctx, http.MethodDelete, "/tasks/old/completed")
}

// Cleanup asks the server to erase deleted tasks whose recovery window
// has elapsed. Returns how many tasks were erased.
func (c *Client) Cleanup(ctx context.Context) (int, error) {
	var result struct {
		DeletedCount int `json:"deletedCount"`
	}
	if err := c.do(ctx, http.MethodPost, "/tasks/cleanup", nil, &result); err != nil {
		return 0, err
	}
	return result.DeletedCount, nil
}

func (c *Client) listTasks(ctx context.Context, path string) ([]task.Task, error) {
	var wire []wireTask
	if err := c.do(ctx, http.MethodGet, path, nil, &wire); err != nil {
		return nil, err
	}
	tasks := make([]task.Task, 0, len(wire))
	for _, w := range wire {
		converted, err := w.toTask()
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, *converted)
	}
	return tasks, nil
}

func (c *Client) countRequest(ctx context.Context, method, path string) (int, error) {
	var result struct {
		Count int `json:"count"`
	}
	if err := c.do(ctx, method, path, nil, &result); err != nil {
		return 0, err
	}
	return result.Count, nil
}

// do issues a request and decodes the response envelope. Every server
// response is {success, data?, message?, count?}; a 401 anywhere means the
// locally held credential is no longer valid.
func (c *Client) do(ctx context.Context, method, path string, payload any, dest any) error {
	var body *bytes.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return err
		}
		body = bytes.NewReader(data)
	} else {
		body = bytes.NewReader(nil)
	}

	url := c.baseURL + "/api" + path
	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return &RequestError{URL: url, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		return fmt.Errorf("%w: %s", ErrUnauthorized, readMessage(resp))
	}

	var envelope struct {
		Success bool            `json:"success"`
		Data    json.RawMessage `json:"data"`
		Message string          `json:"message"`
		Count   *int            `json:"count"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		if resp.StatusCode >= 400 {
			return &ServerError{Status: resp.StatusCode, Message: resp.Status}
		}
		return fmt.Errorf("decode response from %s: %w", url, err)
	}

	if resp.StatusCode >= 400 || !envelope.Success {
		message := envelope.Message
		if message == "" {
			message = resp.Status
		}
		return &ServerError{Status: resp.StatusCode, Message: message}
	}

	if dest == nil || len(envelope.Data) == 0 || string(envelope.Data) == "null" {
		return nil
	}
	if err := json.Unmarshal(envelope.Data, dest); err != nil {
		return fmt.Errorf("decode response data from %s: %w", url, err)
	}
	return nil
}

type createRequest struct {
	Title       string   `json:"title"`
	Description string   `json:"description,omitempty"`
	Priority    string   `json:"priority,omitempty"`
	DueDate     string   `json:"due_date,omitempty"`
	Category    string   `json:"category,omitempty"`
	Tags        []string `json:"tags,omitempty"`
}

type updateRequest struct {
	Title       *string  `json:"title,omitempty"`
	Description *string  `json:"description,omitempty"`
	Completed   *bool    `json:"completed,omitempty"`
	Priority    *string  `json:"priority,omitempty"`
	DueDate     *string  `json:"due_date,omitempty"`
	Category    *string  `json:"category,omitempty"`
	Tags        []string `json:"tags,omitempty"`
}
