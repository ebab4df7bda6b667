package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// HistoryEntry records one mutation from the server's history log. The
// log is computed server-side; the client only displays it.
type HistoryEntry struct {
	HistoryID     string          `json:"history_id"`
	TaskID        string          `json:"task_id"`
	TaskTitle     string          `json:"task_title"`
	Action        string          `json:"action"`
	OldData       json.RawMessage `json:"old_data,omitempty"`
	NewData       json.RawMessage `json:"new_data,omitempty"`
	ChangedFields []string        `json:"changed_fields,omitempty"`
	Timestamp     time.Time       `json:"-"`
}

// wireHistoryEntry carries the raw action_timestamp string.
type wireHistoryEntry struct {
	HistoryEntry
	ActionTimestamp string `json:"action_timestamp"`
}

// History returns the mutation history for one task, most recent first.
func (c *Client) History(ctx context.Context, taskID string, limit int) ([]HistoryEntry, error) {
	return c.historyRequest(ctx, fmt.Sprintf("/tasks/%s/history?limit=%d", taskID, limit))
}

// AllHistory returns the mutation history across all tasks.
func (c *Client) AllHistory(ctx context.Context, limit int) ([]HistoryEntry, error) {
	return c.historyRequest(ctx, fmt.Sprintf("/tasks/history/all?limit=%d", limit))
}

func (c *Client) historyRequest(ctx context.Context, path string) ([]HistoryEntry, error) {
	var wire []wireHistoryEntry
	if err := c.do(ctx, http.MethodGet, path, nil, &wire); err != nil {
		return nil, err
	}

	entries := make([]HistoryEntry, 0, len(wire))
	for _, w := range wire {
		entry := w.HistoryEntry
		if w.ActionTimestamp != "" {
			timestamp, err := parseTimestamp(w.ActionTimestamp)
			if err != nil {
				return nil, fmt.Errorf("history %s: %w", w.HistoryID, err)
			}
			entry.Timestamp = timestamp
		}
		entries = append(entries, entry)
	}
	return entries, nil
}
