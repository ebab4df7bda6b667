package api

import (
	"fmt"
	"time"

	"github.com/amonks/daytask/task"
)

// dateOnly is the wire format for due dates, which carry day granularity.
const dateOnly = "2006-01-02"

// wireTask is the server's task representation: snake_case fields and
// ISO-8601 date strings. Conversion to and from task.Task happens here
// and nowhere else.
type wireTask struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description,omitempty"`
	Completed   bool     `json:"completed"`
	Priority    string   `json:"priority"`
	DueDate     string   `json:"due_date,omitempty"`
	Category    string   `json:"category,omitempty"`
	Tags        []string `json:"tags,omitempty"`
	CreatedAt   string   `json:"created_at"`
	UpdatedAt   string   `json:"updated_at"`
	DeletedAt   string   `json:"deleted_at,omitempty"`
}

func (w wireTask) toTask() (*task.Task, error) {
	createdAt, err := parseTimestamp(w.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("task %s: parse created_at: %w", w.ID, err)
	}
	updatedAt, err := parseTimestamp(w.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("task %s: parse updated_at: %w", w.ID, err)
	}

	t := task.Task{
		ID:          w.ID,
		Title:       w.Title,
		Description: w.Description,
		Category:    w.Category,
		Tags:        w.Tags,
		Priority:    task.Priority(w.Priority),
		Completed:   w.Completed,
		CreatedAt:   createdAt,
		UpdatedAt:   updatedAt,
	}
	if t.Priority == "" {
		t.Priority = task.PriorityMedium
	}

	if w.DueDate != "" {
		dueDate, err := parseTimestamp(w.DueDate)
		if err != nil {
			return nil, fmt.Errorf("task %s: parse due_date: %w", w.ID, err)
		}
		t.DueDate = &dueDate
	}
	if w.DeletedAt != "" {
		deletedAt, err := parseTimestamp(w.DeletedAt)
		if err != nil {
			return nil, fmt.Errorf("task %s: parse deleted_at: %w", w.ID, err)
		}
		t.DeletedAt = &deletedAt
	}

	return &t, nil
}

func fromTask(t task.Task) wireTask {
	w := wireTask{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		Completed:   t.Completed,
		Priority:    string(t.Priority),
		Category:    t.Category,
		Tags:        t.Tags,
		CreatedAt:   t.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:   t.UpdatedAt.UTC().Format(time.RFC3339),
	}
	if t.DueDate != nil {
		w.DueDate = t.DueDate.UTC().Format(time.RFC3339)
	}
	if t.DeletedAt != nil {
		w.DeletedAt = t.DeletedAt.UTC().Format(time.RFC3339)
	}
	return w
}

// parseTimestamp accepts the timestamp formats the server emits:
// RFC 3339 with or without sub-second precision, and bare dates.
func parseTimestamp(value string) (time.Time, error) {
	for _, layout := range []string{time.RFC3339Nano, time.RFC3339, dateOnly} {
		if parsed, err := time.Parse(layout, value); err == nil {
			return parsed, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized timestamp %q", value)
}
