// Package task implements the client-side task model for a daytask server.
//
// Tasks are owned by the remote server; this package holds the in-memory
// representation plus the pure derivations the CLI is built from:
//   - classification into today/old/other buckets (Partition and friends)
//   - the soft-delete lifecycle and its 24-hour recovery window
//   - bulk transitions over the "old" bucket (Bulk)
//
// Bucket membership is never stored. It is recomputed from CreatedAt,
// DueDate, and Completed against the current date on every call.
package task

import "time"

// Task represents a single task.
type Task struct {
	// ID is a unique identifier assigned by the server.
	ID string `json:"id"`

	// Title is the short summary of the task. Required, non-empty.
	Title string `json:"title"`

	// Description provides additional context about the task.
	Description string `json:"description,omitempty"`

	// Category is an optional grouping label.
	Category string `json:"category,omitempty"`

	// Tags are optional free-form labels.
	Tags []string `json:"tags,omitempty"`

	// Priority is the importance level (low, medium, high).
	Priority Priority `json:"priority"`

	// Completed reports whether the task is done. Completion is
	// independent of deletion: a task may be completed and deleted.
	Completed bool `json:"completed"`

	// DueDate is when the task is due (nil if none). Due dates carry
	// day granularity; classification compares calendar days.
	DueDate *time.Time `json:"due_date,omitempty"`

	// CreatedAt is when the task was created (server-assigned).
	CreatedAt time.Time `json:"created_at"`

	// UpdatedAt is when the task was last modified (server-assigned).
	UpdatedAt time.Time `json:"updated_at"`

	// DeletedAt is when the task was soft-deleted (nil if not deleted).
	// Set if and only if the task is in the deleted state.
	DeletedAt *time.Time `json:"deleted_at,omitempty"`
}

// AnchorDate returns the date a task is classified by: the due date when
// present, otherwise the creation date.
func (t Task) AnchorDate() time.Time {
	if t.DueDate != nil {
		return *t.DueDate
	}
	return t.CreatedAt
}

// Deleted reports whether the task is currently soft-deleted.
func (t Task) Deleted() bool {
	return t.DeletedAt != nil
}
