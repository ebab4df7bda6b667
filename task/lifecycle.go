package task

import (
	"fmt"
	"time"
)

// RecoveryWindow is how long a soft-deleted task can be restored before the
// server erases it. The server is authoritative; the client mirrors the
// window for display and for rejecting doomed restore attempts early.
const RecoveryWindow = 24 * time.Hour

// State represents the lifecycle state of a task as observed by the client.
type State string

const (
	// StateActive indicates a live task (completed or not).
	StateActive State = "active"

	// StateDeleted indicates a soft-deleted task still inside its
	// recovery window.
	StateDeleted State = "deleted"

	// StateExpired indicates a soft-deleted task whose recovery window
	// has elapsed. The server erases such tasks on its own schedule;
	// the client just stops offering restore.
	StateExpired State = "expired"
)

// StateOf derives the lifecycle state of a task at the given instant.
func StateOf(t Task, now time.Time) State {
	if t.DeletedAt == nil {
		return StateActive
	}
	if Expired(t, now) {
		return StateExpired
	}
	return StateDeleted
}

// ToggleComplete flips the completion flag. Completion and deletion are
// orthogonal, so the transition is legal in any state; callers should not
// offer it for deleted tasks.
func ToggleComplete(t Task) Task {
	t.Completed = !t.Completed
	return t
}

// SoftDelete moves an active task into the deleted state, stamping
// DeletedAt. Returns ErrAlreadyDeleted if the task is already deleted.
func SoftDelete(t Task, now time.Time) (Task, error) {
	if t.DeletedAt != nil {
		return t, fmt.Errorf("%w: %s", ErrAlreadyDeleted, t.ID)
	}
	deletedAt := now
	t.DeletedAt = &deletedAt
	return t, nil
}

// Restore moves a soft-deleted task back to active, clearing DeletedAt.
// Returns ErrNotDeleted for active tasks and ErrRecoveryExpired once the
// recovery window has elapsed.
func Restore(t Task, now time.Time) (Task, error) {
	if t.DeletedAt == nil {
		return t, fmt.Errorf("%w: %s", ErrNotDeleted, t.ID)
	}
	if Expired(t, now) {
		return t, fmt.Errorf("%w: %s", ErrRecoveryExpired, t.ID)
	}
	t.DeletedAt = nil
	return t, nil
}

// Expired reports whether a soft-deleted task's recovery window has
// elapsed. Always false for tasks that are not deleted.
func Expired(t Task, now time.Time) bool {
	if t.DeletedAt == nil {
		return false
	}
	return now.Sub(*t.DeletedAt) >= RecoveryWindow
}

// TimeRemaining returns how long a soft-deleted task can still be
// restored, floored at zero. The second return is false for tasks that
// are not deleted.
func TimeRemaining(t Task, now time.Time) (time.Duration, bool) {
	if t.DeletedAt == nil {
		return 0, false
	}
	remaining := RecoveryWindow - now.Sub(*t.DeletedAt)
	if remaining < 0 {
		remaining = 0
	}
	return remaining, true
}

// ExpiredLabel is the display sentinel for a deleted task whose recovery
// window has run out.
const ExpiredLabel = "Expired"

// FormatTimeRemaining renders the recovery countdown for a deleted task
// as hours and minutes, or ExpiredLabel once the window has elapsed.
// Returns "-" for tasks that are not deleted.
func FormatTimeRemaining(t Task, now time.Time) string {
	remaining, ok := TimeRemaining(t, now)
	if !ok {
		return "-"
	}
	if remaining <= 0 {
		return ExpiredLabel
	}
	hours := int(remaining / time.Hour)
	minutes := int(remaining % time.Hour / time.Minute)
	return fmt.Sprintf("%dh %dm remaining", hours, minutes)
}
