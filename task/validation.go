package task

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrEmptyTitle is returned when a task title is empty after trimming.
	ErrEmptyTitle = errors.New("title cannot be empty")

	// ErrTitleTooLong is returned when a task title exceeds MaxTitleLength.
	ErrTitleTooLong = errors.New("title exceeds maximum length")

	// ErrInvalidPriority is returned when an invalid priority is provided.
	ErrInvalidPriority = errors.New("invalid priority")

	// ErrTaskNotFound is returned when a task with the given ID doesn't exist.
	ErrTaskNotFound = errors.New("task not found")

	// ErrAlreadyDeleted is returned when soft-deleting a task that is
	// already deleted.
	ErrAlreadyDeleted = errors.New("task is already deleted")

	// ErrNotDeleted is returned when restoring a task that is not deleted.
	ErrNotDeleted = errors.New("task is not deleted")

	// ErrRecoveryExpired is returned when restoring a task whose recovery
	// window has elapsed.
	ErrRecoveryExpired = errors.New("recovery window has expired")

	// ErrBulkInFlight is returned when a bulk operation is started while
	// another one is still running.
	ErrBulkInFlight = errors.New("another bulk operation is in flight")
)

// ValidateTitle checks if the title is valid.
func ValidateTitle(title string) error {
	if strings.TrimSpace(title) == "" {
		return ErrEmptyTitle
	}
	if len(title) > MaxTitleLength {
		return fmt.Errorf("%w: %d > %d", ErrTitleTooLong, len(title), MaxTitleLength)
	}
	return nil
}

// ValidatePriority checks if the priority is valid.
func ValidatePriority(priority Priority) error {
	if !priority.IsValid() {
		return fmt.Errorf("%w: %q (must be one of: low, medium, high)", ErrInvalidPriority, priority)
	}
	return nil
}

// Validate checks if a task struct is valid.
func Validate(t *Task) error {
	if err := ValidateTitle(t.Title); err != nil {
		return err
	}
	if err := ValidatePriority(t.Priority); err != nil {
		return err
	}
	return nil
}
