package api

import (
	"reflect"
	"testing"
	"time"

	"github.com/amonks/daytask/task"
)

func TestWireRoundTrip(t *testing.T) {
	dueDate := time.Date(2026, 3, 16, 0, 0, 0, 0, time.UTC)
	deletedAt := time.Date(2026, 3, 15, 8, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		task task.Task
	}{
		{
			name: "full task",
			task: task.Task{
				ID:          "abc123",
				Title:       "write report",
				Description: "quarterly numbers",
				Category:    "Work",
				Tags:        []string{"q1", "finance"},
				Priority:    task.PriorityHigh,
				Completed:   true,
				DueDate:     &dueDate,
				CreatedAt:   time.Date(2026, 3, 15, 9, 30, 0, 0, time.UTC),
				UpdatedAt:   time.Date(2026, 3, 15, 10, 0, 0, 0, time.UTC),
			},
		},
		{
			name: "minimal task",
			task: task.Task{
				ID:        "min1",
				Title:     "buy milk",
				Priority:  task.PriorityMedium,
				CreatedAt: time.Date(2026, 3, 15, 9, 30, 0, 0, time.UTC),
				UpdatedAt: time.Date(2026, 3, 15, 9, 30, 0, 0, time.UTC),
			},
		},
		{
			name: "deleted task",
			task: task.Task{
				ID:        "gone1",
				Title:     "old thing",
				Priority:  task.PriorityLow,
				CreatedAt: time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC),
				UpdatedAt: time.Date(2026, 3, 15, 8, 0, 0, 0, time.UTC),
				DeletedAt: &deletedAt,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := fromTask(tt.task).toTask()
			if err != nil {
				t.Fatalf("round trip error = %v", err)
			}
			if !reflect.DeepEqual(*got, tt.task) {
				t.Errorf("round trip mismatch:\n got %+v\nwant %+v", *got, tt.task)
			}
		})
	}
}

func TestWireTask_DefaultPriority(t *testing.T) {
	wire := wireTask{
		ID:        "a",
		Title:     "no priority on the wire",
		CreatedAt: "2026-03-15T09:30:00Z",
		UpdatedAt: "2026-03-15T09:30:00Z",
	}

	got, err := wire.toTask()
	if err != nil {
		t.Fatalf("toTask() error = %v", err)
	}
	if got.Priority != task.PriorityMedium {
		t.Errorf("Priority = %q, want medium default", got.Priority)
	}
}

func TestWireTask_DateOnlyDueDate(t *testing.T) {
	wire := wireTask{
		ID:        "a",
		Title:     "due on a bare date",
		Priority:  "low",
		DueDate:   "2026-03-16",
		CreatedAt: "2026-03-15T09:30:00Z",
		UpdatedAt: "2026-03-15T09:30:00Z",
	}

	got, err := wire.toTask()
	if err != nil {
		t.Fatalf("toTask() error = %v", err)
	}
	want := time.Date(2026, 3, 16, 0, 0, 0, 0, time.UTC)
	if got.DueDate == nil || !got.DueDate.Equal(want) {
		t.Errorf("DueDate = %v, want %v", got.DueDate, want)
	}
}

func TestWireTask_BadTimestamp(t *testing.T) {
	wire := wireTask{
		ID:        "a",
		Title:     "bad clock",
		CreatedAt: "not a time",
		UpdatedAt: "2026-03-15T09:30:00Z",
	}

	if _, err := wire.toTask(); err == nil {
		t.Error("toTask() with bad timestamp should fail")
	}
}
