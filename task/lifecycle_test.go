package task

import (
	"errors"
	"testing"
	"time"
)

func TestSoftDelete(t *testing.T) {
	item := Task{ID: "t1", Title: "write report", CreatedAt: testNow.Add(-time.Hour)}

	deleted, err := SoftDelete(item, testNow)
	if err != nil {
		t.Fatalf("SoftDelete() error = %v", err)
	}
	if deleted.DeletedAt == nil || !deleted.DeletedAt.Equal(testNow) {
		t.Errorf("DeletedAt = %v, want %v", deleted.DeletedAt, testNow)
	}
	if StateOf(deleted, testNow) != StateDeleted {
		t.Errorf("StateOf() = %v, want %v", StateOf(deleted, testNow), StateDeleted)
	}

	if _, err := SoftDelete(deleted, testNow.Add(time.Minute)); !errors.Is(err, ErrAlreadyDeleted) {
		t.Errorf("second SoftDelete() error = %v, want ErrAlreadyDeleted", err)
	}
}

func TestRestore(t *testing.T) {
	deletedAt := testNow
	item := Task{ID: "t1", Title: "write report", DeletedAt: &deletedAt}

	t.Run("within window", func(t *testing.T) {
		restored, err := Restore(item, testNow.Add(23*time.Hour))
		if err != nil {
			t.Fatalf("Restore() error = %v", err)
		}
		if restored.DeletedAt != nil {
			t.Errorf("DeletedAt = %v, want nil", restored.DeletedAt)
		}
		if StateOf(restored, testNow.Add(23*time.Hour)) != StateActive {
			t.Error("restored task should be active")
		}
	})

	t.Run("after window", func(t *testing.T) {
		_, err := Restore(item, testNow.Add(25*time.Hour))
		if !errors.Is(err, ErrRecoveryExpired) {
			t.Errorf("Restore() error = %v, want ErrRecoveryExpired", err)
		}
	})

	t.Run("exactly at window", func(t *testing.T) {
		_, err := Restore(item, testNow.Add(RecoveryWindow))
		if !errors.Is(err, ErrRecoveryExpired) {
			t.Errorf("Restore() at boundary error = %v, want ErrRecoveryExpired", err)
		}
	})

	t.Run("not deleted", func(t *testing.T) {
		_, err := Restore(Task{ID: "t2"}, testNow)
		if !errors.Is(err, ErrNotDeleted) {
			t.Errorf("Restore() error = %v, want ErrNotDeleted", err)
		}
	})
}

func TestRestore_Reappears(t *testing.T) {
	deletedAt := testNow.Add(-2 * time.Hour)
	item := Task{ID: "t1", Title: "write report", CreatedAt: testNow.Add(-time.Hour), DeletedAt: &deletedAt}

	restored, err := Restore(item, testNow)
	if err != nil {
		t.Fatalf("Restore() error = %v", err)
	}

	buckets := Partition([]Task{restored}, testNow)
	if len(buckets.Today) != 1 {
		t.Error("restored task should appear in the active partition")
	}
}

func TestToggleComplete(t *testing.T) {
	item := Task{ID: "t1"}

	item = ToggleComplete(item)
	if !item.Completed {
		t.Error("first toggle should complete the task")
	}
	item = ToggleComplete(item)
	if item.Completed {
		t.Error("second toggle should uncomplete the task")
	}
}

func TestStateOf(t *testing.T) {
	deletedAt := testNow

	tests := []struct {
		name string
		task Task
		at   time.Time
		want State
	}{
		{"active", Task{ID: "a"}, testNow, StateActive},
		{"active completed", Task{ID: "a", Completed: true}, testNow, StateActive},
		{"deleted", Task{ID: "a", DeletedAt: &deletedAt}, testNow.Add(time.Hour), StateDeleted},
		{"expired", Task{ID: "a", DeletedAt: &deletedAt}, testNow.Add(25 * time.Hour), StateExpired},
		{"expired at boundary", Task{ID: "a", DeletedAt: &deletedAt}, testNow.Add(RecoveryWindow), StateExpired},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := StateOf(tt.task, tt.at); got != tt.want {
				t.Errorf("StateOf() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestTimeRemaining(t *testing.T) {
	deletedAt := testNow

	t.Run("not deleted", func(t *testing.T) {
		if _, ok := TimeRemaining(Task{ID: "a"}, testNow); ok {
			t.Error("TimeRemaining on active task should report no data")
		}
	})

	t.Run("mid window", func(t *testing.T) {
		remaining, ok := TimeRemaining(Task{ID: "a", DeletedAt: &deletedAt}, testNow.Add(10*time.Hour))
		if !ok || remaining != 14*time.Hour {
			t.Errorf("TimeRemaining = %v %v, want 14h true", remaining, ok)
		}
	})

	t.Run("past window floors at zero", func(t *testing.T) {
		remaining, ok := TimeRemaining(Task{ID: "a", DeletedAt: &deletedAt}, testNow.Add(30*time.Hour))
		if !ok || remaining != 0 {
			t.Errorf("TimeRemaining = %v %v, want 0 true", remaining, ok)
		}
	})
}

func TestFormatTimeRemaining(t *testing.T) {
	deletedAt := testNow

	tests := []struct {
		name string
		task Task
		at   time.Time
		want string
	}{
		{"not deleted", Task{ID: "a"}, testNow, "-"},
		{"fresh delete", Task{ID: "a", DeletedAt: &deletedAt}, testNow.Add(30 * time.Minute), "23h 30m remaining"},
		{"nearly expired", Task{ID: "a", DeletedAt: &deletedAt}, testNow.Add(23*time.Hour + 59*time.Minute), "0h 1m remaining"},
		{"expired", Task{ID: "a", DeletedAt: &deletedAt}, testNow.Add(24 * time.Hour), ExpiredLabel},
		{"long expired", Task{ID: "a", DeletedAt: &deletedAt}, testNow.Add(48 * time.Hour), ExpiredLabel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatTimeRemaining(tt.task, tt.at); got != tt.want {
				t.Errorf("FormatTimeRemaining() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestValidateTitle(t *testing.T) {
	tests := []struct {
		name    string
		title   string
		wantErr error
	}{
		{"valid", "write report", nil},
		{"empty", "", ErrEmptyTitle},
		{"whitespace only", "   ", ErrEmptyTitle},
		{"too long", string(make([]byte, MaxTitleLength+1)), ErrTitleTooLong},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateTitle(tt.title)
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("ValidateTitle() error = %v, want nil", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("ValidateTitle() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidatePriority(t *testing.T) {
	for _, priority := range ValidPriorities() {
		if err := ValidatePriority(priority); err != nil {
			t.Errorf("ValidatePriority(%q) = %v, want nil", priority, err)
		}
	}
	if err := ValidatePriority(Priority("urgent")); !errors.Is(err, ErrInvalidPriority) {
		t.Errorf("ValidatePriority(urgent) = %v, want ErrInvalidPriority", err)
	}
}
