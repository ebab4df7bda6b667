package editor

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/amonks/daytask/task"
)

func TestRenderTaskTOML_Create(t *testing.T) {
	data := DefaultCreateData()
	out, err := RenderTaskTOML(data)
	if err != nil {
		t.Fatalf("RenderTaskTOML: %v", err)
	}
	if !strings.Contains(out, `priority = "medium"`) {
		t.Errorf("expected default priority in output, got:\n%s", out)
	}
	if strings.Contains(out, "completed") {
		t.Errorf("create template should not include completed, got:\n%s", out)
	}
	if !strings.Contains(out, "\n---\n") {
		t.Errorf("expected frontmatter separator, got:\n%s", out)
	}
}

func TestRenderTaskTOML_Update(t *testing.T) {
	due := time.Date(2026, 3, 20, 0, 0, 0, 0, time.UTC)
	tk := &task.Task{
		ID:          "abc123",
		Title:       "write report",
		Priority:    task.PriorityHigh,
		Category:    "Work",
		Completed:   true,
		DueDate:     &due,
		Description: "quarterly numbers",
	}
	out, err := RenderTaskTOML(DataFromTask(tk))
	if err != nil {
		t.Fatalf("RenderTaskTOML: %v", err)
	}
	for _, want := range []string{
		`title = "write report"`,
		`priority = "high"`,
		`category = "Work"`,
		`due = "2026-03-20"`,
		`completed = true`,
		"quarterly numbers",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %q in output, got:\n%s", want, out)
		}
	}
}

func TestParseTaskTOML(t *testing.T) {
	content := `title = "buy milk"
priority = "low"
category = "Errands"
due = "2026-04-01"
---
Two percent.
`
	parsed, err := ParseTaskTOML(content)
	if err != nil {
		t.Fatalf("ParseTaskTOML: %v", err)
	}
	if parsed.Title != "buy milk" {
		t.Errorf("Title = %q", parsed.Title)
	}
	if parsed.Priority != "low" {
		t.Errorf("Priority = %q", parsed.Priority)
	}
	if parsed.Category != "Errands" {
		t.Errorf("Category = %q", parsed.Category)
	}
	if parsed.DueDate != "2026-04-01" {
		t.Errorf("DueDate = %q", parsed.DueDate)
	}
	if got := strings.TrimSpace(parsed.Description); got != "Two percent." {
		t.Errorf("Description = %q", got)
	}
}

func TestParseTaskTOML_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr error
	}{
		{
			name:    "empty title",
			content: "title = \"\"\n---\n",
			wantErr: task.ErrEmptyTitle,
		},
		{
			name:    "whitespace title",
			content: "title = \"   \"\n---\n",
			wantErr: task.ErrEmptyTitle,
		},
		{
			name:    "bad priority",
			content: "title = \"x\"\npriority = \"urgent\"\n---\n",
			wantErr: task.ErrInvalidPriority,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseTaskTOML(tt.content)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("ParseTaskTOML error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestParseTaskTOML_DefaultPriority(t *testing.T) {
	parsed, err := ParseTaskTOML("title = \"x\"\n---\nbody")
	if err != nil {
		t.Fatalf("ParseTaskTOML: %v", err)
	}
	if parsed.Priority != string(task.PriorityMedium) {
		t.Errorf("Priority = %q, want medium", parsed.Priority)
	}
}

func TestParseTaskTOML_NoSeparator(t *testing.T) {
	parsed, err := ParseTaskTOML("title = \"x\"\n")
	if err != nil {
		t.Fatalf("ParseTaskTOML: %v", err)
	}
	if parsed.Description != "" {
		t.Errorf("Description = %q, want empty", parsed.Description)
	}
}

func TestSplitFrontmatter(t *testing.T) {
	front, body := splitFrontmatter("a = 1\n---\nhello\nworld")
	if front != "a = 1" {
		t.Errorf("front = %q", front)
	}
	if body != "hello\nworld" {
		t.Errorf("body = %q", body)
	}
}

func TestRoundTrip(t *testing.T) {
	data := TaskData{
		Title:       "round trip",
		Priority:    "high",
		Category:    "Test",
		DueDate:     "2026-05-05",
		Description: "some body text",
	}
	out, err := RenderTaskTOML(data)
	if err != nil {
		t.Fatalf("RenderTaskTOML: %v", err)
	}
	parsed, err := ParseTaskTOML(out)
	if err != nil {
		t.Fatalf("ParseTaskTOML: %v", err)
	}
	if parsed.Title != data.Title || parsed.Priority != data.Priority ||
		parsed.Category != data.Category || parsed.DueDate != data.DueDate {
		t.Errorf("round trip mismatch: %+v", parsed)
	}
	if got := strings.TrimSpace(parsed.Description); got != data.Description {
		t.Errorf("Description = %q, want %q", got, data.Description)
	}
}
