package editor

import (
	"bytes"
	"fmt"
	"os"
	"strings"
	"text/template"

	"github.com/BurntSushi/toml"
	"github.com/amonks/daytask/api"
	"github.com/amonks/daytask/task"
)

// TaskData represents the data used to render the TOML template.
type TaskData struct {
	// IsUpdate is true when editing an existing task.
	IsUpdate bool
	// ID is the task ID (only for updates).
	ID string
	// Title is the task title.
	Title string
	// Priority is the task priority (low, medium, high).
	Priority string
	// Category is the task category.
	Category string
	// DueDate is the due date as an ISO date, empty for none.
	DueDate string
	// Completed is the completion flag (only for updates).
	Completed bool
	// Description is the task description.
	Description string
}

// DefaultCreateData returns TaskData with default values for a new task.
func DefaultCreateData() TaskData {
	return TaskData{
		Priority: string(task.PriorityMedium),
	}
}

// DataFromTask creates TaskData from an existing task for editing.
func DataFromTask(t *task.Task) TaskData {
	data := TaskData{
		IsUpdate:    true,
		ID:          t.ID,
		Title:       t.Title,
		Priority:    string(t.Priority),
		Category:    t.Category,
		Completed:   t.Completed,
		Description: t.Description,
	}
	if t.DueDate != nil {
		data.DueDate = t.DueDate.Format("2006-01-02")
	}
	return data
}

var taskTemplate = template.Must(template.New("task").Parse(`title = {{ printf "%q" .Title }}
priority = {{ printf "%q" .Priority }} # low, medium, high
category = {{ printf "%q" .Category }}
due = {{ printf "%q" .DueDate }} # ISO date, e.g. 2026-03-15, empty for none
{{- if .IsUpdate }}
completed = {{ .Completed }}
{{- end }}
---
{{ .Description }}
`))

// RenderTaskTOML renders the task data as an editable document: TOML
// frontmatter, a --- separator, then the description body.
func RenderTaskTOML(data TaskData) (string, error) {
	var buf bytes.Buffer
	if err := taskTemplate.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("render template: %w", err)
	}
	return buf.String(), nil
}

// ParsedTask represents the parsed result from the TOML editor output.
type ParsedTask struct {
	Title       string `toml:"title"`
	Priority    string `toml:"priority"`
	Category    string `toml:"category"`
	DueDate     string `toml:"due"`
	Completed   *bool  `toml:"completed"`
	Description string
}

// ParseTaskTOML parses the TOML content from the editor.
func ParseTaskTOML(content string) (*ParsedTask, error) {
	frontmatter, body := splitFrontmatter(content)

	var parsed ParsedTask
	if _, err := toml.Decode(frontmatter, &parsed); err != nil {
		return nil, fmt.Errorf("parse TOML: %w", err)
	}
	parsed.Description = strings.TrimLeft(body, "\n")
	parsed.Priority = strings.ToLower(strings.TrimSpace(parsed.Priority))
	if parsed.Priority == "" {
		parsed.Priority = string(task.PriorityMedium)
	}

	if err := task.ValidateTitle(parsed.Title); err != nil {
		return nil, err
	}
	if err := task.ValidatePriority(task.Priority(parsed.Priority)); err != nil {
		return nil, err
	}

	return &parsed, nil
}

// EditTask opens the editor for a task and returns the parsed result.
// Pass nil for create.
func EditTask(existing *task.Task) (*ParsedTask, error) {
	if existing == nil {
		return EditTaskWithData(DefaultCreateData())
	}
	return EditTaskWithData(DataFromTask(existing))
}

// EditTaskWithData opens the editor with pre-populated data and returns
// the parsed result.
func EditTaskWithData(data TaskData) (*ParsedTask, error) {
	content, err := RenderTaskTOML(data)
	if err != nil {
		return nil, err
	}

	tmpfile, err := os.CreateTemp("", "dt-task-*.md")
	if err != nil {
		return nil, fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := tmpfile.Name()
	defer os.Remove(tmpPath)

	if _, err := tmpfile.WriteString(content); err != nil {
		tmpfile.Close()
		return nil, fmt.Errorf("write temp file: %w", err)
	}
	if err := tmpfile.Close(); err != nil {
		return nil, fmt.Errorf("close temp file: %w", err)
	}

	if err := Edit(tmpPath); err != nil {
		return nil, err
	}

	edited, err := os.ReadFile(tmpPath)
	if err != nil {
		return nil, fmt.Errorf("read edited file: %w", err)
	}

	return ParseTaskTOML(string(edited))
}

// ToCreateOptions converts a ParsedTask to api.CreateOptions.
func (p *ParsedTask) ToCreateOptions() api.CreateOptions {
	return api.CreateOptions{
		Description: p.Description,
		Priority:    task.Priority(p.Priority),
		DueDate:     p.DueDate,
		Category:    p.Category,
	}
}

// ToUpdateOptions converts a ParsedTask to api.UpdateOptions.
func (p *ParsedTask) ToUpdateOptions() api.UpdateOptions {
	priority := task.Priority(p.Priority)
	opts := api.UpdateOptions{
		Title:       &p.Title,
		Description: &p.Description,
		Priority:    &priority,
		Category:    &p.Category,
		DueDate:     &p.DueDate,
		Completed:   p.Completed,
	}
	return opts
}

func splitFrontmatter(content string) (string, string) {
	content = strings.TrimLeft(content, "\n")
	if content == "" {
		return "", ""
	}

	lines := strings.Split(content, "\n")
	separatorIndex := -1
	for i, line := range lines {
		if strings.TrimSpace(line) == "---" {
			separatorIndex = i
			break
		}
	}
	if separatorIndex == -1 {
		return content, ""
	}

	return strings.Join(lines[:separatorIndex], "\n"), strings.Join(lines[separatorIndex+1:], "\n")
}
