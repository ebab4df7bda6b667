package main

import (
	"strings"
	"time"

	"github.com/amonks/daytask/api"
	"github.com/amonks/daytask/internal/ui"
	"github.com/amonks/daytask/task"
)

// formatTaskTable renders active tasks in display order.
func formatTaskTable(tasks []task.Task, prefixLengths map[string]int, now time.Time) string {
	if len(tasks) == 0 {
		return ""
	}

	builder := ui.NewTableBuilder([]string{"ID", "DONE", "PRI", "TITLE", "DUE", "CATEGORY", "AGE"}, len(tasks))
	for _, t := range task.SortForDisplay(tasks) {
		done := ""
		title := ui.TruncateTableCell(t.Title)
		if t.Completed {
			done = "x"
			title = ui.StyleDone(title)
		}
		builder.AddRow([]string{
			highlightTaskID(t.ID, prefixLengths),
			done,
			ui.StylePriority(string(t.Priority)),
			title,
			ui.FormatDate(t.DueDate),
			ui.TruncateTableCell(t.Category),
			ui.FormatTimeAgo(t.CreatedAt, now),
		})
	}
	return builder.String()
}

// formatDeletedTable renders recoverable tasks with their remaining
// recovery time.
func formatDeletedTable(tasks []task.Task, prefixLengths map[string]int, now time.Time) string {
	if len(tasks) == 0 {
		return ""
	}

	builder := ui.NewTableBuilder([]string{"ID", "TITLE", "DELETED", "REMAINING"}, len(tasks))
	for _, t := range tasks {
		deletedAgo := ""
		if t.DeletedAt != nil {
			deletedAgo = ui.FormatTimeAgo(*t.DeletedAt, now)
		}
		builder.AddRow([]string{
			highlightTaskID(t.ID, prefixLengths),
			ui.TruncateTableCell(t.Title),
			deletedAgo,
			ui.StyleCountdown(task.FormatTimeRemaining(t, now), task.Expired(t, now)),
		})
	}
	return builder.String()
}

// formatHistoryTable renders history entries, most recent first.
func formatHistoryTable(entries []api.HistoryEntry, now time.Time) string {
	if len(entries) == 0 {
		return ""
	}

	builder := ui.NewTableBuilder([]string{"WHEN", "ACTION", "TASK", "FIELDS"}, len(entries))
	for _, entry := range entries {
		when := ""
		if !entry.Timestamp.IsZero() {
			when = ui.FormatTimeAgo(entry.Timestamp, now)
		}
		builder.AddRow([]string{
			when,
			entry.Action,
			ui.TruncateTableCell(entry.TaskTitle),
			strings.Join(entry.ChangedFields, ","),
		})
	}
	return builder.String()
}

func highlightTaskID(id string, prefixLengths map[string]int) string {
	return ui.HighlightID(id, prefixLengths[strings.ToLower(id)])
}

func taskPrefixLengths(tasks []task.Task) map[string]int {
	ids := make([]string, 0, len(tasks))
	for _, t := range tasks {
		ids = append(ids, t.ID)
	}
	return ui.UniqueIDPrefixLengths(ids)
}
