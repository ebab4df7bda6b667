package main

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/amonks/daytask/internal/ui"
	"github.com/amonks/daytask/task"
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List tasks",
	Long: `List tasks, grouped into today's tasks, old tasks, and the rest.

Old tasks are those whose due date (or creation date, when there is no
due date) falls on a day before today. Today's tasks were created today
or are due today or later.`,
	RunE: runList,
}

var (
	listToday      bool
	listOld        bool
	listOther      bool
	listCompleted  bool
	listOverdue    bool
	listCategory   string
	listByCategory bool
	listByDate     bool
	listJSON       bool
)

func init() {
	rootCmd.AddCommand(listCmd)

	listCmd.Flags().BoolVar(&listToday, "today", false, "Only today's tasks")
	listCmd.Flags().BoolVar(&listOld, "old", false, "Only old tasks")
	listCmd.Flags().BoolVar(&listOther, "other", false, "Only tasks in neither bucket")
	listCmd.Flags().BoolVar(&listCompleted, "completed", false, "Only completed tasks")
	listCmd.Flags().BoolVar(&listOverdue, "overdue", false, "Only incomplete tasks past their due date")
	listCmd.Flags().StringVar(&listCategory, "category", "", "Filter by category")
	listCmd.Flags().BoolVar(&listByCategory, "by-category", false, "Group by category")
	listCmd.Flags().BoolVar(&listByDate, "by-date", false, "Group by due date, or creation day when none")
	listCmd.Flags().BoolVar(&listJSON, "json", false, "Output as JSON")
}

func runList(cmd *cobra.Command, args []string) error {
	client, _, err := newClient()
	if err != nil {
		return err
	}
	ctx := cmd.Context()
	now := time.Now()

	tasks, err := client.List(ctx)
	if err != nil {
		return err
	}

	buckets := task.Partition(tasks, now)
	switch {
	case listToday:
		tasks = buckets.Today
	case listOld:
		tasks = buckets.Old
	case listOther:
		tasks = buckets.Other
	case listOverdue:
		tasks = task.Overdue(tasks, now)
	}
	if listCompleted {
		completed, _ := task.ByCompletion(tasks)
		tasks = completed
	}
	if listCategory != "" {
		tasks = filterByCategory(tasks, listCategory)
	}

	if listJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(tasks)
	}

	prefixLengths := taskPrefixLengths(tasks)
	switch {
	case listByCategory:
		printGroupedByCategory(tasks, prefixLengths, now)
	case listByDate:
		printGroupedByDate(tasks, prefixLengths, now)
	case listToday || listOld || listOther || listCompleted || listOverdue || listCategory != "":
		printSection("", tasks, prefixLengths, now)
	default:
		printSection("Today", buckets.Today, prefixLengths, now)
		printSection("Old", buckets.Old, prefixLengths, now)
		printSection("Other", buckets.Other, prefixLengths, now)
	}
	return nil
}

func printSection(heading string, tasks []task.Task, prefixLengths map[string]int, now time.Time) {
	if len(tasks) == 0 {
		return
	}
	if heading != "" {
		fmt.Printf("%s\n\n", ui.StyleHeader(heading))
	}
	fmt.Print(formatTaskTable(tasks, prefixLengths, now))
	fmt.Println()
}

func printGroupedByCategory(tasks []task.Task, prefixLengths map[string]int, now time.Time) {
	for _, group := range task.ByCategory(tasks) {
		printSection(group.Category, group.Tasks, prefixLengths, now)
	}
}

func printGroupedByDate(tasks []task.Task, prefixLengths map[string]int, now time.Time) {
	for _, group := range task.ByDateBucket(tasks) {
		printSection(ui.FormatDay(group.Day, now), group.Tasks, prefixLengths, now)
	}
}

func filterByCategory(tasks []task.Task, category string) []task.Task {
	var matched []task.Task
	for _, t := range tasks {
		name := t.Category
		if name == "" {
			name = task.Uncategorized
		}
		if name == category {
			matched = append(matched, t)
		}
	}
	return matched
}
