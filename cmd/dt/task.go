package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/amonks/daytask/api"
	"github.com/amonks/daytask/internal/editor"
	"github.com/amonks/daytask/internal/markdown"
	"github.com/amonks/daytask/internal/ui"
	"github.com/amonks/daytask/task"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var addCmd = &cobra.Command{
	Use:   "add [title]",
	Short: "Create a task",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runAdd,
}

var updateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Update a task",
	Args:  cobra.ExactArgs(1),
	RunE:  runUpdate,
}

var showCmd = &cobra.Command{
	Use:   "show <id>...",
	Short: "Show detailed information about tasks",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runShow,
}

var toggleCmd = &cobra.Command{
	Use:     "toggle <id>...",
	Aliases: []string{"done"},
	Short:   "Flip a task between complete and incomplete",
	Args:    cobra.MinimumNArgs(1),
	RunE:    runToggle,
}

var deleteCmd = &cobra.Command{
	Use:   "delete <id>...",
	Short: "Soft-delete tasks, recoverable for 24 hours",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runDelete,
}

var (
	addDescription string
	addPriority    priorityValue
	addDue         string
	addCategory    string
	addTags        []string
	addEdit        bool

	updateTitle       string
	updateDescription string
	updatePriority    priorityValue
	updateDue         string
	updateCategory    string
	updateTags        []string
	updateCompleted   bool
	updateEdit        bool

	showJSON bool
)

func init() {
	rootCmd.AddCommand(addCmd, updateCmd, showCmd, toggleCmd, deleteCmd)

	addCmd.Flags().StringVarP(&addDescription, "description", "d", "", "Description")
	addCmd.Flags().VarP(&addPriority, "priority", "p", "Priority (low, medium, high)")
	addCmd.Flags().StringVar(&addDue, "due", "", "Due date (YYYY-MM-DD)")
	addCmd.Flags().StringVarP(&addCategory, "category", "c", "", "Category")
	addCmd.Flags().StringArrayVar(&addTags, "tag", nil, "Tag (repeatable)")
	addCmd.Flags().BoolVarP(&addEdit, "edit", "e", false, "Compose the task in $EDITOR")

	updateCmd.Flags().StringVar(&updateTitle, "title", "", "New title")
	updateCmd.Flags().StringVarP(&updateDescription, "description", "d", "", "New description")
	updateCmd.Flags().VarP(&updatePriority, "priority", "p", "New priority (low, medium, high)")
	updateCmd.Flags().StringVar(&updateDue, "due", "", "New due date (YYYY-MM-DD), empty to clear")
	updateCmd.Flags().StringVarP(&updateCategory, "category", "c", "", "New category")
	updateCmd.Flags().StringArrayVar(&updateTags, "tag", nil, "Replace tags (repeatable)")
	updateCmd.Flags().BoolVar(&updateCompleted, "completed", false, "Set completion state")
	updateCmd.Flags().BoolVarP(&updateEdit, "edit", "e", false, "Edit the task in $EDITOR")

	showCmd.Flags().BoolVar(&showJSON, "json", false, "Output as JSON")
}

func runAdd(cmd *cobra.Command, args []string) error {
	client, cfg, err := newClient()
	if err != nil {
		return err
	}

	var title string
	opts := api.CreateOptions{
		Description: addDescription,
		Priority:    task.Priority(addPriority),
		DueDate:     addDue,
		Category:    addCategory,
		Tags:        addTags,
	}

	switch {
	case addEdit:
		if !editor.IsInteractive() {
			return fmt.Errorf("--edit requires a terminal")
		}
		data := editor.DefaultCreateData()
		if len(args) == 1 {
			data.Title = args[0]
		}
		parsed, err := editor.EditTaskWithData(data)
		if err != nil {
			return err
		}
		title = parsed.Title
		opts = parsed.ToCreateOptions()
	case len(args) == 1:
		title = args[0]
	default:
		return fmt.Errorf("a title is required unless --edit is given")
	}

	if opts.Category == "" {
		opts.Category = cfg.Tasks.DefaultCategory
	}

	created, err := client.Create(cmd.Context(), title, opts)
	if err != nil {
		return err
	}

	fmt.Printf("Created task %s: %s\n", created.ID, created.Title)
	return nil
}

func runUpdate(cmd *cobra.Command, args []string) error {
	client, _, err := newClient()
	if err != nil {
		return err
	}
	ctx := cmd.Context()

	id, err := resolveTaskID(ctx, client, args[0])
	if err != nil {
		return err
	}

	opts := api.UpdateOptions{}
	if updateEdit {
		if !editor.IsInteractive() {
			return fmt.Errorf("--edit requires a terminal")
		}
		current, err := client.Get(ctx, id)
		if err != nil {
			return err
		}
		parsed, err := editor.EditTask(current)
		if err != nil {
			return err
		}
		opts = parsed.ToUpdateOptions()
	} else {
		// Only set fields that were explicitly provided.
		if cmd.Flags().Changed("title") {
			opts.Title = &updateTitle
		}
		if cmd.Flags().Changed("description") {
			opts.Description = &updateDescription
		}
		if cmd.Flags().Changed("priority") {
			priority := task.Priority(updatePriority)
			opts.Priority = &priority
		}
		if cmd.Flags().Changed("completed") {
			opts.Completed = &updateCompleted
		}
		if cmd.Flags().Changed("due") {
			opts.DueDate = &updateDue
		}
		if cmd.Flags().Changed("category") {
			opts.Category = &updateCategory
		}
		if cmd.Flags().Changed("tag") {
			opts.Tags = updateTags
		}
	}

	updated, err := client.Update(ctx, id, opts)
	if err != nil {
		return err
	}

	fmt.Printf("Updated %s: %s\n", updated.ID, updated.Title)
	return nil
}

func runShow(cmd *cobra.Command, args []string) error {
	client, _, err := newClient()
	if err != nil {
		return err
	}
	ctx := cmd.Context()

	var tasks []task.Task
	for _, arg := range args {
		id, err := resolveTaskID(ctx, client, arg)
		if err != nil {
			return err
		}
		t, err := client.Get(ctx, id)
		if err != nil {
			return err
		}
		tasks = append(tasks, *t)
	}

	if showJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(tasks)
	}

	for i, t := range tasks {
		if i > 0 {
			fmt.Println("---")
		}
		printTaskDetail(t)
	}
	return nil
}

// printTaskDetail prints detailed information about a task.
func printTaskDetail(t task.Task) {
	fmt.Printf("ID:       %s\n", t.ID)
	fmt.Printf("Title:    %s\n", t.Title)
	fmt.Printf("Priority: %s\n", t.Priority)
	status := "pending"
	if t.Completed {
		status = "done"
	}
	fmt.Printf("Status:   %s\n", status)
	if t.Category != "" {
		fmt.Printf("Category: %s\n", t.Category)
	}
	if len(t.Tags) > 0 {
		fmt.Printf("Tags:     %s\n", strings.Join(t.Tags, ", "))
	}
	if t.DueDate != nil {
		fmt.Printf("Due:      %s\n", t.DueDate.Format("2006-01-02"))
	}
	fmt.Printf("Created:  %s\n", ui.StyleMuted(t.CreatedAt.Format("2006-01-02 15:04:05")))
	fmt.Printf("Updated:  %s\n", ui.StyleMuted(t.UpdatedAt.Format("2006-01-02 15:04:05")))
	if t.DeletedAt != nil {
		fmt.Printf("Deleted:  %s\n", ui.StyleMuted(t.DeletedAt.Format("2006-01-02 15:04:05")))
	}

	if t.Description != "" {
		fmt.Println()
		fmt.Println("Description:")
		if rendered := markdown.Render(descriptionWidth(), 2, []byte(t.Description)); rendered != nil {
			fmt.Println(string(rendered))
		}
	}
}

func descriptionWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width < 20 {
		return 80
	}
	return width
}

func runToggle(cmd *cobra.Command, args []string) error {
	client, _, err := newClient()
	if err != nil {
		return err
	}
	ctx := cmd.Context()

	for _, arg := range args {
		id, err := resolveTaskID(ctx, client, arg)
		if err != nil {
			return err
		}
		toggled, err := client.Toggle(ctx, id)
		if err != nil {
			return err
		}
		state := "incomplete"
		if toggled.Completed {
			state = "complete"
		}
		fmt.Printf("Marked %s %s: %s\n", toggled.ID, state, toggled.Title)
	}
	return nil
}

func runDelete(cmd *cobra.Command, args []string) error {
	client, _, err := newClient()
	if err != nil {
		return err
	}
	ctx := cmd.Context()

	for _, arg := range args {
		id, err := resolveTaskID(ctx, client, arg)
		if err != nil {
			return err
		}
		if err := client.Delete(ctx, id); err != nil {
			return err
		}
		fmt.Printf("Deleted %s (recoverable for %s with 'dt restore')\n", id, ui.FormatDurationShort(task.RecoveryWindow))
	}
	return nil
}
