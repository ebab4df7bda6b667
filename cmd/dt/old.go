package main

import (
	"context"
	"fmt"
	"time"

	"github.com/amonks/daytask/task"
	"github.com/spf13/cobra"
)

var oldCmd = &cobra.Command{
	Use:   "old",
	Short: "Act on every old task at once",
}

var oldCompleteAllCmd = &cobra.Command{
	Use:   "complete-all",
	Short: "Mark every old incomplete task completed",
	RunE:  runOldCompleteAll,
}

var oldDeleteAllCmd = &cobra.Command{
	Use:   "delete-all",
	Short: "Soft-delete every old task",
	RunE:  runOldDeleteAll,
}

var oldDeleteCompletedCmd = &cobra.Command{
	Use:   "delete-completed",
	Short: "Soft-delete every old completed task",
	RunE:  runOldDeleteCompleted,
}

var oldYes bool

func init() {
	rootCmd.AddCommand(oldCmd)
	oldCmd.AddCommand(oldCompleteAllCmd, oldDeleteAllCmd, oldDeleteCompletedCmd)

	oldCmd.PersistentFlags().BoolVarP(&oldYes, "yes", "y", false, "Skip the confirmation prompt")
}

func runOldCompleteAll(cmd *cobra.Command, args []string) error {
	return runBulkOld(cmd.Context(), "Complete %d old task(s)?", task.CompleteAllOldCount,
		func(bulk *task.Bulk, ctx context.Context) (*task.BulkResult, error) {
			return bulk.CompleteAllOld(ctx)
		}, "Completed %d task(s)\n")
}

func runOldDeleteAll(cmd *cobra.Command, args []string) error {
	return runBulkOld(cmd.Context(), "Delete %d old task(s)?", task.DeleteAllOldCount,
		func(bulk *task.Bulk, ctx context.Context) (*task.BulkResult, error) {
			return bulk.DeleteAllOld(ctx)
		}, "Deleted %d task(s)\n")
}

func runOldDeleteCompleted(cmd *cobra.Command, args []string) error {
	return runBulkOld(cmd.Context(), "Delete %d old completed task(s)?", task.DeleteCompletedOldCount,
		func(bulk *task.Bulk, ctx context.Context) (*task.BulkResult, error) {
			return bulk.DeleteCompletedOld(ctx)
		}, "Deleted %d task(s)\n")
}

// runBulkOld previews how many tasks the transition would touch, asks
// for confirmation, then runs it through the bulk coordinator.
func runBulkOld(ctx context.Context, question string, preview func([]task.Task, time.Time) int,
	run func(*task.Bulk, context.Context) (*task.BulkResult, error), report string) error {
	client, _, err := newClient()
	if err != nil {
		return err
	}

	tasks, err := client.List(ctx)
	if err != nil {
		return err
	}

	affected := preview(tasks, time.Now())
	if affected == 0 {
		fmt.Println("Nothing to do")
		return nil
	}

	if !oldYes {
		ok, err := confirm(fmt.Sprintf(question, affected))
		if err != nil {
			return err
		}
		if !ok {
			fmt.Println("Aborted")
			return nil
		}
	}

	result, err := run(task.NewBulk(client), ctx)
	if err != nil {
		return err
	}

	remaining := task.NewCollection(result.Tasks)
	fmt.Printf(report, result.Count)
	fmt.Printf("%d task(s) remain\n", remaining.Len())
	return nil
}
