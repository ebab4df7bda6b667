package main

import (
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/amonks/daytask/task"
	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Summarize the task collection",
	RunE:  runStats,
}

func init() {
	rootCmd.AddCommand(statsCmd)
}

func runStats(cmd *cobra.Command, args []string) error {
	client, _, err := newClient()
	if err != nil {
		return err
	}

	tasks, err := client.List(cmd.Context())
	if err != nil {
		return err
	}

	now := time.Now()
	stats := task.Stats(tasks, now)
	buckets := task.Partition(tasks, now)

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintf(w, "Total:\t%d\n", stats.Total)
	fmt.Fprintf(w, "Completed:\t%d (%.0f%%)\n", stats.Completed, stats.CompletionRate)
	fmt.Fprintf(w, "Pending:\t%d\n", stats.Pending)
	fmt.Fprintf(w, "Overdue:\t%d\n", stats.Overdue)
	fmt.Fprintf(w, "Today:\t%d\n", len(buckets.Today))
	fmt.Fprintf(w, "Old:\t%d\n", len(buckets.Old))
	fmt.Fprintf(w, "Other:\t%d\n", len(buckets.Other))
	return w.Flush()
}
