package main

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/amonks/daytask/api"
	"github.com/spf13/cobra"
)

var historyCmd = &cobra.Command{
	Use:   "history [id]",
	Short: "Show the change history for a task, or for all tasks",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runHistory,
}

var (
	historyLimit int
	historyJSON  bool
)

func init() {
	rootCmd.AddCommand(historyCmd)

	historyCmd.Flags().IntVar(&historyLimit, "limit", 0, "Maximum entries to show (default from config)")
	historyCmd.Flags().BoolVar(&historyJSON, "json", false, "Output as JSON")
}

func runHistory(cmd *cobra.Command, args []string) error {
	client, cfg, err := newClient()
	if err != nil {
		return err
	}
	ctx := cmd.Context()

	limit := historyLimit
	if limit <= 0 {
		limit = cfg.Tasks.HistoryLimit
	}

	var entries []api.HistoryEntry
	if len(args) == 1 {
		id, err := resolveTaskID(ctx, client, args[0])
		if err != nil {
			return err
		}
		entries, err = client.History(ctx, id, limit)
		if err != nil {
			return err
		}
	} else {
		entries, err = client.AllHistory(ctx, limit)
		if err != nil {
			return err
		}
	}

	if historyJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(entries)
	}

	if len(entries) == 0 {
		fmt.Println("No history")
		return nil
	}
	fmt.Print(formatHistoryTable(entries, time.Now()))
	return nil
}
