package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
)

var deletedCmd = &cobra.Command{
	Use:   "deleted",
	Short: "List recoverable deleted tasks",
	RunE:  runDeleted,
}

var restoreCmd = &cobra.Command{
	Use:   "restore <id>...",
	Short: "Bring deleted tasks back before their window closes",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runRestore,
}

var purgeCmd = &cobra.Command{
	Use:   "purge <id>...",
	Short: "Permanently erase deleted tasks",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runPurge,
}

var cleanupCmd = &cobra.Command{
	Use:   "cleanup",
	Short: "Erase deleted tasks whose recovery window has elapsed",
	RunE:  runCleanup,
}

var (
	deletedJSON bool
	purgeYes    bool
)

func init() {
	rootCmd.AddCommand(deletedCmd, restoreCmd, purgeCmd, cleanupCmd)

	deletedCmd.Flags().BoolVar(&deletedJSON, "json", false, "Output as JSON")
	purgeCmd.Flags().BoolVarP(&purgeYes, "yes", "y", false, "Skip the confirmation prompt")
}

func runDeleted(cmd *cobra.Command, args []string) error {
	client, _, err := newClient()
	if err != nil {
		return err
	}

	tasks, err := client.ListDeleted(cmd.Context())
	if err != nil {
		return err
	}

	if deletedJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(tasks)
	}

	if len(tasks) == 0 {
		fmt.Println("No deleted tasks")
		return nil
	}
	fmt.Print(formatDeletedTable(tasks, taskPrefixLengths(tasks), time.Now()))
	return nil
}

func runRestore(cmd *cobra.Command, args []string) error {
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
		restored, err := client.Restore(ctx, id)
		if err != nil {
			return err
		}
		fmt.Printf("Restored %s: %s\n", restored.ID, restored.Title)
	}
	return nil
}

func runPurge(cmd *cobra.Command, args []string) error {
	client, _, err := newClient()
	if err != nil {
		return err
	}
	ctx := cmd.Context()

	if !purgeYes {
		ok, err := confirm(fmt.Sprintf("Permanently erase %d task(s)? There is no undo.", len(args)))
		if err != nil {
			return err
		}
		if !ok {
			fmt.Println("Aborted")
			return nil
		}
	}

	for _, arg := range args {
		id, err := resolveTaskID(ctx, client, arg)
		if err != nil {
			return err
		}
		if err := client.PermanentDelete(ctx, id); err != nil {
			return err
		}
		fmt.Printf("Purged %s\n", id)
	}
	return nil
}

func runCleanup(cmd *cobra.Command, args []string) error {
	client, _, err := newClient()
	if err != nil {
		return err
	}

	count, err := client.Cleanup(cmd.Context())
	if err != nil {
		return err
	}
	fmt.Printf("Erased %d expired task(s)\n", count)
	return nil
}

// confirm asks a yes/no question on stdin.
func confirm(question string) (bool, error) {
	fmt.Printf("%s [y/N] ", question)
	reader := bufio.NewReader(os.Stdin)
	answer, err := reader.ReadString('\n')
	if err != nil {
		return false, fmt.Errorf("read confirmation: %w", err)
	}
	answer = strings.ToLower(strings.TrimSpace(answer))
	return answer == "y" || answer == "yes", nil
}
