package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/younwookim/minijump/internal/infrastructure/storage"
)

var bestCmd = &cobra.Command{
	Use:   "best",
	Short: "Show best clear times",
	Long: `List the fastest recorded clear of every level.

Examples:
  minijump best
  minijump best --db ./best.db`,
	Args: cobra.NoArgs,
	RunE: runBest,
}

func runBest(cmd *cobra.Command, _ []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	times, err := store.All()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if len(times) == 0 {
		fmt.Fprintln(out, "No clear times recorded yet.")
		return nil
	}

	fmt.Fprintf(out, "  %-12s  %-9s  %-5s  %s\n", "Level", "Time", "Coins", "Date")
	fmt.Fprintf(out, "  %-12s  %-9s  %-5s  %s\n", "-----", "----", "-----", "----")
	for _, bt := range times {
		dateStr := bt.UpdatedAt.Format("2006-01-02 15:04")
		fmt.Fprintf(out, "  %-12s  %-9s  %-5d  %s\n", bt.Level, fmt.Sprintf("%.2fs", bt.Seconds), bt.Coins, dateStr)
	}
	return nil
}
