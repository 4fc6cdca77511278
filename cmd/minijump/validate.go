package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/younwookim/minijump/internal/infrastructure/config"
)

var validateCmd = &cobra.Command{
	Use:   "validate <file>...",
	Short: "Check level YAML files",
	Long: `Parse and validate level files. Every file is checked; the command
fails if any of them is rejected.

Examples:
  minijump validate configs/levels/default.yaml`,
	Args: cobra.MinimumNArgs(1),
	RunE: runValidate,
}

func runValidate(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	failed := 0
	for _, path := range args {
		cfg, err := config.LoadFile(path)
		if err != nil {
			failed++
			fmt.Fprintf(out, "FAIL %s: %v\n", path, err)
			continue
		}
		fmt.Fprintf(out, "ok   %s (%d tiles, %d holes, %d enemies, goal at tile %d)\n",
			path, cfg.World.Width, len(cfg.World.Holes), len(cfg.Enemies.SpawnTiles), cfg.Goal.Tile)
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d level files invalid", failed, len(args))
	}
	return nil
}
