package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/younwookim/minijump/internal/application/replay"
	"github.com/younwookim/minijump/internal/application/session"
)

var flagSaveBest bool

var replayCmd = &cobra.Command{
	Use:   "replay <file>",
	Short: "Re-run a recorded input file",
	Long: `Feed a recorded input file to a fresh session without opening a window
and print where the run ended. The simulation is deterministic, so a
replay reproduces the recorded run exactly.

Examples:
  minijump replay run.json
  minijump replay run.json --save`,
	Args: cobra.ExactArgs(1),
	RunE: runReplay,
}

func init() {
	replayCmd.Flags().BoolVar(&flagSaveBest, "save", false, "Record the clear time of a finished replay")
}

func runReplay(cmd *cobra.Command, args []string) error {
	data, err := replay.LoadReplay(args[0])
	if err != nil {
		return err
	}
	if data.Version != replay.Version {
		logger.Warn("replay version mismatch", "file", data.Version, "supported", replay.Version)
	}
	name := levelName(data.Level)

	loader, err := newLoader()
	if err != nil {
		return err
	}
	cfg, err := loader.LoadLevel(name)
	if err != nil {
		return err
	}
	s, err := session.New(cfg)
	if err != nil {
		return err
	}

	player := replay.NewReplayer(*data)
	res := replay.Run(s, player)
	framerate := cfg.Display.Framerate
	if framerate <= 0 {
		framerate = 60
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Level:    %s\n", name)
	fmt.Fprintf(out, "Frames:   %d/%d\n", player.CurrentFrame(), player.TotalFrames())
	fmt.Fprintf(out, "Coins:    %d\n", res.Coins)
	fmt.Fprintf(out, "Player:   x=%.1f y=%.1f\n", res.Final.Player.X, res.Final.Player.Y)
	if !res.Finished {
		fmt.Fprintln(out, "Finished: no")
		return nil
	}

	seconds := float64(res.ClearFrame) / float64(framerate)
	fmt.Fprintf(out, "Finished: yes (frame %d, %.2fs)\n", res.ClearFrame, seconds)

	if !flagSaveBest {
		return nil
	}
	store := openStore()
	if store == nil {
		return nil
	}
	defer store.Close()

	improved, err := store.RecordClear(name, seconds, res.Coins)
	if err != nil {
		return err
	}
	if improved {
		fmt.Fprintln(out, "New best time!")
	}
	return nil
}
