package main

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"

	"github.com/younwookim/minijump/internal/application/game"
	"github.com/younwookim/minijump/internal/application/scene/playing"
	"github.com/younwookim/minijump/internal/infrastructure/config"
)

var (
	flagLevel  string
	flagRecord string
	flagWatch  bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a level",
	Long: `Open a window and play a level.

Controls:
  Left/A, Right/D   - Move
  Up/W/Space        - Jump
  P                 - Pause
  R                 - Restart
  Esc               - Quit

With --watch, edits to the level file are applied while playing.
The level restarts on every accepted edit.

Examples:
  minijump play
  minijump play --record run.json
  minijump play --config ./configs --level default --watch`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagLevel, "level", config.DefaultLevel, "Level name")
	playCmd.Flags().StringVar(&flagRecord, "record", "", "Record input to file (e.g., --record replay.json)")
	playCmd.Flags().BoolVar(&flagWatch, "watch", false, "Reload the level when its file changes (needs --config)")
}

func runPlay(cmd *cobra.Command, _ []string) error {
	name := levelName(flagLevel)

	loader, err := newLoader()
	if err != nil {
		return err
	}
	cfg, err := loader.LoadLevel(name)
	if err != nil {
		return err
	}

	opts := playing.Options{
		Level:      name,
		RecordPath: flagRecord,
		Logger:     logger,
	}

	if store := openStore(); store != nil {
		defer store.Close()
		opts.Store = store
	}

	if flagWatch {
		if flagConfigDir == "" {
			return errors.New("--watch needs --config pointing at a level directory")
		}
		path := loader.Path(name)
		w, err := config.NewWatcher(filepath.Dir(path))
		if err != nil {
			return fmt.Errorf("failed to watch %s: %w", path, err)
		}
		defer w.Close()
		opts.Reload = reloadLevels(w, loader, name, logger)
		logger.Info("watching level", "file", path)
	}

	scn, err := playing.New(cfg, opts)
	if err != nil {
		return err
	}

	d := cfg.Display
	scale := d.Scale
	if scale <= 0 {
		scale = 1
	}
	ebiten.SetWindowSize(d.ScreenWidth*scale, d.ScreenHeight*scale)
	ebiten.SetWindowTitle("Mini Jump")
	if d.Framerate > 0 {
		ebiten.SetTPS(d.Framerate)
	}

	return ebiten.RunGame(game.New(scn, d.ScreenWidth, d.ScreenHeight))
}

// reloadLevels turns watcher events for the named level into freshly
// loaded configs. Only the newest pending config is kept.
func reloadLevels(w *config.Watcher, loader *config.Loader, name string, logger *log.Logger) <-chan *config.LevelConfig {
	out := make(chan *config.LevelConfig, 1)
	target := filepath.Clean(loader.Path(name))

	go func() {
		defer close(out)
		for {
			select {
			case path, ok := <-w.Events:
				if !ok {
					return
				}
				if filepath.Clean(path) != target {
					continue
				}
				cfg, err := loader.LoadLevel(name)
				if err != nil {
					logger.Warn("level reload failed", "file", path, "error", err)
					continue
				}
				select {
				case <-out:
				default:
				}
				out <- cfg
			case err, ok := <-w.Errors:
				if !ok {
					return
				}
				logger.Warn("watcher error", "error", err)
			}
		}
	}()

	return out
}
