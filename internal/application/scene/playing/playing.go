// Package playing provides the main gameplay scene.
package playing

import (
	"fmt"
	"image/color"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/younwookim/minijump/internal/application/scene"
	"github.com/younwookim/minijump/internal/application/session"
	"github.com/younwookim/minijump/internal/application/state"
	"github.com/younwookim/minijump/internal/application/system"
	"github.com/younwookim/minijump/internal/domain/entity"
	"github.com/younwookim/minijump/internal/infrastructure/config"
)

// Colors for rendering
var (
	colorBG       = color.RGBA{26, 26, 46, 255}
	colorGround   = color.RGBA{80, 80, 100, 255}
	colorPlatform = color.RGBA{110, 90, 70, 255}
	colorPlayer   = color.RGBA{100, 200, 100, 255}
	colorFlash    = color.RGBA{255, 255, 255, 200}
	colorEnemy    = color.RGBA{200, 100, 100, 255}
	colorBoss     = color.RGBA{150, 60, 180, 255}
	colorCoin     = color.RGBA{255, 215, 0, 255}
	colorGoal     = color.RGBA{240, 240, 240, 255}
	colorHealthBG = color.RGBA{60, 60, 60, 255}
	colorHealthFG = color.RGBA{200, 80, 200, 255}
)

// Controls are the keys the scene reads each tick
type Controls interface {
	Input() system.InputState
	Pause() bool
	Restart() bool
	Quit() bool
}

// ClearStore records clear times
type ClearStore interface {
	RecordClear(level string, seconds float64, coins int) (bool, error)
}

// Options configures a Playing scene. Every field is optional.
type Options struct {
	// Level is the name clear times and recordings are filed under
	Level string
	// RecordPath enables input recording to this file
	RecordPath string
	Store      ClearStore
	// Reload delivers replacement level configs, applied between steps
	Reload   <-chan *config.LevelConfig
	Controls Controls
	Logger   *log.Logger
}

// Playing is the main gameplay scene
type Playing struct {
	session  *session.Session
	snapshot session.Snapshot
	state    state.GameState

	level     string
	framerate int
	screenW   int
	screenH   int

	controls Controls
	store    ClearStore
	reload   <-chan *config.LevelConfig
	logger   *log.Logger

	recorder       *Recorder
	recordFilename string
}

// New creates a new Playing scene for the level
func New(cfg *config.LevelConfig, opts Options) (*Playing, error) {
	s, err := session.New(cfg)
	if err != nil {
		return nil, err
	}

	p := &Playing{
		state:          state.StatePlaying,
		level:          opts.Level,
		controls:       opts.Controls,
		store:          opts.Store,
		reload:         opts.Reload,
		logger:         opts.Logger,
		recordFilename: opts.RecordPath,
	}
	if p.level == "" {
		p.level = config.DefaultLevel
	}
	if p.controls == nil {
		p.controls = NewKeyboard(system.DefaultKeyBindings())
	}
	if p.logger == nil {
		p.logger = log.Default()
	}

	p.use(s)
	if p.recordFilename != "" {
		p.logger.Info("recording enabled", "file", p.recordFilename)
	}
	return p, nil
}

func (p *Playing) use(s *session.Session) {
	cfg := s.Config()
	p.session = s
	p.snapshot = s.Snapshot()
	p.state = state.StatePlaying
	p.screenW = cfg.Display.ScreenWidth
	p.screenH = cfg.Display.ScreenHeight
	p.framerate = cfg.Display.Framerate
	if p.framerate <= 0 {
		p.framerate = ebiten.DefaultTPS
	}
	if p.recordFilename != "" {
		// A reload ends the current run; keep what was recorded so far
		p.saveRecording()
		p.recorder = NewRecorder(p.level, cfg.Number)
	}
}

// Update proceeds the game state (implements scene.Scene)
func (p *Playing) Update() (scene.Scene, error) {
	p.applyReload()

	if p.controls.Quit() {
		return nil, scene.ErrQuit
	}
	if p.controls.Restart() {
		p.restart()
		return nil, nil
	}
	if p.controls.Pause() {
		p.state = p.state.TogglePause()
	}
	if !p.state.Simulating() {
		return nil, nil
	}

	input := p.controls.Input()
	if p.recorder != nil && !p.session.Finished() {
		p.recorder.RecordFrame(input)
	}

	p.snapshot = p.session.Step(input)
	p.handleEvents(p.snapshot.Events)

	return nil, nil // nil = stay on this scene
}

func (p *Playing) applyReload() {
	if p.reload == nil {
		return
	}
	select {
	case cfg, ok := <-p.reload:
		if !ok {
			p.reload = nil
			return
		}
		s, err := session.New(cfg)
		if err != nil {
			p.logger.Error("level reload rejected", "error", err)
			return
		}
		p.use(s)
		p.logger.Info("level reloaded", "level", p.level)
	default:
	}
}

func (p *Playing) handleEvents(events []system.Event) {
	frame := p.snapshot.Frame
	for _, e := range events {
		switch e.Kind {
		case system.EventJump, system.EventCoin, system.EventBossLand:
			p.logger.Debug("event", "kind", e.Kind, "frame", frame, "value", e.Value)
		case system.EventGoal:
			p.onClear(frame, e.Value)
		default:
			p.logger.Info("event", "kind", e.Kind, "frame", frame, "slot", e.Slot, "name", e.Name, "value", e.Value)
		}
	}
}

func (p *Playing) onClear(frame, coins int) {
	p.state = state.StateCleared
	seconds := float64(frame) / float64(p.framerate)
	p.logger.Info("level cleared", "level", p.level, "seconds", seconds, "coins", coins)

	if p.recorder != nil {
		p.saveRecording()
		p.recorder.Stop()
	}

	if p.store == nil {
		return
	}
	improved, err := p.store.RecordClear(p.level, seconds, coins)
	if err != nil {
		p.logger.Warn("could not record clear time", "error", err)
		return
	}
	if improved {
		p.logger.Info("new best time", "level", p.level, "seconds", seconds)
	}
}

// saveRecording saves the current recording to file
func (p *Playing) saveRecording() {
	if p.recorder == nil || !p.recorder.IsRecording() {
		return
	}

	filename := p.recordFilename
	if filename == "" {
		filename = GenerateFilename()
	}

	if err := p.recorder.Save(filename); err != nil {
		p.logger.Warn("failed to save recording", "error", err)
		return
	}
	p.logger.Info("recording saved", "file", filename, "frames", p.recorder.FrameCount())
}

func (p *Playing) restart() {
	p.session.Restart()
	p.snapshot = p.session.Snapshot()
	p.state = state.StatePlaying

	if p.recordFilename != "" {
		p.recorder = NewRecorder(p.level, p.session.Config().Number)
		p.logger.Info("recording restarted")
	}
}

// State returns the scene state
func (p *Playing) State() state.GameState {
	return p.state
}

// Snapshot returns the last rendered snapshot
func (p *Playing) Snapshot() session.Snapshot {
	return p.snapshot
}

// Draw renders the game screen
func (p *Playing) Draw(screen *ebiten.Image) {
	screen.Fill(colorBG)

	snap := p.snapshot
	camX := snap.Camera.X

	for _, pl := range snap.Platforms {
		c := colorPlatform
		if pl.Ground {
			c = colorGround
		}
		p.fillRect(screen, pl.Rect, camX, c)
	}

	p.fillRect(screen, snap.Goal, camX, colorGoal)

	for _, coin := range snap.Coins {
		if coin.Taken || !p.visible(coin.X-coin.R, 2*coin.R, camX) {
			continue
		}
		vector.DrawFilledCircle(screen, float32(coin.X-camX), float32(coin.Y), float32(coin.R), colorCoin, true)
	}

	for _, e := range snap.Enemies {
		if !e.Active {
			continue
		}
		p.fillRect(screen, e.Rect, camX, colorEnemy)
	}

	if snap.Boss.Visible {
		c := colorBoss
		if snap.Boss.Invulnerable > 0 && snap.Boss.Invulnerable%4 < 2 {
			c = colorFlash
		}
		p.fillRect(screen, snap.Boss.Rect, camX, c)
	}

	// Flash when invulnerable
	c := colorPlayer
	if snap.Player.Invulnerable && snap.Frame%8 < 4 {
		c = colorFlash
	}
	p.fillRect(screen, snap.Player.Rect, camX, c)

	p.drawUI(screen)

	switch p.state {
	case state.StatePaused:
		p.drawPauseOverlay(screen)
	case state.StateCleared:
		p.drawClearOverlay(screen)
	}
}

func (p *Playing) visible(x, w, camX float64) bool {
	return x+w >= camX && x <= camX+float64(p.screenW)
}

func (p *Playing) fillRect(screen *ebiten.Image, r entity.Rect, camX float64, c color.Color) {
	if !p.visible(r.X, r.W, camX) {
		return
	}
	vector.DrawFilledRect(screen, float32(r.X-camX), float32(r.Y), float32(r.W), float32(r.H), c, false)
}

func (p *Playing) drawUI(screen *ebiten.Image) {
	snap := p.snapshot

	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Coins: %d", snap.CoinCount), 10, p.screenH-35)

	if snap.Boss.Visible && snap.Boss.MaxHP > 0 {
		barW, barH := float32(100), float32(10)
		barX := float32(p.screenW) - barW - 10
		barY := float32(p.screenH - 20)
		ratio := float32(snap.Boss.HP) / float32(snap.Boss.MaxHP)
		vector.DrawFilledRect(screen, barX, barY, barW, barH, colorHealthBG, false)
		vector.DrawFilledRect(screen, barX, barY, barW*ratio, barH, colorHealthFG, false)
	}

	ebitenutil.DebugPrint(screen, "Arrows/WASD: Move | Up/W/Space: Jump | P: Pause | R: Restart | ESC: Quit")
}

func (p *Playing) drawPauseOverlay(screen *ebiten.Image) {
	overlay := color.RGBA{0, 0, 0, 128}
	vector.DrawFilledRect(screen, 0, 0, float32(p.screenW), float32(p.screenH), overlay, false)

	ebitenutil.DebugPrintAt(screen, "PAUSED\n\nPress P to resume", p.screenW/2-50, p.screenH/2-20)
}

func (p *Playing) drawClearOverlay(screen *ebiten.Image) {
	alpha := uint8(160 * p.snapshot.Victory)
	overlay := color.RGBA{0, 0, 0, alpha}
	vector.DrawFilledRect(screen, 0, 0, float32(p.screenW), float32(p.screenH), overlay, false)

	seconds := float64(p.snapshot.Frame) / float64(p.framerate)
	text := fmt.Sprintf("CLEAR!\n\nCoins: %d\nTime: %.2fs\n\nPress R to play again", p.snapshot.CoinCount, seconds)
	ebitenutil.DebugPrintAt(screen, text, p.screenW/2-60, p.screenH/2-30)
}

// OnEnter is called when entering this scene
func (p *Playing) OnEnter() {
	p.logger.Info("level started", "level", p.level)
}

// OnExit is called when leaving this scene
func (p *Playing) OnExit() {
	p.saveRecording()
}

// Keyboard reads Controls from the ebiten keyboard
type Keyboard struct {
	input *system.InputSystem
}

// NewKeyboard creates keyboard controls with the given movement bindings
func NewKeyboard(bindings system.KeyBindings) *Keyboard {
	return &Keyboard{input: system.NewInputSystem(bindings)}
}

// Input samples the movement keys
func (k *Keyboard) Input() system.InputState {
	return k.input.GetInput()
}

// Pause reports a fresh press of P
func (k *Keyboard) Pause() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeyP)
}

// Restart reports a fresh press of R
func (k *Keyboard) Restart() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeyR)
}

// Quit reports a fresh press of Escape
func (k *Keyboard) Quit() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeyEscape)
}
