//go:build ebiten

package app

import (
	"context"
	"errors"
	"strconv"
	"time"

	"mazeball/internal/game"
	"mazeball/internal/render"
	"mazeball/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

const hudWidth = 200

var steerKeys = []struct {
	keys []ebiten.Key
	dir  game.Direction
}{
	{[]ebiten.Key{ebiten.KeyW, ebiten.KeyArrowUp}, game.Up},
	{[]ebiten.Key{ebiten.KeyA, ebiten.KeyArrowLeft}, game.Left},
	{[]ebiten.Key{ebiten.KeyS, ebiten.KeyArrowDown}, game.Down},
	{[]ebiten.Key{ebiten.KeyD, ebiten.KeyArrowRight}, game.Right},
}

func init() {
	Register("window", runWindow)
}

// Game adapts a Runner to the ebiten.Game interface.
type Game struct {
	ctx     context.Context
	runner  *Runner
	painter *render.WorldPainter
	banner  *ui.Banner
	overlay *ui.Overlay
	hud     *ui.HUD
}

// New constructs a Game for the provided runner.
func New(ctx context.Context, r *Runner) *Game {
	banner := ui.NewBanner(ui.DefaultBannerDuration)
	g := &Game{
		ctx:     ctx,
		runner:  r,
		painter: render.NewWorldPainter(render.DefaultPalette(), 1),
		banner:  banner,
		overlay: ui.NewOverlay(banner),
	}
	g.hud = ui.NewHUD(hudWidth, g.statusLines)
	return g
}

func runWindow(ctx context.Context, r *Runner) error {
	g := New(ctx, r)
	ebiten.SetWindowTitle("mazeball")
	ebiten.SetTPS(r.Config.TPS)
	ebiten.SetWindowSize(r.Config.Width+hudWidth, r.Config.Height)
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}

// Update handles per-frame input and advances the world one tick.
func (g *Game) Update() error {
	if g.ctx.Err() != nil {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		if err := g.reset(false); err != nil {
			return err
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		if err := g.reset(true); err != nil {
			return err
		}
	}

	s := g.runner.Session
	for _, sk := range steerKeys {
		for _, k := range sk.keys {
			if repeating(inpututil.KeyPressDuration(k)) {
				s.Input(sk.dir)
				break
			}
		}
	}

	s.Step()
	if s.State() == game.Won && !g.banner.Visible() {
		g.banner.Show("maze solved!  R restart  N new maze")
	}
	g.banner.Update(time.Second / time.Duration(ebiten.TPS()))
	return nil
}

func (g *Game) reset(fresh bool) error {
	if err := g.runner.Reset(fresh); err != nil {
		return err
	}
	g.banner.Hide()
	return nil
}

func (g *Game) statusLines() []string {
	s := g.runner.Session
	cfg := s.Config()
	return []string{
		"state  " + s.State().String(),
		"moves  " + strconv.Itoa(s.Moves()),
		"maze   " + strconv.Itoa(cfg.Rows) + "x" + strconv.Itoa(cfg.Columns),
		"seed   " + strconv.FormatInt(s.Seed(), 10),
	}
}

// Draw renders the world, the banner and the HUD.
func (g *Game) Draw(screen *ebiten.Image) {
	s := g.runner.Session
	g.painter.Draw(screen, s.World().Bodies())
	w, h := g.runner.Config.Width, g.runner.Config.Height
	g.overlay.Draw(screen, w, h)
	g.hud.Draw(screen, w, h)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.runner.Config.Width + g.hud.Width(), g.runner.Config.Height
}
