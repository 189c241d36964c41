// Package term is the terminal frontend: the maze is rasterized into
// character cells and steered from the keyboard through tcell.
package term

import (
	"context"
	"fmt"
	"image/color"
	"time"

	"mazeball/internal/app"
	"mazeball/internal/core"
	"mazeball/internal/game"
	"mazeball/internal/render"
	"mazeball/internal/ui"

	"github.com/gdamore/tcell/v2"
)

const solvedMessage = " maze solved!  R restart  N new maze  Q quit "

func init() {
	app.Register("terminal", Run)
}

// Run opens the terminal screen and plays until the player quits or ctx is
// cancelled.
func Run(ctx context.Context, r *app.Runner) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("open terminal: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init terminal: %w", err)
	}
	defer screen.Fini()
	return newFrontend(screen, r).run(ctx)
}

type frontend struct {
	screen  tcell.Screen
	runner  *app.Runner
	raster  *render.Raster
	banner  *ui.Banner
	ticker  *core.Ticker
	palette render.Palette
}

func newFrontend(screen tcell.Screen, r *app.Runner) *frontend {
	return &frontend{
		screen:  screen,
		runner:  r,
		raster:  render.NewRaster(0, 0),
		banner:  ui.NewBanner(ui.DefaultBannerDuration),
		ticker:  core.NewTicker(r.Config.TPS),
		palette: render.DefaultPalette(),
	}
}

func (f *frontend) run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	events := make(chan tcell.Event, 100)
	go forward(ctx, f.screen.PollEvent, events)

	tick := time.NewTicker(f.ticker.Step())
	defer tick.Stop()
	f.draw()

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			quit, err := f.handle(ev)
			if err != nil {
				return err
			}
			if quit {
				return nil
			}
		case now := <-tick.C:
			f.advance(now)
			f.draw()
		}
	}
}

// forward copies polled events to out until poll returns nil, which closes
// out, or until ctx is done.
func forward(ctx context.Context, poll func() tcell.Event, out chan<- tcell.Event) {
	for {
		ev := poll()
		if ev == nil {
			close(out)
			return
		}
		select {
		case out <- ev:
		case <-ctx.Done():
			return
		}
	}
}

// handle applies one input event. It reports whether the player asked to quit.
func (f *frontend) handle(ev tcell.Event) (bool, error) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return true, nil
		case tcell.KeyUp:
			f.runner.Session.Input(game.Up)
		case tcell.KeyDown:
			f.runner.Session.Input(game.Down)
		case tcell.KeyLeft:
			f.runner.Session.Input(game.Left)
		case tcell.KeyRight:
			f.runner.Session.Input(game.Right)
		case tcell.KeyRune:
			return f.handleRune(ev.Rune())
		}
	case *tcell.EventResize:
		f.screen.Sync()
		f.draw()
	}
	return false, nil
}

func (f *frontend) handleRune(r rune) (bool, error) {
	switch r {
	case 'q', 'Q':
		return true, nil
	case 'r', 'R':
		return false, f.reset(false)
	case 'n', 'N':
		return false, f.reset(true)
	}
	if d, ok := game.DirectionForRune(r); ok {
		f.runner.Session.Input(d)
	}
	return false, nil
}

func (f *frontend) reset(fresh bool) error {
	if err := f.runner.Reset(fresh); err != nil {
		return err
	}
	f.banner.Hide()
	f.ticker.Reset()
	return nil
}

// advance runs the ticks due at now.
func (f *frontend) advance(now time.Time) {
	n := f.ticker.Advance(now)
	s := f.runner.Session
	for i := 0; i < n; i++ {
		s.Step()
	}
	if s.State() == game.Won && !f.banner.Visible() {
		f.banner.Show(solvedMessage)
	}
	f.banner.Update(time.Duration(n) * f.ticker.Step())
}

func (f *frontend) draw() {
	f.screen.Clear()
	w, h := f.screen.Size()
	bg := rgb(f.palette.Background)
	base := tcell.StyleDefault.Background(bg)

	f.drawText(0, 0, f.runner.Status(), base.Foreground(rgb(f.palette.Wall)).Bold(true))
	f.drawText(0, h-1, "WASD/arrows steer  R restart  N new maze  Q quit", base.Foreground(rgb(f.palette.Border)))

	view := h - 2
	if view > 0 {
		s := f.runner.Session
		f.raster.Resize(w, view)
		ww, wh := s.World().Size()
		f.raster.Fill(s.World().Bodies(), ww, wh)
		for row := 0; row < f.raster.Rows; row++ {
			for col := 0; col < f.raster.Cols; col++ {
				g, role := f.raster.At(col, row)
				st := base
				if role != "" {
					st = base.Foreground(rgb(f.palette.Color(role)))
				}
				f.screen.SetContent(col, row+1, g, nil, st)
			}
		}
		f.drawBanner(w, view)
	}
	f.screen.Show()
}

func (f *frontend) drawBanner(w, view int) {
	if !f.banner.Visible() || f.banner.Alpha() <= 0 {
		return
	}
	msg := f.banner.Text()
	row := 1 + view/2 - int(f.banner.Offset(3))
	col := (w - len(msg)) / 2
	if col < 0 {
		col = 0
	}
	st := tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorYellow)
	if f.banner.Alpha() < 0.5 {
		st = st.Dim(true)
	} else {
		st = st.Bold(true)
	}
	f.drawText(col, row, msg, st)
}

func (f *frontend) drawText(x, y int, s string, st tcell.Style) {
	for i, r := range []rune(s) {
		f.screen.SetContent(x+i, y, r, nil, st)
	}
}

func rgb(c color.RGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}
