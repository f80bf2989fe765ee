package tui

import (
	"context"
	"fmt"
	"time"

	"pacmaze/internal/geom"
	"pacmaze/internal/sim"

	"github.com/gdamore/tcell/v2"
)

var (
	styleWall  = tcell.StyleDefault.Foreground(tcell.ColorBlue)
	stylePath  = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleMover = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	styleHUD   = tcell.StyleDefault.Foreground(tcell.ColorWhite)
)

// Viewer drives a world from a terminal: arrow keys or WASD steer the player,
// r clears the tick statistics, q or Esc quits.
type Viewer struct {
	screen tcell.Screen
	world  *sim.World
	tick   time.Duration

	// Terminals report key presses, not held keys, so the last direction is
	// re-requested every tick like a held key.
	intent geom.Direction
}

// NewViewer creates a viewer ticking the world tps times per second.
func NewViewer(screen tcell.Screen, world *sim.World, tps int) *Viewer {
	if tps <= 0 {
		tps = 60
	}
	return &Viewer{
		screen: screen,
		world:  world,
		tick:   time.Second / time.Duration(tps),
	}
}

// KeyIntent maps a key to a direction.
func KeyIntent(key tcell.Key, r rune) geom.Direction {
	switch key {
	case tcell.KeyUp:
		return geom.Up
	case tcell.KeyDown:
		return geom.Down
	case tcell.KeyLeft:
		return geom.Left
	case tcell.KeyRight:
		return geom.Right
	case tcell.KeyRune:
		switch r {
		case 'w', 'k':
			return geom.Up
		case 's', 'j':
			return geom.Down
		case 'a', 'h':
			return geom.Left
		case 'd', 'l':
			return geom.Right
		}
	}
	return geom.None
}

// Run polls input and ticks the world until ctx is done or the user quits.
func (v *Viewer) Run(ctx context.Context) error {
	ticker := time.NewTicker(v.tick)
	defer ticker.Stop()

	// The poller may be parked on a full channel when Run returns.
	done := make(chan struct{})
	defer close(done)

	events := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := v.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()

	dt := v.tick.Seconds()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev := <-events:
			if !v.handleEvent(ev) {
				return nil
			}
		case <-ticker.C:
			v.world.Request(sim.PlayerID, v.intent)
			v.world.Tick(dt)
			v.Draw()
		}
	}
}

func (v *Viewer) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return v.handleKey(ev.Key(), ev.Rune())
	case *tcell.EventResize:
		v.screen.Sync()
	}
	return true
}

// handleKey applies a key press and reports whether the viewer keeps running.
func (v *Viewer) handleKey(key tcell.Key, r rune) bool {
	if key == tcell.KeyEscape || key == tcell.KeyCtrlC {
		return false
	}
	if key == tcell.KeyRune {
		switch r {
		case 'q':
			return false
		case 'r':
			v.world.ResetMetrics()
			return true
		}
	}
	if d := KeyIntent(key, r); d != geom.None {
		v.intent = d
	}
	return true
}

// Draw renders the current world state.
func (v *Viewer) Draw() {
	v.screen.Clear()

	grid := v.world.Resolver().Grid()
	for row, cells := range Project(grid, v.world.Movers()) {
		for x, c := range cells {
			style := stylePath
			switch c {
			case glyphWall:
				style = styleWall
			case glyphPath:
			default:
				style = styleMover
			}
			v.screen.SetContent(x, row, c, nil, style)
		}
	}

	_, h := grid.Size()
	if p, ok := v.world.Mover(sim.PlayerID); ok {
		drawText(v.screen, 0, h+1, styleHUD, fmt.Sprintf("%s facing %s", p.TileInfo, p.Facing))
	}
	m := v.world.Metrics()
	drawText(v.screen, 0, h+2, styleHUD, fmt.Sprintf("ticks %d  moves %d  blocked %d", m.Ticks, m.MovesCommitted, m.MovesRejected))

	v.screen.Show()
}

func drawText(s tcell.Screen, x, y int, style tcell.Style, text string) {
	for i, r := range text {
		s.SetContent(x+i, y, r, nil, style)
	}
}
