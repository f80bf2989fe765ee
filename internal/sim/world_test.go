package sim

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"pacmaze/internal/config"
	"pacmaze/internal/coords"
	"pacmaze/internal/geom"
	"pacmaze/internal/maze"

	"golang.org/x/image/math/f64"
)

const dt = 1.0 / 64

func newTestWorld(t *testing.T, mutate func(*config.Config)) (*World, *bytes.Buffer) {
	t.Helper()
	cfg := config.DefaultConfig()
	cfg.Animation.FrameSeconds = dt
	if mutate != nil {
		mutate(cfg)
	}
	var buf bytes.Buffer
	w := NewWorld(cfg, maze.DefaultGrid(), log.New(&buf, "", 0))
	t.Cleanup(w.Close)
	return w, &buf
}

func TestSpawnPlayer(t *testing.T) {
	w, _ := newTestWorld(t, nil)
	m, err := w.SpawnPlayer()
	if err != nil {
		t.Fatalf("spawn: %v", err)
	}
	if m.TileInfo != (coords.TileInfo{X: 14, Y: 9, XOffset: 0, YOffset: 4}) {
		t.Errorf("unexpected spawn tile %v", m.TileInfo)
	}
	if m.Facing != geom.Right || m.Frame() != 0 {
		t.Errorf("expected player facing right on frame 0")
	}
	if got, ok := w.Mover(PlayerID); !ok || got != m {
		t.Errorf("player not registered")
	}
	if _, err := w.SpawnPlayer(); err == nil {
		t.Errorf("expected duplicate spawn to fail")
	}
}

func TestSpawn_RejectsWall(t *testing.T) {
	w, _ := newTestWorld(t, nil)
	if _, err := w.Spawn("ghost", geom.Up, 0, 0, nil, nil); err == nil {
		t.Errorf("expected spawn on a wall to fail")
	}
}

func TestTick_AppliesRequestsBeforeMoving(t *testing.T) {
	w, _ := newTestWorld(t, nil)
	m, err := w.SpawnPlayer()
	if err != nil {
		t.Fatalf("spawn: %v", err)
	}

	w.Request(PlayerID, geom.Up) // (14, 10) is a wall
	w.Request(PlayerID, geom.Left)
	w.Request(PlayerID, geom.None)
	w.Tick(dt)

	if m.Facing != geom.Left || m.Velocity != (f64.Vec2{-240, 0}) {
		t.Fatalf("expected player heading left, got facing %s velocity %v", m.Facing, m.Velocity)
	}
	if m.Position != (f64.Vec2{-3.75, -204}) {
		t.Errorf("expected the turn to apply in the same tick, got %v", m.Position)
	}
	if !m.Animating || m.AnimationTick != 1 || m.Frame() != 15 {
		t.Errorf("expected animation to advance, got tick %d frame %d", m.AnimationTick, m.Frame())
	}

	metrics := w.Metrics()
	if metrics.Ticks != 1 || metrics.TurnsAccepted != 1 || metrics.TurnsRejected != 1 || metrics.MovesCommitted != 1 {
		t.Errorf("unexpected metrics %+v", metrics)
	}

	// Requests are consumed by the tick
	w.Tick(dt)
	if w.Metrics().TurnsAccepted != 1 {
		t.Errorf("requests must not be replayed")
	}
}

func TestTick_UnknownMoverIsLogged(t *testing.T) {
	w, buf := newTestWorld(t, nil)
	w.Request("nobody", geom.Left)
	w.Tick(dt)
	if !strings.Contains(buf.String(), `unknown mover "nobody"`) {
		t.Errorf("expected warning, got %q", buf.String())
	}
}

func TestTick_ParallelStepsEveryMoverOnce(t *testing.T) {
	w, _ := newTestWorld(t, func(c *config.Config) { c.Movement.ParallelMovers = 2 })

	starts := make(map[string]f64.Vec2)
	for x := 2; x <= 9; x++ {
		id := fmt.Sprintf("m%d", x)
		m, err := w.Spawn(id, geom.Right, x, 3, nil, nil)
		if err != nil {
			t.Fatalf("spawn %s: %v", id, err)
		}
		starts[id] = m.Position
		w.Request(id, geom.Right)
	}
	w.Tick(dt)

	for _, m := range w.Movers() {
		want := f64.Vec2{starts[m.ID][0] + 3.75, starts[m.ID][1]}
		if m.Position != want {
			t.Errorf("%s: expected %v, got %v", m.ID, want, m.Position)
		}
	}
	if got := w.Metrics().MovesCommitted; got != 8 {
		t.Errorf("expected 8 committed moves, got %d", got)
	}
}

func TestTick_MovementLogging(t *testing.T) {
	w, buf := newTestWorld(t, func(c *config.Config) { c.Debug.LogMovement = true })
	if _, err := w.SpawnPlayer(); err != nil {
		t.Fatalf("spawn: %v", err)
	}
	w.Request(PlayerID, geom.Left)
	w.Tick(dt)
	if !strings.Contains(buf.String(), "mover man entered tile (13, 9)") {
		t.Errorf("expected tile change log, got %q", buf.String())
	}
}

func TestLoadGrid(t *testing.T) {
	cfg := config.DefaultConfig()
	g, err := LoadGrid(cfg)
	if err != nil {
		t.Fatalf("default grid: %v", err)
	}
	if !g.Walkable(1, 4) {
		t.Errorf("expected the reference layout")
	}

	path := filepath.Join(t.TempDir(), "small.txt")
	if err := os.WriteFile(path, []byte("...\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	cfg.Maze.MaskFile = path
	if _, err := LoadGrid(cfg); err == nil {
		t.Errorf("expected size mismatch error")
	}

	cfg.Maze.Width, cfg.Maze.Height = 3, 1
	if _, err := LoadGrid(cfg); err != nil {
		t.Errorf("expected matching maze to load: %v", err)
	}
}

func TestLoadGrid_BuiltInMustMatchConfig(t *testing.T) {
	tests := []struct {
		name          string
		width, height int
	}{
		{"wider", 30, 36},
		{"shorter", 28, 20},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.DefaultConfig()
			cfg.Maze.Width, cfg.Maze.Height = tt.width, tt.height
			g, err := LoadGrid(cfg)
			if !errors.Is(err, ErrGridSize) {
				t.Fatalf("expected ErrGridSize, got grid %v err %v", g, err)
			}
		})
	}
}

// A layout wider than the grid would put the tunnel edge outside the maze and
// pin a mover on the last real tile instead of wrapping it.
func TestTunnelWrapsWithLoadedGrid(t *testing.T) {
	cfg := config.DefaultConfig()
	grid, err := LoadGrid(cfg)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	w := NewWorld(cfg, grid, log.New(io.Discard, "", 0))
	t.Cleanup(w.Close)

	m, err := w.Spawn("runner", geom.Right, 26, 18, nil, nil)
	if err != nil {
		t.Fatalf("spawn: %v", err)
	}
	w.Request("runner", geom.Right)

	wrapped := false
	for i := 0; i < 20; i++ {
		w.Tick(dt)
		if m.TileInfo.X < 26 {
			wrapped = true
			break
		}
	}
	if !wrapped {
		t.Errorf("expected tunnel wrap, mover stuck at %s animating=%v", m.TileInfo, m.Animating)
	}
}
