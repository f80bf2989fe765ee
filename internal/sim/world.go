package sim

import (
	"errors"
	"fmt"
	"log"
	"sync"

	"pacmaze/internal/config"
	"pacmaze/internal/coords"
	"pacmaze/internal/geom"
	"pacmaze/internal/maze"
	"pacmaze/internal/movement"
	"pacmaze/internal/sprite"
	"pacmaze/internal/threading/core"
	"pacmaze/internal/threading/monitoring"
)

// PlayerID is the mover spawned by SpawnPlayer.
const PlayerID = "man"

// ErrGridSize is returned when a maze does not match the configured dimensions.
var ErrGridSize = errors.New("maze size does not match config")

// Request is a directional intent waiting for the next tick.
type Request struct {
	MoverID string
	Dir     geom.Direction
}

// World owns the movers and drives them one tick at a time. Each tick first
// applies queued direction changes, then steps every mover exactly once.
type World struct {
	cfg      *config.Config
	resolver *movement.Resolver
	monitor  *monitoring.TickMonitor
	anim     *sprite.Timer
	logger   *log.Logger

	movers []*sprite.Mover
	byID   map[string]*sprite.Mover

	// Movers are independent and the grid is read-only, so large mover sets
	// can be stepped on the pool.
	pool              *core.WorkerPool
	parallelThreshold int

	mu      sync.Mutex
	pending []Request
}

// LoadGrid builds the maze named by the config, or the built-in layout. The
// grid must match the configured dimensions since the coordinate layout, and
// with it tunnel edge detection, is built from them.
func LoadGrid(cfg *config.Config) (*maze.Grid, error) {
	source := "built-in maze"
	grid := maze.DefaultGrid()
	if cfg.Maze.MaskFile != "" {
		var err error
		if grid, err = maze.LoadGrid(cfg.Maze.MaskFile); err != nil {
			return nil, err
		}
		source = "maze file " + cfg.Maze.MaskFile
	}
	if w, h := grid.Size(); w != cfg.Maze.Width || h != cfg.Maze.Height {
		return nil, fmt.Errorf("%w: %s is %dx%d, config expects %dx%d",
			ErrGridSize, source, w, h, cfg.Maze.Width, cfg.Maze.Height)
	}
	return grid, nil
}

// NewWorld creates an empty world over grid. logger receives startup messages
// and, with debug.log_movement set, per-mover movement events.
func NewWorld(cfg *config.Config, grid *maze.Grid, logger *log.Logger) *World {
	if logger == nil {
		logger = log.Default()
	}
	var movementLogger *log.Logger
	if cfg.Debug.LogMovement {
		movementLogger = logger
	}

	w := &World{
		cfg:               cfg,
		resolver:          movement.NewResolver(grid, coords.NewLayout(cfg), cfg.GetMoveSpeed(), movementLogger),
		monitor:           monitoring.NewTickMonitor(),
		anim:              sprite.NewTimer(cfg.GetFrameSeconds()),
		logger:            logger,
		byID:              make(map[string]*sprite.Mover),
		parallelThreshold: cfg.Movement.ParallelMovers,
	}
	gw, gh := grid.Size()
	logger.Printf("Maze %dx%d loaded with %d path tiles", gw, gh, grid.PathCount())
	if w.parallelThreshold > 0 {
		w.pool = core.NewWorkerPool(0)
		w.pool.Start()
		logger.Printf("Stepping %d+ movers on %d workers", w.parallelThreshold, w.pool.GetNumWorkers())
	}
	return w
}

// Close releases the worker pool.
func (w *World) Close() {
	if w.pool != nil {
		w.pool.Stop()
	}
}

// Resolver returns the movement resolver used by the world.
func (w *World) Resolver() *movement.Resolver {
	return w.resolver
}

// Spawn adds a stationary mover at a point inside tile (x, y).
func (w *World) Spawn(id string, facing geom.Direction, x, y int, xOff, yOff *int) (*sprite.Mover, error) {
	if _, exists := w.byID[id]; exists {
		return nil, fmt.Errorf("mover %q already exists", id)
	}
	if !w.resolver.Grid().Walkable(x, y) {
		return nil, fmt.Errorf("cannot spawn %q on non-path tile (%d, %d)", id, x, y)
	}

	m := sprite.New(id, facing, w.IndexesFor(facing))
	w.resolver.Place(m, x, y, xOff, yOff)
	w.movers = append(w.movers, m)
	w.byID[id] = m
	return m, nil
}

// SpawnPlayer adds the player mover at the configured spawn point, facing right.
func (w *World) SpawnPlayer() (*sprite.Mover, error) {
	s := w.cfg.Maze.Spawn
	return w.Spawn(PlayerID, geom.Right, s.TileX, s.TileY, s.XOffset, s.YOffset)
}

// Mover looks a mover up by id.
func (w *World) Mover(id string) (*sprite.Mover, bool) {
	m, ok := w.byID[id]
	return m, ok
}

// Movers returns the movers in spawn order.
func (w *World) Movers() []*sprite.Mover {
	return w.movers
}

// Request queues a directional intent for the next tick. It is safe to call
// from input goroutines. None intents are dropped.
func (w *World) Request(id string, d geom.Direction) {
	if d == geom.None {
		return
	}
	w.mu.Lock()
	w.pending = append(w.pending, Request{MoverID: id, Dir: d})
	w.mu.Unlock()
}

// Tick advances the simulation by dt seconds.
func (w *World) Tick(dt float64) {
	timer := w.monitor.StartTick()
	defer timer.EndTick()

	w.mu.Lock()
	requests := w.pending
	w.pending = nil
	w.mu.Unlock()

	for _, req := range requests {
		m, ok := w.byID[req.MoverID]
		if !ok {
			w.logger.Printf("Warning: direction request for unknown mover %q", req.MoverID)
			continue
		}
		w.monitor.RecordTurn(w.resolver.ChangeDirection(m, req.Dir, w.IndexesFor(req.Dir)))
	}

	step := func(i int) {
		w.monitor.RecordMove(w.resolver.Step(w.movers[i], dt))
	}
	if w.pool != nil && len(w.movers) >= w.parallelThreshold {
		w.pool.ParallelFor(0, len(w.movers), step)
	} else {
		for i := range w.movers {
			step(i)
		}
	}

	if w.anim.Tick(dt) {
		for _, m := range w.movers {
			m.Animate()
		}
	}
}

// Metrics returns tick statistics.
func (w *World) Metrics() monitoring.TickMetrics {
	return w.monitor.GetCurrentMetrics()
}

// ResetMetrics clears the tick statistics.
func (w *World) ResetMetrics() {
	w.monitor.Reset()
}

// IndexesFor returns the configured animation sequence for a facing.
func (w *World) IndexesFor(d geom.Direction) []int {
	a := w.cfg.Animation
	switch d {
	case geom.Up:
		return a.Up
	case geom.Left:
		return a.Left
	case geom.Down:
		return a.Down
	case geom.Right:
		return a.Right
	}
	return nil
}
