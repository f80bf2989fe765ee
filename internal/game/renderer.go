package game

import (
	"fmt"
	"image/color"

	"pacmaze/internal/config"
	"pacmaze/internal/coords"
	"pacmaze/internal/sprite"

	"github.com/hajimehoshi/ebiten/v2"
	ebitext "github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/f64"
)

var (
	colorBackground = color.RGBA{0, 0, 0, 255}
	colorWall       = color.RGBA{33, 33, 222, 255}
	colorPathDot    = color.RGBA{90, 90, 90, 255}
	colorGrid       = color.RGBA{102, 0, 0, 102}
	colorMan        = color.RGBA{255, 255, 0, 255}
	colorManStopped = color.RGBA{200, 200, 0, 255}
	colorFacing     = color.RGBA{0, 0, 0, 255}
	colorHUD        = color.RGBA{220, 220, 220, 255}
)

// Renderer draws the maze, movers and debug HUD
type Renderer struct {
	game      *PacGame
	mazeImage *ebiten.Image // Static maze, built on first draw
}

// NewRenderer creates a new renderer
func NewRenderer(game *PacGame) *Renderer {
	return &Renderer{game: game}
}

// ToScreen converts a scaled world position (origin at the playfield center,
// y up) to screen pixels (origin top-left, y down).
func ToScreen(cfg *config.Config, p f64.Vec2) (float32, float32) {
	box := cfg.Maze.BoundingBox
	x := p[0] - box.Left*cfg.Maze.Scale
	y := box.Top*cfg.Maze.Scale - p[1]
	return float32(x), float32(y)
}

// Draw renders one frame
func (r *Renderer) Draw(screen *ebiten.Image) {
	if r.mazeImage == nil {
		r.mazeImage = r.buildMazeImage()
	}
	screen.Fill(colorBackground)
	screen.DrawImage(r.mazeImage, nil)

	if r.game.showGrid {
		r.drawGrid(screen)
	}
	for _, m := range r.game.world.Movers() {
		r.drawMover(screen, m)
	}
	r.drawHUD(screen)
}

func (r *Renderer) buildMazeImage() *ebiten.Image {
	cfg := r.game.config
	layout := r.game.world.Resolver().Layout()
	grid := r.game.world.Resolver().Grid()

	img := ebiten.NewImage(cfg.GetScreenWidth(), cfg.GetScreenHeight())
	cell := float32(float64(layout.TileSize) * layout.Scale)
	w, h := grid.Size()
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			// Top-left corner of the tile in screen space
			left, top := ToScreen(cfg, layout.TileToPosition(x, y, coords.Offset(0), coords.Offset(layout.TileSize)))
			tile, _ := grid.Lookup(x, y)
			if tile.IsValidPath() {
				cx, cy := ToScreen(cfg, layout.TileCenter(x, y))
				// Occupied tiles get a bigger dot
				dot := float32(1 + len(tile.Occupants()))
				vector.DrawFilledRect(img, cx-dot, cy-dot, 2*dot, 2*dot, colorPathDot, false)
			} else {
				vector.DrawFilledRect(img, left, top, cell, cell, colorWall, false)
			}
		}
	}
	return img
}

func (r *Renderer) drawGrid(screen *ebiten.Image) {
	cfg := r.game.config
	layout := r.game.world.Resolver().Layout()
	width := float32(cfg.GetScreenWidth())
	height := float32(cfg.GetScreenHeight())

	for x := 0; x <= layout.Width; x++ {
		sx, _ := ToScreen(cfg, layout.TileToPosition(x, 0, coords.Offset(0), coords.Offset(0)))
		vector.StrokeLine(screen, sx, 0, sx, height, 1, colorGrid, false)
	}
	for y := 0; y <= layout.Height; y++ {
		_, sy := ToScreen(cfg, layout.TileToPosition(0, y, coords.Offset(0), coords.Offset(0)))
		vector.StrokeLine(screen, 0, sy, width, sy, 1, colorGrid, false)
	}
}

func (r *Renderer) drawMover(screen *ebiten.Image, m *sprite.Mover) {
	cfg := r.game.config
	radius := float32(float64(cfg.GetTileSize()) * cfg.GetScale() * 0.8)
	x, y := ToScreen(cfg, m.Position)

	body := colorMan
	if !m.Animating {
		body = colorManStopped
	}
	vector.DrawFilledCircle(screen, x, y, radius, body, true)

	// Facing marker, shrinking with the animation frame
	u := m.Facing.Unit()
	frames := max(1, len(m.TextureIndexes))
	marker := radius * 0.35 * float32(frames-m.AnimationTick) / float32(frames)
	vector.DrawFilledCircle(screen, x+float32(u[0])*radius*0.5, y-float32(u[1])*radius*0.5, marker, colorFacing, true)
}

func (r *Renderer) drawHUD(screen *ebiten.Image) {
	p := r.game.player
	metrics := r.game.world.Metrics()
	lines := []string{
		fmt.Sprintf("%s facing %s", p.TileInfo, p.Facing),
		fmt.Sprintf("animating %v frame %d", p.Animating, p.Frame()),
		fmt.Sprintf("ticks %d avg %v", metrics.Ticks, metrics.AvgTick),
	}
	face := basicfont.Face7x13
	for i, line := range lines {
		ebitext.Draw(screen, line, face, 8, 16+i*face.Height, colorHUD)
	}
}
