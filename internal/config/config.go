package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds all game configuration values
type Config struct {
	Display   DisplayConfig   `yaml:"display"`
	Maze      MazeConfig      `yaml:"maze"`
	Movement  MovementConfig  `yaml:"movement"`
	Animation AnimationConfig `yaml:"animation"`
	Debug     DebugConfig     `yaml:"debug"`
}

type DisplayConfig struct {
	WindowTitle string `yaml:"window_title"`
	Resizable   bool   `yaml:"resizable"`
	TPS         int    `yaml:"tps"`
}

// MazeConfig describes the playfield geometry. The bounding box is in
// unscaled world units; Scale is applied on top of it.
type MazeConfig struct {
	Width       int               `yaml:"width"`
	Height      int               `yaml:"height"`
	TileSize    int               `yaml:"tile_size"`
	Scale       float64           `yaml:"scale"`
	BoundingBox BoundingBoxConfig `yaml:"bounding_box"`
	MaskFile    string            `yaml:"mask_file"` // Empty means the built-in layout
	Spawn       SpawnConfig       `yaml:"spawn"`
}

type BoundingBoxConfig struct {
	Top    float64 `yaml:"top"`
	Left   float64 `yaml:"left"`
	Bottom float64 `yaml:"bottom"`
	Right  float64 `yaml:"right"`
}

type SpawnConfig struct {
	TileX   int  `yaml:"tile_x"`
	TileY   int  `yaml:"tile_y"`
	XOffset *int `yaml:"x_offset"` // nil centers the mover on the tile
	YOffset *int `yaml:"y_offset"`
}

type MovementConfig struct {
	Speed          float64 `yaml:"speed"` // World units per second
	ParallelMovers int     `yaml:"parallel_movers"`
}

// AnimationConfig holds the sprite-sheet index sequences per facing. They are
// opaque to the movement core and only forwarded to the animator.
type AnimationConfig struct {
	FrameSeconds float64 `yaml:"frame_seconds"`
	Up           []int   `yaml:"up"`
	Left         []int   `yaml:"left"`
	Down         []int   `yaml:"down"`
	Right        []int   `yaml:"right"`
}

type DebugConfig struct {
	LogMovement bool `yaml:"log_movement"`
	DrawGrid    bool `yaml:"draw_grid"`
}

var ErrInvalidConfig = errors.New("invalid config")

// DefaultConfig returns the reference arcade layout: a 28x36 maze of 8 unit
// tiles drawn at 3x, centered on the origin.
func DefaultConfig() *Config {
	zero := 0
	return &Config{
		Display: DisplayConfig{
			WindowTitle: "pacmaze",
			Resizable:   true,
			TPS:         60,
		},
		Maze: MazeConfig{
			Width:    28,
			Height:   36,
			TileSize: 8,
			Scale:    3.0,
			BoundingBox: BoundingBoxConfig{
				Top:    144,
				Left:   -112,
				Bottom: -144,
				Right:  112,
			},
			Spawn: SpawnConfig{TileX: 14, TileY: 9, XOffset: &zero},
		},
		Movement: MovementConfig{
			Speed: 240,
		},
		Animation: AnimationConfig{
			FrameSeconds: 0.04,
			Up:           []int{28, 29, 2},
			Left:         []int{14, 15, 2},
			Down:         []int{42, 43, 2},
			Right:        []int{0, 1, 2},
		},
	}
}

// LoadConfig reads a YAML file on top of DefaultConfig.
func LoadConfig(filename string) (*Config, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	return ParseConfig(data)
}

// ParseConfig decodes YAML bytes on top of DefaultConfig and validates the result.
func ParseConfig(data []byte) (*Config, error) {
	config := DefaultConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

func MustLoadConfig(filename string) *Config {
	config, err := LoadConfig(filename)
	if err != nil {
		panic("Failed to load config: " + err.Error())
	}
	return config
}

// Validate checks the values the movement core relies on.
func (c *Config) Validate() error {
	m := c.Maze
	switch {
	case m.Width < 3 || m.Height < 1:
		return fmt.Errorf("%w: maze must be at least 3x1, got %dx%d", ErrInvalidConfig, m.Width, m.Height)
	case m.TileSize <= 0:
		return fmt.Errorf("%w: tile_size must be positive, got %d", ErrInvalidConfig, m.TileSize)
	case m.Scale <= 0:
		return fmt.Errorf("%w: scale must be positive, got %v", ErrInvalidConfig, m.Scale)
	case c.Movement.Speed < 0:
		return fmt.Errorf("%w: speed must not be negative, got %v", ErrInvalidConfig, c.Movement.Speed)
	}
	if m.Spawn.TileX < 0 || m.Spawn.TileX >= m.Width || m.Spawn.TileY < 0 || m.Spawn.TileY >= m.Height {
		return fmt.Errorf("%w: spawn tile (%d, %d) outside maze", ErrInvalidConfig, m.Spawn.TileX, m.Spawn.TileY)
	}
	// An offset outside the tile would place the mover on a neighbour.
	for _, off := range []*int{m.Spawn.XOffset, m.Spawn.YOffset} {
		if off != nil && (*off < 0 || *off >= m.TileSize) {
			return fmt.Errorf("%w: spawn offset %d outside [0, %d)", ErrInvalidConfig, *off, m.TileSize)
		}
	}
	box := m.BoundingBox
	if w, h := float64(m.Width*m.TileSize), float64(m.Height*m.TileSize); box.Right-box.Left != w || box.Top-box.Bottom != h {
		return fmt.Errorf("%w: bounding box %vx%v does not cover %dx%d tiles of %d",
			ErrInvalidConfig, box.Right-box.Left, box.Top-box.Bottom, m.Width, m.Height, m.TileSize)
	}
	return nil
}

// Helper functions for easy access to commonly used values
func (c *Config) GetTileSize() int {
	return c.Maze.TileSize
}

func (c *Config) GetScale() float64 {
	return c.Maze.Scale
}

func (c *Config) GetMoveSpeed() float64 {
	return c.Movement.Speed
}

// GetScreenWidth returns the scaled pixel width of the bounding box.
func (c *Config) GetScreenWidth() int {
	return int((c.Maze.BoundingBox.Right - c.Maze.BoundingBox.Left) * c.Maze.Scale)
}

// GetScreenHeight returns the scaled pixel height of the bounding box.
func (c *Config) GetScreenHeight() int {
	return int((c.Maze.BoundingBox.Top - c.Maze.BoundingBox.Bottom) * c.Maze.Scale)
}

// GetFrameSeconds returns the animation frame interval, falling back to the reference 0.04s.
func (c *Config) GetFrameSeconds() float64 {
	if c.Animation.FrameSeconds <= 0 {
		return 0.04
	}
	return c.Animation.FrameSeconds
}
