package coords

import (
	"testing"

	"pacmaze/internal/config"
	"pacmaze/internal/geom"

	"golang.org/x/image/math/f64"
)

func referenceLayout() Layout {
	return NewLayout(config.DefaultConfig())
}

func TestRoundTrip_AllTilesAndOffsets(t *testing.T) {
	l := referenceLayout()
	for x := 0; x < l.Width; x++ {
		for y := 0; y < l.Height; y++ {
			for ox := 0; ox < l.TileSize; ox++ {
				for oy := 0; oy < l.TileSize; oy++ {
					p := l.TileToPosition(x, y, Offset(ox), Offset(oy))
					got := l.PositionToTile(p)
					want := TileInfo{X: x, Y: y, XOffset: ox, YOffset: oy}
					if got != want {
						t.Fatalf("round trip of %v via %v gave %v", want, p, got)
					}
				}
			}
		}
	}
}

func TestTileToPosition_ReferenceValues(t *testing.T) {
	l := referenceLayout()

	// Bottom-left corner of the playfield
	if p := l.TileToPosition(0, 0, Offset(0), Offset(0)); p != (f64.Vec2{-336, -432}) {
		t.Errorf("expected (-336, -432), got %v", p)
	}
	// Omitted offsets mean the tile center
	if p := l.TileCenter(0, 0); p != (f64.Vec2{-324, -420}) {
		t.Errorf("expected (-324, -420), got %v", p)
	}
	// Spawn: tile (14, 9) with x offset 0, centered vertically
	if p := l.TileToPosition(14, 9, Offset(0), nil); p != (f64.Vec2{0, -204}) {
		t.Errorf("expected (0, -204), got %v", p)
	}
	info := l.PositionToTile(l.TileCenter(5, 7))
	if info != (TileInfo{X: 5, Y: 7, XOffset: 4, YOffset: 4}) {
		t.Errorf("unexpected center decomposition %v", info)
	}
}

func TestPositionToTile_Truncates(t *testing.T) {
	l := referenceLayout()
	base := l.TileToPosition(3, 3, Offset(2), Offset(6))

	// Just under the next unit still belongs to the same offset
	p := f64.Vec2{base[0] + 0.99*l.Scale, base[1] + 0.99*l.Scale}
	if got := l.PositionToTile(p); got != (TileInfo{X: 3, Y: 3, XOffset: 2, YOffset: 6}) {
		t.Errorf("expected truncation, got %v", got)
	}

	// Left of and below the playfield saturates at zero
	if got := l.PositionToTile(f64.Vec2{-10000, -10000}); got != (TileInfo{}) {
		t.Errorf("expected zero tile info, got %v", got)
	}

	// Past the right edge yields out-of-grid indices
	if got := l.PositionToTile(l.TileCenter(l.Width+1, 0)); got.X != l.Width+1 {
		t.Errorf("expected x %d, got %v", l.Width+1, got)
	}
}

func TestEdgeAndTeleportDistance(t *testing.T) {
	l := referenceLayout()
	tests := []struct {
		x    int
		want geom.Direction
		ok   bool
	}{
		{0, geom.Left, true},
		{27, geom.Right, true},
		{1, geom.None, false},
		{26, geom.None, false},
	}
	for _, tt := range tests {
		d, ok := l.Edge(TileInfo{X: tt.x, Y: 18})
		if d != tt.want || ok != tt.ok {
			t.Errorf("Edge(x=%d) = %s, %v; want %s, %v", tt.x, d, ok, tt.want, tt.ok)
		}
	}
	if got := l.TeleportDistance(); got != 26*8*3 {
		t.Errorf("expected teleport distance 624, got %v", got)
	}
}
