package maze

// defaultLayout is the reference arcade maze, one string per row, top row
// first. '.' is walkable, 'W' is wall. Row 17 (from the top) is the tunnel row
// and is open on both edges.
var defaultLayout = [...]string{
	"WWWWWWWWWWWWWWWWWWWWWWWWWWWW",
	"WWWWWWWWWWWWWWWWWWWWWWWWWWWW",
	"WWWWWWWWWWWWWWWWWWWWWWWWWWWW",
	"WWWWWWWWWWWWWWWWWWWWWWWWWWWW",
	"W............WW............W",
	"W.WWWW.WWWWW.WW.WWWWW.WWWW.W",
	"W.WWWW.WWWWW.WW.WWWWW.WWWW.W",
	"W.WWWW.WWWWW.WW.WWWWW.WWWW.W",
	"W..........................W",
	"W.WWWW.WW.WWWWWWWW.WW.WWWW.W",
	"W.WWWW.WW.WWWWWWWW.WW.WWWW.W",
	"W......WW....WW....WW......W",
	"WWWWWW.WWWWW.WW.WWWWW.WWWWWW",
	"WWWWWW.WWWWW.WW.WWWWW.WWWWWW",
	"WWWWWW.WW..........WW.WWWWWW",
	"WWWWWW.WW.WWWWWWWW.WW.WWWWWW",
	"WWWWWW.WW.WWWWWWWW.WW.WWWWWW",
	"..........WWWWWWWW..........",
	"WWWWWW.WW.WWWWWWWW.WW.WWWWWW",
	"WWWWWW.WW.WWWWWWWW.WW.WWWWWW",
	"WWWWWW.WW..........WW.WWWWWW",
	"WWWWWW.WW.WWWWWWWW.WW.WWWWWW",
	"WWWWWW.WW.WWWWWWWW.WW.WWWWWW",
	"W............WW............W",
	"W.WWWW.WWWWW.WW.WWWWW.WWWW.W",
	"W.WWWW.WWWWW.WW.WWWWW.WWWW.W",
	"W...WW................WW...W",
	"WWW.WW.WW.WWWWWWWW.WW.WW.WWW",
	"WWW.WW.WW.WWWWWWWW.WW.WW.WWW",
	"W......WW....WW....WW......W",
	"W.WWWWWWWWWW.WW.WWWWWWWWWW.W",
	"W.WWWWWWWWWW.WW.WWWWWWWWWW.W",
	"W..........................W",
	"WWWWWWWWWWWWWWWWWWWWWWWWWWWW",
	"WWWWWWWWWWWWWWWWWWWWWWWWWWWW",
	"WWWWWWWWWWWWWWWWWWWWWWWWWWWW",
}

const (
	DefaultWidth  = 28
	DefaultHeight = 36
)

// DefaultMask returns the reference layout as a row-major, top-to-bottom mask.
func DefaultMask() []bool {
	mask := make([]bool, 0, DefaultWidth*DefaultHeight)
	for _, row := range defaultLayout {
		for _, c := range row {
			mask = append(mask, c == '.')
		}
	}
	return mask
}

// DefaultGrid builds the reference maze.
func DefaultGrid() *Grid {
	g, err := NewGrid(DefaultMask(), DefaultWidth, DefaultHeight)
	if err != nil {
		panic("default maze layout is malformed: " + err.Error())
	}
	return g
}
