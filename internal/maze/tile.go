package maze

// Kind classifies a maze cell.
type Kind int

const (
	Invalid Kind = iota // Wall or void - never entered
	Path                // Walkable corridor
)

func (k Kind) String() string {
	if k == Path {
		return "path"
	}
	return "invalid"
}

// Occupant is a transient thing sitting on a path tile. Occupants never affect
// walkability.
type Occupant int

const (
	Ghost Occupant = iota
	Bonus
)

// Tile is one cell of the maze. Only path tiles carry occupants.
type Tile struct {
	Kind      Kind
	occupants []Occupant
}

// IsValidPath reports whether a mover may enter the tile.
func (t *Tile) IsValidPath() bool {
	return t != nil && t.Kind == Path
}

// AddOccupant places an occupant on a path tile. It reports false for walls.
func (t *Tile) AddOccupant(o Occupant) bool {
	if !t.IsValidPath() {
		return false
	}
	t.occupants = append(t.occupants, o)
	return true
}

// RemoveOccupant removes one instance of o. Order of the remaining occupants is
// not preserved.
func (t *Tile) RemoveOccupant(o Occupant) bool {
	for i, cur := range t.occupants {
		if cur == o {
			last := len(t.occupants) - 1
			t.occupants[i] = t.occupants[last]
			t.occupants = t.occupants[:last]
			return true
		}
	}
	return false
}

// Count returns how many instances of o sit on the tile.
func (t *Tile) Count(o Occupant) int {
	n := 0
	for _, cur := range t.occupants {
		if cur == o {
			n++
		}
	}
	return n
}

// Occupants returns a copy of the tile's occupants.
func (t *Tile) Occupants() []Occupant {
	out := make([]Occupant, len(t.occupants))
	copy(out, t.occupants)
	return out
}
