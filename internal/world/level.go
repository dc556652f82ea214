package world

const (
	// Width and Height are the fixed map dimensions.
	Width  = 80
	Height = 32

	// TopBorderRow is the visible top wall. Rows above it are the hidden
	// header band and are solid wall.
	TopBorderRow = 11
	// BottomBorderRow is the bottom wall.
	BottomBorderRow = Height - 1

	// FirstRow and LastRow bound the playable interior rows (inclusive).
	FirstRow = TopBorderRow + 1
	LastRow  = BottomBorderRow - 1
	// FirstCol and LastCol bound the playable interior columns (inclusive).
	FirstCol = 1
	LastCol  = Width - 2
)

// Point is a map coordinate: X is the column, Y is the row.
type Point struct {
	X, Y int
}

// Add returns p shifted by the given delta.
func (p Point) Add(dx, dy int) Point {
	return Point{X: p.X + dx, Y: p.Y + dy}
}

// PortalLink links a portal tile to its destination.
type PortalLink struct {
	Source Point
	Dest   Point
}

// Portals is the ordered portal registry of a level.
type Portals []PortalLink

// Lookup returns the first registered portal whose source is p.
func (ps Portals) Lookup(p Point) (PortalLink, bool) {
	for _, portal := range ps {
		if portal.Source == p {
			return portal, true
		}
	}
	return PortalLink{}, false
}

// Level is a generated map together with its portal registry.
type Level struct {
	Tiles   [][]Terrain // indexed [y][x]
	Portals Portals
	Key     Point
}

// NewLevel creates a level filled with walls.
func NewLevel() *Level {
	tiles := make([][]Terrain, Height)
	for y := range tiles {
		tiles[y] = make([]Terrain, Width)
		for x := range tiles[y] {
			tiles[y][x] = Wall
		}
	}
	return &Level{Tiles: tiles}
}

// InBounds returns true if p lies inside the grid.
func InBounds(p Point) bool {
	return p.X >= 0 && p.X < Width && p.Y >= 0 && p.Y < Height
}

// IsBorder returns true if p is a cell that is always wall.
func IsBorder(p Point) bool {
	return p.Y <= TopBorderRow || p.Y == BottomBorderRow || p.X == 0 || p.X == Width-1
}

// At returns the terrain at p. Out-of-bounds cells read as wall.
func (l *Level) At(p Point) Terrain {
	if !InBounds(p) {
		return Wall
	}
	return l.Tiles[p.Y][p.X]
}

// Set overwrites the terrain at p. Out-of-bounds writes are ignored.
func (l *Level) Set(p Point, t Terrain) {
	if InBounds(p) {
		l.Tiles[p.Y][p.X] = t
	}
}

// Count returns the number of cells holding the given terrain.
func (l *Level) Count(t Terrain) int {
	n := 0
	for y := range l.Tiles {
		for x := range l.Tiles[y] {
			if l.Tiles[y][x] == t {
				n++
			}
		}
	}
	return n
}
