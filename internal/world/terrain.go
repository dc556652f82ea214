// Package world provides the maze terrain model and map generation.
package world

// Terrain represents the kind of a single map cell.
type Terrain int

const (
	// Wall blocks movement.
	Wall Terrain = iota
	// Floor is plain walkable ground.
	Floor
	// Water costs a life and sends the player back to the start.
	Water
	// Grass is walkable and purely decorative.
	Grass
	// Lava costs a life and sends the player back to the start.
	Lava
	// Portal teleports the player if it has a registered destination.
	Portal
	// Key wins the game when reached.
	Key
)

// Terrains lists every terrain kind in legend order.
var Terrains = []Terrain{Wall, Floor, Water, Grass, Lava, Portal, Key}

// String returns the terrain identifier used by the tile catalog.
func (t Terrain) String() string {
	switch t {
	case Wall:
		return "wall"
	case Floor:
		return "floor"
	case Water:
		return "water"
	case Grass:
		return "grass"
	case Lava:
		return "lava"
	case Portal:
		return "portal"
	case Key:
		return "key"
	default:
		return "unknown"
	}
}

// IsPassable returns true if the player can stand on the terrain.
func (t Terrain) IsPassable() bool {
	return t != Wall
}

// IsHazard returns true for terrain that costs a life.
func (t Terrain) IsHazard() bool {
	return t == Water || t == Lava
}
