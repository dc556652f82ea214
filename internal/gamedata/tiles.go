package gamedata

import (
	"errors"
	"fmt"

	"github.com/gdamore/tcell/v2"
)

// TileDef defines how one terrain kind (or the player) is drawn.
type TileDef struct {
	ID     string `json:"id"`     // Terrain identifier (e.g., "lava")
	Glyph  string `json:"glyph"`  // Single character for rendering (e.g., "^")
	Color  string `json:"color"`  // Hex color code (e.g., "#FF3300")
	Bold   bool   `json:"bold"`   // Render in bold
	Legend string `json:"legend"` // Translation key of the legend entry
}

// GlyphRune returns the glyph as a rune for rendering.
func (d *TileDef) GlyphRune() rune {
	if len(d.Glyph) == 0 {
		return '?'
	}
	return []rune(d.Glyph)[0]
}

// Style returns the tcell style for the tile.
func (d *TileDef) Style() tcell.Style {
	color, err := ParseHexColor(d.Color)
	if err != nil {
		color = tcell.ColorWhite
	}
	return tcell.StyleDefault.Foreground(color).Bold(d.Bold)
}

// TilesFile represents the structure of tiles.json.
type TilesFile struct {
	Tiles  []TileDef `json:"tiles"`
	Player TileDef   `json:"player"`
}

// TileRegistry holds loaded tile definitions keyed by terrain identifier.
type TileRegistry struct {
	tiles  map[string]*TileDef
	order  []TileDef
	player TileDef
}

// NewTileRegistry creates a registry from loaded tile definitions.
func NewTileRegistry(file TilesFile) *TileRegistry {
	registry := &TileRegistry{
		tiles:  make(map[string]*TileDef, len(file.Tiles)),
		order:  file.Tiles,
		player: file.Player,
	}
	for i := range registry.order {
		registry.tiles[registry.order[i].ID] = &registry.order[i]
	}
	return registry
}

// LoadTileRegistry loads and creates a registry from the embedded tiles.json.
func LoadTileRegistry() (*TileRegistry, error) {
	file, err := Load[TilesFile]("tiles.json")
	if err != nil {
		return nil, err
	}
	if len(file.Tiles) == 0 {
		return nil, errors.New("no tiles loaded from tiles.json")
	}
	for _, def := range file.Tiles {
		if _, err := ParseHexColor(def.Color); err != nil {
			return nil, fmt.Errorf("tile %s: %w", def.ID, err)
		}
	}
	return NewTileRegistry(file), nil
}

// MustLoadTileRegistry loads a registry, panicking on error.
func MustLoadTileRegistry() *TileRegistry {
	registry, err := LoadTileRegistry()
	if err != nil {
		panic(err)
	}
	return registry
}

// GetByID returns the tile definition with the given ID, or nil if not found.
func (r *TileRegistry) GetByID(id string) *TileDef {
	return r.tiles[id]
}

// Player returns the definition of the player glyph.
func (r *TileRegistry) Player() *TileDef {
	return &r.player
}

// All returns all terrain tile definitions in file order.
func (r *TileRegistry) All() []TileDef {
	return r.order
}

// Count returns the number of terrain tiles in the registry.
func (r *TileRegistry) Count() int {
	return len(r.order)
}
