// Package entity provides the player entity.
package entity

import "github.com/samdwyer/lavamaze/internal/world"

// Player is the cursor the user moves around the maze.
type Player struct {
	Pos world.Point // Current position on the map
}

// NewPlayer creates a player at the given position.
func NewPlayer(pos world.Point) *Player {
	return &Player{Pos: pos}
}

// Move updates the player position by the given delta.
func (p *Player) Move(dx, dy int) {
	p.Pos = p.Pos.Add(dx, dy)
}

// MoveTo places the player at pos.
func (p *Player) MoveTo(pos world.Point) {
	p.Pos = pos
}
