package game

import (
	log "github.com/sirupsen/logrus"

	"github.com/samdwyer/lavamaze/internal/world"
)

// Portal destination bounds accepted on arrival. These are wider than the
// grid on the high side; destinations must also lie inside the grid.
const (
	portalMinCol = 1
	portalMaxCol = world.Width
	portalMinRow = world.FirstRow
	portalMaxRow = world.Height
)

// Move applies one step of (dx, dy) and reports what happened.
func (s *Session) Move(dx, dy int) Event {
	if s.State.IsTerminal() {
		return EventNone
	}
	s.Notice = NoticeNone

	from := s.Player.Pos
	to := from.Add(dx, dy)
	if !world.InBounds(to) {
		return EventBlocked
	}

	// The player steps first; the terrain then decides what sticks.
	s.Player.Move(dx, dy)

	switch terrain := s.Level.At(to); {
	case terrain == world.Wall:
		s.Player.MoveTo(from)
		return EventBlocked

	case terrain.IsHazard():
		s.Moves++
		return s.fall(terrain, to)

	case terrain == world.Portal:
		s.Moves++
		if s.teleport(to) {
			return EventTeleported
		}

	case terrain == world.Key:
		s.Moves++
		s.State = StateWon
		s.Notice = NoticeWon
		log.WithFields(log.Fields{"session": s.ID, "moves": s.Moves, "lives": s.Lives}).Info("key reached")
		return EventWon

	default:
		s.Moves++
	}

	s.visited.Put(to)
	return EventMoved
}

// fall spends a life for stepping on a hazard.
func (s *Session) fall(terrain world.Terrain, at world.Point) Event {
	s.Lives--
	fields := log.Fields{"session": s.ID, "terrain": terrain.String(), "x": at.X, "y": at.Y, "lives": s.Lives}

	if s.Lives <= 0 {
		s.Lives = 0
		s.State = StateLost
		s.Notice = NoticeLost
		log.WithFields(fields).Info("last life lost")
		return EventLost
	}

	s.Player.MoveTo(StartPos)
	s.Notice = NoticeFell
	log.WithFields(fields).Debug("player fell")
	return EventFell
}

// teleport relocates the player standing on the portal at p, if the portal
// has a usable destination.
func (s *Session) teleport(p world.Point) bool {
	for _, portal := range s.Level.Portals {
		if portal.Source != p || !validPortalDest(portal.Dest) || portal.Dest == s.Player.Pos {
			continue
		}
		s.Player.MoveTo(portal.Dest)
		s.visited.Put(portal.Dest)
		s.Notice = NoticeTeleported
		log.WithFields(log.Fields{
			"session": s.ID,
			"from_x":  p.X,
			"from_y":  p.Y,
			"to_x":    portal.Dest.X,
			"to_y":    portal.Dest.Y,
		}).Debug("player teleported")
		return true
	}
	return false
}

func validPortalDest(d world.Point) bool {
	return d.X >= portalMinCol && d.X <= portalMaxCol &&
		d.Y >= portalMinRow && d.Y <= portalMaxRow &&
		world.InBounds(d)
}
