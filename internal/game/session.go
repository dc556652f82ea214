package game

import (
	"context"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"github.com/zyedidia/generic/mapset"
	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/lavamaze/internal/entity"
	"github.com/samdwyer/lavamaze/internal/telemetry"
	"github.com/samdwyer/lavamaze/internal/world"
)

// StartingLives is the life count of a fresh session.
const StartingLives = 3

// StartPos is where the player starts and respawns after a fall.
var StartPos = world.Point{X: 1, Y: world.FirstRow}

// Session is one playthrough: a level, the player on it and the lives left.
// It is owned by the game loop and never shared.
type Session struct {
	ID     string
	Level  *world.Level
	Player *entity.Player
	Lives  int
	State  State
	Notice Notice
	Moves  int

	generator *world.Generator
	visited   mapset.Set[world.Point]
}

// NewSession generates a level and starts playing on it.
func NewSession(ctx context.Context, generator *world.Generator) *Session {
	s := &Session{generator: generator}
	s.start(generator.Generate(ctx))
	return s
}

// Regenerate discards the current level and state and starts over on a
// freshly generated level. It works from any state, terminal ones included.
func (s *Session) Regenerate(ctx context.Context) {
	tracer := telemetry.Tracer("game")
	ctx, span := tracer.Start(ctx, "session.regenerate")
	defer span.End()

	previous := s.ID
	s.start(s.generator.Generate(ctx))
	s.Notice = NoticeRegenerated

	span.SetAttributes(
		attribute.String("session.previous", previous),
		attribute.String("session.id", s.ID),
	)
	log.WithFields(log.Fields{
		"session":  s.ID,
		"previous": previous,
		"portals":  len(s.Level.Portals),
	}).Info("map regenerated")
}

// start resets every piece of session state onto level.
func (s *Session) start(level *world.Level) {
	s.ID = uuid.NewString()
	s.Level = level
	s.Player = entity.NewPlayer(StartPos)
	s.Lives = StartingLives
	s.State = StatePlaying
	s.Notice = NoticeNone
	s.Moves = 0
	s.visited = mapset.New[world.Point]()
	s.visited.Put(StartPos)
}

// Visited returns the number of distinct cells the player has stood on.
func (s *Session) Visited() int {
	return s.visited.Size()
}

// NoticeArgs returns the format arguments of the current notice.
func (s *Session) NoticeArgs() []any {
	if s.Notice == NoticeFell {
		return []any{s.Lives}
	}
	return nil
}
