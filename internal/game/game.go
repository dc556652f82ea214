package game

import (
	"context"
	"errors"
	"math/rand"

	"github.com/gdamore/tcell/v2"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/lavamaze/internal/gamedata"
	"github.com/samdwyer/lavamaze/internal/telemetry"
	"github.com/samdwyer/lavamaze/internal/ui"
	"github.com/samdwyer/lavamaze/internal/world"
)

// ErrInputClosed is returned when the terminal stops delivering events.
var ErrInputClosed = errors.New("terminal input closed")

// Screen is the terminal the game draws on and reads keys from.
type Screen interface {
	ui.Canvas
	PollEvent() tcell.Event
	Sync()
}

// Game holds the entire game state.
type Game struct {
	screen    Screen
	renderer  *ui.Renderer
	generator *world.Generator
	session   *Session
	running   bool
}

// New creates a new game drawing on screen. A nil rng is seeded from the clock.
func New(screen Screen, tiles *gamedata.TileRegistry, catalog *gamedata.Catalog, rng *rand.Rand) *Game {
	return &Game{
		screen:    screen,
		renderer:  ui.NewRenderer(screen, tiles, catalog),
		generator: world.NewGenerator(rng),
		running:   true,
	}
}

// Session returns the current session, or nil before Run.
func (g *Game) Session() *Session {
	return g.session
}

// Run executes the main game loop until the player quits or the session is
// won or lost, and returns the final session state.
func (g *Game) Run(ctx context.Context) (State, error) {
	tracer := telemetry.Tracer("game")

	initCtx, initSpan := tracer.Start(ctx, "game.init")
	g.session = NewSession(initCtx, g.generator)
	initSpan.SetAttributes(
		attribute.String("session.id", g.session.ID),
		attribute.Int("map.portals", len(g.session.Level.Portals)),
		attribute.Int("player.start_x", StartPos.X),
		attribute.Int("player.start_y", StartPos.Y),
	)
	initSpan.End()
	log.WithFields(log.Fields{
		"session": g.session.ID,
		"portals": len(g.session.Level.Portals),
	}).Info("session started")

	return g.loop(ctx)
}

// loop renders and dispatches events on the current session.
func (g *Game) loop(ctx context.Context) (State, error) {
	for g.running {
		g.render()

		// Blocks until the next key or resize
		ev := g.screen.PollEvent()
		if ev == nil {
			return g.session.State, ErrInputClosed
		}
		g.handleEvent(ctx, ev)

		if g.session.State.IsTerminal() {
			g.render()
			g.running = false
		}
	}

	g.endSession(ctx)
	return g.session.State, nil
}

// render draws the current session.
func (g *Game) render() {
	s := g.session
	g.renderer.Render(ui.View{
		Level:      s.Level,
		Player:     s.Player.Pos,
		Lives:      s.Lives,
		NoticeKey:  s.Notice.Key(),
		NoticeArgs: s.NoticeArgs(),
		NoticeTone: noticeTone(s.Notice),
	})
}

// handleEvent processes a single input event.
func (g *Game) handleEvent(ctx context.Context, ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		g.handleKeyEvent(ctx, ev)
	case *tcell.EventResize:
		g.screen.Sync()
	case *tcell.EventInterrupt:
		log.Info("interrupted")
		g.running = false
	}
}

// handleKeyEvent processes keyboard input. Unknown keys are ignored.
func (g *Game) handleKeyEvent(ctx context.Context, ev *tcell.EventKey) {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		g.running = false

	case tcell.KeyUp:
		g.tryMove(ctx, 0, -1)
	case tcell.KeyDown:
		g.tryMove(ctx, 0, 1)
	case tcell.KeyLeft:
		g.tryMove(ctx, -1, 0)
	case tcell.KeyRight:
		g.tryMove(ctx, 1, 0)

	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q', 'Q':
			g.running = false
		case 'r', 'R':
			g.session.Regenerate(ctx)
		}
	}
}

// tryMove moves the player by the given delta and traces the outcome.
func (g *Game) tryMove(ctx context.Context, dx, dy int) {
	tracer := telemetry.Tracer("game")
	_, span := tracer.Start(ctx, "player.move")
	defer span.End()

	event := g.session.Move(dx, dy)
	span.SetAttributes(
		attribute.String("session.id", g.session.ID),
		attribute.String("move.event", event.String()),
		attribute.Int("player.x", g.session.Player.Pos.X),
		attribute.Int("player.y", g.session.Player.Pos.Y),
		attribute.Int("player.lives", g.session.Lives),
	)
}

// endSession records how the session ended.
func (g *Game) endSession(ctx context.Context) {
	s := g.session
	outcome := s.State.String()
	if !s.State.IsTerminal() {
		outcome = "quit"
	}

	tracer := telemetry.Tracer("game")
	_, span := tracer.Start(ctx, "session.end")
	span.SetAttributes(
		attribute.String("session.id", s.ID),
		attribute.String("outcome", outcome),
		attribute.Int("moves", s.Moves),
		attribute.Int("lives_remaining", s.Lives),
		attribute.Int("cells_visited", s.Visited()),
	)
	span.End()

	log.WithFields(log.Fields{
		"session": s.ID,
		"outcome": outcome,
		"moves":   s.Moves,
		"lives":   s.Lives,
		"visited": s.Visited(),
	}).Info("session ended")
}

func noticeTone(n Notice) ui.Tone {
	switch n {
	case NoticeWon, NoticeRegenerated:
		return ui.ToneGood
	case NoticeFell, NoticeLost:
		return ui.ToneBad
	default:
		return ui.ToneInfo
	}
}
