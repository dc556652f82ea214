package world

import (
	"context"
	"math/rand"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/lavamaze/internal/telemetry"
)

// Terrain probability thresholds. An interior cell draws u in [0,1) and
// takes the first terrain whose threshold exceeds u.
const (
	floorThreshold  = 0.70
	grassThreshold  = 0.80
	waterThreshold  = 0.85
	lavaThreshold   = 0.87
	portalThreshold = 0.90
)

// Generator builds random levels from a single random source.
type Generator struct {
	rng *rand.Rand
}

// NewGenerator creates a generator. A nil rng is seeded from the clock.
func NewGenerator(rng *rand.Rand) *Generator {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Generator{rng: rng}
}

// Generate creates a new level: walled borders, a randomly sampled
// interior, registered portals and exactly one key.
func (g *Generator) Generate(ctx context.Context) *Level {
	tracer := telemetry.Tracer("world")
	_, span := tracer.Start(ctx, "map.generate")
	defer span.End()

	startTime := time.Now()
	level := NewLevel()
	deadPortals := 0

	for y := 0; y < Height; y++ {
		for x := 0; x < Width; x++ {
			p := Point{X: x, Y: y}
			if IsBorder(p) {
				continue
			}

			t := g.sample()
			if t == Portal {
				dest := Point{
					X: FirstCol + g.rng.Intn(LastCol-FirstCol+1),
					Y: FirstRow + g.rng.Intn(BottomBorderRow-FirstRow+1),
				}
				// A portal pointing at itself stays on the map but never teleports.
				if dest != p {
					level.Portals = append(level.Portals, PortalLink{Source: p, Dest: dest})
				} else {
					deadPortals++
				}
			}
			level.Tiles[y][x] = t
		}
	}

	// The key may land on anything, portals and hazards included.
	level.Key = Point{
		X: FirstCol + g.rng.Intn(LastCol-FirstCol+1),
		Y: FirstRow + g.rng.Intn(LastRow-FirstRow+1),
	}
	level.Set(level.Key, Key)

	span.SetAttributes(
		attribute.Int("map.width", Width),
		attribute.Int("map.height", Height),
		attribute.Int("map.portals", len(level.Portals)),
		attribute.Int("map.dead_portals", deadPortals),
		attribute.Int("map.key_x", level.Key.X),
		attribute.Int("map.key_y", level.Key.Y),
		attribute.Int64("map.generation_us", time.Since(startTime).Microseconds()),
	)

	return level
}

// sample draws the terrain of one interior cell.
func (g *Generator) sample() Terrain {
	return terrainFor(g.rng.Float64())
}

// terrainFor maps a uniform draw in [0,1) to a terrain kind.
func terrainFor(u float64) Terrain {
	switch {
	case u < floorThreshold:
		return Floor
	case u < grassThreshold:
		return Grass
	case u < waterThreshold:
		return Water
	case u < lavaThreshold:
		return Lava
	case u < portalThreshold:
		return Portal
	default:
		return Wall
	}
}
