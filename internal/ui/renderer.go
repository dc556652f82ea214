package ui

import (
	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/lavamaze/internal/gamedata"
	"github.com/samdwyer/lavamaze/internal/world"
)

// Screen layout. Map row world.TopBorderRow is drawn at screen row mapTop;
// the rows above it are never shown.
const (
	titleRow   = 0
	noticeRow  = 1
	mapTop     = 2
	mapRows    = world.Height - world.TopBorderRow
	livesRow   = mapTop + mapRows
	legendGap  = 2
	legendCols = 40
	// legendLines covers the heading, player and seven terrains, a blank
	// line, the controls heading and three controls.
	legendLines = 14
)

// Canvas is the drawing surface the renderer writes to.
type Canvas interface {
	Clear()
	SetContent(x, y int, r rune, style tcell.Style)
	Show()
	Size() (width, height int)
}

// Tone colors a notice.
type Tone int

const (
	ToneInfo Tone = iota
	ToneGood
	ToneBad
)

// View is the state the renderer draws.
type View struct {
	Level      *world.Level
	Player     world.Point
	Lives      int
	NoticeKey  string // translation key; empty for no notice
	NoticeArgs []any
	NoticeTone Tone
}

// Renderer handles drawing the game to the screen.
type Renderer struct {
	canvas  Canvas
	tiles   *gamedata.TileRegistry
	catalog *gamedata.Catalog
}

// NewRenderer creates a new renderer for the given canvas.
func NewRenderer(canvas Canvas, tiles *gamedata.TileRegistry, catalog *gamedata.Catalog) *Renderer {
	return &Renderer{canvas: canvas, tiles: tiles, catalog: catalog}
}

var (
	styleTitle    = tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true)
	styleHeading  = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	styleText     = tcell.StyleDefault.Foreground(tcell.ColorSilver)
	styleLives    = tcell.StyleDefault.Foreground(tcell.ColorAqua)
	styleControl  = tcell.StyleDefault.Foreground(tcell.ColorAqua)
	styleNotice   = tcell.StyleDefault.Foreground(tcell.ColorAqua)
	styleGoodNews = tcell.StyleDefault.Foreground(tcell.ColorLime).Bold(true)
	styleBadNews  = tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
)

// Render redraws the whole screen from v.
func (r *Renderer) Render(v View) {
	r.canvas.Clear()

	r.drawText(0, titleRow, r.catalog.Get("TITLE"), styleTitle)
	if v.NoticeKey != "" {
		r.drawText(0, noticeRow, r.catalog.Getf(v.NoticeKey, v.NoticeArgs...), noticeStyle(v.NoticeTone))
	}

	for y := world.TopBorderRow; y < world.Height; y++ {
		for x := 0; x < world.Width; x++ {
			glyph, style := r.terrainCell(v.Level.Tiles[y][x])
			r.canvas.SetContent(x, screenRow(y), glyph, style)
		}
	}

	// Player on top
	if v.Player.Y >= world.TopBorderRow && world.InBounds(v.Player) {
		player := r.tiles.Player()
		r.canvas.SetContent(v.Player.X, screenRow(v.Player.Y), player.GlyphRune(), player.Style())
	}

	r.drawText(0, livesRow, r.catalog.Getf("LIVES", v.Lives), styleLives)
	r.drawHelp()

	r.canvas.Show()
}

// screenRow converts a map row to a screen row.
func screenRow(y int) int {
	return mapTop + y - world.TopBorderRow
}

func (r *Renderer) terrainCell(t world.Terrain) (rune, tcell.Style) {
	def := r.tiles.GetByID(t.String())
	if def == nil {
		return '?', tcell.StyleDefault
	}
	return def.GlyphRune(), def.Style()
}

// drawHelp draws the legend and controls, to the right of the map when the
// screen is wide enough and below the lives counter otherwise.
func (r *Renderer) drawHelp() {
	x, y := world.Width+legendGap, mapTop
	if width, _ := r.canvas.Size(); width < world.Width+legendGap+legendCols {
		x, y = 0, livesRow+legendGap
	}

	r.drawText(x, y, r.catalog.Get("LEGEND"), styleHeading)
	y++
	player := r.tiles.Player()
	r.drawLegendEntry(x, y, player)
	y++
	for _, def := range r.tiles.All() {
		r.drawLegendEntry(x, y, &def)
		y++
	}

	y++
	r.drawText(x, y, r.catalog.Get("CONTROLS"), styleHeading)
	y++
	controls := []struct{ key, label string }{
		{r.catalog.Get("CONTROL_ARROWS"), "CONTROL_MOVE"},
		{"q", "CONTROL_QUIT"},
		{"r", "CONTROL_REGENERATE"},
	}
	for _, c := range controls {
		next := r.drawText(x, y, c.key, styleControl)
		r.drawText(next, y, " = "+r.catalog.Get(c.label), styleText)
		y++
	}
}

func (r *Renderer) drawLegendEntry(x, y int, def *gamedata.TileDef) {
	r.canvas.SetContent(x, y, def.GlyphRune(), def.Style())
	r.drawText(x+1, y, " = "+r.catalog.Get(def.Legend), styleText)
}

// drawText writes msg starting at (x, y) and returns the column after it.
func (r *Renderer) drawText(x, y int, msg string, style tcell.Style) int {
	for _, ch := range msg {
		r.canvas.SetContent(x, y, ch, style)
		x++
	}
	return x
}

func noticeStyle(t Tone) tcell.Style {
	switch t {
	case ToneGood:
		return styleGoodNews
	case ToneBad:
		return styleBadNews
	default:
		return styleNotice
	}
}
