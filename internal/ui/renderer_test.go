package ui

import (
	"bytes"
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/lavamaze/internal/gamedata"
	"github.com/samdwyer/lavamaze/internal/world"
)

type cell struct {
	r     rune
	style tcell.Style
}

// bufferCanvas is an in-memory Canvas.
type bufferCanvas struct {
	width, height int
	cells         map[[2]int]cell
	shows         int
}

func newBufferCanvas(width, height int) *bufferCanvas {
	return &bufferCanvas{width: width, height: height, cells: make(map[[2]int]cell)}
}

func (b *bufferCanvas) Clear() { b.cells = make(map[[2]int]cell) }
func (b *bufferCanvas) Show()  { b.shows++ }

func (b *bufferCanvas) Size() (width, height int) { return b.width, b.height }

func (b *bufferCanvas) SetContent(x, y int, r rune, style tcell.Style) {
	b.cells[[2]int{x, y}] = cell{r: r, style: style}
}

func (b *bufferCanvas) runeAt(x, y int) rune {
	return b.cells[[2]int{x, y}].r
}

// row returns the text of screen row y, trimmed on the right.
func (b *bufferCanvas) row(y int) string {
	var sb strings.Builder
	for x := 0; x < b.width; x++ {
		r := b.runeAt(x, y)
		if r == 0 {
			r = ' '
		}
		sb.WriteRune(r)
	}
	return strings.TrimRight(sb.String(), " ")
}

func newTestRenderer(t *testing.T, canvas Canvas, lang string) *Renderer {
	t.Helper()
	catalog, err := gamedata.LoadCatalog(lang)
	if err != nil {
		t.Fatalf("LoadCatalog(%q) error = %v", lang, err)
	}
	return NewRenderer(canvas, gamedata.MustLoadTileRegistry(), catalog)
}

func testLevel() *world.Level {
	level := world.NewLevel()
	for y := world.FirstRow; y <= world.LastRow; y++ {
		for x := world.FirstCol; x <= world.LastCol; x++ {
			level.Set(world.Point{X: x, Y: y}, world.Floor)
		}
	}
	level.Set(world.Point{X: 3, Y: 12}, world.Water)
	level.Set(world.Point{X: 4, Y: 12}, world.Grass)
	level.Set(world.Point{X: 5, Y: 12}, world.Lava)
	level.Set(world.Point{X: 6, Y: 12}, world.Portal)
	level.Set(world.Point{X: 7, Y: 12}, world.Key)
	return level
}

func TestRenderMapAndPlayer(t *testing.T) {
	canvas := newBufferCanvas(130, 40)
	r := newTestRenderer(t, canvas, "en")

	r.Render(View{Level: testLevel(), Player: world.Point{X: 1, Y: 12}, Lives: 3})

	if got := canvas.row(screenRow(world.TopBorderRow)); got != strings.Repeat("#", world.Width)+strings.Repeat(" ", legendGap)+"Legend:" {
		t.Errorf("top border row = %q", got)
	}
	if got := canvas.row(screenRow(12))[:world.Width]; got != "#@.~,^=?"+strings.Repeat(".", world.Width-9)+"#" {
		t.Errorf("first playable row = %q", got)
	}
	if got := canvas.row(screenRow(world.BottomBorderRow))[:world.Width]; got != strings.Repeat("#", world.Width) {
		t.Errorf("bottom border row = %q", got)
	}
	if got := canvas.row(livesRow); got != "Lives remaining: 3" {
		t.Errorf("lives row = %q", got)
	}
	if got := canvas.row(titleRow); got != "LAVA MAZE: find the key" {
		t.Errorf("title row = %q", got)
	}
	if got := canvas.row(noticeRow); got != "" {
		t.Errorf("notice row = %q, want empty", got)
	}
	if canvas.shows != 1 {
		t.Errorf("shows = %d, want 1", canvas.shows)
	}

	player := canvas.cells[[2]int{1, screenRow(12)}]
	fg, _, attrs := player.style.Decompose()
	if fg != tcell.NewRGBColor(0xFF, 0xFF, 0x00) || attrs&tcell.AttrBold == 0 {
		t.Errorf("player style fg=%v attrs=%v, want bold yellow", fg, attrs)
	}
}

func TestRenderHiddenRowsNotDrawn(t *testing.T) {
	canvas := newBufferCanvas(130, 40)
	r := newTestRenderer(t, canvas, "en")

	r.Render(View{Level: testLevel(), Player: world.Point{X: 1, Y: 12}, Lives: 3})

	// Only the title, notice, 21 map rows, lives and legend rows are used.
	for key := range canvas.cells {
		if key[1] > livesRow && key[0] < world.Width {
			t.Fatalf("cell drawn below lives at %v on a wide screen", key)
		}
	}
}

func TestRenderNotice(t *testing.T) {
	tests := []struct {
		lang string
		key  string
		args []any
		want string
		tone Tone
	}{
		{"en", "NOTICE_FELL", []any{2}, "You fell! 2 lives left. Back to the start...", ToneBad},
		{"en", "NOTICE_TELEPORTED", nil, "You have been teleported to a new place!", ToneInfo},
		{"es", "NOTICE_REGENERATED", nil, "¡Mapa regenerado!", ToneGood},
	}

	for _, tt := range tests {
		canvas := newBufferCanvas(120, 40)
		r := newTestRenderer(t, canvas, tt.lang)

		r.Render(View{Level: testLevel(), Player: world.Point{X: 1, Y: 12}, Lives: 2,
			NoticeKey: tt.key, NoticeArgs: tt.args, NoticeTone: tt.tone})

		if got := canvas.row(noticeRow); got != tt.want {
			t.Errorf("[%s] notice row = %q, want %q", tt.lang, got, tt.want)
		}
		if got := canvas.cells[[2]int{0, noticeRow}].style; got != noticeStyle(tt.tone) {
			t.Errorf("[%s] notice style = %v, want tone %d", tt.lang, got, tt.tone)
		}
	}
}

func TestRenderLegendPlacement(t *testing.T) {
	wide := newBufferCanvas(130, 40)
	newTestRenderer(t, wide, "en").Render(View{Level: testLevel(), Player: world.Point{X: 1, Y: 12}, Lives: 3})
	if got := wide.runeAt(world.Width+legendGap, mapTop+1); got != '@' {
		t.Errorf("wide screen legend player glyph = %q, want '@'", got)
	}

	narrow := newBufferCanvas(world.Width, MinHeight)
	newTestRenderer(t, narrow, "es").Render(View{Level: testLevel(), Player: world.Point{X: 1, Y: 12}, Lives: 3})
	top := livesRow + legendGap
	if got := narrow.row(top); got != "Leyenda:" {
		t.Errorf("narrow screen legend heading = %q, want %q", got, "Leyenda:")
	}
	if got := narrow.row(top + 1); got != "@ = Jugador" {
		t.Errorf("narrow screen legend player = %q", got)
	}
	if got := narrow.row(top + legendLines - 1); got != "r = Regenerar mapa" {
		t.Errorf("narrow screen last control = %q", got)
	}
}

func TestRenderIsIdempotent(t *testing.T) {
	canvas := newBufferCanvas(120, 40)
	r := newTestRenderer(t, canvas, "en")
	view := View{Level: testLevel(), Player: world.Point{X: 10, Y: 20}, Lives: 1,
		NoticeKey: "NOTICE_TELEPORTED"}

	r.Render(view)
	first := make(map[[2]int]cell, len(canvas.cells))
	for k, v := range canvas.cells {
		first[k] = v
	}
	r.Render(view)

	if len(first) != len(canvas.cells) {
		t.Fatalf("cell count changed: %d != %d", len(first), len(canvas.cells))
	}
	for k, v := range first {
		if canvas.cells[k] != v {
			t.Errorf("cell %v changed between renders", k)
		}
	}
}

func TestFitsTerminal(t *testing.T) {
	if !FitsTerminal(MinWidth, MinHeight) {
		t.Error("minimum size should fit")
	}
	if FitsTerminal(MinWidth-1, MinHeight) || FitsTerminal(MinWidth, MinHeight-1) {
		t.Error("smaller than minimum should not fit")
	}
}

func TestPrintOutcome(t *testing.T) {
	catalog, err := gamedata.LoadCatalog("en")
	if err != nil {
		t.Fatalf("LoadCatalog() error = %v", err)
	}

	var buf bytes.Buffer
	if err := PrintOutcome(&buf, catalog, true); err != nil {
		t.Fatalf("PrintOutcome() error = %v", err)
	}
	if !strings.Contains(buf.String(), "You picked up the key! You win!") {
		t.Errorf("win banner = %q", buf.String())
	}

	buf.Reset()
	if err := PrintOutcome(&buf, catalog, false); err != nil {
		t.Fatalf("PrintOutcome() error = %v", err)
	}
	if !strings.Contains(buf.String(), "You lost all your lives!") {
		t.Errorf("loss banner = %q", buf.String())
	}
}
