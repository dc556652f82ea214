package world

import "testing"

func TestTerrainString(t *testing.T) {
	tests := []struct {
		terrain  Terrain
		expected string
	}{
		{Wall, "wall"},
		{Floor, "floor"},
		{Water, "water"},
		{Grass, "grass"},
		{Lava, "lava"},
		{Portal, "portal"},
		{Key, "key"},
		{Terrain(99), "unknown"},
	}

	for _, tt := range tests {
		if got := tt.terrain.String(); got != tt.expected {
			t.Errorf("Terrain(%d).String() = %q, want %q", tt.terrain, got, tt.expected)
		}
	}
}

func TestTerrainIsHazard(t *testing.T) {
	for _, terrain := range Terrains {
		want := terrain == Water || terrain == Lava
		if got := terrain.IsHazard(); got != want {
			t.Errorf("%v.IsHazard() = %v, want %v", terrain, got, want)
		}
	}
}

func TestIsBorder(t *testing.T) {
	tests := []struct {
		p    Point
		want bool
	}{
		{Point{0, 0}, true},
		{Point{40, 5}, true},
		{Point{40, TopBorderRow}, true},
		{Point{40, BottomBorderRow}, true},
		{Point{0, 20}, true},
		{Point{Width - 1, 20}, true},
		{Point{1, FirstRow}, false},
		{Point{LastCol, LastRow}, false},
	}

	for _, tt := range tests {
		if got := IsBorder(tt.p); got != tt.want {
			t.Errorf("IsBorder(%v) = %v, want %v", tt.p, got, tt.want)
		}
	}
}

func TestLevelAtOutOfBounds(t *testing.T) {
	level := NewLevel()
	level.Set(Point{5, 20}, Floor)

	if got := level.At(Point{5, 20}); got != Floor {
		t.Errorf("At(5,20) = %v, want floor", got)
	}
	for _, p := range []Point{{-1, 0}, {0, -1}, {Width, 0}, {0, Height}} {
		if got := level.At(p); got != Wall {
			t.Errorf("At(%v) = %v, want wall", p, got)
		}
		level.Set(p, Floor) // must not panic
	}
}

func TestPortalsLookup(t *testing.T) {
	portals := Portals{
		{Source: Point{3, 14}, Dest: Point{10, 20}},
		{Source: Point{7, 15}, Dest: Point{5, 20}},
	}

	portal, ok := portals.Lookup(Point{7, 15})
	if !ok || portal.Dest != (Point{5, 20}) {
		t.Errorf("Lookup(7,15) = %v, %v; want dest (5,20)", portal, ok)
	}
	if _, ok := portals.Lookup(Point{1, 1}); ok {
		t.Error("Lookup of unregistered point should fail")
	}
}
