package layout

import (
	"math"
	"testing"

	"github.com/decker502/agesail/internal/hud"
)

const epsilon = 1e-9

func approx(a, b float64) bool {
	return math.Abs(a-b) < epsilon
}

func container(t hud.Transform, children ...*hud.Node) *hud.Node {
	return &hud.Node{Kind: hud.KindContainer, Transform: t, Children: children}
}

func TestResolveRect_Anchors(t *testing.T) {
	parent := Rect{X: 0, Y: 0, W: 800, H: 600}

	tests := []struct {
		name   string
		tf     hud.Transform
		wantX  float64
		wantY  float64
	}{
		{
			name:  "centered",
			tf:    hud.Transform{Anchor: hud.Middle, Pivot: hud.Middle, Width: 100, Height: 50},
			wantX: 350, wantY: 275,
		},
		{
			name:  "top left corner",
			tf:    hud.Transform{Anchor: hud.TopLeft, Pivot: hud.TopLeft, Width: 100, Height: 50},
			wantX: 0, wantY: 0,
		},
		{
			name:  "bottom right corner",
			tf:    hud.Transform{Anchor: hud.BottomRight, Pivot: hud.BottomRight, Width: 100, Height: 50},
			wantX: 700, wantY: 550,
		},
		{
			name:  "top middle pushed down",
			tf:    hud.Transform{Anchor: hud.TopMiddle, Pivot: hud.TopMiddle, Y: -10, Width: 200, Height: 60},
			wantX: 300, wantY: 10,
		},
		{
			name:  "right edge inset",
			tf:    hud.Transform{Anchor: hud.MiddleRight, Pivot: hud.MiddleRight, X: -10, Width: 195, Height: 520},
			wantX: 595, wantY: 40,
		},
		{
			name:  "bottom middle raised",
			tf:    hud.Transform{Anchor: hud.BottomMiddle, Pivot: hud.BottomMiddle, Y: 10, Width: 600, Height: 20},
			wantX: 100, wantY: 570,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := resolveRect(&tt.tf, parent)
			if !approx(got.X, tt.wantX) || !approx(got.Y, tt.wantY) {
				t.Errorf("Expected position (%g, %g), got (%g, %g)", tt.wantX, tt.wantY, got.X, got.Y)
			}
			if !approx(got.W, tt.tf.Width) || !approx(got.H, tt.tf.Height) {
				t.Errorf("Expected size %gx%g, got %gx%g", tt.tf.Width, tt.tf.Height, got.W, got.H)
			}
		})
	}
}

func TestResolveRect_Stretch(t *testing.T) {
	parent := Rect{X: 0, Y: 0, W: 800, H: 600}

	tests := []struct {
		name    string
		stretch hud.Stretch
		width   float64
		height  float64
		wantW   float64
		wantH   float64
	}{
		{
			name:    "full screen",
			stretch: hud.Stretch{XMargin: 0, YMargin: 0},
			wantW:   800, wantH: 600,
		},
		{
			name:    "uniform margins",
			stretch: hud.Stretch{XMargin: 50, YMargin: 25},
			wantW:   700, wantH: 550,
		},
		{
			name:    "keep aspect ratio shrinks the wide axis",
			stretch: hud.Stretch{XMargin: 0, YMargin: 0, KeepAspectRatio: true},
			width:   100, height: 100,
			wantW: 600, wantH: 600,
		},
		{
			name:    "margins larger than parent clamp to zero",
			stretch: hud.Stretch{XMargin: 500, YMargin: 400},
			wantW:   0, wantH: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tf := hud.Transform{
				Anchor: hud.Middle, Pivot: hud.Middle,
				Width: tt.width, Height: tt.height,
				Stretch: &tt.stretch,
			}
			got := resolveRect(&tf, parent)
			if !approx(got.W, tt.wantW) || !approx(got.H, tt.wantH) {
				t.Errorf("Expected size %gx%g, got %gx%g", tt.wantW, tt.wantH, got.W, got.H)
			}
		})
	}
}

func TestResolve_NestingAndZ(t *testing.T) {
	inner := container(hud.Transform{
		ID: "inner", Anchor: hud.TopLeft, Pivot: hud.TopLeft,
		X: 10, Y: -10, Z: 1, Width: 50, Height: 20,
	})
	outer := container(hud.Transform{
		ID: "outer", Anchor: hud.Middle, Pivot: hud.Middle,
		Z: 2, Width: 400, Height: 300,
	}, inner)
	root := container(hud.Transform{
		ID: "root", Anchor: hud.Middle, Pivot: hud.Middle,
		Stretch: &hud.Stretch{},
	}, outer)

	placements := Resolve(&hud.Document{Root: root}, 800, 600)
	if len(placements) != 3 {
		t.Fatalf("Expected 3 placements, got %d", len(placements))
	}

	byID := make(map[string]Placement)
	for _, p := range placements {
		byID[p.Node.ID()] = p
	}

	// Outer is centered in the 800x600 screen.
	if got := byID["outer"].Rect; !approx(got.X, 200) || !approx(got.Y, 150) {
		t.Errorf("Expected outer at (200, 150), got (%g, %g)", got.X, got.Y)
	}

	// Inner hangs off outer's top-left corner, offset into it.
	if got := byID["inner"].Rect; !approx(got.X, 210) || !approx(got.Y, 160) {
		t.Errorf("Expected inner at (210, 160), got (%g, %g)", got.X, got.Y)
	}

	// Depth accumulates parent to child.
	if z := byID["inner"].Z; !approx(z, 3) {
		t.Errorf("Expected inner z=3 (2+1), got %g", z)
	}
}

func TestByZ_OrderStableWithinDepth(t *testing.T) {
	a := container(hud.Transform{ID: "a", Anchor: hud.Middle, Pivot: hud.Middle, Z: 1, Width: 1, Height: 1})
	b := container(hud.Transform{ID: "b", Anchor: hud.Middle, Pivot: hud.Middle, Z: -1, Width: 1, Height: 1})
	c := container(hud.Transform{ID: "c", Anchor: hud.Middle, Pivot: hud.Middle, Z: 1, Width: 1, Height: 1})
	root := container(hud.Transform{ID: "root", Anchor: hud.Middle, Pivot: hud.Middle, Width: 10, Height: 10}, a, b, c)

	sorted := ByZ(Resolve(&hud.Document{Root: root}, 100, 100))

	var order []string
	for _, p := range sorted {
		order = append(order, p.Node.ID())
	}

	want := []string{"b", "root", "a", "c"}
	for i, id := range want {
		if order[i] != id {
			t.Fatalf("Expected draw order %v, got %v", want, order)
		}
	}
}

func TestRect_Contains(t *testing.T) {
	r := Rect{X: 10, Y: 10, W: 20, H: 20}

	tests := []struct {
		name string
		x, y float64
		want bool
	}{
		{"inside", 15, 15, true},
		{"top-left corner inclusive", 10, 10, true},
		{"bottom-right corner exclusive", 30, 30, false},
		{"outside left", 5, 15, false},
		{"outside below", 15, 35, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := r.Contains(tt.x, tt.y); got != tt.want {
				t.Errorf("Contains(%g, %g) = %v, want %v", tt.x, tt.y, got, tt.want)
			}
		})
	}
}
