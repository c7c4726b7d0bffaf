// Package layout resolves the anchored transforms of a HUD layout document
// into absolute screen rectangles. The document stores offsets relative to
// parent anchor points with positive y pointing up; this package converts
// them to top-left screen coordinates with positive y pointing down, which
// is what the renderer works in.
package layout

import (
	"sort"

	"github.com/decker502/agesail/internal/hud"
)

// Rect is an axis-aligned rectangle in screen coordinates.
type Rect struct {
	X, Y, W, H float64
}

// Contains reports whether the point (x, y) lies inside the rectangle.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// Placement is a resolved node: its screen rectangle, its accumulated draw
// depth, and its position in declaration order. Z accumulates down the tree
// the way the source data expects: a child's effective depth is its parent's
// depth plus its own z offset.
type Placement struct {
	Node  *hud.Node
	Rect  Rect
	Z     float64
	Order int
}

// Resolve computes a placement for every node in the document against a
// screen of the given size. Placements come back in depth-first declaration
// order; use ByZ for draw order.
func Resolve(doc *hud.Document, screenW, screenH float64) []Placement {
	if doc == nil || doc.Root == nil {
		return nil
	}

	screen := Rect{X: 0, Y: 0, W: screenW, H: screenH}
	var placements []Placement
	resolveNode(doc.Root, screen, 0, &placements)
	return placements
}

func resolveNode(n *hud.Node, parent Rect, parentZ float64, out *[]Placement) {
	rect := resolveRect(&n.Transform, parent)
	z := parentZ + n.Transform.Z

	*out = append(*out, Placement{
		Node:  n,
		Rect:  rect,
		Z:     z,
		Order: len(*out),
	})

	for _, child := range n.Children {
		resolveNode(child, rect, z, out)
	}
}

// Place resolves a single transform against its parent rectangle. The
// renderer uses it directly when attaching nodes to an already-built scene.
func Place(t *hud.Transform, parent Rect) Rect {
	return resolveRect(t, parent)
}

// resolveRect places a single transform against its parent rectangle.
func resolveRect(t *hud.Transform, parent Rect) Rect {
	w, h := t.Width, t.Height
	if s := t.Stretch; s != nil {
		w, h = stretchSize(s, t.Width, t.Height, parent)
	}

	ax, ay := anchorPoint(parent, t.Anchor)
	px, py := fraction(t.Pivot)

	// Source offsets point y-up; screen y points down.
	x := ax + t.X - px*w
	y := ay - t.Y - py*h

	return Rect{X: x, Y: y, W: w, H: h}
}

// stretchSize sizes a stretched node: the parent size minus twice the
// margins, optionally shrunk to keep the declared aspect ratio.
func stretchSize(s *hud.Stretch, declaredW, declaredH float64, parent Rect) (w, h float64) {
	w = parent.W - 2*s.XMargin
	h = parent.H - 2*s.YMargin
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}

	if s.KeepAspectRatio && declaredW > 0 && declaredH > 0 && w > 0 && h > 0 {
		ratio := declaredW / declaredH
		if w/h > ratio {
			w = h * ratio
		} else {
			h = w / ratio
		}
	}

	return w, h
}

// fraction maps an anchor to its fractional position in screen coordinates:
// (0,0) is top-left, (1,1) is bottom-right.
func fraction(a hud.Anchor) (fx, fy float64) {
	switch a {
	case hud.TopLeft:
		return 0, 0
	case hud.TopMiddle:
		return 0.5, 0
	case hud.TopRight:
		return 1, 0
	case hud.MiddleLeft:
		return 0, 0.5
	case hud.Middle:
		return 0.5, 0.5
	case hud.MiddleRight:
		return 1, 0.5
	case hud.BottomLeft:
		return 0, 1
	case hud.BottomMiddle:
		return 0.5, 1
	case hud.BottomRight:
		return 1, 1
	}
	return 0.5, 0.5
}

// anchorPoint returns the absolute screen position of an anchor on a
// rectangle.
func anchorPoint(r Rect, a hud.Anchor) (x, y float64) {
	fx, fy := fraction(a)
	return r.X + fx*r.W, r.Y + fy*r.H
}

// ByZ returns the placements sorted for drawing: ascending depth, with
// declaration order breaking ties so later siblings draw on top.
func ByZ(placements []Placement) []Placement {
	sorted := make([]Placement, len(placements))
	copy(sorted, placements)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Z != sorted[j].Z {
			return sorted[i].Z < sorted[j].Z
		}
		return sorted[i].Order < sorted[j].Order
	})
	return sorted
}
