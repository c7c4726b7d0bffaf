package render

import (
	"fmt"
	"image/color"
	"sort"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/decker502/agesail/internal/hud"
	"github.com/decker502/agesail/internal/layout"
)

// Widget is a layout node resolved into the scene: its screen rectangle,
// its draw depth, and its mutable runtime state (label text, local z).
type Widget struct {
	Node  *hud.Node
	Rect  layout.Rect
	Order int

	parent *Widget
	baseZ  float64
	localZ float64

	text    string
	face    *text.GoTextFace
	tex     *ebiten.Image
	hovered bool
}

// Z returns the widget's effective draw depth: the accumulated depth of its
// ancestors plus its own local z. Lowering a widget's local z below a
// sibling panel hides it behind that panel, which is how the runtime parks
// the inactive half of the play/pause pair.
func (w *Widget) Z() float64 {
	return w.baseZ + w.localZ
}

// ID returns the underlying node's identifier.
func (w *Widget) ID() string {
	return w.Node.ID()
}

// Text returns the widget's current label text.
func (w *Widget) Text() string {
	return w.text
}

// Scene is the built scene graph of a HUD document: a flat widget list in
// declaration order plus an id index for runtime lookup. OnClick receives
// the id of any mouse-reactive widget the user activates, by mouse or by
// tab focus.
type Scene struct {
	assets  *Assets
	screen  layout.Rect
	widgets []*Widget
	byID    map[string]*Widget
	focus   *Widget
	order   int

	OnClick func(id string)
}

// BuildScene resolves a validated layout document against a screen of the
// given size and loads every texture and font it references.
func BuildScene(doc *hud.Document, assets *Assets, screenW, screenH float64) (*Scene, error) {
	if doc == nil || doc.Root == nil {
		return nil, fmt.Errorf("cannot build scene from empty document")
	}

	s := &Scene{
		assets: assets,
		screen: layout.Rect{W: screenW, H: screenH},
		byID:   make(map[string]*Widget),
	}

	if _, err := s.buildNode(doc.Root, nil, s.screen, 0); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Scene) buildNode(n *hud.Node, parent *Widget, parentRect layout.Rect, baseZ float64) (*Widget, error) {
	w := &Widget{
		Node:   n,
		Rect:   layout.Place(&n.Transform, parentRect),
		Order:  s.order,
		parent: parent,
		baseZ:  baseZ,
		localZ: n.Transform.Z,
	}
	s.order++

	if n.Text != nil {
		w.text = n.Text.Text
		if s.assets != nil {
			face, err := s.assets.Font(n.Text.Font, n.Text.FontSize)
			if err != nil {
				return nil, fmt.Errorf("node %q: %w", n.ID(), err)
			}
			w.face = face
		}
	}

	if visual := pickVisual(n); visual != nil && s.assets != nil {
		switch {
		case visual.NineSlice != nil:
			tex, err := s.assets.Image(visual.NineSlice.Tex)
			if err != nil {
				return nil, fmt.Errorf("node %q: %w", n.ID(), err)
			}
			w.tex = tex
		case visual.Texture != nil:
			tex, err := s.assets.Image(*visual.Texture)
			if err != nil {
				return nil, fmt.Errorf("node %q: %w", n.ID(), err)
			}
			w.tex = tex
		}
	}

	s.widgets = append(s.widgets, w)
	if id := n.ID(); id != "" {
		if _, taken := s.byID[id]; !taken {
			s.byID[id] = w
		}
	}

	for _, child := range n.Children {
		if _, err := s.buildNode(child, w, w.Rect, w.Z()); err != nil {
			return nil, err
		}
	}
	return w, nil
}

// pickVisual returns the node's background or image payload, whichever the
// variant carries.
func pickVisual(n *hud.Node) *hud.Visual {
	if n.Background != nil {
		return n.Background
	}
	return n.Image
}

// Find returns the widget built for the node with the given id, or nil.
func (s *Scene) Find(id string) *Widget {
	return s.byID[id]
}

// SetText replaces the label text of the identified widget. It reports
// whether the widget exists and carries text.
func (s *Scene) SetText(id, value string) bool {
	w := s.byID[id]
	if w == nil || w.Node.Text == nil {
		return false
	}
	w.text = value
	return true
}

// SetZ replaces the local z of the identified widget and reports whether it
// exists. Descendant depths follow on the next draw.
func (s *Scene) SetZ(id string, z float64) bool {
	w := s.byID[id]
	if w == nil {
		return false
	}
	w.localZ = z
	s.refreshDepths()
	return true
}

// refreshDepths recomputes accumulated depths after a local z change.
// Widgets are stored parents-first, so a single pass suffices.
func (s *Scene) refreshDepths() {
	for _, w := range s.widgets {
		if w.parent != nil {
			w.baseZ = w.parent.Z()
		}
	}
}

// Attach builds the given subtree under an existing container widget.
// Attached nodes may reuse ids (contract cards all carry "contract"); lookup
// keeps the first occurrence and Remove drops every match.
func (s *Scene) Attach(parentID string, node *hud.Node) (*Widget, error) {
	parent := s.byID[parentID]
	if parent == nil {
		return nil, fmt.Errorf("cannot attach under unknown id %q", parentID)
	}
	if parent.Node.Kind != hud.KindContainer {
		return nil, fmt.Errorf("cannot attach under %s node %q", parent.Node.Kind, parentID)
	}
	return s.buildNode(node, parent, parent.Rect, parent.Z())
}

// Remove drops every widget with the given id, along with its descendants.
func (s *Scene) Remove(id string) {
	doomed := make(map[*Widget]bool)
	for _, w := range s.widgets {
		if w.ID() == id || (w.parent != nil && doomed[w.parent]) {
			doomed[w] = true
		}
	}
	if len(doomed) == 0 {
		return
	}

	kept := s.widgets[:0]
	for _, w := range s.widgets {
		if doomed[w] {
			continue
		}
		kept = append(kept, w)
	}
	s.widgets = kept

	for key, w := range s.byID {
		if doomed[w] {
			delete(s.byID, key)
		}
	}
	if doomed[s.focus] {
		s.focus = nil
	}
}

// hitTest returns the topmost widget at (x, y) that takes part in mouse
// interaction, either reacting to it or opaquely swallowing it.
func (s *Scene) hitTest(x, y float64) *Widget {
	ordered := s.drawOrder()
	for i := len(ordered) - 1; i >= 0; i-- {
		w := ordered[i]
		t := &w.Node.Transform
		if !t.MouseReactive && !t.Opaque {
			continue
		}
		if w.Rect.Contains(x, y) {
			return w
		}
	}
	return nil
}

// Update processes one tick of input: hover state, mouse clicks, and tab
// focus cycling with Enter/Space activation.
func (s *Scene) Update() {
	cx, cy := ebiten.CursorPosition()
	target := s.hitTest(float64(cx), float64(cy))

	for _, w := range s.widgets {
		w.hovered = false
	}
	if target != nil {
		target.hovered = true
	}

	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		if target != nil && target.Node.Transform.MouseReactive {
			s.activate(target)
		}
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		s.advanceFocus()
	}
	if s.focus != nil &&
		(inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeySpace)) {
		s.activate(s.focus)
	}
}

func (s *Scene) activate(w *Widget) {
	if s.OnClick != nil && w.ID() != "" {
		s.OnClick(w.ID())
	}
}

// advanceFocus moves keyboard focus to the next widget in tab order,
// wrapping around. Widgets hidden below their parent (negative local z)
// are skipped, so the parked play/pause button never takes focus.
func (s *Scene) advanceFocus() {
	var focusable []*Widget
	for _, w := range s.widgets {
		if w.Node.Transform.TabOrder > 0 && w.localZ >= 0 {
			focusable = append(focusable, w)
		}
	}
	if len(focusable) == 0 {
		s.focus = nil
		return
	}
	sort.SliceStable(focusable, func(i, j int) bool {
		return focusable[i].Node.Transform.TabOrder < focusable[j].Node.Transform.TabOrder
	})

	next := 0
	for i, w := range focusable {
		if w == s.focus {
			next = (i + 1) % len(focusable)
			break
		}
	}
	s.focus = focusable[next]
}

// Focused returns the widget currently holding keyboard focus, or nil.
func (s *Scene) Focused() *Widget {
	return s.focus
}

// drawOrder returns widgets sorted by effective depth, declaration order
// breaking ties.
func (s *Scene) drawOrder() []*Widget {
	ordered := make([]*Widget, len(s.widgets))
	copy(ordered, s.widgets)
	sort.SliceStable(ordered, func(i, j int) bool {
		if ordered[i].Z() != ordered[j].Z() {
			return ordered[i].Z() < ordered[j].Z()
		}
		return ordered[i].Order < ordered[j].Order
	})
	return ordered
}

// Draw renders the scene bottom-up by depth.
func (s *Scene) Draw(dst *ebiten.Image) {
	for _, w := range s.drawOrder() {
		s.drawWidget(dst, w)
	}

	if s.focus != nil {
		r := s.focus.Rect
		vector.StrokeRect(dst, float32(r.X)-1, float32(r.Y)-1, float32(r.W)+2, float32(r.H)+2,
			1, color.RGBA{R: 255, G: 255, B: 255, A: 160}, true)
	}
}

func (s *Scene) drawWidget(dst *ebiten.Image, w *Widget) {
	if visual := pickVisual(w.Node); visual != nil {
		switch {
		case visual.SolidColor != nil:
			c := *visual.SolidColor
			vector.DrawFilledRect(dst,
				float32(w.Rect.X), float32(w.Rect.Y), float32(w.Rect.W), float32(w.Rect.H),
				toRGBA(c), true)
		case visual.NineSlice != nil && w.tex != nil:
			drawNineSlice(dst, w.tex, visual.NineSlice, w.Rect)
		case visual.Texture != nil && w.tex != nil:
			op := &ebiten.DrawImageOptions{}
			bounds := w.tex.Bounds()
			op.GeoM.Scale(w.Rect.W/float64(bounds.Dx()), w.Rect.H/float64(bounds.Dy()))
			op.GeoM.Translate(w.Rect.X, w.Rect.Y)
			dst.DrawImage(w.tex, op)
		}
	}

	if w.Node.Text != nil && w.face != nil && w.text != "" {
		s.drawText(dst, w)
	}
}

func (s *Scene) drawText(dst *ebiten.Image, w *Widget) {
	style := w.Node.Text
	content := w.text
	if style.LineMode == hud.LineModeWrap {
		content = wrapText(content, w.face, w.Rect.W)
	}

	lineSpacing := w.face.Size * 1.2
	textW, textH := text.Measure(content, w.face, lineSpacing)

	align := style.Align
	if align == "" {
		align = hud.Middle
	}
	fx, fy := alignFraction(align)
	x := w.Rect.X + fx*(w.Rect.W-textW)
	y := w.Rect.Y + fy*(w.Rect.H-textH)

	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.LineSpacing = lineSpacing
	op.ColorScale.Scale(float32(style.Color[0]), float32(style.Color[1]), float32(style.Color[2]), float32(style.Color[3]))
	text.Draw(dst, content, w.face, op)
}

// alignFraction maps a text alignment anchor to fractional placement of the
// measured text block inside the widget rectangle.
func alignFraction(a hud.Anchor) (fx, fy float64) {
	switch a {
	case hud.TopLeft:
		return 0, 0
	case hud.TopMiddle:
		return 0.5, 0
	case hud.TopRight:
		return 1, 0
	case hud.MiddleLeft:
		return 0, 0.5
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

// wrapText breaks content on word boundaries so each line's advance fits in
// maxWidth. Words longer than a full line stay unbroken.
func wrapText(content string, face *text.GoTextFace, maxWidth float64) string {
	words := strings.Fields(content)
	if len(words) == 0 {
		return content
	}

	var lines []string
	current := words[0]
	for _, word := range words[1:] {
		candidate := current + " " + word
		if text.Advance(candidate, face) > maxWidth {
			lines = append(lines, current)
			current = word
			continue
		}
		current = candidate
	}
	lines = append(lines, current)
	return strings.Join(lines, "\n")
}

func toRGBA(c hud.Color) color.RGBA {
	return color.RGBA{
		R: uint8(c[0] * 255),
		G: uint8(c[1] * 255),
		B: uint8(c[2] * 255),
		A: uint8(c[3] * 255),
	}
}
