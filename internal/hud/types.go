// Package hud provides data structures and a YAML codec for HUD layout
// documents. A layout document is a static tree of UI nodes (containers,
// labels, images, buttons) with anchored transforms, nine-slice or solid
// backgrounds, and font references. The game builds its heads-up display
// from one of these documents at scene load and mutates individual labels
// at runtime through id lookup.
package hud

// NodeKind identifies the variant of a layout node.
type NodeKind string

const (
	KindContainer NodeKind = "Container"
	KindLabel     NodeKind = "Label"
	KindImage     NodeKind = "Image"
	KindButton    NodeKind = "Button"
)

// Anchor is one of the nine canonical reference points on a rectangle.
// It is used both as the attachment point on the parent (anchor) and as
// the reference point on the node itself (pivot), and doubles as the text
// alignment enum for labels and buttons.
type Anchor string

const (
	TopLeft      Anchor = "TopLeft"
	TopMiddle    Anchor = "TopMiddle"
	TopRight     Anchor = "TopRight"
	MiddleLeft   Anchor = "MiddleLeft"
	Middle       Anchor = "Middle"
	MiddleRight  Anchor = "MiddleRight"
	BottomLeft   Anchor = "BottomLeft"
	BottomMiddle Anchor = "BottomMiddle"
	BottomRight  Anchor = "BottomRight"
)

// Anchors lists every valid anchor value, in reading order.
var Anchors = []Anchor{
	TopLeft, TopMiddle, TopRight,
	MiddleLeft, Middle, MiddleRight,
	BottomLeft, BottomMiddle, BottomRight,
}

// Valid reports whether a is one of the nine canonical anchors.
func (a Anchor) Valid() bool {
	for _, known := range Anchors {
		if a == known {
			return true
		}
	}
	return false
}

// LineMode controls how label text handles overflow.
type LineMode string

const (
	// LineModeSingle renders text on a single line, clipped to the node.
	LineModeSingle LineMode = "Single"
	// LineModeWrap wraps text at the node width.
	LineModeWrap LineMode = "Wrap"
)

// AssetKind discriminates external asset references. The host asset loader
// resolves paths relative to its asset root and checks the kind against the
// file it finds.
type AssetKind string

const (
	AssetImage AssetKind = "IMAGE"
	AssetTTF   AssetKind = "TTF"
)

// AssetRef is a relative path to an external asset plus its expected kind.
type AssetRef struct {
	Path string    `yaml:"path"`
	Kind AssetKind `yaml:"kind"`
}

// Color is an RGBA tuple with all components in [0.0, 1.0].
type Color [4]float64

// Stretch makes a node's size track its parent's size minus fixed margins.
// When KeepAspectRatio is set, the stretched rectangle is shrunk on one axis
// to preserve the node's declared width/height ratio.
type Stretch struct {
	XMargin         float64 `yaml:"x_margin"`
	YMargin         float64 `yaml:"y_margin"`
	KeepAspectRatio bool    `yaml:"keep_aspect_ratio,omitempty"`
}

// Transform places a node relative to its parent. X and Y offset the node's
// pivot point from the parent's anchor point; positive Y points up, matching
// the coordinate convention of the original layout data. Z offsets the draw
// order relative to the parent (higher draws later). TabOrder orders keyboard
// focus cycling, MouseReactive gates hit testing, and Opaque stops clicks
// from falling through to nodes underneath.
type Transform struct {
	ID            string   `yaml:"id,omitempty"`
	Anchor        Anchor   `yaml:"anchor"`
	Pivot         Anchor   `yaml:"pivot"`
	X             float64  `yaml:"x,omitempty"`
	Y             float64  `yaml:"y,omitempty"`
	Z             float64  `yaml:"z,omitempty"`
	Width         float64  `yaml:"width,omitempty"`
	Height        float64  `yaml:"height,omitempty"`
	Stretch       *Stretch `yaml:"stretch,omitempty"`
	TabOrder      int      `yaml:"tab_order,omitempty"`
	MouseReactive bool     `yaml:"mouse_reactive,omitempty"`
	Opaque        bool     `yaml:"opaque,omitempty"`
}

// NineSlice describes a nine-slice cut of a source texture: the cell at
// (XStart, YStart) with the given size is split into a 3x3 grid by the four
// border distances. Corners draw at fixed size, edges stretch along one
// axis, and the center stretches along both, giving resolution-independent
// panel backgrounds.
type NineSlice struct {
	XStart            int      `yaml:"x_start"`
	YStart            int      `yaml:"y_start"`
	Width             int      `yaml:"width"`
	Height            int      `yaml:"height"`
	LeftDist          int      `yaml:"left_dist"`
	RightDist         int      `yaml:"right_dist"`
	TopDist           int      `yaml:"top_dist"`
	BottomDist        int      `yaml:"bottom_dist"`
	Tex               AssetRef `yaml:"tex"`
	TextureDimensions [2]int   `yaml:"texture_dimensions"`
}

// Visual is the background or image payload of a node. Exactly one of the
// three variants must be set; Validate enforces this.
type Visual struct {
	SolidColor *Color     `yaml:"solid_color,omitempty"`
	NineSlice  *NineSlice `yaml:"nine_slice,omitempty"`
	Texture    *AssetRef  `yaml:"texture,omitempty"`
}

// variantCount returns how many of the one-of fields are set.
func (v *Visual) variantCount() int {
	n := 0
	if v.SolidColor != nil {
		n++
	}
	if v.NineSlice != nil {
		n++
	}
	if v.Texture != nil {
		n++
	}
	return n
}

// Text is the text payload of a Label or Button. The Text field holds the
// initial string; nodes like "player_money" ship with a placeholder that the
// runtime overwrites through id lookup.
type Text struct {
	Text     string   `yaml:"text"`
	Font     AssetRef `yaml:"font"`
	FontSize float64  `yaml:"font_size"`
	Color    Color    `yaml:"color"`
	LineMode LineMode `yaml:"line_mode,omitempty"`
	Align    Anchor   `yaml:"align,omitempty"`
}

// Node is a single element of the layout tree. The Kind tag selects the
// variant; which payload fields are populated depends on it:
//
//   - Container: Transform, optional Background, optional Children
//   - Label:     Transform, Text
//   - Image:     Transform, Image
//   - Button:    Transform, optional Background, Text
//
// Ownership is strictly hierarchical: a node appears under exactly one
// parent and is destroyed with its subtree.
type Node struct {
	Kind       NodeKind
	Transform  Transform
	Background *Visual
	Image      *Visual
	Text       *Text
	Children   []*Node
}

// ID returns the node's identifier, which may be empty for nodes that the
// runtime never looks up.
func (n *Node) ID() string {
	return n.Transform.ID
}

// Document is a parsed layout document. Root is always a Container.
type Document struct {
	Root *Node
}
