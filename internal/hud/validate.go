package hud

import (
	"fmt"
	"path"
	"strings"
)

// Validate checks the structural properties a layout document must hold
// before the host engine is allowed to build a scene graph from it:
//
//   - the root node is a Container
//   - every id is unique within the document
//   - every anchor, pivot, align, and line mode is a known enum value
//   - every color component lies in [0.0, 1.0]
//   - every asset reference's kind matches its file extension
//   - every visual sets exactly one variant, with sane nine-slice borders
//   - payloads match the node kind (labels carry text, images carry an
//     image, only containers carry children)
func (d *Document) Validate() error {
	if d.Root == nil {
		return fmt.Errorf("document has no root node")
	}
	if d.Root.Kind != KindContainer {
		return fmt.Errorf("root node must be a Container, got %s", d.Root.Kind)
	}

	seen := make(map[string]bool)
	return validateNode(d.Root, seen)
}

func validateNode(n *Node, seen map[string]bool) error {
	where := nodeLocation(n)

	if id := n.ID(); id != "" {
		if seen[id] {
			return fmt.Errorf("duplicate id %q", id)
		}
		seen[id] = true
	}

	if err := validateTransform(&n.Transform); err != nil {
		return fmt.Errorf("%s: %w", where, err)
	}

	switch n.Kind {
	case KindContainer:
		if n.Text != nil {
			return fmt.Errorf("%s: containers cannot carry text", where)
		}
		if n.Image != nil {
			return fmt.Errorf("%s: containers use 'background', not 'image'", where)
		}
	case KindLabel:
		if n.Text == nil {
			return fmt.Errorf("%s: label requires a text block", where)
		}
		if n.Background != nil || n.Image != nil || len(n.Children) > 0 {
			return fmt.Errorf("%s: label carries only a transform and text", where)
		}
	case KindImage:
		if n.Image == nil {
			return fmt.Errorf("%s: image node requires an image visual", where)
		}
		if n.Text != nil || n.Background != nil || len(n.Children) > 0 {
			return fmt.Errorf("%s: image node carries only a transform and image", where)
		}
	case KindButton:
		if n.Text == nil {
			return fmt.Errorf("%s: button requires a text block", where)
		}
		if n.Image != nil || len(n.Children) > 0 {
			return fmt.Errorf("%s: button carries a transform, background, and text", where)
		}
	default:
		return fmt.Errorf("%s: unknown node kind %q", where, n.Kind)
	}

	if n.Background != nil {
		if err := validateVisual(n.Background); err != nil {
			return fmt.Errorf("%s: background: %w", where, err)
		}
	}
	if n.Image != nil {
		if err := validateVisual(n.Image); err != nil {
			return fmt.Errorf("%s: image: %w", where, err)
		}
	}
	if n.Text != nil {
		if err := validateText(n.Text); err != nil {
			return fmt.Errorf("%s: text: %w", where, err)
		}
	}

	for i, child := range n.Children {
		if child == nil {
			return fmt.Errorf("%s: child %d is empty", where, i)
		}
		if err := validateNode(child, seen); err != nil {
			return err
		}
	}

	return nil
}

func validateTransform(t *Transform) error {
	if !t.Anchor.Valid() {
		return fmt.Errorf("invalid anchor %q", t.Anchor)
	}
	if !t.Pivot.Valid() {
		return fmt.Errorf("invalid pivot %q", t.Pivot)
	}
	if t.Width < 0 || t.Height < 0 {
		return fmt.Errorf("negative size %gx%g", t.Width, t.Height)
	}
	if s := t.Stretch; s != nil {
		if s.XMargin < 0 || s.YMargin < 0 {
			return fmt.Errorf("negative stretch margins (%g, %g)", s.XMargin, s.YMargin)
		}
	}
	return nil
}

func validateVisual(v *Visual) error {
	switch v.variantCount() {
	case 0:
		return fmt.Errorf("visual must set one of solid_color, nine_slice, texture")
	case 1:
	default:
		return fmt.Errorf("visual must set exactly one variant")
	}

	if v.SolidColor != nil {
		if err := validateColor(*v.SolidColor); err != nil {
			return err
		}
	}
	if v.Texture != nil {
		if err := validateAssetRef(*v.Texture, AssetImage); err != nil {
			return err
		}
	}
	if ns := v.NineSlice; ns != nil {
		if err := validateNineSlice(ns); err != nil {
			return err
		}
	}
	return nil
}

func validateNineSlice(ns *NineSlice) error {
	if err := validateAssetRef(ns.Tex, AssetImage); err != nil {
		return err
	}
	if ns.Width <= 0 || ns.Height <= 0 {
		return fmt.Errorf("nine-slice cell must have positive size, got %dx%d", ns.Width, ns.Height)
	}
	if ns.XStart < 0 || ns.YStart < 0 {
		return fmt.Errorf("nine-slice cell start (%d, %d) out of texture", ns.XStart, ns.YStart)
	}
	if ns.LeftDist < 0 || ns.RightDist < 0 || ns.TopDist < 0 || ns.BottomDist < 0 {
		return fmt.Errorf("nine-slice border distances must be non-negative")
	}
	if ns.LeftDist+ns.RightDist > ns.Width || ns.TopDist+ns.BottomDist > ns.Height {
		return fmt.Errorf("nine-slice borders (%d+%d, %d+%d) exceed cell size %dx%d",
			ns.LeftDist, ns.RightDist, ns.TopDist, ns.BottomDist, ns.Width, ns.Height)
	}
	w, h := ns.TextureDimensions[0], ns.TextureDimensions[1]
	if w <= 0 || h <= 0 {
		return fmt.Errorf("nine-slice texture_dimensions must be positive, got %dx%d", w, h)
	}
	if ns.XStart+ns.Width > w || ns.YStart+ns.Height > h {
		return fmt.Errorf("nine-slice cell %d,%d %dx%d exceeds texture %dx%d",
			ns.XStart, ns.YStart, ns.Width, ns.Height, w, h)
	}
	return nil
}

func validateText(t *Text) error {
	if err := validateAssetRef(t.Font, AssetTTF); err != nil {
		return err
	}
	if t.FontSize <= 0 {
		return fmt.Errorf("font_size must be positive, got %g", t.FontSize)
	}
	if err := validateColor(t.Color); err != nil {
		return err
	}
	if t.LineMode != "" && t.LineMode != LineModeSingle && t.LineMode != LineModeWrap {
		return fmt.Errorf("invalid line_mode %q", t.LineMode)
	}
	if t.Align != "" && !t.Align.Valid() {
		return fmt.Errorf("invalid align %q", t.Align)
	}
	return nil
}

func validateColor(c Color) error {
	for i, component := range c {
		if component < 0.0 || component > 1.0 {
			return fmt.Errorf("color component %d out of range [0, 1]: %g", i, component)
		}
	}
	return nil
}

// extensionKinds maps asset file extensions to the kind the reference must
// declare. Paths with other extensions are rejected outright; the host asset
// loader only understands these two.
var extensionKinds = map[string]AssetKind{
	".png": AssetImage,
	".ttf": AssetTTF,
}

func validateAssetRef(ref AssetRef, want AssetKind) error {
	if ref.Path == "" {
		return fmt.Errorf("asset reference has no path")
	}
	if ref.Kind != want {
		return fmt.Errorf("asset '%s' declared as %q, expected %q here", ref.Path, ref.Kind, want)
	}

	ext := strings.ToLower(path.Ext(ref.Path))
	kind, ok := extensionKinds[ext]
	if !ok {
		return fmt.Errorf("asset '%s' has unsupported extension %q", ref.Path, ext)
	}
	if kind != ref.Kind {
		return fmt.Errorf("asset '%s' has extension %q but declares kind %q", ref.Path, ext, ref.Kind)
	}
	return nil
}

// nodeLocation describes a node for error messages, preferring its id.
func nodeLocation(n *Node) string {
	if id := n.ID(); id != "" {
		return fmt.Sprintf("node %q", id)
	}
	return fmt.Sprintf("unnamed %s node", strings.ToLower(string(n.Kind)))
}
