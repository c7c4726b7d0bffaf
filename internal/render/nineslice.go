package render

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/decker502/agesail/internal/hud"
	"github.com/decker502/agesail/internal/layout"
)

// drawNineSlice draws a nine-slice panel into dst. The source cell is cut
// into a 3x3 grid by the border distances: corners keep their pixel size,
// edges stretch along one axis, and the center stretches along both.
func drawNineSlice(dst *ebiten.Image, tex *ebiten.Image, ns *hud.NineSlice, rect layout.Rect) {
	// Column and row boundaries in source pixels, relative to the cell.
	srcCols := [4]int{0, ns.LeftDist, ns.Width - ns.RightDist, ns.Width}
	srcRows := [4]int{0, ns.TopDist, ns.Height - ns.BottomDist, ns.Height}

	// Matching boundaries in destination pixels. Borders keep their size;
	// the middle band absorbs the rest.
	dstCols := [4]float64{0, float64(ns.LeftDist), rect.W - float64(ns.RightDist), rect.W}
	dstRows := [4]float64{0, float64(ns.TopDist), rect.H - float64(ns.BottomDist), rect.H}

	for row := 0; row < 3; row++ {
		for col := 0; col < 3; col++ {
			sw := srcCols[col+1] - srcCols[col]
			sh := srcRows[row+1] - srcRows[row]
			if sw <= 0 || sh <= 0 {
				continue
			}

			dw := dstCols[col+1] - dstCols[col]
			dh := dstRows[row+1] - dstRows[row]
			if dw <= 0 || dh <= 0 {
				continue
			}

			src := tex.SubImage(image.Rect(
				ns.XStart+srcCols[col],
				ns.YStart+srcRows[row],
				ns.XStart+srcCols[col+1],
				ns.YStart+srcRows[row+1],
			)).(*ebiten.Image)

			op := &ebiten.DrawImageOptions{}
			op.GeoM.Scale(dw/float64(sw), dh/float64(sh))
			op.GeoM.Translate(rect.X+dstCols[col], rect.Y+dstRows[row])
			dst.DrawImage(src, op)
		}
	}
}
