package modules

import (
	"fmt"

	"github.com/decker502/agesail/internal/hud"
	"github.com/decker502/agesail/pkg/game"
)

// Asset references shared by runtime-built nodes; they mirror the ones the
// HUD document declares.
var (
	uiFont   = hud.AssetRef{Path: "font/square.ttf", Kind: hud.AssetTTF}
	panelTex = hud.AssetRef{Path: "texture/panel.png", Kind: hud.AssetImage}
)

const contractCardWidth = 175.0

// contractCardHeight sizes a card to its goods listing.
func contractCardHeight(c *game.Contract) float64 {
	return 70 + 20*float64(len(c.GoodsRequired))
}

// panelBackground is the standard nine-slice panel: a 56x56 cell with 4px
// borders cut from the 64x64 panel texture.
func panelBackground() *hud.Visual {
	return &hud.Visual{
		NineSlice: &hud.NineSlice{
			XStart: 4, YStart: 4, Width: 56, Height: 56,
			LeftDist: 4, RightDist: 4, TopDist: 4, BottomDist: 4,
			Tex:               panelTex,
			TextureDimensions: [2]int{64, 64},
		},
	}
}

// buttonBackground is the tighter slice used for small buttons: a 52x52
// cell with 2px borders.
func buttonBackground() *hud.Visual {
	return &hud.Visual{
		NineSlice: &hud.NineSlice{
			XStart: 6, YStart: 6, Width: 52, Height: 52,
			LeftDist: 2, RightDist: 2, TopDist: 2, BottomDist: 2,
			Tex:               panelTex,
			TextureDimensions: [2]int{64, 64},
		},
	}
}

func cardLine(text string, y float64) *hud.Node {
	return &hud.Node{
		Kind: hud.KindLabel,
		Transform: hud.Transform{
			Anchor: hud.TopMiddle, Pivot: hud.TopMiddle,
			Y: y, Z: 1, Width: contractCardWidth, Height: 20,
		},
		Text: &hud.Text{
			Text:     text,
			Font:     uiFont,
			FontSize: 15,
			Color:    hud.Color{1, 1, 1, 1},
			LineMode: hud.LineModeSingle,
			Align:    hud.Middle,
		},
	}
}

// buildContractCard assembles the subtree for one contract offer: a panel
// with the destination, the payment, one line per required good, and an
// Accept button. Cards stack below the port name, each offset further down.
func buildContractCard(index int, c *game.Contract, destinationName string, offset float64) *hud.Node {
	children := []*hud.Node{
		cardLine(fmt.Sprintf("For: %s", destinationName), -5),
		cardLine(fmt.Sprintf("£%d", c.Payment), -25),
	}

	goodsOffset := 45.0
	for _, line := range c.Goods() {
		children = append(children, cardLine(fmt.Sprintf("%s: %d tons", line.Item, line.Tons), -goodsOffset))
		goodsOffset += 20
	}

	accept := &hud.Node{
		Kind: hud.KindButton,
		Transform: hud.Transform{
			ID:     fmt.Sprintf("%s%d", contractAcceptPrefix, index),
			Anchor: hud.BottomMiddle, Pivot: hud.BottomMiddle,
			Y: 5, Z: 1, Width: 60, Height: 20,
			MouseReactive: true, Opaque: true,
		},
		Background: buttonBackground(),
		Text: &hud.Text{
			Text:     "Accept",
			Font:     uiFont,
			FontSize: 15,
			Color:    hud.Color{1, 1, 1, 1},
			LineMode: hud.LineModeSingle,
			Align:    hud.Middle,
		},
	}
	children = append(children, accept)

	return &hud.Node{
		Kind: hud.KindContainer,
		Transform: hud.Transform{
			ID:     "contract",
			Anchor: hud.TopMiddle, Pivot: hud.TopMiddle,
			Y: -offset, Z: 1,
			Width: contractCardWidth, Height: contractCardHeight(c),
			Opaque: true,
		},
		Background: panelBackground(),
		Children:   children,
	}
}
