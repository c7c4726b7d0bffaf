package game

import "sort"

// Port is a harbor the player can select on the map.
type Port struct {
	Name string
}

// Contract is a freight offer held by a port: deliver the required goods to
// the destination port for the stated payment.
type Contract struct {
	Destination   string
	Payment       int
	GoodsRequired map[string]int
}

// Goods returns the required goods in a stable order for display.
func (c *Contract) Goods() []GoodsLine {
	items := make([]string, 0, len(c.GoodsRequired))
	for item := range c.GoodsRequired {
		items = append(items, item)
	}
	sort.Strings(items)

	lines := make([]GoodsLine, 0, len(items))
	for _, item := range items {
		lines = append(lines, GoodsLine{Item: item, Tons: c.GoodsRequired[item]})
	}
	return lines
}

// GoodsLine is one row of a contract card's cargo listing.
type GoodsLine struct {
	Item string
	Tons int
}
