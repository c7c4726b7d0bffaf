package game

import "fmt"

// PlayerStatus is the player's standing shown in the status panel.
type PlayerStatus struct {
	Money int
}

// FormatMoney renders the balance for the "player_money" label.
func (p *PlayerStatus) FormatMoney() string {
	return fmt.Sprintf("£%d", p.Money)
}
