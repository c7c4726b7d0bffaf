// Package modules contains the runtime modules that drive the HUD: they
// push game state into labeled layout nodes each tick and translate button
// activations back into state changes.
package modules

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/decker502/agesail/internal/hud"
	"github.com/decker502/agesail/internal/render"
	"github.com/decker502/agesail/pkg/game"
)

// Binder is the slice of the scene graph the HUD module drives. The render
// scene implements it; tests substitute a recorder.
type Binder interface {
	SetText(id, value string) bool
	SetZ(id string, z float64) bool
	Attach(parentID string, node *hud.Node) (*render.Widget, error)
	Remove(id string)
}

// contractAcceptPrefix prefixes the ids of the Accept buttons on contract
// cards; the suffix is the card's index in the displayed port's offer list.
const contractAcceptPrefix = "contract_accept_"

// HUDModule owns the runtime binding between game state and the HUD
// document's labeled nodes.
type HUDModule struct {
	scene         Binder
	clock         *game.Clock
	status        *game.PlayerStatus
	notifications *game.Notifications

	selectedPort       *game.Port
	displayedContracts []*game.Contract

	lastTime  string
	lastMoney string

	// OnAcceptContract fires when the player accepts the i-th contract of
	// the displayed port.
	OnAcceptContract func(port *game.Port, index int)
}

// NewHUDModule wires the module to a built scene and the state it displays.
func NewHUDModule(scene Binder, clock *game.Clock, status *game.PlayerStatus, notifications *game.Notifications) *HUDModule {
	return &HUDModule{
		scene:         scene,
		clock:         clock,
		status:        status,
		notifications: notifications,
	}
}

// Update advances the clock and refreshes every label whose backing state
// moved this tick. dt is the real time step in seconds.
func (m *HUDModule) Update(dt float64) {
	m.clock.Advance(dt)

	if now := m.clock.CurrentDateString(); now != m.lastTime {
		m.scene.SetText("current_time", now)
		m.lastTime = now
	}

	if money := m.status.FormatMoney(); money != m.lastMoney {
		m.scene.SetText("player_money", money)
		m.lastMoney = money
	}

	if message, changed := m.notifications.Tick(dt); changed {
		m.scene.SetText("notification", message)
	}
}

// HandleClick reacts to an activated widget id.
func (m *HUDModule) HandleClick(id string) {
	switch id {
	case "play_button":
		m.clock.Paused = false
		m.scene.SetZ("pause_button", 1)
		m.scene.SetZ("play_button", -1)
	case "pause_button":
		m.clock.Paused = true
		m.scene.SetZ("play_button", 1)
		m.scene.SetZ("pause_button", -1)
	case "increase_speed_button":
		m.clock.IncreaseSpeed()
	case "decrease_speed_button":
		m.clock.DecreaseSpeed()
	default:
		if index, ok := strings.CutPrefix(id, contractAcceptPrefix); ok {
			m.acceptContract(index)
		}
	}
}

func (m *HUDModule) acceptContract(indexText string) {
	index, err := strconv.Atoi(indexText)
	if err != nil || index < 0 || index >= len(m.displayedContracts) {
		return
	}
	if m.OnAcceptContract != nil {
		m.OnAcceptContract(m.selectedPort, index)
	}
}

// ShowPort fills the port panel with the selected port and rebuilds its
// contract cards. Destination names come through destinationName so the
// module stays ignorant of how ports are stored.
func (m *HUDModule) ShowPort(port *game.Port, contracts []*game.Contract, destinationName func(*game.Contract) string) error {
	m.selectedPort = port
	m.displayedContracts = contracts

	m.scene.SetText("port_info_name", port.Name)
	m.scene.Remove("contract")

	offset := 50.0
	for i, contract := range contracts {
		card := buildContractCard(i, contract, destinationName(contract), offset)
		if _, err := m.scene.Attach("port_info", card); err != nil {
			return fmt.Errorf("failed to attach contract card %d: %w", i, err)
		}
		offset += contractCardHeight(contract) + 5
	}
	return nil
}

// ShowShip fills the ship panel.
func (m *HUDModule) ShowShip(name, affiliation string) {
	m.scene.SetText("ship_info_name", name)
	m.scene.SetText("ship_info_affiliation", affiliation)
}

// Notify queues a message for the notification label.
func (m *HUDModule) Notify(message string) {
	m.notifications.Push(message)
}
