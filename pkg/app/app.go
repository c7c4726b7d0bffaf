// Package app wires the HUD pipeline together: configuration, the layout
// document, asset loading, the scene graph, the runtime module, and the
// campaign save. It implements ebiten.Game so main stays a thin shell.
package app

import (
	"fmt"
	"image/color"
	"io"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/quasilyte/gdata/v2"

	"github.com/decker502/agesail/internal/hud"
	"github.com/decker502/agesail/internal/render"
	"github.com/decker502/agesail/pkg/config"
	"github.com/decker502/agesail/pkg/game"
	"github.com/decker502/agesail/pkg/modules"
)

// seaColor fills the screen behind the HUD where the map would render.
var seaColor = color.RGBA{R: 22, G: 52, B: 88, A: 255}

// autosaveInterval is how many ticks pass between campaign saves.
const autosaveInterval = 600

// App is the running application.
type App struct {
	cfg   config.Config
	scene *render.Scene
	hud   *modules.HUDModule

	clock  *game.Clock
	status *game.PlayerStatus
	saves  *game.SaveManager

	world *demoWorld
	ticks int
}

// New builds the application from its configuration. defaultLayout is the
// embedded HUD document, used when the configuration names no layout file.
func New(cfg config.Config, defaultLayout []byte) (*App, error) {
	if !cfg.Debug.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	doc, err := loadLayout(cfg, defaultLayout)
	if err != nil {
		return nil, err
	}
	log.Printf("[App] HUD layout loaded: %d nodes, %d ids", doc.Count(), len(doc.CollectIDs()))

	assets := render.NewAssets(cfg.Assets.Root)
	scene, err := render.BuildScene(doc, assets, float64(cfg.Window.Width), float64(cfg.Window.Height))
	if err != nil {
		return nil, fmt.Errorf("failed to build HUD scene: %w", err)
	}

	// Persistence degrades to in-memory state when gdata cannot open.
	var manager *gdata.Manager
	if m, err := gdata.Open(gdata.Config{AppName: "agesail"}); err == nil {
		manager = m
	} else {
		log.Printf("[App] Persistence unavailable: %v", err)
	}
	saves := game.NewSaveManager(manager)

	state, err := saves.Load()
	if err != nil {
		log.Printf("[App] Corrupt save ignored: %v", err)
	}

	clock := game.NewClock()
	clock.TimeElapsed = state.TimeElapsed
	clock.CurrentSpeed = state.CurrentSpeed
	status := &game.PlayerStatus{Money: state.Money}
	notifications := &game.Notifications{}

	a := &App{
		cfg:    cfg,
		scene:  scene,
		clock:  clock,
		status: status,
		saves:  saves,
		world:  newDemoWorld(),
	}
	a.hud = modules.NewHUDModule(scene, clock, status, notifications)
	a.hud.OnAcceptContract = a.acceptContract
	scene.OnClick = a.hud.HandleClick

	a.hud.Notify("Welcome aboard, captain")
	return a, nil
}

// loadLayout reads the configured layout file, or parses the embedded
// default document.
func loadLayout(cfg config.Config, defaultLayout []byte) (*hud.Document, error) {
	if cfg.Assets.Layout != "" {
		doc, err := hud.Load(cfg.Assets.Layout)
		if err != nil {
			return nil, err
		}
		return doc, nil
	}

	doc, err := hud.Parse(defaultLayout)
	if err != nil {
		return nil, fmt.Errorf("embedded HUD layout: %w", err)
	}
	return doc, nil
}

// Update runs one tick: input, port selection, HUD state binding, and the
// periodic autosave.
func (a *App) Update() error {
	a.scene.Update()

	// Number keys select ports on the demo map.
	for i, port := range a.world.ports {
		if inpututil.IsKeyJustPressed(ebiten.Key1 + ebiten.Key(i)) {
			if err := a.hud.ShowPort(port, a.world.offers[port.Name], a.world.destinationName); err != nil {
				return err
			}
			a.hud.ShowShip(a.world.ship, a.world.affiliation)
		}
	}

	a.hud.Update(1.0 / float64(ebiten.TPS()))

	a.ticks++
	if a.ticks%autosaveInterval == 0 {
		a.save()
	}
	return nil
}

func (a *App) save() {
	err := a.saves.Save(&game.SaveState{
		Money:        a.status.Money,
		TimeElapsed:  a.clock.TimeElapsed,
		CurrentSpeed: a.clock.CurrentSpeed,
	})
	if err != nil {
		log.Printf("[App] Autosave failed: %v", err)
	}
}

// acceptContract resolves an accepted offer: the player is paid and the
// offer leaves the port.
func (a *App) acceptContract(port *game.Port, index int) {
	if port == nil {
		return
	}
	offers := a.world.offers[port.Name]
	if index < 0 || index >= len(offers) {
		return
	}
	accepted := offers[index]

	a.world.offers[port.Name] = append(offers[:index], offers[index+1:]...)
	a.status.Money += accepted.Payment
	a.hud.Notify(fmt.Sprintf("Contract to %s accepted", a.world.destinationName(accepted)))

	if err := a.hud.ShowPort(port, a.world.offers[port.Name], a.world.destinationName); err != nil {
		log.Printf("[App] Failed to rebuild port panel: %v", err)
	}
}

// Draw renders the sea backdrop and the HUD on top.
func (a *App) Draw(screen *ebiten.Image) {
	screen.Fill(seaColor)
	a.scene.Draw(screen)
}

// Layout reports the logical screen size, independent of the window.
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return a.cfg.Window.Width, a.cfg.Window.Height
}

// demoWorld is the handful of ports and offers that stand in for the full
// trading map, enough to drive every HUD panel.
type demoWorld struct {
	ports       []*game.Port
	offers      map[string][]*game.Contract
	names       map[string]string
	ship        string
	affiliation string
}

func newDemoWorld() *demoWorld {
	return &demoWorld{
		ports: []*game.Port{
			{Name: "Bristol"},
			{Name: "Nassau"},
		},
		offers: map[string][]*game.Contract{
			"Bristol": {
				{Destination: "nassau", Payment: 320, GoodsRequired: map[string]int{"Cloth": 12, "Iron": 4}},
				{Destination: "nassau", Payment: 150, GoodsRequired: map[string]int{"Beer": 8}},
			},
			"Nassau": {
				{Destination: "bristol", Payment: 410, GoodsRequired: map[string]int{"Sugar": 16, "Rum": 6}},
			},
		},
		names: map[string]string{
			"nassau":  "Nassau",
			"bristol": "Bristol",
		},
		ship:        "HMS Dauntless",
		affiliation: "British",
	}
}

func (w *demoWorld) destinationName(c *game.Contract) string {
	if name, ok := w.names[c.Destination]; ok {
		return name
	}
	return c.Destination
}
