package game

import (
	"fmt"
	"log"

	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

// SaveState is the campaign state persisted between sessions.
type SaveState struct {
	Money        int     `yaml:"money"`
	TimeElapsed  float64 `yaml:"timeElapsed"`
	CurrentSpeed float64 `yaml:"currentSpeed"`
}

// defaultSaveState is a fresh campaign: broke, at the epoch, base speed.
func defaultSaveState() *SaveState {
	return &SaveState{CurrentSpeed: MinGameSpeed}
}

// Storage path constants.
const (
	saveObject   = "save"
	saveProperty = "campaign"
)

// SaveManager persists the campaign through gdata's cross-platform storage.
// A nil gdata manager puts it in degraded mode: loads return a fresh
// campaign and saves are silently dropped.
type SaveManager struct {
	gdataManager *gdata.Manager
}

// NewSaveManager creates a save manager on top of the given gdata manager,
// which may be nil.
func NewSaveManager(gdataManager *gdata.Manager) *SaveManager {
	return &SaveManager{gdataManager: gdataManager}
}

// Load reads the persisted campaign, or returns a fresh one if nothing was
// saved yet or persistence is unavailable.
func (sm *SaveManager) Load() (*SaveState, error) {
	if sm.gdataManager == nil {
		return defaultSaveState(), nil
	}

	if !sm.gdataManager.ObjectPropExists(saveObject, saveProperty) {
		return defaultSaveState(), nil
	}

	data, err := sm.gdataManager.LoadObjectProp(saveObject, saveProperty)
	if err != nil {
		return defaultSaveState(), fmt.Errorf("failed to load save: %w", err)
	}

	var state SaveState
	if err := yaml.Unmarshal(data, &state); err != nil {
		return defaultSaveState(), fmt.Errorf("failed to unmarshal save: %w", err)
	}

	if state.CurrentSpeed < MinGameSpeed || state.CurrentSpeed > MaxGameSpeed {
		state.CurrentSpeed = MinGameSpeed
	}

	log.Printf("[SaveManager] Campaign loaded")
	return &state, nil
}

// Save persists the campaign. In degraded mode it is a no-op.
func (sm *SaveManager) Save(state *SaveState) error {
	if sm.gdataManager == nil {
		return nil
	}

	data, err := yaml.Marshal(state)
	if err != nil {
		return fmt.Errorf("failed to marshal save: %w", err)
	}

	if err := sm.gdataManager.SaveObjectProp(saveObject, saveProperty, data); err != nil {
		return fmt.Errorf("failed to save campaign: %w", err)
	}

	log.Printf("[SaveManager] Campaign saved")
	return nil
}
