package game

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/quasilyte/gdata/v2"
)

// createTestGdataManager opens a gdata manager under a throwaway app name
// and cleans its directory up after the test.
func createTestGdataManager(t *testing.T, testName string) *gdata.Manager {
	appName := fmt.Sprintf("agesail_test_%s_%d", testName, time.Now().UnixNano())
	manager, err := gdata.Open(gdata.Config{
		AppName: appName,
	})
	if err != nil {
		return nil
	}

	t.Cleanup(func() {
		homeDir, err := os.UserHomeDir()
		if err == nil {
			testDir := filepath.Join(homeDir, ".local", "share", appName)
			os.RemoveAll(testDir)
		}
	})

	return manager
}

func TestSaveManager_RoundTrip(t *testing.T) {
	manager := createTestGdataManager(t, "roundtrip")
	if manager == nil {
		t.Skip("Cannot create gdata manager for testing")
	}

	sm := NewSaveManager(manager)
	saved := &SaveState{Money: 1250, TimeElapsed: 86400 * 3, CurrentSpeed: 4}
	if err := sm.Save(saved); err != nil {
		t.Fatalf("Failed to save campaign: %v", err)
	}

	loaded, err := sm.Load()
	if err != nil {
		t.Fatalf("Failed to load campaign: %v", err)
	}
	if *loaded != *saved {
		t.Errorf("Expected %+v, got %+v", saved, loaded)
	}
}

func TestSaveManager_FreshCampaignWhenEmpty(t *testing.T) {
	manager := createTestGdataManager(t, "fresh")
	if manager == nil {
		t.Skip("Cannot create gdata manager for testing")
	}

	sm := NewSaveManager(manager)
	state, err := sm.Load()
	if err != nil {
		t.Fatalf("Expected fresh campaign without error, got: %v", err)
	}
	if state.Money != 0 || state.TimeElapsed != 0 || state.CurrentSpeed != MinGameSpeed {
		t.Errorf("Expected fresh campaign state, got %+v", state)
	}
}

func TestSaveManager_DegradedModeIsSafe(t *testing.T) {
	sm := NewSaveManager(nil)

	if err := sm.Save(&SaveState{Money: 10}); err != nil {
		t.Errorf("Expected degraded save to be a no-op, got: %v", err)
	}

	state, err := sm.Load()
	if err != nil {
		t.Fatalf("Expected degraded load to succeed, got: %v", err)
	}
	if state.CurrentSpeed != MinGameSpeed {
		t.Errorf("Expected fresh campaign in degraded mode, got %+v", state)
	}
}

func TestSaveManager_ClampsBadSpeed(t *testing.T) {
	manager := createTestGdataManager(t, "badspeed")
	if manager == nil {
		t.Skip("Cannot create gdata manager for testing")
	}

	sm := NewSaveManager(manager)
	if err := sm.Save(&SaveState{Money: 5, CurrentSpeed: 64}); err != nil {
		t.Fatalf("Failed to save campaign: %v", err)
	}

	loaded, err := sm.Load()
	if err != nil {
		t.Fatalf("Failed to load campaign: %v", err)
	}
	if loaded.CurrentSpeed != MinGameSpeed {
		t.Errorf("Expected out-of-range speed reset to %g, got %g", MinGameSpeed, loaded.CurrentSpeed)
	}
}
