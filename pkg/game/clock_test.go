package game

import "testing"

func TestClock_StartsAtEpoch(t *testing.T) {
	c := NewClock()
	if got := c.CurrentDateString(); got != " 1 January 1680" {
		t.Errorf("Expected ' 1 January 1680', got %q", got)
	}
	if c.Speed() != MinGameSpeed {
		t.Errorf("Expected base speed %g, got %g", MinGameSpeed, c.Speed())
	}
}

func TestClock_AdvanceScalesRealTime(t *testing.T) {
	c := NewClock()

	// One real day at base speed: 86400 real seconds * 3600 = 86400 in-game
	// days... rather, each real second is one in-game hour, so 24 real
	// seconds advance the date by one day.
	c.Advance(24)
	if got := c.CurrentDateString(); got != " 2 January 1680" {
		t.Errorf("Expected ' 2 January 1680', got %q", got)
	}

	// A month later the label switches month and keeps daily padding.
	for i := 0; i < 31; i++ {
		c.Advance(24)
	}
	if got := c.CurrentDateString(); got != " 2 February 1680" {
		t.Errorf("Expected ' 2 February 1680', got %q", got)
	}
}

func TestClock_PausedDoesNotAdvance(t *testing.T) {
	c := NewClock()
	c.Paused = true

	if c.Speed() != 0 {
		t.Errorf("Expected paused speed 0, got %g", c.Speed())
	}

	c.Advance(100)
	if c.TimeElapsed != 0 {
		t.Errorf("Expected no elapsed time while paused, got %g", c.TimeElapsed)
	}

	// Pausing does not forget the selected speed.
	c.IncreaseSpeed()
	c.Paused = false
	if c.Speed() != 2 {
		t.Errorf("Expected speed 2 after resume, got %g", c.Speed())
	}
}

func TestClock_SpeedButtons(t *testing.T) {
	tests := []struct {
		name     string
		pressed  string
		oldSpeed float64
		newSpeed float64
	}{
		{"increase", "increase", 2.0, 4.0},
		{"increase at maximum", "increase", 8.0, 8.0},
		{"increase at minimum", "increase", 1.0, 2.0},
		{"decrease", "decrease", 4.0, 2.0},
		{"decrease at maximum", "decrease", 8.0, 4.0},
		{"decrease at minimum", "decrease", 1.0, 1.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewClock()
			c.CurrentSpeed = tt.oldSpeed

			if tt.pressed == "increase" {
				c.IncreaseSpeed()
			} else {
				c.DecreaseSpeed()
			}

			if c.CurrentSpeed != tt.newSpeed {
				t.Errorf("Expected speed %g, got %g", tt.newSpeed, c.CurrentSpeed)
			}
		})
	}
}

func TestClock_DayPadding(t *testing.T) {
	c := NewClock()

	// Day 15 needs no padding; single digits get a leading space.
	c.TimeElapsed = 14 * 24 * 3600
	if got := c.CurrentDateString(); got != "15 January 1680" {
		t.Errorf("Expected '15 January 1680', got %q", got)
	}
}
