// Package game holds the runtime state the HUD displays and mutates:
// the in-game clock with its speed controls, the player's status, the
// notification queue, and the port and contract records the panels show.
package game

import (
	"fmt"
	"time"
)

// InGameToRealTimeSeconds is how many in-game seconds pass per real second
// at base speed: one real second is one in-game hour.
const InGameToRealTimeSeconds = 3600.0

// Game speed bounds; the speed buttons double and halve within them.
const (
	MinGameSpeed = 1.0
	MaxGameSpeed = 8.0
)

// clockEpoch is the date the campaign starts on.
var clockEpoch = time.Date(1680, time.January, 1, 0, 0, 0, 0, time.UTC)

// Clock tracks in-game time. TimeElapsed accumulates in-game seconds since
// the campaign epoch; CurrentSpeed is the selected multiplier, which pausing
// overrides to zero without losing.
type Clock struct {
	TimeElapsed  float64
	CurrentSpeed float64
	Paused       bool
}

// NewClock returns a clock at the campaign epoch running at base speed.
func NewClock() *Clock {
	return &Clock{CurrentSpeed: MinGameSpeed}
}

// Speed returns the effective time multiplier: zero while paused, the
// selected speed otherwise.
func (c *Clock) Speed() float64 {
	if c.Paused {
		return 0
	}
	return c.CurrentSpeed
}

// Advance moves the clock forward by dt real seconds, scaled by the
// effective speed.
func (c *Clock) Advance(dt float64) {
	c.TimeElapsed += InGameToRealTimeSeconds * dt * c.Speed()
}

// IncreaseSpeed doubles the selected speed, clamped to the maximum.
func (c *Clock) IncreaseSpeed() {
	newSpeed := 2 * c.CurrentSpeed
	if newSpeed > MaxGameSpeed {
		newSpeed = MaxGameSpeed
	}
	c.CurrentSpeed = newSpeed
}

// DecreaseSpeed halves the selected speed, clamped to the minimum.
func (c *Clock) DecreaseSpeed() {
	newSpeed := 0.5 * c.CurrentSpeed
	if newSpeed < MinGameSpeed {
		newSpeed = MinGameSpeed
	}
	c.CurrentSpeed = newSpeed
}

// CurrentDate returns the in-game date.
func (c *Clock) CurrentDate() time.Time {
	return clockEpoch.Add(time.Duration(c.TimeElapsed) * time.Second)
}

// CurrentDateString formats the in-game date for the "current_time" label,
// with the day of month space-padded: " 1 January 1680".
func (c *Clock) CurrentDateString() string {
	d := c.CurrentDate()
	return fmt.Sprintf("%2d %s %d", d.Day(), d.Month(), d.Year())
}
