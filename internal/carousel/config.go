package carousel

import "time"

// Default timings.
const (
	DefaultAutoAdvance       = 4 * time.Second
	DefaultAutoAdvanceNarrow = 2 * time.Second
	DefaultCooldown          = 5 * time.Second
	DefaultSettleDelay       = 150 * time.Millisecond
	DefaultSnapDuration      = 300 * time.Millisecond
	DefaultWheelStep         = 4
)

// Config holds the carousel timings. Zero fields take the defaults.
type Config struct {
	AutoAdvance       time.Duration // period on wide viewports
	AutoAdvanceNarrow time.Duration // period on narrow viewports
	Cooldown          time.Duration // auto-advance suppression after an interaction
	SettleDelay       time.Duration // quiet time after the last wheel event before snapping
	SnapDuration      time.Duration // length of an animated snap
	WheelStep         int           // columns moved per wheel notch
}

// DefaultConfig returns the default timings.
func DefaultConfig() Config {
	return Config{
		AutoAdvance:       DefaultAutoAdvance,
		AutoAdvanceNarrow: DefaultAutoAdvanceNarrow,
		Cooldown:          DefaultCooldown,
		SettleDelay:       DefaultSettleDelay,
		SnapDuration:      DefaultSnapDuration,
		WheelStep:         DefaultWheelStep,
	}
}

func (c Config) withDefaults() Config {
	d := DefaultConfig()
	if c.AutoAdvance <= 0 {
		c.AutoAdvance = d.AutoAdvance
	}
	if c.AutoAdvanceNarrow <= 0 {
		c.AutoAdvanceNarrow = d.AutoAdvanceNarrow
	}
	if c.Cooldown <= 0 {
		c.Cooldown = d.Cooldown
	}
	if c.SettleDelay <= 0 {
		c.SettleDelay = d.SettleDelay
	}
	if c.SnapDuration <= 0 {
		c.SnapDuration = d.SnapDuration
	}
	if c.WheelStep <= 0 {
		c.WheelStep = d.WheelStep
	}
	return c
}
