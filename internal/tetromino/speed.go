package tetromino

import "time"

// SpeedConfig defines the gravity curve.
type SpeedConfig struct {
	Level0   time.Duration // tick interval at level 0
	Level9   time.Duration // tick interval at level 9
	SoftDrop time.Duration // tick interval while soft drop is held
	Fixed    bool          // keep Level0 at every level
}

// DefaultSpeed returns the reference curve: 800ms at level 0 down to
// 200ms at level 9, and 50ms while soft dropping.
func DefaultSpeed() SpeedConfig {
	return SpeedConfig{
		Level0:   800 * time.Millisecond,
		Level9:   200 * time.Millisecond,
		SoftDrop: 50 * time.Millisecond,
	}
}

// withDefaults fills every unset interval from DefaultSpeed. A Level9
// slower than Level0 is clamped to Level0.
func (s SpeedConfig) withDefaults() SpeedConfig {
	d := DefaultSpeed()
	if s.Level0 <= 0 {
		s.Level0 = d.Level0
	}
	if s.Level9 <= 0 {
		s.Level9 = d.Level9
	}
	if s.Level9 > s.Level0 {
		s.Level9 = s.Level0
	}
	if s.SoftDrop <= 0 {
		s.SoftDrop = d.SoftDrop
	}
	return s
}

// LevelInterval returns the gravity interval for a level. Levels 0-9
// interpolate linearly between Level0 and Level9; above 9 the interval
// is 9*Level9/level, which keeps shrinking without reaching zero.
func (s SpeedConfig) LevelInterval(level int) time.Duration {
	if level < 0 || s.Fixed {
		level = 0
	}
	if level <= 9 {
		return s.Level0 + time.Duration(level)*(s.Level9-s.Level0)/9
	}
	return 9 * s.Level9 / time.Duration(level)
}

// TickInterval returns the delay before the next tick.
func (s SpeedConfig) TickInterval(level int, quickFall bool) time.Duration {
	if quickFall {
		return s.SoftDrop
	}
	return s.LevelInterval(level)
}
