package engine

import "math"

// XP awarded per tracked item.
const (
	XPPerCheck     = 10
	XPPerWaterDay  = 5
	XPPerMeal      = 5
	XPPerSleepDay  = 10
	XPForMood      = 5
	XPForWeather   = 5
	xpLevelDivisor = 100
)

// XPForLevel returns the XP threshold of level: level² × 100.
func XPForLevel(level int) int {
	if level <= 0 {
		return 0
	}
	return level * level * xpLevelDivisor
}

// LevelForXP returns max(1, floor(sqrt(xp / 100))).
func LevelForXP(xp int) int {
	if xp <= 0 {
		return 1
	}
	l := int(math.Sqrt(float64(xp / xpLevelDivisor)))
	// Guard against float rounding at perfect squares.
	for XPForLevel(l+1) <= xp {
		l++
	}
	for l > 1 && XPForLevel(l) > xp {
		l--
	}
	if l < 1 {
		return 1
	}
	return l
}

// Progress describes how far xp is into its level.
type Progress struct {
	Level int
	XP    int
	Floor int // XP at which Level began
	Next  int // XP needed for Level+1
}

func ProgressFor(xp int) Progress {
	level := LevelForXP(xp)
	floor := XPForLevel(level)
	if xp < floor {
		floor = 0
	}
	return Progress{Level: level, XP: xp, Floor: floor, Next: XPForLevel(level + 1)}
}

// Remaining is the XP still needed to reach the next level.
func (p Progress) Remaining() int {
	if r := p.Next - p.XP; r > 0 {
		return r
	}
	return 0
}

// Fraction is the progress through the current level in [0, 1].
func (p Progress) Fraction() float64 {
	span := p.Next - p.Floor
	if span <= 0 {
		return 0
	}
	f := float64(p.XP-p.Floor) / float64(span)
	return math.Max(0, math.Min(1, f))
}
