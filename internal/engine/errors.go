package engine

import "fmt"

// GateError indicates a feature is locked behind a required level.
type GateError struct {
	Feature       string
	RequiredLevel int
	CurrentLevel  int
}

func (e GateError) Error() string {
	if e.RequiredLevel <= 0 {
		return fmt.Sprintf("%s is locked", e.Feature)
	}
	return fmt.Sprintf("%s unlocks at level %d (currently %d)", e.Feature, e.RequiredLevel, e.CurrentLevel)
}
