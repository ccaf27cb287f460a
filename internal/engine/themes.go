package engine

import (
	"fmt"
	"sort"

	"habitjournal/internal/journal"
)

// DefaultTheme is always available.
const DefaultTheme = "classic"

// ThemeUnlockLevels maps each unlockable theme to the level that earns it.
var ThemeUnlockLevels = map[string]int{
	"midnight": 2,
	"forest":   3,
	"sakura":   5,
	"retro":    8,
	"gilded":   10,
}

// ThemeNames returns every theme, default first, then by unlock level.
func ThemeNames() []string {
	names := make([]string, 0, len(ThemeUnlockLevels)+1)
	for name := range ThemeUnlockLevels {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		li, lj := ThemeUnlockLevels[names[i]], ThemeUnlockLevels[names[j]]
		if li != lj {
			return li < lj
		}
		return names[i] < names[j]
	})
	return append([]string{DefaultTheme}, names...)
}

// ThemesForLevel returns the themes earned at level, in unlock order.
func ThemesForLevel(level int) []string {
	var out []string
	for _, name := range ThemeNames()[1:] {
		if level >= ThemeUnlockLevels[name] {
			out = append(out, name)
		}
	}
	return out
}

// unlockThemes adds every theme earned at level to p and returns the ones
// that were not there before. Themes are never removed.
func unlockThemes(p *journal.Profile, level int) []string {
	var added []string
	for _, name := range ThemesForLevel(level) {
		if !p.HasTheme(name) {
			p.UnlockedThemes = append(p.UnlockedThemes, name)
			added = append(added, name)
		}
	}
	if len(added) > 0 {
		sort.Strings(p.UnlockedThemes)
	}
	return added
}

// CanUseTheme returns a GateError when name is still locked for p.
func CanUseTheme(p journal.Profile, name string) error {
	if name == DefaultTheme || name == "" {
		return nil
	}
	req, ok := ThemeUnlockLevels[name]
	if !ok {
		return fmt.Errorf("unknown theme %q", name)
	}
	if !p.HasTheme(name) {
		return GateError{Feature: "theme " + name, RequiredLevel: req, CurrentLevel: p.Level}
	}
	return nil
}
