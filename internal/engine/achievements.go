package engine

import (
	"habitjournal/internal/journal"
)

// Achievement represents a badge the user can earn.
type Achievement struct {
	ID          string
	Name        string
	Description string
	Icon        string
	Earned      bool
}

// AchievementChecker calculates which achievements the journal has earned.
type AchievementChecker struct {
	state *journal.AppState

	checks        int
	nightsLogged  int
	fullWaterWeek bool
	allMealsWeek  bool
	focusSessions int
	usedTemplate  bool
}

func NewAchievementChecker(st *journal.AppState) *AchievementChecker {
	c := &AchievementChecker{state: st}
	for _, rec := range st.Weeks {
		if rec == nil {
			continue
		}
		c.checks += rec.CheckCount()
		c.focusSessions += rec.Trackers.FocusSessions

		water := 0
		for _, filled := range rec.Trackers.Water {
			if filled {
				water++
			}
		}
		if water == journal.Days {
			c.fullWaterWeek = true
		}
		if rec.Trackers.Food.Count() == len(journal.Meals) {
			c.allMealsWeek = true
		}
		for _, night := range rec.Trackers.Sleep {
			if night.Logged() {
				c.nightsLogged++
			}
		}
		if containsTemplate(rec) {
			c.usedTemplate = true
		}
	}
	return c
}

// containsTemplate reports whether every task of some template is in rec.
func containsTemplate(rec *journal.WeekRecord) bool {
	have := map[string]bool{}
	for _, t := range rec.Tasks {
		have[t.Text] = true
	}
	for _, tasks := range journal.Templates {
		all := true
		for _, text := range tasks {
			if !have[text] {
				all = false
				break
			}
		}
		if all {
			return true
		}
	}
	return false
}

// GetAchievements returns all achievements with their earned status.
func (c *AchievementChecker) GetAchievements() []Achievement {
	return []Achievement{
		// Level milestones
		c.levelAchievement("level_up", "Level Up", "Reach level 2", "🌱", 2),
		c.levelAchievement("growing", "Growing", "Reach level 3", "🌿", 3),
		c.levelAchievement("flourishing", "Flourishing", "Reach level 5", "🌳", 5),
		c.levelAchievement("devoted", "Devoted", "Reach level 10", "⭐", 10),

		// Streaks
		c.streakAchievement("on_a_roll", "On a Roll", "Check tasks 2 weeks running", "🔥", 2),
		c.streakAchievement("unstoppable", "Unstoppable", "Check tasks 4 weeks running", "⚡", 4),
		c.streakAchievement("seasoned", "Seasoned", "Check tasks 12 weeks running", "🏆", 12),

		// Task checks
		c.countAchievement("first_check", "First Check", "Check off a task day", "✓", c.checks, 1),
		c.countAchievement("committed", "Committed", "Check off 50 task days", "📋", c.checks, 50),
		c.countAchievement("habitual", "Habitual", "Check off 250 task days", "🏅", c.checks, 250),

		// Trackers
		c.countAchievement("well_rested", "Well Rested", "Log 7 nights of sleep", "😴", c.nightsLogged, 7),
		c.flagAchievement("hydrated", "Hydrated", "Drink water every day of a week", "💧", c.fullWaterWeek),
		c.flagAchievement("well_fed", "Well Fed", "Log all four meals in a week", "🍽", c.allMealsWeek),
		c.countAchievement("focused", "Focused", "Finish a focus session", "🍅", c.focusSessions, 1),
		c.flagAchievement("planner", "Planner", "Plan a week from a template", "📜", c.usedTemplate),
	}
}

// CountEarned returns how many achievements have been earned.
func (c *AchievementChecker) CountEarned() int {
	count := 0
	for _, a := range c.GetAchievements() {
		if a.Earned {
			count++
		}
	}
	return count
}

// CountTotal returns total number of achievements.
func (c *AchievementChecker) CountTotal() int {
	return len(c.GetAchievements())
}

func (c *AchievementChecker) levelAchievement(id, name, desc, icon string, level int) Achievement {
	earned := LevelForXP(c.state.Profile.XP) >= level
	return Achievement{ID: id, Name: name, Description: desc, Icon: icon, Earned: earned}
}

func (c *AchievementChecker) streakAchievement(id, name, desc, icon string, weeks int) Achievement {
	earned := c.state.Profile.LongestStreak >= weeks
	return Achievement{ID: id, Name: name, Description: desc, Icon: icon, Earned: earned}
}

func (c *AchievementChecker) countAchievement(id, name, desc, icon string, have, want int) Achievement {
	return Achievement{ID: id, Name: name, Description: desc, Icon: icon, Earned: have >= want}
}

func (c *AchievementChecker) flagAchievement(id, name, desc, icon string, earned bool) Achievement {
	return Achievement{ID: id, Name: name, Description: desc, Icon: icon, Earned: earned}
}
