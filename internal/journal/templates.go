package journal

import (
	"sort"
	"strings"
)

// Templates are canned task lists that can be appended to a week.
var Templates = map[string][]string{
	"Morning Routine": {"Wake up early", "Drink water", "Stretch / Exercise", "Healthy breakfast", "Journal / Gratitude"},
	"Fitness Week":    {"Cardio session", "Strength training", "Yoga / Flexibility", "Walk 10k steps", "Meal prep"},
	"Study Plan":      {"Read 30 min", "Review notes", "Practice problems", "Flashcards", "Summarize lesson"},
	"Self Care":       {"Skincare routine", "Meditate 10 min", "Social time", "No screens 1hr before bed", "Creative hobby"},
}

// TemplateNames returns the template names sorted alphabetically.
func TemplateNames() []string {
	names := make([]string, 0, len(Templates))
	for name := range Templates {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// LookupTemplate matches name case-insensitively.
func LookupTemplate(name string) (string, []string, bool) {
	want := strings.TrimSpace(strings.ToLower(name))
	for n, tasks := range Templates {
		if strings.ToLower(n) == want {
			return n, tasks, true
		}
	}
	return "", nil, false
}

// ApplyTemplate appends the template's tasks to rec.
func ApplyTemplate(rec *WeekRecord, name string) error {
	_, tasks, ok := LookupTemplate(name)
	if !ok {
		return ParseError{Kind: "template", Input: name}
	}
	for _, text := range tasks {
		rec.Tasks = append(rec.Tasks, NewTask(text))
	}
	return nil
}
