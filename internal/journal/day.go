package journal

import (
	"fmt"
	"strconv"
	"strings"
)

// DayNames are the short weekday labels, Monday first.
var DayNames = [Days]string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}

// ParseDay resolves a weekday name ("mon", "Tuesday") or a 1-based number
// (1 = Monday) to a 0-based slot index.
func ParseDay(input string) (int, error) {
	s := strings.TrimSpace(strings.ToLower(input))
	if n, err := strconv.Atoi(s); err == nil {
		if n < 1 || n > Days {
			return 0, ParseError{Kind: "day", Input: input}
		}
		return n - 1, nil
	}
	if len(s) >= 2 {
		for i, name := range []string{"monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday"} {
			if strings.HasPrefix(name, s) {
				return i, nil
			}
		}
	}
	return 0, ParseError{Kind: "day", Input: input}
}

func checkDay(day int) error {
	if day < 0 || day >= Days {
		return fmt.Errorf("day %d out of range (0-%d)", day, Days-1)
	}
	return nil
}
