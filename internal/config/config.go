// Package config reads the habitjournal rc file.
package config

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// PathEnv names an explicit config file.
const PathEnv = "HJ_CONFIG"

type Config struct {
	// Storage
	DataPath string
	Backend  string

	// Logging
	LogLevel string

	// Focus timer
	WorkDuration  time.Duration
	BreakDuration time.Duration
	FocusBonusXP  int

	// Display
	StatsWeeks int
	Theme      string
	Watch      bool

	// Board key bindings, action -> key
	KeyBindings map[string]string

	// Path of the file the values came from; empty when only defaults apply.
	Source string
}

func DefaultConfig() *Config {
	return &Config{
		DataPath:      "",
		Backend:       "sqlite",
		LogLevel:      "info",
		WorkDuration:  25 * time.Minute,
		BreakDuration: 5 * time.Minute,
		FocusBonusXP:  0,
		StatsWeeks:    8,
		Theme:         "classic",
		Watch:         true,
		KeyBindings: map[string]string{
			"quit":        "q",
			"cycle":       " ",
			"water":       "w",
			"prev_week":   "[",
			"next_week":   "]",
			"today":       "t",
			"focus":       "p",
			"focus_reset": "R",
			"reload":      "r",
		},
	}
}

// SearchPaths lists candidate config files in priority order.
func SearchPaths() []string {
	home, _ := os.UserHomeDir()
	paths := []string{os.Getenv(PathEnv)}
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		paths = append(paths, filepath.Join(xdg, "habitjournal", "config"))
	}
	if home != "" {
		paths = append(paths,
			filepath.Join(home, ".config", "habitjournal", "config"),
			filepath.Join(home, ".habitjournalrc"),
		)
	}
	return paths
}

// LoadConfig reads the first config file that exists. When explicit is set
// only that file is tried and it must exist.
func LoadConfig(explicit string) (*Config, error) {
	cfg := DefaultConfig()

	if explicit != "" {
		if err := cfg.loadFromFile(explicit); err != nil {
			return nil, fmt.Errorf("error loading config from %s: %w", explicit, err)
		}
		return cfg, nil
	}

	for _, path := range SearchPaths() {
		if path == "" {
			continue
		}
		if _, err := os.Stat(path); err == nil {
			if err := cfg.loadFromFile(path); err != nil {
				return nil, fmt.Errorf("error loading config from %s: %w", path, err)
			}
			break
		}
	}
	return cfg, nil
}

func (c *Config) loadFromFile(path string) error {
	file, err := os.Open(path)
	if err != nil {
		return err
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if err := c.parseLine(line); err != nil {
			return fmt.Errorf("line %d: %w", lineNum, err)
		}
	}
	if err := scanner.Err(); err != nil {
		return err
	}
	c.Source = path
	return nil
}

var (
	setRe  = regexp.MustCompile(`^set\s+(\w+)\s+(.+)$`)
	bindRe = regexp.MustCompile(`^bind\s+(\S+)\s+(\w+)$`)
)

func (c *Config) parseLine(line string) error {
	if m := setRe.FindStringSubmatch(line); m != nil {
		return c.setVariable(m[1], m[2])
	}
	// bind key action; "space" stands for the space bar.
	if m := bindRe.FindStringSubmatch(line); m != nil {
		if _, ok := c.KeyBindings[m[2]]; !ok {
			return fmt.Errorf("unknown action: %s", m[2])
		}
		key := m[1]
		if key == "space" {
			key = " "
		}
		c.KeyBindings[m[2]] = key
		return nil
	}
	return fmt.Errorf("unknown config line: %s", line)
}

func (c *Config) setVariable(name, value string) error {
	value = strings.Trim(strings.TrimSpace(value), `"'`)

	switch name {
	case "data_path":
		c.DataPath = value

	case "backend":
		switch v := strings.ToLower(value); v {
		case "sqlite", "file", "memory":
			c.Backend = v
		default:
			return fmt.Errorf("invalid backend: %s", value)
		}

	case "log_level":
		switch v := strings.ToLower(value); v {
		case "trace", "debug", "info", "warn", "error", "disabled":
			c.LogLevel = v
		default:
			return fmt.Errorf("invalid log_level: %s", value)
		}

	case "work_duration", "break_duration":
		d, err := parseMinutes(value)
		if err != nil {
			return fmt.Errorf("invalid %s: %w", name, err)
		}
		if name == "work_duration" {
			c.WorkDuration = d
		} else {
			c.BreakDuration = d
		}

	case "focus_bonus_xp":
		n, err := strconv.Atoi(value)
		if err != nil || n < 0 {
			return fmt.Errorf("invalid focus_bonus_xp: %s", value)
		}
		c.FocusBonusXP = n

	case "stats_weeks":
		n, err := strconv.Atoi(value)
		if err != nil || n < 1 {
			return fmt.Errorf("invalid stats_weeks: %s", value)
		}
		c.StatsWeeks = n

	case "theme":
		c.Theme = strings.ToLower(value)

	case "watch":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("invalid watch: %s", value)
		}
		c.Watch = b

	default:
		return fmt.Errorf("unknown variable: %s", name)
	}
	return nil
}

// parseMinutes accepts a Go duration ("25m", "1h30m") or bare minutes ("25").
func parseMinutes(s string) (time.Duration, error) {
	if n, err := strconv.Atoi(s); err == nil {
		if n <= 0 {
			return 0, fmt.Errorf("must be positive: %s", s)
		}
		return time.Duration(n) * time.Minute, nil
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		return 0, err
	}
	if d <= 0 {
		return 0, fmt.Errorf("must be positive: %s", s)
	}
	return d, nil
}
