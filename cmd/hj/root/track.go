package root

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"habitjournal/internal/engine"
	"habitjournal/internal/journal"
	"habitjournal/internal/ui"
)

func parseOnOff(s string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "on", "yes", "y", "true", "1":
		return true, nil
	case "off", "no", "n", "false", "0":
		return false, nil
	}
	return false, journal.ParseError{Kind: "on/off", Input: s}
}

// trackCmd builds a subcommand whose RunE mutates the current week and
// prints a confirmation plus XP.
func trackCmd(use, short string, args cobra.PositionalArgs, fn func(ctx context.Context, svc *engine.Service, args []string) (string, engine.Result, error)) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  args,
		RunE: func(cmd *cobra.Command, argv []string) error {
			return runOnService(cmd, func(ctx context.Context, svc *engine.Service) error {
				msg, res, err := fn(ctx, svc, argv)
				if err != nil {
					return err
				}
				out := cmd.OutOrStdout()
				fmt.Fprintln(out, ui.Good.Render(ui.IconDone+" "+msg))
				printXP(out, res)
				return nil
			})
		},
	}
}

func newTrackCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "track",
		Short: "Log water, sleep, meals, mood and more for the current week",
	}

	water := trackCmd("water <day> [on|off]", "Toggle or set the water glass for a day", cobra.RangeArgs(1, 2),
		func(ctx context.Context, svc *engine.Service, args []string) (string, engine.Result, error) {
			day, err := journal.ParseDay(args[0])
			if err != nil {
				return "", engine.Result{}, err
			}
			var res engine.Result
			if len(args) == 2 {
				on, perr := parseOnOff(args[1])
				if perr != nil {
					return "", engine.Result{}, perr
				}
				res, err = svc.SetWater(ctx, day, on)
			} else {
				res, err = svc.ToggleWater(ctx, day)
			}
			if err != nil {
				return "", res, err
			}
			rec, err := svc.Current()
			if err != nil {
				return "", res, err
			}
			return fmt.Sprintf("%s %s water %s", ui.IconWater, journal.DayNames[day], ui.Bool(rec.Trackers.Water[day])), res, nil
		})

	var (
		wake, bed, wakeM, bedM, hours string
		hoursSet                      bool
	)
	sleep := trackCmd("sleep <day>", "Log bed and wake times, or hours directly", cobra.ExactArgs(1),
		func(ctx context.Context, svc *engine.Service, args []string) (string, engine.Result, error) {
			day, err := journal.ParseDay(args[0])
			if err != nil {
				return "", engine.Result{}, err
			}
			if hoursSet {
				res, err := svc.SetSleepHours(ctx, day, hours)
				return fmt.Sprintf("%s %s sleep %s h", ui.IconSleep, journal.DayNames[day], hours), res, err
			}
			rec, err := svc.Current()
			if err != nil {
				return "", engine.Result{}, err
			}
			cur := rec.Trackers.Sleep[day]
			if wake == "" {
				wake = cur.Wake
			}
			if bed == "" {
				bed = cur.Bed
			}
			wm, err := journal.ParseMeridiem(wakeM, cur.WakeMeridiem)
			if err != nil {
				return "", engine.Result{}, err
			}
			bm, err := journal.ParseMeridiem(bedM, cur.BedMeridiem)
			if err != nil {
				return "", engine.Result{}, err
			}
			entry, res, err := svc.SetSleepTimes(ctx, day, wake, wm, bed, bm)
			if err != nil {
				return "", res, err
			}
			h := entry.Hours
			if h == "" {
				h = "?"
			}
			return fmt.Sprintf("%s %s bed %s %s, wake %s %s: %s h", ui.IconSleep, journal.DayNames[day],
				entry.Bed, entry.BedMeridiem, entry.Wake, entry.WakeMeridiem, h), res, nil
		})
	sleep.Flags().StringVar(&wake, "wake", "", "Wake time, e.g. 7:00")
	sleep.Flags().StringVar(&wakeM, "wake-meridiem", "", "Wake meridiem, AM or PM")
	sleep.Flags().StringVar(&bed, "bed", "", "Bed time, e.g. 11:30")
	sleep.Flags().StringVar(&bedM, "bed-meridiem", "", "Bed meridiem, AM or PM")
	sleep.Flags().StringVar(&hours, "hours", "", "Hours slept; overrides the times (empty clears)")
	sleep.PreRun = func(cmd *cobra.Command, args []string) {
		hoursSet = cmd.Flags().Changed("hours")
	}

	food := trackCmd("food <meal> [on|off]", "Log breakfast, lunch, dinner or snack", cobra.RangeArgs(1, 2),
		func(ctx context.Context, svc *engine.Service, args []string) (string, engine.Result, error) {
			on := true
			if len(args) == 2 {
				var err error
				if on, err = parseOnOff(args[1]); err != nil {
					return "", engine.Result{}, err
				}
			}
			res, err := svc.SetFood(ctx, args[0], on)
			return fmt.Sprintf("%s %s %s", ui.IconFood, strings.ToLower(args[0]), ui.Bool(on)), res, err
		})

	mood := trackCmd("mood <rad|good|meh|bad|awful|none>", "Set the mood of the week", cobra.ExactArgs(1),
		func(ctx context.Context, svc *engine.Service, args []string) (string, engine.Result, error) {
			m, err := journal.ParseMood(args[0])
			if err != nil {
				return "", engine.Result{}, err
			}
			res, err := svc.SetMood(ctx, m)
			return fmt.Sprintf("Mood %s %s", ui.MoodIcon(m), m), res, err
		})

	weather := trackCmd("weather [text|none]", "Set the weather (none or no text clears it)", cobra.ArbitraryArgs,
		func(ctx context.Context, svc *engine.Service, args []string) (string, engine.Result, error) {
			text := strings.Join(args, " ")
			if strings.EqualFold(strings.TrimSpace(text), "none") {
				text = ""
			}
			res, err := svc.SetWeather(ctx, text)
			return "Weather " + orDash(strings.TrimSpace(text)), res, err
		})

	event := trackCmd("event [text]", "Set the highlight of the week", cobra.ArbitraryArgs,
		func(ctx context.Context, svc *engine.Service, args []string) (string, engine.Result, error) {
			text := strings.Join(args, " ")
			res, err := svc.SetUniqueEvent(ctx, text)
			return "Highlight " + orDash(strings.TrimSpace(text)), res, err
		})

	var fit journal.Fitness
	fitness := trackCmd("fitness", "Set the fitness activity (empty flags clear it)", cobra.NoArgs,
		func(ctx context.Context, svc *engine.Service, args []string) (string, engine.Result, error) {
			res, err := svc.SetFitness(ctx, fit)
			return "Fitness " + orDash(strings.TrimSpace(fit.Type+" "+fit.Duration)), res, err
		})
	fitness.Flags().StringVar(&fit.Type, "type", "", "Activity, e.g. run")
	fitness.Flags().StringVar(&fit.Duration, "duration", "", "Duration, e.g. 30")

	cmd.AddCommand(water, sleep, food, mood, weather, event, fitness, newApptCmd())
	return cmd
}

func newApptCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "appt",
		Aliases: []string{"appointment"},
		Short:   "Manage appointments",
	}

	add := trackCmd("add <time> <event>", "Add an appointment", cobra.MinimumNArgs(2),
		func(ctx context.Context, svc *engine.Service, args []string) (string, engine.Result, error) {
			res, err := svc.AddAppointment(ctx, args[0], strings.Join(args[1:], " "))
			return "Appointment added", res, err
		})

	edit := trackCmd("edit <n> <time> <event>", "Change appointment n", cobra.MinimumNArgs(3),
		func(ctx context.Context, svc *engine.Service, args []string) (string, engine.Result, error) {
			i, err := parseIndex("appointment", args[0])
			if err != nil {
				return "", engine.Result{}, err
			}
			res, err := svc.UpdateAppointment(ctx, i, args[1], strings.Join(args[2:], " "))
			return fmt.Sprintf("Appointment %d updated", i+1), res, err
		})

	rm := trackCmd("rm <n>", "Remove appointment n", cobra.ExactArgs(1),
		func(ctx context.Context, svc *engine.Service, args []string) (string, engine.Result, error) {
			i, err := parseIndex("appointment", args[0])
			if err != nil {
				return "", engine.Result{}, err
			}
			res, err := svc.RemoveAppointment(ctx, i)
			return fmt.Sprintf("Appointment %d removed", i+1), res, err
		})

	cmd.AddCommand(add, edit, rm)
	return cmd
}
