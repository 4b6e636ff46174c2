package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/teamflowhq/teamflow/internal/domain"
	"github.com/teamflowhq/teamflow/internal/grid"
)

// parseDay accepts a weekday number (1-5) or short name (Mon..Fri).
func parseDay(input string) (int, error) {
	for d := domain.MinDay; d <= domain.MaxDay; d++ {
		if input == fmt.Sprint(d) || strings.EqualFold(input, domain.DayName(d)) {
			return d, nil
		}
	}
	return 0, fmt.Errorf("invalid day %q: want 1-5 or Mon-Fri", input)
}

// parseClock accepts "HH:MM" or a fractional hour ("9.25").
func parseClock(input string) (float64, error) {
	if h, m, ok := strings.Cut(input, ":"); ok {
		var hour, min int
		if _, err := fmt.Sscanf(h+" "+m, "%d %d", &hour, &min); err != nil {
			return 0, fmt.Errorf("invalid time %q: %w", input, err)
		}
		return float64(hour) + float64(min)/60, nil
	}
	var hour float64
	if _, err := fmt.Sscanf(input, "%g", &hour); err != nil {
		return 0, fmt.Errorf("invalid time %q: %w", input, err)
	}
	return hour, nil
}

func newTaskCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "task",
		Short: "Manage scheduled tasks",
	}

	cmd.AddCommand(
		newTaskAddCmd(app),
		newTaskListCmd(app),
		newTaskRemoveCmd(app),
	)

	return cmd
}

func newTaskAddCmd(app *App) *cobra.Command {
	var member, day, start, area, remarks string
	var duration float64

	cmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Schedule a task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := resolveMember(app, member)
			if err != nil {
				return err
			}
			d, err := parseDay(day)
			if err != nil {
				return err
			}
			startTime, err := parseClock(start)
			if err != nil {
				return err
			}

			t, err := app.Store.SaveTask(domain.Task{
				Name:      args[0],
				Area:      area,
				Remarks:   remarks,
				MemberID:  m.ID,
				Day:       d,
				StartTime: startTime,
				Duration:  duration,
			})
			if err != nil {
				return err
			}
			fmt.Printf("Scheduled %q for %s on %s at %s (%.2f h)\n",
				t.Name, m.Name, domain.DayName(t.Day), grid.Clock(t.StartTime), t.Duration)
			return nil
		},
	}

	cmd.Flags().StringVar(&member, "member", "", "Member name or id")
	cmd.Flags().StringVar(&day, "day", "", "Day (1-5 or Mon-Fri)")
	cmd.Flags().StringVar(&start, "start", "", "Start time (HH:MM or fractional hour)")
	cmd.Flags().Float64Var(&duration, "duration", 0, "Duration in hours (default 1)")
	cmd.Flags().StringVar(&area, "area", "", "Area or section")
	cmd.Flags().StringVar(&remarks, "remarks", "", "Remarks or instructions")
	_ = cmd.MarkFlagRequired("member")
	_ = cmd.MarkFlagRequired("day")
	_ = cmd.MarkFlagRequired("start")

	return cmd
}

func newTaskListCmd(app *App) *cobra.Command {
	var member, day string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List scheduled tasks",
		RunE: func(cmd *cobra.Command, args []string) error {
			tasks := app.Store.Tasks()

			if member != "" {
				m, err := resolveMember(app, member)
				if err != nil {
					return err
				}
				filtered := tasks[:0]
				for _, t := range tasks {
					if t.MemberID == m.ID {
						filtered = append(filtered, t)
					}
				}
				tasks = filtered
			}
			if day != "" {
				d, err := parseDay(day)
				if err != nil {
					return err
				}
				filtered := tasks[:0]
				for _, t := range tasks {
					if t.Day == d {
						filtered = append(filtered, t)
					}
				}
				tasks = filtered
			}

			if len(tasks) == 0 {
				fmt.Println("No tasks.")
				return nil
			}
			fmt.Print(FormatTaskList(tasks, app.Store.Members()))
			return nil
		},
	}

	cmd.Flags().StringVar(&member, "member", "", "Filter by member")
	cmd.Flags().StringVar(&day, "day", "", "Filter by day (1-5 or Mon-Fri)")

	return cmd
}

func newTaskRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "rm <task-id>",
		Short: "Delete a scheduled task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, ok := app.Store.Task(args[0])
			if !ok {
				// Try prefix match before giving up.
				var matches []domain.Task
				for _, cand := range app.Store.Tasks() {
					if strings.HasPrefix(cand.ID, args[0]) {
						matches = append(matches, cand)
					}
				}
				switch len(matches) {
				case 1:
					t = matches[0]
				case 0:
					return fmt.Errorf("task not found: %q", args[0])
				default:
					return fmt.Errorf("task id %q is ambiguous (%d matches)", args[0], len(matches))
				}
			}
			app.Store.DeleteTask(t.ID)
			fmt.Printf("Deleted %q\n", t.Name)
			return nil
		},
	}
}
