package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/teamflowhq/teamflow/internal/domain"
	"github.com/teamflowhq/teamflow/internal/grid"
)

var (
	styleHeader = lipgloss.NewStyle().Foreground(lipgloss.Color("#fe8019")).Bold(true)
	styleDim    = lipgloss.NewStyle().Foreground(lipgloss.Color("#928374"))
	styleDone   = lipgloss.NewStyle().Foreground(lipgloss.Color("#8ec07c"))
)

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

// FormatMemberList renders the member table with per-member task
// counts.
func FormatMemberList(members []domain.Member, tasks []domain.Task) string {
	counts := make(map[string]int, len(members))
	for _, t := range tasks {
		counts[t.MemberID]++
	}

	var b strings.Builder
	b.WriteString(styleHeader.Render(fmt.Sprintf("%-10s %-20s %-10s %s", "ID", "NAME", "ROLE", "TASKS")))
	b.WriteByte('\n')
	for _, m := range members {
		b.WriteString(fmt.Sprintf("%-10s %-20s %-10s %d\n", shortID(m.ID), m.Name, m.Role, counts[m.ID]))
	}
	return b.String()
}

// FormatTaskList renders the task table, scheduled slot first.
func FormatTaskList(tasks []domain.Task, members []domain.Member) string {
	names := make(map[string]string, len(members))
	for _, m := range members {
		names[m.ID] = m.Name
	}

	var b strings.Builder
	b.WriteString(styleHeader.Render(fmt.Sprintf("%-10s %-4s %-12s %-20s %-16s %s", "ID", "DAY", "SLOT", "MEMBER", "TASK", "AREA")))
	b.WriteByte('\n')
	for _, t := range tasks {
		name := names[t.MemberID]
		if name == "" {
			name = styleDim.Render("(unknown)")
		}
		slot := fmt.Sprintf("%s-%s", grid.Clock(t.StartTime), grid.Clock(t.End()))
		b.WriteString(fmt.Sprintf("%-10s %-4s %-12s %-20s %-16s %s\n",
			shortID(t.ID), domain.DayName(t.Day), slot, name, t.Name, t.Area))
	}
	return b.String()
}

// FormatTodoList renders the to-do checklist.
func FormatTodoList(todos []domain.Todo, members []domain.Member) string {
	names := make(map[string]string, len(members))
	for _, m := range members {
		names[m.ID] = m.Name
	}

	var b strings.Builder
	for _, td := range todos {
		mark := "[ ]"
		text := td.Text
		if td.Completed {
			mark = styleDone.Render("[x]")
			text = styleDim.Render(text)
		}
		who := "everyone"
		if td.MemberID != "" {
			if n := names[td.MemberID]; n != "" {
				who = n
			} else {
				who = "(unknown)"
			}
		}
		b.WriteString(fmt.Sprintf("%s %-10s %s %s\n", mark, shortID(td.ID), text, styleDim.Render("· "+who)))
	}
	return b.String()
}
