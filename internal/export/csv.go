// Package export renders the task collection as CSV. Two layouts are
// produced: the full planner export and a compact variant kept for
// consumers of the earlier MVP format. Every field is quoted;
// embedded quotes are doubled so free-text fields cannot break the
// row structure.
package export

import (
	"fmt"
	"strings"
	"time"

	"github.com/teamflowhq/teamflow/internal/domain"
	"github.com/teamflowhq/teamflow/internal/grid"
)

// unknownMember is rendered when a task references a member that no
// longer exists.
const unknownMember = "Unknown"

func quote(field string) string {
	return `"` + strings.ReplaceAll(field, `"`, `""`) + `"`
}

func row(fields ...string) string {
	quoted := make([]string, len(fields))
	for i, f := range fields {
		quoted[i] = quote(f)
	}
	return strings.Join(quoted, ",")
}

func memberLookup(members []domain.Member) map[string]domain.Member {
	byID := make(map[string]domain.Member, len(members))
	for _, m := range members {
		byID[m.ID] = m
	}
	return byID
}

// CSV renders the full export: one quoted row per task under the
// header Member,Role,Day,Start Time,Duration (hrs),Task,Area,Remarks.
// Output is newline-terminated.
func CSV(s domain.Snapshot) string {
	byID := memberLookup(s.Members)

	var b strings.Builder
	b.WriteString("Member,Role,Day,Start Time,Duration (hrs),Task,Area,Remarks\n")
	for _, t := range s.Tasks {
		name, role := unknownMember, unknownMember
		if m, ok := byID[t.MemberID]; ok {
			name, role = m.Name, m.Role
		}
		b.WriteString(row(
			name,
			role,
			domain.DayName(t.Day),
			grid.Clock(t.StartTime),
			fmt.Sprintf("%.2f", t.Duration),
			t.Name,
			t.Area,
			t.Remarks,
		))
		b.WriteByte('\n')
	}
	return b.String()
}

// CompactCSV renders the earlier MVP layout: Task,Team Member,Role,
// Day,Start Time,Duration (hrs),Phase. The Phase column carries the
// task's area; a dangling member reference leaves its cells empty.
func CompactCSV(s domain.Snapshot) string {
	byID := memberLookup(s.Members)

	var b strings.Builder
	b.WriteString("Task,Team Member,Role,Day,Start Time,Duration (hrs),Phase\n")
	for _, t := range s.Tasks {
		var name, role string
		if m, ok := byID[t.MemberID]; ok {
			name, role = m.Name, m.Role
		}
		b.WriteString(row(
			t.Name,
			name,
			role,
			domain.DayName(t.Day),
			grid.Clock(t.StartTime),
			fmt.Sprintf("%.2f", t.Duration),
			t.Area,
		))
		b.WriteByte('\n')
	}
	return b.String()
}

// Filename returns the dated download name for the full export,
// teamflow_plan_YYYY-MM-DD.csv.
func Filename(now time.Time) string {
	return fmt.Sprintf("teamflow_plan_%s.csv", now.Format("2006-01-02"))
}

// CompactFilename returns the dated name for the compact export,
// teamflow-tasks-YYYY-MM-DD.csv.
func CompactFilename(now time.Time) string {
	return fmt.Sprintf("teamflow-tasks-%s.csv", now.Format("2006-01-02"))
}
