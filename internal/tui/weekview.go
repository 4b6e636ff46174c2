package tui

import (
	"fmt"
	"strings"

	"github.com/teamflowhq/teamflow/internal/domain"
	"github.com/teamflowhq/teamflow/internal/grid"
)

const (
	nameColWidth = 20
	minDayWidth  = 14
)

// viewWeek renders the members-by-days overview: each cell lists the
// member's tasks for that day as chips.
func (m Model) viewWeek() string {
	members := m.visibleMembers()
	dayWidth := minDayWidth
	if m.width > 0 {
		if w := (m.width - nameColWidth) / 5; w > dayWidth {
			dayWidth = w
		}
	}

	var b strings.Builder
	b.WriteString(styleTitle.Render(m.store.Engagement().Title) + "\n")

	b.WriteString(styleHeader.Render(pad("Team Member", nameColWidth)))
	for d := domain.MinDay; d <= domain.MaxDay; d++ {
		b.WriteString(styleHeader.Render(pad(domain.DayName(d), dayWidth)))
	}
	b.WriteByte('\n')

	for _, mem := range members {
		// Row height is the tallest day cell for this member.
		cells := make([][]string, 5)
		rows := 1
		for d := domain.MinDay; d <= domain.MaxDay; d++ {
			for _, t := range m.store.TasksFor(mem.ID, d) {
				chip := fmt.Sprintf("%s %s", grid.Clock(t.StartTime), t.Name)
				cells[d-1] = append(cells[d-1], chip)
			}
			if len(cells[d-1]) > rows {
				rows = len(cells[d-1])
			}
		}

		for r := 0; r < rows; r++ {
			if r == 0 {
				b.WriteString(pad(mem.Name, nameColWidth))
			} else {
				b.WriteString(strings.Repeat(" ", nameColWidth))
			}
			for d := 0; d < 5; d++ {
				if r < len(cells[d]) {
					b.WriteString(styleChip.Render(pad(cells[d][r], dayWidth)))
				} else {
					b.WriteString(strings.Repeat(" ", dayWidth))
				}
			}
			b.WriteByte('\n')
		}
	}

	b.WriteString(styleDim.Render("1-5 open day · n new task · m add member · t todos · f filter · E engagement · q quit"))
	return b.String()
}
