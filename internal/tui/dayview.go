package tui

import (
	"fmt"
	"sort"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/teamflowhq/teamflow/internal/domain"
	"github.com/teamflowhq/teamflow/internal/drag"
	"github.com/teamflowhq/teamflow/internal/grid"
	"github.com/teamflowhq/teamflow/internal/layout"
)

const (
	gutterWidth = 7 // "09:00 │"
	headerRows  = 2 // title line + member header line
	minColWidth = 16
)

// dayFrame captures the day grid's screen metrics for one render
// pass. Update recomputes it for mouse hit-testing so the hit logic
// and the renderer can never disagree.
type dayFrame struct {
	members  []domain.Member
	colWidth int
	rows     int // time rows, one per snap slot
}

func (m Model) frame() dayFrame {
	members := m.visibleMembers()
	colWidth := minColWidth
	if len(members) > 0 && m.width > 0 {
		if w := (m.width - gutterWidth) / len(members); w > colWidth {
			colWidth = w
		}
	}
	return dayFrame{
		members:  members,
		colWidth: colWidth,
		rows:     int(m.geo.EndHour-m.geo.StartHour) * m.geo.SlotsPerHour(),
	}
}

func (m Model) visibleMembers() []domain.Member {
	members := m.store.Members()
	if m.memberID == "" {
		return members
	}
	for _, mem := range members {
		if mem.ID == m.memberID {
			return []domain.Member{mem}
		}
	}
	return members
}

// pxPerRow converts terminal rows to the geometry's pixel space: one
// row per snap step.
func (m Model) pxPerRow() float64 {
	return m.geo.PixelsPerHour / float64(m.geo.SlotsPerHour())
}

// ── mouse ────────────────────────────────────────────────────────────

func (m Model) updateMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	pointerY := float64(msg.Y) * m.pxPerRow()

	switch msg.Action {
	case tea.MouseActionPress:
		taskID, mode, ok := m.hitTest(msg.X, msg.Y)
		if !ok {
			return m, nil
		}
		if msg.Button == tea.MouseButtonRight {
			if t, found := m.store.Task(taskID); found {
				return m.openTaskForm(&t)
			}
			return m, nil
		}
		if msg.Button != tea.MouseButtonLeft {
			return m, nil
		}
		m.drag.Begin(taskID, mode, pointerY)
		if t, found := m.store.Task(taskID); found {
			m.statusLine = fmt.Sprintf("%s  %s-%s", t.Name, grid.Clock(t.StartTime), grid.Clock(t.End()))
		}

	case tea.MouseActionMotion:
		m.drag.Move(pointerY)
		if id, ok := m.drag.Dragging(); ok {
			if t, found := m.store.Task(id); found {
				m.statusLine = fmt.Sprintf("%s  %s-%s", t.Name, grid.Clock(t.StartTime), grid.Clock(t.End()))
			}
		}

	case tea.MouseActionRelease:
		m.drag.End(pointerY)
		m.statusLine = ""
	}
	return m, nil
}

// hitTest locates the task under a screen cell and whether the cell
// is its bottom edge (the resize handle).
func (m Model) hitTest(x, y int) (taskID string, mode drag.Mode, ok bool) {
	f := m.frame()
	row := y - headerRows
	col := x - gutterWidth
	if row < 0 || row >= f.rows || col < 0 || len(f.members) == 0 {
		return "", 0, false
	}
	memberIdx := col / f.colWidth
	if memberIdx >= len(f.members) {
		return "", 0, false
	}
	subX := col % f.colWidth

	tasks := m.store.TasksFor(f.members[memberIdx].ID, m.day)
	placements := layout.Assign(tasks)

	slots := float64(m.geo.SlotsPerHour())
	hour := m.geo.StartHour + float64(row)/slots
	for _, t := range tasks {
		p := placements[t.ID]
		lo := int(p.Left() * float64(f.colWidth))
		hi := lo + int(p.Width()*float64(f.colWidth))
		if subX < lo || subX >= hi {
			continue
		}
		if hour < t.StartTime || hour >= t.End() {
			continue
		}
		// The task's last occupied row acts as the resize handle.
		lastRow := int((t.End()-m.geo.StartHour)*slots) - 1
		if row == lastRow {
			return t.ID, drag.Resize, true
		}
		return t.ID, drag.Move, true
	}
	return "", 0, false
}

// ── render ───────────────────────────────────────────────────────────

func (m Model) viewDay() string {
	f := m.frame()
	var b strings.Builder

	title := fmt.Sprintf("%s — %s", domain.DayName(m.day), m.store.Engagement().Title)
	help := "1-5 day · n new task · m member · t todos · f filter · esc week · q quit"
	b.WriteString(styleTitle.Render(title) + "  " + styleStatus.Render(m.statusLine) + "\n")

	b.WriteString(strings.Repeat(" ", gutterWidth))
	for _, mem := range f.members {
		b.WriteString(styleHeader.Render(pad(mem.Name, f.colWidth)))
	}
	b.WriteByte('\n')

	dragID, _ := m.drag.Dragging()

	type lane struct {
		tasks      []domain.Task
		placements map[string]layout.Placement
	}
	lanes := make([]lane, len(f.members))
	for i, mem := range f.members {
		tasks := m.store.TasksFor(mem.ID, m.day)
		lanes[i] = lane{tasks: tasks, placements: layout.Assign(tasks)}
	}

	for row := 0; row < f.rows; row++ {
		hour := m.geo.StartHour + float64(row)/float64(m.geo.SlotsPerHour())
		if row%m.geo.SlotsPerHour() == 0 {
			b.WriteString(styleGutter.Render(fmt.Sprintf("%s │", grid.Clock(hour))))
		} else {
			b.WriteString(styleGutter.Render(strings.Repeat(" ", gutterWidth-1) + "│"))
		}
		for _, ln := range lanes {
			b.WriteString(m.renderCell(ln.tasks, ln.placements, hour, row, f.colWidth, dragID))
		}
		b.WriteByte('\n')
	}

	b.WriteString(styleDim.Render(help))
	return b.String()
}

// renderCell paints one member column at one time row: each task
// covering the row fills its layout sub-column.
func (m Model) renderCell(tasks []domain.Task, placements map[string]layout.Placement, hour float64, row, colWidth int, dragID string) string {
	cell := []rune(strings.Repeat(" ", colWidth))
	type span struct {
		lo, hi int
		text   string
		style  lipgloss.Style
	}
	var spans []span

	for _, t := range tasks {
		if hour < t.StartTime || hour >= t.End() {
			continue
		}
		p := placements[t.ID]
		lo := int(p.Left() * float64(colWidth))
		hi := lo + int(p.Width()*float64(colWidth))
		if hi <= lo {
			hi = lo + 1
		}

		text := strings.Repeat(" ", hi-lo)
		slots := float64(m.geo.SlotsPerHour())
		firstRow := int((t.StartTime - m.geo.StartHour) * slots)
		lastRow := int((t.End()-m.geo.StartHour)*slots) - 1
		switch row {
		case firstRow:
			text = pad(" "+t.Name, hi-lo)
		case firstRow + 1:
			if t.Area != "" {
				text = pad(" "+t.Area, hi-lo)
			}
		case lastRow:
			if lastRow > firstRow && hi-lo > 2 {
				text = pad(" "+strings.Repeat("─", hi-lo-2), hi-lo)
			}
		}

		st := styleTask
		if t.ID == dragID {
			st = styleTaskDrag
		}
		spans = append(spans, span{lo: lo, hi: hi, text: text, style: st})
	}

	if len(spans) == 0 {
		return string(cell)
	}

	// Stitch plain background and styled spans left to right.
	sort.Slice(spans, func(i, j int) bool { return spans[i].lo < spans[j].lo })
	var out strings.Builder
	pos := 0
	for _, s := range spans {
		if s.lo > pos {
			out.WriteString(string(cell[pos:s.lo]))
		}
		out.WriteString(s.style.Render(s.text))
		pos = s.hi
	}
	if pos < colWidth {
		out.WriteString(string(cell[pos:colWidth]))
	}
	return out.String()
}

func pad(s string, width int) string {
	r := []rune(s)
	if len(r) > width {
		if width <= 1 {
			return string(r[:width])
		}
		return string(r[:width-1]) + "…"
	}
	return s + strings.Repeat(" ", width-len(r))
}
