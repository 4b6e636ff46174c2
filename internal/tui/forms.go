package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/teamflowhq/teamflow/internal/domain"
)

// taskDraft collects the task form's string fields before they are
// parsed into a domain.Task.
type taskDraft struct {
	id       string
	name     string
	memberID string
	day      string
	start    string
	duration string
	area     string
	remarks  string
}

func validateRequired(s string) error {
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("required")
	}
	return nil
}

func validateTime(s string) error {
	var f float64
	if _, err := fmt.Sscanf(s, "%g", &f); err != nil {
		return fmt.Errorf("want an hour like 9.25")
	}
	return nil
}

func validateOptionalTime(s string) error {
	if s == "" {
		return nil
	}
	return validateTime(s)
}

// updateForm routes input to the active modal form. Escape cancels
// without committing; completion runs the form's done callback
// against the store.
func (m Model) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.Type == tea.KeyEsc {
		m.form = nil
		m.formDone = nil
		return m, nil
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State == huh.StateCompleted {
		done := m.formDone
		m.form = nil
		m.formDone = nil
		if done != nil {
			done()
		}
		return m, cmd
	}
	return m, cmd
}

func (m Model) openMemberForm() (tea.Model, tea.Cmd) {
	draft := &struct {
		name string
		role string
	}{role: domain.RoleStaff}

	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Full Name").
				Placeholder("e.g. Jane Doe").
				Value(&draft.name).
				Validate(validateRequired),
			huh.NewSelect[string]().
				Title("Role / Designation").
				Options(huh.NewOptions(domain.Roles()...)...).
				Value(&draft.role),
		),
	).WithShowHelp(false)

	st := m.store
	m.formDone = func() {
		_, _ = st.AddMember(draft.name, draft.role)
	}
	return m, m.form.Init()
}

func (m Model) openTaskForm(existing *domain.Task) (tea.Model, tea.Cmd) {
	members := m.store.Members()
	if len(members) == 0 {
		m.statusLine = "add a member first"
		return m, nil
	}

	draft := &taskDraft{
		memberID: members[0].ID,
		day:      fmt.Sprint(m.day),
		start:    "9",
		duration: "1",
	}
	if m.memberID != "" {
		draft.memberID = m.memberID
	}
	if existing != nil {
		draft.id = existing.ID
		draft.name = existing.Name
		draft.memberID = existing.MemberID
		draft.day = fmt.Sprint(existing.Day)
		draft.start = fmt.Sprintf("%g", existing.StartTime)
		draft.duration = fmt.Sprintf("%g", existing.Duration)
		draft.area = existing.Area
		draft.remarks = existing.Remarks
	}

	memberOpts := make([]huh.Option[string], 0, len(members))
	for _, mem := range members {
		memberOpts = append(memberOpts, huh.NewOption(mem.Name, mem.ID))
	}
	dayOpts := make([]huh.Option[string], 0, 5)
	for day := domain.MinDay; day <= domain.MaxDay; day++ {
		dayOpts = append(dayOpts, huh.NewOption(domain.DayName(day), fmt.Sprint(day)))
	}

	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Task Name").
				Placeholder("e.g. Cash Reconciliation").
				Value(&draft.name).
				Validate(validateRequired),
			huh.NewSelect[string]().
				Title("Member").
				Options(memberOpts...).
				Value(&draft.memberID),
			huh.NewSelect[string]().
				Title("Day").
				Options(dayOpts...).
				Value(&draft.day),
			huh.NewInput().
				Title("Start Time (24h)").
				Placeholder("9.25").
				Value(&draft.start).
				Validate(validateTime),
			huh.NewInput().
				Title("Duration (Hours)").
				Placeholder("1").
				Value(&draft.duration).
				Validate(validateOptionalTime),
			huh.NewInput().
				Title("Area / Section (Optional)").
				Placeholder("e.g. Assets, Liabilities, Revenue").
				Value(&draft.area),
			huh.NewInput().
				Title("Remarks (Optional)").
				Value(&draft.remarks),
		),
	).WithShowHelp(false)

	st := m.store
	m.formDone = func() {
		var day int
		var start, duration float64
		fmt.Sscanf(draft.day, "%d", &day)
		fmt.Sscanf(draft.start, "%g", &start)
		fmt.Sscanf(draft.duration, "%g", &duration)
		_, _ = st.SaveTask(domain.Task{
			ID:        draft.id,
			Name:      draft.name,
			Area:      draft.area,
			Remarks:   draft.remarks,
			MemberID:  draft.memberID,
			Day:       day,
			StartTime: start,
			Duration:  duration,
		})
	}
	return m, m.form.Init()
}

func (m Model) openEngagementForm() (tea.Model, tea.Cmd) {
	e := m.store.Engagement()
	draft := &struct {
		title string
		notes string
	}{title: e.Title, notes: e.Notes}

	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Engagement Title").
				Value(&draft.title).
				Validate(validateRequired),
			huh.NewText().
				Title("Engagement Notes").
				Placeholder("Add general engagement notes, findings, or reminders here...").
				Value(&draft.notes),
		),
	).WithShowHelp(false)

	st := m.store
	m.formDone = func() {
		st.UpdateEngagement(&draft.title, &draft.notes)
	}
	return m, m.form.Init()
}
