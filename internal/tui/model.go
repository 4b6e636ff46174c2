// Package tui is the interactive planner shell: a bubbletea program
// rendering the week grid, the hourly day grid with mouse
// drag-to-move and drag-to-resize, the to-do panel, and modal forms.
// The shell holds no entity state of its own; every frame re-reads
// the store, so the display always matches committed state.
package tui

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/teamflowhq/teamflow/internal/drag"
	"github.com/teamflowhq/teamflow/internal/grid"
	"github.com/teamflowhq/teamflow/internal/store"
)

type viewMode int

const (
	weekView viewMode = iota
	dayView
	todoView
)

// Model is the root bubbletea model.
type Model struct {
	store *store.Store
	geo   grid.Geometry
	drag  *drag.Machine

	mode       viewMode
	day        int    // selected day in day view, 1-5
	memberID   string // sidebar filter; empty shows everyone
	width      int
	height     int
	statusLine string
	quitting   bool

	// Modal form state. When form is non-nil it owns all key input.
	form     *huh.Form
	formDone func()

	// To-do panel state.
	todoInput  textinput.Model
	todoCursor int
}

// New builds the planner shell over an opened store.
func New(s *store.Store, geo grid.Geometry) Model {
	ti := textinput.New()
	ti.Placeholder = "Add new task..."
	ti.CharLimit = 200

	return Model{
		store:     s,
		geo:       geo,
		drag:      drag.New(geo, s),
		mode:      weekView,
		day:       1,
		todoInput: ti,
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if m.form != nil {
			return m.updateForm(msg)
		}
		return m.updateKeys(msg)

	case tea.MouseMsg:
		if m.form == nil && m.mode == dayView {
			return m.updateMouse(msg)
		}
		return m, nil
	}

	if m.form != nil {
		return m.updateForm(msg)
	}
	return m, nil
}

func (m Model) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.mode == todoView && m.todoInput.Focused() {
		return m.updateTodoInput(msg)
	}

	switch msg.String() {
	case "ctrl+c", "q":
		m.quitting = true
		return m, tea.Quit

	case "1", "2", "3", "4", "5":
		m.day = int(msg.String()[0] - '0')
		m.mode = dayView
		return m, nil

	case "esc":
		switch m.mode {
		case dayView, todoView:
			m.mode = weekView
		}
		return m, nil

	case "left", "h":
		if m.mode == dayView && m.day > 1 {
			m.day--
		}
		return m, nil

	case "right", "l":
		if m.mode == dayView && m.day < 5 {
			m.day++
		}
		return m, nil

	case "t":
		m.mode = todoView
		m.todoCursor = 0
		return m, nil

	case "f":
		// Cycle the member filter: all -> each member -> all.
		members := m.store.Members()
		if len(members) == 0 {
			return m, nil
		}
		next := 0
		for i, mem := range members {
			if mem.ID == m.memberID {
				next = i + 1
				break
			}
		}
		if next >= len(members) {
			m.memberID = ""
		} else if m.memberID == "" && next == 0 {
			m.memberID = members[0].ID
		} else {
			m.memberID = members[next].ID
		}
		return m, nil

	case "m":
		return m.openMemberForm()

	case "n":
		return m.openTaskForm(nil)

	case "E":
		return m.openEngagementForm()
	}

	if m.mode == todoView {
		return m.updateTodoKeys(msg)
	}
	return m, nil
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.form != nil {
		return m.form.View()
	}

	switch m.mode {
	case dayView:
		return m.viewDay()
	case todoView:
		return m.viewTodos()
	default:
		return m.viewWeek()
	}
}
