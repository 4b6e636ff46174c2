// Package drag converts a pointer-down/move/up sequence into live
// task edits. The machine is decoupled from any rendering layer: it
// consumes pointer Y offsets in grid pixels and commits snapped,
// clamped values through the store on every move, so the display is
// always consistent with store state mid-drag.
package drag

import (
	"github.com/teamflowhq/teamflow/internal/domain"
	"github.com/teamflowhq/teamflow/internal/grid"
)

// Mode distinguishes moving a task from resizing it.
type Mode int

const (
	Move Mode = iota
	Resize
)

// TaskMutator is the subset of store operations the machine commits
// through.
type TaskMutator interface {
	Task(id string) (domain.Task, bool)
	MoveTask(id string, startTime float64)
	ResizeTask(id string, duration float64)
}

// anchor captures the interaction's starting point. Deltas are always
// computed against the anchor, never cumulatively, so jitter cannot
// accumulate rounding error.
type anchor struct {
	pointerY  float64
	startTime float64
	duration  float64
}

// Machine tracks at most one in-progress drag. The zero value is not
// usable; construct with New.
type Machine struct {
	geo    grid.Geometry
	store  TaskMutator
	taskID string
	mode   Mode
	anchor anchor
	active bool
}

func New(geo grid.Geometry, store TaskMutator) *Machine {
	return &Machine{geo: geo, store: store}
}

// Dragging reports whether a drag is in progress and, if so, which
// task it holds.
func (m *Machine) Dragging() (taskID string, ok bool) {
	if !m.active {
		return "", false
	}
	return m.taskID, true
}

// Begin starts a drag on the given task. Returns false when a drag is
// already active or the task is unknown.
func (m *Machine) Begin(taskID string, mode Mode, pointerY float64) bool {
	if m.active {
		return false
	}
	t, ok := m.store.Task(taskID)
	if !ok {
		return false
	}
	m.taskID = taskID
	m.mode = mode
	m.anchor = anchor{pointerY: pointerY, startTime: t.StartTime, duration: t.Duration}
	m.active = true
	return true
}

// Move applies the pointer's current position. The pixel delta from
// the anchor is snapped, converted to hours, clamped, and committed.
// No-op when idle.
func (m *Machine) Move(pointerY float64) {
	if !m.active {
		return
	}
	deltaHours := m.geo.SnapPixelDelta(pointerY - m.anchor.pointerY)

	switch m.mode {
	case Move:
		start := m.geo.ClampStart(m.anchor.startTime+deltaHours, m.anchor.duration)
		m.store.MoveTask(m.taskID, start)
	case Resize:
		d := m.geo.ClampDuration(m.anchor.startTime, m.anchor.duration+deltaHours)
		m.store.ResizeTask(m.taskID, d)
	}
}

// End commits the final position and returns to idle. There is no
// abort path: releasing the pointer always keeps the last computed
// values. No-op when idle.
func (m *Machine) End(pointerY float64) {
	if !m.active {
		return
	}
	m.Move(pointerY)
	m.taskID = ""
	m.active = false
}
