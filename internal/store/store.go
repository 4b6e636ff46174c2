// Package store holds the canonical planner collections and the only
// sanctioned mutations over them. Every mutation is synchronous,
// atomic in memory, and followed by a write-through flush to the
// persistence adapter.
package store

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/teamflowhq/teamflow/internal/domain"
	"github.com/teamflowhq/teamflow/internal/persist"
)

// ErrValidation marks a rejected create/update: a required field was
// missing or empty. Unknown-id operations are silent no-ops, never
// errors.
var ErrValidation = errors.New("validation failed")

// Store is the in-memory entity store. It is not safe for concurrent
// use; the planner runs on a single event loop.
type Store struct {
	state   domain.Snapshot
	adapter *persist.Adapter
}

// Open hydrates a store from the adapter, seeding built-in defaults
// when no usable snapshot exists.
func Open(adapter *persist.Adapter) *Store {
	return &Store{
		state:   adapter.Load(domain.DefaultSnapshot()),
		adapter: adapter,
	}
}

// OpenWith starts from an explicit snapshot. Used by tests and import
// paths that bypass hydration.
func OpenWith(adapter *persist.Adapter, s domain.Snapshot) *Store {
	return &Store{state: s.Clone(), adapter: adapter}
}

func (s *Store) flush() {
	s.adapter.Save(s.state)
}

// ── Members ──────────────────────────────────────────────────────────

// AddMember appends a new member. The name must be non-empty after
// trimming; an empty role defaults to Staff.
func (s *Store) AddMember(name, role string) (domain.Member, error) {
	if strings.TrimSpace(name) == "" {
		return domain.Member{}, fmt.Errorf("member name: %w", ErrValidation)
	}
	if role == "" {
		role = domain.RoleStaff
	}
	m := domain.Member{ID: uuid.New().String(), Name: name, Role: role}
	s.state.Members = append(s.state.Members, m)
	s.flush()
	return m, nil
}

// DeleteMember removes a member, deletes every task assigned to it,
// and clears matching todo references. Unknown id is a no-op.
func (s *Store) DeleteMember(id string) {
	idx := s.memberIndex(id)
	if idx < 0 {
		return
	}
	s.state.Members = append(s.state.Members[:idx], s.state.Members[idx+1:]...)

	kept := s.state.Tasks[:0]
	for _, t := range s.state.Tasks {
		if t.MemberID != id {
			kept = append(kept, t)
		}
	}
	s.state.Tasks = kept

	for i := range s.state.Todos {
		if s.state.Todos[i].MemberID == id {
			s.state.Todos[i].MemberID = ""
		}
	}
	s.flush()
}

// RenameMember updates a member's name in place. Unknown id is a
// no-op; an empty name is rejected.
func (s *Store) RenameMember(id, name string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("member name: %w", ErrValidation)
	}
	idx := s.memberIndex(id)
	if idx < 0 {
		return nil
	}
	s.state.Members[idx].Name = name
	s.flush()
	return nil
}

// UpdateMemberRole updates a member's role label. Unknown id is a
// no-op.
func (s *Store) UpdateMemberRole(id, role string) {
	idx := s.memberIndex(id)
	if idx < 0 {
		return
	}
	s.state.Members[idx].Role = role
	s.flush()
}

func (s *Store) memberIndex(id string) int {
	for i, m := range s.state.Members {
		if m.ID == id {
			return i
		}
	}
	return -1
}

// ── Tasks ────────────────────────────────────────────────────────────

// SaveTask creates or updates a task. A draft whose ID matches an
// existing task replaces its fields wholesale. Otherwise Name,
// MemberID, Day, and StartTime are required, the member must exist,
// and Duration defaults to one hour when unset.
func (s *Store) SaveTask(draft domain.Task) (domain.Task, error) {
	if draft.ID != "" {
		for i, t := range s.state.Tasks {
			if t.ID == draft.ID {
				s.state.Tasks[i] = draft
				s.flush()
				return draft, nil
			}
		}
	}

	switch {
	case strings.TrimSpace(draft.Name) == "":
		return domain.Task{}, fmt.Errorf("task name: %w", ErrValidation)
	case draft.MemberID == "":
		return domain.Task{}, fmt.Errorf("task member: %w", ErrValidation)
	case draft.Day == 0:
		return domain.Task{}, fmt.Errorf("task day: %w", ErrValidation)
	case draft.StartTime == 0:
		return domain.Task{}, fmt.Errorf("task start time: %w", ErrValidation)
	}
	if s.memberIndex(draft.MemberID) < 0 {
		return domain.Task{}, fmt.Errorf("task member %s: %w", draft.MemberID, ErrValidation)
	}
	if draft.Duration == 0 {
		draft.Duration = 1
	}
	draft.ID = uuid.New().String()
	s.state.Tasks = append(s.state.Tasks, draft)
	s.flush()
	return draft, nil
}

// DeleteTask removes a task. Unknown id is a no-op.
func (s *Store) DeleteTask(id string) {
	for i, t := range s.state.Tasks {
		if t.ID == id {
			s.state.Tasks = append(s.state.Tasks[:i], s.state.Tasks[i+1:]...)
			s.flush()
			return
		}
	}
}

// MoveTask sets a task's start time in place. Unknown id is a no-op.
// Callers are expected to have snapped and clamped the value; this is
// the commit point for live drags.
func (s *Store) MoveTask(id string, startTime float64) {
	for i := range s.state.Tasks {
		if s.state.Tasks[i].ID == id {
			s.state.Tasks[i].StartTime = startTime
			s.flush()
			return
		}
	}
}

// ResizeTask sets a task's duration in place. Unknown id is a no-op.
func (s *Store) ResizeTask(id string, duration float64) {
	for i := range s.state.Tasks {
		if s.state.Tasks[i].ID == id {
			s.state.Tasks[i].Duration = duration
			s.flush()
			return
		}
	}
}

// ── Todos ────────────────────────────────────────────────────────────

// AddTodo appends a checklist item. Text must be non-empty after
// trimming; an empty memberID means unassigned.
func (s *Store) AddTodo(text, memberID string) (domain.Todo, error) {
	if strings.TrimSpace(text) == "" {
		return domain.Todo{}, fmt.Errorf("todo text: %w", ErrValidation)
	}
	td := domain.Todo{ID: uuid.New().String(), Text: text, MemberID: memberID}
	s.state.Todos = append(s.state.Todos, td)
	s.flush()
	return td, nil
}

// ToggleTodo flips completion. Unknown id is a no-op.
func (s *Store) ToggleTodo(id string) {
	for i := range s.state.Todos {
		if s.state.Todos[i].ID == id {
			s.state.Todos[i].Completed = !s.state.Todos[i].Completed
			s.flush()
			return
		}
	}
}

// DeleteTodo removes a checklist item. Unknown id is a no-op.
func (s *Store) DeleteTodo(id string) {
	for i, td := range s.state.Todos {
		if td.ID == id {
			s.state.Todos = append(s.state.Todos[:i], s.state.Todos[i+1:]...)
			s.flush()
			return
		}
	}
}

// ── Engagement ───────────────────────────────────────────────────────

// UpdateEngagement merges non-nil fields into the singleton record.
func (s *Store) UpdateEngagement(title, notes *string) {
	if title != nil {
		s.state.Engagement.Title = *title
	}
	if notes != nil {
		s.state.Engagement.Notes = *notes
	}
	s.flush()
}
