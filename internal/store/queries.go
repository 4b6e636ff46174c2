package store

import "github.com/teamflowhq/teamflow/internal/domain"

// Read access. All queries return copies; callers never hold live
// references into store-owned slices.

// Snapshot returns a deep copy of the full planner state.
func (s *Store) Snapshot() domain.Snapshot {
	return s.state.Clone()
}

// Members lists members in insertion order.
func (s *Store) Members() []domain.Member {
	return append([]domain.Member(nil), s.state.Members...)
}

// Member looks up one member by id.
func (s *Store) Member(id string) (domain.Member, bool) {
	idx := s.memberIndex(id)
	if idx < 0 {
		return domain.Member{}, false
	}
	return s.state.Members[idx], true
}

// Tasks lists all tasks in insertion order.
func (s *Store) Tasks() []domain.Task {
	return append([]domain.Task(nil), s.state.Tasks...)
}

// Task looks up one task by id.
func (s *Store) Task(id string) (domain.Task, bool) {
	for _, t := range s.state.Tasks {
		if t.ID == id {
			return t, true
		}
	}
	return domain.Task{}, false
}

// TasksFor lists one member's tasks for one day, in insertion order.
// This is the layout engine's input.
func (s *Store) TasksFor(memberID string, day int) []domain.Task {
	var out []domain.Task
	for _, t := range s.state.Tasks {
		if t.MemberID == memberID && t.Day == day {
			out = append(out, t)
		}
	}
	return out
}

// Todos lists all checklist items in insertion order.
func (s *Store) Todos() []domain.Todo {
	return append([]domain.Todo(nil), s.state.Todos...)
}

// TodosFor filters todos by member. Unassigned todos match every
// filter; an empty memberID returns everything.
func (s *Store) TodosFor(memberID string) []domain.Todo {
	if memberID == "" {
		return s.Todos()
	}
	var out []domain.Todo
	for _, td := range s.state.Todos {
		if td.MemberID == "" || td.MemberID == memberID {
			out = append(out, td)
		}
	}
	return out
}

// Engagement returns the singleton engagement record.
func (s *Store) Engagement() domain.Engagement {
	return s.state.Engagement
}
