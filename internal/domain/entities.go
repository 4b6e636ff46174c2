package domain

// Member is a schedulable person to whom tasks are assigned.
// ID is the only uniqueness invariant; names may repeat.
type Member struct {
	ID   string
	Name string
	Role string
}

// Task is a unit of scheduled work assigned to exactly one member.
// Day is 1-5 (Mon-Fri). StartTime is a fractional hour of day on
// quarter-hour boundaries (9.25 = 09:15). Duration is in hours.
type Task struct {
	ID        string
	Name      string
	Area      string
	Remarks   string
	MemberID  string
	Day       int
	StartTime float64
	Duration  float64
}

// End returns the fractional hour at which the task ends.
func (t Task) End() float64 {
	return t.StartTime + t.Duration
}

// Overlaps reports whether two tasks occupy intersecting time ranges
// on the same day. Touching intervals (one ends where the other
// starts) do not overlap.
func (t Task) Overlaps(o Task) bool {
	if t.Day != o.Day {
		return false
	}
	return t.StartTime < o.End() && o.StartTime < t.End()
}

// Todo is an unscheduled checklist item. An empty MemberID means
// unassigned, which matches every member filter.
type Todo struct {
	ID        string
	Text      string
	Completed bool
	MemberID  string
}

// Engagement is the single named context the planner organizes work
// for. One per planning session; no collection semantics.
type Engagement struct {
	Title string
	Notes string
}

// Snapshot is the full persistable planner state.
type Snapshot struct {
	Members    []Member
	Tasks      []Task
	Engagement Engagement
	Todos      []Todo
}

// Clone returns a deep copy of the snapshot.
func (s Snapshot) Clone() Snapshot {
	out := Snapshot{Engagement: s.Engagement}
	out.Members = append([]Member(nil), s.Members...)
	out.Tasks = append([]Task(nil), s.Tasks...)
	out.Todos = append([]Todo(nil), s.Todos...)
	return out
}
