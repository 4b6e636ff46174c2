package domain

// DefaultSnapshot returns the built-in seed state used when no saved
// snapshot exists or the saved one cannot be read.
func DefaultSnapshot() Snapshot {
	return Snapshot{
		Members:    DefaultMembers(),
		Tasks:      nil,
		Engagement: DefaultEngagement(),
		Todos:      DefaultTodos(),
	}
}

func DefaultMembers() []Member {
	return []Member{
		{ID: "1", Name: "Biplav", Role: RoleManager},
		{ID: "2", Name: "Sarah Chen", Role: RolePartner},
		{ID: "3", Name: "Mike Ross", Role: RoleSenior},
	}
}

func DefaultEngagement() Engagement {
	return Engagement{
		Title: "ABC Corp Annual Audit",
		Notes: "Focus on revenue recognition and inventory valuation.",
	}
}

func DefaultTodos() []Todo {
	return []Todo{
		{ID: "1", Text: "Review prelim analytics", Completed: false, MemberID: "1"},
		{ID: "2", Text: "Send PBC list", Completed: true, MemberID: "2"},
	}
}
