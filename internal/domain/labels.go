package domain

// Role labels offered when adding a member. Advisory only: Member.Role
// accepts any string.
const (
	RolePartner = "Partner"
	RoleManager = "Manager"
	RoleSenior  = "Senior"
	RoleStaff   = "Staff"
	RoleIntern  = "Intern"
)

// Roles lists the standard role labels in seniority order.
func Roles() []string {
	return []string{RolePartner, RoleManager, RoleSenior, RoleStaff, RoleIntern}
}

var dayNames = [...]string{"Mon", "Tue", "Wed", "Thu", "Fri"}

// MinDay and MaxDay bound Task.Day (Monday through Friday).
const (
	MinDay = 1
	MaxDay = 5
)

// DayName returns the short weekday name for a 1-based day, or the
// empty string when day is out of range.
func DayName(day int) string {
	if day < MinDay || day > MaxDay {
		return ""
	}
	return dayNames[day-1]
}

// ValidDay reports whether day is a schedulable weekday.
func ValidDay(day int) bool {
	return day >= MinDay && day <= MaxDay
}
