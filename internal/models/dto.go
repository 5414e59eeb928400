package models

// Session is the authenticated caller, extracted from the access token
// at the API boundary and carried through the request context. Role and
// campus scoping come from here; nothing reads ambient global auth state.
type Session struct {
	UserID   string   `json:"user_id"`
	Role     UserRole `json:"role"`
	CampusID string   `json:"campus_id"`
}

// IsAdmin reports whether the session holds the admin capability.
func (s Session) IsAdmin() bool {
	return s.Role == RoleAdmin
}

// CanManageCourse reports whether the session may grade or take attendance.
func (s Session) CanManageCourse() bool {
	return s.Role == RoleAdmin || s.Role == RoleProfessor
}
