package domain

import "time"

// Role is a user's standing within a family. Exactly one leader exists per
// family (the creator) and leadership never moves.
type Role string

const (
	RoleNone   Role = ""
	RoleLeader Role = "leader"
	RoleMember Role = "member"
)

type Family struct {
	ID   string
	Name string

	// InvitationCode is generated once at creation, stored uppercase, and
	// stable for the family's lifetime.
	InvitationCode string

	LeaderID  string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Membership relates a user to a family. A user holds at most one
// membership at a time.
type Membership struct {
	UserID   string
	FamilyID string
	Role     Role
	JoinedAt time.Time
}
