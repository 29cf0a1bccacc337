package service

import "github.com/famdoapp/famdo/internal/famdo/domain"

// Action is something an actor wants to do to a task.
type Action string

const (
	ActionView         Action = "view"
	ActionEdit         Action = "edit"
	ActionToggleStatus Action = "toggle_status"
	ActionDelete       Action = "delete"
)

// Permitted is the single source of truth for "may this actor perform this
// action on this task". role is the actor's role in the task's family
// (RoleNone when the task is personal or the actor is not a member).
//
// The decision table is exhaustive: anything not explicitly allowed is
// denied. A denial is a plain false, never an error; these checks are a UX
// convenience and the server stays the security boundary.
//
//	                     personal   family     family       family
//	                     (owner)    (leader)   (assignee)   (other member)
//	view                 allow      allow      allow        allow
//	edit fields          allow      allow      allow        deny
//	toggle status        allow      allow      allow        deny
//	delete               allow      allow      deny         deny
func Permitted(actorID string, role domain.Role, action Action, t domain.Task) bool {
	if actorID == "" {
		return false
	}

	if t.Personal() {
		return t.CreatedBy == actorID
	}

	switch role {
	case domain.RoleLeader:
		return true
	case domain.RoleMember:
		switch action {
		case ActionView:
			return true
		case ActionEdit, ActionToggleStatus:
			return t.AssignedTo == actorID
		default:
			return false
		}
	default:
		// Not a member of the task's family.
		return false
	}
}

// CanAssign reports whether actor may create a task in the given scope and
// hand it to assignee. Personal scope (empty familyID) allows only
// self-assignment; family scope is leader-only.
func CanAssign(actorID string, role domain.Role, familyID, assigneeID string) bool {
	if actorID == "" {
		return false
	}
	if familyID == "" {
		return assigneeID == "" || assigneeID == actorID
	}
	return role == domain.RoleLeader
}
