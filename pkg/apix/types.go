package apix

import (
	"time"

	"github.com/famdoapp/famdo/internal/famdo/domain"
)

// User is the backend's user shape.
type User struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

// Identity converts the wire user into the domain identity.
func (u User) Identity() domain.Identity {
	return domain.Identity{ID: u.ID, Username: u.Username, Email: u.Email}
}

// AuthResponse is returned by the login and register endpoints.
type AuthResponse struct {
	User  User   `json:"user"`
	Token string `json:"token"`
}

// Family is the backend's family shape. CreatedBy identifies the leader.
type Family struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	InvitationCode string `json:"invitation_code"`
	CreatedBy      string `json:"created_by"`
}

// FamilyMember is one entry of the family members listing.
type FamilyMember struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Role     string `json:"role"`
}

// Task is the backend's task shape. Priority travels as a number, 1 (low)
// through 3 (high).
type Task struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	Priority    int        `json:"priority"`
	Status      string     `json:"status"`
	AssignedTo  string     `json:"assigned_to,omitempty"`
	FamilyID    string     `json:"family_id,omitempty"`
	CreatedBy   string     `json:"created_by,omitempty"`
	CreatedAt   time.Time  `json:"created_at,omitempty"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
}

// Domain converts the wire task into the domain task.
func (t Task) Domain() domain.Task {
	return domain.Task{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		Priority:    domain.PriorityFromRank(t.Priority),
		Status:      domain.Status(t.Status),
		AssignedTo:  t.AssignedTo,
		FamilyID:    t.FamilyID,
		CreatedBy:   t.CreatedBy,
		CreatedAt:   t.CreatedAt,
		CompletedAt: t.CompletedAt,
	}
}

// TaskFromDomain converts a domain task into the wire shape.
func TaskFromDomain(t domain.Task) Task {
	return Task{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		Priority:    t.Priority.Rank(),
		Status:      string(t.Status),
		AssignedTo:  t.AssignedTo,
		FamilyID:    t.FamilyID,
		CreatedBy:   t.CreatedBy,
		CreatedAt:   t.CreatedAt,
		CompletedAt: t.CompletedAt,
	}
}

// TaskRequest is the create/update payload for task endpoints.
type TaskRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Priority    int    `json:"priority"`
	Status      string `json:"status,omitempty"`
	AssignedTo  string `json:"assigned_to,omitempty"`
}

// DashboardStats is the summary returned by the dashboard endpoint.
type DashboardStats struct {
	Total     int `json:"total"`
	Completed int `json:"completed"`
	Pending   int `json:"pending"`
}
