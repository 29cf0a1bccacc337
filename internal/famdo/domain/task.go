package domain

import (
	"fmt"
	"time"
)

type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// Rank orders priorities for sorting and for the numeric wire format the
// backend uses (1=low, 2=medium, 3=high).
func (p Priority) Rank() int {
	switch p {
	case PriorityHigh:
		return 3
	case PriorityMedium:
		return 2
	default:
		return 1
	}
}

// ParsePriority accepts the textual form used throughout the client.
func ParsePriority(s string) (Priority, error) {
	switch Priority(s) {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return Priority(s), nil
	}
	return "", fmt.Errorf("unknown priority %q", s)
}

// PriorityFromRank maps the backend's numeric priority to the textual form.
func PriorityFromRank(n int) Priority {
	switch n {
	case 3:
		return PriorityHigh
	case 2:
		return PriorityMedium
	default:
		return PriorityLow
	}
}

type Status string

const (
	StatusPending   Status = "pending"
	StatusCompleted Status = "completed"
)

// Task is either personal (no FamilyID, owned by its creator) or shared
// (FamilyID set, assigned to exactly one member of that family).
type Task struct {
	ID          string
	Title       string
	Description string
	Priority    Priority
	Status      Status

	// AssignedTo is empty on personal tasks and always set on family tasks.
	AssignedTo string

	// FamilyID is empty on personal tasks.
	FamilyID string

	// CompletedAt is set exactly when Status flips to completed and cleared
	// when it flips back to pending.
	CompletedAt *time.Time

	CreatedBy string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Personal reports whether the task belongs to a single user rather than a
// family.
func (t Task) Personal() bool { return t.FamilyID == "" }
