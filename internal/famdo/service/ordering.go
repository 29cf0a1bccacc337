package service

import (
	"slices"

	"github.com/famdoapp/famdo/internal/famdo/domain"
)

// The view builders below are pure functions of their inputs: they never
// mutate the given slice and carry no state, so repeated calls with the
// same collection produce identical output order.

// PersonalView filters to the actor's own slice of the world: tasks with no
// family, plus family tasks assigned to the actor. Ordered by the standard
// comparator.
func PersonalView(tasks []domain.Task, userID string) []domain.Task {
	out := make([]domain.Task, 0, len(tasks))
	for _, t := range tasks {
		if t.Personal() || t.AssignedTo == userID {
			out = append(out, t)
		}
	}
	sortTasks(out)
	return out
}

// FamilyView filters to every task belonging to the given family, ordered
// by the standard comparator.
func FamilyView(tasks []domain.Task, familyID string) []domain.Task {
	out := make([]domain.Task, 0, len(tasks))
	for _, t := range tasks {
		if !t.Personal() && t.FamilyID == familyID {
			out = append(out, t)
		}
	}
	sortTasks(out)
	return out
}

// SortTasks returns an ordered copy of tasks without filtering.
func SortTasks(tasks []domain.Task) []domain.Task {
	out := slices.Clone(tasks)
	sortTasks(out)
	return out
}

// sortTasks orders by the two-key comparator: pending before completed,
// then priority high to low. The sort is stable so equal tasks keep their
// input order, which keeps repeated calls byte-identical.
func sortTasks(tasks []domain.Task) {
	slices.SortStableFunc(tasks, func(a, b domain.Task) int {
		if a.Status != b.Status {
			if a.Status == domain.StatusPending {
				return -1
			}
			return 1
		}
		return b.Priority.Rank() - a.Priority.Rank()
	})
}
