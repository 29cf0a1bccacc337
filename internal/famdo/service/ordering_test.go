package service

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/famdoapp/famdo/internal/famdo/domain"
)

func TestPersonalViewOrdering(t *testing.T) {
	t.Parallel()

	tasks := []domain.Task{
		{ID: "a", Status: domain.StatusCompleted, Priority: domain.PriorityHigh, CreatedBy: "u1"},
		{ID: "b", Status: domain.StatusPending, Priority: domain.PriorityLow, CreatedBy: "u1"},
		{ID: "c", Status: domain.StatusPending, Priority: domain.PriorityHigh, CreatedBy: "u1"},
	}

	got := PersonalView(tasks, "u1")
	require.Equal(t, []string{"c", "b", "a"}, ids(got))
}

func TestPersonalViewFilters(t *testing.T) {
	t.Parallel()

	tasks := []domain.Task{
		{ID: "own-personal", Status: domain.StatusPending, Priority: domain.PriorityLow, CreatedBy: "u1"},
		{ID: "assigned-family", Status: domain.StatusPending, Priority: domain.PriorityHigh,
			FamilyID: "fam", AssignedTo: "u1"},
		{ID: "someone-elses", Status: domain.StatusPending, Priority: domain.PriorityHigh,
			FamilyID: "fam", AssignedTo: "u2"},
	}

	got := PersonalView(tasks, "u1")
	require.Equal(t, []string{"assigned-family", "own-personal"}, ids(got))
}

func TestFamilyViewFilters(t *testing.T) {
	t.Parallel()

	tasks := []domain.Task{
		{ID: "mine", Status: domain.StatusPending, Priority: domain.PriorityMedium,
			FamilyID: "fam", AssignedTo: "u1"},
		{ID: "theirs", Status: domain.StatusPending, Priority: domain.PriorityHigh,
			FamilyID: "fam", AssignedTo: "u2"},
		{ID: "other-family", Status: domain.StatusPending, Priority: domain.PriorityHigh,
			FamilyID: "other", AssignedTo: "u1"},
		{ID: "personal", Status: domain.StatusPending, Priority: domain.PriorityHigh, CreatedBy: "u1"},
	}

	got := FamilyView(tasks, "fam")
	require.Equal(t, []string{"theirs", "mine"}, ids(got))
}

func TestViewsAreDeterministicAndPure(t *testing.T) {
	t.Parallel()

	tasks := []domain.Task{
		{ID: "a", Status: domain.StatusCompleted, Priority: domain.PriorityHigh, CreatedBy: "u1"},
		{ID: "b", Status: domain.StatusPending, Priority: domain.PriorityMedium, CreatedBy: "u1"},
		{ID: "c", Status: domain.StatusPending, Priority: domain.PriorityMedium, CreatedBy: "u1"},
		{ID: "d", Status: domain.StatusPending, Priority: domain.PriorityHigh, CreatedBy: "u1"},
	}
	inputOrder := ids(tasks)

	first := PersonalView(tasks, "u1")
	second := PersonalView(tasks, "u1")
	require.Equal(t, ids(first), ids(second))

	// Equal-key tasks keep their input order, and the input is untouched.
	require.Equal(t, []string{"d", "b", "c", "a"}, ids(first))
	require.Equal(t, inputOrder, ids(tasks))
}

func TestSortTasksOrdersWithoutFiltering(t *testing.T) {
	t.Parallel()

	tasks := []domain.Task{
		{ID: "done-low", Status: domain.StatusCompleted, Priority: domain.PriorityLow},
		{ID: "open-med", Status: domain.StatusPending, Priority: domain.PriorityMedium},
		{ID: "done-high", Status: domain.StatusCompleted, Priority: domain.PriorityHigh},
		{ID: "open-high", Status: domain.StatusPending, Priority: domain.PriorityHigh},
	}

	got := SortTasks(tasks)
	require.Equal(t, []string{"open-high", "open-med", "done-high", "done-low"}, ids(got))
	require.Len(t, tasks, 4)
}

func ids(tasks []domain.Task) []string {
	out := make([]string, len(tasks))
	for i, t := range tasks {
		out[i] = t.ID
	}
	return out
}
