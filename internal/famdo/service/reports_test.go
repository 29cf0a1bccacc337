package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/famdoapp/famdo/internal/famdo/domain"
)

func TestWeekStart(t *testing.T) {
	t.Parallel()

	monday := time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)

	require.Equal(t, monday, weekStart(testNow))                    // Monday noon
	require.Equal(t, monday, weekStart(monday))                     // Monday midnight
	require.Equal(t, monday, weekStart(monday.AddDate(0, 0, 3)))    // Thursday
	require.Equal(t, monday, weekStart(monday.AddDate(0, 0, 6)))    // Sunday joins the preceding Monday
	require.NotEqual(t, monday, weekStart(monday.AddDate(0, 0, 7))) // next Monday
}

func TestWeeklyReport(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	tasks := &TaskService{Store: st, Now: clockAt(testNow)}
	reports := &ReportService{Store: st}

	mk := func(title string, p domain.Priority) domain.Task {
		task, err := tasks.Create(ctx, alice, TaskInput{Title: title, Priority: p})
		require.NoError(t, err)
		return task
	}

	done := mk("done this week", domain.PriorityHigh)
	_, err := tasks.ToggleStatus(ctx, alice, done.ID)
	require.NoError(t, err)

	mk("still open", domain.PriorityMedium)
	mk("also open", domain.PriorityLow)

	// Completed outside the reporting week: excluded from the summary.
	oldTasks := &TaskService{Store: st, Now: clockAt(testNow.AddDate(0, 0, -10))}
	old := mk("long done", domain.PriorityHigh)
	_, err = oldTasks.ToggleStatus(ctx, alice, old.ID)
	require.NoError(t, err)

	report, err := reports.Weekly(ctx, alice, testNow)
	require.NoError(t, err)

	require.Equal(t, 3, report.Total)
	require.Equal(t, 1, report.Completed)
	require.Equal(t, 2, report.Pending)
	require.Equal(t, 33, report.CompletionRate)
	require.Equal(t, 1, report.High)
	require.Equal(t, 1, report.Medium)
	require.Equal(t, 1, report.Low)

	require.Len(t, report.CompletedTasks, 1)
	require.Equal(t, done.ID, report.CompletedTasks[0].ID)
	require.Len(t, report.PendingTasks, 2)
}

func TestWeeklyReportEmpty(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	reports := &ReportService{Store: st}

	report, err := reports.Weekly(ctx, alice, testNow)
	require.NoError(t, err)
	require.Zero(t, report.Total)
	require.Zero(t, report.CompletionRate)

	_, err = reports.Weekly(ctx, domain.Identity{}, testNow)
	require.ErrorIs(t, err, ErrUnauthenticated)
}
