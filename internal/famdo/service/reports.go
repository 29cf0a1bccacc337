package service

import (
	"context"
	"fmt"
	"time"

	"github.com/famdoapp/famdo/internal/famdo/domain"
	"github.com/famdoapp/famdo/internal/famdo/store"
)

// WeeklyReport summarises the actor's personal view for one calendar week.
type WeeklyReport struct {
	WeekStart time.Time
	WeekEnd   time.Time

	Total     int
	Completed int
	Pending   int

	// CompletionRate is a rounded percentage; zero when there are no tasks.
	CompletionRate int

	High   int
	Medium int
	Low    int

	CompletedTasks []domain.Task
	PendingTasks   []domain.Task
}

// ReportService derives weekly progress summaries from the local replica.
type ReportService struct {
	Store store.Store
}

// Weekly reports on the week containing ref. Weeks start Monday. A task
// counts if it was created before the week ended and is either still
// pending or was completed within the week.
func (s *ReportService) Weekly(
	ctx context.Context,
	actor domain.Identity,
	ref time.Time,
) (WeeklyReport, error) {
	if actor.IsZero() {
		return WeeklyReport{}, ErrUnauthenticated
	}

	all, err := s.Store.Tasks().List(ctx)
	if err != nil {
		return WeeklyReport{}, fmt.Errorf("list tasks: %w", err)
	}

	start := weekStart(ref)
	end := start.AddDate(0, 0, 7)
	report := WeeklyReport{WeekStart: start, WeekEnd: end}

	for _, t := range PersonalView(all, actor.ID) {
		if !t.CreatedAt.Before(end) {
			continue
		}

		switch t.Status {
		case domain.StatusCompleted:
			if t.CompletedAt == nil ||
				t.CompletedAt.Before(start) || !t.CompletedAt.Before(end) {
				continue
			}
			report.Completed++
			report.CompletedTasks = append(report.CompletedTasks, t)
		default:
			report.Pending++
			report.PendingTasks = append(report.PendingTasks, t)
		}

		report.Total++
		switch t.Priority {
		case domain.PriorityHigh:
			report.High++
		case domain.PriorityMedium:
			report.Medium++
		default:
			report.Low++
		}
	}

	if report.Total > 0 {
		report.CompletionRate = int(float64(report.Completed)/float64(report.Total)*100 + 0.5)
	}
	return report, nil
}

// weekStart returns midnight on the Monday of ref's week, in ref's location.
func weekStart(ref time.Time) time.Time {
	offset := int(ref.Weekday()) - 1
	if offset < 0 {
		offset = 6 // Sunday belongs to the week that started the previous Monday
	}
	midnight := time.Date(ref.Year(), ref.Month(), ref.Day(), 0, 0, 0, 0, ref.Location())
	return midnight.AddDate(0, 0, -offset)
}
