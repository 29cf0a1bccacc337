package apix

import (
	"context"
	"net/http"
)

// Tasks lists the caller's personal tasks.
func (s *Session) Tasks(ctx context.Context) ([]Task, error) {
	var out []Task
	if err := s.doJSON(ctx, http.MethodGet, "/tasks", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CreateTask creates a personal task.
func (s *Session) CreateTask(ctx context.Context, req TaskRequest) (Task, error) {
	var out Task
	if err := s.doJSON(ctx, http.MethodPost, "/tasks", req, &out); err != nil {
		return Task{}, err
	}
	return out, nil
}

// UpdateTask updates one personal task, including status flips.
func (s *Session) UpdateTask(ctx context.Context, taskID string, req TaskRequest) (Task, error) {
	var out Task
	if err := s.doJSON(ctx, http.MethodPut, "/tasks/"+taskID, req, &out); err != nil {
		return Task{}, err
	}
	return out, nil
}

// DeleteTask removes one personal task.
func (s *Session) DeleteTask(ctx context.Context, taskID string) error {
	return s.doJSON(ctx, http.MethodDelete, "/tasks/"+taskID, nil, nil)
}

// DashboardStats fetches the caller's task counters.
func (s *Session) DashboardStats(ctx context.Context) (DashboardStats, error) {
	var out DashboardStats
	if err := s.doJSON(ctx, http.MethodGet, "/dashboard/stats", nil, &out); err != nil {
		return DashboardStats{}, err
	}
	return out, nil
}
