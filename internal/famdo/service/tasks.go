package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/famdoapp/famdo/internal/famdo/domain"
	"github.com/famdoapp/famdo/internal/famdo/store"
	"github.com/famdoapp/famdo/pkg/idx"
	"github.com/famdoapp/famdo/pkg/slogx"
)

// TaskService owns task lifecycle against the local replica. Every mutating
// operation runs through the permission model before touching the store.
type TaskService struct {
	Store store.Store

	// Now is the clock, injectable for tests. Defaults to time.Now.
	Now func() time.Time
}

func (s *TaskService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

// TaskInput describes a task to create. An empty FamilyID makes a personal
// task; a set FamilyID makes a family task, which must name an assignee who
// is a current member.
type TaskInput struct {
	Title       string
	Description string
	Priority    domain.Priority
	FamilyID    string
	AssignedTo  string
}

// TaskUpdate carries field changes; nil means "leave unchanged".
type TaskUpdate struct {
	Title       *string
	Description *string
	Priority    *domain.Priority
	AssignedTo  *string
}

// Create makes a new pending task. Personal tasks carry no assignee; family
// tasks are leader-created and always assigned to exactly one member.
func (s *TaskService) Create(
	ctx context.Context,
	actor domain.Identity,
	in TaskInput,
) (domain.Task, error) {
	log := slogx.FromContext(ctx)

	if actor.IsZero() {
		return domain.Task{}, ErrUnauthenticated
	}

	in.Title = strings.TrimSpace(in.Title)
	if in.Title == "" {
		return domain.Task{}, ErrTitleRequired
	}
	if in.Priority == "" {
		in.Priority = domain.PriorityLow
	}

	role, err := s.roleOf(ctx, actor.ID, in.FamilyID)
	if err != nil {
		return domain.Task{}, err
	}
	if !CanAssign(actor.ID, role, in.FamilyID, in.AssignedTo) {
		return domain.Task{}, ErrDenied
	}

	assignedTo := in.AssignedTo
	if in.FamilyID == "" {
		// Personal tasks belong implicitly to their creator.
		assignedTo = ""
	} else {
		if err := s.requireMember(ctx, in.FamilyID, assignedTo); err != nil {
			return domain.Task{}, err
		}
	}

	now := s.now()
	task := domain.Task{
		ID:          idx.New().String(),
		Title:       in.Title,
		Description: in.Description,
		Priority:    in.Priority,
		Status:      domain.StatusPending,
		AssignedTo:  assignedTo,
		FamilyID:    in.FamilyID,
		CreatedBy:   actor.ID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.Store.Tasks().Create(ctx, task); err != nil {
		return domain.Task{}, fmt.Errorf("create task: %w", err)
	}

	log.Info("task created",
		slog.String("task_id", task.ID),
		slog.String("family_id", task.FamilyID),
		slog.String("assigned_to", task.AssignedTo),
	)
	return task, nil
}

// Get loads a task the actor is allowed to view.
func (s *TaskService) Get(
	ctx context.Context,
	actor domain.Identity,
	taskID string,
) (domain.Task, error) {
	task, role, err := s.load(ctx, actor, taskID)
	if err != nil {
		return domain.Task{}, err
	}
	if !Permitted(actor.ID, role, ActionView, task) {
		return domain.Task{}, ErrDenied
	}
	return task, nil
}

// Update applies field changes. Reassignment is an assign-level action:
// leader-only on family tasks, impossible on personal ones.
func (s *TaskService) Update(
	ctx context.Context,
	actor domain.Identity,
	taskID string,
	changes TaskUpdate,
) (domain.Task, error) {
	task, role, err := s.load(ctx, actor, taskID)
	if err != nil {
		return domain.Task{}, err
	}
	if !Permitted(actor.ID, role, ActionEdit, task) {
		return domain.Task{}, ErrDenied
	}

	if changes.Title != nil {
		title := strings.TrimSpace(*changes.Title)
		if title == "" {
			return domain.Task{}, ErrTitleRequired
		}
		task.Title = title
	}
	if changes.Description != nil {
		task.Description = *changes.Description
	}
	if changes.Priority != nil {
		task.Priority = *changes.Priority
	}
	if changes.AssignedTo != nil && *changes.AssignedTo != task.AssignedTo {
		if !CanAssign(actor.ID, role, task.FamilyID, *changes.AssignedTo) {
			return domain.Task{}, ErrDenied
		}
		if err := s.requireMember(ctx, task.FamilyID, *changes.AssignedTo); err != nil {
			return domain.Task{}, err
		}
		task.AssignedTo = *changes.AssignedTo
	}

	task.UpdatedAt = s.now()
	if err := s.Store.Tasks().Update(ctx, task); err != nil {
		return domain.Task{}, fmt.Errorf("update task: %w", err)
	}
	return task, nil
}

// ToggleStatus flips pending<->completed. CompletedAt is set exactly on the
// transition to completed and cleared on the way back.
func (s *TaskService) ToggleStatus(
	ctx context.Context,
	actor domain.Identity,
	taskID string,
) (domain.Task, error) {
	log := slogx.FromContext(ctx)

	task, role, err := s.load(ctx, actor, taskID)
	if err != nil {
		return domain.Task{}, err
	}
	if !Permitted(actor.ID, role, ActionToggleStatus, task) {
		return domain.Task{}, ErrDenied
	}

	now := s.now()
	if task.Status == domain.StatusPending {
		task.Status = domain.StatusCompleted
		task.CompletedAt = &now
	} else {
		task.Status = domain.StatusPending
		task.CompletedAt = nil
	}
	task.UpdatedAt = now

	if err := s.Store.Tasks().Update(ctx, task); err != nil {
		return domain.Task{}, fmt.Errorf("update task: %w", err)
	}

	log.Debug("task status toggled",
		slog.String("task_id", task.ID),
		slog.String("status", string(task.Status)),
	)
	return task, nil
}

// Delete removes a task. Personal: owner only. Family: leader only.
func (s *TaskService) Delete(
	ctx context.Context,
	actor domain.Identity,
	taskID string,
) error {
	task, role, err := s.load(ctx, actor, taskID)
	if err != nil {
		return err
	}
	if !Permitted(actor.ID, role, ActionDelete, task) {
		return ErrDenied
	}

	if err := s.Store.Tasks().Delete(ctx, task.ID); err != nil {
		return fmt.Errorf("delete task: %w", err)
	}
	return nil
}

// ListPersonal builds the actor's personal view: own tasks plus family
// tasks assigned to them, pending first, then by priority.
func (s *TaskService) ListPersonal(
	ctx context.Context,
	actor domain.Identity,
) ([]domain.Task, error) {
	if actor.IsZero() {
		return nil, ErrUnauthenticated
	}

	tasks, err := s.Store.Tasks().List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	return PersonalView(tasks, actor.ID), nil
}

// ListFamily builds the family view over every task of the actor's family.
func (s *TaskService) ListFamily(
	ctx context.Context,
	actor domain.Identity,
) ([]domain.Task, error) {
	if actor.IsZero() {
		return nil, ErrUnauthenticated
	}

	m, err := s.Store.Memberships().GetByUser(ctx, actor.ID)
	if errors.Is(err, store.ErrNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("look up membership: %w", err)
	}

	tasks, err := s.Store.Tasks().ListByFamily(ctx, m.FamilyID)
	if err != nil {
		return nil, fmt.Errorf("list family tasks: %w", err)
	}
	return FamilyView(tasks, m.FamilyID), nil
}

// load fetches the task and resolves the actor's role in its family.
func (s *TaskService) load(
	ctx context.Context,
	actor domain.Identity,
	taskID string,
) (domain.Task, domain.Role, error) {
	if actor.IsZero() {
		return domain.Task{}, domain.RoleNone, ErrUnauthenticated
	}

	task, err := s.Store.Tasks().GetByID(ctx, taskID)
	if errors.Is(err, store.ErrNotFound) {
		return domain.Task{}, domain.RoleNone, ErrNotFound
	}
	if err != nil {
		return domain.Task{}, domain.RoleNone, fmt.Errorf("load task: %w", err)
	}

	role, err := s.roleOf(ctx, actor.ID, task.FamilyID)
	if err != nil {
		return domain.Task{}, domain.RoleNone, err
	}
	return task, role, nil
}

// roleOf resolves the actor's role in familyID; RoleNone for personal scope
// or a non-member.
func (s *TaskService) roleOf(ctx context.Context, userID, familyID string) (domain.Role, error) {
	if familyID == "" {
		return domain.RoleNone, nil
	}

	m, err := s.Store.Memberships().GetByUser(ctx, userID)
	if errors.Is(err, store.ErrNotFound) {
		return domain.RoleNone, nil
	}
	if err != nil {
		return domain.RoleNone, fmt.Errorf("look up membership: %w", err)
	}
	if m.FamilyID != familyID {
		return domain.RoleNone, nil
	}
	return m.Role, nil
}

// requireMember verifies the group-task invariant: an assignee must be a
// current member of the owning family.
func (s *TaskService) requireMember(ctx context.Context, familyID, userID string) error {
	if userID == "" {
		return ErrAssigneeNotMember
	}

	m, err := s.Store.Memberships().GetByUser(ctx, userID)
	if errors.Is(err, store.ErrNotFound) {
		return ErrAssigneeNotMember
	}
	if err != nil {
		return fmt.Errorf("check assignee membership: %w", err)
	}
	if m.FamilyID != familyID {
		return ErrAssigneeNotMember
	}
	return nil
}
