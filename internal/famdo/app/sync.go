package app

import (
	"context"
	"log/slog"

	"github.com/famdoapp/famdo/internal/famdo/domain"
	"github.com/famdoapp/famdo/pkg/apix"
)

// TaskOp names a task mutation being mirrored to the backend.
type TaskOp string

const (
	TaskOpCreate TaskOp = "create"
	TaskOpUpdate TaskOp = "update"
	TaskOpDelete TaskOp = "delete"
)

// remote returns an authenticated backend session, or nil when the app is
// offline or the caller holds no token.
func (app *Application) remote(sess domain.Session) *apix.Session {
	if app.API == nil || sess.Token == "" {
		return nil
	}
	return app.API.WithToken(sess.Token)
}

// PushTask mirrors one locally applied task mutation to the backend. The
// local replica is authoritative for the current device: a push failure is
// logged and otherwise ignored, never rolled back.
func (app *Application) PushTask(ctx context.Context, sess domain.Session, op TaskOp, task domain.Task) {
	remote := app.remote(sess)
	if remote == nil {
		return
	}

	ctx, cancel := context.WithTimeout(ctx, app.Cfg.SyncTimeout)
	defer cancel()

	var err error
	switch {
	case op == TaskOpDelete && task.Personal():
		err = remote.DeleteTask(ctx, task.ID)
	case op == TaskOpDelete:
		err = remote.DeleteFamilyTask(ctx, task.ID)
	case op == TaskOpCreate && task.Personal():
		_, err = remote.CreateTask(ctx, taskRequest(task))
	case op == TaskOpCreate:
		_, err = remote.CreateFamilyTask(ctx, taskRequest(task))
	case task.Personal():
		_, err = remote.UpdateTask(ctx, task.ID, taskRequest(task))
	default:
		_, err = remote.UpdateFamilyTask(ctx, task.ID, taskRequest(task))
	}

	if err != nil {
		app.Logger.Warn("task sync failed",
			slog.String("op", string(op)),
			slog.String("task_id", task.ID),
			slog.Any("error", err),
		)
		return
	}
	app.Logger.Debug("task synced",
		slog.String("op", string(op)),
		slog.String("task_id", task.ID),
	)
}

func taskRequest(task domain.Task) apix.TaskRequest {
	return apix.TaskRequest{
		Title:       task.Title,
		Description: task.Description,
		Priority:    task.Priority.Rank(),
		Status:      string(task.Status),
		AssignedTo:  task.AssignedTo,
	}
}
