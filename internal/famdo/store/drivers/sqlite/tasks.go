package sqlite

import (
	"context"
	"database/sql"

	"github.com/famdoapp/famdo/internal/famdo/domain"
	"github.com/famdoapp/famdo/internal/famdo/store"
)

type tasksRepo struct {
	q dbtx
}

const taskColumns = `id, title, description, priority, status, assigned_to,
	family_id, completed_at, created_by, created_at, updated_at`

func (r *tasksRepo) Create(ctx context.Context, t domain.Task) error {
	_, err := r.q.ExecContext(ctx,
		`INSERT INTO tasks (`+taskColumns+`)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		t.ID, t.Title, t.Description, string(t.Priority), string(t.Status),
		t.AssignedTo, t.FamilyID, mapOptionalTime(t.CompletedAt),
		t.CreatedBy, t.CreatedAt, t.UpdatedAt,
	)
	return mapConstraint(err)
}

func (r *tasksRepo) GetByID(ctx context.Context, id string) (domain.Task, error) {
	row := r.q.QueryRowContext(ctx,
		`SELECT `+taskColumns+` FROM tasks WHERE id = ?`, id,
	)
	t, err := scanTask(row)
	if err != nil {
		return domain.Task{}, mapNotFound(err)
	}
	return t, nil
}

func (r *tasksRepo) Update(ctx context.Context, t domain.Task) error {
	res, err := r.q.ExecContext(ctx,
		`UPDATE tasks SET title = ?, description = ?, priority = ?, status = ?,
		 assigned_to = ?, family_id = ?, completed_at = ?, updated_at = ?
		 WHERE id = ?`,
		t.Title, t.Description, string(t.Priority), string(t.Status),
		t.AssignedTo, t.FamilyID, mapOptionalTime(t.CompletedAt), t.UpdatedAt,
		t.ID,
	)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return store.ErrNotFound
	}
	return nil
}

func (r *tasksRepo) Delete(ctx context.Context, id string) error {
	res, err := r.q.ExecContext(ctx, `DELETE FROM tasks WHERE id = ?`, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return store.ErrNotFound
	}
	return nil
}

func (r *tasksRepo) List(ctx context.Context) ([]domain.Task, error) {
	rows, err := r.q.QueryContext(ctx,
		`SELECT `+taskColumns+` FROM tasks ORDER BY created_at, id`)
	if err != nil {
		return nil, err
	}
	return collectTasks(rows)
}

func (r *tasksRepo) ListByFamily(ctx context.Context, familyID string) ([]domain.Task, error) {
	rows, err := r.q.QueryContext(ctx,
		`SELECT `+taskColumns+` FROM tasks WHERE family_id = ? ORDER BY created_at, id`,
		familyID,
	)
	if err != nil {
		return nil, err
	}
	return collectTasks(rows)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanTask(row rowScanner) (domain.Task, error) {
	var t domain.Task
	var priority, status string
	var completedAt sql.NullTime

	err := row.Scan(&t.ID, &t.Title, &t.Description, &priority, &status,
		&t.AssignedTo, &t.FamilyID, &completedAt,
		&t.CreatedBy, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		return domain.Task{}, err
	}

	t.Priority = domain.Priority(priority)
	t.Status = domain.Status(status)
	t.CompletedAt = mapNullTimePtr(completedAt)
	return t, nil
}

func collectTasks(rows *sql.Rows) ([]domain.Task, error) {
	defer rows.Close()

	var out []domain.Task
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}
