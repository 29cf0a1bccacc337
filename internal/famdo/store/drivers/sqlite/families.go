package sqlite

import (
	"context"

	"github.com/famdoapp/famdo/internal/famdo/domain"
)

type familiesRepo struct {
	q dbtx
}

func (r *familiesRepo) Create(ctx context.Context, f domain.Family) error {
	_, err := r.q.ExecContext(ctx,
		`INSERT INTO families (id, name, invitation_code, leader_id, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		f.ID, f.Name, f.InvitationCode, f.LeaderID, f.CreatedAt, f.UpdatedAt,
	)
	return mapConstraint(err)
}

func (r *familiesRepo) GetByID(ctx context.Context, id string) (domain.Family, error) {
	return r.get(ctx, `WHERE id = ?`, id)
}

func (r *familiesRepo) GetByInvitationCode(ctx context.Context, code string) (domain.Family, error) {
	return r.get(ctx, `WHERE invitation_code = ?`, code)
}

func (r *familiesRepo) get(ctx context.Context, where string, arg any) (domain.Family, error) {
	var f domain.Family
	err := r.q.QueryRowContext(ctx,
		`SELECT id, name, invitation_code, leader_id, created_at, updated_at
		 FROM families `+where, arg,
	).Scan(&f.ID, &f.Name, &f.InvitationCode, &f.LeaderID, &f.CreatedAt, &f.UpdatedAt)
	if err != nil {
		return domain.Family{}, mapNotFound(err)
	}
	return f, nil
}
