package sqlite

import (
	"context"

	"github.com/famdoapp/famdo/internal/famdo/domain"
)

type usersRepo struct {
	q dbtx
}

func (r *usersRepo) GetByID(ctx context.Context, id string) (domain.Identity, error) {
	var u domain.Identity
	err := r.q.QueryRowContext(ctx,
		`SELECT id, username, email FROM users WHERE id = ?`, id,
	).Scan(&u.ID, &u.Username, &u.Email)
	if err != nil {
		return domain.Identity{}, mapNotFound(err)
	}
	return u, nil
}

func (r *usersRepo) Upsert(ctx context.Context, u domain.Identity) error {
	_, err := r.q.ExecContext(ctx,
		`INSERT INTO users (id, username, email) VALUES (?, ?, ?)
		 ON CONFLICT (id) DO UPDATE SET username = excluded.username, email = excluded.email`,
		u.ID, u.Username, u.Email,
	)
	return err
}
