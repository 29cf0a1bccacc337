package sqlite

import (
	"context"
)

type kvRepo struct {
	q dbtx
}

func (r *kvRepo) Get(ctx context.Context, key string) (string, error) {
	var value string
	err := r.q.QueryRowContext(ctx,
		`SELECT value FROM kv WHERE key = ?`, key,
	).Scan(&value)
	if err != nil {
		return "", mapNotFound(err)
	}
	return value, nil
}

func (r *kvRepo) Set(ctx context.Context, key string, value string) error {
	_, err := r.q.ExecContext(ctx,
		`INSERT INTO kv (key, value, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
		 ON CONFLICT (key) DO UPDATE SET value = excluded.value, updated_at = CURRENT_TIMESTAMP`,
		key, value,
	)
	return err
}

func (r *kvRepo) Delete(ctx context.Context, key string) error {
	_, err := r.q.ExecContext(ctx, `DELETE FROM kv WHERE key = ?`, key)
	return err
}
