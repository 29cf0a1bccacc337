package sqlite

import (
	"context"

	"github.com/famdoapp/famdo/internal/famdo/domain"
)

type membershipsRepo struct {
	q dbtx
}

func (r *membershipsRepo) Create(ctx context.Context, m domain.Membership) error {
	_, err := r.q.ExecContext(ctx,
		`INSERT INTO memberships (user_id, family_id, role, joined_at)
		 VALUES (?, ?, ?, ?)`,
		m.UserID, m.FamilyID, string(m.Role), m.JoinedAt,
	)
	return mapConstraint(err)
}

func (r *membershipsRepo) GetByUser(ctx context.Context, userID string) (domain.Membership, error) {
	var m domain.Membership
	var role string
	err := r.q.QueryRowContext(ctx,
		`SELECT user_id, family_id, role, joined_at FROM memberships WHERE user_id = ?`,
		userID,
	).Scan(&m.UserID, &m.FamilyID, &role, &m.JoinedAt)
	if err != nil {
		return domain.Membership{}, mapNotFound(err)
	}
	m.Role = domain.Role(role)
	return m, nil
}

func (r *membershipsRepo) ListByFamily(ctx context.Context, familyID string) ([]domain.Membership, error) {
	rows, err := r.q.QueryContext(ctx,
		`SELECT user_id, family_id, role, joined_at FROM memberships
		 WHERE family_id = ? ORDER BY joined_at, user_id`,
		familyID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Membership
	for rows.Next() {
		var m domain.Membership
		var role string
		if err := rows.Scan(&m.UserID, &m.FamilyID, &role, &m.JoinedAt); err != nil {
			return nil, err
		}
		m.Role = domain.Role(role)
		out = append(out, m)
	}
	return out, rows.Err()
}
