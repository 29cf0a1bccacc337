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

// inviteCodeAttempts bounds the collision-retry loop when minting an
// invitation code. Collisions are retried internally and never surface as a
// user-facing error.
const inviteCodeAttempts = 5

// MembershipService creates or joins exactly one family per user and
// resolves the caller's role within it.
type MembershipService struct {
	Store store.Store

	// Now is the clock, injectable for tests. Defaults to time.Now.
	Now func() time.Time
}

func (s *MembershipService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

// FamilyMember is a membership joined with the member's cached identity.
type FamilyMember struct {
	Identity domain.Identity
	Role     domain.Role
	JoinedAt time.Time
}

// CreateFamily creates a new family led by actor.
// It fails with ErrConflict if actor already holds a membership; the
// creator's role is always leader and never changes.
func (s *MembershipService) CreateFamily(
	ctx context.Context,
	actor domain.Identity,
	name string,
) (domain.Family, error) {
	log := slogx.FromContext(ctx)

	if actor.IsZero() {
		return domain.Family{}, ErrUnauthenticated
	}

	name = strings.TrimSpace(name)
	if name == "" {
		return domain.Family{}, ErrNameRequired
	}

	// 1. A user holds at most one membership at a time.
	_, err := s.Store.Memberships().GetByUser(ctx, actor.ID)
	if err == nil {
		log.Warn("family creation attempted with existing membership",
			slog.String("user_id", actor.ID),
		)
		return domain.Family{}, ErrConflict
	}
	if !errors.Is(err, store.ErrNotFound) {
		return domain.Family{}, fmt.Errorf("check membership: %w", err)
	}

	// 2. Mint an invitation code, retrying on collision.
	code, err := s.mintInvitationCode(ctx)
	if err != nil {
		return domain.Family{}, err
	}

	// 3. Create family and leader membership atomically.
	now := s.now()
	family := domain.Family{
		ID:             idx.New().String(),
		Name:           name,
		InvitationCode: code,
		LeaderID:       actor.ID,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		if err := tx.Families().Create(ctx, family); err != nil {
			return fmt.Errorf("create family: %w", err)
		}
		membership := domain.Membership{
			UserID:   actor.ID,
			FamilyID: family.ID,
			Role:     domain.RoleLeader,
			JoinedAt: now,
		}
		if err := tx.Memberships().Create(ctx, membership); err != nil {
			if errors.Is(err, store.ErrAlreadyExists) {
				return ErrConflict
			}
			return fmt.Errorf("create membership: %w", err)
		}
		return tx.Users().Upsert(ctx, actor)
	})
	if err != nil {
		return domain.Family{}, err
	}

	log.Info("family created",
		slog.String("family_id", family.ID),
		slog.String("leader_id", actor.ID),
		slog.String("invitation_code", family.InvitationCode),
	)
	return family, nil
}

// JoinFamily adds actor to the family whose invitation code matches.
// Matching is case-insensitive; codes are stored uppercase. Joining the
// family the actor already belongs to is a no-op success, while any other
// existing membership is ErrConflict.
func (s *MembershipService) JoinFamily(
	ctx context.Context,
	actor domain.Identity,
	invitationCode string,
) (domain.Family, error) {
	log := slogx.FromContext(ctx)

	if actor.IsZero() {
		return domain.Family{}, ErrUnauthenticated
	}

	code := strings.ToUpper(strings.TrimSpace(invitationCode))
	if code == "" {
		return domain.Family{}, ErrMalformed
	}

	family, err := s.Store.Families().GetByInvitationCode(ctx, code)
	if errors.Is(err, store.ErrNotFound) {
		return domain.Family{}, ErrNotFound
	}
	if err != nil {
		return domain.Family{}, fmt.Errorf("look up invitation code: %w", err)
	}

	existing, err := s.Store.Memberships().GetByUser(ctx, actor.ID)
	if err == nil {
		if existing.FamilyID == family.ID {
			// Already in: joining again with the same code is a no-op.
			return family, nil
		}
		log.Warn("join attempted while member of a different family",
			slog.String("user_id", actor.ID),
			slog.String("family_id", existing.FamilyID),
		)
		return domain.Family{}, ErrConflict
	}
	if !errors.Is(err, store.ErrNotFound) {
		return domain.Family{}, fmt.Errorf("check membership: %w", err)
	}

	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		membership := domain.Membership{
			UserID:   actor.ID,
			FamilyID: family.ID,
			Role:     domain.RoleMember,
			JoinedAt: s.now(),
		}
		if err := tx.Memberships().Create(ctx, membership); err != nil {
			if errors.Is(err, store.ErrAlreadyExists) {
				return ErrConflict
			}
			return fmt.Errorf("create membership: %w", err)
		}
		return tx.Users().Upsert(ctx, actor)
	})
	if err != nil {
		return domain.Family{}, err
	}

	log.Info("joined family",
		slog.String("family_id", family.ID),
		slog.String("user_id", actor.ID),
	)
	return family, nil
}

// CurrentRole resolves userID's role within familyID. RoleNone when the
// user has no membership there; never an error for a plain miss.
func (s *MembershipService) CurrentRole(
	ctx context.Context,
	familyID, userID string,
) (domain.Role, error) {
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

// Info returns the family the user belongs to together with their
// membership, or ErrNotFound when they have none.
func (s *MembershipService) Info(
	ctx context.Context,
	userID string,
) (domain.Family, domain.Membership, error) {
	m, err := s.Store.Memberships().GetByUser(ctx, userID)
	if errors.Is(err, store.ErrNotFound) {
		return domain.Family{}, domain.Membership{}, ErrNotFound
	}
	if err != nil {
		return domain.Family{}, domain.Membership{}, fmt.Errorf("look up membership: %w", err)
	}

	family, err := s.Store.Families().GetByID(ctx, m.FamilyID)
	if err != nil {
		return domain.Family{}, domain.Membership{}, fmt.Errorf("load family: %w", err)
	}
	return family, m, nil
}

// Members lists a family's members with their cached identities. A member
// whose identity was never cached still appears, with just the ID filled in.
func (s *MembershipService) Members(
	ctx context.Context,
	familyID string,
) ([]FamilyMember, error) {
	memberships, err := s.Store.Memberships().ListByFamily(ctx, familyID)
	if err != nil {
		return nil, fmt.Errorf("list memberships: %w", err)
	}

	out := make([]FamilyMember, 0, len(memberships))
	for _, m := range memberships {
		identity, err := s.Store.Users().GetByID(ctx, m.UserID)
		if errors.Is(err, store.ErrNotFound) {
			identity = domain.Identity{ID: m.UserID}
		} else if err != nil {
			return nil, fmt.Errorf("load member %s: %w", m.UserID, err)
		}
		out = append(out, FamilyMember{
			Identity: identity,
			Role:     m.Role,
			JoinedAt: m.JoinedAt,
		})
	}
	return out, nil
}

// mintInvitationCode generates a code unique across all known families.
func (s *MembershipService) mintInvitationCode(ctx context.Context) (string, error) {
	log := slogx.FromContext(ctx)

	for attempt := 0; attempt < inviteCodeAttempts; attempt++ {
		code, err := idx.NewCode(idx.DefaultCodeLength)
		if err != nil {
			return "", fmt.Errorf("generate invitation code: %w", err)
		}

		_, err = s.Store.Families().GetByInvitationCode(ctx, code)
		if errors.Is(err, store.ErrNotFound) {
			return code, nil
		}
		if err != nil {
			return "", fmt.Errorf("check invitation code: %w", err)
		}

		log.Debug("invitation code collision, retrying",
			slog.Int("attempt", attempt+1),
		)
	}

	return "", fmt.Errorf("could not mint a unique invitation code after %d attempts", inviteCodeAttempts)
}
