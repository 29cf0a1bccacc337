package service

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/famdoapp/famdo/internal/famdo/domain"
	"github.com/famdoapp/famdo/internal/famdo/store"
)

func newMembershipService(t *testing.T) (*MembershipService, store.Store) {
	t.Helper()

	st := newTestStore(t)
	return &MembershipService{Store: st, Now: clockAt(testNow)}, st
}

func TestCreateFamily(t *testing.T) {
	ctx := context.Background()
	svc, _ := newMembershipService(t)

	family, err := svc.CreateFamily(ctx, alice, "  Smiths  ")
	require.NoError(t, err)
	require.Equal(t, "Smiths", family.Name)
	require.Equal(t, alice.ID, family.LeaderID)
	require.Len(t, family.InvitationCode, 6)
	require.Equal(t, strings.ToUpper(family.InvitationCode), family.InvitationCode)

	role, err := svc.CurrentRole(ctx, family.ID, alice.ID)
	require.NoError(t, err)
	require.Equal(t, domain.RoleLeader, role)
}

func TestCreateFamilyRequiresIdentityAndName(t *testing.T) {
	ctx := context.Background()
	svc, _ := newMembershipService(t)

	_, err := svc.CreateFamily(ctx, domain.Identity{}, "Smiths")
	require.ErrorIs(t, err, ErrUnauthenticated)

	_, err = svc.CreateFamily(ctx, alice, "   ")
	require.ErrorIs(t, err, ErrNameRequired)
}

func TestCreateFamilyTwiceConflicts(t *testing.T) {
	ctx := context.Background()
	svc, _ := newMembershipService(t)

	_, err := svc.CreateFamily(ctx, alice, "Smiths")
	require.NoError(t, err)

	_, err = svc.CreateFamily(ctx, alice, "Joneses")
	require.ErrorIs(t, err, ErrConflict)
}

func TestJoinFamilyIsCaseInsensitive(t *testing.T) {
	ctx := context.Background()
	svc, _ := newMembershipService(t)

	family, err := svc.CreateFamily(ctx, alice, "Smiths")
	require.NoError(t, err)

	joined, err := svc.JoinFamily(ctx, bob, "  "+strings.ToLower(family.InvitationCode)+" ")
	require.NoError(t, err)
	require.Equal(t, family.ID, joined.ID)

	role, err := svc.CurrentRole(ctx, family.ID, bob.ID)
	require.NoError(t, err)
	require.Equal(t, domain.RoleMember, role)
}

func TestJoinFamilyUnknownCode(t *testing.T) {
	ctx := context.Background()
	svc, _ := newMembershipService(t)

	_, err := svc.JoinFamily(ctx, bob, "ZZZZ99")
	require.ErrorIs(t, err, ErrNotFound)

	_, err = svc.JoinFamily(ctx, bob, "   ")
	require.ErrorIs(t, err, ErrMalformed)
}

func TestJoinFamilyIdempotentForSameFamily(t *testing.T) {
	ctx := context.Background()
	svc, _ := newMembershipService(t)

	family, err := svc.CreateFamily(ctx, alice, "Smiths")
	require.NoError(t, err)

	_, err = svc.JoinFamily(ctx, bob, family.InvitationCode)
	require.NoError(t, err)

	// Same code again: a no-op success.
	again, err := svc.JoinFamily(ctx, bob, family.InvitationCode)
	require.NoError(t, err)
	require.Equal(t, family.ID, again.ID)
}

func TestJoinFamilyWhileInAnotherConflicts(t *testing.T) {
	ctx := context.Background()
	svc, _ := newMembershipService(t)

	_, err := svc.CreateFamily(ctx, alice, "Smiths")
	require.NoError(t, err)

	other, err := svc.CreateFamily(ctx, bob, "Joneses")
	require.NoError(t, err)

	// Alice already leads the Smiths; the Joneses are off limits.
	_, err = svc.JoinFamily(ctx, alice, other.InvitationCode)
	require.ErrorIs(t, err, ErrConflict)
}

func TestCurrentRoleForOutsiders(t *testing.T) {
	ctx := context.Background()
	svc, _ := newMembershipService(t)

	family, err := svc.CreateFamily(ctx, alice, "Smiths")
	require.NoError(t, err)

	role, err := svc.CurrentRole(ctx, family.ID, bob.ID)
	require.NoError(t, err)
	require.Equal(t, domain.RoleNone, role)

	// A member of a different family also resolves to none here.
	_, err = svc.CreateFamily(ctx, bob, "Joneses")
	require.NoError(t, err)
	role, err = svc.CurrentRole(ctx, family.ID, bob.ID)
	require.NoError(t, err)
	require.Equal(t, domain.RoleNone, role)
}

func TestInfoAndMembers(t *testing.T) {
	ctx := context.Background()
	svc, _ := newMembershipService(t)

	_, _, err := svc.Info(ctx, alice.ID)
	require.ErrorIs(t, err, ErrNotFound)

	family, err := svc.CreateFamily(ctx, alice, "Smiths")
	require.NoError(t, err)
	_, err = svc.JoinFamily(ctx, bob, family.InvitationCode)
	require.NoError(t, err)

	got, membership, err := svc.Info(ctx, bob.ID)
	require.NoError(t, err)
	require.Equal(t, family.ID, got.ID)
	require.Equal(t, domain.RoleMember, membership.Role)

	members, err := svc.Members(ctx, family.ID)
	require.NoError(t, err)
	require.Len(t, members, 2)

	byID := map[string]FamilyMember{}
	for _, m := range members {
		byID[m.Identity.ID] = m
	}
	require.Equal(t, domain.RoleLeader, byID[alice.ID].Role)
	require.Equal(t, "alice", byID[alice.ID].Identity.Username)
	require.Equal(t, domain.RoleMember, byID[bob.ID].Role)
}
