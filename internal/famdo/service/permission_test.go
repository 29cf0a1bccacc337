package service

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/famdoapp/famdo/internal/famdo/domain"
)

var allActions = []Action{ActionView, ActionEdit, ActionToggleStatus, ActionDelete}

func TestPermittedPersonalTask(t *testing.T) {
	t.Parallel()

	task := domain.Task{ID: "t1", CreatedBy: "owner"}

	for _, action := range allActions {
		require.True(t, Permitted("owner", domain.RoleNone, action, task), "owner %s", action)
		require.False(t, Permitted("stranger", domain.RoleNone, action, task), "stranger %s", action)
	}
}

func TestPermittedFamilyTask(t *testing.T) {
	t.Parallel()

	task := domain.Task{ID: "t1", FamilyID: "fam", AssignedTo: "assignee", CreatedBy: "leader"}

	cases := []struct {
		name    string
		actorID string
		role    domain.Role
		allowed map[Action]bool
	}{
		{
			name: "leader may do everything", actorID: "leader", role: domain.RoleLeader,
			allowed: map[Action]bool{
				ActionView: true, ActionEdit: true, ActionToggleStatus: true, ActionDelete: true,
			},
		},
		{
			name: "assignee may work their own task", actorID: "assignee", role: domain.RoleMember,
			allowed: map[Action]bool{
				ActionView: true, ActionEdit: true, ActionToggleStatus: true, ActionDelete: false,
			},
		},
		{
			name: "other member may only look", actorID: "other", role: domain.RoleMember,
			allowed: map[Action]bool{
				ActionView: true, ActionEdit: false, ActionToggleStatus: false, ActionDelete: false,
			},
		},
		{
			name: "non-member gets nothing", actorID: "outsider", role: domain.RoleNone,
			allowed: map[Action]bool{},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			for _, action := range allActions {
				got := Permitted(tc.actorID, tc.role, action, task)
				require.Equal(t, tc.allowed[action], got, "action %s", action)
			}
		})
	}
}

func TestPermittedDeniesWithoutIdentity(t *testing.T) {
	t.Parallel()

	task := domain.Task{ID: "t1", CreatedBy: ""}
	for _, action := range allActions {
		require.False(t, Permitted("", domain.RoleLeader, action, task))
	}
}

func TestCanAssign(t *testing.T) {
	t.Parallel()

	// Personal scope: self-assignment only.
	require.True(t, CanAssign("u1", domain.RoleNone, "", ""))
	require.True(t, CanAssign("u1", domain.RoleNone, "", "u1"))
	require.False(t, CanAssign("u1", domain.RoleNone, "", "u2"))

	// Family scope: leader only, any member.
	require.True(t, CanAssign("u1", domain.RoleLeader, "fam", "u2"))
	require.False(t, CanAssign("u1", domain.RoleMember, "fam", "u1"))
	require.False(t, CanAssign("u1", domain.RoleNone, "fam", "u1"))

	require.False(t, CanAssign("", domain.RoleLeader, "fam", "u2"))
}
